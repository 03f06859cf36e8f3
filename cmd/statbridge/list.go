package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/cmd/statbridge/common/templating"
	"github.com/mutagen-io/statbridge/pkg/configuration"
	"github.com/mutagen-io/statbridge/pkg/filesystem/bridge"
)

// filterEntries removes entries whose names match a configured or
// command-line exclusion pattern and optionally normalizes names. It operates
// in place.
func filterEntries(
	entries []bridge.DirectoryEntry,
	settings *configuration.Configuration,
	exclusions []string,
	normalize bool,
) []bridge.DirectoryEntry {
	filtered := entries[:0]
	for _, entry := range entries {
		if normalize {
			entry.Name = bridge.NormalizeName(entry.Name)
		}
		if settings.Excluded(entry.Name) || configuration.MatchAny(exclusions, entry.Name) {
			continue
		}
		filtered = append(filtered, entry)
	}
	return filtered
}

func listMain(_ *cobra.Command, arguments []string) error {
	// Validate exclusion patterns.
	if err := configuration.ValidatePatterns(listConfiguration.exclude); err != nil {
		return err
	}

	// Load the template, if any.
	template, err := listConfiguration.TemplateFlags.LoadTemplate()
	if err != nil {
		return errors.Wrap(err, "unable to load formatting template")
	}

	// Set up the bridge.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	// List the directory.
	path := arguments[0]
	entries, err := s.bridge.List(path)
	if err != nil {
		return s.diagnose(err)
	}
	entries = filterEntries(entries, s.configuration, listConfiguration.exclude, listConfiguration.normalize)
	if listConfiguration.sort {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Name < entries[j].Name
		})
	}

	// Handle templated output.
	if template != nil {
		if err := template.Execute(os.Stdout, entries); err != nil {
			return errors.Wrap(err, "unable to execute formatting template")
		}
		return nil
	}

	// Print entries.
	for _, entry := range entries {
		label := fmt.Sprintf("%-9s", entry.Type.String())
		fmt.Fprintln(color.Output, colorEntryType(entry.Type, label), entry.Name)
	}

	// Success.
	return nil
}

var listCommand = &cobra.Command{
	Use:          "list <directory>",
	Short:        "List directory entries and their types",
	Args:         cobra.ExactArgs(1),
	Run:          cmd.Mainify(listMain),
	SilenceUsage: true,
}

var listConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// exclude are additional exclusion patterns.
	exclude []string
	// normalize indicates whether or not entry names should be converted to
	// Unicode normalization form C.
	normalize bool
	// sort indicates whether or not entries should be sorted by name.
	sort bool
	// TemplateFlags store custom templating behavior.
	templating.TemplateFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := listCommand.Flags()
	cmd.PrepareFlags(flags, &listConfiguration.help)

	// Wire up flags.
	flags.StringSliceVarP(&listConfiguration.exclude, "exclude", "e", nil, "Hide entries whose names match the specified pattern")
	flags.BoolVarP(&listConfiguration.normalize, "normalize", "n", false, "Normalize entry names to Unicode NFC")
	flags.BoolVarP(&listConfiguration.sort, "sort", "s", false, "Sort entries by name")
	listConfiguration.TemplateFlags.Register(flags)
}
