package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/cmd/statbridge/common/templating"
	"github.com/mutagen-io/statbridge/pkg/filesystem/bridge"
)

// printAttributes prints an attribute summary.
func printAttributes(path string, attributes *bridge.Attributes, humanizeSizes bool) {
	fmt.Fprintf(color.Output, "Path: %s\n", path)
	if !attributes.Exists {
		fmt.Fprintln(color.Output, "Exists: no")
		return
	}
	fmt.Fprintln(color.Output, "Exists: yes")
	fmt.Fprintln(color.Output, "Type:", formatEntryType(attributes.Type))
	if attributes.Type == bridge.EntryTypeFile {
		executable := "no"
		if attributes.Executable {
			executable = "yes"
		}
		fmt.Fprintln(color.Output, "Executable:", executable)
	}
	fmt.Fprintln(color.Output, "Length:", formatSize(attributes.Length, humanizeSizes))
	fmt.Fprintf(color.Output, "Last modified: %s (%s)\n",
		attributes.LastModified.Format("2006-01-02 15:04:05.000000000 -0700"),
		humanize.Time(attributes.LastModified),
	)
	if bridge.IsHidden(path) {
		fmt.Fprintln(color.Output, "Hidden: yes")
	}
}

func attributesMain(_ *cobra.Command, arguments []string) error {
	// Load the template, if any.
	template, err := attributesConfiguration.TemplateFlags.LoadTemplate()
	if err != nil {
		return fmt.Errorf("unable to load formatting template: %w", err)
	}

	// Set up the bridge.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	// Query and print attributes.
	for _, path := range arguments {
		attributes, err := s.bridge.Attributes(path)
		if err != nil {
			return s.diagnose(err)
		}
		if template != nil {
			if err := template.Execute(os.Stdout, attributes); err != nil {
				return fmt.Errorf("unable to execute formatting template: %w", err)
			}
			continue
		}
		fmt.Fprintln(color.Output, cmd.DelimiterLine)
		printAttributes(path, attributes, s.configuration.Output.Humanize)
	}
	if template == nil {
		fmt.Fprintln(color.Output, cmd.DelimiterLine)
	}

	// Success.
	return nil
}

var attributesCommand = &cobra.Command{
	Use:          "attributes <path>...",
	Short:        "Show an attribute summary for paths",
	Args:         cobra.MinimumNArgs(1),
	Run:          cmd.Mainify(attributesMain),
	SilenceUsage: true,
}

var attributesConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// TemplateFlags store custom templating behavior.
	templating.TemplateFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := attributesCommand.Flags()
	cmd.PrepareFlags(flags, &attributesConfiguration.help)

	// Wire up templating flags.
	attributesConfiguration.TemplateFlags.Register(flags)
}
