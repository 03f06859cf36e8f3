package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/cmd/statbridge/common/templating"
	"github.com/mutagen-io/statbridge/pkg/filesystem/bridge"
)

func probeMain(_ *cobra.Command, arguments []string) error {
	// Load the template, if any.
	template, err := probeConfiguration.TemplateFlags.LoadTemplate()
	if err != nil {
		return fmt.Errorf("unable to load formatting template: %w", err)
	}

	// Set up the bridge.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	// Probe each path.
	for _, path := range arguments {
		metadata, err := s.bridge.Probe(path)
		if err != nil {
			return s.diagnose(err)
		}
		if template != nil {
			if err := template.Execute(os.Stdout, metadata); err != nil {
				return fmt.Errorf("unable to execute formatting template: %w", err)
			}
			continue
		}
		fmt.Fprintln(color.Output, cmd.DelimiterLine)
		fmt.Fprintf(color.Output, "Path: %s\n", path)
		if err := printRecord(color.Output, s.bridge.Registry(), bridge.SchemaMetadata, metadata, probeConfiguration.fields, s.configuration.Output.Humanize); err != nil {
			return err
		}
		if probeConfiguration.times {
			fmt.Fprintln(color.Output, "Accessed:", metadata.AccessTime())
			fmt.Fprintln(color.Output, "Modified:", metadata.ModificationTime())
			fmt.Fprintln(color.Output, "Changed: ", metadata.ChangeTime())
		}
	}
	if template == nil {
		fmt.Fprintln(color.Output, cmd.DelimiterLine)
	}

	// Success.
	return nil
}

var probeCommand = &cobra.Command{
	Use:          "probe <path>...",
	Short:        "Show metadata for paths without following symbolic links",
	Args:         cobra.MinimumNArgs(1),
	Run:          cmd.Mainify(probeMain),
	SilenceUsage: true,
}

var probeConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// times indicates whether or not to show decoded timestamps.
	times bool
	// fields restricts output to the named metadata fields.
	fields []string
	// TemplateFlags store custom templating behavior.
	templating.TemplateFlags
}

func init() {
	// Grab a handle for the command line flags.
	flags := probeCommand.Flags()
	cmd.PrepareFlags(flags, &probeConfiguration.help)

	// Wire up flags.
	flags.BoolVarP(&probeConfiguration.times, "times", "t", false, "Show decoded access, modification, and change times")
	flags.StringSliceVarP(&probeConfiguration.fields, "field", "f", nil, "Show only the specified metadata field")
	probeConfiguration.TemplateFlags.Register(flags)
}
