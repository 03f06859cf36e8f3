package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/pkg/statbridge"
)

func versionMain(_ *cobra.Command, _ []string) error {
	// Print version information.
	fmt.Println(statbridge.Version)

	// Success.
	return nil
}

var versionCommand = &cobra.Command{
	Use:          "version",
	Short:        "Show version information",
	Args:         cobra.NoArgs,
	Run:          cmd.Mainify(versionMain),
	SilenceUsage: true,
}

var versionConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	cmd.PrepareFlags(versionCommand.Flags(), &versionConfiguration.help)
}
