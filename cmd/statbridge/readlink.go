package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/pkg/must"
)

func readlinkMain(_ *cobra.Command, arguments []string) error {
	// Set up the bridge.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	// Read and print the target exactly as stored.
	target, err := s.bridge.ReadTarget(arguments[0])
	if err != nil {
		return s.diagnose(err)
	}
	must.Fprint(os.Stdout, s.logger, target, "\n")

	// Success.
	return nil
}

var readlinkCommand = &cobra.Command{
	Use:          "readlink <link>",
	Short:        "Print the target of a symbolic link",
	Args:         cobra.ExactArgs(1),
	Run:          cmd.Mainify(readlinkMain),
	SilenceUsage: true,
}

var readlinkConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	cmd.PrepareFlags(readlinkCommand.Flags(), &readlinkConfiguration.help)
}
