package main

import (
	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
)

func symlinkMain(_ *cobra.Command, arguments []string) error {
	// Set up the bridge.
	s, err := newSession()
	if err != nil {
		return err
	}
	defer s.close()

	// Create the link. The target is stored verbatim and isn't required to
	// exist.
	if err := s.bridge.CreateLink(arguments[0], arguments[1]); err != nil {
		return s.diagnose(err)
	}
	s.logger.Infof("Created symbolic link %s -> %s", arguments[0], arguments[1])

	// Success.
	return nil
}

var symlinkCommand = &cobra.Command{
	Use:          "symlink <link> <target>",
	Short:        "Create a symbolic link",
	Args:         cobra.ExactArgs(2),
	Run:          cmd.Mainify(symlinkMain),
	SilenceUsage: true,
}

var symlinkConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
}

func init() {
	cmd.PrepareFlags(symlinkCommand.Flags(), &symlinkConfiguration.help)
}
