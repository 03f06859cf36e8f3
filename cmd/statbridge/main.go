package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mutagen-io/statbridge/cmd"
)

func rootMain(command *cobra.Command, _ []string) error {
	// If no commands were given, then print help information and bail.
	command.Help()

	// Success.
	return nil
}

var rootCommand = &cobra.Command{
	Use:          "statbridge",
	Short:        "Link-aware filesystem metadata queries and symbolic link operations",
	RunE:         rootMain,
	SilenceUsage: true,
}

var rootConfiguration struct {
	// help indicates whether or not to show help information and exit.
	help bool
	// configurationPath overrides the configuration file path.
	configurationPath string
	// logLevel overrides the configured log level.
	logLevel string
}

func init() {
	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Set up flags. Persistent flags are available to all subcommands.
	cmd.PrepareFlags(rootCommand.Flags(), &rootConfiguration.help)
	persistent := rootCommand.PersistentFlags()
	persistent.SortFlags = false
	persistent.StringVar(&rootConfiguration.configurationPath, "config", "", "Specify the configuration file path")
	persistent.StringVar(&rootConfiguration.logLevel, "log-level", "", "Override the configured log level")

	// Register commands.
	rootCommand.AddCommand(
		probeCommand,
		attributesCommand,
		listCommand,
		readlinkCommand,
		symlinkCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command. Errors are printed by the commands themselves
	// or by Cobra.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
