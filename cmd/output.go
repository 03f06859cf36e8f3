package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/mutagen-io/statbridge/pkg/configuration"
)

// DelimiterLine is a line used to separate records in command output.
const DelimiterLine = "--------------------------------------------------------------------------------"

// IsTerminal returns whether or not the specified file is attached to a
// terminal.
func IsTerminal(file *os.File) bool {
	descriptor := file.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

// ConfigureColor enables or disables colored output globally based on the
// specified mode and whether or not standard output is a terminal.
func ConfigureColor(mode configuration.ColorMode) {
	color.NoColor = !mode.Enabled(IsTerminal(os.Stdout))
}
