package configuration

import (
	"fmt"
)

// ColorMode specifies when colored output should be used.
type ColorMode uint8

const (
	// ColorModeAuto enables color only when output is a terminal.
	ColorModeAuto ColorMode = iota
	// ColorModeAlways enables color unconditionally.
	ColorModeAlways
	// ColorModeNever disables color unconditionally.
	ColorModeNever
)

// String returns the configuration name of the mode.
func (m ColorMode) String() string {
	switch m {
	case ColorModeAuto:
		return "auto"
	case ColorModeAlways:
		return "always"
	case ColorModeNever:
		return "never"
	default:
		return "unknown"
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ColorMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "auto":
		*m = ColorModeAuto
	case "always":
		*m = ColorModeAlways
	case "never":
		*m = ColorModeNever
	default:
		return fmt.Errorf("unknown color mode: %s", text)
	}
	return nil
}

// Enabled returns whether or not color should be used given whether or not the
// output is a terminal.
func (m ColorMode) Enabled(terminal bool) bool {
	switch m {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		return terminal
	}
}
