package configuration

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/statbridge/pkg/encoding"
	"github.com/mutagen-io/statbridge/pkg/logging"
)

// DebugEnvironmentVariable is the environment variable that forces debug
// logging when set to "1".
const DebugEnvironmentVariable = "STATBRIDGE_DEBUG"

// Configuration is the YAML configuration object type.
type Configuration struct {
	// Logging is the logging configuration.
	Logging struct {
		// Level is the log level.
		Level logging.Level `yaml:"level"`
	} `yaml:"logging"`
	// Output is the command output configuration.
	Output struct {
		// Color specifies when colored output is used.
		Color ColorMode `yaml:"color"`
		// Humanize indicates that sizes should be rendered in human-readable
		// units.
		Humanize bool `yaml:"humanize"`
	} `yaml:"output"`
	// List is the directory listing configuration.
	List struct {
		// Exclude are doublestar patterns for entry names that should be
		// hidden from listings.
		Exclude []string `yaml:"exclude"`
	} `yaml:"list"`
}

// Default returns the default configuration.
func Default() *Configuration {
	result := &Configuration{}
	result.Logging.Level = logging.LevelWarn
	result.Output.Color = ColorModeAuto
	return result
}

// EnsureValid ensures that the configuration is valid.
func (c *Configuration) EnsureValid() error {
	return ValidatePatterns(c.List.Exclude)
}

// Excluded returns whether or not name matches any exclusion pattern.
func (c *Configuration) Excluded(name string) bool {
	return MatchAny(c.List.Exclude, name)
}

// LoadConfiguration attempts to load a YAML-based configuration file from the
// specified path. Settings absent from the file keep their default values. If
// the file doesn't exist, then the default configuration is returned.
func LoadConfiguration(path string) (*Configuration, error) {
	// Create the target configuration object.
	result := Default()

	// Attempt to load, treating non-existence as an empty file.
	if err := encoding.LoadAndUnmarshalYAML(path, result); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "unable to load configuration")
	}

	// Apply environment overrides.
	if os.Getenv(DebugEnvironmentVariable) == "1" && result.Logging.Level < logging.LevelDebug {
		result.Logging.Level = logging.LevelDebug
	}

	// Validate the result.
	if err := result.EnsureValid(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	// Success.
	return result, nil
}
