package configuration

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

const (
	// ConfigurationName is the name of the configuration file inside the
	// user's home directory.
	ConfigurationName = ".statbridge.yml"
	// ConfigurationPathEnvironmentVariable is the environment variable that
	// overrides the configuration file path.
	ConfigurationPathEnvironmentVariable = "STATBRIDGE_CONFIG"
)

// ConfigurationPath returns the path of the YAML-based configuration file. It
// does not verify that the file exists.
func ConfigurationPath() (string, error) {
	// Check for an override.
	if path := os.Getenv(ConfigurationPathEnvironmentVariable); path != "" {
		return path, nil
	}

	// Compute the path to the user's home directory.
	homeDirectoryPath, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "unable to compute path to home directory")
	}

	// Success.
	return filepath.Join(homeDirectoryPath, ConfigurationName), nil
}
