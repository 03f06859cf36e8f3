package main

import (
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/mutagen-io/statbridge/cmd"
	"github.com/mutagen-io/statbridge/pkg/configuration"
	"github.com/mutagen-io/statbridge/pkg/filesystem/bridge"
	"github.com/mutagen-io/statbridge/pkg/logging"
)

// session bundles the state shared by commands that use the bridge.
type session struct {
	// configuration is the loaded configuration.
	configuration *configuration.Configuration
	// logger is the root logger.
	logger *logging.Logger
	// bridge is the loaded bridge.
	bridge *bridge.Bridge
}

// loadConfiguration loads the configuration, honoring the --config and
// --log-level flags.
func loadConfiguration() (*configuration.Configuration, error) {
	// Determine the configuration path.
	path := rootConfiguration.configurationPath
	explicit := path != "" || os.Getenv(configuration.ConfigurationPathEnvironmentVariable) != ""
	if path == "" {
		var err error
		if path, err = configuration.ConfigurationPath(); err != nil {
			return nil, errors.Wrap(err, "unable to compute configuration path")
		}
	}

	// Warn if an explicitly specified configuration file is missing.
	if _, err := os.Stat(path); explicit && os.IsNotExist(err) {
		cmd.Warning("configuration file " + path + " not found, using defaults")
	}

	// Load the configuration.
	result, err := configuration.LoadConfiguration(path)
	if err != nil {
		return nil, err
	}

	// Apply any log level override.
	if rootConfiguration.logLevel != "" {
		level, ok := logging.NameToLevel(rootConfiguration.logLevel)
		if !ok {
			return nil, errors.Errorf("invalid log level: %s", rootConfiguration.logLevel)
		}
		result.Logging.Level = level
	}

	// Success.
	return result, nil
}

// newSession loads the configuration, configures output, and loads the
// bridge. The caller must invoke close on the result.
func newSession() (*session, error) {
	// Load configuration.
	configuration, err := loadConfiguration()
	if err != nil {
		return nil, err
	}

	// Configure output.
	cmd.ConfigureColor(configuration.Output.Color)
	logger := logging.NewLogger(configuration.Logging.Level, os.Stderr)

	// Route any standard library logging through our logger.
	log.SetFlags(0)
	log.SetOutput(logger.Sublogger("runtime").StandardLogger().Writer())

	// Load the bridge.
	b, err := bridge.Load(logger.Sublogger("bridge"))
	if err != nil {
		return nil, errors.Wrap(err, "bridge unavailable")
	}

	// Success.
	return &session{
		configuration: configuration,
		logger:        logger,
		bridge:        b,
	}, nil
}

// close unloads the bridge.
func (s *session) close() {
	s.bridge.Unload()
}
