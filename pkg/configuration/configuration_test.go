package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mutagen-io/statbridge/pkg/logging"
)

const testConfiguration = `logging:
  level: trace
output:
  color: never
  humanize: true
list:
  exclude:
    - "*.tmp"
    - ".git"
`

// writeConfiguration writes contents to a configuration file in a temporary
// directory and returns its path.
func writeConfiguration(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ConfigurationName)
	if err := os.WriteFile(path, []byte(contents), 0600); err != nil {
		t.Fatal("unable to write configuration:", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	configuration, err := LoadConfiguration(writeConfiguration(t, testConfiguration))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Logging.Level != logging.LevelTrace {
		t.Error("log level mismatch:", configuration.Logging.Level)
	}
	if configuration.Output.Color != ColorModeNever {
		t.Error("color mode mismatch:", configuration.Output.Color)
	}
	if !configuration.Output.Humanize {
		t.Error("humanize setting not loaded")
	}
	if len(configuration.List.Exclude) != 2 {
		t.Fatal("exclusion count mismatch:", len(configuration.List.Exclude))
	}
	if !configuration.Excluded("build.tmp") || !configuration.Excluded(".git") {
		t.Error("excluded names not matched")
	}
	if configuration.Excluded("main.go") {
		t.Error("included name matched")
	}
}

func TestLoadConfigurationPartial(t *testing.T) {
	configuration, err := LoadConfiguration(writeConfiguration(t, "output:\n  humanize: true\n"))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Logging.Level != logging.LevelWarn {
		t.Error("default log level not retained:", configuration.Logging.Level)
	}
	if configuration.Output.Color != ColorModeAuto {
		t.Error("default color mode not retained:", configuration.Output.Color)
	}
}

func TestLoadConfigurationNonExistent(t *testing.T) {
	configuration, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatal("missing configuration produced error:", err)
	}
	if configuration.Logging.Level != logging.LevelWarn || len(configuration.List.Exclude) != 0 {
		t.Error("missing configuration didn't produce defaults")
	}
}

func TestLoadConfigurationInvalid(t *testing.T) {
	testCases := []string{
		"logging:\n  level: verbose\n",
		"output:\n  color: sometimes\n",
		"unknown: true\n",
		"list:\n  exclude:\n    - \"[\"\n",
		"list:\n  exclude:\n    - \"\"\n",
	}
	for _, contents := range testCases {
		if _, err := LoadConfiguration(writeConfiguration(t, contents)); err == nil {
			t.Errorf("invalid configuration loaded successfully: %q", contents)
		}
	}
}

func TestLoadConfigurationDebugOverride(t *testing.T) {
	t.Setenv(DebugEnvironmentVariable, "1")
	configuration, err := LoadConfiguration(writeConfiguration(t, "logging:\n  level: error\n"))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Logging.Level != logging.LevelDebug {
		t.Error("debug override not applied:", configuration.Logging.Level)
	}

	configuration, err = LoadConfiguration(writeConfiguration(t, "logging:\n  level: trace\n"))
	if err != nil {
		t.Fatal("unable to load configuration:", err)
	}
	if configuration.Logging.Level != logging.LevelTrace {
		t.Error("debug override lowered log level:", configuration.Logging.Level)
	}
}

func TestColorModeEnabled(t *testing.T) {
	if !ColorModeAuto.Enabled(true) || ColorModeAuto.Enabled(false) {
		t.Error("auto color mode doesn't follow terminal status")
	}
	if !ColorModeAlways.Enabled(false) {
		t.Error("always color mode disabled")
	}
	if ColorModeNever.Enabled(true) {
		t.Error("never color mode enabled")
	}
}
