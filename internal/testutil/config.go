package testutil

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/velmu/circ/internal/config"
)

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	origOverwrite := config.OverwriteFiles

	viper.Reset()

	t.Cleanup(func() {
		config.OverwriteFiles = origOverwrite
		viper.Reset()
	})
}

// SetTestConfig sets up a test configuration with common defaults.
// It saves the current state and restores it when the test completes.
func SetTestConfig(t *testing.T) {
	t.Helper()

	ResetConfig(t)
	config.OverwriteFiles = true
}

// SetViperValue sets a viper configuration value and schedules cleanup.
func SetViperValue(t *testing.T, key string, value any) {
	t.Helper()

	oldValue := viper.Get(key)
	hadValue := viper.IsSet(key)

	viper.Set(key, value)

	t.Cleanup(func() {
		if hadValue {
			viper.Set(key, oldValue)
		}
		// viper has no Unset, so a previously unset key stays set.
	})
}

// SetupMarkdownOutput points the markdown output directory at the test
// environment and schedules cleanup.
func SetupMarkdownOutput(t *testing.T, env *TestEnv) {
	t.Helper()
	SetViperValue(t, "markdownoutputdir", env.RootDir())
}

// SetupJSONOutput points the JSON output directory at the test
// environment and schedules cleanup.
func SetupJSONOutput(t *testing.T, env *TestEnv) {
	t.Helper()
	SetViperValue(t, "jsonoutputdir", env.RootDir())
}
