package cmdutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// BaseCommandConfig holds common configuration for report-writing commands
type BaseCommandConfig struct {
	OutputDir     string
	OutputDirFlag string
	ConfigKey     string
	JSONOutput    string
	WriteJSON     bool
	Overwrite     bool
}

// SetupOutputDir resolves the markdown and JSON output locations and
// creates the directories. The flag value wins, then the "<key>.output"
// config entry, then the config key itself as a subdirectory name.
func SetupOutputDir(cfg *BaseCommandConfig) error {
	cfg.OutputDir = resolveMarkdownDir(cfg)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if !cfg.WriteJSON {
		return nil
	}

	cfg.JSONOutput = resolveJSONPath(cfg)
	if err := os.MkdirAll(filepath.Dir(cfg.JSONOutput), 0755); err != nil {
		return fmt.Errorf("failed to create JSON output directory: %w", err)
	}

	return nil
}

func resolveMarkdownDir(cfg *BaseCommandConfig) string {
	outputDir := cfg.OutputDir
	if outputDir == "" {
		outputDir = viper.GetString(cfg.ConfigKey + ".output")
	}
	if outputDir == "" && cfg.ConfigKey != "" {
		outputDir = cfg.ConfigKey
	}

	baseDir := viper.GetString("markdownoutputdir")
	if baseDir == "" {
		baseDir = "markdown"
	}
	return filepath.Clean(filepath.Join(baseDir, outputDir))
}

func resolveJSONPath(cfg *BaseCommandConfig) string {
	if cfg.JSONOutput != "" {
		return cfg.JSONOutput
	}

	jsonBaseDir := viper.GetString("jsonoutputdir")
	if jsonBaseDir == "" {
		jsonBaseDir = "json"
	}
	return filepath.Clean(filepath.Join(jsonBaseDir, cfg.ConfigKey+".json"))
}
