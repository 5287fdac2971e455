package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/lepinkainen/humanlog"
	"github.com/spf13/viper"

	"github.com/velmu/circ/cmd/demo"
	"github.com/velmu/circ/cmd/run"
	"github.com/velmu/circ/cmd/search"
	"github.com/velmu/circ/internal/config"
)

var (
	runDemo       = demo.RunDemo
	runLibrary    = run.RunWithParams
	searchLibrary = search.SearchWithParams
)

// CLI represents the complete command structure for the circ application
type CLI struct {
	// Global flags
	Overwrite bool `help:"Overwrite existing report files when processing"`

	Demo   DemoCmd   `cmd:"" help:"Run the built-in circulation walkthrough"`
	Run    RunCmd    `cmd:"" help:"Run scripted operations from a library file and write reports"`
	Search SearchCmd `cmd:"" help:"Search the catalog built from a library file"`
}

// DemoCmd represents the demo command
type DemoCmd struct{}

// RunCmd represents the run command
type RunCmd struct {
	Input      string `short:"f" help:"Path to library YAML or CSV file"`
	Output     string `short:"o" help:"Subdirectory under markdown output directory for book snapshots" default:"books"`
	JSON       bool   `help:"Write session report to JSON format"`
	JSONOutput string `help:"Path to JSON output file (defaults to json/books.json)"`
}

// SearchCmd represents the search command
type SearchCmd struct {
	Input       string `short:"f" help:"Path to library YAML or CSV file"`
	Title       string `short:"t" help:"Search by exact title (case-insensitive)"`
	Author      string `short:"a" help:"Search by exact author (case-insensitive)"`
	Interactive bool   `short:"i" help:"Browse matches in an interactive picker" default:"false"`
}

// Execute runs the Kong-based CLI
func Execute() {
	initLogging()
	initConfig()

	// Create CLI instance
	var cli CLI

	// Parse command line with Kong
	ctx := kong.Parse(&cli,
		kong.Name("circ"),
		kong.Description("A small library circulation tool: catalog, loans and reports."),
		kong.UsageOnError(),
	)

	// Update global config based on parsed flags
	updateGlobalConfig(&cli)

	// Execute the selected command
	err := ctx.Run()
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetDefault("LibraryFile", "./library.yaml")
	viper.SetDefault("MarkdownOutputDir", "./markdown/")
	viper.SetDefault("JSONOutputDir", "./json/")
	viper.SetDefault("OverwriteFiles", false)

	// Enable environment variable support
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Info("Config file not found, writing default config file...")
			if err := viper.SafeWriteConfig(); err != nil {
				slog.Error("Error writing config file", "error", err)
			}
			os.Exit(0)
		} else {
			slog.Error("Fatal error config file", "error", err)
			os.Exit(1)
		}
	}

	// Initialize global config
	config.InitConfig()
}

func updateGlobalConfig(cli *CLI) {
	// Update config based on CLI flags
	config.SetOverwriteFiles(cli.Overwrite)
}

// Run methods for each command

func (d *DemoCmd) Run() error {
	return runDemo()
}

func (r *RunCmd) Run() error {
	// Read from config if value not provided via flag
	input := r.Input
	if input == "" {
		input = viper.GetString("libraryfile")
	}

	// Check if required value is still missing
	if input == "" {
		return fmt.Errorf("library file is required (provide via --input flag or libraryfile in config)")
	}

	return runLibrary(input, r.Output, r.JSON, r.JSONOutput, false)
}

func (s *SearchCmd) Run() error {
	// Read from config if value not provided via flag
	input := s.Input
	if input == "" {
		input = viper.GetString("libraryfile")
	}

	// Check if required value is still missing
	if input == "" {
		return fmt.Errorf("library file is required (provide via --input flag or libraryfile in config)")
	}

	return searchLibrary(input, s.Title, s.Author, s.Interactive)
}

func initLogging() {
	// Create a human-readable handler for logging
	handler := humanlog.NewHandler(os.Stdout, &humanlog.Options{
		Level: slog.LevelInfo,
	})

	// Set the default logger
	slog.SetDefault(slog.New(handler))
}
