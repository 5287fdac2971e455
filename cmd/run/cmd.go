// Package run executes a scripted circulation session from a library
// file and writes per-book markdown snapshots plus an optional JSON
// report.
package run

import (
	"github.com/velmu/circ/internal/cmdutil"
	"github.com/velmu/circ/internal/config"
)

// Package-level variables for parameters resolved by the CLI layer
var (
	libraryFile string
	outputDir   string
	writeJSON   bool
	jsonOutput  string
	overwrite   bool

	cmdConfig *cmdutil.BaseCommandConfig
)

var runSessionFunc = runSession

// RunWithParams allows calling the session runner with specific parameters
// This is used by the Kong-based CLI implementation
func RunWithParams(inputFile, outputDirParam string, writeJSONFlag bool, jsonOutputPath string, overwriteFlag bool) error {
	libraryFile = inputFile

	cmdConfig = &cmdutil.BaseCommandConfig{
		OutputDir:  outputDirParam,
		ConfigKey:  "books",
		WriteJSON:  writeJSONFlag,
		JSONOutput: jsonOutputPath,
		Overwrite:  overwriteFlag,
	}

	if err := cmdutil.SetupOutputDir(cmdConfig); err != nil {
		return err
	}

	// Update package-level variables with processed paths for the runner
	outputDir = cmdConfig.OutputDir
	writeJSON = cmdConfig.WriteJSON
	jsonOutput = cmdConfig.JSONOutput
	overwrite = cmdConfig.Overwrite || config.OverwriteFiles

	return runSessionFunc()
}
