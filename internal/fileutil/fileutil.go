// Package fileutil writes the report artifacts: overwrite-aware file and
// JSON writers plus the frontmatter markdown builder for book snapshots.
package fileutil

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// GetMarkdownFilePath returns the snapshot path for a book title inside directory.
func GetMarkdownFilePath(name string, directory string) string {
	return filepath.Join(directory, SanitizeFilename(name)+".md")
}

// SanitizeFilename replaces characters that are unsafe in filenames.
// Colons become " -" so subtitle separators stay readable.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	return strings.ReplaceAll(name, "\\", "-")
}

// FileExists reports whether a regular file exists at the given path.
// Directories don't count.
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag.
// Returns true if the file was written, false if an existing file was kept.
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return false, err
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// LogFileWriteResult logs whether a write happened or an existing file was kept.
func LogFileWriteResult(written bool, filePath string) {
	if written {
		slog.Info("Wrote file", "path", filePath)
	} else {
		slog.Debug("Skipped existing file", "path", filePath)
	}
}

// WriteJSONFile writes data as indented JSON to a file, respecting the
// overwrite flag. Returns true if the file was written, false if it was skipped.
func WriteJSONFile(data interface{}, filePath string, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("JSON file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return false, fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	slog.Info("Writing JSON file", "filename", filePath, "overwrite", overwrite)
	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return false, fmt.Errorf("failed to write JSON file: %w", err)
	}

	return true, nil
}
