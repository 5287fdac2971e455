package seed

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/velmu/circ/internal/csvutil"
)

// csvHeader is the required column layout for CSV library files.
// CSV files carry books only; borrowers and operations need YAML.
var csvHeader = []string{"kind", "title", "author", "isbn", "copies"}

// Load reads a library file, dispatching on the file extension.
func Load(path string) (*Library, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported library file format: %s", path)
	}
}

func loadYAML(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read library file: %w", err)
	}

	var lib Library
	if err := yaml.Unmarshal(data, &lib); err != nil {
		return nil, fmt.Errorf("failed to parse library file: %w", err)
	}

	return &lib, nil
}

func loadCSV(path string) (*Library, error) {
	books, err := csvutil.ProcessCSV(path, parseBookRecord, csvutil.ProcessorOptions{
		FieldsPerRecord: len(csvHeader),
		Header:          csvHeader,
		SkipInvalid:     true,
	})
	if err != nil {
		return nil, err
	}

	return &Library{Books: books}, nil
}

func parseBookRecord(record []string) (BookEntry, error) {
	entry := BookEntry{
		Kind:   strings.ToLower(strings.TrimSpace(record[0])),
		Title:  strings.TrimSpace(record[1]),
		Author: strings.TrimSpace(record[2]),
		ISBN:   strings.TrimSpace(record[3]),
	}

	if entry.Title == "" {
		return BookEntry{}, fmt.Errorf("record has no title")
	}

	if copies := strings.TrimSpace(record[4]); copies != "" {
		n, err := strconv.Atoi(copies)
		if err != nil {
			return BookEntry{}, fmt.Errorf("invalid copy count %q: %w", record[4], err)
		}
		entry.Copies = n
	}

	return entry, nil
}
