package run

import (
	"log/slog"

	"github.com/velmu/circ/internal/fileutil"
	"github.com/velmu/circ/internal/session"
)

func writeReportToJSON(report *session.Report, filename string) error {
	_, err := fileutil.WriteJSONFile(report, filename, overwrite)
	return err
}

func writeReportToJSONIfEnabled(report *session.Report, writeJSON bool, jsonOutput string) {
	if !writeJSON {
		return
	}

	if err := writeReportToJSON(report, jsonOutput); err != nil {
		slog.Error("Error writing session report to JSON", "error", err)
	}
}
