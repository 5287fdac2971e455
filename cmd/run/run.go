package run

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/velmu/circ/internal/seed"
	"github.com/velmu/circ/internal/session"
)

func runSession() error {
	lib, err := seed.Load(libraryFile)
	if err != nil {
		return fmt.Errorf("failed to load library file: %w", err)
	}

	books, err := lib.BuildBooks()
	if err != nil {
		return fmt.Errorf("failed to build books: %w", err)
	}

	borrowers, err := lib.BuildBorrowers()
	if err != nil {
		return fmt.Errorf("failed to build borrowers: %w", err)
	}

	slog.Info("Loaded library file",
		"path", libraryFile,
		"books", len(books),
		"borrowers", len(borrowers),
		"operations", len(lib.Operations))

	sess := session.New(books, borrowers)
	report := sess.Run(toSessionOps(lib.Operations))

	if err := writeBooksToMarkdown(report.Books, outputDir); err != nil {
		return err
	}

	writeReportToJSONIfEnabled(report, writeJSON, jsonOutput)

	failed := 0
	for _, outcome := range report.Outcomes {
		if !outcome.OK {
			failed++
		}
	}
	slog.Info("Session complete",
		"run_id", report.RunID,
		"operations", len(report.Outcomes),
		"failed", failed)

	return nil
}

// toSessionOps normalizes file entries into session ops. Unknown actions
// pass through raw so the session records them as failed outcomes instead
// of aborting the run.
func toSessionOps(entries []seed.OpEntry) []session.Op {
	ops := make([]session.Op, 0, len(entries))
	for _, entry := range entries {
		action, err := session.ParseAction(entry.Action)
		if err != nil {
			action = session.Action(strings.ToLower(strings.TrimSpace(entry.Action)))
		}
		ops = append(ops, session.Op{
			Action:   action,
			Borrower: entry.Borrower,
			ISBN:     entry.ISBN,
			Query:    entry.Query,
		})
	}
	return ops
}
