// Package demo runs a canned circulation walkthrough against an
// in-memory library, showing every moving part without needing input
// files.
package demo

import (
	"log/slog"

	"github.com/velmu/circ/internal/library"
	"github.com/velmu/circ/internal/session"
)

func demoWorld() ([]library.Book, []library.Borrower) {
	books := []library.Book{
		library.NewPhysicalBook("The Great Gatsby", "F. Scott Fitzgerald", "123456", 5),
		library.NewEBook("Clean Code", "Robert Martin", "789012"),
	}
	borrowers := []library.Borrower{
		library.NewStudent("Alice"),
		library.NewProfessor("Bob"),
		library.NewLibrarian("Carol"),
	}
	return books, borrowers
}

func demoOps() []session.Op {
	return []session.Op{
		{Action: session.ActionAdd, Borrower: "Carol", ISBN: "123456"},
		{Action: session.ActionAdd, Borrower: "Carol", ISBN: "789012"},
		{Action: session.ActionBorrow, Borrower: "Alice", ISBN: "123456"},
		{Action: session.ActionBorrow, Borrower: "Bob", ISBN: "789012"},
		{Action: session.ActionSearchTitle, Query: "Clean Code"},
		{Action: session.ActionReturn, Borrower: "Alice", ISBN: "123456"},
	}
}

// RunDemo plays the walkthrough and logs each operation as it lands.
func RunDemo() error {
	slog.Info("Running circulation walkthrough")

	books, borrowers := demoWorld()
	sess := session.New(books, borrowers)
	report := sess.Run(demoOps())

	succeeded := 0
	for _, outcome := range report.Outcomes {
		if outcome.OK {
			succeeded++
		}
	}

	slog.Info("Walkthrough complete",
		"run_id", report.RunID,
		"operations", len(report.Outcomes),
		"succeeded", succeeded,
		"failed", len(report.Outcomes)-succeeded)

	return nil
}
