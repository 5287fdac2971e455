// Package session executes scripted circulation operations against an
// in-memory library and records what happened. The core reports plain
// booleans; this layer resolves names and ISBNs, narrates outcomes via
// slog and derives failure details from observable state.
package session

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/velmu/circ/internal/library"
)

// Session owns the catalog, the ISBN lookup and the borrower roster for
// one run. Operations refer to books by ISBN and borrowers by name.
type Session struct {
	catalog   *library.Catalog
	books     map[string]library.Book
	order     []library.Book
	borrowers map[string]library.Borrower
	roster    []library.Borrower
}

// New builds a session from materialized entities. Duplicate ISBNs and
// names are permitted in the inputs; lookups resolve to the first
// occurrence and the duplicates are logged.
func New(books []library.Book, borrowers []library.Borrower) *Session {
	s := &Session{
		catalog:   library.NewCatalog(),
		books:     make(map[string]library.Book, len(books)),
		borrowers: make(map[string]library.Borrower, len(borrowers)),
	}

	for _, book := range books {
		s.order = append(s.order, book)
		if _, seen := s.books[book.ISBN()]; seen {
			slog.Warn("Duplicate ISBN in library file, keeping first", "isbn", book.ISBN(), "title", book.Title())
			continue
		}
		s.books[book.ISBN()] = book
	}

	for _, borrower := range borrowers {
		s.roster = append(s.roster, borrower)
		if _, seen := s.borrowers[borrower.Name()]; seen {
			slog.Warn("Duplicate borrower name, keeping first", "name", borrower.Name())
			continue
		}
		s.borrowers[borrower.Name()] = borrower
	}

	return s
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() *library.Catalog {
	return s.catalog
}

// Run executes the operations in order and returns the full report.
// Failed operations become failed outcomes; the run never aborts.
func (s *Session) Run(ops []Op) *Report {
	report := &Report{
		RunID:     uuid.New(),
		StartedAt: time.Now().UTC(),
	}

	for i, op := range ops {
		outcome := s.apply(op)
		outcome.Seq = i + 1
		report.Outcomes = append(report.Outcomes, outcome)
	}

	report.Books = s.snapshot()
	return report
}

func (s *Session) apply(op Op) Outcome {
	switch op.Action {
	case ActionAdd:
		return s.add(op)
	case ActionBorrow:
		return s.borrow(op)
	case ActionReturn:
		return s.giveBack(op)
	case ActionSearchTitle, ActionSearchAuthor:
		return s.search(op)
	default:
		slog.Warn("Skipping unknown action", "action", op.Action)
		return Outcome{Action: op.Action, Detail: "unknown action"}
	}
}

// add places a book in the catalog. Only borrowers with the librarian
// capability may do it; for everyone else the outcome fails.
func (s *Session) add(op Op) Outcome {
	out := Outcome{Action: ActionAdd, Borrower: op.Borrower, ISBN: op.ISBN}

	borrower, ok := s.borrowers[op.Borrower]
	if !ok {
		out.Detail = "unknown borrower"
		slog.Warn("Cannot add book", "borrower", op.Borrower, "reason", out.Detail)
		return out
	}
	book, ok := s.books[op.ISBN]
	if !ok {
		out.Detail = "unknown isbn"
		slog.Warn("Cannot add book", "isbn", op.ISBN, "reason", out.Detail)
		return out
	}
	out.Title = book.Title()

	librarian, ok := borrower.(*library.Librarian)
	if !ok {
		out.Detail = "not a librarian"
		slog.Warn("Cannot add book", "borrower", borrower.Name(), "reason", out.Detail)
		return out
	}

	librarian.AddBook(s.catalog, book)
	out.OK = true
	slog.Info("Added book to catalog", "title", book.Title(), "librarian", librarian.Name())
	return out
}

func (s *Session) borrow(op Op) Outcome {
	out := Outcome{Action: ActionBorrow, Borrower: op.Borrower, ISBN: op.ISBN}

	borrower, ok := s.borrowers[op.Borrower]
	if !ok {
		out.Detail = "unknown borrower"
		slog.Warn("Cannot borrow book", "borrower", op.Borrower, "reason", out.Detail)
		return out
	}
	book, ok := s.books[op.ISBN]
	if !ok {
		out.Detail = "unknown isbn"
		slog.Warn("Cannot borrow book", "isbn", op.ISBN, "reason", out.Detail)
		return out
	}
	out.Title = book.Title()

	if borrower.Borrow(book) {
		out.OK = true
		slog.Info("Borrowed book", "title", book.Title(), "borrower", borrower.Name())
		return out
	}

	out.Detail = borrowFailureDetail(borrower, book)
	slog.Warn("Cannot borrow book", "title", book.Title(), "borrower", borrower.Name(), "reason", out.Detail)
	return out
}

func (s *Session) giveBack(op Op) Outcome {
	out := Outcome{Action: ActionReturn, Borrower: op.Borrower, ISBN: op.ISBN}

	borrower, ok := s.borrowers[op.Borrower]
	if !ok {
		out.Detail = "unknown borrower"
		slog.Warn("Cannot return book", "borrower", op.Borrower, "reason", out.Detail)
		return out
	}
	book, ok := s.books[op.ISBN]
	if !ok {
		out.Detail = "unknown isbn"
		slog.Warn("Cannot return book", "isbn", op.ISBN, "reason", out.Detail)
		return out
	}
	out.Title = book.Title()

	if borrower.Return(book) {
		out.OK = true
		slog.Info("Returned book", "title", book.Title(), "borrower", borrower.Name())
		return out
	}

	out.Detail = "not held"
	slog.Warn("Cannot return book", "title", book.Title(), "borrower", borrower.Name(), "reason", out.Detail)
	return out
}

// search consults the catalog, so it sees only what add has placed there.
func (s *Session) search(op Op) Outcome {
	out := Outcome{Action: op.Action, Query: op.Query}

	var matches []library.Book
	switch op.Action {
	case ActionSearchTitle:
		matches = s.catalog.SearchByTitle(op.Query)
	case ActionSearchAuthor:
		matches = s.catalog.SearchByAuthor(op.Query)
	}

	for _, match := range matches {
		out.Matches = append(out.Matches, match.Title())
	}

	if len(matches) == 0 {
		out.Detail = "no matches"
		slog.Info("No catalog matches", "action", op.Action, "query", op.Query)
		return out
	}

	out.OK = true
	slog.Info("Catalog search", "action", op.Action, "query", op.Query, "matches", len(matches))
	return out
}

// borrowFailureDetail mirrors the core's check order: the borrower's
// count check runs strictly before the book-level borrow.
func borrowFailureDetail(borrower library.Borrower, book library.Book) string {
	if len(borrower.Held()) >= borrower.BorrowingLimit() {
		return "borrowing limit reached"
	}
	if !book.Available() {
		return "no copies available"
	}
	return "borrow refused"
}

func (s *Session) snapshot() []BookState {
	inCatalog := make(map[library.Book]bool)
	for _, book := range s.catalog.Books() {
		inCatalog[book] = true
	}

	states := make([]BookState, 0, len(s.order))
	seen := make(map[library.Book]bool, len(s.order))
	for _, book := range s.order {
		if seen[book] {
			continue
		}
		seen[book] = true

		state := BookState{
			Title:     book.Title(),
			Author:    book.Author(),
			ISBN:      book.ISBN(),
			Available: book.Available(),
			InCatalog: inCatalog[book],
		}

		switch b := book.(type) {
		case *library.PhysicalBook:
			state.Kind = "physical"
			copies := b.Copies()
			state.Copies = &copies
		case *library.EBook:
			state.Kind = "ebook"
		}

		for _, borrower := range s.roster {
			for _, held := range borrower.Held() {
				if held == book {
					state.Holders = append(state.Holders, borrower.Name())
					break
				}
			}
		}

		states = append(states, state)
	}

	return states
}
