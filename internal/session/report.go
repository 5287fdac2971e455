package session

import (
	"time"

	"github.com/google/uuid"
)

// Op is one scripted operation to execute.
type Op struct {
	Action   Action
	Borrower string
	ISBN     string
	Query    string
}

// Outcome records what one operation did. OK mirrors the boolean results
// of the circulation core; Detail explains failures in the driver's words.
type Outcome struct {
	Seq      int      `json:"seq"`
	Action   Action   `json:"action"`
	Borrower string   `json:"borrower,omitempty"`
	Title    string   `json:"title,omitempty"`
	ISBN     string   `json:"isbn,omitempty"`
	Query    string   `json:"query,omitempty"`
	OK       bool     `json:"ok"`
	Detail   string   `json:"detail,omitempty"`
	Matches  []string `json:"matches,omitempty"`
}

// BookState is the end-of-run snapshot of one book.
// Copies is nil for books without finite stock.
type BookState struct {
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	ISBN      string   `json:"isbn"`
	Kind      string   `json:"kind"`
	Available bool     `json:"available"`
	Copies    *int     `json:"copies,omitempty"`
	Holders   []string `json:"holders,omitempty"`
	InCatalog bool     `json:"in_catalog"`
}

// Report is the full record of a session run.
type Report struct {
	RunID     uuid.UUID   `json:"run_id"`
	StartedAt time.Time   `json:"started_at"`
	Outcomes  []Outcome   `json:"outcomes"`
	Books     []BookState `json:"books"`
}
