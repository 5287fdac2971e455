package session

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmu/circ/internal/library"
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

func TestParseAction(t *testing.T) {
	testCases := []struct {
		input   string
		want    Action
		wantErr bool
	}{
		{input: "add", want: ActionAdd},
		{input: "borrow", want: ActionBorrow},
		{input: "return", want: ActionReturn},
		{input: "search-title", want: ActionSearchTitle},
		{input: "search-author", want: ActionSearchAuthor},
		{input: " Borrow ", want: ActionBorrow},
		{input: "SEARCH-TITLE", want: ActionSearchTitle},
		{input: "steal", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseAction(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRunWalkthrough(t *testing.T) {
	books, borrowers := demoWorld()
	s := New(books, borrowers)

	report := s.Run([]Op{
		{Action: ActionAdd, Borrower: "Carol", ISBN: "123456"},
		{Action: ActionAdd, Borrower: "Carol", ISBN: "789012"},
		{Action: ActionBorrow, Borrower: "Alice", ISBN: "123456"},
		{Action: ActionBorrow, Borrower: "Bob", ISBN: "789012"},
		{Action: ActionSearchTitle, Query: "Clean Code"},
		{Action: ActionReturn, Borrower: "Alice", ISBN: "123456"},
	})

	require.Len(t, report.Outcomes, 6)
	for i, outcome := range report.Outcomes {
		assert.Equal(t, i+1, outcome.Seq)
		assert.True(t, outcome.OK, "operation %d should succeed: %s", i+1, outcome.Detail)
	}

	search := report.Outcomes[4]
	assert.Equal(t, []string{"Clean Code"}, search.Matches)

	require.Len(t, report.Books, 2)
	gatsby := report.Books[0]
	assert.Equal(t, "physical", gatsby.Kind)
	require.NotNil(t, gatsby.Copies)
	assert.Equal(t, 5, *gatsby.Copies, "returned copy should restore the count")
	assert.True(t, gatsby.InCatalog)
	assert.Empty(t, gatsby.Holders)

	clean := report.Books[1]
	assert.Equal(t, "ebook", clean.Kind)
	assert.Nil(t, clean.Copies)
	assert.True(t, clean.Available)
	assert.Equal(t, []string{"Bob"}, clean.Holders)
}

func TestRunReportIdentity(t *testing.T) {
	books, borrowers := demoWorld()
	report := New(books, borrowers).Run(nil)

	assert.NotEqual(t, uuid.Nil, report.RunID)
	assert.False(t, report.StartedAt.IsZero())
	assert.Empty(t, report.Outcomes)
	assert.Len(t, report.Books, 2)
}

func TestRunUnknownReferences(t *testing.T) {
	books, borrowers := demoWorld()
	s := New(books, borrowers)

	report := s.Run([]Op{
		{Action: ActionBorrow, Borrower: "Mallory", ISBN: "123456"},
		{Action: ActionBorrow, Borrower: "Alice", ISBN: "000000"},
		{Action: ActionReturn, Borrower: "Mallory", ISBN: "123456"},
		{Action: ActionAdd, Borrower: "Nobody", ISBN: "123456"},
		{Action: ActionBorrow, Borrower: "Alice", ISBN: "123456"},
	})

	require.Len(t, report.Outcomes, 5)
	assert.False(t, report.Outcomes[0].OK)
	assert.Equal(t, "unknown borrower", report.Outcomes[0].Detail)
	assert.False(t, report.Outcomes[1].OK)
	assert.Equal(t, "unknown isbn", report.Outcomes[1].Detail)
	assert.False(t, report.Outcomes[2].OK)
	assert.False(t, report.Outcomes[3].OK)

	// The run carries on past failures.
	assert.True(t, report.Outcomes[4].OK)

	gatsby := report.Books[0]
	require.NotNil(t, gatsby.Copies)
	assert.Equal(t, 4, *gatsby.Copies, "only the valid borrow should touch stock")
}

func TestRunAddRequiresLibrarian(t *testing.T) {
	books, borrowers := demoWorld()
	s := New(books, borrowers)

	report := s.Run([]Op{
		{Action: ActionAdd, Borrower: "Alice", ISBN: "123456"},
		{Action: ActionAdd, Borrower: "Bob", ISBN: "123456"},
	})

	for _, outcome := range report.Outcomes {
		assert.False(t, outcome.OK)
		assert.Equal(t, "not a librarian", outcome.Detail)
	}
	assert.Zero(t, s.Catalog().Len())
}

func TestRunBorrowFailureDetails(t *testing.T) {
	books := []library.Book{
		library.NewPhysicalBook("Dune", "Frank Herbert", "0441172717", 0),
		library.NewEBook("Clean Code", "Robert Martin", "789012"),
	}
	borrowers := []library.Borrower{
		library.NewStudent("Alice"),
		library.NewLibrarian("Carol"),
	}
	s := New(books, borrowers)

	report := s.Run([]Op{
		{Action: ActionBorrow, Borrower: "Alice", ISBN: "0441172717"},
		{Action: ActionBorrow, Borrower: "Carol", ISBN: "789012"},
	})

	assert.False(t, report.Outcomes[0].OK)
	assert.Equal(t, "no copies available", report.Outcomes[0].Detail)

	assert.False(t, report.Outcomes[1].OK)
	assert.Equal(t, "borrowing limit reached", report.Outcomes[1].Detail)
}

func TestRunReturnNotHeld(t *testing.T) {
	books, borrowers := demoWorld()
	s := New(books, borrowers)

	report := s.Run([]Op{
		{Action: ActionReturn, Borrower: "Alice", ISBN: "123456"},
	})

	outcome := report.Outcomes[0]
	assert.False(t, outcome.OK)
	assert.Equal(t, "not held", outcome.Detail)

	gatsby := report.Books[0]
	require.NotNil(t, gatsby.Copies)
	assert.Equal(t, 5, *gatsby.Copies, "failed return must not grow stock")
}

func TestRunSearchSeesOnlyAddedBooks(t *testing.T) {
	books, borrowers := demoWorld()
	s := New(books, borrowers)

	report := s.Run([]Op{
		{Action: ActionSearchTitle, Query: "Clean Code"},
		{Action: ActionAdd, Borrower: "Carol", ISBN: "789012"},
		{Action: ActionSearchTitle, Query: "clean code"},
		{Action: ActionSearchAuthor, Query: "robert martin"},
	})

	before := report.Outcomes[0]
	assert.False(t, before.OK)
	assert.Equal(t, "no matches", before.Detail)
	assert.Empty(t, before.Matches)

	afterTitle := report.Outcomes[2]
	assert.True(t, afterTitle.OK)
	assert.Equal(t, []string{"Clean Code"}, afterTitle.Matches)

	afterAuthor := report.Outcomes[3]
	assert.True(t, afterAuthor.OK)
	assert.Equal(t, []string{"Clean Code"}, afterAuthor.Matches)
}

func TestRunUnknownAction(t *testing.T) {
	books, borrowers := demoWorld()
	s := New(books, borrowers)

	report := s.Run([]Op{{Action: Action("shred"), ISBN: "123456"}})

	outcome := report.Outcomes[0]
	assert.False(t, outcome.OK)
	assert.Equal(t, "unknown action", outcome.Detail)
}

func TestNewKeepsFirstDuplicateISBN(t *testing.T) {
	first := library.NewPhysicalBook("Dune", "Frank Herbert", "0441172717", 1)
	second := library.NewPhysicalBook("Dune Reprint", "Frank Herbert", "0441172717", 9)
	s := New([]library.Book{first, second}, []library.Borrower{library.NewStudent("Alice")})

	report := s.Run([]Op{
		{Action: ActionBorrow, Borrower: "Alice", ISBN: "0441172717"},
	})

	assert.True(t, report.Outcomes[0].OK)
	assert.Equal(t, "Dune", report.Outcomes[0].Title)
	assert.Equal(t, 0, first.Copies())
	assert.Equal(t, 9, second.Copies(), "duplicate entry must stay untouched")

	// Both books still show up in the end-state snapshot.
	require.Len(t, report.Books, 2)
	assert.Equal(t, "Dune", report.Books[0].Title)
	assert.Equal(t, "Dune Reprint", report.Books[1].Title)
}

func TestSnapshotHolders(t *testing.T) {
	gatsby := library.NewPhysicalBook("The Great Gatsby", "F. Scott Fitzgerald", "123456", 5)
	alice := library.NewStudent("Alice")
	bob := library.NewProfessor("Bob")
	s := New([]library.Book{gatsby}, []library.Borrower{alice, bob})

	report := s.Run([]Op{
		{Action: ActionBorrow, Borrower: "Alice", ISBN: "123456"},
		{Action: ActionBorrow, Borrower: "Bob", ISBN: "123456"},
	})

	state := report.Books[0]
	assert.Equal(t, []string{"Alice", "Bob"}, state.Holders)
	require.NotNil(t, state.Copies)
	assert.Equal(t, 3, *state.Copies)
	assert.False(t, state.InCatalog, "borrowing never implies catalog membership")
}
