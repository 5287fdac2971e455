package seed

import (
	"fmt"
	"strings"

	"github.com/velmu/circ/internal/library"
)

// Build materializes a book entry via the matching constructor.
// An empty kind defaults to a physical book.
func (e BookEntry) Build() (library.Book, error) {
	switch strings.ToLower(e.Kind) {
	case KindPhysical, "":
		return library.NewPhysicalBook(e.Title, e.Author, e.ISBN, e.Copies), nil
	case KindEBook:
		return library.NewEBook(e.Title, e.Author, e.ISBN), nil
	default:
		return nil, fmt.Errorf("unknown book kind %q for %q", e.Kind, e.Title)
	}
}

// Build materializes a borrower entry via the matching constructor.
func (e BorrowerEntry) Build() (library.Borrower, error) {
	switch strings.ToLower(e.Role) {
	case RoleStudent:
		return library.NewStudent(e.Name), nil
	case RoleProfessor:
		return library.NewProfessor(e.Name), nil
	case RoleLibrarian:
		return library.NewLibrarian(e.Name), nil
	default:
		return nil, fmt.Errorf("unknown borrower role %q for %q", e.Role, e.Name)
	}
}

// BuildBooks materializes every book entry, preserving file order.
func (l *Library) BuildBooks() ([]library.Book, error) {
	books := make([]library.Book, 0, len(l.Books))
	for _, entry := range l.Books {
		book, err := entry.Build()
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// BuildBorrowers materializes every borrower entry, preserving file order.
func (l *Library) BuildBorrowers() ([]library.Borrower, error) {
	borrowers := make([]library.Borrower, 0, len(l.Borrowers))
	for _, entry := range l.Borrowers {
		borrower, err := entry.Build()
		if err != nil {
			return nil, err
		}
		borrowers = append(borrowers, borrower)
	}
	return borrowers, nil
}
