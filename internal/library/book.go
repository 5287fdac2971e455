// Package library implements the circulation core: books with
// availability and stock semantics, borrowers with per-role lending
// limits, and the searchable catalog that ties them together.
//
// Every fallible operation in this package reports a plain boolean.
// Nothing here logs or returns errors; narrating outcomes is the job of
// whatever drives the core.
package library

// Book is the capability shared by every catalog item: identifying
// information plus availability and borrow semantics.
type Book interface {
	Title() string
	Author() string
	ISBN() string
	// Available reports whether the book can be borrowed right now.
	Available() bool
	// Borrow claims one loan of the book and reports whether it succeeded.
	Borrow() bool
}

// Restocker is implemented by book variants with finite stock that can be
// restored when a copy comes back. Callers that handle returns should
// assert for it instead of inspecting concrete types.
type Restocker interface {
	Restock()
}

// bookInfo carries the identifying fields common to all book variants.
type bookInfo struct {
	title  string
	author string
	isbn   string
}

func (b bookInfo) Title() string  { return b.title }
func (b bookInfo) Author() string { return b.author }
func (b bookInfo) ISBN() string   { return b.isbn }

// PhysicalBook is a book with a finite number of loanable copies. The
// copy count is owned by the book and only its own methods touch it.
type PhysicalBook struct {
	bookInfo
	copies int
}

// NewPhysicalBook creates a physical book holding the given number of
// copies. A negative count is treated as zero so the stock can never
// start below empty.
func NewPhysicalBook(title, author, isbn string, copies int) *PhysicalBook {
	if copies < 0 {
		copies = 0
	}
	return &PhysicalBook{
		bookInfo: bookInfo{title: title, author: author, isbn: isbn},
		copies:   copies,
	}
}

// Available reports whether at least one copy is on the shelf.
func (b *PhysicalBook) Available() bool {
	return b.copies > 0
}

// Borrow takes one copy off the shelf. With no copies left it reports
// false and changes nothing.
func (b *PhysicalBook) Borrow() bool {
	if !b.Available() {
		return false
	}
	b.copies--
	return true
}

// Restock puts one copy back on the shelf.
func (b *PhysicalBook) Restock() {
	b.copies++
}

// Copies returns the number of copies currently on the shelf.
func (b *PhysicalBook) Copies() int {
	return b.copies
}

// EBook is a book with unlimited access. It is always available and
// borrowing it consumes nothing, so there is nothing to restock.
type EBook struct {
	bookInfo
}

// NewEBook creates an electronic book.
func NewEBook(title, author, isbn string) *EBook {
	return &EBook{bookInfo{title: title, author: author, isbn: isbn}}
}

// Available always reports true.
func (b *EBook) Available() bool { return true }

// Borrow always succeeds.
func (b *EBook) Borrow() bool { return true }
