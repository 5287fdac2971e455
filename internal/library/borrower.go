package library

// Borrowing limits per borrower variant.
const (
	studentLimit   = 3
	professorLimit = 5
	librarianLimit = 0
)

// Borrower is a library member who can hold books up to a fixed,
// per-variant limit.
type Borrower interface {
	Name() string
	// BorrowingLimit returns how many books this borrower may hold at once.
	BorrowingLimit() int
	// Borrow attempts to take the book and reports whether it succeeded.
	Borrow(book Book) bool
	// Return hands the book back and reports whether it was actually held.
	Return(book Book) bool
	// Held returns the books currently held, oldest loan first.
	Held() []Book
}

// member carries the state and lending rules shared by every borrower
// variant. The borrowing limit is fixed at construction.
type member struct {
	name  string
	limit int
	held  []Book
}

func (m *member) Name() string        { return m.name }
func (m *member) BorrowingLimit() int { return m.limit }

// Borrow checks the borrowing limit before asking the book for a copy.
// The held list grows only when both the limit check and the book-level
// borrow succeed, so len(held) <= limit holds across any call sequence.
func (m *member) Borrow(book Book) bool {
	if len(m.held) >= m.limit {
		return false
	}
	if !book.Borrow() {
		return false
	}
	m.held = append(m.held, book)
	return true
}

// Return removes the first held occurrence of book, restoring physical
// stock through the Restocker capability. Returning a book that is not
// held is a no-op and reports false.
func (m *member) Return(book Book) bool {
	for i, held := range m.held {
		if held != book {
			continue
		}
		m.held = append(m.held[:i], m.held[i+1:]...)
		if r, ok := book.(Restocker); ok {
			r.Restock()
		}
		return true
	}
	return false
}

// Held returns the held books in borrow order.
func (m *member) Held() []Book {
	out := make([]Book, len(m.held))
	copy(out, m.held)
	return out
}

// Student may hold up to three books at a time.
type Student struct {
	member
}

// NewStudent creates a student borrower.
func NewStudent(name string) *Student {
	return &Student{member{name: name, limit: studentLimit}}
}

// Professor may hold up to five books at a time.
type Professor struct {
	member
}

// NewProfessor creates a professor borrower.
func NewProfessor(name string) *Professor {
	return &Professor{member{name: name, limit: professorLimit}}
}

// Librarian manages the catalog and does not borrow at all: the zero
// limit makes every Borrow call fail before it reaches a book.
type Librarian struct {
	member
}

// NewLibrarian creates a librarian.
func NewLibrarian(name string) *Librarian {
	return &Librarian{member{name: name, limit: librarianLimit}}
}

// AddBook places a book into the catalog. Adding books is the
// librarian's capability alone; no other variant has this method.
func (l *Librarian) AddBook(catalog *Catalog, book Book) {
	catalog.Add(book)
}
