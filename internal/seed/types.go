// Package seed loads library descriptions from YAML and CSV files and
// materializes them into circulation entities.
package seed

// Book kinds accepted in library files.
const (
	KindPhysical = "physical"
	KindEBook    = "ebook"
)

// Borrower roles accepted in library files.
const (
	RoleStudent   = "student"
	RoleProfessor = "professor"
	RoleLibrarian = "librarian"
)

// BookEntry describes one book in a library file.
type BookEntry struct {
	Kind   string `yaml:"kind"`
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	ISBN   string `yaml:"isbn"`
	Copies int    `yaml:"copies,omitempty"`
}

// BorrowerEntry describes one borrower in a library file.
type BorrowerEntry struct {
	Name string `yaml:"name"`
	Role string `yaml:"role"`
}

// OpEntry describes one scripted operation in a library file.
// Borrower, ISBN and Query are filled in as the action requires.
type OpEntry struct {
	Action   string `yaml:"action"`
	Borrower string `yaml:"borrower,omitempty"`
	ISBN     string `yaml:"isbn,omitempty"`
	Query    string `yaml:"query,omitempty"`
}

// Library is the parsed form of a library file.
type Library struct {
	Books      []BookEntry     `yaml:"books"`
	Borrowers  []BorrowerEntry `yaml:"borrowers"`
	Operations []OpEntry       `yaml:"operations,omitempty"`
}
