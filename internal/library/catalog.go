package library

import "strings"

// Catalog is the collection of books known to the library. Membership is
// append-only, and nothing is required to be unique: the same ISBN or
// title may appear on more than one entry.
type Catalog struct {
	books []Book
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends a book to the catalog.
func (c *Catalog) Add(book Book) {
	c.books = append(c.books, book)
}

// Len returns the number of books in the catalog.
func (c *Catalog) Len() int {
	return len(c.books)
}

// Books returns the catalog contents in insertion order.
func (c *Catalog) Books() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// SearchByTitle returns every book whose title equals the query ignoring
// case. The match is exact: no trimming, no substrings. Results keep
// catalog insertion order.
func (c *Catalog) SearchByTitle(title string) []Book {
	return c.search(func(b Book) bool { return strings.EqualFold(b.Title(), title) })
}

// SearchByAuthor returns every book whose author equals the query
// ignoring case, in catalog insertion order.
func (c *Catalog) SearchByAuthor(author string) []Book {
	return c.search(func(b Book) bool { return strings.EqualFold(b.Author(), author) })
}

func (c *Catalog) search(match func(Book) bool) []Book {
	var out []Book
	for _, b := range c.books {
		if match(b) {
			out = append(out, b)
		}
	}
	return out
}
