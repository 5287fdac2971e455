// Package search looks up catalog entries from a library file by exact
// title or author, optionally browsing the matches in an interactive
// picker.
package search

import (
	"fmt"
	"log/slog"

	circerrors "github.com/velmu/circ/internal/errors"
	"github.com/velmu/circ/internal/library"
	"github.com/velmu/circ/internal/seed"
	"github.com/velmu/circ/internal/tui"
)

// Package-level variables for parameters resolved by the CLI layer
var (
	libraryFile string
	titleQuery  string
	authorQuery string
	interactive bool
)

var (
	searchFunc = searchCatalog
	selectBook = tui.SelectBook
)

// SearchWithParams allows calling catalog search with specific parameters
// This is used by the Kong-based CLI implementation
func SearchWithParams(inputFile, title, author string, interactiveFlag bool) error {
	if (title == "") == (author == "") {
		return fmt.Errorf("provide exactly one of --title or --author")
	}

	libraryFile = inputFile
	titleQuery = title
	authorQuery = author
	interactive = interactiveFlag

	return searchFunc()
}

func searchCatalog() error {
	lib, err := seed.Load(libraryFile)
	if err != nil {
		return fmt.Errorf("failed to load library file: %w", err)
	}

	books, err := lib.BuildBooks()
	if err != nil {
		return fmt.Errorf("failed to build books: %w", err)
	}

	catalog := library.NewCatalog()
	for _, book := range books {
		catalog.Add(book)
	}

	query := titleQuery
	matches := catalog.SearchByTitle(titleQuery)
	if authorQuery != "" {
		query = authorQuery
		matches = catalog.SearchByAuthor(authorQuery)
	}

	if len(matches) == 0 {
		slog.Info("No catalog matches", "query", query)
		return nil
	}

	for _, book := range matches {
		slog.Info("Catalog match",
			"title", book.Title(),
			"author", book.Author(),
			"isbn", book.ISBN(),
			"available", book.Available())
	}

	if !interactive {
		return nil
	}

	if err := browseMatches(query, matches); err != nil {
		if circerrors.IsStopBrowsingError(err) {
			slog.Info("Stopped browsing", "query", query)
			return nil
		}
		return err
	}

	return nil
}

// browseMatches loops the picker so several matches can be inspected in
// one sitting. A stop from the picker surfaces as a StopBrowsingError.
func browseMatches(query string, matches []library.Book) error {
	for {
		result, err := selectBook(query, matches)
		if err != nil {
			return err
		}

		switch result.Action {
		case tui.ActionSelected:
			book := result.Book
			slog.Info("Book details",
				"title", book.Title(),
				"author", book.Author(),
				"isbn", book.ISBN(),
				"available", book.Available())
		case tui.ActionStopped:
			return circerrors.NewStopBrowsingError("browsing stopped by user")
		default:
			return nil
		}
	}
}
