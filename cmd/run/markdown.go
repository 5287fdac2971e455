package run

import (
	"fmt"
	"strings"

	"github.com/velmu/circ/internal/fileutil"
	"github.com/velmu/circ/internal/session"
)

// writeBookToMarkdown writes one end-of-session book snapshot to a markdown file
func writeBookToMarkdown(state session.BookState, directory string) error {
	filePath := fileutil.GetMarkdownFilePath(state.Title, directory)

	mb := fileutil.NewMarkdownBuilder()
	mb.AddTitle(fileutil.SanitizeFilename(state.Title))
	mb.AddType(state.Kind)
	mb.AddField("author", state.Author)
	mb.AddField("isbn", state.ISBN)
	if state.Copies != nil {
		mb.AddCopies(*state.Copies)
	}
	mb.AddField("available", state.Available)
	mb.AddField("in_catalog", state.InCatalog)
	mb.AddStringArray("holders", state.Holders)

	mb.AddParagraph(fmt.Sprintf("%s by %s.", state.Title, state.Author))
	mb.AddParagraph(describeStock(state))
	if len(state.Holders) > 0 {
		mb.AddParagraph(fmt.Sprintf("On loan to %s.", strings.Join(state.Holders, ", ")))
	}

	written, err := fileutil.WriteFileWithOverwrite(filePath, []byte(mb.Build()), 0644, overwrite)
	if err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}
	fileutil.LogFileWriteResult(written, filePath)

	return nil
}

func writeBooksToMarkdown(states []session.BookState, directory string) error {
	for _, state := range states {
		if err := writeBookToMarkdown(state, directory); err != nil {
			return err
		}
	}
	return nil
}

// describeStock renders the availability sentence for the note body.
func describeStock(state session.BookState) string {
	switch state.Kind {
	case "ebook":
		return "E-book, always available."
	case "physical":
		if state.Copies == nil {
			break
		}
		switch copies := *state.Copies; copies {
		case 0:
			return "Physical book, currently out of stock."
		case 1:
			return "Physical book with 1 copy on the shelf."
		default:
			return fmt.Sprintf("Physical book with %d copies on the shelf.", copies)
		}
	}

	if state.Available {
		return "Available."
	}
	return "Unavailable."
}
