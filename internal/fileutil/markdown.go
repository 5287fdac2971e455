package fileutil

import (
	"fmt"
	"strings"
)

// MarkdownBuilder helps construct markdown documents with frontmatter
type MarkdownBuilder struct {
	frontmatter    strings.Builder
	content        strings.Builder
	hasFrontmatter bool
}

// NewMarkdownBuilder creates a new markdown builder
func NewMarkdownBuilder() *MarkdownBuilder {
	mb := &MarkdownBuilder{}
	mb.frontmatter.WriteString("---\n")
	mb.hasFrontmatter = true
	return mb
}

// AddTitle adds a title field to the frontmatter
func (mb *MarkdownBuilder) AddTitle(title string) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "title: \"%s\"\n", title)
	return mb
}

// AddType adds a type field to the frontmatter
func (mb *MarkdownBuilder) AddType(bookType string) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "type: %s\n", bookType)
	return mb
}

// AddField adds a simple key-value field to the frontmatter.
// Empty strings and zero numbers are skipped.
func (mb *MarkdownBuilder) AddField(key string, value interface{}) *MarkdownBuilder {
	switch v := value.(type) {
	case string:
		if v != "" {
			fmt.Fprintf(&mb.frontmatter, "%s: \"%s\"\n", key, v)
		}
	case int:
		if v != 0 {
			fmt.Fprintf(&mb.frontmatter, "%s: %d\n", key, v)
		}
	case bool:
		fmt.Fprintf(&mb.frontmatter, "%s: %t\n", key, v)
	}
	return mb
}

// AddCopies adds a copy count to the frontmatter. Zero is meaningful here
// (out of stock), so the field is always written.
func (mb *MarkdownBuilder) AddCopies(copies int) *MarkdownBuilder {
	fmt.Fprintf(&mb.frontmatter, "copies: %d\n", copies)
	return mb
}

// AddStringArray adds an array of strings to the frontmatter
func (mb *MarkdownBuilder) AddStringArray(key string, values []string) *MarkdownBuilder {
	if len(values) == 0 {
		return mb
	}

	mb.frontmatter.WriteString(key + ":\n")
	for _, value := range values {
		if value != "" {
			fmt.Fprintf(&mb.frontmatter, "  - \"%s\"\n", strings.TrimSpace(value))
		}
	}
	return mb
}

// AddParagraph adds a paragraph of text to the content
func (mb *MarkdownBuilder) AddParagraph(text string) *MarkdownBuilder {
	if text == "" {
		return mb
	}

	mb.content.WriteString(text)
	mb.content.WriteString("\n\n")
	return mb
}

// Build returns the complete markdown document as a string
func (mb *MarkdownBuilder) Build() string {
	if !mb.hasFrontmatter {
		return mb.content.String()
	}

	var doc strings.Builder
	doc.WriteString(mb.frontmatter.String())
	doc.WriteString("---\n\n")
	doc.WriteString(mb.content.String())

	return doc.String()
}
