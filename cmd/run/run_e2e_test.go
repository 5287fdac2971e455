package run

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/velmu/circ/internal/config"
	"github.com/velmu/circ/internal/frontmatter"
	"github.com/velmu/circ/internal/session"
	"github.com/velmu/circ/internal/testutil"
)

const sampleLibraryYAML = `books:
  - kind: physical
    title: The Great Gatsby
    author: F. Scott Fitzgerald
    isbn: "123456"
    copies: 5
  - kind: ebook
    title: Clean Code
    author: Robert Martin
    isbn: "789012"
borrowers:
  - name: Alice
    role: student
  - name: Bob
    role: professor
  - name: Carol
    role: librarian
operations:
  - action: add
    borrower: Carol
    isbn: "123456"
  - action: add
    borrower: Carol
    isbn: "789012"
  - action: borrow
    borrower: Alice
    isbn: "123456"
  - action: search-title
    query: Clean Code
  - action: borrow
    borrower: Bob
    isbn: "999999"
`

func TestRunSessionE2E(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)
	testutil.SetupMarkdownOutput(t, env)
	testutil.SetupJSONOutput(t, env)

	env.WriteFileString("library.yaml", sampleLibraryYAML)

	err := RunWithParams(env.Path("library.yaml"), "", true, "", false)
	require.NoError(t, err)

	// Markdown snapshots land under <markdownoutputdir>/books
	outputPath := filepath.Join(env.RootDir(), "books")
	files, err := filepath.Glob(filepath.Join(outputPath, "*.md"))
	require.NoError(t, err)
	require.Len(t, files, 2, "one snapshot per book")

	content, err := os.ReadFile(filepath.Join(outputPath, "The Great Gatsby.md"))
	require.NoError(t, err)

	note, err := frontmatter.ParseMarkdown(content)
	require.NoError(t, err)
	require.Equal(t, "The Great Gatsby", note.GetString("title"))
	require.Equal(t, "physical", note.GetString("type"))
	require.Equal(t, "F. Scott Fitzgerald", note.GetString("author"))
	require.Equal(t, "123456", note.GetString("isbn"))
	// Alice still holds a copy at the end of the session.
	require.Equal(t, 4, note.GetInt("copies"))
	require.True(t, note.GetBool("available"))
	require.True(t, note.GetBool("in_catalog"))
	require.Equal(t, []string{"Alice"}, note.GetStrings("holders"))
	require.Contains(t, note.Body, "The Great Gatsby by F. Scott Fitzgerald.")
	require.Contains(t, note.Body, "On loan to Alice.")

	ebookNote, err := os.ReadFile(filepath.Join(outputPath, "Clean Code.md"))
	require.NoError(t, err)
	parsed, err := frontmatter.ParseMarkdown(ebookNote)
	require.NoError(t, err)
	require.Equal(t, "ebook", parsed.GetString("type"))
	require.False(t, parsed.HasKey("copies"), "e-books have no finite stock")
	require.True(t, parsed.GetBool("available"))

	// JSON report
	jsonPath := filepath.Join(env.RootDir(), "books.json")
	require.FileExists(t, jsonPath)

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var report session.Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.NotEqual(t, uuid.Nil, report.RunID)
	require.False(t, report.StartedAt.IsZero())
	require.Len(t, report.Outcomes, 5)
	require.Len(t, report.Books, 2)

	// The borrow against an unknown ISBN is the only failure.
	failed := 0
	for _, outcome := range report.Outcomes {
		if !outcome.OK {
			failed++
			require.Equal(t, "unknown isbn", outcome.Detail)
		}
	}
	require.Equal(t, 1, failed)
}

func TestRunSessionE2E_CSVInput(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.SetTestConfig(t)
	testutil.SetupMarkdownOutput(t, env)
	testutil.SetupJSONOutput(t, env)

	env.WriteFileString("books.csv",
		"kind,title,author,isbn,copies\n"+
			"physical,Dune,Frank Herbert,111,3\n"+
			"ebook,Snow Crash,Neal Stephenson,222,\n")

	err := RunWithParams(env.Path("books.csv"), "", true, "", false)
	require.NoError(t, err)

	// CSV files carry no operations, so the snapshots show untouched stock.
	outputPath := filepath.Join(env.RootDir(), "books")
	content, err := os.ReadFile(filepath.Join(outputPath, "Dune.md"))
	require.NoError(t, err)

	note, err := frontmatter.ParseMarkdown(content)
	require.NoError(t, err)
	require.Equal(t, 3, note.GetInt("copies"))
	require.False(t, note.GetBool("in_catalog"))
	require.Empty(t, note.GetStrings("holders"))

	data, err := os.ReadFile(filepath.Join(env.RootDir(), "books.json"))
	require.NoError(t, err)

	var report session.Report
	require.NoError(t, json.Unmarshal(data, &report))
	require.Empty(t, report.Outcomes)
	require.Len(t, report.Books, 2)
}

func TestRunSessionE2E_OverwriteSemantics(t *testing.T) {
	env := testutil.NewTestEnv(t)
	testutil.ResetConfig(t)
	config.OverwriteFiles = false
	testutil.SetupMarkdownOutput(t, env)
	testutil.SetupJSONOutput(t, env)

	env.WriteFileString("library.yaml", sampleLibraryYAML)
	gatsbyPath := filepath.Join(env.RootDir(), "books", "The Great Gatsby.md")

	err := RunWithParams(env.Path("library.yaml"), "", false, "", false)
	require.NoError(t, err)

	note := parseNote(t, gatsbyPath)
	require.Equal(t, 4, note.GetInt("copies"))

	// Rewrite the library file without any operations. With overwriting
	// disabled the stale snapshot must survive the second run.
	withoutOps := `books:
  - kind: physical
    title: The Great Gatsby
    author: F. Scott Fitzgerald
    isbn: "123456"
    copies: 5
`
	env.WriteFileString("library.yaml", withoutOps)

	err = RunWithParams(env.Path("library.yaml"), "", false, "", false)
	require.NoError(t, err)

	note = parseNote(t, gatsbyPath)
	require.Equal(t, 4, note.GetInt("copies"), "existing file should be kept")

	err = RunWithParams(env.Path("library.yaml"), "", false, "", true)
	require.NoError(t, err)

	note = parseNote(t, gatsbyPath)
	require.Equal(t, 5, note.GetInt("copies"), "overwrite should refresh the snapshot")
	require.False(t, note.GetBool("in_catalog"))
}

func parseNote(t *testing.T, path string) *frontmatter.ParsedNote {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	note, err := frontmatter.ParseMarkdown(content)
	require.NoError(t, err)
	return note
}
