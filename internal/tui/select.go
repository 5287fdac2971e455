// Package tui provides interactive terminal UI components.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/velmu/circ/internal/library"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

var runProgram = func(m tea.Model) (tea.Model, error) {
	return tea.NewProgram(m).Run()
}

// SelectionAction represents the user's action in the selection UI.
type SelectionAction int

const (
	// ActionNone indicates no action was taken.
	ActionNone SelectionAction = iota
	// ActionSelected indicates the user selected a book.
	ActionSelected
	// ActionSkipped indicates the user dismissed the list.
	ActionSkipped
	// ActionStopped indicates the user stopped browsing entirely.
	ActionStopped
)

// SelectionResult holds the result of a TUI selection.
type SelectionResult struct {
	Action SelectionAction
	Book   library.Book
}

type bookItem struct {
	book library.Book
}

func (i bookItem) Title() string {
	return fmt.Sprintf("%s (%s)", strings.ToUpper(i.book.Title()), i.book.Author())
}

func (i bookItem) FilterValue() string {
	return i.book.Title()
}

func (i bookItem) Description() string {
	return formatAvailability(i.book)
}

type itemStyles struct {
	normal      lipgloss.Style
	selected    lipgloss.Style
	kindStyle   lipgloss.Style
	titleStyle  lipgloss.Style
	statusStyle lipgloss.Style
	isbnStyle   lipgloss.Style
}

func newItemStyles() itemStyles {
	asciiBorder := lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	container := lipgloss.NewStyle().
		Border(asciiBorder).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1).
		Foreground(lipgloss.Color("252"))

	selected := container.Copy().
		BorderForeground(lipgloss.Color("214")).
		Foreground(lipgloss.Color("230")).
		Background(lipgloss.Color("237"))

	return itemStyles{
		normal:   container,
		selected: selected,
		kindStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("110")),
		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254")),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("178")),
		isbnStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true),
	}
}

type bookDelegate struct {
	styles itemStyles
}

func newDelegate() bookDelegate {
	return bookDelegate{styles: newItemStyles()}
}

func (d bookDelegate) Height() int                         { return 4 }
func (d bookDelegate) Spacing() int                        { return 1 }
func (d bookDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d bookDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	entry, ok := item.(bookItem)
	if !ok {
		return
	}

	book := entry.book
	kindLine := d.styles.kindStyle.Render(fmt.Sprintf("[%s]", strings.ToUpper(formatKind(book))))
	titleLine := d.styles.titleStyle.Render(truncate(fmt.Sprintf("%s (%s)", strings.ToUpper(book.Title()), book.Author()), m.Width()-4))
	isbnLine := d.styles.isbnStyle.Render(fmt.Sprintf("ISBN %s", book.ISBN()))
	statusLine := d.styles.statusStyle.Render(formatAvailability(book))

	content := lipgloss.JoinVertical(lipgloss.Left, kindLine, titleLine, isbnLine, statusLine)

	container := d.styles.normal
	if idx == m.Index() {
		container = d.styles.selected
	}
	_, _ = fmt.Fprint(w, container.Render(content))
}

type model struct {
	list        list.Model
	searchQuery string
	result      SelectionResult
}

func newModel(query string, items []bookItem) *model {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}

	delegate := newDelegate()
	l := list.New(listItems, delegate, defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = lipgloss.NewStyle()

	return &model{
		list:        l,
		searchQuery: query,
		result: SelectionResult{
			Action: ActionNone,
		},
	}
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(bookItem); ok {
				m.result = SelectionResult{
					Action: ActionSelected,
					Book:   selected.book,
				}
				return m, tea.Quit
			}
		case "s":
			m.result = SelectionResult{Action: ActionSkipped}
			return m, tea.Quit
		case "ctrl+c", "q":
			m.result = SelectionResult{Action: ActionStopped}
			return m, tea.Quit
		case "esc":
			m.result = SelectionResult{Action: ActionSkipped}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) View() string {
	header := headerStyle.Render(fmt.Sprintf("Catalog matches for: %s", m.searchQuery))
	listView := m.list.View()
	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		skipButtonStyle.Render(" Done "),
		lipgloss.NewStyle().Padding(0, 2).Render(""),
		stopButtonStyle.Render(" Stop Browsing "),
	)
	help := helpStyle.Render("Up/Down navigate | Enter inspect | s done | q stop")
	return lipgloss.JoinVertical(lipgloss.Left, header, listView, buttons, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	skipButtonStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 2).
			Background(lipgloss.Color("178")).
			Foreground(lipgloss.Color("0")).
			Bold(true)

	stopButtonStyle = lipgloss.NewStyle().
			MarginTop(1).
			Padding(0, 2).
			Background(lipgloss.Color("161")).
			Foreground(lipgloss.Color("230")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("244"))
)

// SelectBook presents an interactive selection UI for catalog matches.
func SelectBook(query string, books []library.Book) (SelectionResult, error) {
	if len(books) == 0 {
		return SelectionResult{Action: ActionSkipped}, nil
	}

	items := make([]bookItem, len(books))
	for i, book := range books {
		items[i] = bookItem{book: book}
	}
	m := newModel(query, items)
	finalModel, err := runProgram(m)
	if err != nil {
		return SelectionResult{}, err
	}

	if typed, ok := finalModel.(*model); ok {
		return typed.result, nil
	}

	return SelectionResult{}, fmt.Errorf("unexpected program result")
}

func formatKind(book library.Book) string {
	switch book.(type) {
	case *library.PhysicalBook:
		return "physical"
	case *library.EBook:
		return "ebook"
	default:
		return "book"
	}
}

// formatAvailability renders the stock line for a book.
func formatAvailability(book library.Book) string {
	switch b := book.(type) {
	case *library.PhysicalBook:
		switch copies := b.Copies(); copies {
		case 0:
			return "Out of stock"
		case 1:
			return "1 copy available"
		default:
			return fmt.Sprintf("%d copies available", copies)
		}
	case *library.EBook:
		return "Always available"
	default:
		if book.Available() {
			return "Available"
		}
		return "Unavailable"
	}
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	if width <= 0 || len(value) <= width {
		return value
	}
	if width <= 3 {
		return value[:width]
	}
	return value[:width-3] + "..."
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
