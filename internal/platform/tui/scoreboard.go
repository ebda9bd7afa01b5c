package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Board layout constants
const (
	boardMaxRuns   = 100 // Max runs to load
	boardMinHeight = 3   // Minimum table height
)

// Board shows the best runs of this process in a table. It is embedded
// in Model and shown with the board key.
type Board struct {
	store  *storage.Store
	runs   []storage.Run
	table  table.Model
	width  int
	height int
	err    error // Last load error
}

// NewBoard creates a board sized for the given screen.
func NewBoard(store *storage.Store, width, height int) Board {
	b := Board{store: store, width: width, height: height}
	b.table = b.createTable()
	return b
}

// createTable creates a table with columns fitted to the width.
func (b *Board) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Player", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Frames", Width: 8},
		{Title: "When", Width: 14},
	}

	// Give the player column whatever space is left
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := b.width - 8 - used; extra > 0 {
		columns[1].Width += min(extra, 16)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(b.height-8, boardMinHeight)), // Leave room for header, help, and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs from the store.
func (b *Board) Refresh() {
	b.runs = nil
	b.err = nil
	if b.store != nil {
		b.runs, b.err = b.store.TopRuns(boardMaxRuns)
	}
	b.updateTableRows()
}

// Runs returns the loaded runs.
func (b Board) Runs() []storage.Run {
	return b.runs
}

// updateTableRows updates the table with current runs.
func (b *Board) updateTableRows() {
	rows := make([]table.Row, len(b.runs))
	for i, r := range b.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Frames),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.table.SetRows(rows)
	b.table.GotoTop()
}

// SetSize rebuilds the table for a new screen size.
func (b *Board) SetSize(width, height int) {
	b.width = width
	b.height = height
	b.table = b.createTable()
	b.updateTableRows()
}

// Update scrolls the table.
func (b Board) Update(msg tea.Msg, keys BoardKeyMap) (Board, tea.Cmd) {
	var cmd tea.Cmd
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, keys.Up, keys.Down) {
		b.table, cmd = b.table.Update(msg)
	}
	return b, cmd
}

// View renders the board.
func (b Board) View() string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	sb.WriteString(titleStyle.Render(centerText("BEST RUNS", b.width)))
	sb.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	switch {
	case b.store == nil:
		sb.WriteString(tableStyle.Render("Run board unavailable"))
	case b.err != nil:
		sb.WriteString(tableStyle.Render("Could not load runs: " + b.err.Error()))
	case len(b.runs) == 0:
		sb.WriteString(tableStyle.Render("No runs yet. Go play!"))
	default:
		sb.WriteString(tableStyle.Render(b.table.View()))
	}
	return sb.String()
}

// BoardKeyMap defines the key bindings while the board is shown.
type BoardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Back, k.Quit}}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Back: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	textWidth := lipgloss.Width(text)
	if textWidth >= width {
		return text
	}
	padding := (width - textWidth) / 2
	return strings.Repeat(" ", padding) + text
}
