package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/ui/theme"
)

// WordGrid renders a sentence as a row of selectable words with a cursor
// and a per-word annotation line beneath. Stage editors drive it: they
// supply the annotation text and react to toggles on the cursor index.
type WordGrid struct {
	Words  []string
	Cursor int

	// Annotate returns the label shown under a word, or "" for none.
	Annotate func(idx int) string

	// Marked reports whether a word should render in the tagged style.
	Marked func(idx int) bool
}

// NewWordGrid creates a grid over the given words.
func NewWordGrid(words []string) WordGrid {
	return WordGrid{Words: words}
}

// SetWords replaces the word list and resets the cursor.
func (g *WordGrid) SetWords(words []string) {
	g.Words = words
	g.Cursor = 0
}

// Update moves the cursor with left/right keys.
func (g WordGrid) Update(msg tea.Msg) (WordGrid, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(g.Words) == 0 {
		return g, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < len(g.Words)-1 {
			g.Cursor++
		}
	}

	return g, nil
}

// View renders the word row with annotations beneath each word.
func (g WordGrid) View() string {
	if len(g.Words) == 0 {
		return ""
	}

	cells := make([]string, len(g.Words))
	for i, w := range g.Words {
		label := ""
		if g.Annotate != nil {
			label = g.Annotate(i)
		}

		wordStyle := theme.Unselected
		if g.Marked != nil && g.Marked(i) {
			wordStyle = theme.WordTagged
		}
		if i == g.Cursor {
			wordStyle = theme.WordCursor
		}

		cellWidth := max(lipgloss.Width(w), lipgloss.Width(label))
		word := wordStyle.Render(w)
		note := lipgloss.NewStyle().Foreground(theme.Secondary).Render(label)

		cells[i] = lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(word) +
			"\n" +
			lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center).Render(note)
	}

	return joinCells(cells)
}

// joinCells lays cells out horizontally with a two-space gutter.
func joinCells(cells []string) string {
	spacer := strings.Repeat(" ", 2)
	rows := make([]string, 0, len(cells)*2+len(cells)-1)
	rows = append(rows, cells[0])
	for _, c := range cells[1:] {
		rows = append(rows, lipgloss.NewStyle().Render(spacer), c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rows...)
}
