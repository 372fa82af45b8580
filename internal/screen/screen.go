package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/ui/layout"
)

// Screen is what the router stacks: welcome, home, drill, history,
// and summary all implement it.
type Screen interface {
	// Init returns the command to run when the screen first appears.
	Init() tea.Cmd

	// Update handles a message and returns the next screen state.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body; header and footer are drawn by layout.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider lets a screen supply its own footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// HeaderStatsProvider is an optional interface for screens that supply
// the difficulty and sentence count shown in the header.
type HeaderStatsProvider interface {
	HeaderStats() (difficulty string, sentencesDone int)
}
