package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/ui/theme"
)

// Picker cycles through a flat list of options with left/right keys.
// Enter confirms the highlighted option.
type Picker struct {
	Label    string
	Options  []string
	Selected int
	OnPick   func(option string) tea.Cmd
}

// NewPicker creates a picker over the given options.
func NewPicker(label string, options []string) Picker {
	return Picker{Label: label, Options: options}
}

// SetOptions replaces the option list and clamps the selection.
func (p *Picker) SetOptions(options []string) {
	p.Options = options
	if p.Selected >= len(options) {
		p.Selected = 0
	}
}

// Current returns the highlighted option, or "" when empty.
func (p Picker) Current() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// Update handles keyboard cycling and confirmation.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(p.Options) == 0 {
		return p, nil
	}

	switch kmsg.String() {
	case "left", "h":
		p.Selected--
		if p.Selected < 0 {
			p.Selected = len(p.Options) - 1
		}
	case "right", "l":
		p.Selected = (p.Selected + 1) % len(p.Options)
	case "enter":
		if p.OnPick != nil {
			return p, p.OnPick(p.Current())
		}
	}

	return p, nil
}

// View renders the picker as a single row of options.
func (p Picker) View() string {
	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label + " "))
	}
	for i, opt := range p.Options {
		if i > 0 {
			b.WriteString("  ")
		}
		if i == p.Selected {
			b.WriteString(theme.Selected.Render("[" + opt + "]"))
		} else {
			b.WriteString(theme.Unselected.Render(" " + opt + " "))
		}
	}
	return b.String()
}
