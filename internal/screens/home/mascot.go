package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/ui/theme"
)

// MascotVariant selects which boombox art to display.
type MascotVariant int

const (
	MascotIdle     MascotVariant = iota // Default magenta
	MascotHyped                         // Lime, speakers blasting — accuracy is high
	MascotGrinding                      // Cyan, head down — accuracy needs work
)

const mascotIdle = `┌─◯───────◯─┐
│ ▒▒ ─── ▒▒ │
│ ▒▒ abc ▒▒ │
└───────────┘`

const mascotHyped = `♪ ┌─◉───────◉─┐ ♪
  │ ▓▓ ~~~ ▓▓ │
  │ ▓▓ abc ▓▓ │
  └───────────┘`

const mascotGrinding = `┌─◯───────◯─┐
│ ░░ ... ░░ │ zzz
│ ░░ abc ░░ │
└───────────┘`

// RenderMascot returns the boombox ASCII art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotHyped:
		art = mascotHyped
		fg = theme.Accent
	case MascotGrinding:
		art = mascotGrinding
		fg = theme.Secondary
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
