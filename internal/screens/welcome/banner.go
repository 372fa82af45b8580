package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/ui/theme"
)

const bannerArt = `
 ██████╗ ██████╗  █████╗ ███╗   ███╗███╗   ███╗██╗███████╗
██╔════╝ ██╔══██╗██╔══██╗████╗ ████║████╗ ████║██║╚══███╔╝
██║  ███╗██████╔╝███████║██╔████╔██║██╔████╔██║██║  ███╔╝
██║   ██║██╔══██╗██╔══██║██║╚██╔╝██║██║╚██╔╝██║██║ ███╔╝
╚██████╔╝██║  ██║██║  ██║██║ ╚═╝ ██║██║ ╚═╝ ██║██║███████╗
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝╚═╝╚══════╝`

const bannerCompact = "G R A M M I Z"

// RenderBanner returns the GRAMMIZ banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 62 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 62 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
