package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/ui/components"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

// Block-letter title (same art as welcome/banner.go).
const neonTitleFull = ` ██████╗ ██████╗  █████╗ ███╗   ███╗███╗   ███╗██╗███████╗
██╔════╝ ██╔══██╗██╔══██╗████╗ ████║████╗ ████║██║╚══███╔╝
██║  ███╗██████╔╝███████║██╔████╔██║██╔████╔██║██║  ███╔╝
██║   ██║██╔══██╗██╔══██║██║╚██╔╝██║██║╚██╔╝██║██║ ███╔╝
╚██████╔╝██║  ██║██║  ██║██║ ╚═╝ ██║██║ ╚═╝ ██║██║███████╗
 ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝     ╚═╝╚═╝     ╚═╝╚═╝╚══════╝`

const neonTitleCompact = "G · R · A · M · M · I · Z"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(style.Render(neonTitleCompact))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(neonTitleFull))
}

// renderStatsBar renders the progress stats in a bordered box matching
// content width.
func renderStatsBar(sentencesDone int, bestStage string, bestAccuracy float64, cw int, compact bool) string {
	doneStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			doneStyle.Render(fmt.Sprintf("✦%d", sentencesDone)),
			bestText(bestStage, bestAccuracy, true, bestStyle, dimStyle),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			doneStyle.Render(fmt.Sprintf("✦ %d SENTENCES CLEARED", sentencesDone)),
			bestText(bestStage, bestAccuracy, false, bestStyle, dimStyle),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func bestText(stage string, accuracy float64, compact bool, active, dim lipgloss.Style) string {
	if stage == "" {
		if compact {
			return dim.Render("◎ —")
		}
		return dim.Render("◎ NO STATS YET")
	}
	if compact {
		return active.Render(fmt.Sprintf("◎ %.0f%%", accuracy*100))
	}
	return active.Render(fmt.Sprintf("◎ BEST: %s %.0f%%", strings.ToUpper(stage), accuracy*100))
}

// renderPickerRow centers the difficulty picker at content width.
func renderPickerRow(p components.Picker, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(p.View())
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderNeonMenu renders each menu item as a fixed-width button.
func renderNeonMenu(items []string, selected int, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.NeonButton(label, i == selected, buttonWidth))
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLLMBanner renders a warning banner when no LLM API key is configured.
func renderLLMBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Set an LLM API key to start drilling (see grammiz --help)")
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
