package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	gram "github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.quitConfirm {
		return renderQuitConfirm(width)
	}
	if s.session.Loading {
		return renderLoading(width, s.session.Difficulty)
	}
	return s.renderDrill(width)
}

// renderDrill renders the stage tracker, the sentence editor for the
// active stage, and the feedback line.
func (s *DrillScreen) renderDrill(width int) string {
	var b strings.Builder

	b.WriteString(s.renderTracker(width))
	b.WriteString("\n\n")

	focus := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render(s.session.Stage().Focus())
	b.WriteString(focus)
	b.WriteString("\n\n")

	switch s.session.Stage() {
	case gram.StageWednesday:
		b.WriteString(s.renderWednesday(width))
	case gram.StageThursday:
		b.WriteString(s.renderThursday(width))
	default:
		grid := s.grid.View()
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid))
		if s.session.Stage() == gram.StageTuesday {
			b.WriteString("\n\n")
			b.WriteString(s.renderTuesdayCategory(width))
		}
		if s.session.Stage() == gram.StageFriday {
			b.WriteString("\n\n")
			b.WriteString(s.renderFridaySlots(width))
		}
	}

	b.WriteString("\n\n")
	b.WriteString(s.renderFeedback(width))

	if s.grading {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Grading..."))
	}
	if s.advancing {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Sentence cleared. Next one loading..."))
	}

	if s.session.MusicEnabled && s.trackLabel != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("♪ " + s.trackLabel + " phonk"))
	}

	return b.String()
}

// renderTracker renders the five-stage progress row.
func (s *DrillScreen) renderTracker(width int) string {
	parts := make([]string, 0, len(gram.StageOrder))
	for _, stage := range gram.StageOrder {
		label := stage.String()
		switch {
		case s.session.Machine.IsCompleted(stage):
			parts = append(parts, theme.Correct.Render("✓ "+label))
		case stage == s.session.Stage():
			parts = append(parts, theme.Selected.Render("▸ "+label))
		default:
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render("  "+label))
		}
	}
	row := strings.Join(parts, "   ")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, row)
}

func (s *DrillScreen) renderTuesdayCategory(width int) string {
	parts := make([]string, 0, len(gram.TuesdayCategories))
	for _, cat := range gram.TuesdayCategories {
		if cat == s.tuesCat {
			parts = append(parts, theme.Selected.Render("["+cat.String()+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(cat.String()))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "   "))
}

func (s *DrillScreen) renderWednesday(width int) string {
	work := s.session.History.Wednesday

	rows := []string{
		fmt.Sprintf("Clauses:  %d", work.ClauseCount),
		fmt.Sprintf("Type:     %s", work.SentenceType),
		fmt.Sprintf("Purpose:  %s", work.Purpose),
	}

	var b strings.Builder
	sentence := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.session.Sentence.Raw)
	b.WriteString(sentence)
	b.WriteString("\n\n")

	for i, row := range rows {
		style := lipgloss.NewStyle().Foreground(theme.Text)
		prefix := "  "
		if i == s.wedRow {
			style = theme.Selected
			prefix = "▸ "
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(prefix+row)))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *DrillScreen) renderThursday(width int) string {
	var b strings.Builder
	sentence := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render(s.session.Sentence.Raw)
	b.WriteString(sentence)
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	return b.String()
}

func (s *DrillScreen) renderFridaySlots(width int) string {
	work := s.session.History.Friday
	parts := make([]string, 0, len(work.Slots))
	for i, slot := range work.Slots {
		label := slot.ID
		if slot.WordIdx != gram.NoWord {
			label += ":" + s.session.Sentence.Word(slot.WordIdx)
		} else {
			label += ":·"
		}
		if slot.Rotation == 45 {
			label += "/45°"
		}
		if i == s.friSlot {
			parts = append(parts, theme.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(parts, "  "))
}

// renderFeedback renders the grader feedback line.
func (s *DrillScreen) renderFeedback(width int) string {
	fb := lipgloss.NewStyle().
		Width(min(width-8, 76)).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(s.session.Feedback)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, fb)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End the grind early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress is saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))
	return b.String()
}

func renderLoading(width int, difficulty gram.Difficulty) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n\n  Cooking a fresh %s sentence...", difficulty.Label()))
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
