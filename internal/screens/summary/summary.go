package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/drill"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/ui/components"
	"github.com/abhisek/grammiz/internal/ui/layout"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

// StageResult is one stage's tally for the session that just ended.
type StageResult struct {
	Stage     drill.Stage
	Attempted int
	Correct   int
}

// Report carries everything the summary screen displays.
type Report struct {
	Duration           time.Duration
	Difficulty         drill.Difficulty
	SentencesCompleted int
	StagesPassed       int
	StageResults       []StageResult
}

// TotalAttempted sums submissions across all stages.
func (r *Report) TotalAttempted() int {
	total := 0
	for _, sr := range r.StageResults {
		total += sr.Attempted
	}
	return total
}

// TotalCorrect sums correct submissions across all stages.
func (r *Report) TotalCorrect() int {
	total := 0
	for _, sr := range r.StageResults {
		total += sr.Correct
	}
	return total
}

// Accuracy is the session-wide correct ratio, 0 when nothing was graded.
func (r *Report) Accuracy() float64 {
	attempted := r.TotalAttempted()
	if attempted == 0 {
		return 0
	}
	return float64(r.TotalCorrect()) / float64(attempted)
}

// SummaryScreen shows the end-of-session report after a drill.
type SummaryScreen struct {
	report  *Report
	backBtn components.Button
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for the given report.
func New(report *Report) *SummaryScreen {
	return &SummaryScreen{
		report: report,
		backBtn: components.NewButton("BACK TO HOME", true, func() tea.Cmd {
			return func() tea.Msg { return router.PopScreenMsg{} }
		}),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Session Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	var cmd tea.Cmd
	s.backBtn, cmd = s.backBtn.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.report
	if r == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Session complete. W."))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s  ·  %d:%02d", r.Difficulty.Label(), mins, secs)))
	b.WriteString("\n\n")

	statsLine := lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("Sentences: %d      Stages passed: %d      Accuracy: %.0f%%",
			r.SentencesCompleted, r.StagesPassed, r.Accuracy()*100))
	card := components.NeonCard(statsLine, min(width-8, 64))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Stages")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-40, 28)
	if barWidth < 10 {
		barWidth = 10
	}
	for _, sr := range r.StageResults {
		if sr.Attempted == 0 {
			continue
		}
		ratio := float64(sr.Correct) / float64(sr.Attempted)
		bar := components.NewProgressBar(sr.Stage.String(), ratio, true, barWidth)
		line := fmt.Sprintf("%s  %d/%d", bar.View(), sr.Correct, sr.Attempted)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.backBtn.View()))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
