package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/ui/components"
	"github.com/abhisek/grammiz/internal/ui/layout"
	"github.com/abhisek/grammiz/internal/ui/theme"
)

const recentLimit = 30

type historyLoadedMsg struct {
	Stats  []store.StageStats
	Recent []store.GradeRecord
	Err    error
}

// HistoryScreen displays per-stage accuracy and recent submissions.
type HistoryScreen struct {
	eventRepo store.EventRepo
	stats     []store.StageStats
	recent    []store.GradeRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		stats, err := s.eventRepo.StageAccuracy(ctx)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		recent, err := s.eventRepo.QueryGradeEvents(ctx, store.QueryOpts{Limit: recentLimit})
		if err != nil {
			return historyLoadedMsg{Stats: stats}
		}

		return historyLoadedMsg{Stats: stats, Recent: recent}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.stats = msg.Stats
			s.recent = msg.Recent
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.recent)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.recent) == 0 && len(s.stats) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No drills yet. Start grinding!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.stats) > 0 {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("STAGE ACCURACY")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
		b.WriteString("\n\n")

		barWidth := min(width-20, 44)
		for _, st := range s.stats {
			bar := components.NewProgressBar(
				fmt.Sprintf("%-9s", capitalize(st.Stage)),
				st.Accuracy(), true, barWidth)
			line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d", st.Correct, st.Attempts))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.recent) > 0 {
		header := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render("RECENT SUBMISSIONS")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
		b.WriteString("\n\n")
	}

	for i, rec := range s.recent {
		dateStr := rec.Timestamp.Format("Jan 02 15:04")

		mark := theme.Incorrect.Render("✗")
		if rec.Correct {
			mark = theme.Correct.Render("✓")
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %s  %-9s  %s",
			prefix, mark, dateStr, rec.Stage, truncate(rec.Sentence, 36))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		// Show expanded feedback details.
		if s.expanded[i] {
			detail := rec.Feedback
			if !rec.Correct && rec.CorrectData != "" {
				detail += "  //  " + rec.CorrectData
			}
			if detail == "" {
				detail = "No feedback recorded"
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
					Render("    "+truncate(detail, 64))))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
