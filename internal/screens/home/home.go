package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/grammiz/internal/drill"
	drillscreen "github.com/abhisek/grammiz/internal/screens/drill"
	"github.com/abhisek/grammiz/internal/grading"
	"github.com/abhisek/grammiz/internal/hype"
	"github.com/abhisek/grammiz/internal/router"
	"github.com/abhisek/grammiz/internal/screen"
	"github.com/abhisek/grammiz/internal/screens/history"
	"github.com/abhisek/grammiz/internal/screens/placeholder"
	"github.com/abhisek/grammiz/internal/sentencegen"
	"github.com/abhisek/grammiz/internal/store"
	"github.com/abhisek/grammiz/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	picker     components.Picker

	sentencesDone int
	bestStage     string
	bestAccuracy  float64
	mascotVariant MascotVariant
	llmReady      bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(pool *sentencegen.Pool, grader grading.Grader, hypeSvc *hype.Service, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	// Load snapshot for the progress stats and the last difficulty.
	var snap *store.Snapshot
	if snapRepo != nil {
		snap, _ = snapRepo.Latest(context.Background())
	}

	var sentencesDone int
	var bestStage string
	var bestAccuracy float64
	difficulty := drill.DifficultyMedium

	if snap != nil {
		sentencesDone = snap.Data.SentencesCompleted
		if d := drill.Difficulty(snap.Data.Difficulty); d != "" {
			difficulty = d
		}
		for stage, acc := range snap.Data.StageAccuracy {
			if bestStage == "" || acc > bestAccuracy {
				bestStage = stage
				bestAccuracy = acc
			}
		}
	}

	// The mascot reacts to how the drilling is going.
	mascotVariant := MascotIdle
	if snap != nil && len(snap.Data.StageAccuracy) > 0 {
		var sum float64
		for _, acc := range snap.Data.StageAccuracy {
			sum += acc
		}
		avg := sum / float64(len(snap.Data.StageAccuracy))
		if avg >= 0.8 {
			mascotVariant = MascotHyped
		} else if avg < 0.5 {
			mascotVariant = MascotGrinding
		}
	}

	labels := make([]string, len(drill.Difficulties))
	selected := 0
	for i, d := range drill.Difficulties {
		labels[i] = d.Label()
		if d == difficulty {
			selected = i
		}
	}
	picker := components.NewPicker("Difficulty", labels)
	picker.Selected = selected

	llmReady := pool != nil && grader != nil

	menuLabels := []string{"START DRILL", "HISTORY", "QUIT"}

	h := &HomeScreen{
		menuLabels:    menuLabels,
		picker:        picker,
		sentencesDone: sentencesDone,
		bestStage:     bestStage,
		bestAccuracy:  bestAccuracy,
		mascotVariant: mascotVariant,
		llmReady:      llmReady,
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			if !llmReady || eventRepo == nil || snapRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("Drill")}
				}
			}
			return func() tea.Msg {
				d := drill.Difficulties[h.picker.Selected]
				if pool.Difficulty() != d {
					pool.Reset(d)
				}
				return router.PushScreenMsg{
					Screen: drillscreen.New(d, pool, grader, hypeSvc, eventRepo, snapRepo),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			if eventRepo == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New("History")}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "left", "h", "right", "l":
			h.picker, _ = h.picker.Update(msg)
			return h, nil
		}
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.sentencesDone, h.bestStage, h.bestAccuracy, cw, compact))

	sections = append(sections, renderPickerRow(h.picker, cw))

	sections = append(sections, renderNeonMenu(
		h.menuLabels, h.menu.Selected, cw))

	if !h.llmReady {
		sections = append(sections, renderLLMBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.NeonFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
