package sentencegen

import (
	"strings"
	"testing"

	"github.com/abhisek/grammiz/internal/drill"
)

func TestBuildUserMessageMentionsDifficulty(t *testing.T) {
	cfg := DefaultConfig()
	for _, d := range drill.Difficulties {
		msg := buildUserMessage(d, 5, cfg)
		if !strings.Contains(msg, d.Label()) {
			t.Errorf("%s: message missing difficulty label: %q", d, msg)
		}
		if !strings.Contains(msg, "6-12 words") {
			t.Errorf("%s: message missing word bounds: %q", d, msg)
		}
	}
}

func TestDifficultyBriefCoversAllDifficulties(t *testing.T) {
	for _, d := range drill.Difficulties {
		if difficultyBrief[d] == "" {
			t.Errorf("no brief for difficulty %s", d)
		}
	}
}
