package sentencegen

import (
	"context"

	"github.com/abhisek/grammiz/internal/drill"
)

// Source produces practice sentences at a requested difficulty.
type Source interface {
	// GenerateBatch returns up to count sentences: lowercase words,
	// space separated, no punctuation. A short batch is not an error;
	// an empty batch is.
	GenerateBatch(ctx context.Context, difficulty drill.Difficulty, count int) ([]string, error)
}
