// Package hype generates ambient phonk tracks and sound effects for the
// drill. Everything here is fire-and-forget: failures are swallowed and
// never block stage progression, and the audio payload stays opaque —
// decoding and playback belong to the presentation layer.
package hype

import (
	"context"

	"github.com/abhisek/grammiz/internal/drill"
)

// Kind names a sound effect.
type Kind string

const (
	KindSelect  Kind = "select"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Source produces encoded audio payloads keyed by stage or effect kind.
type Source interface {
	// GenerateTrack returns a short ambient track for the given stage.
	GenerateTrack(ctx context.Context, stage drill.Stage) ([]byte, error)

	// GenerateSFX returns a one-shot effect of the given kind.
	GenerateSFX(ctx context.Context, kind Kind) ([]byte, error)
}
