package hype

import (
	"context"
	"sync"

	"github.com/abhisek/grammiz/internal/drill"
)

// Track is a generated ambient track tagged with its stage.
type Track struct {
	Stage drill.Stage
	Data  []byte
}

// Service requests tracks asynchronously. Only one track is pending at a
// time; a new request replaces an unconsumed one. Generation failures
// are dropped silently, per the ambient-audio error policy.
type Service struct {
	source Source

	mu      sync.Mutex
	pending *Track
	ready   bool
}

// NewService creates a hype service over the given source.
func NewService(source Source) *Service {
	return &Service{source: source}
}

// RequestTrack starts async track generation for the stage. No result,
// no error: the track shows up via ConsumeTrack if and when it exists.
func (s *Service) RequestTrack(ctx context.Context, stage drill.Stage) {
	if s == nil || s.source == nil {
		return
	}
	go func() {
		data, err := s.source.GenerateTrack(ctx, stage)
		s.mu.Lock()
		defer s.mu.Unlock()
		if err != nil || len(data) == 0 {
			s.pending = nil
			s.ready = false
			return
		}
		s.pending = &Track{Stage: stage, Data: data}
		s.ready = true
	}()
}

// RequestSFX starts async effect generation. The payload is discarded;
// playback lives in the presentation layer and is not wired up yet.
func (s *Service) RequestSFX(ctx context.Context, kind Kind) {
	if s == nil || s.source == nil {
		return
	}
	go func() {
		_, _ = s.source.GenerateSFX(ctx, kind)
	}()
}

// ConsumeTrack returns the pending track if one is ready, clearing the
// pending slot.
func (s *Service) ConsumeTrack() (*Track, bool) {
	if s == nil {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	track := s.pending
	s.pending = nil
	s.ready = false
	return track, track != nil
}
