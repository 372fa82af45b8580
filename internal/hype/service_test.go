package hype

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/abhisek/grammiz/internal/drill"
)

// stubSource returns a fixed payload or error.
type stubSource struct {
	data []byte
	err  error

	mu       sync.Mutex
	sfxKinds []Kind
}

func (s *stubSource) GenerateTrack(context.Context, drill.Stage) ([]byte, error) {
	return s.data, s.err
}

func (s *stubSource) GenerateSFX(_ context.Context, kind Kind) ([]byte, error) {
	s.mu.Lock()
	s.sfxKinds = append(s.sfxKinds, kind)
	s.mu.Unlock()
	return s.data, s.err
}

func waitForTrack(t *testing.T, s *Service) (*Track, bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if track, ok := s.ConsumeTrack(); ok {
			return track, true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return nil, false
}

func TestRequestTrackDeliversPayload(t *testing.T) {
	s := NewService(&stubSource{data: []byte{1, 2, 3}})
	s.RequestTrack(context.Background(), drill.StageTuesday)

	track, ok := waitForTrack(t, s)
	if !ok {
		t.Fatal("no track delivered")
	}
	if track.Stage != drill.StageTuesday {
		t.Errorf("stage = %s, want Tuesday", track.Stage)
	}
	if len(track.Data) != 3 {
		t.Errorf("payload = %d bytes, want 3", len(track.Data))
	}

	// Consumed: the slot is empty again.
	if _, ok := s.ConsumeTrack(); ok {
		t.Error("expected slot cleared after consumption")
	}
}

func TestRequestTrackSwallowsFailure(t *testing.T) {
	s := NewService(&stubSource{err: errors.New("tts down")})
	s.RequestTrack(context.Background(), drill.StageMonday)

	// Give the goroutine time to finish, then confirm nothing surfaced.
	time.Sleep(20 * time.Millisecond)
	if _, ok := s.ConsumeTrack(); ok {
		t.Error("expected no track after a failed generation")
	}
}

func TestRequestSFXReachesSource(t *testing.T) {
	src := &stubSource{data: []byte{9}}
	s := NewService(src)
	s.RequestSFX(context.Background(), KindSuccess)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		src.mu.Lock()
		n := len(src.sfxKinds)
		src.mu.Unlock()
		if n > 0 {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	src.mu.Lock()
	defer src.mu.Unlock()
	if len(src.sfxKinds) != 1 || src.sfxKinds[0] != KindSuccess {
		t.Errorf("sfx kinds = %v, want [success]", src.sfxKinds)
	}
}

func TestNilServiceIsInert(t *testing.T) {
	var s *Service
	s.RequestTrack(context.Background(), drill.StageMonday)
	s.RequestSFX(context.Background(), KindSelect)
	if _, ok := s.ConsumeTrack(); ok {
		t.Error("nil service produced a track")
	}
}
