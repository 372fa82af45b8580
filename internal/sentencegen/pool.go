package sentencegen

import (
	"context"
	"sync"

	"github.com/abhisek/grammiz/internal/drill"
)

// Pool hides generation latency behind a lookahead queue of pending
// sentences. Refills run off the UI loop; the mutex plus the in-flight
// flag are the only synchronization, and the flag makes refills
// single-flight: a refill issued while one is running is a no-op.
type Pool struct {
	source Source
	cfg    Config

	mu         sync.Mutex
	difficulty drill.Difficulty
	queue      []string
	inFlight   bool
}

// NewPool creates an empty pool for the given difficulty.
func NewPool(source Source, difficulty drill.Difficulty, cfg Config) *Pool {
	return &Pool{
		source:     source,
		cfg:        cfg,
		difficulty: difficulty,
	}
}

// Refill requests one batch from the source and appends it to the tail
// of the queue in response order. If a refill is already in flight the
// call is a no-op. On failure the queue is left unchanged and the error
// is reported upward; there is no automatic retry.
func (p *Pool) Refill(ctx context.Context) error {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil
	}
	p.inFlight = true
	difficulty := p.difficulty
	p.mu.Unlock()

	batch, err := p.source.GenerateBatch(ctx, difficulty, p.cfg.BatchSize)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		return err
	}
	p.queue = append(p.queue, batch...)
	return nil
}

// TakeNext pops and returns the head of the queue. The second result is
// false when the queue is exhausted; the caller handles emptiness by
// showing a loading state. The caller is also responsible for checking
// NeedsRefill afterward and triggering an asynchronous Refill.
func (p *Pool) TakeNext() (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return "", false
	}
	head := p.queue[0]
	p.queue = p.queue[1:]
	return head, true
}

// NeedsRefill reports whether the queue has dropped below the low-water
// mark with no refill already running.
func (p *Pool) NeedsRefill() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue) < p.cfg.LowWater && !p.inFlight
}

// Reset discards the queue entirely and switches to a new difficulty.
// The caller follows up with an immediate Refill whose first sentence
// becomes the active one.
func (p *Pool) Reset(difficulty drill.Difficulty) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.difficulty = difficulty
	p.queue = nil
}

// Seed appends sentences directly, bypassing the source. Used for the
// fallback pair when generation fails.
func (p *Pool) Seed(sentences []string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.queue = append(p.queue, sentences...)
}

// Len returns the current queue length.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// Difficulty returns the pool's current difficulty.
func (p *Pool) Difficulty() drill.Difficulty {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.difficulty
}
