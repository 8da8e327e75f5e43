package render

import (
	"context"
	"sync"
	"time"
)

// FrameFunc receives the loop-normalized phase in [0, 1) for one tick.
type FrameFunc func(phase float64)

// LoopScheduler drives a renderer in real time: each tick it reduces elapsed
// wall time modulo the loop duration to a phase and invokes the frame
// callback. It is the only source of repeated surface mutation in the core.
// Stop is synchronous: once it returns, no further callbacks fire.
type LoopScheduler struct {
	interval time.Duration
	duration time.Duration

	mu      sync.Mutex
	stopCh  chan struct{}
	done    chan struct{}
	running bool
}

// NewLoopScheduler ticks fps times per second over a loop of the given
// duration in seconds.
func NewLoopScheduler(fps int, durationSec float64) *LoopScheduler {
	if fps <= 0 {
		fps = 30
	}
	return &LoopScheduler{
		interval: time.Second / time.Duration(fps),
		duration: time.Duration(durationSec * float64(time.Second)),
	}
}

// Start begins invoking fn on each tick until Stop is called or ctx is
// cancelled. Calling Start on a running scheduler is a no-op.
func (s *LoopScheduler) Start(ctx context.Context, fn FrameFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.running = true
	s.stopCh = make(chan struct{})
	s.done = make(chan struct{})

	go s.run(ctx, fn, s.stopCh, s.done)
}

func (s *LoopScheduler) run(ctx context.Context, fn FrameFunc, stopCh, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			elapsed := time.Since(start) % s.duration
			fn(float64(elapsed) / float64(s.duration))
		}
	}
}

// Stop cancels the loop and waits for the tick goroutine to exit, so callers
// can rely on the frame callback never firing after Stop returns.
func (s *LoopScheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stopCh)
	done := s.done
	s.mu.Unlock()

	<-done
}
