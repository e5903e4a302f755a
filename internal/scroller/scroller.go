package scroller

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/azrael8576/Reorderable/internal/animate"
	"github.com/azrael8576/Reorderable/internal/logging"
	"github.com/azrael8576/Reorderable/internal/safego"
)

const (
	// MaxTickDuration caps each animated step so direction and speed
	// changes stay responsive even when a huge distance remains.
	MaxTickDuration = 100 * time.Millisecond

	// ZeroScrollWait is how long the loop sleeps when the surface
	// momentarily reports no scrollable distance.
	ZeroScrollWait = 100 * time.Millisecond
)

// Surface is the scrollable thing the controller drives. CanScroll is
// queried fresh before every tick. ScrollBy animates the offset by a
// signed delta over the given duration and blocks until the animation
// completes or ctx is cancelled.
type Surface interface {
	CanScroll(dir Direction) bool
	ScrollBy(ctx context.Context, delta float64, d time.Duration, ease animate.Ease) error
}

// intent is the logical scroll request. Two intents are equal iff both
// fields match exactly; equality is what makes Start idempotent.
type intent struct {
	dir        Direction
	multiplier float64
}

// loop bundles a running tick loop with the intent it was launched
// for, so intent, cancellation and completion state stay consistent.
type loop struct {
	intent intent
	cancel context.CancelFunc
	done   chan struct{}
}

// Option configures a Scroller.
type Option func(*Scroller)

// WithMaxTickDuration overrides the per-tick duration cap.
func WithMaxTickDuration(d time.Duration) Option {
	return func(s *Scroller) {
		s.maxTickDuration = d
	}
}

// WithZeroScrollWait overrides the zero-distance retry interval.
func WithZeroScrollWait(d time.Duration) Option {
	return func(s *Scroller) {
		s.zeroScrollWait = d
	}
}

// Scroller drives continuous, direction-aware scrolling of a Surface,
// typically while a dragged row hovers near a viewport edge. At most
// one tick loop runs at a time; a new Start with a different
// direction or speed multiplier replaces the running loop atomically.
type Scroller struct {
	surface Surface
	speed   func() float64 // rows per second, read fresh on every tick

	maxTickDuration time.Duration
	zeroScrollWait  time.Duration

	mu      sync.Mutex
	current *loop
}

// New creates a Scroller for surface. speed returns the base scroll
// speed in rows per second and may change between calls.
func New(surface Surface, speed func() float64, opts ...Option) *Scroller {
	s := &Scroller{
		surface:         surface,
		speed:           speed,
		maxTickDuration: MaxTickDuration,
		zeroScrollWait:  ZeroScrollWait,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins auto-scrolling in dir at speed()*speedMultiplier.
//
// A Start identical to the running intent is a no-op, so callers may
// invoke it on every pointer-motion event without restarting the
// loop. A differing intent cancels the running loop and waits for it
// to detach before the new request is evaluated. No loop is launched
// when the surface cannot scroll in dir or the effective speed is not
// positive.
//
// maxDistance reports the remaining scrollable distance in rows and
// is queried fresh every tick, as is the speed source, so both may
// change while the loop runs; nil maxDistance means unbounded.
// onTick, if non-nil, runs once at the top of every tick for caller
// bookkeeping such as re-evaluating a drop position.
func (s *Scroller) Start(dir Direction, speedMultiplier float64, maxDistance func() float64, onTick func()) {
	cand := intent{dir: dir, multiplier: speedMultiplier}

	s.mu.Lock()
	if s.current != nil && s.current.intent == cand {
		s.mu.Unlock()
		return
	}
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}

	rowsPerMs := s.speed() * speedMultiplier / 1000
	if rowsPerMs <= 0 || !s.surface.CanScroll(dir) {
		return
	}

	if maxDistance == nil {
		maxDistance = func() float64 { return math.MaxFloat64 }
	}

	ctx, cancel := context.WithCancel(context.Background())
	l := &loop{intent: cand, cancel: cancel, done: make(chan struct{})}
	s.mu.Lock()
	s.current = l
	s.mu.Unlock()

	safego.Go("scroller-loop", func() {
		defer close(l.done)
		defer s.detach(l)
		s.run(ctx, dir, speedMultiplier, maxDistance, onTick)
	})
}

// Stop cancels any running loop and clears the intent. Safe to call
// with nothing running.
func (s *Scroller) Stop() {
	s.mu.Lock()
	prev := s.current
	s.current = nil
	s.mu.Unlock()

	if prev != nil {
		prev.cancel()
		<-prev.done
	}
}

// IsScrolling reports whether a scroll loop is currently installed.
func (s *Scroller) IsScrolling() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current != nil
}

// detach clears the controller state when the loop terminates on its
// own. The identity check keeps a superseded loop from clobbering the
// loop that replaced it.
func (s *Scroller) detach(l *loop) {
	s.mu.Lock()
	if s.current == l {
		s.current = nil
	}
	s.mu.Unlock()
	l.cancel()
}

// run is the tick loop. Each iteration: caller bookkeeping, fresh
// speed, scrollability and distance reads, then one bounded animated
// step. Nothing is cached across ticks, so a speed source change
// applies to the very next step without restarting the loop. The
// distance is scaled back to the clamped duration so the effective
// speed stays at rowsPerMs instead of overshooting when the remaining
// distance is large.
func (s *Scroller) run(ctx context.Context, dir Direction, multiplier float64, maxDistance func() float64, onTick func()) {
	for {
		if onTick != nil {
			onTick()
		}
		if !s.surface.CanScroll(dir) {
			return
		}

		rowsPerMs := s.speed() * multiplier / 1000
		dist := maxDistance()
		if rowsPerMs <= 0 || dist <= 0 {
			// No room or no speed this instant (transient layout or
			// settings state). Throttle and retry without dropping
			// the intent.
			select {
			case <-ctx.Done():
				return
			case <-time.After(s.zeroScrollWait):
			}
			continue
		}

		idealMs := dist / rowsPerMs
		tickMs := math.Round(idealMs)
		if tickMs < 1 {
			tickMs = 1
		}
		if maxMs := float64(s.maxTickDuration / time.Millisecond); tickMs > maxMs {
			tickMs = maxMs
		}
		tickDist := dist * (tickMs / idealMs) * dir.Sign()

		err := s.surface.ScrollBy(ctx, tickDist, time.Duration(tickMs)*time.Millisecond, animate.Linear)
		if err != nil {
			if ctx.Err() == nil {
				logging.Debug("autoscroll step failed, stopping: %v", err)
			}
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
