package list

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/azrael8576/Reorderable/internal/animate"
	"github.com/azrael8576/Reorderable/internal/scroller"
)

// rowSurface is the scroller.Surface over the list viewport. The
// offset is a float so animated steps can land between rows; rendering
// rounds it. Guarded by a lock because the scroll loop mutates it from
// its own goroutine while the UI goroutine reads it.
type rowSurface struct {
	mu     sync.Mutex
	offset float64
	max    float64
	notify func()
}

// SetNotify installs the callback invoked after every offset change,
// typically posting a repaint message to the program.
func (s *rowSurface) SetNotify(notify func()) {
	s.mu.Lock()
	s.notify = notify
	s.mu.Unlock()
}

func (s *rowSurface) CanScroll(dir scroller.Direction) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir == scroller.DirectionBackward {
		return s.offset > 0
	}
	return s.offset < s.max
}

func (s *rowSurface) ScrollBy(ctx context.Context, delta float64, d time.Duration, ease animate.Ease) error {
	return animate.Run(ctx, delta, d, ease, s.apply)
}

func (s *rowSurface) apply(delta float64) {
	s.mu.Lock()
	s.offset += delta
	if s.offset < 0 {
		s.offset = 0
	}
	if s.offset > s.max {
		s.offset = s.max
	}
	notify := s.notify
	s.mu.Unlock()
	if notify != nil {
		notify()
	}
}

// Remaining returns the scrollable distance left in dir, in rows.
func (s *rowSurface) Remaining(dir scroller.Direction) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if dir == scroller.DirectionBackward {
		return s.offset
	}
	return s.max - s.offset
}

// Offset returns the first visible row index.
func (s *rowSurface) Offset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int(math.Round(s.offset))
}

// SetMax updates the scroll bound, clamping the offset into range.
func (s *rowSurface) SetMax(max float64) {
	if max < 0 {
		max = 0
	}
	s.mu.Lock()
	s.max = max
	if s.offset > s.max {
		s.offset = s.max
	}
	s.mu.Unlock()
}

// Nudge shifts the offset immediately (wheel and keyboard scrolling).
func (s *rowSurface) Nudge(delta float64) {
	s.apply(delta)
}

// ScrollIntoView adjusts the offset so row is visible in a viewport of
// height rows.
func (s *rowSurface) ScrollIntoView(row, height int) {
	s.mu.Lock()
	top := int(math.Round(s.offset))
	switch {
	case row < top:
		s.offset = float64(row)
	case height > 0 && row >= top+height:
		s.offset = float64(row - height + 1)
	}
	if s.offset < 0 {
		s.offset = 0
	}
	if s.offset > s.max {
		s.offset = s.max
	}
	s.mu.Unlock()
}
