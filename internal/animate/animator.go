package animate

import (
	"context"
	"time"
)

// FrameInterval is the slice size used when spreading a delta over a
// duration. Terminal cells are coarse, so anything near 60fps is
// indistinguishable from smooth.
const FrameInterval = 16 * time.Millisecond

// Run applies total over d by invoking apply with incremental deltas,
// one per frame, so that the cumulative amount delivered tracks the
// eased curve. It blocks until the animation completes or ctx is
// cancelled, in which case it returns ctx.Err() without delivering
// the remainder.
//
// Durations at or below one frame apply the full delta immediately.
func Run(ctx context.Context, total float64, d time.Duration, ease Ease, apply func(delta float64)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ease == nil {
		ease = Linear
	}
	if d <= FrameInterval {
		apply(total)
		return nil
	}

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	start := time.Now()
	applied := 0.0
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			progress := float64(now.Sub(start)) / float64(d)
			if progress >= 1 {
				apply(total - applied)
				return nil
			}
			target := total * ease(progress)
			apply(target - applied)
			applied = target
		}
	}
}
