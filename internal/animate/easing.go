package animate

import "math"

// Ease maps animation progress t in [0, 1] to an eased value in [0, 1].
type Ease func(t float64) float64

// Linear applies no easing (constant velocity).
func Linear(t float64) float64 {
	return t
}

// OutCubic starts fast and decelerates toward the end.
func OutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// InOutCubic accelerates through the first half and decelerates
// through the second.
func InOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}
