package scroller

// Direction is the axis of travel relative to the surface's scroll
// position: backward toward offset zero, forward toward the end.
type Direction int

const (
	DirectionBackward Direction = iota
	DirectionForward
)

// Sign returns the multiplier applied to scroll distances for the
// direction: -1 for backward, +1 for forward.
func (d Direction) Sign() float64 {
	if d == DirectionBackward {
		return -1
	}
	return 1
}

func (d Direction) String() string {
	switch d {
	case DirectionBackward:
		return "backward"
	case DirectionForward:
		return "forward"
	default:
		return "unknown"
	}
}
