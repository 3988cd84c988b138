package audio

// Volumes is the fixed, ascending set of selectable volume levels.
// Index 0 is muted.
type Volumes []float64

// DefaultVolumes is the standard four-step set.
var DefaultVolumes = Volumes{0, 0.2, 0.4, 0.8}

// Clamp returns i limited to a valid index.
func (v Volumes) Clamp(i int) int {
	if len(v) == 0 || i < 0 {
		return 0
	}
	if i >= len(v) {
		return len(v) - 1
	}
	return i
}

// Level returns the gain for index i.
func (v Volumes) Level(i int) float64 {
	if len(v) == 0 {
		return 0
	}
	return min(v[v.Clamp(i)], 1)
}

// Next returns the index after i, wrapping to muted.
func (v Volumes) Next(i int) int {
	if len(v) == 0 {
		return 0
	}
	return (v.Clamp(i) + 1) % len(v)
}

// IndexFor returns the indicator index for an arbitrary level: the largest
// index whose level does not exceed it.
func (v Volumes) IndexFor(level float64) int {
	for i := len(v) - 1; i >= 0; i-- {
		if v[i] <= level {
			return i
		}
	}
	return 0
}
