package includes

import "math"

// FromIndex converts v into a search offset for ContainsAll and ContainsSome.
// A finite Number is truncated toward zero, saturating at the int range.
// Anything else, including NaN and the infinities, yields 0.
func FromIndex(v Value) int {
	n, ok := v.(Number)
	if !ok {
		return 0
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	f = math.Trunc(f)
	switch {
	case f >= math.MaxInt:
		return math.MaxInt
	case f <= math.MinInt:
		return math.MinInt
	}
	return int(f)
}
