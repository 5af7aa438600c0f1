package includes

import "math"

// SameValueZero reports whether a and b are the same value.
//
// Numbers compare numerically, except that NaN equals NaN (+0 and -0 are already equal).
// Text, Bool, Null and nil compare by value. Lists and records compare by identity:
// they are equal only when a and b point to the same instance.
// Values of different kinds are never equal.
func SameValueZero(a, b Value) bool {
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		if !ok {
			return false
		}
		if math.IsNaN(float64(x)) {
			return math.IsNaN(float64(y))
		}
		return x == y
	case *List:
		y, ok := b.(*List)
		return ok && x == y
	case *Record:
		y, ok := b.(*Record)
		return ok && x == y
	default:
		// Text, Bool, Null and nil: all comparable, different dynamic types differ.
		return a == b
	}
}
