package seqs

import "iter"

// Any reports whether at least one element satisfies the predicate.
// It stops at the first match; an empty sequence yields false.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate.
// It stops at the first miss; an empty sequence yields true.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}
