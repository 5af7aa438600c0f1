package seqs

import (
	"iter"
	"slices"
)

// ContainsAll reports whether every element of query appears in seq.
// seq is read at most once, and not at all when query is empty, so single-use
// iterators are fine. Compose with Skip to start the search at an offset.
func ContainsAll[T comparable](seq, query iter.Seq[T]) bool {
	var set map[T]struct{}
	for q := range query {
		if set == nil {
			set = collectSet(seq)
		}
		if _, ok := set[q]; !ok {
			return false
		}
	}
	return true
}

// ContainsSome reports whether at least one element of query appears in seq.
func ContainsSome[T comparable](seq, query iter.Seq[T]) bool {
	var set map[T]struct{}
	for q := range query {
		if set == nil {
			set = collectSet(seq)
		}
		if _, ok := set[q]; ok {
			return true
		}
	}
	return false
}

// ContainsAllFunc is like ContainsAll but matches elements with eq.
func ContainsAllFunc[T, Q any](seq iter.Seq[T], query iter.Seq[Q], eq func(T, Q) bool) bool {
	var haystack []T
	loaded := false
	return All(query, func(q Q) bool {
		if !loaded {
			haystack, loaded = slices.Collect(seq), true
		}
		return Any(slices.Values(haystack), func(v T) bool { return eq(v, q) })
	})
}

// ContainsSomeFunc is like ContainsSome but matches elements with eq.
func ContainsSomeFunc[T, Q any](seq iter.Seq[T], query iter.Seq[Q], eq func(T, Q) bool) bool {
	var haystack []T
	loaded := false
	return Any(query, func(q Q) bool {
		if !loaded {
			haystack, loaded = slices.Collect(seq), true
		}
		return Any(slices.Values(haystack), func(v T) bool { return eq(v, q) })
	})
}

func collectSet[T comparable](seq iter.Seq[T]) map[T]struct{} {
	set := make(map[T]struct{})
	for v := range seq {
		set[v] = struct{}{}
	}
	return set
}
