package sliceutil

// Contains checks if the target element exists in the collection.
// Works for comparable types.
func Contains[T comparable](collection []T, target T) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1] // BCE hint
	for _, v := range collection {
		if v == target {
			return true
		}
	}
	return false
}

// ContainsFunc checks if any element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](collection []T, predicate func(T) bool) bool {
	if len(collection) == 0 {
		return false
	}
	_ = collection[len(collection)-1]

	for _, item := range collection {
		if predicate(item) {
			return true
		}
	}
	return false
}

// setThreshold is the query length from which ContainsAll and ContainsSome
// index the collection in a map instead of scanning it once per query element.
const setThreshold = 8

// Window returns the part of collection that a search starting at fromIndex covers.
// Only the first fromIndex value is used. A missing or negative index means the whole
// collection, an index at or past the end yields an empty slice.
func Window[T any](collection []T, fromIndex ...int) []T {
	if len(fromIndex) == 0 || fromIndex[0] <= 0 {
		return collection
	}
	if fromIndex[0] >= len(collection) {
		return collection[:0]
	}
	return collection[fromIndex[0]:]
}

// ContainsAll reports whether every element of query exists in collection,
// optionally starting the search at fromIndex. Order and duplicates in query do not matter.
// An empty query is contained in any collection.
func ContainsAll[T comparable](collection, query []T, fromIndex ...int) bool {
	if len(query) == 0 {
		return true
	}
	haystack := Window(collection, fromIndex...)
	if len(haystack) == 0 {
		return false
	}

	if len(query) < setThreshold {
		for _, q := range query {
			if !Contains(haystack, q) {
				return false
			}
		}
		return true
	}

	set := toSet(haystack)
	for _, q := range query {
		if _, ok := set[q]; !ok {
			return false
		}
	}
	return true
}

// ContainsSome reports whether at least one element of query exists in collection,
// optionally starting the search at fromIndex. An empty query never matches.
func ContainsSome[T comparable](collection, query []T, fromIndex ...int) bool {
	if len(query) == 0 {
		return false
	}
	haystack := Window(collection, fromIndex...)
	if len(haystack) == 0 {
		return false
	}

	if len(query) < setThreshold {
		for _, q := range query {
			if Contains(haystack, q) {
				return true
			}
		}
		return false
	}

	set := toSet(haystack)
	for _, q := range query {
		if _, ok := set[q]; ok {
			return true
		}
	}
	return false
}

// ContainsAllFunc is like ContainsAll but matches elements with eq.
// Use it for non-comparable types, or when == is not the wanted equality (NaN, identity).
func ContainsAllFunc[T, Q any](collection []T, query []Q, eq func(T, Q) bool, fromIndex ...int) bool {
	haystack := Window(collection, fromIndex...)
	for _, q := range query {
		if !ContainsFunc(haystack, func(v T) bool { return eq(v, q) }) {
			return false
		}
	}
	return true
}

// ContainsSomeFunc is like ContainsSome but matches elements with eq.
func ContainsSomeFunc[T, Q any](collection []T, query []Q, eq func(T, Q) bool, fromIndex ...int) bool {
	haystack := Window(collection, fromIndex...)
	for _, q := range query {
		if ContainsFunc(haystack, func(v T) bool { return eq(v, q) }) {
			return true
		}
	}
	return false
}

func toSet[T comparable](collection []T) map[T]struct{} {
	_ = collection[len(collection)-1] // BCE hint
	set := make(map[T]struct{}, len(collection))
	for _, v := range collection {
		set[v] = struct{}{}
	}
	return set
}
