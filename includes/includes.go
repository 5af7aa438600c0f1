package includes

import (
	"slices"
	"strings"

	"silokit/seqs"
	"silokit/sliceutil"
)

// ContainsAll reports whether container includes every element of query,
// searching from fromIndex (only the first value is used, default 0).
//
// A Text container is searched by runes; any other container by its values, so the keys
// of a Record are never matched and a scalar container holds nothing. A List query is
// checked element by element, a Text query against a Text container rune by rune, and any
// other query as a single element. Elements match by SameValueZero.
// An empty query is always included.
func ContainsAll(container, query Value, fromIndex ...int) bool {
	h := newHaystack(container, fromIndex)
	return seqs.All(slices.Values(h.needles(query)), h.has)
}

// ContainsSome reports whether container includes at least one element of query.
// It follows the rules of ContainsAll; an empty query is never included.
func ContainsSome(container, query Value, fromIndex ...int) bool {
	h := newHaystack(container, fromIndex)
	return seqs.Any(slices.Values(h.needles(query)), h.has)
}

// Synonyms of ContainsAll.
var (
	IncludesAll   = ContainsAll
	IncludesEvery = ContainsAll
	ContainsEvery = ContainsAll
)

// Synonyms of ContainsSome.
var (
	IncludesSome = ContainsSome
	IncludesAny  = ContainsSome
	ContainsAny  = ContainsSome
)

// haystack is the searchable window of a container.
type haystack struct {
	text   string
	isText bool
	elems  []Value
}

func newHaystack(container Value, fromIndex []int) haystack {
	switch KindOf(container) {
	case String:
		return haystack{text: skipRunes(string(container.(Text)), first(fromIndex)), isText: true}
	case Sequence:
		return haystack{elems: sliceutil.Window(container.(*List).values(), fromIndex...)}
	case Mapping:
		return haystack{elems: sliceutil.Window(container.(*Record).values(), fromIndex...)}
	default:
		return haystack{}
	}
}

// needles expands query into the elements to look for.
func (h haystack) needles(query Value) []Value {
	switch KindOf(query) {
	case Sequence:
		return query.(*List).values()
	case String:
		if h.isText {
			return sliceutil.Map(chars(string(query.(Text))), func(c string) Value { return Text(c) })
		}
		return []Value{query}
	default:
		// Mapping and Scalar queries are looked up whole.
		return []Value{query}
	}
}

func (h haystack) has(needle Value) bool {
	if h.isText {
		t, ok := needle.(Text)
		return ok && strings.Contains(h.text, string(t))
	}
	return sliceutil.ContainsFunc(h.elems, func(v Value) bool {
		return SameValueZero(v, needle)
	})
}

func (l *List) values() []Value {
	if l == nil {
		return nil
	}
	return l.elems
}

func (r *Record) values() []Value {
	if r == nil {
		return nil
	}
	return r.vals
}

func first(fromIndex []int) int {
	if len(fromIndex) == 0 {
		return 0
	}
	return fromIndex[0]
}

// chars splits s into its runes without decoding them, so an invalid byte stays
// the same one-byte character that skipRunes counts.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	start := -1
	for i := range s {
		if start >= 0 {
			out = append(out, s[start:i])
		}
		start = i
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// skipRunes drops the first n runes of s.
func skipRunes(s string, n int) string {
	if n <= 0 {
		return s
	}
	for i := range s {
		if n == 0 {
			return s[i:]
		}
		n--
	}
	return ""
}
