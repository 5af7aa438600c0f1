package includes_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"silokit/includes"
)

type (
	num  = includes.Number
	text = includes.Text
)

func list(elems ...includes.Value) *includes.List {
	return includes.NewList(elems...)
}

func nums(ns ...float64) *includes.List {
	l := includes.NewList()
	for _, n := range ns {
		l.Append(num(n))
	}
	return l
}

func jack() *includes.Record {
	return includes.NewRecord(
		includes.Field{Key: "name", Value: text("jack")},
		includes.Field{Key: "age", Value: num(20)},
	)
}

func fred() *includes.Record {
	return includes.NewRecord(
		includes.Field{Key: "user", Value: text("fred")},
		includes.Field{Key: "age", Value: num(40)},
	)
}

type containsCase struct {
	name      string
	container includes.Value
	query     includes.Value
	fromIndex []int
	want      bool
}

func runCases(t *testing.T, check func(includes.Value, includes.Value, ...int) bool, tests []containsCase) {
	t.Helper()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, check(tt.container, tt.query, tt.fromIndex...))
		})
	}
}

func TestContainsAllArrays(t *testing.T) {
	someArray := nums(5, 8)

	runCases(t, includes.ContainsAll, []containsCase{
		{"Subset", nums(1, 2, 3, 4), nums(2, 4), nil, true},
		{"Scalar", nums(1, 2, 3, 4), num(3), nil, true},
		{"OffsetExcludesFirst", nums(1, 2, 3, 4), nums(1, 2), []int{1}, false},
		{"ScalarMissing", nums(1, 2, 3, 4), num(5), nil, false},
		{"PartialMatch", nums(1, 2, 3, 4), nums(3, 5), nil, false},
		{"OrderIndependent", nums(1, 2, 3, 4), nums(3, 1), nil, true},
		{"Superset", nums(1, 2, 3, 4), nums(1, 2, 3, 4, 5), nil, false},
		{"NestedQuery", nums(1, 2, 3, 4), list(nums(2, 3)), nil, false},
		{"DistinctNestedInstance", list(num(1), num(2), nums(3, 4)), list(num(1), nums(3, 4)), nil, false},
		{"SameNestedInstance", list(num(1), num(2), someArray), list(num(1), someArray), nil, true},
		{"ScalarOffsetExcludes", nums(1, 2, 3, 4), num(1), []int{1}, false},
		{"PairOffsetExcludes", nums(1, 2, 3, 4), nums(1, 3), []int{1}, false},
		{"TextElement", list(num(1), text("two"), num(3)), text("two"), nil, true},
		{"EmptyQuery", nums(1, 2), list(), nil, true},
		{"EmptyQueryEmptyContainer", list(), list(), nil, true},
		{"EmptyContainer", list(), num(1), nil, false},
	})
}

func TestContainsAllRecords(t *testing.T) {
	jackAddress := includes.NewRecord(
		includes.Field{Key: "city", Value: text("jacksonville")},
		includes.Field{Key: "state", Value: text("fl")},
	)
	withAddress := includes.NewRecord(
		includes.Field{Key: "name", Value: text("jack")},
		includes.Field{Key: "address", Value: jackAddress},
	)
	withCopiedAddress := includes.NewRecord(
		includes.Field{Key: "name", Value: text("jack")},
		includes.Field{Key: "address", Value: includes.NewRecord(
			includes.Field{Key: "city", Value: text("jacksonville")},
			includes.Field{Key: "state", Value: text("fl")},
		)},
	)
	withShirt := jack().Set("shirt_size", text("L"))

	runCases(t, includes.ContainsAll, []containsCase{
		{"Values", jack(), list(text("jack"), num(20)), nil, true},
		{"ScalarValue", jack(), num(20), nil, true},
		{"KeysAreNotSearched", jack(), text("age"), nil, false},
		{"ThreeFields", withShirt, list(text("L"), text("jack")), nil, true},
		{"OffsetExcludesFirstValue", jack(), text("jack"), []int{1}, false},
		{"OffsetKeepsSecondValue", jack(), num(20), []int{1}, true},
		{"DistinctRecordInstance", withCopiedAddress, jackAddress, nil, false},
		{"SameRecordInstance", withAddress, jackAddress, nil, true},
		{"FredByValue", fred(), text("fred"), nil, true},
		{"FredOffset", fred(), text("fred"), []int{1}, false},
		{"FredBothValues", fred(), list(text("fred"), num(40)), nil, true},
	})
}

func TestContainsAllText(t *testing.T) {
	runCases(t, includes.ContainsAll, []containsCase{
		{"Characters", text("string"), text("in"), nil, true},
		{"CharactersAnyOrder", text("string"), text("gnirts"), nil, true},
		{"MissingCharacter", text("string"), text("bonk"), nil, false},
		{"EmptyQueryText", text("string"), text(""), nil, true},
		{"OffsetInRunes", text("héllo"), text("l"), []int{2}, true},
		{"OffsetExcludesRune", text("héllo"), text("é"), []int{2}, false},
		{"OffsetPastEnd", text("abc"), text("c"), []int{3}, false},
		{"Substrings", text("string"), list(text("st"), text("ring")), nil, true},
		{"SubstringMissing", text("string"), list(text("sr")), nil, false},
		{"NumberInText", text("a1"), num(1), nil, false},
		{"TextInList", list(text("in"), text("out")), text("in"), nil, true},
		{"TextInListIsAtomic", list(text("i"), text("n")), text("in"), nil, false},
		{"InvalidUTF8Self", text("a\xffb"), text("a\xffb"), nil, true},
		{"InvalidUTF8Byte", text("a\xffb"), text("\xff"), nil, true},
		{"InvalidUTF8Offset", text("a\xffb"), text("\xff"), []int{2}, false},
		{"InvalidUTF8Missing", text("ab"), text("\xff"), nil, false},
	})
}

func TestContainsSome(t *testing.T) {
	runCases(t, includes.ContainsSome, []containsCase{
		{"Scalar", nums(1, 2, 3, 4), num(1), nil, true},
		{"OneOfTwo", nums(1, 2, 3, 4), nums(1, 5), nil, true},
		{"ScalarOffsetExcludes", nums(1, 2, 3, 4), num(1), []int{1}, false},
		{"OffsetKeepsOne", nums(1, 2, 3, 4), nums(1, 3), []int{1}, true},
		{"NoneMatch", nums(1, 2, 3, 4), nums(5, 6), nil, false},
		{"FredByValue", fred(), text("fred"), nil, true},
		{"FredOffset", fred(), text("fred"), []int{1}, false},
		{"FredOneValue", fred(), list(text("barney"), num(40)), nil, true},
		{"TextCharacters", text("string"), text("in"), nil, true},
		{"TextElement", list(num(1), text("two"), num(3)), text("two"), nil, true},
		{"SharedCharacter", text("string"), text("bonk"), nil, true},
		{"NoSharedCharacter", text("string"), text("xyz"), nil, false},
		{"EmptyQuery", nums(1, 2), list(), nil, false},
		{"EmptyQueryText", text("string"), text(""), nil, false},
		{"DistinctNestedInstance", list(nums(3, 4)), list(nums(3, 4)), nil, false},
		{"InvalidUTF8Byte", text("a\xffb"), text("\xff"), nil, true},
		{"InvalidUTF8AfterOffset", text("a\xffb"), text("x\xff"), []int{1}, true},
		{"InvalidUTF8BeforeOffset", text("a\xffb"), text("\xff"), []int{2}, false},
	})
}

func TestTextContainsItself(t *testing.T) {
	for _, s := range []string{"string", "héllo", "a\xffb", "\xff\xfe", "日本\x80"} {
		assert.True(t, includes.ContainsAll(text(s), text(s)), "%q contains itself", s)
		assert.True(t, includes.ContainsSome(text(s), text(s)), "%q contains itself", s)
		// the non-text path treats the same string as one element
		assert.True(t, includes.ContainsAll(list(text(s)), text(s)), "%q in a list", s)
	}
}

func TestScalarContainer(t *testing.T) {
	for _, c := range []includes.Value{nil, num(1), includes.Bool(true), includes.Null{}} {
		assert.False(t, includes.ContainsAll(c, c), "scalar %v holds nothing", c)
		assert.False(t, includes.ContainsSome(c, c), "scalar %v holds nothing", c)
		assert.True(t, includes.ContainsAll(c, list()), "empty query is vacuously true")
	}
}

func TestNilComposites(t *testing.T) {
	var l *includes.List
	var r *includes.Record

	assert.False(t, includes.ContainsSome(l, num(1)))
	assert.False(t, includes.ContainsSome(r, num(1)))
	assert.True(t, includes.ContainsAll(nums(1), l), "nil list query has no elements")
}

func TestUndefinedAndNull(t *testing.T) {
	container := list(nil, includes.Null{})

	assert.True(t, includes.ContainsAll(container, nil))
	assert.True(t, includes.ContainsAll(container, includes.Null{}))
	assert.False(t, includes.ContainsAll(nums(1), nil))
	assert.False(t, includes.ContainsAll(list(nil), includes.Null{}), "null is not undefined")
}

func TestSameValueZeroMembership(t *testing.T) {
	container := list(num(math.NaN()), num(math.Copysign(0, -1)), includes.Bool(false))

	assert.True(t, includes.ContainsAll(container, num(math.NaN())))
	assert.True(t, includes.ContainsAll(container, num(0)), "+0 matches -0")
	assert.True(t, includes.ContainsAll(container, includes.Bool(false)))
	assert.False(t, includes.ContainsAll(container, text("false")))
	assert.False(t, includes.ContainsAll(container, num(0), 2))
}

func TestSingleElementProperty(t *testing.T) {
	containers := []includes.Value{
		nums(1, 2, 3),
		list(text("a"), num(1), includes.Bool(true), includes.Null{}, nil),
		jack(),
	}
	for _, c := range containers {
		var elems []includes.Value
		switch x := c.(type) {
		case *includes.List:
			elems = x.Values()
		case *includes.Record:
			elems = x.Values()
		}
		for _, e := range elems {
			if includes.KindOf(e) == includes.Sequence {
				continue
			}
			assert.True(t, includes.ContainsAll(c, e), "%v contains %v", c, e)
			assert.True(t, includes.ContainsSome(c, e), "%v contains %v", c, e)
		}
	}
}

func TestAliases(t *testing.T) {
	cases := []containsCase{
		{"ArrayHit", nums(1, 2, 3, 4), nums(1, 3), nil, true},
		{"ArrayOffset", nums(1, 2, 3, 4), nums(1, 3), []int{1}, false},
		{"Text", text("string"), text("bonk"), nil, false},
		{"Record", jack(), text("age"), nil, false},
		{"Empty", nums(1), list(), nil, true},
	}

	all := map[string]func(includes.Value, includes.Value, ...int) bool{
		"IncludesAll":   includes.IncludesAll,
		"IncludesEvery": includes.IncludesEvery,
		"ContainsEvery": includes.ContainsEvery,
	}
	some := map[string]func(includes.Value, includes.Value, ...int) bool{
		"IncludesSome": includes.IncludesSome,
		"IncludesAny":  includes.IncludesAny,
		"ContainsAny":  includes.ContainsAny,
	}

	for _, c := range cases {
		wantAll := includes.ContainsAll(c.container, c.query, c.fromIndex...)
		wantSome := includes.ContainsSome(c.container, c.query, c.fromIndex...)
		for name, fn := range all {
			assert.Equal(t, wantAll, fn(c.container, c.query, c.fromIndex...), "%s/%s", name, c.name)
		}
		for name, fn := range some {
			assert.Equal(t, wantSome, fn(c.container, c.query, c.fromIndex...), "%s/%s", name, c.name)
		}
	}
}
