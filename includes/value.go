package includes

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind is the shape of a Value as seen by the containment checks.
type Kind uint8

const (
	Scalar Kind = iota
	String
	Sequence
	Mapping
)

func (k Kind) String() string {
	switch k {
	case Scalar:
		return "scalar"
	case String:
		return "string"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a dynamically shaped value: one of Number, Bool, Null, Text, *List or *Record.
// A nil Value stands for an absent (undefined) scalar.
//
// Scalars and Text compare by value. *List and *Record compare by identity,
// so two lists holding the same elements are different values.
type Value interface {
	Kind() Kind
	sealed()
}

// Number is a numeric scalar. Integers are represented exactly up to 2^53.
type Number float64

// Bool is a boolean scalar.
type Bool bool

// Null is the explicit null scalar. It is distinct from a nil Value.
type Null struct{}

// Text is a string. It is searched as a sequence of runes.
type Text string

func (Number) Kind() Kind { return Scalar }
func (Bool) Kind() Kind   { return Scalar }
func (Null) Kind() Kind   { return Scalar }
func (Text) Kind() Kind   { return String }

func (Number) sealed() {}
func (Bool) sealed()   {}
func (Null) sealed()   {}
func (Text) sealed()   {}

func (n Number) String() string {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// KindOf returns the kind of v. A nil Value is a Scalar.
func KindOf(v Value) Kind {
	if v == nil {
		return Scalar
	}
	return v.Kind()
}

// List is an ordered sequence of values.
type List struct {
	elems []Value
}

// NewList returns a new list holding elems. The slice is copied.
func NewList(elems ...Value) *List {
	return &List{elems: slices.Clone(elems)}
}

func (*List) Kind() Kind { return Sequence }
func (*List) sealed()    {}

// Len returns the number of elements in the list.
func (l *List) Len() int {
	return len(l.elems)
}

// At returns the element at index i. It panics if i is out of range.
func (l *List) At(i int) Value {
	return l.elems[i]
}

// Append adds elems to the end of the list and returns the list.
func (l *List) Append(elems ...Value) *List {
	l.elems = append(l.elems, elems...)
	return l
}

// Values returns a copy of the list elements.
func (l *List) Values() []Value {
	return slices.Clone(l.elems)
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(format(v))
	}
	sb.WriteByte(']')
	return sb.String()
}

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value Value
}

// Record is a mapping from string keys to values that remembers insertion order.
type Record struct {
	keys  []string
	vals  []Value
	index map[string]int
}

// NewRecord returns a record holding fields in the given order.
// A repeated key overwrites the earlier value and keeps its position.
func NewRecord(fields ...Field) *Record {
	r := &Record{index: make(map[string]int, len(fields))}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

func (*Record) Kind() Kind { return Mapping }
func (*Record) sealed()    {}

// Set stores v under key and returns the record.
// Existing keys keep their position, new keys are appended.
func (r *Record) Set(key string, v Value) *Record {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.vals[i] = v
		return r
	}
	r.index[key] = len(r.keys)
	r.keys = append(r.keys, key)
	r.vals = append(r.vals, v)
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.vals[i], true
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Values returns the values in key insertion order.
func (r *Record) Values() []Value {
	return slices.Clone(r.vals)
}

func (r *Record) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Quote(k))
		sb.WriteString(": ")
		sb.WriteString(format(r.vals[i]))
	}
	sb.WriteByte('}')
	return sb.String()
}

func format(v Value) string {
	switch x := v.(type) {
	case nil:
		return "undefined"
	case Null:
		return "null"
	case Text:
		return strconv.Quote(string(x))
	case Bool:
		return strconv.FormatBool(bool(x))
	default:
		return fmt.Sprint(x)
	}
}

// Of converts a plain Go value into a Value.
//
// Strings become Text, booleans Bool, every integer and float type Number, nil stays nil.
// []Value and []any become a new *List, map[string]any a new *Record. Go maps carry no
// order, so record keys are sorted bytewise: "10" comes before "2", and integer-like keys
// get no special placement. Offsets into such a record count in that order.
// A Value is returned unchanged, so composites keep their identity.
// Of panics on any other type.
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case Value:
		return x
	case string:
		return Text(x)
	case bool:
		return Bool(x)
	case int:
		return Number(x)
	case int8:
		return Number(x)
	case int16:
		return Number(x)
	case int32:
		return Number(x)
	case int64:
		return Number(x)
	case uint:
		return Number(x)
	case uint8:
		return Number(x)
	case uint16:
		return Number(x)
	case uint32:
		return Number(x)
	case uint64:
		return Number(x)
	case float32:
		return Number(x)
	case float64:
		return Number(x)
	case []Value:
		return NewList(x...)
	case []any:
		l := &List{elems: make([]Value, len(x))}
		for i, e := range x {
			l.elems[i] = Of(e)
		}
		return l
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		r := &Record{index: make(map[string]int, len(x))}
		for _, k := range keys {
			r.Set(k, Of(x[k]))
		}
		return r
	default:
		panic(fmt.Sprintf("includes: cannot convert %T to a Value", v))
	}
}
