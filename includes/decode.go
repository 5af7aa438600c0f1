package includes

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnsupported is returned by Decode for YAML that has no Value counterpart,
// such as non-scalar mapping keys, merge keys or custom tags.
var ErrUnsupported = errors.New("unsupported yaml")

// Decode parses a YAML or JSON document into a Value.
//
// Mappings become records whose keys keep the order they appear in the document; keys that
// look like integers are not moved to the front. Sequences become lists, quoted and plain strings Text,
// integers and floats Number (".nan" and ".inf" included), booleans Bool and null Null.
// Every mapping or sequence in the document is a distinct instance, except that an alias
// resolves to the very instance its anchor produced. Empty input decodes to nil.
func Decode(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("includes: decode: %w", err)
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	d := decoder{seen: make(map[*yaml.Node]Value)}
	v, err := d.decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("includes: decode: %w", err)
	}
	return v, nil
}

// MustDecode is like Decode but panics on error.
func MustDecode(s string) Value {
	v, err := Decode([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

type decoder struct {
	// anchored nodes already built, so aliases share the instance
	seen map[*yaml.Node]Value
}

func (d *decoder) decode(n *yaml.Node) (Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return d.decode(n.Content[0])
	case yaml.AliasNode:
		return d.decode(n.Alias)
	case yaml.SequenceNode:
		if v, ok := d.seen[n]; ok {
			return v, nil
		}
		l := &List{elems: make([]Value, 0, len(n.Content))}
		d.seen[n] = l
		for _, c := range n.Content {
			v, err := d.decode(c)
			if err != nil {
				return nil, err
			}
			l.elems = append(l.elems, v)
		}
		return l, nil
	case yaml.MappingNode:
		if v, ok := d.seen[n]; ok {
			return v, nil
		}
		r := &Record{index: make(map[string]int, len(n.Content)/2)}
		d.seen[n] = r
		for i := 0; i+1 < len(n.Content); i += 2 {
			k := n.Content[i]
			if k.Kind == yaml.AliasNode {
				k = k.Alias
			}
			if k.Kind != yaml.ScalarNode || k.ShortTag() == "!!merge" {
				return nil, fmt.Errorf("%w: mapping key at line %d", ErrUnsupported, k.Line)
			}
			v, err := d.decode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			r.Set(k.Value, v)
		}
		return r, nil
	case yaml.ScalarNode:
		return scalar(n)
	default:
		return nil, fmt.Errorf("%w: node kind %d at line %d", ErrUnsupported, n.Kind, n.Line)
	}
}

func scalar(n *yaml.Node) (Value, error) {
	switch tag := n.ShortTag(); tag {
	case "!!null":
		return Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, err
		}
		return Number(f), nil
	case "!!str", "!!timestamp", "!!binary":
		return Text(n.Value), nil
	default:
		return nil, fmt.Errorf("%w: tag %s at line %d", ErrUnsupported, tag, n.Line)
	}
}
