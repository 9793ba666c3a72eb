package setconfig

import (
	"fmt"
	"strconv"
)

// Kind identifies the shape of a configuration Node.
type Kind int

const (
	// NullKind is an absent or explicitly null value.
	NullKind Kind = iota
	// ScalarKind holds a string, int, float64 or bool.
	ScalarKind
	// ListKind is an ordered sequence of nodes.
	ListKind
	// MapKind is an ordered set of key/value pairs.
	MapKind
)

func (k Kind) String() string {
	switch k {
	case NullKind:
		return "null"
	case ScalarKind:
		return "scalar"
	case ListKind:
		return "list"
	case MapKind:
		return "map"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Node is one value of a decoded configuration tree.
//
// Maps keep their keys in declaration order. The order of a legacy
// "arguments" map decides media-query precedence in the rendered markup, so
// it must survive decoding; a Go map would lose it.
//
// Nodes are never mutated after construction and may be shared between
// goroutines.
type Node struct {
	kind   Kind
	scalar interface{}
	keys   []string
	tags   []string
	values []*Node
}

// KeyValue is one entry of a map node, used with Map. Tag is the resolved
// YAML tag of the key ("!!str", "!!int", "!!null", ...) and is empty for
// keys built in code.
type KeyValue struct {
	Key   string
	Tag   string
	Value *Node
}

// KV is shorthand for building a KeyValue.
func KV(key string, value *Node) KeyValue {
	return KeyValue{Key: key, Value: value}
}

// Null returns a null node.
func Null() *Node {
	return &Node{kind: NullKind}
}

// Scalar wraps a string, bool or number. Integer types are normalised to int.
func Scalar(v interface{}) *Node {
	switch n := v.(type) {
	case nil:
		return Null()
	case int8:
		v = int(n)
	case int16:
		v = int(n)
	case int32:
		v = int(n)
	case int64:
		v = int(n)
	case uint:
		v = int(n)
	case uint8:
		v = int(n)
	case uint16:
		v = int(n)
	case uint32:
		v = int(n)
	case float32:
		v = float64(n)
	}
	return &Node{kind: ScalarKind, scalar: v}
}

// List builds a list node from the given items.
func List(items ...*Node) *Node {
	return &Node{kind: ListKind, values: items}
}

// ListOf builds a list of scalars.
func ListOf(values ...interface{}) *Node {
	items := make([]*Node, len(values))
	for i, v := range values {
		items[i] = Scalar(v)
	}
	return List(items...)
}

// Map builds a map node. Later duplicates of a key replace the earlier value
// in place, keeping the position of the first occurrence.
func Map(entries ...KeyValue) *Node {
	n := &Node{kind: MapKind}
	for _, e := range entries {
		if i := n.index(e.Key); i >= 0 {
			n.tags[i] = e.Tag
			n.values[i] = e.Value
			continue
		}
		n.keys = append(n.keys, e.Key)
		n.tags = append(n.tags, e.Tag)
		n.values = append(n.values, e.Value)
	}
	return n
}

// Kind reports the node's shape. A nil node is NullKind.
func (n *Node) Kind() Kind {
	if n == nil {
		return NullKind
	}
	return n.kind
}

// IsNull reports whether the node is nil or null.
func (n *Node) IsNull() bool { return n.Kind() == NullKind }

// IsList reports whether the node is a list.
func (n *Node) IsList() bool { return n.Kind() == ListKind }

// IsMap reports whether the node is a map.
func (n *Node) IsMap() bool { return n.Kind() == MapKind }

// IsScalar reports whether the node is a scalar.
func (n *Node) IsScalar() bool { return n.Kind() == ScalarKind }

// Len returns the number of entries of a list or map, zero otherwise.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.values)
}

// Keys returns the keys of a map node in declaration order. For a list node
// it returns the decimal indexes "0".."n-1".
func (n *Node) Keys() []string {
	switch n.Kind() {
	case MapKind:
		out := make([]string, len(n.keys))
		copy(out, n.keys)
		return out
	case ListKind:
		out := make([]string, len(n.values))
		for i := range n.values {
			out[i] = strconv.Itoa(i)
		}
		return out
	default:
		return nil
	}
}

// KeyTag returns the YAML tag the key was decoded with, or "" when the key
// is absent or was built in code.
func (n *Node) KeyTag(key string) string {
	if n.Kind() != MapKind {
		return ""
	}
	if i := n.index(key); i >= 0 {
		return n.tags[i]
	}
	return ""
}

// Entries returns the key/value pairs of a map node in declaration order.
func (n *Node) Entries() []KeyValue {
	if n.Kind() != MapKind {
		return nil
	}
	out := make([]KeyValue, len(n.keys))
	for i, k := range n.keys {
		out[i] = KeyValue{Key: k, Tag: n.tags[i], Value: n.values[i]}
	}
	return out
}

// Items returns the values of a list or map node in order.
func (n *Node) Items() []*Node {
	if n == nil || (n.kind != ListKind && n.kind != MapKind) {
		return nil
	}
	out := make([]*Node, len(n.values))
	copy(out, n.values)
	return out
}

// Get returns the value stored under key in a map node.
func (n *Node) Get(key string) (*Node, bool) {
	if n.Kind() != MapKind {
		return nil, false
	}
	i := n.index(key)
	if i < 0 {
		return nil, false
	}
	return n.values[i], true
}

// Has reports whether a map node has key with a non-null value.
func (n *Node) Has(key string) bool {
	v, ok := n.Get(key)
	return ok && !v.IsNull()
}

// Value returns the raw scalar value, or nil for non-scalars.
func (n *Node) Value() interface{} {
	if n.Kind() != ScalarKind {
		return nil
	}
	return n.scalar
}

// String returns the scalar as a string when it is one.
func (n *Node) String() (string, bool) {
	s, ok := n.Value().(string)
	return s, ok
}

// Interface converts the node into plain Go values: lists become
// []interface{}, maps become map[string]interface{} and scalars are returned
// as-is. Map ordering is lost; use Keys and Items where order matters.
func (n *Node) Interface() interface{} {
	switch n.Kind() {
	case ScalarKind:
		return n.scalar
	case ListKind:
		out := make([]interface{}, len(n.values))
		for i, v := range n.values {
			out[i] = v.Interface()
		}
		return out
	case MapKind:
		out := make(map[string]interface{}, len(n.values))
		for i, k := range n.keys {
			out[k] = n.values[i].Interface()
		}
		return out
	default:
		return nil
	}
}

func (n *Node) index(key string) int {
	for i, k := range n.keys {
		if k == key {
			return i
		}
	}
	return -1
}
