package ir

import (
	"maps"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"
)

type Node struct {
	Type Type
	// Name is the member name under an Object parent.
	Name string
	// Text is the canonical text of a String, Number or Bool.
	Text string
	// Values holds the children of an Object or Array in order.
	Values []*Node
	Parent *Node
}

// Len returns the number of characters of a scalar's text, or the number
// of children of a container.
func (y *Node) Len() int {
	switch y.Type {
	case ObjectType, ArrayType:
		return len(y.Values)
	case NullType:
		return 0
	default:
		return utf8.RuneCountInString(y.Text)
	}
}

// Index returns the position of y among its parent's children, or -1 if y
// is a root.
func (y *Node) Index() int {
	if y.Parent == nil {
		return -1
	}
	return slices.Index(y.Parent.Values, y)
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Member returns the first child of y named name, or nil.
func (y *Node) Member(name string) *Node {
	for _, c := range y.Values {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func (y *Node) WithName(name string) *Node {
	y.Name = name
	return y
}

// Clone returns a deep copy of y as a standalone root.
func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.Name = y.Name
	dst.Text = y.Text
	dst.Parent = nil
	dst.Values = nil
	if len(y.Values) != 0 {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := yv.Clone()
		dstI.Parent = dst
		dst.Values[i] = dstI
	}
	return dst
}

// KPath returns the path from y's root to y, such that
// y.Root().Get(y.KPath()) returns y.
//
// Examples:
//   - Root node → ""
//   - Object member "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Mixed → "a[0].b"
func (y *Node) KPath() string {
	if y.Parent == nil {
		return ""
	}
	prefix := y.Parent.KPath()
	switch y.Parent.Type {
	case ArrayType:
		return prefix + "[" + strconv.Itoa(y.Index()) + "]"
	default:
		if prefix == "" {
			return y.Name
		}
		return prefix + "." + y.Name
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, Text: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: NumberType, Text: strconv.FormatInt(v, 10)}
}

func FromUint(v uint64) *Node {
	return &Node{Type: NumberType, Text: strconv.FormatUint(v, 10)}
}

// FromFloat returns a Number node holding the shortest text which
// round trips f. NaN and the infinities have no JSON form and yield Null.
func FromFloat(f float64) *Node {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Null()
	}
	return &Node{Type: NumberType, Text: formatFloat(f)}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Text: strconv.FormatBool(v)}
}

func formatFloat(f float64) string {
	// exponents come out as e+21 or e-07, both valid JSON
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// FromMap returns an Object with one member per key, in sorted key order.
func FromMap(yMap map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Values = make([]*Node, 0, len(yMap))
	for _, key := range slices.Sorted(maps.Keys(yMap)) {
		y := yMap[key]
		y.Name = key
		y.Parent = res
		res.Values = append(res.Values, y)
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals returns an Object with members in the order of kvs.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Val.Name = kv.Key
		kv.Val.Parent = res
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{Type: ArrayType}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		y.Parent = res
		res.Values[i] = y
	}
	return res
}
