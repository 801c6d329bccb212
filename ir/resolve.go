package ir

import (
	"fmt"

	"github.com/signadot/jdoc/ir/kpath"
)

// Resolve walks p from root and returns the node it addresses together
// with that node's parent (nil for the root).
//
// Without create, a missing member, an out of range index or a Null met
// before the end of the path is ErrNotFound, and stepping into a String,
// Number or Bool is ErrIncorrect.
//
// With create, missing members are added as Objects, an indexed segment
// becomes an Array padded with Nulls up to the index, and a Null met on the
// way is promoted to an Object (or an Array when indexed). An existing
// member is returned as is, so creating the same path twice yields the
// same node. When root is nil a new tree is built; the caller owns it via
// node.Root().
func Resolve(root *Node, p kpath.Path, create bool) (node, parent *Node, err error) {
	if create {
		node, _, err = build(root, p)
	} else {
		node, err = lookup(root, p)
	}
	if err != nil {
		return nil, nil, err
	}
	return node, node.Parent, nil
}

// Get returns the node at path beneath y, without creating anything.
func (y *Node) Get(path string) (*Node, error) {
	p, err := kpath.ParseAll(path)
	if err != nil {
		return nil, err
	}
	return lookup(y, p)
}

// Create returns the node at path beneath y, creating it and any missing
// intermediate nodes.
func (y *Node) Create(path string) (*Node, error) {
	p, err := kpath.ParseAll(path)
	if err != nil {
		return nil, err
	}
	res, _, err := build(y, p)
	return res, err
}

// Assign creates path beneath root as Create does and applies set to the
// resulting node. If set fails every node created and every promotion made
// on the way is undone, so a failed call leaves root as it was. With a nil
// root the assigned node's Root is the new tree.
func Assign(root *Node, path string, set func(*Node) error) (*Node, error) {
	p, err := kpath.ParseAll(path)
	if err != nil {
		return nil, err
	}
	res, u, err := build(root, p)
	if err != nil {
		return nil, err
	}
	if err := set(res); err != nil {
		u.rollback()
		return nil, err
	}
	return res, nil
}

func lookup(root *Node, p kpath.Path) (*Node, error) {
	if root == nil {
		if len(p) == 0 {
			return nil, fmt.Errorf("%w: nil root", ErrParam)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	cur := root
	var err error
	for i, seg := range p {
		if seg.Name != "" {
			cur, err = member(cur, seg.Name, nil)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, p[:i+1])
			}
		}
		if seg.Index >= 0 {
			cur, err = element(cur, seg.Index, nil)
			if err != nil {
				return nil, fmt.Errorf("%w at %s", err, p[:i+1])
			}
		}
	}
	return cur, nil
}

func build(root *Node, p kpath.Path) (*Node, *undo, error) {
	u := &undo{}
	if root == nil {
		root = Null()
	}
	cur := root
	var err error
	for i, seg := range p {
		if seg.Name != "" {
			cur, err = member(cur, seg.Name, u)
			if err != nil {
				u.rollback()
				return nil, nil, fmt.Errorf("%w at %s", err, p[:i+1])
			}
		}
		if seg.Index >= 0 {
			cur, err = element(cur, seg.Index, u)
			if err != nil {
				u.rollback()
				return nil, nil, fmt.Errorf("%w at %s", err, p[:i+1])
			}
		}
	}
	return cur, u, nil
}

// member finds the first child of y named name. A nil u means lookup only.
func member(y *Node, name string, u *undo) (*Node, error) {
	switch y.Type {
	case ObjectType, ArrayType:
		if c := y.Member(name); c != nil {
			return c, nil
		}
		if u == nil {
			return nil, ErrNotFound
		}
		if y.Type == ArrayType {
			return nil, fmt.Errorf("%w: member %q of Array", ErrIncorrect, name)
		}
	case NullType:
		if u == nil {
			return nil, ErrNotFound
		}
	default:
		return nil, fmt.Errorf("%w: member %q of %s", ErrIncorrect, name, y.Type)
	}
	if !ValidName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	u.touch(y)
	if err := y.retype(ObjectType); err != nil {
		return nil, err
	}
	c := &Node{Type: NullType, Name: name, Parent: y}
	y.Values = append(y.Values, c)
	return c, nil
}

// element returns element i of the Array y. A nil u means lookup only.
func element(y *Node, i int, u *undo) (*Node, error) {
	switch y.Type {
	case ArrayType:
		if i < len(y.Values) {
			return y.Values[i], nil
		}
		if u == nil {
			return nil, fmt.Errorf("%w: index %d (len %d)", ErrNotFound, i, len(y.Values))
		}
	case NullType:
		if u == nil {
			return nil, ErrNotFound
		}
	default:
		return nil, fmt.Errorf("%w: index %d of %s", ErrIncorrect, i, y.Type)
	}
	u.touch(y)
	if err := y.retype(ArrayType); err != nil {
		return nil, err
	}
	for len(y.Values) <= i {
		y.Values = append(y.Values, &Node{Type: NullType, Parent: y})
	}
	return y.Values[i], nil
}

type change struct {
	node *Node
	typ  Type
	n    int
}

// undo records the type and child count of each node touched while
// building a path, newest last.
type undo struct {
	changes []change
}

func (u *undo) touch(y *Node) {
	u.changes = append(u.changes, change{node: y, typ: y.Type, n: len(y.Values)})
}

func (u *undo) rollback() {
	for i := len(u.changes) - 1; i >= 0; i-- {
		c := &u.changes[i]
		y := c.node
		for _, added := range y.Values[c.n:] {
			release(added)
		}
		y.Values = y.Values[:c.n:c.n]
		if c.n == 0 {
			y.Values = nil
		}
		y.Type = c.typ
	}
	u.changes = nil
}
