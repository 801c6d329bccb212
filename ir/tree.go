package ir

import (
	"fmt"
	"slices"
	"strings"
)

// MaxDepth bounds the nesting depth walked by Traverse, FindName and
// Detach. Document nesting is controlled by whoever wrote the document.
var MaxDepth = 512

// structural characters which may not appear in a member name.
const nameReserved = ".[]{},;:'\"\\"

// ValidName reports whether name may be used as a member name. Spaces are
// allowed; path syntax characters and control characters are not.
func ValidName(name string) bool {
	if strings.ContainsAny(name, nameReserved) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 || name[i] == 0x7f {
			return false
		}
	}
	return true
}

// Attach appends child to the end of parent's children. A Null parent
// becomes an Object. Under an Object, child's name must be valid and not
// already taken. child must be a standalone root.
func Attach(parent, child *Node) error {
	return insert(parent, child, -1, ObjectType)
}

// Insert places child at position pos among parent's children, clamping
// pos to the bounds of the list. A Null parent becomes an Array.
func Insert(parent, child *Node, pos int) error {
	if pos < 0 {
		pos = 0
	}
	return insert(parent, child, pos, ArrayType)
}

func insert(parent, child *Node, pos int, promote Type) error {
	if parent == nil || child == nil {
		return fmt.Errorf("%w: nil node", ErrParam)
	}
	if child.Parent != nil {
		return fmt.Errorf("%w: node %q is already attached", ErrParam, child.KPath())
	}
	if parent.Root() == child {
		return fmt.Errorf("%w: cannot attach a node beneath itself", ErrParam)
	}
	target := parent.Type
	switch parent.Type {
	case NullType:
		target = promote
	case ObjectType, ArrayType:
	default:
		return fmt.Errorf("%w: cannot attach to %s", ErrIncorrect, parent.Type)
	}
	if target == ObjectType {
		if !ValidName(child.Name) {
			return fmt.Errorf("%w: %q", ErrInvalidName, child.Name)
		}
		if parent.Member(child.Name) != nil {
			return fmt.Errorf("%w: member %q", ErrExists, child.Name)
		}
	}
	if err := parent.retype(target); err != nil {
		return err
	}
	if pos < 0 || pos > len(parent.Values) {
		pos = len(parent.Values)
	}
	parent.Values = slices.Insert(parent.Values, pos, child)
	child.Parent = parent
	return nil
}

// Detach removes node, with its subtree, from beneath ancestor and returns
// it as a standalone root. Nothing is released.
func Detach(ancestor, node *Node) (*Node, error) {
	if ancestor == nil || node == nil {
		return nil, fmt.Errorf("%w: nil node", ErrParam)
	}
	if ancestor == node {
		return nil, fmt.Errorf("%w: cannot detach a node from itself", ErrParam)
	}
	depth := 0
	for p := node.Parent; p != ancestor; p = p.Parent {
		if p == nil {
			return nil, fmt.Errorf("%w: node is not beneath ancestor", ErrNotFound)
		}
		depth++
		if depth > MaxDepth {
			return nil, ErrDepth
		}
	}
	parent := node.Parent
	i := slices.Index(parent.Values, node)
	parent.Values = slices.Delete(parent.Values, i, i+1)
	node.Parent = nil
	return node, nil
}

// Delete detaches node from beneath ancestor and releases its subtree.
func Delete(ancestor, node *Node) error {
	if _, err := Detach(ancestor, node); err != nil {
		return err
	}
	release(node)
	return nil
}

// release resets every node of the subtree rooted at y to a standalone
// Null, so stale references see an empty node rather than a live subtree.
func release(y *Node) {
	stack := []*Node{y}
	for len(stack) != 0 {
		n := stack[len(stack)-1]
		stack = append(stack[:len(stack)-1], n.Values...)
		*n = Node{}
	}
}

// FindName returns the first descendant of y, in depth first order, which
// is an Object member named name. Array elements are never matched by
// name; the result's KPath gives its index qualified path.
func (y *Node) FindName(name string) (*Node, error) {
	res, err := findName(y, name, 0)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return res, nil
}

func findName(y *Node, name string, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	inArray := y.Type == ArrayType
	for _, c := range y.Values {
		if !inArray && c.Name == name {
			return c, nil
		}
		if c.Type.IsLeaf() {
			continue
		}
		res, err := findName(c, name, depth+1)
		if err != nil || res != nil {
			return res, err
		}
	}
	return nil, nil
}

// VisitFunc is called by Traverse for each node. index is the node's
// position when parent is an Array and -1 otherwise. Returning true stops
// the traversal.
type VisitFunc func(node *Node, index int, parent *Node, depth int) bool

// Traverse visits root and its descendants depth first, parents before
// children. It returns the node for which f returned true, or nil. f may
// change scalar values in place but must not add, remove or move nodes.
func Traverse(root *Node, f VisitFunc) (*Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ErrParam)
	}
	index := -1
	if root.Parent != nil && root.Parent.Type == ArrayType {
		index = root.Index()
	}
	return traverse(root, index, root.Parent, 0, f)
}

func traverse(y *Node, index int, parent *Node, depth int, f VisitFunc) (*Node, error) {
	if depth > MaxDepth {
		return nil, ErrDepth
	}
	if f(y, index, parent, depth) {
		return y, nil
	}
	inArray := y.Type == ArrayType
	for i, c := range y.Values {
		ci := -1
		if inArray {
			ci = i
		}
		res, err := traverse(c, ci, y, depth+1, f)
		if err != nil || res != nil {
			return res, err
		}
	}
	return nil, nil
}

// Replace gives y the type and content of a deep copy of v. y keeps its
// name and its place in the tree; its previous children are released. v
// may lie beneath y.
func Replace(y, v *Node) error {
	if y == nil || v == nil {
		return fmt.Errorf("%w: nil node", ErrParam)
	}
	c := v.Clone()
	if err := y.SetNull(); err != nil {
		return err
	}
	y.Type = c.Type
	y.Text = c.Text
	y.Values = c.Values
	for _, child := range y.Values {
		child.Parent = y
	}
	return nil
}
