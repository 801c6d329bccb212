package query

import (
	"errors"
	"fmt"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"

	"github.com/theory/jsonpath"
	"github.com/theory/jsonpath/spec"
)

var ErrQuery = errors.New("bad query")

type Query struct {
	src  string
	path *jsonpath.Path
}

// Compile parses expr, which must start with "$".
func Compile(expr string) (*Query, error) {
	p, err := jsonpath.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: expr, path: p}, nil
}

func MustCompile(expr string) *Query {
	q, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return q
}

func (q *Query) String() string {
	return q.src
}

// Select returns the nodes beneath root, root included, selected by q.
func (q *Query) Select(root *ir.Node) ([]*ir.Node, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil root", ir.ErrParam)
	}
	located := q.path.SelectLocated(root.ToValue())
	res := make([]*ir.Node, 0, len(located))
	for _, ln := range located {
		y, err := follow(root, ln.Path)
		if err != nil {
			return nil, err
		}
		res = append(res, y)
	}
	if debug.Query() {
		debug.Logf("query %s selected %d nodes\n", q.src, len(res))
	}
	return res, nil
}

// First returns the first node selected by q, or ir.ErrNotFound.
func (q *Query) First(root *ir.Node) (*ir.Node, error) {
	res, err := q.Select(root)
	if err != nil {
		return nil, err
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %s", ir.ErrNotFound, q.src)
	}
	return res[0], nil
}

// Paths returns the KPath of each node selected by q, relative to root.
func (q *Query) Paths(root *ir.Node) ([]string, error) {
	nodes, err := q.Select(root)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(nodes))
	for i, y := range nodes {
		res[i] = relPath(root, y)
	}
	return res, nil
}

// Delete removes every node selected by q from beneath root and returns
// how many were removed. Selecting root itself is an error.
func (q *Query) Delete(root *ir.Node) (int, error) {
	nodes, err := q.Select(root)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, y := range nodes {
		if y == root {
			return n, fmt.Errorf("%w: cannot delete the root", ir.ErrParam)
		}
		// a node beneath one deleted earlier has been released already
		if !beneath(root, y) {
			continue
		}
		if err := ir.Delete(root, y); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Select compiles expr and selects with it.
func Select(root *ir.Node, expr string) ([]*ir.Node, error) {
	q, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return q.Select(root)
}

// follow walks a normalized path from root.
func follow(root *ir.Node, p spec.NormalizedPath) (*ir.Node, error) {
	y := root
	for _, sel := range p {
		switch s := sel.(type) {
		case spec.Name:
			c := y.Member(string(s))
			if c == nil || y.Type != ir.ObjectType {
				return nil, fmt.Errorf("%w: member %q at %s", ir.ErrNotFound, string(s), y.KPath())
			}
			y = c
		case spec.Index:
			i := int(s)
			if y.Type != ir.ArrayType || i < 0 || i >= len(y.Values) {
				return nil, fmt.Errorf("%w: index %d at %s", ir.ErrNotFound, i, y.KPath())
			}
			y = y.Values[i]
		default:
			return nil, fmt.Errorf("%w: unexpected selector %v", ErrQuery, sel)
		}
	}
	return y, nil
}

func beneath(root, y *ir.Node) bool {
	for p := y; p != nil; p = p.Parent {
		if p == root {
			return true
		}
	}
	return false
}

func relPath(root, y *ir.Node) string {
	abs, base := y.KPath(), root.KPath()
	switch {
	case base == "":
		return abs
	case abs == base:
		return ""
	case abs[len(base)] == '.':
		return abs[len(base)+1:]
	default:
		return abs[len(base):]
	}
}
