package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/jdoc/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type Op string

const (
	OpAdd     Op = "add"
	OpRemove  Op = "remove"
	OpReplace Op = "replace"
)

// Change is one step turning the old tree into the new one. Changes apply
// in order; an array index refers to the array as left by the previous
// changes. From is nil for OpAdd and To is nil for OpRemove.
type Change struct {
	Op      Op
	Path    string
	Pointer string
	From    *ir.Node
	To      *ir.Node
}

// Diff returns the changes turning from into to. It returns no changes
// when ir.Equal(from, to).
func Diff(from, to *ir.Node) ([]Change, error) {
	d := &differ{}
	if err := d.diff(from, to, loc{}, 0); err != nil {
		return nil, err
	}
	return d.changes, nil
}

type loc struct {
	path, pointer string
}

func (l loc) member(name string) loc {
	p := name
	if l.path != "" {
		p = l.path + "." + name
	}
	return loc{path: p, pointer: l.pointer + "/" + escapePointer(name)}
}

func (l loc) element(i int) loc {
	s := strconv.Itoa(i)
	return loc{path: l.path + "[" + s + "]", pointer: l.pointer + "/" + s}
}

func escapePointer(s string) string {
	return strings.NewReplacer("~", "~0", "/", "~1").Replace(s)
}

type differ struct {
	changes []Change
}

func (d *differ) add(op Op, l loc, from, to *ir.Node) {
	d.changes = append(d.changes, Change{Op: op, Path: l.path, Pointer: l.pointer, From: from, To: to})
}

func (d *differ) diff(from, to *ir.Node, l loc, depth int) error {
	if depth > ir.MaxDepth {
		return ir.ErrDepth
	}
	if from.Type != to.Type {
		d.add(OpReplace, l, from, to)
		return nil
	}
	switch from.Type {
	case ir.ObjectType:
		return d.diffObject(from, to, l, depth)
	case ir.ArrayType:
		return d.diffArray(from, to, l, depth)
	default:
		if from.Text != to.Text {
			d.add(OpReplace, l, from, to)
		}
		return nil
	}
}

func (d *differ) diffObject(from, to *ir.Node, l loc, depth int) error {
	for _, f := range from.Values {
		t := to.Member(f.Name)
		if t == nil {
			d.add(OpRemove, l.member(f.Name), f, nil)
			continue
		}
		if err := d.diff(f, t, l.member(f.Name), depth+1); err != nil {
			return err
		}
	}
	for _, t := range to.Values {
		if from.Member(t.Name) == nil {
			d.add(OpAdd, l.member(t.Name), nil, t)
		}
	}
	return nil
}

// diffArray aligns elements by summary: each distinct element value is
// mapped to one rune and the rune sequences are diffed.
func (d *differ) diffArray(from, to *ir.Node, l loc, depth int) error {
	m := map[string]rune{}
	fromRunes, err := mapValues(m, from)
	if err != nil {
		return err
	}
	toRunes, err := mapValues(m, to)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	fi, ti, ri := 0, 0, 0
	for i := 0; i < len(diffs); i++ {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffEqual:
			fi, ti, ri = fi+n, ti+n, ri+n
		case diffpatch.DiffDelete:
			ins := 0
			if i+1 < len(diffs) && diffs[i+1].Type == diffpatch.DiffInsert {
				ins = len([]rune(diffs[i+1].Text))
				i++
			}
			// a delete followed by an insert pairs up as in place changes
			for range min(n, ins) {
				if err := d.diff(from.Values[fi], to.Values[ti], l.element(ri), depth+1); err != nil {
					return err
				}
				fi, ti, ri = fi+1, ti+1, ri+1
			}
			for range n - min(n, ins) {
				d.add(OpRemove, l.element(ri), from.Values[fi], nil)
				fi++
			}
			for range ins - min(n, ins) {
				d.add(OpAdd, l.element(ri), nil, to.Values[ti])
				ti, ri = ti+1, ri+1
			}
		case diffpatch.DiffInsert:
			for range n {
				d.add(OpAdd, l.element(ri), nil, to.Values[ti])
				ti, ri = ti+1, ri+1
			}
		}
	}
	return nil
}

// mapValues summarizes each element of node as a rune, giving equal
// elements the same rune.
func mapValues(m map[string]rune, node *ir.Node) ([]rune, error) {
	rs := make([]rune, len(node.Values))
	for i, v := range node.Values {
		k, err := summary(v)
		if err != nil {
			return nil, err
		}
		r, ok := m[k]
		if !ok {
			// skip the surrogate range, which does not survive string
			// conversion
			r = rune(len(m))
			if r >= 0xd800 {
				r += 0x800
			}
			m[k] = r
		}
		rs[i] = r
	}
	return rs, nil
}

// summary is a text equal for equal values, ignoring member order.
func summary(v *ir.Node) (string, error) {
	c := sortedClone(v)
	d, err := c.MarshalJSON()
	if err != nil {
		return "", err
	}
	return string(d), nil
}
