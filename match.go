package jdoc

import (
	"math/big"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// Match reports whether doc matches the pattern match.
//
//   - A Null pattern matches anything.
//   - An Object pattern matches an Object holding a matching member for
//     each of the pattern's members; other members of doc are ignored.
//   - An Array pattern matches an Array of the same length whose elements
//     match pairwise.
//   - A String or Bool pattern matches equal text.
//   - A Number pattern matches a Number of equal value, so 1, 1.0 and 1e0
//     match each other.
func Match(doc, match *ir.Node) (bool, error) {
	return matchDepth(doc, match, 0)
}

func matchDepth(doc, match *ir.Node, depth int) (bool, error) {
	if depth > ir.MaxDepth {
		return false, ir.ErrDepth
	}
	if debug.Query() {
		debug.Logf("match %s at %q\n", match.Type, doc.KPath())
	}
	if match.Type == ir.NullType {
		return true, nil
	}
	if doc.Type != match.Type {
		return false, nil
	}
	switch match.Type {
	case ir.ObjectType:
		for _, m := range match.Values {
			d := doc.Member(m.Name)
			if d == nil {
				return false, nil
			}
			ok, err := matchDepth(d, m, depth+1)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case ir.ArrayType:
		if len(doc.Values) != len(match.Values) {
			return false, nil
		}
		for i := range doc.Values {
			ok, err := matchDepth(doc.Values[i], match.Values[i], depth+1)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	case ir.NumberType:
		return numbersEqual(doc.Text, match.Text), nil
	default:
		return doc.Text == match.Text, nil
	}
}

func numbersEqual(a, b string) bool {
	if a == b {
		return true
	}
	x, okx := new(big.Rat).SetString(a)
	y, oky := new(big.Rat).SetString(b)
	return okx && oky && x.Cmp(y) == 0
}

// Trim returns a copy of doc restricted to what match mentions. Object
// members absent from an Object pattern are dropped. For an Array
// pattern, each pattern element keeps the first unused element of doc it
// matches, trimmed in turn. Anything else is copied whole.
func Trim(match, doc *ir.Node) *ir.Node {
	switch {
	case match.Type == ir.ObjectType && doc.Type == ir.ObjectType:
		var kvs []ir.KeyVal
		for _, d := range doc.Values {
			m := match.Member(d.Name)
			if m == nil {
				continue
			}
			kvs = append(kvs, ir.KeyVal{Key: d.Name, Val: Trim(m, d)})
		}
		return ir.FromKeyVals(kvs)
	case match.Type == ir.ArrayType && doc.Type == ir.ArrayType:
		res := []*ir.Node{}
		used := make([]bool, len(doc.Values))
		for _, m := range match.Values {
			for i, d := range doc.Values {
				if used[i] {
					continue
				}
				ok, err := Match(d, m)
				if err != nil || !ok {
					continue
				}
				res = append(res, Trim(m, d))
				used[i] = true
				break
			}
		}
		return ir.FromSlice(res)
	default:
		return doc.Clone()
	}
}
