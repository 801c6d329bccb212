package libdiff

import (
	"cmp"
	"slices"

	"github.com/signadot/jdoc/ir"
)

func sortedClone(v *ir.Node) *ir.Node {
	res := v.Clone()
	ir.Traverse(res, func(n *ir.Node, _ int, _ *ir.Node, _ int) bool {
		if n.Type == ir.ObjectType {
			slices.SortStableFunc(n.Values, func(a, b *ir.Node) int {
				return cmp.Compare(a.Name, b.Name)
			})
		}
		return false
	})
	return res
}
