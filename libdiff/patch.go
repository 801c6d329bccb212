package libdiff

import "github.com/signadot/jdoc/ir"

// ToPatch renders changes as an RFC 6902 JSON Patch document.
func ToPatch(changes []Change) ([]byte, error) {
	ops := make([]*ir.Node, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		kvs := []ir.KeyVal{
			{Key: "op", Val: ir.FromString(string(c.Op))},
			{Key: "path", Val: ir.FromString(c.Pointer)},
		}
		if c.To != nil {
			kvs = append(kvs, ir.KeyVal{Key: "value", Val: c.To.Clone()})
		}
		ops = append(ops, ir.FromKeyVals(kvs))
	}
	return ir.FromSlice(ops).MarshalJSON()
}
