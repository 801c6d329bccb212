package jdoc

import (
	"fmt"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/parse"

	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies the RFC 6902 JSON Patch document patch to doc and returns
// the result as a new tree. doc is not modified.
func Patch(doc, patch *ir.Node) (*ir.Node, error) {
	p, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return PatchBytes(doc, p)
}

// PatchBytes is Patch with the patch document given as JSON text.
func PatchBytes(doc *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("%w: json patch: %w", ir.ErrParam, err)
	}
	if debug.Patch() {
		debug.Logf("json patch with %d ops on %s\n", len(ops), doc.KPath())
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.LooseNames())
}

// MergePatch applies the RFC 7386 merge patch patch to doc and returns the
// result as a new tree. Members of patch set to null are removed.
func MergePatch(doc, patch *ir.Node) (*ir.Node, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	p, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("merge patch %s on %s\n", p, doc.KPath())
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.LooseNames())
}

// CreateMergePatch returns the merge patch turning from into to.
func CreateMergePatch(from, to *ir.Node) (*ir.Node, error) {
	f, err := from.MarshalJSON()
	if err != nil {
		return nil, err
	}
	t, err := to.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.CreateMergePatch(f, t)
	if err != nil {
		return nil, err
	}
	return parse.Parse(out, parse.LooseNames())
}
