package jdoc

import (
	"strings"

	"github.com/signadot/jdoc/encode"
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/libdiff"
	"github.com/signadot/jdoc/parse"
)

// Diff returns the changes turning from into to.
func Diff(from, to *ir.Node) ([]libdiff.Change, error) {
	return libdiff.Diff(from, to)
}

// DiffPatch returns a JSON Patch document which, given to Patch with
// from, yields a document equal to to.
func DiffPatch(from, to *ir.Node) (*ir.Node, error) {
	changes, err := libdiff.Diff(from, to)
	if err != nil {
		return nil, err
	}
	d, err := libdiff.ToPatch(changes)
	if err != nil {
		return nil, err
	}
	return parse.Parse(d, parse.LooseNames())
}

// DiffText returns a line diff of the encoded forms of from and to, or ""
// if they encode the same.
func DiffText(from, to *ir.Node, opts ...encode.EncodeOption) (string, error) {
	f, err := encodeString(from, opts)
	if err != nil {
		return "", err
	}
	t, err := encodeString(to, opts)
	if err != nil {
		return "", err
	}
	return libdiff.DiffText(f, t), nil
}

func encodeString(y *ir.Node, opts []encode.EncodeOption) (string, error) {
	buf := &strings.Builder{}
	if err := encode.Encode(y, buf, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}
