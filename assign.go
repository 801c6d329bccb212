package jdoc

import (
	"math/big"
	"time"

	"github.com/signadot/jdoc/debug"
	"github.com/signadot/jdoc/ir"
)

// Assign creates path beneath root and calls set on the node found there.
// If set fails, the nodes created and the promotions made on the way are
// undone and root is left as it was. When root is nil the returned node
// belongs to a new tree whose root is node.Root(); the caller must keep
// it.
func Assign(root *ir.Node, path string, set func(*ir.Node) error) (*ir.Node, error) {
	res, err := ir.Assign(root, path, set)
	if debug.Assign() {
		if err != nil {
			debug.Logf("assign %q: %v\n", path, err)
		} else {
			debug.LogNode("assign "+path, res.Root())
		}
	}
	return res, err
}

func AssignString(root *ir.Node, path, v string) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetString(v) })
}

// AssignUTF8 assigns the String held in d, which must be valid UTF-8.
func AssignUTF8(root *ir.Node, path string, d []byte) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetUTF8(d) })
}

// AssignNumber assigns the Number whose canonical text is text.
func AssignNumber(root *ir.Node, path, text string) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetNumber(text) })
}

func AssignInt64(root *ir.Node, path string, v int64) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetInt64(v) })
}

func AssignUint64(root *ir.Node, path string, v uint64) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetUint64(v) })
}

func AssignFloat(root *ir.Node, path string, v float64) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetFloat(v) })
}

func AssignBool(root *ir.Node, path string, v bool) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetBool(v) })
}

// AssignNull sets the node at path to Null, releasing whatever it held.
func AssignNull(root *ir.Node, path string) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetNull() })
}

func AssignBytesHex(root *ir.Node, path string, d []byte) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetBytesHex(d) })
}

func AssignBytesBase64(root *ir.Node, path string, d []byte) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetBytesBase64(d) })
}

func AssignBigInt(root *ir.Node, path string, v *big.Int) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetBigInt(v) })
}

func AssignTime(root *ir.Node, path string, t time.Time, enc ir.TimeEncoding) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error { return y.SetTime(t, enc) })
}

// AssignNode replaces the node at path with a copy of v.
func AssignNode(root *ir.Node, path string, v *ir.Node) (*ir.Node, error) {
	return Assign(root, path, func(y *ir.Node) error {
		return ir.Replace(y, v)
	})
}
