package parse

import (
	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

const defaultMaxDepth = 512

type parseOpts struct {
	maxDepth   int
	looseNames bool
	positions  map[*ir.Node]token.Pos
}

type ParseOption func(*parseOpts)

// MaxDepth bounds how many Objects and Arrays may nest. The default is
// 512.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// LooseNames accepts member names containing path syntax characters.
// Such members can be reached by traversal but not by path. Duplicate
// names are still rejected.
func LooseNames() ParseOption {
	return func(o *parseOpts) { o.looseNames = true }
}

// Positions records in m the position at which each node starts.
func Positions(m map[*ir.Node]token.Pos) ParseOption {
	return func(o *parseOpts) { o.positions = m }
}
