// Package ir provides the in-memory document tree.
//
// A document is a tree of *Node. Every node has one of six types; String,
// Number and Bool nodes keep their value as canonical text, so a number is
// never rounded through a native type on its way from input to output.
// Object and Array nodes keep their children in order in Values, and each
// child points back at its parent.
//
// Nodes are addressed by path expressions, parsed by package kpath:
//
//	a.b[2].c
//	a[b]        (same as a.b)
//	[0].x       (member x of element 0 of the root)
//
// Resolve walks a path read only or creating what is missing, Assign adds
// rollback when the final write fails, and the Get* and Set* methods read
// and write typed values with the coercions listed on GetString.
//
// The tree is not safe for concurrent mutation.
package ir
