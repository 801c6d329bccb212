// Package libdiff computes differences between document trees.
//
// # Usage
//
//	changes, err := libdiff.Diff(oldNode, newNode)
//
//	// as an RFC 6902 JSON Patch document
//	patch, err := libdiff.ToPatch(changes)
//
//	// line diff of two texts
//	fmt.Print(libdiff.DiffText(oldText, newText))
//
// Object members are matched by name. Array elements are aligned by value
// with a diff over element summaries, so an insertion in the middle of an
// array is one change rather than a replacement of every later element.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - the document tree
//   - github.com/signadot/jdoc - applies patches to trees
package libdiff
