// Package jdoc is the convenience layer over the document tree of package
// ir.
//
// It assigns typed values by path, creating what is missing and undoing
// that work when the value cannot be set. It loads and saves documents
// under the per-file lock of package parse, applies RFC 6902 JSON Patch
// and RFC 7386 merge patch documents, computes structural diffs and
// matches documents against patterns.
package jdoc
