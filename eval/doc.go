// Package eval evaluates expr-lang expressions against a document.
//
// In an expression the members of an Object document are variables, doc
// is the whole document, and the caller's Env adds or overrides names.
// The functions get(path), has(path), kpath() and getenv(name) are always
// available; get and has take paths in the syntax of package ir/kpath.
//
// Expand rewrites the strings of a document: a String whose whole text is
// .[expr] is replaced by the value of expr, and each $[expr] inside other
// strings is replaced by the text of its value.
package eval
