// Package parse reads JSON text into a document tree.
//
// # Usage
//
//	node, err := parse.Parse([]byte(`{"name": "alice", "tags": ["a", "b"]}`))
//	if err != nil {
//	    return err
//	}
//
//	// from a stream or a file
//	node, err = parse.ParseReader(os.Stdin)
//	node, err = parse.ParseFile("config.json", parse.MaxDepth(64))
//
// Errors are *Error values carrying the position of the last character
// read; errors.Is matches ErrSyntax, ErrUnexpectedEOF, ErrDepth and the ir
// errors for duplicate or invalid member names.
//
// Two deviations from strict JSON are accepted: a \u0000 escape reads as
// the character '0', and unpaired UTF-16 surrogate escapes read as U+FFFD.
// Object member order is kept as written.
//
// Member names are also narrower than JSON allows. By default a name may
// not hold control characters or any of . [ ] { } , ; : ' " and backslash,
// so documents with keys like "v1.0" or "https://x" fail with
// ir.ErrInvalidName. LooseNames accepts any name; such members are then
// reachable by traversal or JSONPath but not by a path string.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - the document tree
//   - github.com/signadot/jdoc/encode - writing a tree back out
//   - github.com/signadot/jdoc/token - positions and lexical helpers
package parse
