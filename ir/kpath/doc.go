// Package kpath parses path expressions addressing nodes in a document tree.
//
// A path is a sequence of dot separated segments, each a member name
// optionally followed by bracketed qualifiers:
//
//	users[0].name      // member "users", element 0, member "name"
//	users[0][1]        // element 1 of element 0 of "users"
//	config[db].host    // same as config.db.host
//	list[]             // same as list[0]
//
// Names may contain spaces but none of . [ ] { } , ; : ' " backslash or
// control whitespace.
//
// # Usage
//
//	p, n, err := kpath.Parse("users[0].name")
//	// p[0] == Segment{Name: "users", Index: 0}
//	// p[1] == Segment{Name: "name", Index: -1}
//	// n == len("users[0].name")
//
// Parse stops at the first character which cannot continue a path and
// reports how many bytes it consumed, so a path may be read from the
// front of a longer buffer.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - resolves paths against a tree
package kpath
