// Package encode writes a document tree as text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// compact, with non-ASCII escaped
//	err = encode.Encode(node, w, encode.EncodeWire(true), encode.EncodeEscaped(true))
//
//	// YAML
//	err = encode.Encode(node, w, encode.EncodeFormat(format.YAMLFormat))
//
// JSON output is indented by 2 spaces per level unless EncodeWire is set.
// Numbers and booleans are written as their stored text.
//
// # Related Packages
//
//   - github.com/signadot/jdoc/ir - the document tree
//   - github.com/signadot/jdoc/parse - reading text into a tree
package encode
