// Package format names the text formats a document can be written in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if err != nil {
//	    return err
//	}
//	err = encode.Encode(node, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/jdoc/encode - writes a tree in a format
package format
