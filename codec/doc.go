// Package codec holds the text encodings scalar values are stored in: hex
// and base64 for byte strings, decimal for arbitrary precision integers,
// and three calendar stamp forms for times.
//
// A document never stores raw binary; every encoder here returns the
// canonical text placed in a node, and every decoder accepts that text
// back.
package codec
