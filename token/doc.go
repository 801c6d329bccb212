// Package token holds the lexical pieces shared by the parser and the
// encoder: a rune source which tracks positions, number literal scanning
// and string quoting.
package token
