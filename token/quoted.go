package token

import (
	"unicode/utf16"
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns s as a double quoted JSON string. Control characters are
// always escaped. When escaped is set every rune above U+007F is written as
// a \uXXXX escape, and runes beyond the Basic Multilingual Plane as a
// UTF-16 surrogate pair of escapes; otherwise such runes pass through as
// UTF-8.
func Quote(s string, escaped bool) string {
	return string(AppendQuote(make([]byte, 0, len(s)+2), s, escaped))
}

// AppendQuote appends the quoted form of s to d, as in Quote.
func AppendQuote(d []byte, s string, escaped bool) []byte {
	d = append(d, '"')
	for _, r := range s {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			switch {
			case r < 0x20 || r == 0x7f:
				d = appendU(d, r)
			case r < 0x80 || !escaped:
				d = utf8.AppendRune(d, r)
			case r > 0xffff:
				hi, lo := utf16.EncodeRune(r)
				d = appendU(appendU(d, hi), lo)
			default:
				d = appendU(d, r)
			}
		}
	}
	return append(d, '"')
}

func appendU(d []byte, r rune) []byte {
	return append(d, '\\', 'u',
		hexDigits[r>>12&0xf], hexDigits[r>>8&0xf], hexDigits[r>>4&0xf], hexDigits[r&0xf])
}
