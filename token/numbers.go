package token

import "fmt"

// ScanNumber returns the length of the JSON number literal at the front of
// s: an optional '-', an integer part without leading zeros, an optional
// fraction and an optional exponent. It returns an error wrapping
// ErrNumber when no literal starts s and ErrNumberLeadingZero for an
// integer part such as "01".
func ScanNumber(s string) (int, error) {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	digits := asciiDigits(s[i:])
	if digits == 0 {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	if digits > 1 && s[i] == '0' {
		return i + 1, fmt.Errorf("%w: %q", ErrNumberLeadingZero, s)
	}
	i += digits
	f, err := fract(s[i:])
	if err != nil {
		return i, err
	}
	i += f
	e, err := exp(s[i:])
	if err != nil {
		return i, err
	}
	return i + e, nil
}

// IsNumber reports whether s is exactly one JSON number literal.
func IsNumber(s string) bool {
	n, err := ScanNumber(s)
	return err == nil && n == len(s)
}

// NumberPrefix returns the longest prefix of s, after leading spaces, that
// reads as a number: an optional sign, digits, an optional fraction and an
// optional exponent. Leading zeros are accepted. It returns "" if s does
// not start with a number.
func NumberPrefix(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	s = s[i:]
	i = 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	n := asciiDigits(s[i:])
	i += n
	if i < len(s) && s[i] == '.' {
		m := asciiDigits(s[i+1:])
		if n+m > 0 {
			i += 1 + m
			n += m
		}
	}
	if n == 0 {
		return ""
	}
	if e, err := exp(s[i:]); err == nil {
		i += e
	}
	return s[:i]
}

func asciiDigits(s string) int {
	i := 0
	for i < len(s) && asciiDigit(s[i]) {
		i++
	}
	return i
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func fract(s string) (int, error) {
	if len(s) == 0 || s[0] != '.' {
		return 0, nil
	}
	// . must be followed by 1 or more digits rfc 7159
	n := asciiDigits(s[1:])
	if n == 0 {
		return 0, fmt.Errorf("%w: missing fraction digits", ErrNumber)
	}
	return n + 1, nil
}

func exp(s string) (int, error) {
	if len(s) == 0 || (s[0] != 'e' && s[0] != 'E') {
		return 0, nil
	}
	i := 1
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	n := asciiDigits(s[i:])
	if n == 0 {
		return 0, fmt.Errorf("%w: missing exponent digits", ErrNumber)
	}
	return i + n, nil
}
