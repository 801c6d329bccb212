package token

import "errors"

var (
	ErrNumber            = errors.New("number")
	ErrNumberLeadingZero = errors.New("leading zero")
	ErrUnterminated      = errors.New("unterminated")
	ErrBadEscape         = errors.New("bad escape")
	ErrBadUnicode        = errors.New("bad unicode")
	ErrUnicodeControl    = errors.New("unicode control")
)
