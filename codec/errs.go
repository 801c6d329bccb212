package codec

import "errors"

var (
	ErrMalformed = errors.New("malformed encoding")
	ErrRange     = errors.New("value out of range")
)
