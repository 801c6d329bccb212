package ir

import "errors"

var (
	ErrParam       = errors.New("invalid parameter")
	ErrNotFound    = errors.New("not found")
	ErrIncorrect   = errors.New("incorrect node type")
	ErrExists      = errors.New("already exists")
	ErrInvalidName = errors.New("invalid name")
	ErrBadEncoding = errors.New("bad encoding")
	ErrDepth       = errors.New("maximum depth exceeded")
)
