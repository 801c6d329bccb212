package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/jdoc/ir"
	"github.com/signadot/jdoc/token"
)

var (
	ErrSyntax        = errors.New("syntax error")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	ErrDepth         = ir.ErrDepth
)

// Error is a parse failure at a position.
type Error struct {
	Err error
	Pos token.Pos
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Pos, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
