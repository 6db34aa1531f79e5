package scan

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned by primitives when the input does not start with
// the expected construct. Callers either try an alternative or wrap it in
// a more specific error kind.
var ErrNoMatch = errors.New("no match")

// ParseError is a parse failure at a known source position.
type ParseError struct {
	// Pos is the position where parsing failed.
	Pos Position

	// Msg describes what went wrong.
	Msg string

	// Err is the underlying error kind, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d, offset %d: %s", e.Pos.Line, e.Pos.Offset, e.Msg)
}

// Unwrap returns the underlying error kind.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Errorf builds a ParseError at pos wrapping kind.
func Errorf(pos Position, kind error, format string, args ...any) error {
	return &ParseError{
		Pos: pos,
		Msg: fmt.Sprintf(format, args...),
		Err: kind,
	}
}
