// Package scan provides position-tracked scanning primitives over source text.
//
// A Cursor is an immutable value over an immutable source string. Parsers are
// pure functions of the form func(Cursor) (Cursor, T, error); on failure the
// caller keeps its original cursor, so no parser ever partially consumes input.
package scan

import "strings"

// Position is a location in source text.
type Position struct {
	// Line is the 1-based line number.
	Line int

	// Offset is the 0-based byte index into the original source.
	Offset int
}

// Span is a half-open byte range [Start.Offset, End.Offset) over the
// original source text.
type Span struct {
	Start Position
	End   Position
}

// Len returns the length of the span in bytes.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Sigil is the marker character that introduces a variable reference.
// It is deliberately non-ASCII so it cannot collide with ordinary
// Markdown or HTML text.
const Sigil = "£"

// Cursor is a read position into source text. The zero value is not
// usable; construct with NewCursor.
type Cursor struct {
	src  string
	off  int
	line int
}

// NewCursor returns a cursor at the start of src (line 1, offset 0).
func NewCursor(src string) Cursor {
	return Cursor{src: src, line: 1}
}

// Pos returns the current position.
func (c Cursor) Pos() Position {
	return Position{Line: c.line, Offset: c.off}
}

// Rest returns the unconsumed remainder of the source.
func (c Cursor) Rest() string {
	return c.src[c.off:]
}

// Source returns the full original source text.
func (c Cursor) Source() string {
	return c.src
}

// EOF reports whether the cursor has consumed all input.
func (c Cursor) EOF() bool {
	return c.off >= len(c.src)
}

// Advance returns a cursor moved forward by n bytes. The line counter is
// incremented once per newline consumed. Advancing past the end of the
// source clamps to EOF.
func (c Cursor) Advance(n int) Cursor {
	if n <= 0 {
		return c
	}
	end := c.off + n
	if end > len(c.src) {
		end = len(c.src)
	}
	c.line += strings.Count(c.src[c.off:end], "\n")
	c.off = end
	return c
}
