package scan

import "strings"

// isIdentStart reports whether b can begin an identifier.
func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentByte reports whether b can continue an identifier.
func isIdentByte(b byte) bool {
	return isIdentStart(b) || (b >= '0' && b <= '9') || b == '_'
}

// Ident consumes an identifier: an ASCII letter followed by letters,
// digits, or underscores. Identifiers may not start with a digit or
// underscore.
func Ident(c Cursor) (Cursor, string, error) {
	rest := c.Rest()
	if rest == "" || !isIdentStart(rest[0]) {
		return c, "", ErrNoMatch
	}
	n := 1
	for n < len(rest) && isIdentByte(rest[n]) {
		n++
	}
	return c.Advance(n), rest[:n], nil
}

// Literal consumes the exact token tok.
func Literal(c Cursor, tok string) (Cursor, error) {
	if !strings.HasPrefix(c.Rest(), tok) {
		return c, ErrNoMatch
	}
	return c.Advance(len(tok)), nil
}

// SkipSpaces consumes any run of spaces and tabs.
func SkipSpaces(c Cursor) Cursor {
	rest := c.Rest()
	n := 0
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t') {
		n++
	}
	return c.Advance(n)
}

// SkipWhitespace consumes any run of spaces, tabs, carriage returns, and
// newlines.
func SkipWhitespace(c Cursor) Cursor {
	rest := c.Rest()
	n := 0
	for n < len(rest) && (rest[n] == ' ' || rest[n] == '\t' || rest[n] == '\r' || rest[n] == '\n') {
		n++
	}
	return c.Advance(n)
}

// UntilEOL consumes text up to and including the next newline, returning
// the text without the newline. When no newline remains, the rest of the
// input is consumed. Fails at EOF.
func UntilEOL(c Cursor) (Cursor, string, error) {
	if c.EOF() {
		return c, "", ErrNoMatch
	}
	rest := c.Rest()
	idx := strings.IndexByte(rest, '\n')
	if idx < 0 {
		return c.Advance(len(rest)), strings.TrimSuffix(rest, "\r"), nil
	}
	return c.Advance(idx + 1), strings.TrimSuffix(rest[:idx], "\r"), nil
}

// UntilNewline consumes text up to but not including the next newline.
// When no newline remains, the rest of the input is consumed.
func UntilNewline(c Cursor) (Cursor, string) {
	rest := c.Rest()
	idx := strings.IndexByte(rest, '\n')
	if idx < 0 {
		return c.Advance(len(rest)), strings.TrimSuffix(rest, "\r")
	}
	return c.Advance(idx), strings.TrimSuffix(rest[:idx], "\r")
}

// Quoted consumes a double-quoted string, returning its contents verbatim:
// backslash-escaped quotes are preserved as written (not unescaped), and
// embedded newlines are allowed.
func Quoted(c Cursor) (Cursor, string, error) {
	rest := c.Rest()
	if rest == "" || rest[0] != '"' {
		return c, "", ErrNoMatch
	}
	i := 1
	for i < len(rest) {
		switch {
		case rest[i] == '\\' && i+1 < len(rest) && rest[i+1] == '"':
			i += 2
		case rest[i] == '"':
			return c.Advance(i + 1), rest[1:i], nil
		default:
			i++
		}
	}
	return c, "", Errorf(c.Pos(), ErrNoMatch, "unterminated quoted string")
}
