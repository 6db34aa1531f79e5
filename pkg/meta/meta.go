// Package meta parses the optional metadata block at the head of a
// Markdown document.
//
// A block opens with one of three marker styles and must close with the
// matching marker:
//
//	:meta … :meta
//	<meta> … </meta>
//	<?meta … ?>   (or bare <? … ?>)
//
// Between the markers, each non-blank line is either a comment (// or #)
// or a key = value pair. An absent block is a distinct success (nil
// Block); a present-but-malformed block is an error.
package meta

import (
	"errors"
	"strings"

	"github.com/yaklabco/mdforge/pkg/scan"
)

// ErrMalformedBlock indicates a metadata block that opened but could not
// be parsed: mismatched markers, an invalid key/value line, or EOF before
// the closing marker.
var ErrMalformedBlock = errors.New("malformed metadata block")

// Entry is a single key/value pair from the metadata block.
type Entry struct {
	Key   string
	Value string
}

// Block is a parsed metadata block.
type Block struct {
	// Entries holds the key/value pairs in document order. Duplicate keys
	// are legal; consumers resolve them last-seen-wins.
	Entries []Entry

	// Span covers the whole block including both markers.
	Span scan.Span
}

// markerPairs lists the recognized open/close marker pairs. Order matters:
// <?meta must be tried before the bare <? prefix.
var markerPairs = []struct {
	open  string
	close string
}{
	{open: ":meta", close: ":meta"},
	{open: "<meta>", close: "</meta>"},
	{open: "<?meta", close: "?>"},
	{open: "<?", close: "?>"},
}

// Parse consumes a metadata block at the cursor, if one is present.
//
// Returns (cursor after the closing marker line, parsed block, nil) when a
// block was consumed, (original cursor, nil, nil) when no block opens at
// the cursor, and (original cursor, nil, error) when a block opened but is
// malformed.
func Parse(c scan.Cursor) (scan.Cursor, *Block, error) {
	open, closer := matchOpen(c)
	if open == "" {
		return c, nil, nil
	}

	start := c.Pos()
	cur := c.Advance(len(open))

	// Nothing but whitespace may follow the opening marker on its line.
	cur, trailing, err := scan.UntilEOL(scan.SkipSpaces(cur))
	if err != nil || trailing != "" {
		return c, nil, scan.Errorf(cur.Pos(), ErrMalformedBlock,
			"unexpected text after %q marker", open)
	}

	var entries []Entry
	for {
		if cur.EOF() {
			return c, nil, scan.Errorf(cur.Pos(), ErrMalformedBlock,
				"metadata block opened with %q is never closed", open)
		}

		if next, ok := matchClose(cur, closer); ok {
			return next, &Block{Entries: entries, Span: scan.Span{Start: start, End: next.Pos()}}, nil
		}

		line := lineKind(cur)
		switch line {
		case lineBlank, lineComment:
			cur, _, _ = scan.UntilEOL(cur)
		case lineEntry:
			next, entry, err := parseEntry(cur)
			if err != nil {
				return c, nil, err
			}
			entries = append(entries, entry)
			cur = next
		}
	}
}

// matchOpen returns the opening marker found at the cursor and its
// required closing marker, or empty strings when no block opens here.
func matchOpen(c scan.Cursor) (open, closer string) {
	rest := c.Rest()
	for _, pair := range markerPairs {
		if strings.HasPrefix(rest, pair.open) {
			return pair.open, pair.close
		}
	}
	return "", ""
}

// matchClose consumes the closing marker line when the cursor sits on one.
func matchClose(c scan.Cursor, closer string) (scan.Cursor, bool) {
	cur, err := scan.Literal(c, closer)
	if err != nil {
		return c, false
	}
	cur, trailing, err := scan.UntilEOL(scan.SkipSpaces(cur))
	if err == nil && trailing != "" {
		return c, false
	}
	return cur, true
}

type kind int

const (
	lineBlank kind = iota
	lineComment
	lineEntry
)

// lineKind classifies the line at the cursor without consuming it.
func lineKind(c scan.Cursor) kind {
	rest := c.Rest()
	idx := strings.IndexByte(rest, '\n')
	if idx < 0 {
		idx = len(rest)
	}
	line := strings.TrimSpace(rest[:idx])
	switch {
	case line == "":
		return lineBlank
	case strings.HasPrefix(line, "//") || strings.HasPrefix(line, "#"):
		return lineComment
	default:
		return lineEntry
	}
}

// parseEntry consumes one key = value line. The key may carry the variable
// sigil as a prefix; the sigil is stripped and carries no meaning here.
func parseEntry(c scan.Cursor) (scan.Cursor, Entry, error) {
	cur := scan.SkipSpaces(c)

	if after, err := scan.Literal(cur, scan.Sigil); err == nil {
		cur = after
	}

	cur, key, err := scan.Ident(cur)
	if err != nil {
		return c, Entry{}, scan.Errorf(cur.Pos(), ErrMalformedBlock,
			"expected a key identifier")
	}

	cur = scan.SkipSpaces(cur)
	cur, err = scan.Literal(cur, "=")
	if err != nil {
		return c, Entry{}, scan.Errorf(cur.Pos(), ErrMalformedBlock,
			"expected '=' after key %q", key)
	}
	cur = scan.SkipSpaces(cur)

	// Quoted values may span lines and preserve escape sequences verbatim;
	// bare values run to the end of the line.
	if strings.HasPrefix(cur.Rest(), `"`) {
		next, value, err := scan.Quoted(cur)
		if err != nil {
			return c, Entry{}, scan.Errorf(cur.Pos(), ErrMalformedBlock,
				"unterminated quoted value for key %q", key)
		}
		next, trailing, err := scan.UntilEOL(scan.SkipSpaces(next))
		if err == nil && trailing != "" {
			return c, Entry{}, scan.Errorf(next.Pos(), ErrMalformedBlock,
				"unexpected text after quoted value for key %q", key)
		}
		return next, Entry{Key: key, Value: value}, nil
	}

	cur, value, err := scan.UntilEOL(cur)
	if err != nil {
		return c, Entry{}, scan.Errorf(cur.Pos(), ErrMalformedBlock,
			"missing value for key %q", key)
	}
	return cur, Entry{Key: key, Value: value}, nil
}
