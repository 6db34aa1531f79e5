// Package document parses a Markdown source document: an optional
// metadata block, a required title, and the body that follows.
package document

import (
	"errors"
	"strings"

	"github.com/yaklabco/mdforge/pkg/meta"
	"github.com/yaklabco/mdforge/pkg/scan"
)

// ErrMissingTitle indicates that neither an ATX heading nor an <h1>
// element was found where the document title is expected.
var ErrMissingTitle = errors.New("missing title")

// Document is a parsed Markdown source document.
type Document struct {
	// Meta holds the metadata entries in document order; empty when the
	// document has no metadata block.
	Meta []meta.Entry

	// Title is the document title without its markup.
	Title string

	// Body is everything after the title line, including the title line's
	// trailing newline.
	Body string
}

// Parse parses a complete Markdown source document.
func Parse(src string) (*Document, error) {
	c := scan.NewCursor(src)

	c, block, err := meta.Parse(c)
	if err != nil {
		return nil, err
	}

	c, title, err := parseTitle(c)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		Title: title,
		Body:  c.Rest(),
	}
	if block != nil {
		doc.Meta = block.Entries
	}
	return doc, nil
}

// parseTitle consumes the document title: the first ATX heading line
// ("# …") or the first <h1>…</h1> element, tolerating leading whitespace.
// The cursor is left just after the heading text or closing tag, so the
// remaining input starts with the title line's own newline.
func parseTitle(c scan.Cursor) (scan.Cursor, string, error) {
	cur := scan.SkipWhitespace(c)

	if after, err := scan.Literal(cur, "# "); err == nil {
		next, title := scan.UntilNewline(after)
		return next, strings.TrimSpace(title), nil
	}

	if after, err := literalFold(cur, "<h1>"); err == nil {
		rest := after.Rest()
		end := strings.Index(strings.ToLower(rest), "</h1>")
		if end < 0 {
			return c, "", scan.Errorf(cur.Pos(), ErrMissingTitle,
				"<h1> element is never closed")
		}
		next := after.Advance(end + len("</h1>"))
		return next, strings.TrimSpace(rest[:end]), nil
	}

	return c, "", scan.Errorf(cur.Pos(), ErrMissingTitle,
		"expected an ATX heading or an <h1> element")
}

// literalFold consumes tok matching ASCII case-insensitively.
func literalFold(c scan.Cursor, tok string) (scan.Cursor, error) {
	rest := c.Rest()
	if len(rest) < len(tok) || !strings.EqualFold(rest[:len(tok)], tok) {
		return c, scan.ErrNoMatch
	}
	return c.Advance(len(tok)), nil
}
