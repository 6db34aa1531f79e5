// Package template locates placeholder expressions in HTML template text.
//
// A placeholder is `{{ £name | filter | filter… }}`: the variable sigil,
// an identifier, and an optional filter pipeline, all inside double
// braces. The locator records each occurrence's exact byte span so the
// substitution pass can splice replacements against original offsets.
package template

import (
	"errors"
	"strings"

	"github.com/yaklabco/mdforge/pkg/filter"
	"github.com/yaklabco/mdforge/pkg/scan"
)

// ErrMalformedPlaceholder indicates a `{{` whose interior does not match
// the placeholder grammar.
var ErrMalformedPlaceholder = errors.New("malformed placeholder")

// Placeholder is one `{{ … }}` occurrence in the template. Immutable
// after creation; the substitution pass only consumes it.
type Placeholder struct {
	// Name is the referenced variable, without the sigil.
	Name string

	// Filters is the pipeline in left-to-right application order.
	Filters []filter.Filter

	// Selection spans `{{` through `}}` inclusive (end exclusive), in byte
	// offsets over the original template text.
	Selection scan.Span
}

// ParsePlaceholders finds every placeholder in the template.
//
// The returned list is ordered from the last occurrence in the document to
// the first. Substitution rewrites the template by byte offsets, and
// replacement text generally differs in length from the placeholder it
// replaces; processing the highest start offset first keeps every
// not-yet-processed offset valid. A template with no placeholders yields
// an empty list.
func ParsePlaceholders(src string) ([]Placeholder, error) {
	var found []Placeholder

	c := scan.NewCursor(src)
	for {
		idx := strings.Index(c.Rest(), "{{")
		if idx < 0 {
			break
		}
		c = c.Advance(idx)

		next, ph, err := parsePlaceholder(c)
		if err != nil {
			return nil, err
		}
		found = append(found, ph)
		c = next
	}

	for i, j := 0, len(found)-1; i < j; i, j = i+1, j-1 {
		found[i], found[j] = found[j], found[i]
	}
	return found, nil
}

// parsePlaceholder consumes one placeholder starting at `{{`.
func parsePlaceholder(c scan.Cursor) (scan.Cursor, Placeholder, error) {
	start := c.Pos()

	cur, err := scan.Literal(c, "{{")
	if err != nil {
		return c, Placeholder{}, scan.Errorf(c.Pos(), ErrMalformedPlaceholder,
			"expected '{{'")
	}
	cur = scan.SkipSpaces(cur)

	cur, err = scan.Literal(cur, scan.Sigil)
	if err != nil {
		return c, Placeholder{}, scan.Errorf(cur.Pos(), ErrMalformedPlaceholder,
			"expected the variable sigil %q", scan.Sigil)
	}

	cur, name, err := scan.Ident(cur)
	if err != nil {
		return c, Placeholder{}, scan.Errorf(cur.Pos(), ErrMalformedPlaceholder,
			"expected a variable name after %q", scan.Sigil)
	}

	cur, filters, err := filter.ParsePipeline(cur)
	if err != nil {
		return c, Placeholder{}, err
	}

	cur = scan.SkipSpaces(cur)
	cur, err = scan.Literal(cur, "}}")
	if err != nil {
		return c, Placeholder{}, scan.Errorf(cur.Pos(), ErrMalformedPlaceholder,
			"placeholder for %q is never closed", name)
	}

	ph := Placeholder{
		Name:      name,
		Filters:   filters,
		Selection: scan.Span{Start: start, End: cur.Pos()},
	}
	return cur, ph, nil
}
