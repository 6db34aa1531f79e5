// Package filter defines the closed set of placeholder filters, their
// textual grammar, and their evaluation semantics.
//
// A filter spec inside a placeholder is one of:
//
//	name
//	name = value
//	name = key1: value1, key2: value2, …
//
// Filter names match case-insensitively. A bare value after '=' binds to
// the filter's positional parameter (see positionalParam); named arguments
// win over the positional default, and omitted arguments fall back to
// per-filter defaults.
package filter

import "errors"

// ErrUnknownFilter indicates a filter name outside the closed set.
var ErrUnknownFilter = errors.New("unknown filter")

// ErrBadArgument indicates a filter argument that does not parse or does
// not belong to the filter.
var ErrBadArgument = errors.New("bad filter argument")

// ErrInvalidInput indicates a numeric filter applied to non-numeric text.
var ErrInvalidInput = errors.New("invalid filter input")

// Filter is one transformation in a placeholder's pipeline. The set of
// implementations is closed; Filter cannot be implemented outside this
// package.
type Filter interface {
	filter()
}

// Ceil rounds a numeric value up to the nearest integer.
type Ceil struct{}

// Floor rounds a numeric value down to the nearest integer.
type Floor struct{}

// Round rounds a numeric value to Precision decimal places, half away
// from zero. Precision 0 yields no decimal point.
type Round struct {
	Precision uint
}

// Text rewrites the value into the given case.
type Text struct {
	Case TextCase
}

// Markdown renders the value from CommonMark to an HTML fragment via the
// delegated renderer.
type Markdown struct{}

// Replace substitutes occurrences of a literal substring, left to right.
type Replace struct {
	Find        string
	Replacement string

	// Limit caps the number of replacements; UnlimitedReplacements
	// replaces every occurrence.
	Limit int
}

// UnlimitedReplacements is the Replace.Limit value meaning "replace all".
const UnlimitedReplacements = -1

// Reverse reverses the value character by character (full Unicode scalar
// reversal, not byte reversal).
type Reverse struct{}

// Truncate caps the value at Characters characters, appending Trail when
// anything was cut.
type Truncate struct {
	Characters uint
	Trail      string
}

// Defaults for filters with optional arguments.
const (
	DefaultRoundPrecision     uint = 0
	DefaultTruncateCharacters uint = 100
	DefaultTruncateTrail           = "..."
)

// MaxRoundPrecision caps Round.Precision. The evaluator narrows the
// precision to a 32-bit count of decimal places; anything larger is a
// typo, not a real precision.
const MaxRoundPrecision uint = 100

func (Ceil) filter()     {}
func (Floor) filter()    {}
func (Round) filter()    {}
func (Text) filter()     {}
func (Markdown) filter() {}
func (Replace) filter()  {}
func (Reverse) filter()  {}
func (Truncate) filter() {}

// Description documents one filter for user-facing listings.
type Description struct {
	Name      string
	Arguments string
	Summary   string
}

// Reference returns the documented filter set in presentation order.
func Reference() []Description {
	return []Description{
		{Name: "ceil", Arguments: "-", Summary: "Round a number up to the nearest integer."},
		{Name: "floor", Arguments: "-", Summary: "Round a number down to the nearest integer."},
		{Name: "round", Arguments: "precision (0)", Summary: "Round a number to a fixed number of decimal places, half away from zero."},
		{Name: "lowercase", Arguments: "-", Summary: "Alias for text = lower."},
		{Name: "uppercase", Arguments: "-", Summary: "Alias for text = upper."},
		{Name: "text", Arguments: "case (lower)", Summary: "Rewrite the value as lower, upper, title, kebab-case, snake_case, PascalCase, camelCase, or invert."},
		{Name: "markdown", Arguments: "-", Summary: "Render the value from CommonMark to an HTML fragment."},
		{Name: "replace", Arguments: `find (""), replacement (""), limit (all)`, Summary: "Replace occurrences of a literal substring, left to right."},
		{Name: "reverse", Arguments: "-", Summary: "Reverse the value character by character."},
		{Name: "truncate", Arguments: `characters (100), trail ("...")`, Summary: "Cap the value length, appending a trail when cut."},
	}
}
