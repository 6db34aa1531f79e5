package filter

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// MarkdownFunc renders CommonMark text to an HTML fragment. The evaluator
// treats it as an opaque capability.
type MarkdownFunc func(body string) (string, error)

// Evaluator applies filters to placeholder values.
type Evaluator struct {
	render MarkdownFunc
}

// NewEvaluator returns an evaluator that delegates the markdown filter to
// render.
func NewEvaluator(render MarkdownFunc) *Evaluator {
	return &Evaluator{render: render}
}

// Apply transforms value through a single filter.
func (e *Evaluator) Apply(value string, f Filter) (string, error) {
	switch f := f.(type) {
	case Ceil:
		d, err := parseNumber(value, "ceil")
		if err != nil {
			return "", err
		}
		return d.Ceil().String(), nil

	case Floor:
		d, err := parseNumber(value, "floor")
		if err != nil {
			return "", err
		}
		return d.Floor().String(), nil

	case Round:
		d, err := parseNumber(value, "round")
		if err != nil {
			return "", err
		}
		return d.StringFixed(int32(f.Precision)), nil

	case Text:
		return applyCase(value, f.Case), nil

	case Markdown:
		if e.render == nil {
			return "", fmt.Errorf("markdown filter: no renderer configured")
		}
		fragment, err := e.render(value)
		if err != nil {
			return "", fmt.Errorf("markdown filter: %w", err)
		}
		return strings.TrimSuffix(fragment, "\n"), nil

	case Replace:
		if f.Find == "" {
			return value, nil
		}
		return strings.Replace(value, f.Find, f.Replacement, f.Limit), nil

	case Reverse:
		runes := []rune(value)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		return string(runes), nil

	case Truncate:
		runes := []rune(value)
		if uint(len(runes)) <= f.Characters {
			return value, nil
		}
		return string(runes[:f.Characters]) + f.Trail, nil

	default:
		return "", fmt.Errorf("%w: unhandled filter %T", ErrUnknownFilter, f)
	}
}

// ApplyAll folds value through the pipeline in order; each filter's output
// feeds the next filter.
func (e *Evaluator) ApplyAll(value string, filters []Filter) (string, error) {
	var err error
	for _, f := range filters {
		value, err = e.Apply(value, f)
		if err != nil {
			return "", err
		}
	}
	return value, nil
}

// parseNumber parses the value for a numeric filter. Non-numeric input is
// a hard error, never a silent passthrough.
func parseNumber(value, name string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s applied to non-numeric value %q", ErrInvalidInput, name, value)
	}
	return d, nil
}

// applyCase rewrites value into the requested casing.
func applyCase(value string, tc TextCase) string {
	switch tc {
	case CaseLower:
		return strings.ToLower(value)
	case CaseUpper:
		return strings.ToUpper(value)
	case CaseTitle:
		return titleCase(value)
	case CaseKebab:
		return slug.Make(value)
	case CaseSnake:
		return strings.ReplaceAll(slug.Make(value), "-", "_")
	case CasePascal:
		return concatWords(value, false)
	case CaseCamel:
		return concatWords(value, true)
	case CaseInvert:
		return strings.Map(invertRune, value)
	default:
		return value
	}
}

// titleCase capitalizes the first letter of each whitespace-separated
// word, leaving everything else untouched.
func titleCase(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	atWordStart := true
	for _, r := range value {
		if unicode.IsSpace(r) {
			atWordStart = true
			b.WriteRune(r)
			continue
		}
		if atWordStart {
			b.WriteRune(unicode.ToUpper(r))
			atWordStart = false
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// concatWords joins the slugified words of value with each word
// capitalized; lowerFirst leaves the first word lowercase (camelCase).
func concatWords(value string, lowerFirst bool) string {
	words := strings.Split(slug.Make(value), "-")
	var b strings.Builder
	for i, w := range words {
		if w == "" {
			continue
		}
		if i == 0 && lowerFirst {
			b.WriteString(w)
			continue
		}
		b.WriteString(strings.ToUpper(w[:1]))
		b.WriteString(w[1:])
	}
	return b.String()
}

func invertRune(r rune) rune {
	switch {
	case unicode.IsUpper(r):
		return unicode.ToLower(r)
	case unicode.IsLower(r):
		return unicode.ToUpper(r)
	default:
		return r
	}
}
