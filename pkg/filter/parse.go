package filter

import (
	"slices"
	"strings"

	"github.com/spf13/cast"

	"github.com/yaklabco/mdforge/pkg/scan"
)

// ParsePipeline consumes a sequence of `| filter-spec` segments in
// left-to-right application order. A pipeline may be empty.
func ParsePipeline(c scan.Cursor) (scan.Cursor, []Filter, error) {
	var filters []Filter
	for {
		cur := scan.SkipSpaces(c)
		cur, err := scan.Literal(cur, "|")
		if err != nil {
			return c, filters, nil
		}
		cur, f, err := Parse(scan.SkipSpaces(cur))
		if err != nil {
			return c, nil, err
		}
		filters = append(filters, f)
		c = cur
	}
}

// Parse consumes a single filter spec: a name, optionally followed by
// `= value` or `= key: value, …`.
func Parse(c scan.Cursor) (scan.Cursor, Filter, error) {
	cur, name, err := scan.Ident(c)
	if err != nil {
		return c, nil, scan.Errorf(c.Pos(), ErrUnknownFilter, "expected a filter name")
	}

	var args []argument
	if after, err := scan.Literal(scan.SkipSpaces(cur), "="); err == nil {
		after, args, err = parseArguments(scan.SkipSpaces(after))
		if err != nil {
			return c, nil, err
		}
		cur = after
	}

	f, err := construct(c.Pos(), name, args)
	if err != nil {
		return c, nil, err
	}
	return cur, f, nil
}

// argument is one parsed filter argument. A positional argument has an
// empty key.
type argument struct {
	key   string
	value string
}

// parseArguments consumes a comma-separated argument list. Only the first
// argument may be positional.
func parseArguments(c scan.Cursor) (scan.Cursor, []argument, error) {
	var args []argument
	cur := c
	for {
		next, a, err := parseArgument(cur)
		if err != nil {
			return c, nil, err
		}
		args = append(args, a)
		cur = next

		after, err := scan.Literal(scan.SkipSpaces(cur), ",")
		if err != nil {
			return cur, args, nil
		}
		cur = scan.SkipSpaces(after)
	}
}

// parseArgument consumes `key: value` or a bare value.
func parseArgument(c scan.Cursor) (scan.Cursor, argument, error) {
	if cur, key, err := scan.Ident(c); err == nil {
		if after, err := scan.Literal(scan.SkipSpaces(cur), ":"); err == nil {
			after, value, err := takeValue(scan.SkipSpaces(after))
			if err != nil {
				return c, argument{}, err
			}
			return after, argument{key: key, value: value}, nil
		}
	}
	cur, value, err := takeValue(c)
	if err != nil {
		return c, argument{}, err
	}
	return cur, argument{value: value}, nil
}

// takeValue consumes an argument value: a run of characters up to a comma,
// pipe, newline, or the closing `}}` of the enclosing placeholder.
// Surrounding whitespace is not part of the value.
func takeValue(c scan.Cursor) (scan.Cursor, string, error) {
	rest := c.Rest()
	n := 0
	for n < len(rest) {
		b := rest[n]
		if b == ',' || b == '|' || b == '\n' {
			break
		}
		if b == '}' && n+1 < len(rest) && rest[n+1] == '}' {
			break
		}
		n++
	}
	value := strings.TrimRight(rest[:n], " \t")
	if value == "" {
		return c, "", scan.Errorf(c.Pos(), ErrBadArgument, "expected an argument value")
	}
	return c.Advance(len(value)), value, nil
}

// positionalParam maps each filter to the parameter that receives a bare
// argument. Filters absent from this table accept no positional argument.
var positionalParam = map[string]string{
	"round":    "precision",
	"text":     "case",
	"replace":  "find",
	"truncate": "characters",
}

// construct builds the Filter variant for name from its arguments,
// applying per-filter defaults for anything not supplied.
func construct(pos scan.Position, name string, args []argument) (Filter, error) {
	lower := foldCaseName(name)
	switch lower {
	case "ceil":
		if err := wantNoArgs(pos, lower, args); err != nil {
			return nil, err
		}
		return Ceil{}, nil

	case "floor":
		if err := wantNoArgs(pos, lower, args); err != nil {
			return nil, err
		}
		return Floor{}, nil

	case "round":
		bound, err := bindArgs(pos, lower, args, "precision")
		if err != nil {
			return nil, err
		}
		precision, err := uintArg(pos, bound, "precision", DefaultRoundPrecision)
		if err != nil {
			return nil, err
		}
		if precision > MaxRoundPrecision {
			return nil, scan.Errorf(pos, ErrBadArgument,
				"round: precision %d exceeds the maximum of %d", precision, MaxRoundPrecision)
		}
		return Round{Precision: precision}, nil

	case "lowercase":
		if err := wantNoArgs(pos, lower, args); err != nil {
			return nil, err
		}
		return Text{Case: CaseLower}, nil

	case "uppercase":
		if err := wantNoArgs(pos, lower, args); err != nil {
			return nil, err
		}
		return Text{Case: CaseUpper}, nil

	case "text":
		bound, err := bindArgs(pos, lower, args, "case")
		if err != nil {
			return nil, err
		}
		tc := CaseLower
		if raw, ok := bound["case"]; ok {
			tc, err = parseTextCase(raw)
			if err != nil {
				return nil, scan.Errorf(pos, ErrBadArgument, "text: %v", err)
			}
		}
		return Text{Case: tc}, nil

	case "markdown":
		if err := wantNoArgs(pos, lower, args); err != nil {
			return nil, err
		}
		return Markdown{}, nil

	case "replace":
		bound, err := bindArgs(pos, lower, args, "find", "replacement", "limit")
		if err != nil {
			return nil, err
		}
		f := Replace{
			Find:        bound["find"],
			Replacement: bound["replacement"],
			Limit:       UnlimitedReplacements,
		}
		if raw, ok := bound["limit"]; ok {
			limit, err := cast.ToUintE(raw)
			if err != nil {
				return nil, scan.Errorf(pos, ErrBadArgument, "replace: limit %q is not a number", raw)
			}
			f.Limit = int(limit)
		}
		return f, nil

	case "reverse":
		if err := wantNoArgs(pos, lower, args); err != nil {
			return nil, err
		}
		return Reverse{}, nil

	case "truncate":
		bound, err := bindArgs(pos, lower, args, "characters", "trail")
		if err != nil {
			return nil, err
		}
		characters, err := uintArg(pos, bound, "characters", DefaultTruncateCharacters)
		if err != nil {
			return nil, err
		}
		trail := DefaultTruncateTrail
		if raw, ok := bound["trail"]; ok {
			trail = raw
		}
		return Truncate{Characters: characters, Trail: trail}, nil

	default:
		return nil, scan.Errorf(pos, ErrUnknownFilter, "unknown filter %q", name)
	}
}

// bindArgs resolves positional and named arguments against the filter's
// parameter set. The positional parameter is the first entry of allowed;
// named arguments override it when both bind the same parameter.
func bindArgs(pos scan.Position, name string, args []argument, allowed ...string) (map[string]string, error) {
	bound := make(map[string]string, len(args))
	for i, a := range args {
		key := a.key
		if key == "" {
			if i != 0 {
				return nil, scan.Errorf(pos, ErrBadArgument,
					"%s: a positional argument must come first", name)
			}
			key = allowed[0]
		}
		if !slices.Contains(allowed, key) {
			return nil, scan.Errorf(pos, ErrBadArgument,
				"%s: unknown argument %q", name, key)
		}
		bound[key] = a.value
	}
	return bound, nil
}

func wantNoArgs(pos scan.Position, name string, args []argument) error {
	if len(args) > 0 {
		return scan.Errorf(pos, ErrBadArgument, "%s takes no arguments", name)
	}
	return nil
}

func uintArg(pos scan.Position, bound map[string]string, key string, fallback uint) (uint, error) {
	raw, ok := bound[key]
	if !ok {
		return fallback, nil
	}
	v, err := cast.ToUintE(raw)
	if err != nil {
		return 0, scan.Errorf(pos, ErrBadArgument, "%s %q is not a number", key, raw)
	}
	return v, nil
}
