package filter

import "fmt"

// TextCase enumerates the casings understood by the Text filter.
type TextCase int

const (
	CaseLower TextCase = iota
	CaseUpper
	CaseTitle
	CaseKebab
	CaseSnake
	CasePascal
	CaseCamel
	CaseInvert
)

// String returns the canonical spelling of the case.
func (tc TextCase) String() string {
	switch tc {
	case CaseLower:
		return "lower"
	case CaseUpper:
		return "upper"
	case CaseTitle:
		return "title"
	case CaseKebab:
		return "kebab-case"
	case CaseSnake:
		return "snake_case"
	case CasePascal:
		return "PascalCase"
	case CaseCamel:
		return "camelCase"
	case CaseInvert:
		return "invert"
	default:
		return fmt.Sprintf("TextCase(%d)", int(tc))
	}
}

// parseTextCase resolves a case argument. Spellings match
// case-insensitively, with and without the -case/_case/Case suffix.
func parseTextCase(value string) (TextCase, error) {
	switch foldCaseName(value) {
	case "lower", "lowercase":
		return CaseLower, nil
	case "upper", "uppercase":
		return CaseUpper, nil
	case "title", "titlecase":
		return CaseTitle, nil
	case "kebab", "kebab-case", "kebabcase":
		return CaseKebab, nil
	case "snake", "snake_case", "snakecase":
		return CaseSnake, nil
	case "pascal", "pascalcase":
		return CasePascal, nil
	case "camel", "camelcase":
		return CaseCamel, nil
	case "invert", "inverted":
		return CaseInvert, nil
	default:
		return CaseLower, fmt.Errorf("%w: unknown text case %q", ErrBadArgument, value)
	}
}

// foldCaseName lowercases ASCII letters in a case spelling.
func foldCaseName(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
