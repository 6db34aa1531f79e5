package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdforge/pkg/scan"
)

// FormatParseError formats a parse error for terminal output:
//
//	path:line:offset  error  message
//	        offending source line
//	        ^
//
// The source context is derived from src using the error's position; pass
// an empty src to suppress it.
func (s *Styles) FormatParseError(path, src string, perr *scan.ParseError) string {
	var builder strings.Builder

	location := fmt.Sprintf("%s:%d:%d",
		s.FilePath.Render(path),
		perr.Pos.Line,
		perr.Pos.Offset,
	)

	builder.WriteString(fmt.Sprintf("  %s  %s  %s\n",
		location,
		s.Error.Render("error"),
		s.Message.Render(perr.Msg),
	))

	if src != "" {
		line, column := sourceContext(src, perr.Pos)
		builder.WriteString(s.FormatSourceContext(line, column))
	}

	return builder.String()
}

// FormatSourceContext formats the source line with a caret marker under
// the 1-based column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	// Indent to align with diagnostic output.
	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 && column <= len(line)+1 {
		builder.WriteString(indent + strings.Repeat(" ", column-1) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// sourceContext extracts the line containing pos and the 1-based column
// of pos within it.
func sourceContext(src string, pos scan.Position) (string, int) {
	offset := pos.Offset
	if offset > len(src) {
		offset = len(src)
	}

	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}

	return src[start:end], offset - start + 1
}
