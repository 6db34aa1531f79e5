package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/mdforge/pkg/filter"
)

// Table formatting constants.
const (
	tablePadding     = 2
	minNameWidth     = 9
	minArgsWidth     = 24
	defaultTermWidth = 100
	lightSeparator   = "-"
)

// FilterTable formats the filter reference as a styled table.
type FilterTable struct {
	styles    *Styles
	termWidth int
}

// NewFilterTable creates a filter reference table formatter.
func NewFilterTable(styles *Styles, termWidth int) *FilterTable {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &FilterTable{styles: styles, termWidth: termWidth}
}

// Format renders the documented filter set.
func (t *FilterTable) Format(descriptions []filter.Description) string {
	nameWidth, argsWidth := minNameWidth, minArgsWidth
	for _, d := range descriptions {
		if len(d.Name) > nameWidth {
			nameWidth = len(d.Name)
		}
		if len(d.Arguments) > argsWidth {
			argsWidth = len(d.Arguments)
		}
	}

	summaryWidth := t.termWidth - nameWidth - argsWidth - 2*tablePadding
	if summaryWidth < 20 {
		summaryWidth = 20
	}

	pad := strings.Repeat(" ", tablePadding)
	var builder strings.Builder

	builder.WriteString(t.styles.TableHeader.Render(
		fmt.Sprintf("%-*s%s%-*s%s%s", nameWidth, "FILTER", pad, argsWidth, "ARGUMENTS", pad, "SUMMARY")))
	builder.WriteByte('\n')
	builder.WriteString(t.styles.TableBorder.Render(
		strings.Repeat(lightSeparator, nameWidth+argsWidth+summaryWidth+2*tablePadding)))
	builder.WriteByte('\n')

	for _, d := range descriptions {
		builder.WriteString(t.styles.TableName.Render(fmt.Sprintf("%-*s", nameWidth, d.Name)))
		builder.WriteString(pad)
		builder.WriteString(t.styles.TableArguments.Render(fmt.Sprintf("%-*s", argsWidth, d.Arguments)))
		builder.WriteString(pad)
		builder.WriteString(truncateCell(d.Summary, summaryWidth))
		builder.WriteByte('\n')
	}

	return builder.String()
}

// truncateCell caps a table cell at width, marking the cut with an
// ellipsis.
func truncateCell(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
