package pretty

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdforge/pkg/filter"
	"github.com/yaklabco/mdforge/pkg/scan"
)

func TestFormatParseError(t *testing.T) {
	styles := NewStyles(false)
	src := "first line\n{{ broken }}"
	perr := &scan.ParseError{
		Pos: scan.Position{Line: 2, Offset: 14},
		Msg: "expected the variable sigil",
	}

	got := styles.FormatParseError("template.html", src, perr)

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "  template.html:2:14  error  expected the variable sigil", lines[0])
	assert.Equal(t, "        {{ broken }}", lines[1])
	// Caret sits under the 1-based column within the offending line.
	assert.Equal(t, "        "+strings.Repeat(" ", 3)+"^", lines[2])
}

func TestFormatParseErrorWithoutSource(t *testing.T) {
	styles := NewStyles(false)
	perr := &scan.ParseError{
		Pos: scan.Position{Line: 1, Offset: 0},
		Msg: "missing title",
	}

	got := styles.FormatParseError("post.md", "", perr)

	assert.Equal(t, "  post.md:1:0  error  missing title\n", got)
}

func TestSourceContext(t *testing.T) {
	tests := []struct {
		name       string
		src        string
		offset     int
		wantLine   string
		wantColumn int
	}{
		{
			name:       "first line",
			src:        "abc\ndef",
			offset:     1,
			wantLine:   "abc",
			wantColumn: 2,
		},
		{
			name:       "second line",
			src:        "abc\ndef",
			offset:     5,
			wantLine:   "def",
			wantColumn: 2,
		},
		{
			name:       "offset past end clamps",
			src:        "abc",
			offset:     99,
			wantLine:   "abc",
			wantColumn: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, column := sourceContext(tt.src, scan.Position{Offset: tt.offset})

			assert.Equal(t, tt.wantLine, line)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestFilterTableFormat(t *testing.T) {
	table := NewFilterTable(NewStyles(false), 120)

	got := table.Format(filter.Reference())

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Header, separator, and one row per documented filter.
	require.Len(t, lines, 2+len(filter.Reference()))

	assert.Contains(t, lines[0], "FILTER")
	assert.Contains(t, lines[0], "ARGUMENTS")
	assert.Contains(t, lines[0], "SUMMARY")
	assert.True(t, strings.HasPrefix(lines[1], "---"))

	text := got
	for _, d := range filter.Reference() {
		assert.Contains(t, text, d.Name)
	}
}

func TestFilterTableTruncatesLongSummaries(t *testing.T) {
	table := NewFilterTable(NewStyles(false), 60)

	got := table.Format([]filter.Description{{
		Name:      "x",
		Arguments: "-",
		Summary:   strings.Repeat("long summary ", 20),
	}})

	assert.Contains(t, got, "...")
}

func TestIsColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	assert.True(t, IsColorEnabled("always", &buf))
	assert.False(t, IsColorEnabled("never", &buf))
	// A plain buffer is not a terminal.
	assert.False(t, IsColorEnabled("auto", &buf))
}
