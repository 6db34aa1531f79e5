package cli

import (
	"io"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitUsageLine(t *testing.T) {
	def, desc, ok := splitUsageLine("-t, --template string   HTML template file")

	require.True(t, ok)
	assert.Equal(t, "-t, --template string", def)
	assert.Equal(t, "HTML template file", desc)
}

func TestSplitUsageLineWithoutGap(t *testing.T) {
	_, _, ok := splitUsageLine("a line with only single spaces")
	assert.False(t, ok)
}

func TestFlagUsagesKeepsContent(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.StringP("template", "t", "", "HTML template file")
	fs.Bool("sanitize", false, "sanitize rendered HTML output")

	h := NewHelpFormatter("never", io.Discard)
	got := h.flagUsages(fs)

	assert.Contains(t, got, "-t, --template")
	assert.Contains(t, got, "HTML template file")
	assert.Contains(t, got, "--sanitize")
	assert.Contains(t, got, "sanitize rendered HTML output")
}

func TestRpad(t *testing.T) {
	assert.Equal(t, "abc  ", rpad("abc", 5))
	assert.Equal(t, "abcdef", rpad("abcdef", 5))
}

func TestTrimTrailingSpaces(t *testing.T) {
	assert.Equal(t, "a\nb", trimTrailingSpaces("a  \nb\t"))
}
