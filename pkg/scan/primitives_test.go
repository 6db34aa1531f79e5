package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantRest string
		wantErr  bool
	}{
		{
			name:     "simple identifier",
			input:    "content }}",
			want:     "content",
			wantRest: " }}",
		},
		{
			name:     "single letter",
			input:    "a }}",
			want:     "a",
			wantRest: " }}",
		},
		{
			name:     "with underscore and digits",
			input:    "publish_date2 =",
			want:     "publish_date2",
			wantRest: " =",
		},
		{
			name:    "cannot start with digit",
			input:   "1_to_2",
			wantErr: true,
		},
		{
			name:    "cannot start with underscore",
			input:   "_author",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCursor(tt.input)
			next, got, err := Ident(c)

			if tt.wantErr {
				require.Error(t, err)
				// Failed parsers must not advance the cursor.
				assert.Equal(t, c.Pos(), next.Pos())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRest, next.Rest())
		})
	}
}

func TestUntilEOL(t *testing.T) {
	c := NewCursor("This is the first line\nThis is the second line.")

	c, line, err := UntilEOL(c)
	require.NoError(t, err)
	assert.Equal(t, "This is the first line", line)
	// The newline is consumed but not returned.
	assert.Equal(t, "This is the second line.", c.Rest())

	c, line, err = UntilEOL(c)
	require.NoError(t, err)
	assert.Equal(t, "This is the second line.", line)
	assert.Equal(t, "", c.Rest())

	// At EOF there is nothing left to take.
	_, _, err = UntilEOL(c)
	assert.Error(t, err)
}

func TestUntilNewline(t *testing.T) {
	c := NewCursor("My Title\nMy content")
	next, text := UntilNewline(c)

	assert.Equal(t, "My Title", text)
	assert.Equal(t, "\nMy content", next.Rest())
}

func TestLiteral(t *testing.T) {
	c := NewCursor(":meta\n")

	next, err := Literal(c, ":meta")
	require.NoError(t, err)
	assert.Equal(t, "\n", next.Rest())

	_, err = Literal(c, "<meta>")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestSkipSpaces(t *testing.T) {
	c := SkipSpaces(NewCursor("  \t x"))
	assert.Equal(t, "x", c.Rest())

	// Newlines are not plain spaces.
	c = SkipSpaces(NewCursor(" \n x"))
	assert.Equal(t, "\n x", c.Rest())
}

func TestSkipWhitespace(t *testing.T) {
	c := SkipWhitespace(NewCursor(" \t\r\n  x"))
	assert.Equal(t, "x", c.Rest())
	assert.Equal(t, 2, c.Pos().Line)
}

func TestQuoted(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     string
		wantRest string
		wantErr  bool
	}{
		{
			name:     "simple value",
			input:    `"value"`,
			want:     "value",
			wantRest: "",
		},
		{
			name:     "embedded newline",
			input:    "\"value\nhere\" rest",
			want:     "value\nhere",
			wantRest: " rest",
		},
		{
			name:     "escaped quotes preserved verbatim",
			input:    `"I said \"John Doe\"" rest`,
			want:     `I said \"John Doe\"`,
			wantRest: " rest",
		},
		{
			name:    "unterminated",
			input:   `"never closed`,
			wantErr: true,
		},
		{
			name:    "not a quote",
			input:   `bare`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, got, err := Quoted(NewCursor(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantRest, next.Rest())
		})
	}
}

func TestParseErrorFormat(t *testing.T) {
	err := Errorf(Position{Line: 3, Offset: 42}, ErrNoMatch, "expected %q", "}}")

	assert.EqualError(t, err, `line 3, offset 42: expected "}}"`)
	assert.ErrorIs(t, err, ErrNoMatch)
}
