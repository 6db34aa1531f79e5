package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Title\ncontent"), 0o644))

	got, err := ReadText(path)

	require.NoError(t, err)
	assert.Equal(t, "# Title\ncontent", got)
}

func TestReadTextMissingFile(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "absent.md"))

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")

	require.NoError(t, WriteAtomic(path, []byte("<p>hi</p>")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>", string(data))
}

func TestWriteAtomicOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	require.NoError(t, WriteAtomic(path, []byte("new")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		outDir string
		source string
		want   string
	}{
		{
			name:   "alongside source when no out dir",
			source: filepath.Join("posts", "hello.md"),
			want:   filepath.Join("posts", "hello.html"),
		},
		{
			name:   "into out dir",
			outDir: "dist",
			source: filepath.Join("posts", "hello.md"),
			want:   filepath.Join("dist", "hello.html"),
		},
		{
			name:   "extensionless source",
			outDir: "dist",
			source: "README",
			want:   filepath.Join("dist", "README.html"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.outDir, tt.source))
		})
	}
}
