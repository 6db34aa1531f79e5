// Package fsutil provides the file I/O helpers used by the CLI: reading
// source documents and writing rendered output atomically.
package fsutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
)

// MaxSourceSize caps how large a source document may be. Rendering is a
// whole-document operation, so unbounded inputs are rejected up front.
const MaxSourceSize = 16 << 20 // 16 MiB

// ReadText reads a UTF-8 text file, rejecting files over MaxSourceSize.
func ReadText(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > MaxSourceSize {
		return "", fmt.Errorf("read %s: file exceeds %d bytes", path, int64(MaxSourceSize))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteAtomic writes content to path via a temp file and rename, so a
// failed write never leaves a truncated output document behind.
func WriteAtomic(path string, content []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// OutputPath derives the rendered output path for a Markdown source file:
// the source base name with an .html extension, placed in outDir (or
// alongside the source when outDir is empty).
func OutputPath(outDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".html"
	if outDir == "" {
		return filepath.Join(filepath.Dir(sourcePath), base)
	}
	return filepath.Join(outDir, base)
}
