package cli

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCommand(BuildInfo{Version: "test", Commit: "none", Date: "unknown"})
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestBuildEndToEnd(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"),
		":meta\nauthor = John Doe\n:meta\n# Hello\n\nSome *content*")
	writeFile(t, filepath.Join(dir, "page.html"),
		"<title>{{ £title }}</title>\n<small>{{ £author }}</small>\n<main>{{ £content | markdown }}</main>")

	err := execute(t, "build", "post.md", "--template", "page.html")
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "post.html"))
	require.NoError(t, err)
	assert.Equal(t,
		"<title>Hello</title>\n<small>John Doe</small>\n<main><p>Some <em>content</em></p></main>",
		string(out))
}

func TestBuildWritesIntoOutDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"), "# Title\nbody")
	writeFile(t, filepath.Join(dir, "page.html"), "<h1>{{ £title }}</h1>")

	err := execute(t, "build", "post.md", "-t", "page.html", "-o", "public")
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "public", "post.html"))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>", string(out))
}

func TestBuildSanitizesOutput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"), "# Hi <script>alert(1)</script>there\nbody")
	writeFile(t, filepath.Join(dir, "page.html"), "<p>{{ £title }}</p>")

	err := execute(t, "build", "post.md", "-t", "page.html", "--sanitize")
	require.NoError(t, err)

	out, err := os.ReadFile(filepath.Join(dir, "post.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(out), "<script>")
}

func TestBuildUsesConfigFileTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, ".mdforge.yaml"), "template: page.html\n")
	writeFile(t, filepath.Join(dir, "post.md"), "# Title\nbody")
	writeFile(t, filepath.Join(dir, "page.html"), "<h1>{{ £title }}</h1>")

	err := execute(t, "build", "post.md")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "post.html"))
	assert.NoError(t, err)
}

func TestBuildWithoutTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"), "# Title\nbody")

	err := execute(t, "build", "post.md")
	assert.ErrorContains(t, err, "no template")
	assert.Equal(t, ExitConfigError, ExitCodeFromError(err))
}

func TestBuildWithoutArgumentsIsUsageError(t *testing.T) {
	err := execute(t, "build")

	require.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(err))
}

func TestUnknownFlagIsUsageError(t *testing.T) {
	err := execute(t, "build", "post.md", "--bogus")

	require.ErrorIs(t, err, ErrUsage)
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(err))
}

func TestBuildMissingTemplateFileIsIOError(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"), "# Title\nbody")

	err := execute(t, "build", "post.md", "-t", "absent.html")

	require.Error(t, err)
	assert.Equal(t, ExitIOError, ExitCodeFromError(err))
}

func TestBuildMalformedTemplate(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"), "# Title\nbody")
	writeFile(t, filepath.Join(dir, "page.html"), "<p>{{ broken }}</p>")

	err := execute(t, "build", "post.md", "-t", "page.html")

	require.ErrorIs(t, err, ErrBuildFailed)
	assert.Equal(t, ExitRenderErrors, ExitCodeFromError(err))
}

func TestBuildReportsFailedDocuments(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "good.md"), "# Title\nbody")
	writeFile(t, filepath.Join(dir, "bad.md"), "no heading at all")
	writeFile(t, filepath.Join(dir, "page.html"), "<h1>{{ £title }}</h1>")

	err := execute(t, "build", "good.md", "bad.md", "-t", "page.html")

	require.ErrorIs(t, err, ErrBuildFailed)
	assert.ErrorContains(t, err, "1 of 2 documents")

	// The good document is still rendered.
	_, statErr := os.Stat(filepath.Join(dir, "good.html"))
	assert.NoError(t, statErr)
}

func TestBuildRejectsInvalidFlavor(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	writeFile(t, filepath.Join(dir, "post.md"), "# Title\nbody")
	writeFile(t, filepath.Join(dir, "page.html"), "<h1>{{ £title }}</h1>")

	err := execute(t, "build", "post.md", "-t", "page.html", "--flavor", "textile")
	assert.ErrorContains(t, err, "invalid flavor")
	assert.Equal(t, ExitConfigError, ExitCodeFromError(err))
}

func TestInitCreatesConfig(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, execute(t, "init"))

	data, err := os.ReadFile(filepath.Join(dir, ".mdforge.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# mdforge configuration.")
	assert.Contains(t, string(data), "flavor: commonmark")
}

func TestInitRefusesToOverwrite(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	writeFile(t, filepath.Join(dir, ".mdforge.yaml"), "flavor: gfm\n")

	err := execute(t, "init")
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, execute(t, "init", "--force"))

	data, err := os.ReadFile(filepath.Join(dir, ".mdforge.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "flavor: commonmark")
}

func TestInitCustomOutputPath(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, execute(t, "init", "--output", "custom.yaml"))

	_, err := os.Stat(filepath.Join(dir, "custom.yaml"))
	assert.NoError(t, err)
}

func TestFiltersCommand(t *testing.T) {
	assert.NoError(t, execute(t, "filters"))
}

func TestVersionCommand(t *testing.T) {
	assert.NoError(t, execute(t, "version"))
}

func TestExitCodeFromError(t *testing.T) {
	pathErr := &fs.PathError{Op: "open", Path: "absent.html", Err: fs.ErrNotExist}

	assert.Equal(t, ExitSuccess, ExitCodeFromError(nil))
	assert.Equal(t, ExitRenderErrors, ExitCodeFromError(ErrBuildFailed))
	assert.Equal(t, ExitRenderErrors, ExitCodeFromError(fmt.Errorf("%w: 1 of 2 documents", ErrBuildFailed)))
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(fmt.Errorf("%w: unknown flag", ErrUsage)))
	assert.Equal(t, ExitConfigError, ExitCodeFromError(fmt.Errorf("%w: bad flavor", ErrConfig)))
	assert.Equal(t, ExitIOError, ExitCodeFromError(fmt.Errorf("read: %w", pathErr)))
	assert.Equal(t, ExitInternalError, ExitCodeFromError(io.ErrUnexpectedEOF))
}

func TestHelpOutputIsStyled(t *testing.T) {
	cmd := NewRootCommand(BuildInfo{Version: "test"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Usage:")
	assert.Contains(t, text, "Available Commands:")
	assert.Contains(t, text, "Flags:")
	for _, sub := range []string{"build", "filters", "init", "version"} {
		assert.Contains(t, text, sub)
	}
}
