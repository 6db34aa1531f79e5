package configloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdforge/pkg/config"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsOnly(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	result, err := Load(LoadOptions{WorkingDir: t.TempDir()})

	require.NoError(t, err)
	assert.Empty(t, result.Source)
	assert.Equal(t, config.Default(), result.Config)
}

func TestLoadDiscoveredFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	path := writeConfig(t, dir, ".mdforge.yaml", "flavor: gfm\nout_dir: dist\n")

	result, err := Load(LoadOptions{WorkingDir: dir})

	require.NoError(t, err)
	assert.Equal(t, path, result.Source)
	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.Equal(t, "dist", result.Config.OutDir)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "info", result.Config.LogLevel)
}

func TestLoadExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", "template: tpl.html\n")

	result, err := Load(LoadOptions{ExplicitPath: path})

	require.NoError(t, err)
	assert.Equal(t, path, result.Source)
	assert.Equal(t, "tpl.html", result.Config.Template)
}

func TestLoadExplicitPathMissingIsError(t *testing.T) {
	_, err := Load(LoadOptions{ExplicitPath: filepath.Join(t.TempDir(), "absent.yaml")})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "broken.yaml", "flavor: [unclosed\n")

	_, err := Load(LoadOptions{ExplicitPath: path})

	assert.Error(t, err)
}

func TestLoadRejectsInvalidFlavor(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "bad.yaml", "flavor: textile\n")

	_, err := Load(LoadOptions{ExplicitPath: path})

	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	writeConfig(t, dir, ".mdforge.yaml", "flavor: commonmark\nlog_level: warn\n")

	t.Setenv("MDFORGE_FLAVOR", "gfm")
	t.Setenv("MDFORGE_SANITIZE", "true")

	result, err := Load(LoadOptions{WorkingDir: dir})

	require.NoError(t, err)
	assert.Equal(t, config.FlavorGFM, result.Config.Flavor)
	assert.True(t, result.Config.Sanitize)
	assert.Equal(t, "warn", result.Config.LogLevel)
}

func TestLoadFromEnvInvalidBool(t *testing.T) {
	t.Setenv("MDFORGE_SANITIZE", "definitely")

	err := LoadFromEnv(config.Default())

	assert.Error(t, err)
}

func TestDiscoverPrefersWorkingDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeConfig(t, home, ".mdforge.yaml", "")

	dir := t.TempDir()
	path := writeConfig(t, dir, ".mdforge.yaml", "")

	assert.Equal(t, path, Discover(dir))
}

func TestDiscoverFallsBackToHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeConfig(t, home, ".mdforge.yml", "")

	assert.Equal(t, path, Discover(t.TempDir()))
}

func TestDiscoverNothing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.Empty(t, Discover(t.TempDir()))
}
