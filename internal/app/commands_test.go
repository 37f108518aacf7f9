package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bethropolis/dir-printer/internal/config"
	"github.com/bethropolis/dir-printer/internal/preferences"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck(t *testing.T) {
	root := t.TempDir()
	rules := filepath.Join(root, ".printignore")
	require.NoError(t, os.WriteFile(rules, []byte("build/\n!build/keep.txt\n"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))

	h := newHarness(t, &config.Config{RootDir: root, IgnoreFile: rules, IgnoreHidden: true})
	require.NoError(t, h.app.Check([]string{"build/other.txt", "build/keep.txt", "src/main.go", ".env", "build"}))

	assert.Equal(t, `build/other.txt: ignored by line 1 "build/"
build/keep.txt: kept by line 2 "!build/keep.txt"
src/main.go: not ignored
.env: ignored (hidden)
build: ignored by line 1 "build/"
`, h.stdout.String())
}

func TestCheck_OutsideRoot(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "proj")
	require.NoError(t, os.MkdirAll(root, 0o755))

	h := newHarness(t, &config.Config{RootDir: root, CustomIgnore: filepath.Base(parent) + "/"})
	require.NoError(t, h.app.Check([]string{filepath.Join(parent, "other.txt")}))

	assert.Equal(t, filepath.Join(parent, "other.txt")+": outside "+root+"\n", h.stdout.String())
}

func TestRecent(t *testing.T) {
	h := newHarness(t, &config.Config{})

	require.NoError(t, h.app.Recent(false))
	assert.Equal(t, "No recent directories.\n", h.stdout.String())

	dir := t.TempDir()
	require.NoError(t, h.prefs.AddRecent(dir, preferences.RecentConfig{IgnoreFile: "/r"}))
	h.stdout.Reset()
	require.NoError(t, h.app.Recent(false))
	assert.Equal(t, "1. "+dir+" (ignore file: /r)\n", h.stdout.String())

	h.stdout.Reset()
	require.NoError(t, h.app.Recent(true))
	assert.Equal(t, "Recent directories cleared.\n", h.stdout.String())
	assert.Empty(t, h.prefs.RecentFiles())
}

func TestLanguage(t *testing.T) {
	h := newHarness(t, &config.Config{})

	require.NoError(t, h.app.Language(""))
	assert.Contains(t, h.stdout.String(), "Current language: en")
	assert.Contains(t, h.stdout.String(), "es  Español")

	h.stdout.Reset()
	require.NoError(t, h.app.Language("es-MX"))
	assert.Equal(t, "Idioma establecido en es\n", h.stdout.String())
	assert.Equal(t, "es", h.prefs.Language())
	assert.Equal(t, "es", h.app.Locale())

	require.Error(t, h.app.Language("!!"))
}
