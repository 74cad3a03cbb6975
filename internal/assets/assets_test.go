package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyDir(t *testing.T) {
	src := t.TempDir()
	dst := filepath.Join(t.TempDir(), "out")

	require.NoError(t, os.MkdirAll(filepath.Join(src, "img", "team"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "robots.txt"), []byte("User-agent: *"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "img", "team", "jane.jpg"), []byte("jpeg"), 0o644))

	n, err := CopyDir(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(dst, "img", "team", "jane.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(data))
}

func TestCopyDirMissingSource(t *testing.T) {
	n, err := CopyDir(filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestEnsureStylesheet(t *testing.T) {
	out := t.TempDir()

	path, err := EnsureStylesheet(out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "css", "site.css"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), ":root {")
}

func TestEnsureStylesheetKeepsExisting(t *testing.T) {
	out := t.TempDir()
	existing := filepath.Join(out, "css", "site.css")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("custom"), 0o644))

	_, err := EnsureStylesheet(out)
	require.NoError(t, err)

	data, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "custom", string(data))
}
