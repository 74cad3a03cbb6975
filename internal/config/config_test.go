package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "public", cfg.OutputDir)
	assert.Equal(t, "content/site.yaml", cfg.ContentFile)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_dir: dist\nbucket: from-file\nshutdown_timeout: 3s\n"), 0o644))

	t.Setenv("SITE_BUCKET", "from-env")
	t.Setenv("SITE_ANALYTICS_ID", "G-TEST")

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "dist", cfg.OutputDir)
	assert.Equal(t, "from-env", cfg.Bucket)
	assert.Equal(t, "G-TEST", cfg.AnalyticsID)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsEmptyOutputDir(t *testing.T) {
	chdir(t, t.TempDir())

	v := New()
	v.Set("output_dir", "")

	_, err := Load(v, "")
	assert.ErrorContains(t, err, "output dir")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir for Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
