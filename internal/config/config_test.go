// internal/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libraryfront/internal/query"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "http://localhost:8095", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout.Std())
	assert.Equal(t, 5*time.Minute, cfg.Staleness.Books.Std())
	assert.Equal(t, 10*time.Minute, cfg.Staleness.Recommended.Std())
	assert.Equal(t, 2*time.Minute, cfg.Staleness.MyLoans.Std())
	assert.NotEmpty(t, cfg.TokenPath)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
base_url: https://library.example.com
timeout: 3s
staleness:
  books: 1m
  my_loans: 30s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://library.example.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout.Std())
	assert.Equal(t, time.Minute, cfg.Staleness.Books.Std())
	assert.Equal(t, 30*time.Second, cfg.Staleness.MyLoans.Std())
	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Minute, cfg.Staleness.Recommended.Std())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().BaseURL, cfg.BaseURL)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [oops"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadDuration(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("timeout: soon"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: https://file.example.com"), 0o600))

	t.Setenv("LIBRARYFRONT_BASE_URL", "https://env.example.com")
	t.Setenv("LIBRARYFRONT_TIMEOUT", "7s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.BaseURL)
	assert.Equal(t, 7*time.Second, cfg.Timeout.Std())
}

func TestWindowsPinBookDetailToZero(t *testing.T) {
	cfg := Default()
	cfg.Staleness.Books = Duration(time.Minute)

	windows := cfg.Windows()
	assert.Equal(t, time.Minute, windows[query.KindBooks])
	assert.Equal(t, time.Duration(0), windows[query.KindBook])
}
