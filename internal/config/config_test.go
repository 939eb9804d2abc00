package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults verifies an empty path yields the defaults.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, 10, cfg.SourceTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

// TestLoadFileOverrides verifies YAML values win over defaults while unset
// keys keep them.
func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\nlogLevel: debug\nhintSeed: 7\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, int64(7), cfg.HintSeed)
	assert.Equal(t, "./data", cfg.DataDir, "unset keys keep defaults")
}

// TestSlogLevelMapping covers the level names.
func TestSlogLevelMapping(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, Config{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelError, Config{LogLevel: "ERROR"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, Config{LogLevel: "bogus"}.SlogLevel())
}

// TestLoadMissingFile verifies a bad path is reported.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
