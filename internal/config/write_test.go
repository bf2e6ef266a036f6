package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "monitorr", "config.toml")

	err := WriteDefault(path, false)
	require.NoError(t, err, "WriteDefault failed")

	content, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read written file")

	assert.Contains(t, string(content), "[radarr]")
	assert.Contains(t, string(content), "[reconcile]")
	assert.Contains(t, string(content), "${RADARR_API_KEY}")
}

func TestWriteDefault_LoadsBack(t *testing.T) {
	t.Setenv("RADARR_API_KEY", "round-trip")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "round-trip", cfg.Radarr.APIKey)
	assert.Equal(t, DefaultPort, cfg.Radarr.Port)
	assert.Empty(t, cfg.Validate())
}

func TestWriteDefault_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := WriteDefault(path, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExists))

	content, _ := os.ReadFile(path)
	assert.Equal(t, "# mine\n", string(content))

	require.NoError(t, WriteDefault(path, true))
	content, _ = os.ReadFile(path)
	assert.Contains(t, string(content), "[radarr]")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "monitorr", "config.toml"), DefaultPath())
}
