package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "gemini-2.5-flash-lite", cfg.AI.Model)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "static", cfg.Data.StaticDir)
	assert.Equal(t, 24*time.Hour, cfg.Session.Lifetime)
}

func TestLoadConfig_Values(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `
server:
  addr: ":9000"
ai:
  model: gemini-2.0-flash
  api_key: file-key
session:
  lifetime: 2h
`))
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
	assert.Equal(t, "file-key", cfg.AI.APIKey)
	assert.Equal(t, 2*time.Hour, cfg.Session.Lifetime)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("FORMALGEN_API_KEY", "env-key")
	t.Setenv("FORMALGEN_ADDR", ":7070")

	cfg, err := LoadConfig(writeConfig(t, `
ai:
  api_key: file-key
`))
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.AI.APIKey)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
