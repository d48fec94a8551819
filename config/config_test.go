package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, ":8050", cfg.Addr)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, "public", cfg.PublicDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("RAIL_ADDR", "127.0.0.1:9000")
	t.Setenv("RAIL_ALLOWED_ORIGINS", "http://localhost:5173,http://example.org")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, []string{"http://localhost:5173", "http://example.org"}, cfg.AllowedOrigins)
}

func TestLoadFromDotEnv(t *testing.T) {
	t.Setenv("RAIL_DATA_DIR", "")
	os.Unsetenv("RAIL_DATA_DIR")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RAIL_DATA_DIR=/srv/rail\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/rail", cfg.DataDir)
}
