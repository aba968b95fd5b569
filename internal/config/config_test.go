package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hexloop.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, 10, cfg.Size)
	assert.Equal(t, "vertical", cfg.Pattern)
	assert.False(t, cfg.LegacyKeys)
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
port: 8080
size: 25
pattern: diagonal_1
legacy_keys: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 25, cfg.Size)
	assert.Equal(t, "diagonal_1", cfg.Pattern)
	assert.True(t, cfg.LegacyKeys)
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "port: 9000\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, 10, cfg.Size)
	assert.Equal(t, "vertical", cfg.Pattern)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorContains(t, err, "read config")
}

func TestLoad_RejectsBadPort(t *testing.T) {
	path := writeConfig(t, "port: 70000\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "validate config")
}

func TestLoad_RejectsUnknownPattern(t *testing.T) {
	// The config file is strict where the HTTP surface coerces: a typo in
	// the startup config fails fast instead of silently seeding vertical.
	path := writeConfig(t, "pattern: spiral\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_RejectsWrongType(t *testing.T) {
	path := writeConfig(t, "size: twenty\n")

	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate([]byte("port: 3000\nsize: 10\n")))
	assert.NoError(t, Validate([]byte("")))
	assert.Error(t, Validate([]byte("port: 0\n")))
	assert.Error(t, Validate([]byte("size: -4\n")))
	assert.Error(t, Validate([]byte("legacy_keys: maybe\n")))
}
