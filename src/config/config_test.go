package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnv(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDPI, "")
	t.Setenv(EnvFont, "")
	p := writeEnv(t, "DYNGRAPH_LOG_LEVEL=debug\nDYNGRAPH_DPI=200\nDYNGRAPH_FONT=\"Go Mono\"\n")

	env, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "debug", env.LogLevel)
	assert.Equal(t, 200.0, env.DPI)
	assert.Equal(t, "Go Mono", env.Font)
}

func TestProcessEnvWins(t *testing.T) {
	t.Setenv(EnvDPI, "")
	t.Setenv(EnvFont, "")
	t.Setenv(EnvLogLevel, "warn")
	p := writeEnv(t, "DYNGRAPH_LOG_LEVEL=debug\n")

	env, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "warn", env.LogLevel)
}

func TestMissingFileIsFine(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvDPI, "")
	t.Setenv(EnvFont, "")
	env, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	require.NoError(t, err)
	assert.Equal(t, Env{}, env)
}

func TestInvalidDPI(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvFont, "")
	t.Setenv(EnvDPI, "lots")
	_, err := Load(filepath.Join(t.TempDir(), "nope.env"))
	assert.ErrorContains(t, err, EnvDPI)
}
