package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	for _, env := range []string{EnvStore, EnvDataDir, EnvRoute, EnvTheme, EnvLogLevel, EnvConfig} {
		t.Setenv(env, "")
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Store)
	assert.Equal(t, filepath.Join(dir, "data", "todo"), cfg.DataDir)
	assert.Equal(t, "/", cfg.Route)
	assert.Equal(t, filepath.Join(dir, "data", "todo", "todo.log"), cfg.LogPath())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "config", "todo", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`
store = "sqlite"
route = "/active"
theme = "neon"
`), 0o644))
	t.Setenv(EnvTheme, "mono")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Store)
	assert.Equal(t, "/active", cfg.Route)
	assert.Equal(t, "mono", cfg.Theme)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_UnknownKeysFail(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(`colour = "red"`), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestValidate(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Store = "redis"
	cfg.Route = "/archived"
	cfg.Theme = "vaporwave"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"redis", "/archived", "vaporwave", "loud"} {
		assert.Contains(t, err.Error(), want)
	}

	cfg = Default()
	cfg.Route = "#/completed"
	assert.NoError(t, cfg.Validate())

	cfg = Default()
	cfg.Store = "memory"
	cfg.DataDir = ""
	assert.NoError(t, cfg.Validate())
}

func TestEncode_RoundTrips(t *testing.T) {
	isolate(t)
	cfg := Default()
	cfg.Store = "sqlite"
	out, err := cfg.Encode()
	require.NoError(t, err)

	var back Config
	_, err = toml.Decode(out, &back)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
