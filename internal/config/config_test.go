package config_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/Flaque/filet"
	"github.com/UnknownOlympus/asclepius/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "config.yaml")
	filet.File(t, path, content)

	return path
}

func Test_LoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, config.ModePopup, cfg.Dashboard.Mode)
	assert.Equal(t, "Productivity Map: Medical Staff", cfg.Dashboard.Title)
	assert.Empty(t, cfg.Roster.File)
}

func Test_LoadFromFile(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeConfig(t, `
env: production
http:
  address: "127.0.0.1:9000"
  shutdown_timeout: 3s
dashboard:
  mode: Inline
  title: "Ward 4"
roster:
  file: /srv/roster.yaml
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Address)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, config.ModeInline, cfg.Dashboard.Mode)
	assert.Equal(t, "Ward 4", cfg.Dashboard.Title)
	assert.Equal(t, "/srv/roster.yaml", cfg.Roster.File)
}

func Test_LoadEnvOverridesFile(t *testing.T) {
	defer filet.CleanUp(t)

	path := writeConfig(t, "env: development\nhttp:\n  address: \":7000\"\n")
	t.Setenv("ASCLEPIUS_HTTP_ADDRESS", ":7777")
	t.Setenv("ASCLEPIUS_DASHBOARD_MODE", "inline")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, ":7777", cfg.HTTP.Address)
	assert.Equal(t, config.ModeInline, cfg.Dashboard.Mode)
}

func Test_LoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file does not exist")
}

func Test_LoadInvalidMode(t *testing.T) {
	t.Setenv("ASCLEPIUS_DASHBOARD_MODE", "carousel")

	_, err := config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestMustLoad_Panics(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/definitely/not/here.yaml")

	assert.Panics(t, func() {
		config.MustLoad()
	})
}
