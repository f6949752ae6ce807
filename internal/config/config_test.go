package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtunnel-site/internal/site"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New(), t.TempDir(), false)
	require.NoError(t, err)

	assert.Equal(t, site.InstallCommand, cfg.InstallCommand)
	assert.Equal(t, "auto", cfg.Clipboard.Mode)
	assert.Equal(t, 16, cfg.UI.CellHeight)
	assert.True(t, cfg.UI.AltScreen)
	assert.True(t, cfg.UI.Mouse)
	assert.Equal(t, zerolog.InfoLevel, cfg.Log.Level)
	assert.Equal(t, TextLogFormat, cfg.Log.Format)
	assert.Equal(t, defaultLogFile, cfg.Log.File)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
install_command: brew install gtunnel
clipboard:
  mode: osc52
ui:
  cell_height: 20
  mouse: false
log:
  level: debug
  format: json
  file: ""
`), 0o600))

	for _, tc := range []struct {
		name   string
		path   string
		isFile bool
	}{
		{"file", path, true},
		{"dir", dir, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load(viper.New(), tc.path, tc.isFile)
			require.NoError(t, err)
			assert.Equal(t, "brew install gtunnel", cfg.InstallCommand)
			assert.Equal(t, "osc52", cfg.Clipboard.Mode)
			assert.Equal(t, 20, cfg.UI.CellHeight)
			assert.False(t, cfg.UI.Mouse)
			assert.Equal(t, zerolog.DebugLevel, cfg.Log.Level)
			assert.Equal(t, JSONLogFormat, cfg.Log.Format)
			assert.Empty(t, cfg.Log.File)
		})
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("GTUNNEL_SITE_UI_CELL_HEIGHT", "8")
	t.Setenv("GTUNNEL_SITE_CLIPBOARD_MODE", "system")
	cfg, err := Load(viper.New(), t.TempDir(), false)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.UI.CellHeight)
	assert.Equal(t, "system", cfg.Clipboard.Mode)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"), true)
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	for name, env := range map[string][2]string{
		"level":     {"GTUNNEL_SITE_LOG_LEVEL", "loud"},
		"format":    {"GTUNNEL_SITE_LOG_FORMAT", "xml"},
		"clipboard": {"GTUNNEL_SITE_CLIPBOARD_MODE", "pasteboard"},
		"cell":      {"GTUNNEL_SITE_UI_CELL_HEIGHT", "0"},
	} {
		t.Run(name, func(t *testing.T) {
			t.Setenv(env[0], env[1])
			_, err := Load(viper.New(), t.TempDir(), false)
			assert.Error(t, err)
		})
	}
}
