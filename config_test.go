package ember

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
	path := filepath.Join(t.TempDir(), "ember.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[ui]
gui_scale = 2

[tooltip]
delay_ms = 450
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.UI.GUIScale)
	assert.Equal(t, 450, cfg.Tooltip.DelayMs)
	assert.Equal(t, 450*time.Millisecond, cfg.TooltipDelay())
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[ui]
gui_scale = 3
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.UI.GUIScale)
	assert.Equal(t, 300, cfg.Tooltip.DelayMs, "missing section falls back to default")
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg, "caller can use the returned defaults")
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfig(t, `[ui`)

	cfg, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigClampsBadValues(t *testing.T) {
	path := writeConfig(t, `
[ui]
gui_scale = 0

[tooltip]
delay_ms = -10
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.UI.GUIScale)
	assert.Equal(t, 300, cfg.Tooltip.DelayMs)
}

func TestConfigSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ember.toml")

	cfg := DefaultConfig()
	cfg.UI.GUIScale = 2
	cfg.Tooltip.DelayMs = 150
	require.NoError(t, cfg.Save(path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
