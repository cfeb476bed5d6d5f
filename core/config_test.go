package core

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)
	assert.True(t, cfg.UI.Colors)
	assert.True(t, cfg.UI.Animation)
	assert.Equal(t, 20, cfg.UI.ProgressWidth)
	assert.Equal(t, 10*time.Second, cfg.Input.PromptTimeout())
	assert.Equal(t, 200*time.Millisecond, cfg.UI.AnimationDelay())
	assert.True(t, cfg.History.Enabled)
	assert.NotEmpty(t, cfg.History.Path)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
language: en
ui:
  colors: false
  animation: false
  progress_width: 30
  animation_speed: 0.1
input:
  prompt_timeout: 2.5
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "en", cfg.Language)
	assert.False(t, cfg.UI.Colors)
	assert.Equal(t, 30, cfg.UI.ProgressWidth)
	assert.Equal(t, 2500*time.Millisecond, cfg.Input.PromptTimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unspecified sections keep their defaults.
	assert.True(t, cfg.History.Enabled)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui: [not a mapping"), 0600))

	_, err := LoadConfig(path)

	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"zero progress width", func(c *Config) { c.UI.ProgressWidth = 0 }, true},
		{"negative animation speed", func(c *Config) { c.UI.AnimationSpeedSeconds = -1 }, true},
		{"zero prompt timeout", func(c *Config) { c.Input.PromptTimeoutSeconds = 0 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := DefaultConfig()
	cfg.Language = "en"
	cfg.UI.ProgressWidth = 25

	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
