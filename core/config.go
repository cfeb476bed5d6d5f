package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration.
type Config struct {
	// Interface language: "ru" or "en". Empty means ask at startup.
	Language string `yaml:"language"`

	// Display settings
	UI UIConfig `yaml:"ui"`

	// Prompt settings
	Input InputConfig `yaml:"input"`

	// Greeting history settings
	History HistoryConfig `yaml:"history"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig holds display settings.
type UIConfig struct {
	Colors                bool    `yaml:"colors"`
	Animation             bool    `yaml:"animation"`
	ProgressWidth         int     `yaml:"progress_width"`
	AnimationSpeedSeconds float64 `yaml:"animation_speed"`
}

// AnimationDelay returns the per-item animation delay.
func (c UIConfig) AnimationDelay() time.Duration {
	return time.Duration(c.AnimationSpeedSeconds * float64(time.Second))
}

// InputConfig holds prompt settings.
type InputConfig struct {
	// How long a prompt waits for the first keystroke before falling back
	// to its default, in seconds.
	PromptTimeoutSeconds float64 `yaml:"prompt_timeout"`
}

// PromptTimeout returns the prompt timeout as a duration.
func (c InputConfig) PromptTimeout() time.Duration {
	return time.Duration(c.PromptTimeoutSeconds * float64(time.Second))
}

// HistoryConfig holds greeting history settings.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Language: "",
		UI: UIConfig{
			Colors:                true,
			Animation:             true,
			ProgressWidth:         20,
			AnimationSpeedSeconds: 0.2,
		},
		Input: InputConfig{
			PromptTimeoutSeconds: 10,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    defaultHistoryPath(),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// defaultHistoryPath places the history database under ~/.saluto.
func defaultHistoryPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "saluto.db")
	}
	return filepath.Join(homeDir, ".saluto", "saluto.db")
}

// LoadConfig loads configuration from a YAML file. An empty path yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the application cannot run
// with.
func (c *Config) Validate() error {
	if c.UI.ProgressWidth <= 0 {
		return fmt.Errorf("invalid progress_width %d: must be positive", c.UI.ProgressWidth)
	}
	if c.UI.AnimationSpeedSeconds < 0 {
		return fmt.Errorf("invalid animation_speed %v: must not be negative", c.UI.AnimationSpeedSeconds)
	}
	if c.Input.PromptTimeoutSeconds <= 0 {
		return fmt.Errorf("invalid prompt_timeout %v: must be positive", c.Input.PromptTimeoutSeconds)
	}
	if _, err := ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	return nil
}

// SaveConfig writes configuration to a YAML file.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
