package main

import (
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saluto/saluto/core"
)

func newTestFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("saluto", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(newTestFlagSet(), []string{
		"-config", "/test/config.yaml",
		"-lang", "en",
		"-timeout", "2.5",
		"-no-color",
		"-no-anim",
		"-no-history",
		"-shell",
		"-debug",
		"-version",
	})
	require.NoError(t, err)

	assert.Equal(t, "/test/config.yaml", opts.configPath)
	assert.Equal(t, "en", opts.lang)
	assert.Equal(t, 2.5, opts.timeout)
	assert.True(t, opts.noColor)
	assert.True(t, opts.noAnim)
	assert.True(t, opts.noHistory)
	assert.True(t, opts.shellMode)
	assert.True(t, opts.debug)
	assert.True(t, opts.showVersion)
}

func TestParseFlags_Defaults(t *testing.T) {
	opts, err := parseFlags(newTestFlagSet(), nil)
	require.NoError(t, err)

	assert.Equal(t, "", opts.configPath)
	assert.Equal(t, "", opts.lang)
	assert.Equal(t, 0.0, opts.timeout)
	assert.False(t, opts.shellMode)
	assert.False(t, opts.showVersion)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags(newTestFlagSet(), []string{"-bogus"})
	assert.Error(t, err)
}

func TestApplyOverrides(t *testing.T) {
	cfg := core.DefaultConfig()
	err := applyOverrides(cfg, &options{
		lang:      "en",
		timeout:   2.5,
		noColor:   true,
		noAnim:    true,
		noHistory: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, 2.5, cfg.Input.PromptTimeoutSeconds)
	assert.False(t, cfg.UI.Colors)
	assert.False(t, cfg.UI.Animation)
	assert.False(t, cfg.History.Enabled)
}

func TestApplyOverrides_ZeroValuesKeepConfig(t *testing.T) {
	cfg := core.DefaultConfig()
	err := applyOverrides(cfg, &options{})
	require.NoError(t, err)

	def := core.DefaultConfig()
	assert.Equal(t, def.Language, cfg.Language)
	assert.Equal(t, def.Input.PromptTimeoutSeconds, cfg.Input.PromptTimeoutSeconds)
	assert.True(t, cfg.UI.Colors)
	assert.True(t, cfg.History.Enabled)
}

func TestApplyOverrides_RejectsUnknownLanguage(t *testing.T) {
	cfg := core.DefaultConfig()
	err := applyOverrides(cfg, &options{lang: "fr"})
	assert.Error(t, err)
	assert.NotEqual(t, "fr", cfg.Language)
}

func TestVersionDefaults(t *testing.T) {
	assert.NotEmpty(t, version)
	assert.NotEmpty(t, buildTime)
	assert.NotEmpty(t, gitCommit)
}
