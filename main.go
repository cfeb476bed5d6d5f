// Saluto - a bilingual console greeter.
//
// Prints a welcome banner, asks for a language and a name, adds two numbers
// with a fake progress bar, and lists sample data. Every prompt waits a
// bounded time for the first keystroke and falls back to a default, so the
// demo always finishes even when nobody is at the keyboard.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/saluto/saluto/core"
	"github.com/saluto/saluto/localization"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
	gitCommit = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	lang        string
	timeout     float64
	noColor     bool
	noAnim      bool
	noHistory   bool
	shellMode   bool
	debug       bool
	showVersion bool
}

// parseFlags registers the command line flags on fs and parses args into an
// options value.
func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Configuration file path")
	fs.StringVar(&opts.lang, "lang", "", "Interface language: ru or en (skips the language menu)")
	fs.Float64Var(&opts.timeout, "timeout", 0, "Prompt timeout in seconds (overrides config)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&opts.noAnim, "no-anim", false, "Disable animations")
	fs.BoolVar(&opts.noHistory, "no-history", false, "Disable greeting history")
	fs.BoolVar(&opts.shellMode, "shell", false, "Start the interactive shell instead of the demo flow")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// applyOverrides lets flags win over the config file.
func applyOverrides(cfg *core.Config, opts *options) error {
	if opts.lang != "" {
		if _, err := localization.Parse(opts.lang); err != nil {
			return err
		}
		cfg.Language = opts.lang
	}
	if opts.timeout > 0 {
		cfg.Input.PromptTimeoutSeconds = opts.timeout
	}
	if opts.noColor {
		cfg.UI.Colors = false
	}
	if opts.noAnim {
		cfg.UI.Animation = false
	}
	if opts.noHistory {
		cfg.History.Enabled = false
	}
	return nil
}

func main() {
	opts, err := parseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if opts.showVersion {
		fmt.Printf("Saluto v%s\nBuild: %s\nCommit: %s\n", version, buildTime, gitCommit)
		os.Exit(0)
	}

	level := core.LevelInfo
	if opts.debug {
		level = core.LevelDebug
	}
	logger := core.NewLogger(level)
	defer logger.Close()

	cfg, err := core.LoadConfig(opts.configPath)
	if err != nil {
		logger.Warn("Using default configuration: %v", err)
		cfg = core.DefaultConfig()
	}

	if err := applyOverrides(cfg, opts); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}

	runID := uuid.New().String()
	logger.Debug("run %s starting (language=%q timeout=%v)", runID, cfg.Language, cfg.Input.PromptTimeout())

	if opts.shellMode {
		NewShell(logger, cfg).Run()
		return
	}

	if err := NewDemo(logger, cfg).Run(); err != nil {
		logger.Error("demo failed: %v", err)
		os.Exit(1)
	}
}
