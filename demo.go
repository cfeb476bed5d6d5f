package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/saluto/saluto/calc"
	"github.com/saluto/saluto/core"
	"github.com/saluto/saluto/history"
	"github.com/saluto/saluto/interactive"
	"github.com/saluto/saluto/internal/cliui"
	"github.com/saluto/saluto/localization"
)

const (
	bannerPause  = 500 * time.Millisecond
	loadDuration = 500 * time.Millisecond
	recentShown  = 5
)

// Demo drives the linear demonstration flow: language menu, banner,
// greeting, addition, item list, history, farewell. Prompts are issued
// strictly sequentially, so at most one bounded read is ever outstanding.
type Demo struct {
	logger *core.Logger
	cfg    *core.Config
	loc    *localization.Localizer
	ui     *cliui.UI
	timed  *interactive.TimedReader
}

// NewDemo creates a demo over stdin/stdout.
func NewDemo(logger *core.Logger, cfg *core.Config) *Demo {
	return NewDemoWithStreams(logger, cfg, os.Stdin, os.Stdout)
}

// NewDemoWithStreams creates a demo over arbitrary streams.
func NewDemoWithStreams(logger *core.Logger, cfg *core.Config, in io.Reader, out io.Writer) *Demo {
	return &Demo{
		logger: logger,
		cfg:    cfg,
		loc:    localization.NewLocalizer(localization.Russian),
		ui:     cliui.New(out, uiConfig(cfg)),
		timed:  interactive.NewTimedReader(in, out),
	}
}

func uiConfig(cfg *core.Config) cliui.Config {
	return cliui.Config{
		Colors:         cfg.UI.Colors,
		Animation:      cfg.UI.Animation,
		ProgressWidth:  cfg.UI.ProgressWidth,
		AnimationDelay: cfg.UI.AnimationDelay(),
	}
}

// Run executes the demo flow.
func (d *Demo) Run() error {
	lang := d.resolveLanguage()
	d.loc.SetLanguage(lang)
	d.logger.Debug("language selected: %s", lang)

	d.ui.Banner(d.loc.Get("welcome_banner"))
	d.ui.Pause(bannerPause)

	name := d.greetUser()

	calculator := calc.New(d.ui, d.loc)
	sum := calculator.Add(5, 3)
	d.ui.ShowResult(sum, d.loc.Get("calculation_result"))

	d.ui.ShowOperation(d.loc.Get("loading_items"))
	d.ui.ShowProgress(d.loc.Get("progress"), loadDuration)
	d.ui.ListItems(d.loc.Get("items_in_list"), d.loc.GetList("fruits"))

	d.recordRun(name, lang, sum)

	d.ui.PrintColored("\n👋 "+d.loc.Get("farewell"), text.Colors{text.FgCyan})
	return nil
}

// resolveLanguage takes the configured language when one is set, otherwise
// asks.
func (d *Demo) resolveLanguage() localization.Language {
	if d.cfg.Language != "" {
		lang, err := localization.Parse(d.cfg.Language)
		if err == nil {
			return lang
		}
		d.logger.Warn("configured language ignored: %v", err)
	}
	return d.selectLanguage()
}

// selectLanguage shows the numbered language menu. The first read is
// bounded: no keystroke within the timeout selects Russian. An explicitly
// blank line also selects the default, with a different notice than a
// timeout. Out-of-range entries re-prompt with no deadline and no attempt
// cap.
func (d *Demo) selectLanguage() localization.Language {
	d.ui.Println(d.loc.Get("select_language"))
	d.ui.Println("1. " + d.loc.Get("language_russian"))
	d.ui.Println("2. " + d.loc.Get("language_english"))

	line, outcome := d.timed.ReadLine(d.loc.Get("language_prompt"), d.cfg.Input.PromptTimeout(), "1")
	if outcome == interactive.OutcomeTimeout {
		d.ui.Println("")
		d.ui.Println(d.loc.Get("timeout_message"))
		d.ui.Println(d.loc.Get("using_default_language"))
		return localization.Russian
	}

	for {
		switch strings.TrimSpace(line) {
		case "1":
			return localization.Russian
		case "2":
			return localization.English
		case "":
			d.ui.Println(d.loc.Get("using_default_language"))
			return localization.Russian
		}
		d.ui.Println(d.loc.Get("invalid_language_choice"))

		var err error
		line, err = d.timed.ReadLineBlocking(d.loc.Get("language_prompt"))
		if err != nil {
			d.ui.Println(d.loc.Get("using_default_language"))
			return localization.Russian
		}
	}
}

// greetUser asks for a name, substituting a localized placeholder on
// timeout. A deliberately blank name re-prompts without a deadline, exactly
// like the menu does for invalid choices.
func (d *Demo) greetUser() string {
	defName := d.loc.Get("default_name")
	prompt := d.loc.Getf("enter_name_with_default", defName) + ": "

	name, outcome := d.timed.ReadLine(prompt, d.cfg.Input.PromptTimeout(), defName)
	if outcome == interactive.OutcomeTimeout {
		d.ui.Println("")
		d.ui.Println(d.loc.Get("timeout_message"))
		d.ui.Println(d.loc.Getf("using_default_name", defName))
		name = defName
	}

	for strings.TrimSpace(name) == "" {
		d.ui.Println(d.loc.Get("name_empty_error"))

		var err error
		name, err = d.timed.ReadLineBlocking(d.loc.Get("enter_name") + ": ")
		if err != nil {
			d.ui.Println(d.loc.Getf("using_default_name", defName))
			name = defName
			break
		}
	}
	name = strings.TrimSpace(name)

	d.ui.PrintColored(fmt.Sprintf("%s, %s!", d.loc.Get("hello"), name), text.Colors{text.FgGreen, text.Bold})
	return name
}

// recordRun appends this run to the greeting history and shows the most
// recent entries. History is best-effort and never fails the demo.
func (d *Demo) recordRun(name string, lang localization.Language, sum float64) {
	if !d.cfg.History.Enabled {
		return
	}

	store, err := history.Open(d.cfg.History.Path)
	if err != nil {
		d.logger.Warn("greeting history unavailable: %v", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(name, lang.String(), sum); err != nil {
		d.logger.Warn("failed to record greeting: %v", err)
		return
	}

	recent, err := store.Recent(recentShown)
	if err != nil {
		d.logger.Warn("failed to load recent greetings: %v", err)
		return
	}

	rows := make([][]string, 0, len(recent))
	for _, g := range recent {
		rows = append(rows, []string{
			g.Name,
			g.Language,
			fmt.Sprint(g.Sum),
			g.CreatedTime().Format("2006-01-02 15:04:05"),
		})
	}
	d.ui.Println("")
	d.ui.Table([]string{"Name", "Language", "Sum", "When"}, rows)
}
