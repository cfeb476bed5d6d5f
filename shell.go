package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/saluto/saluto/calc"
	"github.com/saluto/saluto/core"
	"github.com/saluto/saluto/history"
	"github.com/saluto/saluto/interactive"
	"github.com/saluto/saluto/internal/cliui"
	"github.com/saluto/saluto/localization"
)

const shellPrompt = "[saluto] > "

// Shell is the command-driven alternative to the linear demo flow.
type Shell struct {
	logger     *core.Logger
	config     *core.Config
	loc        *localization.Localizer
	ui         *cliui.UI
	calculator *calc.Calculator
	completer  *interactive.Completer
	reader     interactive.Reader
}

// NewShell creates the interactive shell. Readline drives the prompt when it
// can attach to the terminal; otherwise a plain buffered reader takes over.
func NewShell(logger *core.Logger, cfg *core.Config) *Shell {
	loc := localization.NewLocalizer(localization.Russian)
	if cfg.Language != "" {
		if lang, err := localization.Parse(cfg.Language); err == nil {
			loc.SetLanguage(lang)
		}
	}

	ui := cliui.New(os.Stdout, uiConfig(cfg))
	completer := interactive.NewCompleter()

	var reader interactive.Reader
	if rl, err := interactive.NewReadlineReader(shellPrompt, completer); err == nil {
		reader = rl
	} else {
		logger.Debug("readline unavailable, using fallback input: %v", err)
		reader = interactive.NewFallbackReader(os.Stdin, os.Stdout, shellPrompt)
	}

	return &Shell{
		logger:     logger,
		config:     cfg,
		loc:        loc,
		ui:         ui,
		calculator: calc.New(ui, loc),
		completer:  completer,
		reader:     reader,
	}
}

// Run reads and dispatches commands until exit or end of input.
func (s *Shell) Run() {
	defer s.reader.Close()

	s.ui.Banner(s.loc.Get("welcome_banner"))
	s.ui.Println("Type 'help' for available commands")
	s.ui.Println("")

	for {
		line, err := s.reader.ReadLine()
		if err != nil {
			break
		}
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd, ok := s.completer.Resolve(parts[0])
		if !ok {
			s.ui.Println(fmt.Sprintf("[!] Unknown command: %s", parts[0]))
			if matches := s.completer.Suggest(parts[0]); len(matches) > 0 {
				s.ui.Println("    Did you mean: " + strings.Join(matches, ", "))
			}
			s.ui.Println("Type 'help' for available commands.")
			continue
		}

		if cmd == "exit" {
			s.ui.PrintColored("👋 "+s.loc.Get("farewell"), text.Colors{text.FgCyan})
			return
		}

		if err := s.handleCommand(cmd, parts[1:]); err != nil {
			s.ui.Println(fmt.Sprintf("[!] Error: %v", err))
		}
	}
}

func (s *Shell) handleCommand(cmd string, args []string) error {
	switch cmd {
	case "help":
		s.printHelp()
	case "greet":
		return s.handleGreet(args)
	case "add":
		return s.handleAdd(args)
	case "list":
		s.ui.ListItems(s.loc.Get("items_in_list"), s.loc.GetList("fruits"))
	case "lang":
		return s.handleLang(args)
	case "history":
		return s.handleHistory(args)
	case "version":
		s.ui.Println(fmt.Sprintf("Saluto v%s\nBuild: %s\nCommit: %s", version, buildTime, gitCommit))
	case "clear":
		fmt.Print("\033[H\033[2J")
		s.ui.Banner(s.loc.Get("welcome_banner"))
	}
	return nil
}

func (s *Shell) printHelp() {
	rows := make([][]string, 0)
	for _, info := range s.completer.Commands() {
		aliases := strings.Join(info.Aliases, ", ")
		rows = append(rows, []string{info.Name, aliases, info.Description})
	}
	s.ui.Table([]string{"Command", "Aliases", "Description"}, rows)
}

func (s *Shell) handleGreet(args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		s.reader.SetPrompt(s.loc.Get("enter_name") + ": ")
		var err error
		name, err = interactive.ReadValid(s.reader, s.ui.Out(),
			func(line string) bool { return strings.TrimSpace(line) != "" },
			s.loc.Get("name_empty_error"))
		s.reader.SetPrompt(shellPrompt)
		if err != nil {
			return fmt.Errorf("no name given: %w", err)
		}
		name = strings.TrimSpace(name)
	}

	s.ui.PrintColored(fmt.Sprintf("%s, %s!", s.loc.Get("hello"), name), text.Colors{text.FgGreen, text.Bold})
	return nil
}

func (s *Shell) handleAdd(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: add <a> <b>")
	}
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[0])
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", args[1])
	}

	sum := s.calculator.Add(a, b)
	s.ui.ShowResult(sum, s.loc.Get("calculation_result"))
	return nil
}

func (s *Shell) handleLang(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: lang <ru|en>")
	}
	lang, err := localization.Parse(args[0])
	if err != nil {
		return err
	}
	s.loc.SetLanguage(lang)
	s.ui.Println(s.loc.Get(lang.DisplayKey()))
	return nil
}

func (s *Shell) handleHistory(args []string) error {
	if !s.config.History.Enabled {
		return fmt.Errorf("greeting history is disabled")
	}

	n := 10
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed <= 0 {
			return fmt.Errorf("invalid count %q", args[0])
		}
		n = parsed
	}

	store, err := history.Open(s.config.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	recent, err := store.Recent(n)
	if err != nil {
		return err
	}
	if len(recent) == 0 {
		s.ui.Println("(empty)")
		return nil
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
	s.ui.Table([]string{"Name", "Language", "Sum", "When"}, rows)
	return nil
}
