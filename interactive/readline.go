package interactive

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// ReadlineReader wraps readline for shell input with history and completion.
type ReadlineReader struct {
	rl     *readline.Instance
	prompt string
}

// historyPath returns the shell history file location, falling back to /tmp
// when the home directory is unavailable.
func historyPath() string {
	if u, err := user.Current(); err == nil {
		dir := filepath.Join(u.HomeDir, ".saluto")
		os.MkdirAll(dir, 0755)
		return filepath.Join(dir, "history")
	}
	return "/tmp/saluto_history"
}

// NewReadlineReader creates a readline-backed reader. The completer offers
// the given command names and aliases at the prompt.
func NewReadlineReader(prompt string, completer *Completer) (*ReadlineReader, error) {
	items := make([]readline.PrefixCompleterInterface, 0)
	if completer != nil {
		for name := range completer.commands {
			items = append(items, readline.PcItem(name))
		}
		for _, info := range completer.commands {
			for _, alias := range info.Aliases {
				items = append(items, readline.PcItem(alias))
			}
		}
	}

	config := &readline.Config{
		Prompt:            prompt,
		HistoryFile:       historyPath(),
		AutoComplete:      readline.NewPrefixCompleter(items...),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	}

	rl, err := readline.NewEx(config)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &ReadlineReader{rl: rl, prompt: prompt}, nil
}

// SetPrompt updates the prompt.
func (r *ReadlineReader) SetPrompt(prompt string) {
	r.prompt = prompt
	r.rl.SetPrompt(prompt)
}

// ReadLine reads a line with history and completion.
func (r *ReadlineReader) ReadLine() (string, error) {
	line, err := r.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return "", io.EOF
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Close closes the readline instance.
func (r *ReadlineReader) Close() error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}

// FallbackReader is a plain buffered reader for streams readline cannot
// drive (pipes, redirects, tests).
type FallbackReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	prompt  string
}

// NewFallbackReader creates a reader over the given streams.
func NewFallbackReader(in io.Reader, out io.Writer, prompt string) *FallbackReader {
	return &FallbackReader{
		scanner: bufio.NewScanner(in),
		out:     out,
		prompt:  prompt,
	}
}

// ReadLine prints the prompt and reads one line.
func (f *FallbackReader) ReadLine() (string, error) {
	fmt.Fprint(f.out, f.prompt)
	if !f.scanner.Scan() {
		return "", io.EOF
	}
	return strings.TrimSpace(f.scanner.Text()), nil
}

// SetPrompt updates the prompt.
func (f *FallbackReader) SetPrompt(prompt string) {
	f.prompt = prompt
}

// Close does nothing for the fallback reader.
func (f *FallbackReader) Close() error {
	return nil
}
