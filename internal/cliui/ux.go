// Package cliui renders the console experience: colors, the welcome banner,
// progress animation, and item listings. Output respects NO_COLOR, TERM=dumb,
// and non-TTY destinations with plain fallbacks.
package cliui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/text"
)

// Config controls rendering behavior.
type Config struct {
	Colors         bool
	Animation      bool
	ProgressWidth  int
	AnimationDelay time.Duration
}

// DefaultConfig returns the rendering defaults.
func DefaultConfig() Config {
	return Config{
		Colors:         true,
		Animation:      true,
		ProgressWidth:  20,
		AnimationDelay: 200 * time.Millisecond,
	}
}

// UI writes formatted output to a single destination.
type UI struct {
	out    io.Writer
	cfg    Config
	colors bool
}

// New creates a UI over out. Colors are applied only when the config allows
// them and the destination supports them.
func New(out io.Writer, cfg Config) *UI {
	return &UI{
		out:    out,
		cfg:    cfg,
		colors: cfg.Colors && colorsSupported(out),
	}
}

// Out returns the UI's output destination.
func (u *UI) Out() io.Writer {
	return u.out
}

// colorsSupported checks whether colored output makes sense for out.
func colorsSupported(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	if f, ok := out.(*os.File); ok {
		return DetectTTY(f)
	}
	return false
}

// DetectTTY reports whether f is attached to a terminal.
func DetectTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}

// TermWidth returns the terminal width: COLUMNS override first, then an
// ioctl on stdout, then 80.
func TermWidth() int {
	if cols := os.Getenv("COLUMNS"); cols != "" {
		if w, err := strconv.Atoi(cols); err == nil && w > 0 {
			return w
		}
	}
	if DetectTTY(os.Stdout) {
		if w := terminalWidth(os.Stdout); w > 0 {
			return w
		}
	}
	return 80
}

// Ellipsize truncates s to maxLen runes with a trailing ellipsis.
func Ellipsize(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}
	return string(runes[:maxLen-3]) + "..."
}

// paint applies c to s when colors are enabled.
func (u *UI) paint(s string, c text.Colors) string {
	if !u.colors {
		return s
	}
	return c.Sprint(s)
}

// Println writes a plain line.
func (u *UI) Println(s string) {
	fmt.Fprintln(u.out, s)
}

// PrintColored writes a line in the given colors.
func (u *UI) PrintColored(s string, c text.Colors) {
	fmt.Fprintln(u.out, u.paint(s, c))
}

// Banner prints the boxed welcome banner.
func (u *UI) Banner(msg string) {
	// Leave room for the frame on narrow terminals.
	if limit := TermWidth() - 12; limit > 3 {
		msg = Ellipsize(msg, limit)
	}

	inner := text.RuneWidthWithoutEscSequences(msg) + 10
	pad := strings.Repeat(" ", 5)

	box := fmt.Sprintf("╔%s╗\n║%s%s%s║\n╚%s╝",
		strings.Repeat("═", inner),
		pad, msg, pad,
		strings.Repeat("═", inner))

	fmt.Fprintf(u.out, "\n%s\n\n", u.paint(box, text.Colors{text.FgCyan}))
}

// ShowOperation announces an operation about to run.
func (u *UI) ShowOperation(op string) {
	fmt.Fprintf(u.out, "\n%s\n", u.paint(op, text.Colors{text.FgYellow}))
}

// ShowResult prints an operation result with its prefix.
func (u *UI) ShowResult(result interface{}, prefix string) {
	if u.colors {
		fmt.Fprintf(u.out, "\n%s %s %s\n",
			u.paint("✨", text.Colors{text.FgGreen}),
			u.paint(prefix, text.Colors{text.FgGreen}),
			u.paint(fmt.Sprint(result), text.Colors{text.FgGreen, text.Bold}))
		return
	}
	fmt.Fprintf(u.out, "\n%s %v\n", prefix, result)
}

// Pause sleeps for d when animation is enabled.
func (u *UI) Pause(d time.Duration) {
	if u.cfg.Animation {
		time.Sleep(d)
	}
}
