package interactive

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"
)

// Outcome reports how a timed read concluded.
type Outcome int

const (
	// OutcomeLine means the user began typing before the deadline; the
	// returned value is the submitted line (terminator stripped, possibly
	// empty).
	OutcomeLine Outcome = iota
	// OutcomeTimeout means no input arrived before the deadline; the
	// returned value is the caller's default.
	OutcomeTimeout
)

// result is one completed line from the stream. err is set only when the
// stream died before the line's first byte.
type result struct {
	text string
	err  error
}

// TimedReader reads lines from a character stream with a bounded wait for
// the first byte of each line. A single goroutine owns the stream for the
// life of the value: it hands a first-byte notification and then the
// completed line to whichever read is waiting. A read that times out leaves
// the goroutine parked on the stream; the line it eventually completes is
// delivered to the next read rather than lost, and the goroutine never
// blocks process exit.
//
// Reads are not serialized: callers must issue at most one read at a time,
// or notifications and lines can pair up across calls.
type TimedReader struct {
	out     io.Writer
	started chan struct{}
	lines   chan result
}

// NewTimedReader creates a reader over the given streams. The reader owns
// in from this point on.
func NewTimedReader(in io.Reader, out io.Writer) *TimedReader {
	t := &TimedReader{
		out:     out,
		started: make(chan struct{}, 1),
		lines:   make(chan result),
	}
	go t.pump(bufio.NewReader(in))
	return t
}

// pump is the stream owner. For each line it signals started as soon as the
// first byte arrives, then blocks handing the completed line over, so it
// stays at most one line ahead of the reads. Closed channels mark the end
// of the stream.
func (t *TimedReader) pump(br *bufio.Reader) {
	defer close(t.lines)
	defer close(t.started)

	for {
		first, err := br.ReadByte()
		if err != nil {
			// Signal before depositing so the foreground never sees
			// this as a timeout.
			t.started <- struct{}{}
			t.lines <- result{err: err}
			return
		}
		t.started <- struct{}{}
		if first == '\n' {
			t.lines <- result{}
			continue
		}
		rest, err := br.ReadString('\n') // partial line on error still counts
		t.lines <- result{text: strings.TrimRight(string(first)+rest, "\r\n")}
		if err != nil {
			return
		}
	}
}

// ReadLine writes prompt, then waits up to timeout for the user to begin
// typing. Once the first byte arrives the rest of the line is read with no
// secondary deadline, however long it takes to finish. On timeout the caller
// gets def back; a line begun during an abandoned wait is picked up by the
// next read.
//
// Stream errors are swallowed: a failed read yields whatever arrived before
// the failure (usually the empty string) with OutcomeLine, never an error
// and never a fake timeout.
func (t *TimedReader) ReadLine(prompt string, timeout time.Duration, def string) (string, Outcome) {
	fmt.Fprint(t.out, prompt)

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case _, ok := <-t.started:
		if !ok {
			// Stream ended on an earlier read.
			return "", OutcomeLine
		}
		// Typing has begun; finishing the line is assumed fast, so join
		// without a second deadline.
		res := <-t.lines
		return res.text, OutcomeLine
	case <-timer.C:
		return def, OutcomeTimeout
	}
}

// ReadLineDefault is ReadLine collapsed to the classic contract: def
// substitutes for a timeout and for an explicitly blank line alike, and the
// caller learns only the resulting string. It exists for callers that do
// not want differentiated timeout/blank notices.
func (t *TimedReader) ReadLineDefault(prompt string, timeout time.Duration, def string) string {
	line, outcome := t.ReadLine(prompt, timeout, def)
	if outcome == OutcomeTimeout || strings.TrimSpace(line) == "" {
		return def
	}
	return line
}

// ReadLineBlocking reads a line with no deadline. Used for unbounded
// re-prompt loops after a validation failure; the error (io.EOF on an
// exhausted stream) lets those loops terminate instead of re-prompting a
// dead stream forever.
func (t *TimedReader) ReadLineBlocking(prompt string) (string, error) {
	fmt.Fprint(t.out, prompt)

	if _, ok := <-t.started; !ok {
		return "", io.EOF
	}
	res := <-t.lines
	if res.err != nil && res.text == "" {
		return "", res.err
	}
	return res.text, nil
}
