package interactive

import (
	"fmt"
	"io"
)

// Reader reads lines of user input with no deadline.
type Reader interface {
	ReadLine() (string, error)
	SetPrompt(prompt string)
	Close() error
}

// ReadValid re-prompts through r until validate accepts the line, printing
// errMsg after each rejection. The loop is unbounded: persistently invalid
// input re-prompts forever. A nil validate accepts anything.
func ReadValid(r Reader, out io.Writer, validate func(string) bool, errMsg string) (string, error) {
	for {
		line, err := r.ReadLine()
		if err != nil {
			return "", err
		}
		if validate == nil || validate(line) {
			return line, nil
		}
		fmt.Fprintln(out, errMsg)
	}
}
