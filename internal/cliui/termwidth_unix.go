//go:build !windows

package cliui

import (
	"os"

	"golang.org/x/sys/unix"
)

// terminalWidth asks the kernel for the terminal size. Returns 0 when the
// ioctl fails or reports no columns.
func terminalWidth(f *os.File) int {
	ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return 0
	}
	return int(ws.Col)
}
