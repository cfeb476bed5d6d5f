//go:build windows

package cliui

import "os"

// terminalWidth is unavailable on Windows; COLUMNS or the default apply.
func terminalWidth(f *os.File) int {
	return 0
}
