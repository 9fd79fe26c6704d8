package tui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// streamsAreTerminals reports whether in and out are terminal file descriptors
// and a controlling terminal is available.
func streamsAreTerminals(in io.Reader, out io.Writer) bool {
	if !isTerminal(in) || !isTerminal(out) {
		return false
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}

func isTerminal(stream interface{}) bool {
	f, ok := stream.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
