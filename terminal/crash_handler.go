package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// Raw sequences for restoring a terminal that tcell could not finalize
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// HandleCrash is the unified panic handler that resets the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	// Restore terminal to sane state immediately
	EmergencyReset(os.Stdout)

	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mTERM-SNAKE CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Stderr.Sync()

	os.Exit(1)
}

// EmergencyReset attempts to restore terminal to sane state.
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort, errors ignored
	resetTerminalMode()
}
