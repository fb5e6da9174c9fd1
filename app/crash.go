package app

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/lixenwraith/term2d/terminal"
)

// Crash output targets, replaced in tests
var (
	crashOut  io.Writer = os.Stdout
	crashErr  io.Writer = os.Stderr
	crashExit           = os.Exit
)

// HandleCrash resets the terminal, prints r and the stack to stderr and exits.
// A nil r is ignored so it can be called straight from a deferred recover
func HandleCrash(r any) {
	if r == nil {
		return
	}

	terminal.EmergencyReset(crashOut)

	// Raw mode may still be on, so lines end in \r\n
	fmt.Fprintf(crashErr, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashErr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	if f, ok := crashErr.(*os.File); ok {
		f.Sync()
	}

	crashExit(1)
}

// Go runs fn in a new goroutine that routes panics to HandleCrash.
// Use it instead of the go keyword for anything running while the terminal is raw
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
