// Package terminal turns a screen.Surface into ANSI truecolor output and owns the
// terminal lifecycle around it.
//
// Features:
//   - Run-length color collapsing encoder (fg-only, bg-only or combined SGR)
//   - Raw ANSI backend over golang.org/x/term and golang.org/x/sys/unix
//   - tcell backend for terminals where direct escapes are not wanted
//   - Raw stdin input parsing with escape sequence handling
//   - SIGWINCH resize detection
//   - Fixed reset sequence on exit and on panic
//
// The ANSI backend bypasses terminfo entirely, targeting xterm-compatible terminals.
package terminal
