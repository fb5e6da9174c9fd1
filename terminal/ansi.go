package terminal

import (
	"github.com/lixenwraith/term2d/color"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiSGR0  = []byte("\x1b[0m")
	csiClear = []byte("\x1b[2J")
	csiHome  = []byte("\x1b[1;1H")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Color prefixes, followed by R;G;Bm
	csiFgRGB = []byte("\x1b[38;2;")
	csiBgRGB = []byte("\x1b[48;2;")
	sepBgRGB = []byte(";48;2;")
)

// ResetSequence is written once on teardown: attributes off, clear, home, cursor on
const ResetSequence = "\x1b[0m\x1b[2J\x1b[1;1H\x1b[?25h"

// initSequence hides the cursor, homes it and clears the screen
const initSequence = "\x1b[?25l\x1b[1;1H\x1b[2J"

// appendInt appends a non-negative integer without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(b, byte(n)+'0')
	}
	if n < 100 {
		return append(b, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(b, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(b, buf[i:]...)
}

// appendCursorPos appends a 1-based goto for a 0-indexed position
func appendCursorPos(b []byte, x, y int) []byte {
	b = append(b, csi...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	return append(b, 'H')
}

// appendRGB appends "R;G;B" parameters
func appendRGB(b []byte, c color.RGBA) []byte {
	b = appendInt(b, int(c.R))
	b = append(b, ';')
	b = appendInt(b, int(c.G))
	b = append(b, ';')
	return appendInt(b, int(c.B))
}
