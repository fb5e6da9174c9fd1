//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestWinsize(t *testing.T) {
	tests := []struct {
		name       string
		ws         *unix.Winsize
		err        error
		cols, rows int
	}{
		{"reported", &unix.Winsize{Col: 132, Row: 43}, nil, 132, 43},
		{"ioctl error", nil, errors.New("enotty"), fallbackCols, fallbackRows},
		{"nil result", nil, nil, fallbackCols, fallbackRows},
		{"zero columns", &unix.Winsize{Col: 0, Row: 43}, nil, fallbackCols, fallbackRows},
		{"zero rows", &unix.Winsize{Col: 132, Row: 0}, nil, fallbackCols, fallbackRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, rows := winsize(tt.ws, tt.err)
			assert.Equal(t, tt.cols, cols)
			assert.Equal(t, tt.rows, rows)
		})
	}
}

func TestCooked(t *testing.T) {
	var tm unix.Termios
	cooked(&tm)

	for _, f := range []struct {
		name string
		set  bool
	}{
		{"echo", tm.Lflag&unix.ECHO != 0},
		{"icanon", tm.Lflag&unix.ICANON != 0},
		{"isig", tm.Lflag&unix.ISIG != 0},
		{"iexten", tm.Lflag&unix.IEXTEN != 0},
		{"icrnl", tm.Iflag&unix.ICRNL != 0},
		{"opost", tm.Oflag&unix.OPOST != 0},
	} {
		assert.True(t, f.set, f.name)
	}
}

func TestWatchWinchStop(t *testing.T) {
	var calls int
	w := watchWinch(func() (int, int) { return 80, 24 }, func(int, int) { calls++ })
	w.stop()
	assert.Zero(t, calls)
}
