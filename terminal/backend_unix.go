//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Fallback geometry when the tty cannot report one
const (
	fallbackCols = 80
	fallbackRows = 24
)

// ttyBackend drives the process's own tty: stdin in raw mode for keys, stdout
// for frames, SIGWINCH for size changes
type ttyBackend struct {
	in, out *os.File
	saved   *term.State
	readBuf [256]byte
	winch   *winchWatcher
}

func newBackend() Backend {
	return &ttyBackend{in: os.Stdin, out: os.Stdout}
}

func (b *ttyBackend) fd() int { return int(b.in.Fd()) }

func (b *ttyBackend) Init() error {
	fd := b.fd()
	if !term.IsTerminal(fd) {
		return fmt.Errorf("%w: stdin", ErrNotTerminal)
	}

	saved, err := term.MakeRaw(fd)
	if err != nil {
		// A previous crash can leave the tty half raw; force cooked and retry once
		if forceCooked(fd) != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
		if saved, err = term.MakeRaw(fd); err != nil {
			return fmt.Errorf("raw mode: %w", err)
		}
	}
	b.saved = saved
	return nil
}

// Fini stops resize delivery, then puts the tty back the way Init found it
func (b *ttyBackend) Fini() {
	if b.winch != nil {
		b.winch.stop()
		b.winch = nil
	}
	if b.saved == nil {
		return
	}
	if err := term.Restore(b.fd(), b.saved); err != nil {
		forceCooked(b.fd())
	}
	b.saved = nil
}

func (b *ttyBackend) Size() (int, int) {
	return winsize(unix.IoctlGetWinsize(int(b.out.Fd()), unix.TIOCGWINSZ))
}

func (b *ttyBackend) Write(p []byte) error {
	_, err := b.out.Write(p)
	return err
}

// Read returns the next chunk of stdin. Every escapeTimeout it comes back
// empty so the reader can time out a lone ESC, post a resize, or stop
func (b *ttyBackend) Read(stopCh <-chan struct{}) ([]byte, error) {
	for {
		select {
		case <-stopCh:
			return nil, nil
		default:
		}

		ready, err := b.readable()
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return nil, err
		case !ready:
			return nil, nil
		}

		n, err := unix.Read(b.fd(), b.readBuf[:])
		switch {
		case errors.Is(err, unix.EINTR), errors.Is(err, unix.EAGAIN):
			continue
		case err != nil:
			return nil, err
		case n == 0:
			return nil, io.EOF
		}
		// The reader copies into its own buffer before the next call
		return b.readBuf[:n:n], nil
	}
}

func (b *ttyBackend) readable() (bool, error) {
	fds := []unix.PollFd{{Fd: int32(b.fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(escapeTimeout.Milliseconds()))
	return n > 0, err
}

func (b *ttyBackend) SetResizeHandler(handler func(width, height int)) {
	if b.winch != nil {
		b.winch.stop()
	}
	b.winch = watchWinch(b.Size, handler)
}

// winchWatcher forwards SIGWINCH as sizes. The signal channel holds one
// pending signal so a burst collapses, and an unchanged size is not repeated
type winchWatcher struct {
	sig  chan os.Signal
	quit chan struct{}
	done chan struct{}
}

func watchWinch(size func() (int, int), handler func(width, height int)) *winchWatcher {
	w := &winchWatcher{
		sig:  make(chan os.Signal, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
	signal.Notify(w.sig, syscall.SIGWINCH)

	go func() {
		defer close(w.done)
		defer signal.Stop(w.sig)

		lastW, lastH := size()
		for {
			select {
			case <-w.quit:
				return
			case <-w.sig:
			}
			cols, rows := size()
			if cols == lastW && rows == lastH {
				continue
			}
			lastW, lastH = cols, rows
			handler(cols, rows)
		}
	}()
	return w
}

func (w *winchWatcher) stop() {
	close(w.quit)
	<-w.done
}

// winsize converts an ioctl result, falling back when the tty reports nothing
// usable
func winsize(ws *unix.Winsize, err error) (int, int) {
	if err != nil || ws == nil || ws.Col == 0 || ws.Row == 0 {
		return fallbackCols, fallbackRows
	}
	return int(ws.Col), int(ws.Row)
}

// cooked turns on the line discipline flags raw mode clears
func cooked(t *unix.Termios) {
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag |= unix.ICRNL
	t.Oflag |= unix.OPOST
}

func forceCooked(fd int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return err
	}
	cooked(t)
	return unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}

// resetTerminalMode is the crash path: no saved state, so open the controlling
// tty directly and force cooked mode
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()
	forceCooked(int(tty.Fd()))
}
