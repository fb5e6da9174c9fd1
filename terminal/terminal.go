package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lixenwraith/term2d/screen"
)

// ErrNotTerminal is returned by Init when the input is not a tty
var ErrNotTerminal = errors.New("terminal: not a terminal")

// Terminal is the collaborator that shows surfaces and produces input events
type Terminal interface {
	// Init enters raw mode, hides the cursor and clears the screen
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions in cells
	Size() (cols, rows int)

	// Events delivers key and resize events
	Events() <-chan Event

	// Present writes one full frame
	Present(s *screen.Surface) error
}

// Backend names accepted by Open
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Open creates the terminal named by backend
func Open(backend string) (Terminal, error) {
	switch backend {
	case BackendANSI, "":
		return NewANSI(), nil
	case BackendTcell:
		return NewTcell()
	}
	return nil, fmt.Errorf("terminal: unknown backend %q", backend)
}

// ansiTerm implements Terminal with direct escape output over a Backend
type ansiTerm struct {
	backend Backend
	encoder *Encoder
	input   *inputReader

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewANSI creates a Terminal on stdin/stdout
func NewANSI() Terminal {
	return newANSI(newBackend())
}

func newANSI(b Backend) *ansiTerm {
	return &ansiTerm{
		backend: b,
		encoder: NewEncoder(backendWriter{b}),
		input:   newInputReader(b),
	}
}

func (t *ansiTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}

	if err := t.backend.Init(); err != nil {
		return err
	}

	t.backend.SetResizeHandler(func(w, h int) {
		if w > 0 && h > 0 {
			t.input.postResize(w, h)
		}
	})

	if err := t.encoder.writeRaw(initSequence); err != nil {
		t.backend.Fini()
		return fmt.Errorf("%w: %w", ErrFrame, err)
	}

	t.input.start()

	t.initialized = true
	return nil
}

// Fini writes the reset sequence as the last output and restores the saved mode
func (t *ansiTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true

	t.input.stop()
	t.encoder.writeRaw(ResetSequence)
	t.backend.Fini()
}

func (t *ansiTerm) Size() (int, int) {
	return t.backend.Size()
}

func (t *ansiTerm) Events() <-chan Event {
	return t.input.events()
}

// Present encodes the surface; frames after Fini are dropped
func (t *ansiTerm) Present(s *screen.Surface) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}
	return t.encoder.Encode(s)
}

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	io.WriteString(w, ResetSequence)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	resetTerminalMode()
}
