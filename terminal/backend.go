package terminal

// Backend abstracts the platform-specific side of the ANSI terminal
type Backend interface {
	// Init enters raw mode
	Init() error
	// Fini restores the saved terminal mode
	Fini()

	Size() (width, height int)

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed, or an error
	// occurs. An empty result with nil error is a poll timeout
	Read(stopCh <-chan struct{}) ([]byte, error)

	// SetResizeHandler registers a callback for terminal resize events
	SetResizeHandler(handler func(width, height int))
}

// backendWriter adapts Backend to io.Writer for the encoder
type backendWriter struct {
	b Backend
}

func (w backendWriter) Write(p []byte) (int, error) {
	if err := w.b.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}
