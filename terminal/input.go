package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
	"sync"
	"time"
	"unicode/utf8"
)

// EventType distinguishes input event categories
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventError  // Read error
	EventClosed // Input closed
)

// Event represents a terminal input event
type Event struct {
	Type   EventType
	Key    Key
	Rune   rune
	Mod    Modifier
	Width  int   // For EventResize
	Height int   // For EventResize
	Err    error // For EventError
}

// inputReader turns raw stdin bytes into events
type inputReader struct {
	backend Backend
	eventCh chan Event
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool

	// Latest unsent size; a burst of SIGWINCH collapses to one event
	resizeMu sync.Mutex
	resizeW  int
	resizeH  int
	resizeCh chan struct{}

	// Persistent buffer for stream assembly, partial UTF-8 and escape sequences
	// carry over between reads
	buf []byte
}

// escapeTimeout is the quiet period after ESC that makes it a standalone key
const escapeTimeout = 50 * time.Millisecond

func newInputReader(backend Backend) *inputReader {
	return &inputReader{
		backend:  backend,
		eventCh:  make(chan Event, 256),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		resizeCh: make(chan struct{}, 1),
		buf:      make([]byte, 0, 256),
	}
}

// start begins reading input in a goroutine
func (r *inputReader) start() {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return
	}
	r.running = true
	r.mu.Unlock()

	go r.readLoop()
}

// stop signals the reader to stop and waits briefly for it
func (r *inputReader) stop() {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return
	}
	r.running = false
	r.mu.Unlock()

	close(r.stopCh)
	// Don't block forever if a read is stuck
	select {
	case <-r.doneCh:
	case <-time.After(100 * time.Millisecond):
	}
}

func (r *inputReader) events() <-chan Event {
	return r.eventCh
}

func (r *inputReader) readLoop() {
	defer close(r.doneCh)

	defer func() {
		if rec := recover(); rec != nil {
			EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mINPUT READER CRASHED: %v\x1b[0m\r\n", rec)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var escSince time.Time
	for {
		select {
		case <-r.resizeCh:
			r.flushResize()
		default:
		}

		data, err := r.backend.Read(r.stopCh)
		if err != nil {
			r.sendEvent(Event{Type: EventError, Err: err})
			return
		}

		if len(data) == 0 {
			select {
			case <-r.stopCh:
				// Nobody may be listening after stop
				select {
				case r.eventCh <- Event{Type: EventClosed}:
				default:
				}
				return
			default:
			}
			// Poll timeout: a lone pending ESC past the quiet period is the Escape key
			if r.pendingEscape() && time.Since(escSince) >= escapeTimeout {
				r.flushEscape()
			}
			continue
		}

		r.feed(data)
		if r.pendingEscape() {
			escSince = time.Now()
		}
	}
}

// feed appends data, parses what it can and compacts the buffer
func (r *inputReader) feed(data []byte) {
	r.buf = append(r.buf, data...)
	consumed := r.parseInput(r.buf)
	if consumed > 0 {
		n := copy(r.buf, r.buf[consumed:])
		r.buf = r.buf[:n]
	}
}

func (r *inputReader) pendingEscape() bool {
	return len(r.buf) == 1 && r.buf[0] == 0x1b
}

func (r *inputReader) flushEscape() {
	r.sendEvent(Event{Type: EventKey, Key: KeyEscape})
	r.buf = r.buf[:0]
}

// parseInput parses raw bytes into events and returns bytes consumed, stopping on an
// incomplete sequence
func (r *inputReader) parseInput(data []byte) int {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		// Fast path: printable ASCII
		case b >= 0x20 && b < 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rune(b)})
			i++

		case b == 0x1b:
			// Need at least 2 bytes to determine sequence type
			if i+1 >= n {
				return i
			}
			consumed, ev := parseEscape(data[i:])
			if consumed == 0 {
				return i
			}
			// Unknown sequences are swallowed
			if ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i += consumed

		case b < 0x20:
			if ev := parseControl(b); ev.Key != KeyNone {
				r.sendEvent(ev)
			}
			i++

		case b == 0x7f:
			r.sendEvent(Event{Type: EventKey, Key: KeyBackspace})
			i++

		default:
			if !utf8.FullRune(data[i:]) {
				return i
			}
			rn, size := utf8.DecodeRune(data[i:])
			if rn != utf8.RuneError || size > 1 {
				r.sendEvent(Event{Type: EventKey, Key: KeyRune, Rune: rn})
			}
			i += size
		}
	}
	return i
}

// parseEscape parses a sequence starting at ESC, returns 0 on incomplete
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}

	switch {
	case data[1] == 0x1b:
		return 2, Event{Type: EventKey, Key: KeyEscape, Mod: ModAlt}
	case data[1] == '[':
		return parseCSI(data)
	case data[1] == 'O':
		return parseSS3(data)
	case data[1] < 0x20:
		ev := parseControl(data[1])
		ev.Mod |= ModAlt
		return 2, ev
	case data[1] < 0x7f:
		return 2, Event{Type: EventKey, Key: KeyRune, Rune: rune(data[1]), Mod: ModAlt}
	}

	// ESC followed by DEL or a non-ASCII byte: report ESC, let the rest parse normally
	return 1, Event{Type: EventKey, Key: KeyEscape}
}

// parseCSI scans to the final byte and looks the parameters up
func parseCSI(data []byte) (int, Event) {
	const maxScan = 16

	for end := 2; end < len(data); end++ {
		b := data[end]
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			if key, mod, ok := lookupCSI(data[2 : end+1]); ok {
				return end + 1, Event{Type: EventKey, Key: key, Mod: mod}
			}
			return end + 1, Event{Type: EventKey, Key: KeyNone}
		}
		if b < 0x20 || b > 0x7e || end >= maxScan {
			// Malformed: drop the introducer and resync
			return 2, Event{Type: EventKey, Key: KeyNone}
		}
	}
	return 0, Event{}
}

// parseSS3 parses ESC O x, consuming unknown finals too
func parseSS3(data []byte) (int, Event) {
	if len(data) < 3 {
		return 0, Event{}
	}
	if key, mod, ok := lookupSS3(data[2:3]); ok {
		return 3, Event{Type: EventKey, Key: key, Mod: mod}
	}
	return 3, Event{Type: EventKey, Key: KeyNone}
}

// parseControl maps C0 control bytes to keys
func parseControl(b byte) Event {
	switch b {
	case 0x08, 0x7f:
		return Event{Type: EventKey, Key: KeyBackspace}
	case 0x09:
		return Event{Type: EventKey, Key: KeyTab}
	case 0x0a, 0x0d:
		return Event{Type: EventKey, Key: KeyEnter}
	case 0x1b:
		return Event{Type: EventKey, Key: KeyEscape}
	}
	if b >= 0x01 && b <= 0x1a {
		return Event{Type: EventKey, Key: KeyCtrlA + Key(b-0x01), Mod: ModCtrl}
	}
	return Event{Type: EventKey, Key: KeyNone}
}

// sendEvent blocks until the consumer takes ev or the reader stops. A resize
// posted while blocked goes out first
func (r *inputReader) sendEvent(ev Event) {
	for {
		select {
		case r.eventCh <- ev:
			return
		case <-r.resizeCh:
			r.flushResize()
		case <-r.stopCh:
			return
		}
	}
}

// postResize records the latest size and wakes the reader; it never blocks
func (r *inputReader) postResize(w, h int) {
	r.resizeMu.Lock()
	r.resizeW, r.resizeH = w, h
	r.resizeMu.Unlock()

	select {
	case r.resizeCh <- struct{}{}:
	default:
	}
}

func (r *inputReader) flushResize() {
	r.resizeMu.Lock()
	ev := Event{Type: EventResize, Width: r.resizeW, Height: r.resizeH}
	r.resizeMu.Unlock()

	select {
	case r.eventCh <- ev:
	case <-r.stopCh:
	}
}
