// Package app is the event pump shared by the binaries: it owns the terminal
// lifecycle, turns ticks and input into Events on one bounded queue, and feeds
// them to a Controller from a single goroutine.
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/term2d/canvas"
	"github.com/lixenwraith/term2d/config"
	"github.com/lixenwraith/term2d/terminal"
)

// ErrQuit is returned by a Controller to end the loop without error
var ErrQuit = errors.New("app: quit")

// queueSize bounds the event queue shared by all producers
const queueSize = 1024

// Kind identifies the event source
type Kind uint8

const (
	KindKey Kind = iota
	KindResize
	KindTick
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindResize:
		return "resize"
	case KindTick:
		return "tick"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Event is one unit of work for the Controller
type Event struct {
	Kind Kind

	// KindKey
	Key  terminal.Key
	Rune rune
	Mod  terminal.Modifier

	// KindResize, in cells
	Width  int
	Height int
}

// IsQuit reports the conventional quit keys: q and Ctrl+C
func (e Event) IsQuit() bool {
	if e.Kind != KindKey {
		return false
	}
	return e.Key == terminal.KeyCtrlC || (e.Key == terminal.KeyRune && e.Rune == 'q' && e.Mod == 0)
}

// Controller draws on the canvas in response to events. It calls Display when a
// frame is complete
type Controller interface {
	Update(c canvas.Canvas, ev Event) error
}

// ControllerFunc adapts a function to Controller
type ControllerFunc func(c canvas.Canvas, ev Event) error

func (f ControllerFunc) Update(c canvas.Canvas, ev Event) error { return f(c, ev) }

// Run opens the terminal named by cfg.Backend and runs ctrl until it quits
func Run(ctx context.Context, cfg config.Config, ctrl Controller) error {
	term, err := terminal.Open(cfg.Backend)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}
	return RunWith(ctx, term, cfg, ctrl)
}

// RunWith runs the loop on an already constructed terminal. The terminal is
// initialized here and finalized on return
func RunWith(ctx context.Context, term terminal.Terminal, cfg config.Config, ctrl Controller) error {
	mode, err := canvas.ParseAddressing(cfg.Addressing)
	if err != nil {
		return fmt.Errorf("app: %w", err)
	}

	if err := term.Init(); err != nil {
		return fmt.Errorf("app: init terminal: %w", err)
	}
	defer term.Fini()

	cols, rows := term.Size()
	cv := canvas.New(mode, term, cols, rows)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	q := newQueue(queueSize)
	q.events <- message{ev: Event{Kind: KindResize, Width: cols, Height: rows}}

	if period := tickPeriod(cfg.FPS); period > 0 {
		Go(func() { q.tick(ctx, period) })
	}
	Go(func() { q.forward(ctx, term.Events()) })

	log.Printf("app: running %s/%s at %d fps on %dx%d", cfg.Backend, mode, cfg.FPS, cols, rows)
	return q.consume(ctx, cv, ctrl)
}

// message is what producers push: an event, or the end of input
type message struct {
	ev     Event
	closed bool
	err    error
}

type queue struct {
	events chan message
}

// tickPeriod is the tick interval for fps, capped at config.MaxFPS; zero
// disables the clock
func tickPeriod(fps int) time.Duration {
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(min(fps, config.MaxFPS))
}

func newQueue(size int) *queue {
	return &queue{events: make(chan message, size)}
}

// tick emits KindTick every period. A full queue drops the tick
func (q *queue) tick(ctx context.Context, period time.Duration) {
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			select {
			case q.events <- message{ev: Event{Kind: KindTick}}:
			default:
			}
		}
	}
}

// forward translates terminal events until input ends or ctx is done
func (q *queue) forward(ctx context.Context, in <-chan terminal.Event) {
	for {
		var ev terminal.Event
		select {
		case <-ctx.Done():
			return
		case ev = <-in:
		}

		var msg message
		switch ev.Type {
		case terminal.EventKey:
			msg.ev = Event{Kind: KindKey, Key: ev.Key, Rune: ev.Rune, Mod: ev.Mod}
		case terminal.EventResize:
			msg.ev = Event{Kind: KindResize, Width: ev.Width, Height: ev.Height}
		case terminal.EventError:
			msg = message{closed: true, err: ev.Err}
		case terminal.EventClosed:
			msg = message{closed: true}
		default:
			continue
		}

		select {
		case <-ctx.Done():
			return
		case q.events <- msg:
		}
		if msg.closed {
			return
		}
	}
}

// consume is the single render loop. Each event runs to completion before the
// next is received
func (q *queue) consume(ctx context.Context, cv canvas.Canvas, ctrl Controller) error {
	for {
		var msg message
		select {
		case <-ctx.Done():
			log.Printf("app: stopped: %v", ctx.Err())
			return nil
		case msg = <-q.events:
		}

		if msg.closed {
			if msg.err != nil {
				return fmt.Errorf("app: input: %w", msg.err)
			}
			log.Printf("app: input closed")
			return nil
		}

		if msg.ev.Kind == KindResize {
			cv.Resize(msg.ev.Width, msg.ev.Height)
		}

		if err := ctrl.Update(cv, msg.ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
	}
}
