package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/screen"
)

// tcellTerm implements Terminal on a tcell.Screen; tcell owns raw mode and teardown
type tcellTerm struct {
	scr     tcell.Screen
	eventCh chan Event
	doneCh  chan struct{}

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewTcell creates a Terminal backed by tcell's terminfo screen
func NewTcell() (Terminal, error) {
	scr, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("tcell screen: %w", err)
	}
	return newTcell(scr), nil
}

func newTcell(scr tcell.Screen) *tcellTerm {
	return &tcellTerm{
		scr:     scr,
		eventCh: make(chan Event, 256),
		doneCh:  make(chan struct{}),
	}
}

func (t *tcellTerm) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.initialized {
		return nil
	}
	if err := t.scr.Init(); err != nil {
		return fmt.Errorf("tcell init: %w", err)
	}
	t.scr.HideCursor()
	t.scr.Clear()

	go t.pollLoop()

	t.initialized = true
	return nil
}

func (t *tcellTerm) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return
	}
	t.finalized = true
	// Fini makes PollEvent return nil, ending pollLoop
	t.scr.Fini()
	<-t.doneCh
}

func (t *tcellTerm) Size() (int, int) {
	return t.scr.Size()
}

func (t *tcellTerm) Events() <-chan Event {
	return t.eventCh
}

// Present copies every cell into tcell's back buffer and shows it
func (t *tcellTerm) Present(s *screen.Surface) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.initialized || t.finalized {
		return nil
	}

	for y := 0; y < s.Height(); y++ {
		for x, c := range s.Row(y) {
			t.scr.SetContent(x, y, c.Glyph, nil, tcellStyle(c.Pair))
		}
	}
	t.scr.Show()
	return nil
}

func (t *tcellTerm) pollLoop() {
	defer close(t.doneCh)

	for {
		ev := t.scr.PollEvent()
		if ev == nil {
			t.send(Event{Type: EventClosed})
			return
		}
		if out, ok := fromTcell(ev); ok {
			t.send(out)
		}
	}
}

// send is non-blocking; a full queue drops the event
func (t *tcellTerm) send(ev Event) {
	select {
	case t.eventCh <- ev:
	default:
	}
}

func tcellStyle(p color.Pair) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(p.Fg)).
		Background(tcellColor(p.Bg))
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// tcellKeys maps tcell special keys; Ctrl letters and F-keys are ranges handled in fromTcell
var tcellKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyInsert:     KeyInsert,
}

// fromTcell translates key and resize events; everything else is ignored
func fromTcell(ev tcell.Event) (Event, bool) {
	switch e := ev.(type) {
	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true

	case *tcell.EventKey:
		mod := fromTcellMod(e.Modifiers())
		k := e.Key()

		if k == tcell.KeyRune {
			// Newer terminals report Ctrl+letter as a rune with the Ctrl modifier
			if r := e.Rune(); mod&ModCtrl != 0 && r >= 'a' && r <= 'z' {
				return Event{Type: EventKey, Key: KeyCtrlA + Key(r-'a'), Mod: mod}, true
			}
			return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune(), Mod: mod}, true
		}
		if key, ok := tcellKeys[k]; ok {
			return Event{Type: EventKey, Key: key, Mod: mod}, true
		}
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return Event{Type: EventKey, Key: KeyF1 + Key(k-tcell.KeyF1), Mod: mod}, true
		}
		if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
			return Event{Type: EventKey, Key: KeyCtrlA + Key(k-tcell.KeyCtrlA), Mod: mod | ModCtrl}, true
		}
	}
	return Event{}, false
}

func fromTcellMod(m tcell.ModMask) Modifier {
	var mod Modifier
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
