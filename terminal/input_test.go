package terminal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain collects everything queued on the reader's channel
func drain(r *inputReader) []Event {
	var out []Event
	for {
		select {
		case ev := <-r.eventCh:
			out = append(out, ev)
		default:
			return out
		}
	}
}

func key(k Key, mod Modifier) Event {
	return Event{Type: EventKey, Key: k, Mod: mod}
}

func runeKey(r rune, mod Modifier) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r, Mod: mod}
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []Event
	}{
		{"ascii", "qa", []Event{runeKey('q', 0), runeKey('a', 0)}},
		{"utf8", "é▀", []Event{runeKey('é', 0), runeKey('▀', 0)}},
		{"enter cr", "\r", []Event{key(KeyEnter, 0)}},
		{"enter lf", "\n", []Event{key(KeyEnter, 0)}},
		{"tab", "\t", []Event{key(KeyTab, 0)}},
		{"backspace del", "\x7f", []Event{key(KeyBackspace, 0)}},
		{"backspace bs", "\x08", []Event{key(KeyBackspace, 0)}},
		{"ctrl c", "\x03", []Event{key(KeyCtrlC, ModCtrl)}},
		{"ctrl z", "\x1a", []Event{key(KeyCtrlZ, ModCtrl)}},
		{"nul swallowed", "\x00", nil},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []Event{
			key(KeyUp, 0), key(KeyDown, 0), key(KeyRight, 0), key(KeyLeft, 0),
		}},
		{"ss3 arrows", "\x1bOA\x1bOD", []Event{key(KeyUp, 0), key(KeyLeft, 0)}},
		{"ctrl arrow", "\x1b[1;5C", []Event{key(KeyRight, ModCtrl)}},
		{"shift alt arrow", "\x1b[1;4A", []Event{key(KeyUp, ModShift|ModAlt)}},
		{"home end", "\x1b[H\x1b[F\x1b[1~\x1b[4~", []Event{
			key(KeyHome, 0), key(KeyEnd, 0), key(KeyHome, 0), key(KeyEnd, 0),
		}},
		{"paging", "\x1b[5~\x1b[6~\x1b[2~\x1b[3~", []Event{
			key(KeyPageUp, 0), key(KeyPageDown, 0), key(KeyInsert, 0), key(KeyDelete, 0),
		}},
		{"function keys", "\x1bOP\x1b[15~\x1b[24~", []Event{
			key(KeyF1, 0), key(KeyF5, 0), key(KeyF12, 0),
		}},
		{"modified f5", "\x1b[15;5~", []Event{key(KeyF5, ModCtrl)}},
		{"modified f1", "\x1b[1;2P", []Event{key(KeyF1, ModShift)}},
		{"linux console f1", "\x1b[[A", []Event{key(KeyF1, 0)}},
		{"backtab", "\x1b[Z", []Event{key(KeyBacktab, ModShift)}},
		{"alt rune", "\x1bx", []Event{runeKey('x', ModAlt)}},
		{"alt escape", "\x1b\x1b", []Event{key(KeyEscape, ModAlt)}},
		{"unknown csi swallowed", "\x1b[99zq", []Event{runeKey('q', 0)}},
		{"unknown ss3 swallowed", "\x1bOzq", []Event{runeKey('q', 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newInputReader(nil)
			r.feed([]byte(tt.in))
			assert.Equal(t, tt.want, drain(r))
			assert.Empty(t, r.buf, "everything consumed")
		})
	}
}

func TestParseInput_SplitSequences(t *testing.T) {
	r := newInputReader(nil)

	// Escape sequence split across reads
	r.feed([]byte("\x1b"))
	assert.True(t, r.pendingEscape())
	assert.Empty(t, drain(r))

	r.feed([]byte("["))
	assert.Empty(t, drain(r))
	r.feed([]byte("A"))
	assert.Equal(t, []Event{key(KeyUp, 0)}, drain(r))

	// UTF-8 split mid-rune
	b := []byte("▀")
	r.feed(b[:1])
	assert.Empty(t, drain(r))
	r.feed(b[1:])
	assert.Equal(t, []Event{runeKey('▀', 0)}, drain(r))
	assert.Empty(t, r.buf)
}

func TestParseInput_LoneEscape(t *testing.T) {
	r := newInputReader(nil)
	r.feed([]byte("\x1b"))
	require.True(t, r.pendingEscape())

	// Quiet period elapsed: the reader flushes it as a key
	r.flushEscape()
	assert.Equal(t, []Event{key(KeyEscape, 0)}, drain(r))
	assert.False(t, r.pendingEscape())
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "up", KeyUp.String())
	assert.Equal(t, "f1", KeyF1.String())
	assert.Equal(t, "f12", KeyF12.String())
	assert.Equal(t, "ctrl_c", KeyCtrlC.String())
	assert.Equal(t, "page_down", KeyPageDown.String())
}
