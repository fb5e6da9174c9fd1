package terminal

import "strconv"

// Key represents a parsed input key
type Key uint16

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBacktab // Shift+Tab
	KeyBackspace
	KeyDelete

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// Ctrl+letter, contiguous so KeyCtrlA+n maps byte 0x01+n
	KeyCtrlA
	KeyCtrlB
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlF
	KeyCtrlG
	KeyCtrlH
	KeyCtrlI
	KeyCtrlJ
	KeyCtrlK
	KeyCtrlL
	KeyCtrlM
	KeyCtrlN
	KeyCtrlO
	KeyCtrlP
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyCtrlX
	KeyCtrlY
	KeyCtrlZ
)

// Modifier flags
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << 0
	ModAlt   Modifier = 1 << 1
	ModCtrl  Modifier = 1 << 2
)

var keyNames = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBacktab:   "backtab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "page_up",
	KeyPageDown:  "page_down",
	KeyInsert:    "insert",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	switch {
	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	case k >= KeyCtrlA && k <= KeyCtrlZ:
		return "ctrl_" + string(rune('a'+k-KeyCtrlA))
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// escapeSequence maps the bytes after ESC [ or ESC O to a key
type escapeSequence struct {
	key Key
	mod Modifier
}

// xterm modifier parameter: 1 + (shift | alt<<1 | ctrl<<2)
func xtermMod(param int) Modifier {
	return Modifier(param - 1)
}

// Letter-terminated CSI finals: arrows, home/end and SS3-style F1-F4
var csiFinals = map[byte]Key{
	'A': KeyUp,
	'B': KeyDown,
	'C': KeyRight,
	'D': KeyLeft,
	'H': KeyHome,
	'F': KeyEnd,
	'P': KeyF1,
	'Q': KeyF2,
	'R': KeyF3,
	'S': KeyF4,
}

// Tilde-terminated CSI codes
var csiTilde = map[int]Key{
	1:  KeyHome,
	2:  KeyInsert,
	3:  KeyDelete,
	4:  KeyEnd,
	5:  KeyPageUp,
	6:  KeyPageDown,
	7:  KeyHome,
	8:  KeyEnd,
	11: KeyF1,
	12: KeyF2,
	13: KeyF3,
	14: KeyF4,
	15: KeyF5,
	17: KeyF6,
	18: KeyF7,
	19: KeyF8,
	20: KeyF9,
	21: KeyF10,
	23: KeyF11,
	24: KeyF12,
}

var csiMap = buildCSIMap()

// ss3Map covers ESC O sequences sent in application cursor mode
var ss3Map = map[string]escapeSequence{
	"A": {KeyUp, ModNone},
	"B": {KeyDown, ModNone},
	"C": {KeyRight, ModNone},
	"D": {KeyLeft, ModNone},
	"H": {KeyHome, ModNone},
	"F": {KeyEnd, ModNone},
	"P": {KeyF1, ModNone},
	"Q": {KeyF2, ModNone},
	"R": {KeyF3, ModNone},
	"S": {KeyF4, ModNone},
	"M": {KeyEnter, ModNone}, // Keypad Enter
}

// buildCSIMap expands the base tables with every xterm modifier parameter (2..8)
func buildCSIMap() map[string]escapeSequence {
	m := make(map[string]escapeSequence, 256)

	for final, key := range csiFinals {
		f := string(final)
		// Bare ESC [ P..S is not F1-F4, only the modified form is
		if key < KeyF1 || key > KeyF4 {
			m[f] = escapeSequence{key, ModNone}
		}
		for p := 2; p <= 8; p++ {
			m["1;"+strconv.Itoa(p)+f] = escapeSequence{key, xtermMod(p)}
		}
	}

	for code, key := range csiTilde {
		c := strconv.Itoa(code)
		m[c+"~"] = escapeSequence{key, ModNone}
		for p := 2; p <= 8; p++ {
			m[c+";"+strconv.Itoa(p)+"~"] = escapeSequence{key, xtermMod(p)}
		}
	}

	m["Z"] = escapeSequence{KeyBacktab, ModShift}

	// Linux console function keys
	m["[A"] = escapeSequence{KeyF1, ModNone}
	m["[B"] = escapeSequence{KeyF2, ModNone}
	m["[C"] = escapeSequence{KeyF3, ModNone}
	m["[D"] = escapeSequence{KeyF4, ModNone}
	m["[E"] = escapeSequence{KeyF5, ModNone}
	return m
}

// lookupCSI performs map lookup without allocating; the string([]byte) conversion
// inline in a map index is optimized away by the compiler
func lookupCSI(seq []byte) (Key, Modifier, bool) {
	if s, ok := csiMap[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}

func lookupSS3(seq []byte) (Key, Modifier, bool) {
	if s, ok := ss3Map[string(seq)]; ok {
		return s.key, s.mod, true
	}
	return KeyNone, ModNone, false
}
