package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/screen"
)

// ErrFrame wraps any write or flush failure while emitting a frame
var ErrFrame = errors.New("terminal: frame write failed")

// Encoder serializes a whole surface every frame. Each row starts with a cursor goto;
// colors are emitted only where the fg/bg pair changes, collapsing runs of equal
// color into a single escape followed by their glyphs
type Encoder struct {
	writer *bufio.Writer
	buf    []byte // Persistent frame buffer, reused across frames
}

// NewEncoder wraps w with a frame-sized write buffer
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		writer: bufio.NewWriterSize(w, 131072), // 128KB buffer
	}
}

// Encode writes and flushes one full frame
func (e *Encoder) Encode(s *screen.Surface) error {
	e.buf = AppendFrame(e.buf[:0], s)
	if _, err := e.writer.Write(e.buf); err != nil {
		return fmt.Errorf("%w: %w", ErrFrame, err)
	}
	if err := e.writer.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrFrame, err)
	}
	return nil
}

// Present makes Encoder usable as a canvas sink
func (e *Encoder) Present(s *screen.Surface) error {
	return e.Encode(s)
}

// writeRaw writes bytes straight through, bypassing frame encoding
func (e *Encoder) writeRaw(p string) error {
	if _, err := e.writer.WriteString(p); err != nil {
		return err
	}
	return e.writer.Flush()
}

// styleState tracks the last emitted pair within a row
type styleState struct {
	fg, bg color.RGBA
	valid  bool
}

// AppendFrame appends the encoded frame for s to dst and returns the extended slice
func AppendFrame(dst []byte, s *screen.Surface) []byte {
	var st styleState
	for y := 0; y < s.Height(); y++ {
		dst = appendCursorPos(dst, 0, y)
		st.valid = false

		for _, c := range s.Row(y) {
			dst = st.appendStyle(dst, c.Fg, c.Bg)

			r := c.Glyph
			if r < utf8.RuneSelf {
				dst = append(dst, byte(r))
			} else {
				dst = utf8.AppendRune(dst, r)
			}
		}
	}
	return dst
}

// appendStyle emits the minimal SGR for a change of fg, bg or both.
// Only RGB takes part in the comparison; alpha never reaches the wire
func (st *styleState) appendStyle(dst []byte, fg, bg color.RGBA) []byte {
	fgChanged := !st.valid || !fg.SameRGB(st.fg)
	bgChanged := !st.valid || !bg.SameRGB(st.bg)

	switch {
	case fgChanged && bgChanged:
		dst = append(dst, csiFgRGB...)
		dst = appendRGB(dst, fg)
		dst = append(dst, sepBgRGB...)
		dst = appendRGB(dst, bg)
		dst = append(dst, 'm')
	case fgChanged:
		dst = append(dst, csiFgRGB...)
		dst = appendRGB(dst, fg)
		dst = append(dst, 'm')
	case bgChanged:
		dst = append(dst, csiBgRGB...)
		dst = appendRGB(dst, bg)
		dst = append(dst, 'm')
	default:
		return dst
	}

	st.fg = fg
	st.bg = bg
	st.valid = true
	return dst
}
