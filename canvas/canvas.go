// Package canvas is the immediate-mode drawing surface. A Canvas maps virtual pixel
// coordinates onto a screen.Surface, either two pixels per cell (half-block) or one
// (full-block), and hands finished frames to a Sink.
package canvas

import (
	"fmt"

	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/screen"
)

// Sink receives a finished surface once per frame
type Sink interface {
	Present(s *screen.Surface) error
}

// Canvas is the drawing API shared by both addressing modes
type Canvas interface {
	// Resize rebuilds the surface for a terminal of cols x rows and returns the new
	// virtual size
	Resize(cols, rows int) geom.Point
	// Size returns the virtual drawing size
	Size() geom.Point
	Clear()

	DrawPixel(p geom.Point, c color.RGBA)
	DrawChar(p geom.Point, pair color.Pair, ch rune)
	DrawText(p geom.Point, pair color.Pair, text string)
	DrawTextTransparent(p geom.Point, fg color.RGBA, text string)

	// Display presents the surface to the sink
	Display() error
	Surface() *screen.Surface
}

// Addressing selects how virtual pixels map onto cells
type Addressing uint8

const (
	AddressingHalf Addressing = iota // Two vertical pixels per cell using '▀'
	AddressingFull                   // One pixel per cell using the background color
)

func (a Addressing) String() string {
	switch a {
	case AddressingHalf:
		return "half"
	case AddressingFull:
		return "full"
	}
	return fmt.Sprintf("addressing(%d)", uint8(a))
}

// ParseAddressing accepts "half" or "full"
func ParseAddressing(s string) (Addressing, error) {
	switch s {
	case "half":
		return AddressingHalf, nil
	case "full":
		return AddressingFull, nil
	}
	return 0, fmt.Errorf("unknown addressing %q", s)
}

// New creates a canvas of the requested mode for a cols x rows terminal
func New(mode Addressing, sink Sink, cols, rows int) Canvas {
	if mode == AddressingFull {
		return NewFullBlock(sink, cols, rows)
	}
	return NewHalfBlock(sink, cols, rows)
}

// base holds what both variants share: the surface, the sink and text output
type base struct {
	surface *screen.Surface
	sink    Sink
}

func (b *base) Clear()                   { b.surface.Clear() }
func (b *base) Surface() *screen.Surface { return b.surface }

// Display hands the surface to the sink; a nil sink makes it a no-op
func (b *base) Display() error {
	if b.sink == nil {
		return nil
	}
	return b.sink.Present(b.surface)
}

// text writes one cell per rune starting at cell (x,row)
func (b *base) text(x, row int, pair color.Pair, s string) {
	for _, r := range s {
		b.surface.SetCell(geom.Point{X: x, Y: row}, r, pair)
		x++
	}
}
