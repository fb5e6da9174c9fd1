// Package screen holds the display surface: a row-major grid of cells that drawing
// writes into and the encoder reads from once per frame.
package screen

import (
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
)

// Cell is one terminal character position
type Cell struct {
	Glyph rune
	color.Pair
}

// DefaultCell is a space on black
var DefaultCell = Cell{
	Glyph: ' ',
	Pair:  color.Pair{Fg: color.Black, Bg: color.Black},
}

// Surface owns the cell array; it is not safe for concurrent use
type Surface struct {
	cells  []Cell
	width  int
	height int
}

// New creates a default-filled surface of cols x rows
func New(cols, rows int) *Surface {
	s := &Surface{}
	s.Resize(cols, rows)
	return s
}

// Resize discards the old buffer and allocates a default-filled one
func (s *Surface) Resize(cols, rows int) {
	cols = max(cols, 0)
	rows = max(rows, 0)
	s.cells = make([]Cell, cols*rows)
	s.width = cols
	s.height = rows
	s.Clear()
}

// Clear resets all cells to default using exponential copy
func (s *Surface) Clear() {
	if len(s.cells) == 0 {
		return
	}
	s.cells[0] = DefaultCell
	for filled := 1; filled < len(s.cells); filled *= 2 {
		copy(s.cells[filled:], s.cells[:filled])
	}
}

// inBounds returns true if in surface bounds
func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// SetCell replaces the glyph and composites fg and bg separately over the stored pair.
// Out-of-range writes are dropped
func (s *Surface) SetCell(p geom.Point, glyph rune, pair color.Pair) {
	if !s.inBounds(p.X, p.Y) {
		return
	}
	dst := &s.cells[p.Y*s.width+p.X]
	dst.Glyph = glyph
	dst.Pair = pair.Over(dst.Pair)
}

// Cell returns a snapshot of the cell at p; out of range yields DefaultCell and false
func (s *Surface) Cell(p geom.Point) (Cell, bool) {
	if !s.inBounds(p.X, p.Y) {
		return DefaultCell, false
	}
	return s.cells[p.Y*s.width+p.X], true
}

// Row returns row y as a read-only view, nil when out of range
func (s *Surface) Row(y int) []Cell {
	if y < 0 || y >= s.height {
		return nil
	}
	off := y * s.width
	return s.cells[off : off+s.width : off+s.width]
}

func (s *Surface) Size() geom.Point { return geom.Point{X: s.width, Y: s.height} }
func (s *Surface) Width() int       { return s.width }
func (s *Surface) Height() int      { return s.height }
