package canvas

import (
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/screen"
)

// HalfGlyph is the upper half block: fg paints the top pixel, bg the bottom
const HalfGlyph = '▀'

// HalfBlock packs two vertical pixels into each cell
type HalfBlock struct {
	base
}

// NewHalfBlock creates a half-block canvas with a virtual size of cols x 2*rows
func NewHalfBlock(sink Sink, cols, rows int) *HalfBlock {
	return &HalfBlock{base{surface: screen.New(cols, rows), sink: sink}}
}

func (h *HalfBlock) Resize(cols, rows int) geom.Point {
	h.surface.Resize(cols, rows)
	return h.Size()
}

func (h *HalfBlock) Size() geom.Point {
	s := h.surface.Size()
	return geom.Point{X: s.X, Y: s.Y * 2}
}

// DrawPixel blends c into the top (even y) or bottom (odd y) half of cell (x, y/2)
func (h *HalfBlock) DrawPixel(p geom.Point, c color.RGBA) {
	if !p.In(h.Size()) {
		return
	}
	pair := color.Pair{Fg: c, Bg: color.Transparent}
	if p.Y&1 == 1 {
		pair = color.Pair{Fg: color.Transparent, Bg: c}
	}
	h.surface.SetCell(geom.Point{X: p.X, Y: p.Y >> 1}, HalfGlyph, pair)
}

// DrawChar writes ch into the cell containing virtual row p.Y
func (h *HalfBlock) DrawChar(p geom.Point, pair color.Pair, ch rune) {
	h.surface.SetCell(geom.Point{X: p.X, Y: p.Y >> 1}, ch, pair)
}

func (h *HalfBlock) DrawText(p geom.Point, pair color.Pair, text string) {
	h.text(p.X, p.Y>>1, pair, text)
}

// DrawTextTransparent writes text keeping whatever background is already there
func (h *HalfBlock) DrawTextTransparent(p geom.Point, fg color.RGBA, text string) {
	h.text(p.X, p.Y>>1, color.Pair{Fg: fg, Bg: color.Transparent}, text)
}

// FullBlock maps one pixel to one cell, painting the background
type FullBlock struct {
	base
}

// NewFullBlock creates a full-block canvas with a virtual size of cols x rows
func NewFullBlock(sink Sink, cols, rows int) *FullBlock {
	return &FullBlock{base{surface: screen.New(cols, rows), sink: sink}}
}

func (f *FullBlock) Resize(cols, rows int) geom.Point {
	f.surface.Resize(cols, rows)
	return f.Size()
}

func (f *FullBlock) Size() geom.Point { return f.surface.Size() }

func (f *FullBlock) DrawPixel(p geom.Point, c color.RGBA) {
	if !p.In(f.Size()) {
		return
	}
	f.surface.SetCell(p, ' ', color.Pair{Fg: color.Black, Bg: c})
}

func (f *FullBlock) DrawChar(p geom.Point, pair color.Pair, ch rune) {
	f.surface.SetCell(p, ch, pair)
}

func (f *FullBlock) DrawText(p geom.Point, pair color.Pair, text string) {
	f.text(p.X, p.Y, pair, text)
}

func (f *FullBlock) DrawTextTransparent(p geom.Point, fg color.RGBA, text string) {
	f.text(p.X, p.Y, color.Pair{Fg: fg, Bg: color.Transparent}, text)
}
