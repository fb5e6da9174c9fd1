package canvas

import (
	"github.com/lixenwraith/term2d/color"
	"github.com/lixenwraith/term2d/geom"
	"github.com/lixenwraith/term2d/media"
)

// DrawLine plots an integer Bresenham line, both endpoints included, each pixel once
func DrawLine(c Canvas, p1, p2 geom.Point, col color.RGBA) {
	dx := abs(p2.X - p1.X)
	dy := abs(p2.Y - p1.Y)
	sx, sy := -1, -1
	if p1.X < p2.X {
		sx = 1
	}
	if p1.Y < p2.Y {
		sy = 1
	}

	err := -dy / 2
	if dx > dy {
		err = dx / 2
	}

	x, y := p1.X, p1.Y
	for {
		c.DrawPixel(geom.Point{X: x, Y: y}, col)
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := err
		if e2 > -dx {
			err -= dy
			x += sx
		}
		if e2 < dy {
			err += dx
			y += sy
		}
	}
}

// DrawRect outlines r; every boundary pixel is blended exactly once
func DrawRect(c Canvas, r geom.Rect, col color.RGBA) {
	if r.Empty() {
		return
	}
	if r.Size.X == 1 || r.Size.Y == 1 {
		DrawRectFill(c, r, col)
		return
	}

	x0, y0 := r.Pos.X, r.Pos.Y
	x1, y1 := x0+r.Size.X-1, y0+r.Size.Y-1
	for x := x0; x <= x1; x++ {
		c.DrawPixel(geom.Point{X: x, Y: y0}, col)
		c.DrawPixel(geom.Point{X: x, Y: y1}, col)
	}
	for y := y0 + 1; y < y1; y++ {
		c.DrawPixel(geom.Point{X: x0, Y: y}, col)
		c.DrawPixel(geom.Point{X: x1, Y: y}, col)
	}
}

// DrawRectFill blends every pixel of r, row by row
func DrawRectFill(c Canvas, r geom.Rect, col color.RGBA) {
	if r.Empty() {
		return
	}
	for y := r.Pos.Y; y < r.Pos.Y+r.Size.Y; y++ {
		for x := r.Pos.X; x < r.Pos.X+r.Size.X; x++ {
			c.DrawPixel(geom.Point{X: x, Y: y}, col)
		}
	}
}

// DrawCircle outlines a circle with the midpoint algorithm. Octant points that
// coincide on the diagonals and axes are plotted once
func DrawCircle(c Canvas, circle geom.Circle, col color.RGBA) {
	if circle.Radius <= 0 {
		return
	}

	cx, cy := circle.Pos.X, circle.Pos.Y
	x, y := circle.Radius, 0
	decision := 1 - x

	plot := func(px, py int) {
		c.DrawPixel(geom.Point{X: px, Y: py}, col)
	}

	// Walk one octant and mirror it. On the axes and the diagonal the mirrors
	// coincide, so only four points are distinct there
	for y <= x {
		switch {
		case y == 0:
			plot(cx+x, cy)
			plot(cx-x, cy)
			plot(cx, cy+x)
			plot(cx, cy-x)
		case x == y:
			plot(cx+x, cy+y)
			plot(cx-x, cy+y)
			plot(cx-x, cy-y)
			plot(cx+x, cy-y)
		default:
			plot(cx+x, cy+y)
			plot(cx+y, cy+x)
			plot(cx-y, cy+x)
			plot(cx-x, cy+y)
			plot(cx-x, cy-y)
			plot(cx-y, cy-x)
			plot(cx+y, cy-x)
			plot(cx+x, cy-y)
		}

		y++
		if decision <= 0 {
			decision += 2*y + 1
		} else {
			x--
			decision += 2*(y-x) + 1
		}
	}
}

// DrawCircleFill blends every pixel strictly inside the radius over the half-open
// box [c-r, c+r)
func DrawCircleFill(c Canvas, circle geom.Circle, col color.RGBA) {
	r := circle.Radius
	if r <= 0 {
		return
	}
	r2 := r * r
	for y := circle.Pos.Y - r; y < circle.Pos.Y+r; y++ {
		dy := y - circle.Pos.Y
		for x := circle.Pos.X - r; x < circle.Pos.X+r; x++ {
			dx := x - circle.Pos.X
			if dx*dx+dy*dy < r2 {
				c.DrawPixel(geom.Point{X: x, Y: y}, col)
			}
		}
	}
}

// DrawPolygon outlines pg, closing back to the first vertex
func DrawPolygon(c Canvas, pg geom.Polygon, col color.RGBA) {
	n := pg.Len()
	if n < 3 {
		return
	}
	for i := 0; i < n; i++ {
		DrawLine(c, pg.Vertex(i), pg.Vertex((i+1)%n), col)
	}
}

// DrawPolygonFill blends every pixel of the inclusive bounding box that Inside accepts
func DrawPolygonFill(c Canvas, pg geom.Polygon, col color.RGBA) {
	if pg.Len() < 3 {
		return
	}
	b := pg.Boundary()
	for y := b.Pos.Y; y <= b.Pos.Y+b.Size.Y; y++ {
		for x := b.Pos.X; x <= b.Pos.X+b.Size.X; x++ {
			p := geom.Point{X: x, Y: y}
			if pg.Inside(p) {
				c.DrawPixel(p, col)
			}
		}
	}
}

// DrawImage blits img with its top-left at p. Fully transparent pixels are skipped
// so they leave the cell glyph alone. An image with fewer pixels than its size
// claims draws nothing
func DrawImage(c Canvas, p geom.Point, img media.Image) {
	w, h := img.Size.X, img.Size.Y
	if w <= 0 || h <= 0 || len(img.Pixels)/w < h {
		return
	}
	for y := 0; y < h; y++ {
		row := img.Pixels[y*w : (y+1)*w]
		for x, px := range row {
			if px.A == 0 {
				continue
			}
			c.DrawPixel(geom.Point{X: p.X + x, Y: p.Y + y}, px)
		}
	}
}

// DrawVideo draws the current frame and advances; an empty video is a no-op
func DrawVideo(c Canvas, p geom.Point, v *media.Video) {
	if v == nil || v.Len() == 0 {
		return
	}
	DrawImage(c, p, v.Frame())
	v.Advance()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
