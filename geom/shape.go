package geom

// Rect is an axis-aligned rectangle; Contains is half-open on both axes
type Rect struct {
	Pos  Point
	Size Point
}

// NewRect builds a Rect from position and extent
func NewRect(x, y, w, h int) Rect {
	return Rect{Pos: Point{x, y}, Size: Point{w, h}}
}

// RectOf returns the rectangle anchored at the origin with the given size
func RectOf(size Point) Rect {
	return Rect{Size: size}
}

// Empty reports whether the rectangle covers no pixels
func (r Rect) Empty() bool {
	return r.Size.X <= 0 || r.Size.Y <= 0
}

// Contains reports whether p lies inside [Pos, Pos+Size)
func (r Rect) Contains(p Point) bool {
	if p.X < r.Pos.X || p.X >= r.Pos.X+r.Size.X {
		return false
	}
	if p.Y < r.Pos.Y || p.Y >= r.Pos.Y+r.Size.Y {
		return false
	}
	return true
}

// Translate returns the rectangle moved by d
func (r Rect) Translate(d Point) Rect {
	r.Pos = r.Pos.Add(d)
	return r
}

// Circle is a center and integer radius
type Circle struct {
	Pos    Point
	Radius int
}

// NewCircle builds a Circle
func NewCircle(x, y, radius int) Circle {
	return Circle{Pos: Point{x, y}, Radius: radius}
}

// Translate returns the circle moved by d
func (c Circle) Translate(d Point) Circle {
	c.Pos = c.Pos.Add(d)
	return c
}
