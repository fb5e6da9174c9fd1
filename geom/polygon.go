package geom

import "math"

// Polygon is an immutable closed shape. Boundary and center are cached at
// construction; transforms return new values so repeated rotations never share state
type Polygon struct {
	boundary Rect
	center   Point
	vertices []Point
}

// NewPolygon copies vertices and caches the bounding box and its center
func NewPolygon(vertices []Point) Polygon {
	vs := make([]Point, len(vertices))
	copy(vs, vertices)

	b := calcBoundary(vs)
	return Polygon{
		boundary: b,
		center:   Point{b.Pos.X + b.Size.X/2, b.Pos.Y + b.Size.Y/2},
		vertices: vs,
	}
}

// NewStar builds a star with alternating outer and inner vertices, centered on the origin
func NewStar(outerRadius, innerRadius float64, spikes int) Polygon {
	if spikes <= 0 {
		return Polygon{}
	}
	vs := make([]Point, 0, spikes*2)
	n := float64(spikes)
	for i := 0; i < spikes; i++ {
		outer := (2*math.Pi*float64(i) - math.Pi/2) / n
		inner := outer + math.Pi/n
		vs = append(vs,
			Point{int(math.Round(outerRadius * math.Cos(outer))), int(math.Round(outerRadius * math.Sin(outer)))},
			Point{int(math.Round(innerRadius * math.Cos(inner))), int(math.Round(innerRadius * math.Sin(inner)))},
		)
	}
	return Polygon{
		boundary: calcBoundary(vs),
		center:   Zero,
		vertices: vs,
	}
}

// calcBoundary returns {min, max-min}; the extent is inclusive of the max vertex
// coordinate, so fill loops iterate Pos..Pos+Size inclusive
func calcBoundary(vs []Point) Rect {
	if len(vs) == 0 {
		return Rect{}
	}
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, v := range vs {
		minX = min(minX, v.X)
		maxX = max(maxX, v.X)
		minY = min(minY, v.Y)
		maxY = max(maxY, v.Y)
	}
	return NewRect(minX, minY, maxX-minX, maxY-minY)
}

// Boundary returns the cached bounding box
func (pg Polygon) Boundary() Rect { return pg.boundary }

// Center returns the cached rotation center
func (pg Polygon) Center() Point { return pg.center }

// Len returns the vertex count
func (pg Polygon) Len() int { return len(pg.vertices) }

// Vertices returns a copy of the vertex list
func (pg Polygon) Vertices() []Point {
	vs := make([]Point, len(pg.vertices))
	copy(vs, pg.vertices)
	return vs
}

// Vertex returns the i-th vertex
func (pg Polygon) Vertex(i int) Point { return pg.vertices[i] }

// Inside runs the even-odd crossing number test.
// An edge toggles when the point's y is on different sides of its endpoints under
// the strict "> y" rule, and the point lies left of the edge's x-intercept.
// Horizontal edges fail the first clause, so the division is never reached with a
// zero divisor. Vertices exactly on the ray follow the same half-open rule.
func (pg Polygon) Inside(p Point) bool {
	c := false
	n := len(pg.vertices)
	x := float32(p.X)
	y := float32(p.Y)

	for i := 0; i < n; i++ {
		xi := float32(pg.vertices[i].X)
		yi := float32(pg.vertices[i].Y)
		xj := float32(pg.vertices[(i+1)%n].X)
		yj := float32(pg.vertices[(i+1)%n].Y)

		if (yi > y) != (yj > y) && x < (xj-xi)*(y-yi)/(yj-yi)+xi {
			c = !c
		}
	}
	return c
}

// Rotate returns a new polygon turned around the cached center; the boundary is
// recomputed from the rotated vertices and the center is kept
func (pg Polygon) Rotate(angle float64) Polygon {
	vs := make([]Point, len(pg.vertices))
	for i, v := range pg.vertices {
		vs[i] = v.Rotate(pg.center, angle)
	}
	return Polygon{
		boundary: calcBoundary(vs),
		center:   pg.center,
		vertices: vs,
	}
}

// Translate returns a new polygon moved by d
func (pg Polygon) Translate(d Point) Polygon {
	vs := make([]Point, len(pg.vertices))
	for i, v := range pg.vertices {
		vs[i] = v.Add(d)
	}
	return Polygon{
		boundary: pg.boundary.Translate(d),
		center:   pg.center.Add(d),
		vertices: vs,
	}
}
