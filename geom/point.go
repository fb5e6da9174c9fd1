// Package geom holds the integer value types used to address virtual pixels:
// points, rectangles, circles and polygons.
package geom

import (
	"fmt"
	"math"
)

// Point is an integer position in virtual pixel space, also used for sizes
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point
func Pt(x, y int) Point { return Point{x, y} }

// Zero is the origin
var Zero = Point{}

// Width reads X when the point is used as a size
func (p Point) Width() int { return p.X }

// Height reads Y when the point is used as a size
func (p Point) Height() int { return p.Y }

// Add returns p+o
func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// Sub returns p-o
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }

// Half divides both components by two, truncating toward zero
func (p Point) Half() Point { return Point{p.X / 2, p.Y / 2} }

// In reports whether p lies in [0,size) on both axes
func (p Point) In(size Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < size.X && p.Y < size.Y
}

func (p Point) Left() Point      { return Point{p.X - 1, p.Y} }
func (p Point) Right() Point     { return Point{p.X + 1, p.Y} }
func (p Point) Up() Point        { return Point{p.X, p.Y - 1} }
func (p Point) Down() Point      { return Point{p.X, p.Y + 1} }
func (p Point) UpLeft() Point    { return Point{p.X - 1, p.Y - 1} }
func (p Point) UpRight() Point   { return Point{p.X + 1, p.Y - 1} }
func (p Point) DownLeft() Point  { return Point{p.X - 1, p.Y + 1} }
func (p Point) DownRight() Point { return Point{p.X + 1, p.Y + 1} }

// Rotate turns p around center by angle radians, rounding to the nearest integer
func (p Point) Rotate(center Point, angle float64) Point {
	sin, cos := math.Sincos(angle)
	dx := float64(p.X - center.X)
	dy := float64(p.Y - center.Y)
	rx := dx*cos - dy*sin + float64(center.X)
	ry := dx*sin + dy*cos + float64(center.Y)
	return Point{int(math.Round(rx)), int(math.Round(ry))}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
