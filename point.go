package easel

import "math"

// Point represents a 2D point in screen or buffer space.
type Point struct {
	X, Y float64
}

// NoPoint is the "no previous point" sentinel used between strokes and after
// the pointer leaves the canvas. Any point with both coordinates negative is
// treated the same way.
var NoPoint = Point{X: -1, Y: -1}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// IsNone reports whether p is the "no previous point" sentinel.
func (p Point) IsNone() bool {
	return p.X < 0 && p.Y < 0
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Div returns the point divided by a scalar.
func (p Point) Div(s float64) Point {
	return Point{X: p.X / s, Y: p.Y / s}
}

// Floor snaps p to the pixel that contains it.
func (p Point) Floor() Point {
	return Point{X: math.Floor(p.X), Y: math.Floor(p.Y)}
}

// In reports whether p lies inside [0, w) x [0, h).
func (p Point) In(w, h int) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < float64(w) && p.Y < float64(h)
}
