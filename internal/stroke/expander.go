package stroke

import (
	"math"
)

// Point represents a 2D point (internal copy to avoid an import cycle).
type Point struct {
	X, Y float64
}

// Sub returns the difference between two points as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Add returns the point moved by v.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Vec2 represents a 2D vector.
type Vec2 struct {
	X, Y float64
}

// Scale returns the vector scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns the negated vector.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Length returns the length of the vector.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Perp returns the perpendicular vector (rotated 90 degrees counter-clockwise).
func (v Vec2) Perp() Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// Angle returns the angle of the vector in radians.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// PathElement represents an element in an outline.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new contour.
type MoveTo struct{ Point Point }

func (MoveTo) isPathElement() {}

// LineTo draws a line.
type LineTo struct{ Point Point }

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct{ Control1, Control2, Point Point }

func (CubicTo) isPathElement() {}

// Close closes the contour.
type Close struct{}

func (Close) isPathElement() {}

// Capsule returns the closed outline of a segment from a to b stroked with
// the given width, round caps at both ends. A zero-length segment yields a
// full circle. A non-positive width yields nil.
func Capsule(a, b Point, width float64) []PathElement {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return nil
	}
	radius := width / 2

	tan := b.Sub(a)
	length := tan.Length()
	if length == 0 {
		return circle(a, radius)
	}

	// norm points to the side walked forward; rotating it by -90 degrees
	// gives the tangent, so a -pi sweep from norm goes around the far end.
	norm := tan.Perp().Scale(radius / length)

	out := make([]PathElement, 0, 8)
	out = append(out, MoveTo{Point: a.Add(norm)})
	out = append(out, LineTo{Point: b.Add(norm)})
	out = appendArc(out, b, radius, norm.Angle(), -math.Pi)
	out = append(out, LineTo{Point: a.Add(norm.Neg())})
	out = appendArc(out, a, radius, norm.Neg().Angle(), -math.Pi)
	out = append(out, Close{})
	return out
}

// circle returns a closed circular contour.
func circle(center Point, radius float64) []PathElement {
	out := make([]PathElement, 0, 6)
	out = append(out, MoveTo{Point: Point{X: center.X + radius, Y: center.Y}})
	out = appendArc(out, center, radius, 0, 2*math.Pi)
	out = append(out, Close{})
	return out
}

// appendArc appends cubic Bezier approximations of an arc starting at angle
// a0 and sweeping by sweep radians, in segments of at most 90 degrees.
// The current point must already be on the arc start.
func appendArc(out []PathElement, center Point, radius, a0, sweep float64) []PathElement {
	n := int(math.Ceil(math.Abs(sweep) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := sweep / float64(n)
	for i := 0; i < n; i++ {
		out = append(out, arcSegment(center, radius, a0, a0+step))
		a0 += step
	}
	return out
}

// arcSegment returns a single arc segment (up to 90 degrees) as a cubic Bezier.
func arcSegment(center Point, radius, a0, a1 float64) CubicTo {
	da := a1 - a0
	alpha := math.Sin(da) * (math.Sqrt(4+3*math.Tan(da/2)*math.Tan(da/2)) - 1) / 3

	cos0, sin0 := math.Cos(a0), math.Sin(a0)
	cos1, sin1 := math.Cos(a1), math.Sin(a1)

	p1 := Point{X: center.X + radius*cos0, Y: center.Y + radius*sin0}
	p2 := Point{X: center.X + radius*cos1, Y: center.Y + radius*sin1}

	c1 := Point{X: p1.X - alpha*radius*sin0, Y: p1.Y + alpha*radius*cos0}
	c2 := Point{X: p2.X + alpha*radius*sin1, Y: p2.Y - alpha*radius*cos1}

	return CubicTo{Control1: c1, Control2: c2, Point: p2}
}
