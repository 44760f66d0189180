package stroke

import (
	"image"
	"math"

	"golang.org/x/image/vector"
)

// Bounds returns the integer pixel rectangle covered by an outline,
// padded by one pixel for coverage that bleeds into neighbors.
func Bounds(path []PathElement) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	grow := func(p Point) {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	for _, el := range path {
		switch e := el.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case CubicTo:
			// The control polygon contains the curve.
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	if minX > maxX || minY > maxY {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(minX))-1, int(math.Floor(minY))-1,
		int(math.Ceil(maxX))+1, int(math.Ceil(maxY))+1,
	)
}

// Coverage rasterizes a closed outline restricted to clip. It returns the
// coverage mask and the pixel position of the mask's top-left corner; mask
// pixel (x, y) describes destination pixel origin+(x, y). An outline that
// misses clip yields a nil mask.
func Coverage(path []PathElement, clip image.Rectangle) (*image.Alpha, image.Point) {
	r := Bounds(path).Intersect(clip)
	if r.Empty() {
		return nil, image.Point{}
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	pt := func(p Point) (float32, float32) {
		return float32(p.X - ox), float32(p.Y - oy)
	}

	z := vector.NewRasterizer(r.Dx(), r.Dy())
	for _, el := range path {
		switch e := el.(type) {
		case MoveTo:
			x, y := pt(e.Point)
			z.MoveTo(x, y)
		case LineTo:
			x, y := pt(e.Point)
			z.LineTo(x, y)
		case CubicTo:
			bx, by := pt(e.Control1)
			cx, cy := pt(e.Control2)
			dx, dy := pt(e.Point)
			z.CubeTo(bx, by, cx, cy, dx, dy)
		case Close:
			z.ClosePath()
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask, r.Min
}
