package easel

import "math"

// Default viewport geometry.
const (
	DefaultPadding = 50
	ZoomInFactor   = 1.1
	ZoomOutFactor  = 0.9
)

// Viewport maps between screen space (pixels of the widget showing the
// canvas) and buffer space (pixels of the PixelBuffer).
//
// At paint time the canvas is drawn by translating by the offset, scaling by
// the zoom factor and then drawing the buffer at (padding, padding). The
// padding is a margin around the buffer that belongs to the visual frame,
// not to buffer space.
//
// The zero value is not usable; create one with NewViewport.
type Viewport struct {
	zoom    float64
	offsetX float64
	offsetY float64
	padding float64
	canvasW int
	canvasH int
	viewW   int
	viewH   int
}

// NewViewport returns a viewport at zoom 1.0 with a zero offset.
func NewViewport(canvasW, canvasH int, padding float64) Viewport {
	return Viewport{
		zoom:    1.0,
		padding: padding,
		canvasW: canvasW,
		canvasH: canvasH,
	}
}

// Zoom returns the current scale factor.
func (v *Viewport) Zoom() float64 {
	return v.zoom
}

// Offset returns the screen-space translation.
func (v *Viewport) Offset() Point {
	return Point{X: v.offsetX, Y: v.offsetY}
}

// Padding returns the margin drawn around the buffer.
func (v *Viewport) Padding() float64 {
	return v.padding
}

// CanvasSize returns the buffer dimensions the viewport frames.
func (v *Viewport) CanvasSize() (width, height int) {
	return v.canvasW, v.canvasH
}

// ViewSize returns the last screen size passed to Recenter.
func (v *Viewport) ViewSize() (width, height int) {
	return v.viewW, v.viewH
}

// SetCanvasSize updates the framed buffer dimensions.
func (v *Viewport) SetCanvasSize(width, height int) {
	v.canvasW, v.canvasH = width, height
}

// SetOffset moves the canvas without clamping.
func (v *Viewport) SetOffset(x, y float64) {
	v.offsetX, v.offsetY = x, y
}

// ScreenToBuffer converts a screen point to buffer space:
// ((screen - offset) / zoom) - padding.
func (v *Viewport) ScreenToBuffer(p Point) Point {
	return p.Sub(v.Offset()).Div(v.zoom).Sub(Pt(v.padding, v.padding))
}

// BufferToScreen converts a buffer point to screen space by applying the
// paint-time transform. It inverts ScreenToBuffer up to rounding.
func (v *Viewport) BufferToScreen(p Point) Point {
	return v.Matrix().TransformPoint(p)
}

// Matrix returns the paint-time transform from buffer space to screen space.
func (v *Viewport) Matrix() Matrix {
	return Translate(v.offsetX, v.offsetY).
		Multiply(Scale(v.zoom, v.zoom)).
		Multiply(Translate(v.padding, v.padding))
}

// ZoomAt multiplies the zoom by factor while keeping the buffer point under
// pivot visually stationary. Non-positive or non-finite factors are ignored.
// It reports whether the zoom changed.
func (v *Viewport) ZoomAt(pivot Point, factor float64) bool {
	if !(factor > 0) || math.IsInf(factor, 0) {
		return false
	}
	oldZoom := v.zoom
	newZoom := oldZoom * factor
	if !(newZoom > 0) || math.IsInf(newZoom, 0) {
		return false
	}
	ratio := newZoom / oldZoom
	off := pivot.Sub(pivot.Sub(v.Offset()).Mul(ratio))
	v.offsetX, v.offsetY = off.X, off.Y
	v.zoom = newZoom
	return true
}

// Pan moves the canvas by (dx, dy) screen pixels and clamps the offset so
// that at most half a viewport of dead space shows on the near edge and the
// far edge never retreats past the viewport center.
func (v *Viewport) Pan(dx, dy float64, viewW, viewH int) {
	off := v.Offset().Add(Pt(dx, dy))
	v.offsetX = clampOffset(off.X, v.scaledSize(v.canvasW), float64(viewW))
	v.offsetY = clampOffset(off.Y, v.scaledSize(v.canvasH), float64(viewH))
}

// clampOffset bounds an offset to [-(scaled - view/2), view/2]. When the
// range is empty the upper bound wins.
func clampOffset(offset, scaled, view float64) float64 {
	hi := view / 2
	lo := -(scaled - view/2)
	if offset < lo {
		offset = lo
	}
	if offset > hi {
		offset = hi
	}
	return offset
}

// Recenter places the padded, scaled canvas in the middle of a viewWxviewH
// screen and remembers the screen size.
func (v *Viewport) Recenter(viewW, viewH int) {
	v.viewW, v.viewH = viewW, viewH
	v.offsetX = (float64(viewW) - v.scaledSize(v.canvasW)) / 2
	v.offsetY = (float64(viewH) - v.scaledSize(v.canvasH)) / 2
}

// Reset restores zoom 1.0 and recenters in the remembered screen size.
func (v *Viewport) Reset() {
	v.zoom = 1.0
	v.Recenter(v.viewW, v.viewH)
}

// scaledSize returns the on-screen extent of a canvas side including padding
// on both ends.
func (v *Viewport) scaledSize(side int) float64 {
	return (float64(side) + 2*v.padding) * v.zoom
}
