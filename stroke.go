package easel

import (
	"github.com/gogpu/easel/internal/stroke"
)

// coverageThreshold is the minimum mask coverage that paints a pixel.
// Painting is aliased so erased and drawn pixels are exact brush colors.
const coverageThreshold = 0x80

// DrawSegment renders one segment of a freehand stroke into buf.
//
// The segment runs between the centers of the pixels containing from and to,
// is brush.Size pixels wide, and has round caps; consecutive segments sharing
// an endpoint therefore meet in a round join. If from is the NoPoint sentinel
// the call does nothing, which is how a stroke restarts cleanly after the
// pointer re-enters the canvas.
//
// bg is the canvas background, used as the paint color in ModeErase.
func DrawSegment(buf *PixelBuffer, brush Brush, bg RGBA, from, to Point) {
	if buf == nil || from.IsNone() {
		return
	}
	size := brush.Size
	if size < MinBrushSize {
		size = MinBrushSize
	}

	a := stroke.Point{X: from.X + 0.5, Y: from.Y + 0.5}
	b := stroke.Point{X: to.X + 0.5, Y: to.Y + 0.5}
	path := stroke.Capsule(a, b, float64(size))

	mask, origin := stroke.Coverage(path, buf.Bounds())
	if mask == nil {
		return
	}

	r, g, bl, al := brush.Paint(bg).bytes()
	mb := mask.Bounds()
	for y := mb.Min.Y; y < mb.Max.Y; y++ {
		row := mask.Pix[(y-mb.Min.Y)*mask.Stride:]
		for x := mb.Min.X; x < mb.Max.X; x++ {
			if row[x-mb.Min.X] >= coverageThreshold {
				buf.set(origin.X+x, origin.Y+y, r, g, bl, al)
			}
		}
	}
}
