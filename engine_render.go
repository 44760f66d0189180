package easel

import (
	"image"
	"image/draw"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/easel/internal/parallel"
)

// PaddingColor fills the screen around the canvas.
var PaddingColor = Gray

// minBandRows keeps render bands tall enough to be worth a goroutine hop.
const minBandRows = 64

// renderPool is shared by every engine in the process.
var renderPool = sync.OnceValue(func() *parallel.Pool {
	return parallel.NewPool(0)
})

// subImager is implemented by the standard library image types.
type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

// Render paints the current view into dst, which stands for the viewport
// widget with its origin at screen (0, 0).
//
// The whole of dst is filled with PaddingColor, then the canvas is drawn
// through the viewport transform with nearest-neighbor sampling, so the
// pixel at screen point s shows buffer pixel floor(ScreenToBuffer(s + 0.5)).
// Large destinations that support SubImage are painted in parallel row
// bands. Render clears the dirty flag.
func (e *Engine) Render(dst draw.Image) {
	e.mu.Lock()
	defer e.mu.Unlock()

	m := e.view.Matrix()
	s2d := f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
	sr := e.buf.Bounds()
	padding := image.NewUniform(PaddingColor.Color())
	background := image.NewUniform(e.background.Color())

	paint := func(d draw.Image) {
		draw.Draw(d, d.Bounds(), padding, image.Point{}, draw.Src)
		// Transparent canvas pixels show the background, not the padding.
		xdraw.NearestNeighbor.Transform(d, s2d, background, sr, draw.Src, nil)
		xdraw.NearestNeighbor.Transform(d, s2d, e.buf, sr, draw.Over, nil)
	}

	if parts := split(dst, renderPool().Workers()); len(parts) > 1 {
		tasks := make([]func(), len(parts))
		for i, d := range parts {
			tasks[i] = func() { paint(d) }
		}
		renderPool().Run(tasks)
	} else {
		paint(dst)
	}

	e.dirty = false
}

// split cuts dst into row bands sharing its pixels. It returns nil when dst
// cannot be split.
func split(dst draw.Image, n int) []draw.Image {
	s, ok := dst.(subImager)
	if !ok {
		return nil
	}
	bands := parallel.Bands(dst.Bounds(), n, minBandRows)
	if len(bands) < 2 {
		return nil
	}
	parts := make([]draw.Image, len(bands))
	for i, b := range bands {
		d, ok := s.SubImage(b).(draw.Image)
		if !ok {
			return nil
		}
		parts[i] = d
	}
	return parts
}
