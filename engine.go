package easel

import (
	"fmt"
	"image"
	"sync"
)

// Engine is the canvas engine: it owns the pixel buffer, the undo/redo
// history, the viewport and the brush, and exposes the operations a UI shell
// calls in response to user input.
//
// Engine is safe for concurrent use. All methods serialize on an internal
// mutex so a timer goroutine may export the image while the UI thread draws.
// The repaint callback runs after the mutex is released.
type Engine struct {
	mu sync.Mutex

	buf        *PixelBuffer
	history    *History
	view       Viewport
	brush      Brush
	background RGBA

	// Stroke state. last is in buffer space and NoPoint between strokes
	// or while the pointer is outside the canvas.
	drawing bool
	last    Point

	// Pan state. anchor is in screen space.
	panning bool
	anchor  Point

	dirty     bool
	onRepaint func()
}

// NewEngine creates an engine with a background-filled canvas.
//
// Example:
//
//	e, err := easel.NewEngine(
//	    easel.WithCanvasSize(800, 600),
//	    easel.WithViewportSize(1280, 720),
//	    easel.WithRepaintFunc(window.Invalidate),
//	)
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	buf, err := NewPixelBufferFilled(options.width, options.height, options.background)
	if err != nil {
		return nil, err
	}

	brush := options.brush
	brush.Size = clampBrushSize(brush.Size)

	e := &Engine{
		buf:        buf,
		history:    NewHistory(options.historyLimit, options.compress),
		view:       NewViewport(options.width, options.height, options.padding),
		brush:      brush,
		background: options.background,
		last:       NoPoint,
		dirty:      true,
		onRepaint:  options.onRepaint,
	}
	e.view.Recenter(options.viewW, options.viewH)
	return e, nil
}

// update runs fn under the lock. When fn reports a visible change the engine
// is marked dirty and the repaint callback runs after unlocking.
func (e *Engine) update(fn func() bool) {
	e.mu.Lock()
	changed := fn()
	if changed {
		e.dirty = true
	}
	repaint := e.onRepaint
	e.mu.Unlock()

	if changed && repaint != nil {
		repaint()
	}
}

// PointerDown starts a stroke (ButtonLeft) or a pan (ButtonMiddle) at the
// screen point (x, y). Starting a stroke records an undo snapshot even if the
// press lands outside the canvas.
func (e *Engine) PointerDown(x, y float64, b Button) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch b {
	case ButtonMiddle:
		e.panning = true
		e.anchor = Pt(x, y)
	case ButtonLeft:
		e.history.Begin(e.buf)
		e.drawing = true
		e.last = e.view.ScreenToBuffer(Pt(x, y)).Floor()
	}
}

// PointerDrag continues the current pan or stroke at the screen point (x, y).
//
// A segment is drawn only when both the previous and the new point lie inside
// the canvas. Leaving the canvas resets the previous point, so re-entering
// starts a fresh stroke instead of drawing a line across the gap.
func (e *Engine) PointerDrag(x, y float64) {
	e.update(func() bool {
		switch {
		case e.panning:
			vw, vh := e.view.ViewSize()
			d := Pt(x, y).Sub(e.anchor)
			e.view.Pan(d.X, d.Y, vw, vh)
			e.anchor = Pt(x, y)
			Logger().Debug("easel: pan", "offset", e.view.Offset())
			return true

		case e.drawing:
			p := e.view.ScreenToBuffer(Pt(x, y)).Floor()
			w, h := e.buf.Size()
			if !p.In(w, h) {
				e.last = NoPoint
				return false
			}
			if e.last.In(w, h) {
				DrawSegment(e.buf, e.brush, e.background, e.last, p)
			}
			e.last = p
			return true
		}
		return false
	})
}

// PointerUp ends a pan (ButtonMiddle) or a stroke (ButtonLeft).
func (e *Engine) PointerUp(b Button) {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch b {
	case ButtonMiddle:
		e.panning = false
	case ButtonLeft:
		e.drawing = false
		e.last = NoPoint
	}
}

// WheelZoom zooms one notch about the screen point (x, y). Nothing happens
// unless the zoom modifier is held; it reports whether the zoom changed.
func (e *Engine) WheelZoom(x, y float64, dir WheelDirection, modifierHeld bool) bool {
	if !modifierHeld {
		return false
	}
	return e.zoomAt(Pt(x, y), dir.factor())
}

// ZoomIn zooms in one step about the center of the viewport.
func (e *Engine) ZoomIn() bool {
	return e.zoomAtCenter(ZoomInFactor)
}

// ZoomOut zooms out one step about the center of the viewport.
func (e *Engine) ZoomOut() bool {
	return e.zoomAtCenter(ZoomOutFactor)
}

func (e *Engine) zoomAtCenter(factor float64) bool {
	e.mu.Lock()
	vw, vh := e.view.ViewSize()
	e.mu.Unlock()
	return e.zoomAt(Pt(float64(vw)/2, float64(vh)/2), factor)
}

func (e *Engine) zoomAt(pivot Point, factor float64) bool {
	var changed bool
	e.update(func() bool {
		changed = e.view.ZoomAt(pivot, factor)
		if changed {
			Logger().Debug("easel: zoom", "zoom", e.view.Zoom(), "pivot", pivot)
		}
		return changed
	})
	return changed
}

// SetViewportSize records the screen size of the widget showing the canvas
// and recenters the canvas in it. Zoom is kept.
func (e *Engine) SetViewportSize(width, height int) {
	e.update(func() bool {
		e.view.Recenter(width, height)
		return true
	})
}

// Clear fills the canvas with the background color. It is undoable.
func (e *Engine) Clear() {
	e.update(func() bool {
		e.history.Begin(e.buf)
		e.buf.Fill(e.background)
		e.last = NoPoint
		Logger().Info("easel: canvas cleared")
		return true
	})
}

// Resize replaces the canvas with a blank one of the given size, discarding
// all drawn content, and resets zoom to 1.0 centered in the viewport. The old
// canvas is kept in the undo history.
//
// Non-positive dimensions return an error wrapping ErrInvalidArgument and
// leave the engine unchanged.
func (e *Engine) Resize(width, height int) error {
	var err error
	e.update(func() bool {
		var buf *PixelBuffer
		buf, err = NewPixelBufferFilled(width, height, e.background)
		if err != nil {
			err = fmt.Errorf("resize: %w", err)
			return false
		}
		e.history.Begin(e.buf)
		e.replace(buf)
		Logger().Info("easel: canvas resized", "width", width, "height", height)
		return true
	})
	return err
}

// replace installs buf as the current canvas and frames it at zoom 1.0.
// Any stroke in progress loses its previous point.
func (e *Engine) replace(buf *PixelBuffer) {
	e.buf = buf
	e.last = NoPoint
	e.view.SetCanvasSize(buf.Size())
	e.view.Reset()
}

// Undo restores the canvas as it was before the most recent action.
// It reports whether anything was restored; an empty history is not an error.
// A non-nil error means a compressed snapshot could not be decoded, in which
// case nothing changed.
func (e *Engine) Undo() (bool, error) {
	return e.step((*History).Undo, "undo")
}

// Redo re-applies the most recently undone action. See Undo.
func (e *Engine) Redo() (bool, error) {
	return e.step((*History).Redo, "redo")
}

func (e *Engine) step(move func(*History, *PixelBuffer) (*PixelBuffer, bool, error), name string) (bool, error) {
	var (
		ok  bool
		err error
	)
	e.update(func() bool {
		var next *PixelBuffer
		next, ok, err = move(e.history, e.buf)
		if err != nil {
			Logger().Warn("easel: "+name+" failed", "err", err)
			return false
		}
		if !ok {
			return false
		}
		if next.width != e.buf.width || next.height != e.buf.height {
			e.replace(next)
		} else {
			e.buf = next
			e.last = NoPoint
		}
		Logger().Debug("easel: "+name, "width", next.width, "height", next.height)
		return true
	})
	return ok, err
}

// SetBrushSize sets the brush diameter, clamped to [MinBrushSize, MaxBrushSize].
func (e *Engine) SetBrushSize(size int) {
	e.mu.Lock()
	e.brush.Size = clampBrushSize(size)
	e.mu.Unlock()
}

// SetBrushColor sets the draw color. Alpha is ignored; strokes are opaque.
func (e *Engine) SetBrushColor(c RGBA) {
	e.mu.Lock()
	e.brush.Color = c.Opaque()
	e.mu.Unlock()
}

// SetBrushMode switches between drawing and erasing.
func (e *Engine) SetBrushMode(m BrushMode) {
	e.mu.Lock()
	e.brush.Mode = m
	e.mu.Unlock()
}

// Brush returns the current brush.
func (e *Engine) Brush() Brush {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.brush
}

// Background returns the canvas background color.
func (e *Engine) Background() RGBA {
	return e.background
}

// ExportImage returns the canvas composited onto the background color.
// Every pixel of the result is opaque.
func (e *Engine) ExportImage() *image.RGBA {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Flatten(e.background)
}

// ImportImage replaces the canvas with a copy of img. The canvas takes the
// image's dimensions and the view resets to zoom 1.0.
//
// Importing does not record an undo snapshot, and the existing history is
// kept: undoing afterwards returns to the canvas from before the import's
// preceding action.
func (e *Engine) ImportImage(img image.Image) error {
	buf, err := FromImage(img)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}
	e.update(func() bool {
		e.replace(buf)
		Logger().Info("easel: image imported", "width", buf.width, "height", buf.height)
		return true
	})
	return nil
}

// CanvasSize returns the buffer dimensions.
func (e *Engine) CanvasSize() (width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Size()
}

// Zoom returns the current zoom factor.
func (e *Engine) Zoom() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view.Zoom()
}

// Offset returns the current screen-space canvas offset.
func (e *Engine) Offset() Point {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view.Offset()
}

// Viewport returns a copy of the viewport state, for coordinate conversion
// outside the engine.
func (e *Engine) Viewport() Viewport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.view
}

// CanUndo reports whether Undo would restore anything.
func (e *Engine) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanUndo()
}

// CanRedo reports whether Redo would restore anything.
func (e *Engine) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.CanRedo()
}

// HistoryLen returns the number of undo and redo snapshots held.
func (e *Engine) HistoryLen() (undo, redo int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

// Buffer returns a deep copy of the canvas.
func (e *Engine) Buffer() *PixelBuffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buf.Copy()
}

// IsDirty reports whether the canvas changed since the last Render or
// MarkClean.
func (e *Engine) IsDirty() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.dirty
}

// MarkClean clears the dirty flag without rendering.
func (e *Engine) MarkClean() {
	e.mu.Lock()
	e.dirty = false
	e.mu.Unlock()
}
