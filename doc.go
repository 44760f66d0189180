// Package easel is the engine of a raster painting program.
//
// # Overview
//
// An Engine owns a fixed-size pixel buffer that accepts freehand strokes,
// keeps undo/redo history as whole-buffer snapshots, and frames the buffer in
// a zoomable, pannable viewport that is independent of the buffer's
// resolution. The engine knows nothing about windows or widgets: a UI shell
// feeds it pointer, wheel and menu events and paints whatever Render
// produces.
//
// # Quick Start
//
//	import "github.com/gogpu/easel"
//
//	e, err := easel.NewEngine(easel.WithViewportSize(1280, 720))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// A left-button drag draws a 5px black line.
//	e.PointerDown(400, 300, easel.ButtonLeft)
//	e.PointerDrag(500, 300)
//	e.PointerUp(easel.ButtonLeft)
//
//	// Paint the view into a screen-sized image.
//	screen := image.NewRGBA(image.Rect(0, 0, 1280, 720))
//	e.Render(screen)
//
// # Coordinate Spaces
//
// Screen space is the pixel grid of the widget showing the canvas. Buffer
// space is the pixel grid of the PixelBuffer. The Viewport converts between
// them:
//
//	buffer = (screen - offset) / zoom - padding
//
// Padding is a margin drawn around the buffer. It is part of the frame, not
// of buffer space, so buffer (0, 0) sits padding*zoom pixels inside the
// frame's top-left corner.
//
// # History
//
// Every action that mutates the buffer (a stroke, Clear, Resize) first pushes
// a deep copy of the buffer onto the undo stack and discards the redo stack.
// History is unbounded by default; WithHistoryLimit and
// WithCompressedHistory trade depth or CPU time for memory.
//
// ImportImage replaces the buffer without recording history.
//
// # Subpackages
//
//   - codec: PNG encoding, multi-format decoding, atomic file writes
//   - session: save/open, autosave path policy, periodic autosave
//   - command: the command set a shell dispatches into the engine
package easel

// Version is the current version of the library.
const Version = "0.1.0"
