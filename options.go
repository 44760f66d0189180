package easel

// EngineOption configures an Engine during creation.
//
// Example:
//
//	// Defaults: 1100x1100 white canvas, 50px padding, unbounded history
//	e := easel.NewEngine()
//
//	// Small canvas with a bounded, compressed history
//	e := easel.NewEngine(
//	    easel.WithCanvasSize(640, 480),
//	    easel.WithHistoryLimit(32),
//	    easel.WithCompressedHistory(),
//	)
type EngineOption func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	width        int
	height       int
	padding      float64
	background   RGBA
	brush        Brush
	viewW        int
	viewH        int
	historyLimit int
	compress     bool
	onRepaint    func()
}

// Default canvas dimensions.
const (
	DefaultCanvasWidth  = 1100
	DefaultCanvasHeight = 1100
)

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		width:      DefaultCanvasWidth,
		height:     DefaultCanvasHeight,
		padding:    DefaultPadding,
		background: DefaultBackground,
		brush:      DefaultBrush(),
	}
}

// WithCanvasSize sets the initial buffer dimensions. Non-positive values
// make NewEngine fail with ErrInvalidArgument.
func WithCanvasSize(width, height int) EngineOption {
	return func(o *engineOptions) {
		o.width = width
		o.height = height
	}
}

// WithPadding sets the margin drawn around the buffer, in buffer pixels.
// Negative values are treated as zero.
func WithPadding(padding float64) EngineOption {
	return func(o *engineOptions) {
		o.padding = max(padding, 0)
	}
}

// WithBackground sets the canvas background used by new buffers, Clear,
// Resize, erasing and export flattening. The color is forced opaque.
func WithBackground(c RGBA) EngineOption {
	return func(o *engineOptions) {
		o.background = c.Opaque()
	}
}

// WithBrush sets the initial brush.
func WithBrush(b Brush) EngineOption {
	return func(o *engineOptions) {
		o.brush = b
	}
}

// WithViewportSize sets the initial screen size the canvas is centered in.
func WithViewportSize(width, height int) EngineOption {
	return func(o *engineOptions) {
		o.viewW = width
		o.viewH = height
	}
}

// WithHistoryLimit bounds the undo and redo stacks to n snapshots each,
// evicting the oldest. n <= 0 keeps history unbounded, which is the default.
func WithHistoryLimit(n int) EngineOption {
	return func(o *engineOptions) {
		o.historyLimit = n
	}
}

// WithCompressedHistory stores undo and redo snapshots as zstd frames.
// Large, mostly blank canvases compress by orders of magnitude at the cost of
// a short encode on every stroke start.
func WithCompressedHistory() EngineOption {
	return func(o *engineOptions) {
		o.compress = true
	}
}

// WithRepaintFunc registers fn to be called after any operation that changes
// what the canvas looks like. fn runs on the caller's goroutine after the
// engine lock is released, so it may call back into the engine.
func WithRepaintFunc(fn func()) EngineOption {
	return func(o *engineOptions) {
		o.onRepaint = fn
	}
}
