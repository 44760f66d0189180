package easel

import (
	"fmt"
	"math"
	"testing"
)

// viewports returns a spread of zoom/offset states.
func viewports() []Viewport {
	var out []Viewport
	for _, zoom := range []float64{0.1, 0.9, 1, 1.1, 3.7, 25} {
		for _, off := range []Point{{0, 0}, {-340.5, 12}, {1e4, -1e4}} {
			v := NewViewport(1100, 1100, DefaultPadding)
			v.zoom = zoom
			v.SetOffset(off.X, off.Y)
			out = append(out, v)
		}
	}
	return out
}

func TestViewport_Invertibility(t *testing.T) {
	screens := []Point{{0, 0}, {1, 1}, {640.25, 359.75}, {-20, 5000}}
	for _, v := range viewports() {
		for _, s := range screens {
			got := v.BufferToScreen(v.ScreenToBuffer(s))
			if !nearPoint(got, s) {
				t.Errorf("zoom=%v offset=%v: round-trip of %v = %v", v.Zoom(), v.Offset(), s, got)
			}
		}
	}
}

func TestViewport_MatrixAgreesWithBufferToScreen(t *testing.T) {
	for _, v := range viewports() {
		m := v.Matrix()
		for _, p := range []Point{{0, 0}, {10.5, 99}, {1100, 1100}} {
			if got, want := m.TransformPoint(p), v.BufferToScreen(p); !nearPoint(got, want) {
				t.Errorf("Matrix()*%v = %v, BufferToScreen = %v", p, got, want)
			}
		}
	}
}

func TestViewport_ScreenToBufferFormula(t *testing.T) {
	v := NewViewport(100, 100, 50)
	v.zoom = 2
	v.SetOffset(10, 20)
	got := v.ScreenToBuffer(Pt(210, 220))
	// ((210-10)/2)-50 = 50, ((220-20)/2)-50 = 50
	if !nearPoint(got, Pt(50, 50)) {
		t.Errorf("ScreenToBuffer = %v, want (50, 50)", got)
	}
}

func TestViewport_ZoomAtPivotStationary(t *testing.T) {
	factors := []float64{1.1, 0.9, 2, 0.01, 17}
	pivots := []Point{{0, 0}, {400, 300}, {-50, 1234.5}}
	for _, f := range factors {
		for _, pivot := range pivots {
			t.Run(fmt.Sprintf("f=%v/pivot=%v", f, pivot), func(t *testing.T) {
				v := NewViewport(1100, 1100, DefaultPadding)
				v.Recenter(800, 600)
				before := v.ScreenToBuffer(pivot)
				if !v.ZoomAt(pivot, f) {
					t.Fatal("ZoomAt returned false")
				}
				after := v.ScreenToBuffer(pivot)
				if !nearPoint(before, after) {
					t.Errorf("pivot moved: %v -> %v", before, after)
				}
				if !near(v.Zoom(), f) {
					t.Errorf("zoom = %v, want %v", v.Zoom(), f)
				}
			})
		}
	}
}

func TestViewport_ZoomAtSequence(t *testing.T) {
	v := NewViewport(500, 300, DefaultPadding)
	v.Recenter(1024, 768)
	pivot := Pt(333, 222)
	before := v.ScreenToBuffer(pivot)
	for i := 0; i < 40; i++ {
		f := ZoomInFactor
		if i%3 == 0 {
			f = ZoomOutFactor
		}
		v.ZoomAt(pivot, f)
	}
	after := v.ScreenToBuffer(pivot)
	if math.Abs(before.X-after.X) > 1e-6 || math.Abs(before.Y-after.Y) > 1e-6 {
		t.Errorf("pivot drifted after 40 zooms: %v -> %v", before, after)
	}
}

func TestViewport_ZoomAtRejectsBadFactor(t *testing.T) {
	for _, f := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		v := NewViewport(10, 10, 0)
		v.SetOffset(3, 4)
		if v.ZoomAt(Pt(5, 5), f) {
			t.Errorf("ZoomAt(%v) returned true", f)
		}
		if v.Zoom() != 1 || v.Offset() != Pt(3, 4) {
			t.Errorf("ZoomAt(%v) changed state: zoom=%v offset=%v", f, v.Zoom(), v.Offset())
		}
	}
}

func TestViewport_PanClamp(t *testing.T) {
	// Scaled side is (100 + 2*50) * 1 = 200; viewport 400 gives
	// offset in [-(200-200), 200] = [0, 200].
	tests := []struct {
		name   string
		dx     float64
		wantX  float64
		startX float64
	}{
		{"inside", 50, 150, 100},
		{"past near edge", 500, 200, 100},
		{"past far edge", -500, 0, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewViewport(100, 100, 50)
			v.SetOffset(tt.startX, 0)
			v.Pan(tt.dx, 0, 400, 400)
			if got := v.Offset().X; !near(got, tt.wantX) {
				t.Errorf("offset.X = %v, want %v", got, tt.wantX)
			}
		})
	}
}

func TestViewport_PanClampZoomed(t *testing.T) {
	v := NewViewport(1100, 1100, DefaultPadding)
	v.zoom = 2
	// Scaled side 2400, viewport 800: range [-2000, 400].
	v.Pan(-1e6, 1e6, 800, 800)
	if got := v.Offset(); !nearPoint(got, Pt(-2000, 400)) {
		t.Errorf("offset = %v, want (-2000, 400)", got)
	}
}

func TestViewport_PanTinyCanvas(t *testing.T) {
	// Scaled side 1, viewport 100: range [49, 50].
	v := NewViewport(1, 1, 0)
	v.Pan(-1000, 1000, 100, 100)
	if got := v.Offset(); !nearPoint(got, Pt(49, 50)) {
		t.Errorf("offset = %v, want (49, 50)", got)
	}
}

func TestClampOffset_InvertedRangeUpperWins(t *testing.T) {
	if got := clampOffset(0, -10, 100); !near(got, 50) {
		t.Errorf("clampOffset = %v, want upper bound 50", got)
	}
}

func TestViewport_Recenter(t *testing.T) {
	v := NewViewport(1100, 1100, DefaultPadding)
	v.Recenter(800, 600)
	// (800 - 1200)/2 = -200, (600 - 1200)/2 = -300
	if got := v.Offset(); !nearPoint(got, Pt(-200, -300)) {
		t.Errorf("offset = %v, want (-200, -300)", got)
	}
	// The canvas center lands on the viewport center.
	c := v.BufferToScreen(Pt(550, 550))
	if !nearPoint(c, Pt(400, 300)) {
		t.Errorf("canvas center on screen = %v, want (400, 300)", c)
	}
	if w, h := v.ViewSize(); w != 800 || h != 600 {
		t.Errorf("ViewSize = %dx%d", w, h)
	}
}

func TestViewport_Reset(t *testing.T) {
	v := NewViewport(100, 50, 10)
	v.Recenter(300, 300)
	v.ZoomAt(Pt(10, 10), 3)
	v.Reset()
	if v.Zoom() != 1 {
		t.Errorf("zoom = %v, want 1", v.Zoom())
	}
	// (300 - 120)/2 = 90, (300 - 70)/2 = 115
	if got := v.Offset(); !nearPoint(got, Pt(90, 115)) {
		t.Errorf("offset = %v, want (90, 115)", got)
	}
}
