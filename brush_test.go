package easel

import (
	"errors"
	"testing"
)

func TestParseBrushMode(t *testing.T) {
	tests := []struct {
		in   string
		want BrushMode
	}{
		{"Pencil", ModeDraw},
		{"draw", ModeDraw},
		{" ERASER ", ModeErase},
		{"erase", ModeErase},
	}
	for _, tt := range tests {
		got, err := ParseBrushMode(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseBrushMode(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseBrushMode("spray"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseBrushMode(spray) error = %v, want ErrInvalidArgument", err)
	}
}

func TestBrushMode_String(t *testing.T) {
	if ModeDraw.String() != "Pencil" || ModeErase.String() != "Eraser" {
		t.Errorf("names = %s, %s", ModeDraw, ModeErase)
	}
	if got := BrushMode(9).String(); got != "BrushMode(9)" {
		t.Errorf("unknown mode = %s", got)
	}
}

func TestBrush_Paint(t *testing.T) {
	b := Brush{Color: Red, Mode: ModeDraw}
	if b.Paint(White) != Red {
		t.Error("draw mode should paint the brush color")
	}
	b.Mode = ModeErase
	if b.Paint(Blue) != Blue {
		t.Error("erase mode should paint the background")
	}
}

func TestClampBrushSize(t *testing.T) {
	tests := []struct{ in, want int }{
		{-3, 1}, {0, 1}, {1, 1}, {5, 5}, {50, 50}, {51, 50},
	}
	for _, tt := range tests {
		if got := clampBrushSize(tt.in); got != tt.want {
			t.Errorf("clampBrushSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
