// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/sqweek/dialog"
	"golang.org/x/text/language"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/command"
	"github.com/gogpu/easel/session"
)

func TestStatusLine(t *testing.T) {
	s := status{
		width:    1100,
		height:   1100,
		zoom:     1.1,
		brush:    easel.Brush{Size: 5, Mode: easel.ModeErase},
		undo:     2,
		autosave: 5 * time.Second,
		path:     "/home/ada/pictures/cat.png",
	}
	got := newStatusPrinter(language.English).line(s)
	for _, want := range []string{"1,100 x 1,100 px", "Zoom 110%", "Eraser 5 px", "Undo 2 / Redo 0", "Autosave 5s", "cat.png"} {
		if !strings.Contains(got, want) {
			t.Errorf("line = %q, missing %q", got, want)
		}
	}
	if strings.Contains(got, "pictures") {
		t.Errorf("line = %q, want base name only", got)
	}
}

func TestStatusLineLocalized(t *testing.T) {
	got := newStatusPrinter(language.German).line(status{width: 1100, height: 900, zoom: 1})
	if !strings.Contains(got, "1.100 x 900 px") {
		t.Errorf("line = %q, want German digit grouping", got)
	}
}

func TestStatusLineUntitledWithNote(t *testing.T) {
	got := newStatusPrinter(language.English).line(status{width: 1, height: 1, zoom: 1, note: "Save failed"})
	if !strings.Contains(got, "Untitled") || !strings.HasSuffix(got, "Save failed") {
		t.Errorf("line = %q", got)
	}
	if !strings.Contains(got, "Autosave Off") {
		t.Errorf("line = %q, want autosave off", got)
	}
}

func TestTexturePixels(t *testing.T) {
	pix := []uint8{1, 2, 3, 4, 5, 6, 7, 8}
	got := texturePixels(nil, pix)
	want := []color.RGBA{{1, 2, 3, 4}, {5, 6, 7, 8}}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("texturePixels = %v, want %v", got, want)
	}

	reuse := make([]color.RGBA, 0, 8)
	got = texturePixels(reuse, pix)
	if &got[0] != &reuse[:1][0] {
		t.Error("texturePixels did not reuse a large enough slice")
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestPalette(t *testing.T) {
	if len(palette) != 12 {
		t.Fatalf("palette has %d swatches, want 12", len(palette))
	}
	if got, want := palette[3], (color.RGBA{237, 28, 36, 255}); got != want {
		t.Errorf("palette[3] = %v, want %v", got, want)
	}
	if easel.FromColor(palette[0]) != easel.Black || easel.FromColor(palette[10]) != easel.White {
		t.Error("black and white swatches do not match the engine colors")
	}

	defer func() {
		if recover() == nil {
			t.Error("mustPalette accepted a malformed swatch")
		}
	}()
	mustPalette("#00000g")
}

func TestSliderValue(t *testing.T) {
	tests := []struct {
		mouseX float32
		want   int
	}{
		{-50, easel.MinBrushSize},
		{100, easel.MinBrushSize},
		{150, easel.MinBrushSize + (easel.MaxBrushSize-easel.MinBrushSize+1)/2},
		{200, easel.MaxBrushSize},
		{500, easel.MaxBrushSize},
	}
	for _, tt := range tests {
		if got := sliderValue(100, 100, tt.mouseX); got != tt.want {
			t.Errorf("sliderValue(x=%v) = %d, want %d", tt.mouseX, got, tt.want)
		}
	}
}

func TestNextInterval(t *testing.T) {
	n := len(session.AutosaveIntervals)
	for i, d := range session.AutosaveIntervals {
		if got, want := nextInterval(d), session.AutosaveIntervals[(i+1)%n]; got != want {
			t.Errorf("nextInterval(%v) = %v, want %v", d, got, want)
		}
	}
	if got := nextInterval(7 * time.Second); got != 0 {
		t.Errorf("nextInterval(unlisted) = %v, want off", got)
	}
}

func TestKeyCode(t *testing.T) {
	for _, r := range []rune{'N', 'Z', '=', '-'} {
		if got := keyCode(r); got != int32(r) {
			t.Errorf("keyCode(%q) = %d, want %d", r, got, r)
		}
	}
	if keyCode(command.KeyDelete) == int32(command.KeyDelete) {
		t.Error("keyCode(KeyDelete) must map to the raylib delete key")
	}
}

func TestShortcutKeysDistinct(t *testing.T) {
	seen := map[rune]bool{}
	for _, k := range shortcutKeys {
		if seen[k] {
			t.Errorf("key %q listed twice", k)
		}
		seen[k] = true
	}
	for _, s := range command.Shortcuts {
		if !seen[s.Key] {
			t.Errorf("shortcut %s has no polled key", s.Label())
		}
	}
}

func TestSizeForm(t *testing.T) {
	var f sizeForm
	f.show(1100, 900)
	if !f.open || f.width != "1100" || f.height != "900" || f.focus != fieldWidth {
		t.Fatalf("show: %+v", f)
	}

	f.backspace()
	f.backspace()
	f.typeRune('x')
	f.typeRune('5')
	if f.width != "115" {
		t.Errorf("width = %q, want 115", f.width)
	}

	f.toggle()
	f.typeRune('0')
	if f.height != "9000" {
		t.Errorf("height = %q, want 9000", f.height)
	}
	for range 10 {
		f.typeRune('1')
	}
	if len(f.height) != 6 {
		t.Errorf("height = %q, want at most 6 digits", f.height)
	}

	cmd := f.submit()
	if cmd.Kind != command.New || cmd.Width != "115" || cmd.Height != "900011" {
		t.Errorf("submit = %+v", cmd)
	}
	if f.open {
		t.Error("form still open after submit")
	}
}

func TestSizeFormBackspaceEmpty(t *testing.T) {
	var f sizeForm
	f.show(1, 1)
	f.backspace()
	f.backspace()
	if f.width != "" {
		t.Errorf("width = %q, want empty", f.width)
	}
}

func TestCanvasArea(t *testing.T) {
	if w, h := canvasArea(1280, 900); w != 1280 || h != 900-ribbonHeight-statusHeight {
		t.Errorf("canvasArea = %dx%d", w, h)
	}
	if w, h := canvasArea(0, 10); w != 1 || h != 1 {
		t.Errorf("canvasArea(tiny) = %dx%d, want 1x1", w, h)
	}
}

func TestDialogErr(t *testing.T) {
	if err := dialogErr(dialog.ErrCancelled); !errors.Is(err, command.ErrCancelled) {
		t.Errorf("dialogErr(cancel) = %v, want ErrCancelled", err)
	}
	if err := dialogErr(nil); err != nil {
		t.Errorf("dialogErr(nil) = %v", err)
	}
	other := fmt.Errorf("no display")
	if err := dialogErr(other); err != other {
		t.Errorf("dialogErr(other) = %v, want passthrough", err)
	}
}

func TestFilePrompterDimensionsCancels(t *testing.T) {
	if _, _, err := (filePrompter{}).Dimensions(10, 10); !errors.Is(err, command.ErrCancelled) {
		t.Errorf("Dimensions error = %v, want ErrCancelled", err)
	}
}
