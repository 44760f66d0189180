// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image/color"
	"slices"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/command"
	"github.com/gogpu/easel/session"
)

// Layout of the window chrome in screen pixels.
const (
	ribbonHeight = 48
	statusHeight = 24
	fontSize     = 10
	buttonH      = 28
	buttonGap    = 4
	swatchSize   = 20
)

var (
	chromeColor   = rl.Color{R: 50, G: 50, B: 50, A: 255}
	buttonColor   = rl.Color{R: 70, G: 70, B: 70, A: 255}
	hoverColor    = rl.Color{R: 80, G: 80, B: 80, A: 255}
	selectedColor = rl.Color{R: 100, G: 100, B: 150, A: 255}
	outlineColor  = rl.Color{R: 90, G: 90, B: 90, A: 255}
)

// palette holds the swatches offered in the ribbon.
var palette = mustPalette(
	"#000000", "#7f7f7f", "#880015", "#ed1c24", "#ff7f27", "#fff200",
	"#22b14c", "#00a2e8", "#3f48cc", "#a349a4", "#ffffff", "#c3c3c3",
)

// mustPalette parses hex swatches into raylib colors. It panics on a
// malformed entry.
func mustPalette(hexes ...string) []color.RGBA {
	out := make([]color.RGBA, len(hexes))
	for i, h := range hexes {
		c, err := easel.Hex(h)
		if err != nil {
			panic(err)
		}
		out[i] = color.RGBAModel.Convert(c.Color()).(color.RGBA)
	}
	return out
}

// button is a clickable ribbon entry.
type button struct {
	rect     rl.Rectangle
	label    string
	hover    bool
	press    func(a *app)
	selected func(a *app) bool
}

// slider selects the brush size.
type slider struct {
	rect     rl.Rectangle
	dragging bool
}

// ribbon is the tool strip across the top of the window.
type ribbon struct {
	buttons  []button
	swatches []rl.Rectangle
	size     slider
}

func commandButton(label string, k command.Kind) button {
	return button{label: label, press: func(a *app) { a.run(k) }}
}

func modeButton(label string, m easel.BrushMode) button {
	return button{
		label:    label,
		press:    func(a *app) { a.dispatch(command.BrushMode(m)) },
		selected: func(a *app) bool { return a.engine.Brush().Mode == m },
	}
}

// newRibbon lays out the ribbon left to right.
func newRibbon() *ribbon {
	r := &ribbon{
		buttons: []button{
			commandButton("New", command.New),
			commandButton("Open", command.Open),
			commandButton("Save", command.Save),
			commandButton("Save As", command.SaveAs),
			commandButton("Undo", command.Undo),
			commandButton("Redo", command.Redo),
			commandButton("Clear", command.Clear),
			commandButton("Zoom +", command.ZoomIn),
			commandButton("Zoom -", command.ZoomOut),
			modeButton("Pencil", easel.ModeDraw),
			modeButton("Eraser", easel.ModeErase),
			{label: "Autosave", press: (*app).cycleAutosave},
			{label: "Help", press: func(*app) { showHelp() }},
		},
	}

	x := float32(buttonGap * 2)
	y := float32(ribbonHeight-buttonH) / 2
	for i := range r.buttons {
		w := float32(rl.MeasureText(r.buttons[i].label, fontSize)) + 16
		r.buttons[i].rect = rl.Rectangle{X: x, Y: y, Width: w, Height: buttonH}
		x += w + buttonGap
	}

	x += buttonGap * 2
	sy := float32(ribbonHeight-swatchSize) / 2
	for range palette {
		r.swatches = append(r.swatches, rl.Rectangle{X: x, Y: sy, Width: swatchSize, Height: swatchSize})
		x += swatchSize + 2
	}

	x += buttonGap * 4
	r.size.rect = rl.Rectangle{X: x, Y: float32(ribbonHeight)/2 + 2, Width: 120, Height: 8}
	return r
}

// update handles clicks on the ribbon. It reports whether the mouse is over
// the ribbon so the canvas ignores the event.
func (r *ribbon) update(a *app, mouse rl.Vector2) bool {
	over := mouse.Y < ribbonHeight
	pressed := rl.IsMouseButtonPressed(rl.MouseLeftButton)

	for i := range r.buttons {
		b := &r.buttons[i]
		b.hover = rl.CheckCollisionPointRec(mouse, b.rect)
		if b.hover && pressed {
			b.press(a)
		}
	}

	for i, rect := range r.swatches {
		if pressed && rl.CheckCollisionPointRec(mouse, rect) {
			a.dispatch(command.BrushColor(easel.FromColor(palette[i])))
		}
	}

	hit := r.size.rect
	hit.Y -= 8
	hit.Height += 16
	if pressed && rl.CheckCollisionPointRec(mouse, hit) {
		r.size.dragging = true
	}
	if r.size.dragging {
		if rl.IsMouseButtonDown(rl.MouseLeftButton) {
			size := sliderValue(r.size.rect.X, r.size.rect.Width, mouse.X)
			if size != a.engine.Brush().Size {
				a.dispatch(command.BrushSize(size))
			}
		} else {
			r.size.dragging = false
		}
		return true
	}
	return over
}

// sliderValue maps a mouse x over a slider track to a brush size.
func sliderValue(x, width, mouseX float32) int {
	t := (mouseX - x) / width
	t = max(0, min(1, t))
	return easel.MinBrushSize + int(t*float32(easel.MaxBrushSize-easel.MinBrushSize)+0.5)
}

func (r *ribbon) draw(a *app, screenW int32) {
	rl.DrawRectangle(0, 0, screenW, ribbonHeight, chromeColor)

	for _, b := range r.buttons {
		c := buttonColor
		if b.selected != nil && b.selected(a) {
			c = selectedColor
		} else if b.hover {
			c = hoverColor
		}
		rl.DrawRectangleRec(b.rect, c)
		rl.DrawRectangleLinesEx(b.rect, 1, outlineColor)

		label := b.label
		if label == "Autosave" {
			label = "Autosave: " + command.IntervalLabel(a.autosaver.Interval())
		}
		tw := rl.MeasureText(label, fontSize)
		rl.DrawText(label, int32(b.rect.X+b.rect.Width/2)-tw/2, int32(b.rect.Y+b.rect.Height/2)-fontSize/2, fontSize, rl.White)
	}

	brush := a.engine.Brush()
	for i, rect := range r.swatches {
		rl.DrawRectangleRec(rect, palette[i])
		if brush.Mode == easel.ModeDraw && easel.FromColor(palette[i]) == brush.Color {
			rl.DrawRectangleLinesEx(rect, 2, rl.White)
		} else {
			rl.DrawRectangleLinesEx(rect, 1, outlineColor)
		}
	}

	s := r.size.rect
	rl.DrawText(fmt.Sprintf("Size %d px", brush.Size), int32(s.X), int32(s.Y)-14, fontSize, rl.LightGray)
	rl.DrawRectangleRec(s, rl.Color{R: 60, G: 60, B: 60, A: 255})
	t := float32(brush.Size-easel.MinBrushSize) / float32(easel.MaxBrushSize-easel.MinBrushSize)
	rl.DrawRectangle(int32(s.X+t*s.Width)-2, int32(s.Y)-4, 4, int32(s.Height)+8, rl.White)
}

// nextInterval returns the autosave choice after cur, wrapping around.
func nextInterval(cur time.Duration) time.Duration {
	i := slices.Index(session.AutosaveIntervals, cur)
	return session.AutosaveIntervals[(i+1)%len(session.AutosaveIntervals)]
}

func (a *app) cycleAutosave() {
	a.dispatch(command.Autosave(nextInterval(a.autosaver.Interval())))
}
