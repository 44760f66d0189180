// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/command"
	"github.com/gogpu/easel/session"
)

// app is the desktop shell: it owns the window chrome and forwards input to
// the engine through the command dispatcher.
type app struct {
	engine     *easel.Engine
	session    *session.Session
	autosaver  *session.Autosaver
	dispatcher *command.Dispatcher
	printer    statusPrinter

	ribbon *ribbon
	form   sizeForm
	note   string

	// Pointer capture: a button pressed over the canvas keeps feeding the
	// engine until it is released, even over the chrome.
	drawing bool
	panning bool
	last    rl.Vector2

	frame   *image.RGBA
	pixels  []color.RGBA
	texture rl.Texture2D
}

func newApp(cfg config, screenW, screenH int) (*app, error) {
	viewW, viewH := canvasArea(screenW, screenH)
	engine, err := easel.NewEngine(cfg.engineOptions(viewW, viewH)...)
	if err != nil {
		return nil, err
	}

	var opts []session.Option
	if cfg.docsDir != "" {
		opts = append(opts, session.WithDocumentsDir(cfg.docsDir))
	}
	s := session.New(engine, opts...)
	autosaver := session.NewAutosaver(s)

	a := &app{
		engine:     engine,
		session:    s,
		autosaver:  autosaver,
		dispatcher: command.NewDispatcher(s, autosaver, filePrompter{}),
		printer:    newStatusPrinter(cfg.lang),
		ribbon:     newRibbon(),
	}
	a.dispatch(command.Autosave(cfg.autosave))
	if cfg.open != "" {
		a.dispatch(command.Command{Kind: command.Open, Path: cfg.open})
	}
	a.resize(viewW, viewH)
	return a, nil
}

// canvasArea returns the size of the canvas widget inside a window.
func canvasArea(screenW, screenH int) (width, height int) {
	return max(screenW, 1), max(screenH-ribbonHeight-statusHeight, 1)
}

func (a *app) close() {
	a.autosaver.Stop()
	if a.texture.ID != 0 {
		rl.UnloadTexture(a.texture)
	}
}

// run executes a command picked from the ribbon or a shortcut.
func (a *app) run(k command.Kind) {
	if k == command.New {
		a.form.show(a.engine.CanvasSize())
		return
	}
	a.dispatch(command.Command{Kind: k})
}

func (a *app) dispatch(cmd command.Command) {
	if err := a.dispatcher.Dispatch(cmd); err != nil {
		a.note = fmt.Sprintf("%s failed", cmd.Kind)
		showError(err)
		return
	}
	switch cmd.Kind {
	case command.Save, command.SaveAs:
		if p := a.session.LastSaved(); p != "" {
			a.note = "Saved " + filepath.Base(p)
		}
	case command.Open:
		a.note = ""
	}
}

// resize reallocates the frame and its texture for a new canvas area.
func (a *app) resize(width, height int) {
	a.engine.SetViewportSize(width, height)
	if a.texture.ID != 0 {
		rl.UnloadTexture(a.texture)
	}
	a.frame = image.NewRGBA(image.Rect(0, 0, width, height))
	a.engine.Render(a.frame)
	img := rl.NewImageFromImage(a.frame)
	a.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
}

func (a *app) update() {
	if rl.IsWindowResized() {
		a.resize(canvasArea(rl.GetScreenWidth(), rl.GetScreenHeight()))
	}

	if a.form.open {
		a.updateForm()
		return
	}

	mouse := rl.GetMousePosition()
	overChrome := false
	if !a.drawing && !a.panning {
		overChrome = a.ribbon.update(a, mouse) || mouse.Y >= float32(rl.GetScreenHeight()-statusHeight)
	}
	if !overChrome {
		a.updateCanvas(mouse)
	}
	a.updateShortcuts()
}

// updateCanvas forwards pointer and wheel input to the engine in canvas
// widget coordinates.
func (a *app) updateCanvas(mouse rl.Vector2) {
	x, y := float64(mouse.X), float64(mouse.Y-ribbonHeight)
	moved := mouse != a.last
	a.last = mouse

	switch {
	case rl.IsMouseButtonPressed(rl.MouseLeftButton) && !a.panning:
		a.drawing = true
		a.engine.PointerDown(x, y, easel.ButtonLeft)
	case rl.IsMouseButtonPressed(rl.MouseMiddleButton) && !a.drawing:
		a.panning = true
		a.engine.PointerDown(x, y, easel.ButtonMiddle)
	}

	if (a.drawing || a.panning) && moved {
		a.engine.PointerDrag(x, y)
	}

	if a.drawing && rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		a.drawing = false
		a.engine.PointerUp(easel.ButtonLeft)
	}
	if a.panning && rl.IsMouseButtonReleased(rl.MouseMiddleButton) {
		a.panning = false
		a.engine.PointerUp(easel.ButtonMiddle)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		dir := easel.WheelIn
		if wheel < 0 {
			dir = easel.WheelOut
		}
		a.engine.WheelZoom(x, y, dir, ctrlDown())
	}
}

func ctrlDown() bool {
	return rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
}

func shiftDown() bool {
	return rl.IsKeyDown(rl.KeyLeftShift) || rl.IsKeyDown(rl.KeyRightShift)
}

// shortcutKeys are the distinct keys bound in command.Shortcuts.
var shortcutKeys = func() []rune {
	var keys []rune
	seen := map[rune]bool{}
	for _, s := range command.Shortcuts {
		if !seen[s.Key] {
			seen[s.Key] = true
			keys = append(keys, s.Key)
		}
	}
	return keys
}()

// keyCode maps a shortcut key to its raylib key code. Printable keys share
// their ASCII code.
func keyCode(r rune) int32 {
	if r == command.KeyDelete {
		return rl.KeyDelete
	}
	return int32(r)
}

func (a *app) updateShortcuts() {
	if a.drawing || a.panning {
		return
	}
	ctrl, shift := ctrlDown(), shiftDown()
	for _, key := range shortcutKeys {
		if !rl.IsKeyPressed(keyCode(key)) {
			continue
		}
		if k, ok := command.Lookup(ctrl, shift, key); ok {
			a.run(k)
		}
	}
}

func (a *app) updateForm() {
	for r := rl.GetCharPressed(); r > 0; r = rl.GetCharPressed() {
		a.form.typeRune(rune(r))
	}
	switch {
	case rl.IsKeyPressed(rl.KeyBackspace):
		a.form.backspace()
	case rl.IsKeyPressed(rl.KeyTab):
		a.form.toggle()
	case rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter):
		a.dispatch(a.form.submit())
	case rl.IsKeyPressed(rl.KeyEscape):
		a.form.close()
	}
}

func (a *app) draw() {
	if a.engine.IsDirty() {
		a.engine.Render(a.frame)
		a.pixels = texturePixels(a.pixels, a.frame.Pix)
		rl.UpdateTexture(a.texture, a.pixels)
	}

	screenW, screenH := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 40, G: 40, B: 40, A: 255})
	rl.DrawTexture(a.texture, 0, ribbonHeight, rl.White)
	a.ribbon.draw(a, screenW)

	rl.DrawRectangle(0, screenH-statusHeight, screenW, statusHeight, chromeColor)
	rl.DrawText(a.printer.line(a.statusOf()), 8, screenH-statusHeight+(statusHeight-fontSize)/2, fontSize, rl.LightGray)

	if a.form.open {
		a.drawForm(screenW, screenH)
	}
	rl.EndDrawing()
}

func (a *app) drawForm(screenW, screenH int32) {
	const boxW, boxH = 260, 150
	rl.DrawRectangle(0, 0, screenW, screenH, rl.Fade(rl.Black, 0.5))
	x, y := (screenW-boxW)/2, (screenH-boxH)/2
	rl.DrawRectangle(x, y, boxW, boxH, chromeColor)
	rl.DrawRectangleLines(x, y, boxW, boxH, outlineColor)
	rl.DrawText("New canvas", x+12, y+12, fontSize*2, rl.White)

	fields := []struct {
		label string
		value string
		field sizeField
	}{
		{"Width", a.form.width, fieldWidth},
		{"Height", a.form.height, fieldHeight},
	}
	for i, f := range fields {
		fy := y + 44 + int32(i)*32
		rl.DrawText(f.label, x+12, fy+8, fontSize, rl.LightGray)
		box := rl.Rectangle{X: float32(x + 80), Y: float32(fy), Width: 160, Height: 24}
		rl.DrawRectangleRec(box, buttonColor)
		outline, thick := outlineColor, float32(1)
		if a.form.focus == f.field {
			outline, thick = rl.White, 2
		}
		rl.DrawRectangleLinesEx(box, thick, outline)
		rl.DrawText(f.value, int32(box.X)+6, fy+7, fontSize, rl.White)
	}
	rl.DrawText("Enter: create   Tab: switch   Esc: cancel", x+12, y+boxH-20, fontSize, rl.Gray)
}

// texturePixels converts packed RGBA bytes to the pixel slice UpdateTexture
// takes, reusing dst when it is large enough.
func texturePixels(dst []color.RGBA, pix []uint8) []color.RGBA {
	n := len(pix) / 4
	if cap(dst) < n {
		dst = make([]color.RGBA, n)
	}
	dst = dst[:n]
	for i := range dst {
		j := i * 4
		dst[i] = color.RGBA{R: pix[j], G: pix[j+1], B: pix[j+2], A: pix[j+3]}
	}
	return dst
}
