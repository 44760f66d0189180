// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/codec"
)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	e, err := easel.NewEngine(easel.WithCanvasSize(40, 30), easel.WithViewportSize(200, 200))
	if err != nil {
		t.Fatal(err)
	}
	// One stroke so saved files are distinguishable from a blank canvas.
	v := e.Viewport()
	a := v.BufferToScreen(easel.Pt(5.5, 5.5))
	b := v.BufferToScreen(easel.Pt(30.5, 20.5))
	e.PointerDown(a.X, a.Y, easel.ButtonLeft)
	e.PointerDrag(b.X, b.Y)
	e.PointerUp(easel.ButtonLeft)

	return New(e, opts...)
}

func TestSave(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()

	path, err := s.Save(filepath.Join(dir, "drawing"))
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "drawing.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if s.LastSaved() != path {
		t.Errorf("LastSaved = %q, want %q", s.LastSaved(), path)
	}

	img, err := codec.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	want := s.Engine().ExportImage()
	if img.Bounds() != want.Bounds() {
		t.Fatalf("bounds = %v, want %v", img.Bounds(), want.Bounds())
	}
	for _, p := range [][2]int{{0, 0}, {5, 5}, {18, 13}, {39, 29}} {
		got := color.RGBAModel.Convert(img.At(p[0], p[1]))
		if got != want.RGBAAt(p[0], p[1]) {
			t.Errorf("pixel %v = %v, want %v", p, got, want.RGBAAt(p[0], p[1]))
		}
	}
}

func TestSave_FailureKeepsLastSaved(t *testing.T) {
	s := newTestSession(t)
	dir := t.TempDir()
	good, err := s.Save(filepath.Join(dir, "good.png"))
	if err != nil {
		t.Fatal(err)
	}

	_, err = s.Save(filepath.Join(dir, "missing", "bad.png"))
	if !errors.Is(err, easel.ErrIO) {
		t.Errorf("error = %v, want ErrIO", err)
	}
	if s.LastSaved() != good {
		t.Errorf("LastSaved = %q, want %q", s.LastSaved(), good)
	}
}

func TestOpen(t *testing.T) {
	src := newTestSession(t)
	path, err := src.Save(filepath.Join(t.TempDir(), "in.png"))
	if err != nil {
		t.Fatal(err)
	}

	e, _ := easel.NewEngine(easel.WithCanvasSize(5, 5))
	s := New(e)
	if err := s.Open(path); err != nil {
		t.Fatal(err)
	}
	if w, h := e.CanvasSize(); w != 40 || h != 30 {
		t.Errorf("canvas = %dx%d, want 40x30", w, h)
	}
	if e.CanUndo() {
		t.Error("open recorded history")
	}
	if s.LastSaved() != "" {
		t.Error("open changed the last saved path")
	}
}

func TestOpen_FailureKeepsCanvas(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{garbage, filepath.Join(dir, "missing.png")} {
		s := newTestSession(t)
		before := s.Engine().Buffer()
		if err := s.Open(path); !errors.Is(err, easel.ErrIO) {
			t.Errorf("Open(%s) error = %v, want ErrIO", filepath.Base(path), err)
		}
		if !s.Engine().Buffer().Equal(before) {
			t.Errorf("failed Open(%s) changed the canvas", filepath.Base(path))
		}
	}
}

func TestAutosavePath_BeforeManualSave(t *testing.T) {
	docs := filepath.Join(t.TempDir(), "home", "Documents")
	s := newTestSession(t, WithDocumentsDir(docs))

	path, err := s.AutosavePath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(docs, "autosave.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
	if fi, err := os.Stat(docs); err != nil || !fi.IsDir() {
		t.Errorf("documents directory not created: %v", err)
	}
}

func TestAutosavePath_AfterManualSave(t *testing.T) {
	s := newTestSession(t, WithDocumentsDir(t.TempDir()))
	dir := t.TempDir()
	if _, err := s.Save(filepath.Join(dir, "my.picture.PNG")); err != nil {
		t.Fatal(err)
	}
	path, err := s.AutosavePath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "my.picture - autosave.PNG"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestAutosavePath_DefaultDocumentsDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	s := newTestSession(t)
	path, err := s.AutosavePath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "Documents", "autosave.png"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestAutoSave(t *testing.T) {
	s := newTestSession(t, WithDocumentsDir(t.TempDir()))
	dir := t.TempDir()
	saved, err := s.Save(filepath.Join(dir, "art.png"))
	if err != nil {
		t.Fatal(err)
	}

	path, err := s.AutoSave()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "art - autosave.png"); path != want {
		t.Errorf("autosave path = %q, want %q", path, want)
	}
	if _, err := codec.Load(path); err != nil {
		t.Errorf("autosave unreadable: %v", err)
	}
	if s.LastSaved() != saved {
		t.Error("autosave changed the last saved path")
	}
}

func TestAutoSave_Failure(t *testing.T) {
	// A regular file where the documents directory should be.
	blocker := filepath.Join(t.TempDir(), "Documents")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	s := newTestSession(t, WithDocumentsDir(blocker))
	if _, err := s.AutoSave(); !errors.Is(err, easel.ErrIO) {
		t.Errorf("error = %v, want ErrIO", err)
	}
}
