// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gogpu/easel"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := parseConfig(nil, env(nil), io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.width != easel.DefaultCanvasWidth || cfg.height != easel.DefaultCanvasHeight {
		t.Errorf("canvas = %dx%d, want default", cfg.width, cfg.height)
	}
	if cfg.autosave != 0 {
		t.Errorf("autosave = %v, want off", cfg.autosave)
	}
	if cfg.logLevel != slog.LevelInfo {
		t.Errorf("logLevel = %v, want INFO", cfg.logLevel)
	}
	if cfg.historyLimit != 0 || cfg.compress {
		t.Errorf("history = %d compress=%v, want unbounded plain", cfg.historyLimit, cfg.compress)
	}
	if cfg.brushColor != easel.Black {
		t.Errorf("brushColor = %+v, want black", cfg.brushColor)
	}
	if cfg.lang.String() != "en" {
		t.Errorf("lang = %v, want en", cfg.lang)
	}
	if cfg.open != "" {
		t.Errorf("open = %q, want none", cfg.open)
	}
}

func TestParseConfigEnvironment(t *testing.T) {
	vars := map[string]string{
		envWidth:        "640",
		envHeight:       " 480 ",
		envAutosave:     "30",
		envDocsDir:      "/tmp/easel",
		envLogLevel:     "debug",
		envHistoryLimit: "20",
		envLang:         "de",
		envBrushColor:   "#f00",
	}
	cfg, err := parseConfig(nil, env(vars), io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.width != 640 || cfg.height != 480 {
		t.Errorf("canvas = %dx%d, want 640x480", cfg.width, cfg.height)
	}
	if cfg.autosave != 30*time.Second {
		t.Errorf("autosave = %v, want 30s", cfg.autosave)
	}
	if cfg.docsDir != "/tmp/easel" {
		t.Errorf("docsDir = %q", cfg.docsDir)
	}
	if cfg.logLevel != slog.LevelDebug {
		t.Errorf("logLevel = %v, want DEBUG", cfg.logLevel)
	}
	if cfg.historyLimit != 20 {
		t.Errorf("historyLimit = %d, want 20", cfg.historyLimit)
	}
	if cfg.lang.String() != "de" {
		t.Errorf("lang = %v, want de", cfg.lang)
	}
	if cfg.brushColor != easel.Red {
		t.Errorf("brushColor = %+v, want red", cfg.brushColor)
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	vars := map[string]string{envWidth: "640", envAutosave: "5s"}
	args := []string{"-width", "300", "-autosave", "off", "-compress-history", "picture.png"}
	cfg, err := parseConfig(args, env(vars), io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.width != 300 {
		t.Errorf("width = %d, want 300", cfg.width)
	}
	if cfg.autosave != 0 {
		t.Errorf("autosave = %v, want off", cfg.autosave)
	}
	if !cfg.compress {
		t.Error("compress = false, want true")
	}
	if cfg.open != "picture.png" {
		t.Errorf("open = %q, want picture.png", cfg.open)
	}
}

func TestParseConfigMalformedEnvironmentInteger(t *testing.T) {
	cfg, err := parseConfig(nil, env(map[string]string{envWidth: "wide"}), io.Discard)
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.width != easel.DefaultCanvasWidth {
		t.Errorf("width = %d, want default for malformed value", cfg.width)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"zero width", []string{"-width", "0"}},
		{"negative height", []string{"-height", "-1"}},
		{"oversize width", []string{"-width", "16385"}},
		{"brush color", []string{"-brush-color", "#12345"}},
		{"window", []string{"-window-width", "0"}},
		{"autosave", []string{"-autosave", "soon"}},
		{"log level", []string{"-log-level", "chatty"}},
		{"language", []string{"-lang", "not a tag!"}},
		{"two images", []string{"a.png", "b.png"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfig(tt.args, env(nil), io.Discard)
			if !errors.Is(err, easel.ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestParseConfigHelp(t *testing.T) {
	_, err := parseConfig([]string{"-h"}, env(nil), io.Discard)
	if !errors.Is(err, flag.ErrHelp) {
		t.Errorf("error = %v, want flag.ErrHelp", err)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), ".env")); err != nil {
		t.Errorf("loadEnv(missing) = %v, want nil", err)
	}
}

func TestLoadEnvFile(t *testing.T) {
	const key = "EASEL_TEST_LOAD_ENV"
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(key+"=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Unsetenv(key) })

	if err := loadEnv(path); err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
	if got := os.Getenv(key); got != "from-file" {
		t.Errorf("%s = %q, want from-file", key, got)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := config{width: 120, height: 90, historyLimit: 3, compress: true, brushColor: easel.Blue}
	e, err := easel.NewEngine(cfg.engineOptions(400, 300)...)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if w, h := e.CanvasSize(); w != 120 || h != 90 {
		t.Errorf("CanvasSize = %dx%d, want 120x90", w, h)
	}
	v := e.Viewport()
	if w, h := v.ViewSize(); w != 400 || h != 300 {
		t.Errorf("ViewSize = %dx%d, want 400x300", w, h)
	}
	if b := e.Brush(); b.Color != easel.Blue || b.Size != easel.DefaultBrushSize || b.Mode != easel.ModeDraw {
		t.Errorf("brush = %+v, want %dpx blue pencil", b, easel.DefaultBrushSize)
	}
	for range 5 {
		e.Clear()
	}
	if undo, _ := e.HistoryLen(); undo != 3 {
		t.Errorf("undo depth = %d, want 3", undo)
	}
}
