// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/text/language"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/command"
)

// Environment variables read as flag defaults.
const (
	envWidth        = "EASEL_WIDTH"
	envHeight       = "EASEL_HEIGHT"
	envAutosave     = "EASEL_AUTOSAVE"
	envDocsDir      = "EASEL_DOCS_DIR"
	envLogLevel     = "EASEL_LOG_LEVEL"
	envHistoryLimit = "EASEL_HISTORY_LIMIT"
	envLang         = "EASEL_LANG"
	envBrushColor   = "EASEL_BRUSH_COLOR"
)

type config struct {
	width        int
	height       int
	windowW      int
	windowH      int
	autosave     time.Duration
	docsDir      string
	logLevel     slog.Level
	historyLimit int
	compress     bool
	brushColor   easel.RGBA
	lang         language.Tag
	open         string
}

// loadEnv reads an optional dotenv file into the process environment.
// Variables already set win over the file.
func loadEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// parseConfig builds the configuration from args, taking defaults from the
// environment through getenv.
func parseConfig(args []string, getenv func(string) string, out io.Writer) (config, error) {
	var (
		cfg      config
		autosave string
		level    string
		lang     string
		brush    string
	)

	fset := flag.NewFlagSet("easel", flag.ContinueOnError)
	fset.SetOutput(out)
	fset.IntVar(&cfg.width, "width", envInt(getenv, envWidth, easel.DefaultCanvasWidth), "canvas width in pixels")
	fset.IntVar(&cfg.height, "height", envInt(getenv, envHeight, easel.DefaultCanvasHeight), "canvas height in pixels")
	fset.IntVar(&cfg.windowW, "window-width", 1280, "initial window width")
	fset.IntVar(&cfg.windowH, "window-height", 900, "initial window height")
	fset.StringVar(&autosave, "autosave", getenv(envAutosave), `autosave interval ("off", "5s", "30")`)
	fset.StringVar(&cfg.docsDir, "docs", getenv(envDocsDir), "directory for autosaves before the first save")
	fset.StringVar(&level, "log-level", envString(getenv, envLogLevel, "info"), "log level (debug, info, warn, error)")
	fset.IntVar(&cfg.historyLimit, "history", envInt(getenv, envHistoryLimit, 0), "maximum undo steps, 0 for unlimited")
	fset.BoolVar(&cfg.compress, "compress-history", false, "hold undo snapshots zstd-compressed")
	fset.StringVar(&brush, "brush-color", envString(getenv, envBrushColor, "#000000"), "initial brush color as hex (#rgb, #rrggbb, #rrggbbaa)")
	fset.StringVar(&lang, "lang", envString(getenv, envLang, "en"), "language used to format numbers in the status bar")

	if err := fset.Parse(args); err != nil {
		return config{}, err
	}
	if fset.NArg() > 1 {
		return config{}, fmt.Errorf("%w: at most one image to open, got %d", easel.ErrInvalidArgument, fset.NArg())
	}
	cfg.open = fset.Arg(0)

	if cfg.width <= 0 || cfg.height <= 0 || cfg.width > easel.MaxCanvasSide || cfg.height > easel.MaxCanvasSide {
		return config{}, fmt.Errorf("%w: canvas %dx%d", easel.ErrInvalidArgument, cfg.width, cfg.height)
	}
	if cfg.windowW <= 0 || cfg.windowH <= 0 {
		return config{}, fmt.Errorf("%w: window %dx%d", easel.ErrInvalidArgument, cfg.windowW, cfg.windowH)
	}

	var err error
	if cfg.autosave, err = command.ParseInterval(autosave); err != nil {
		return config{}, err
	}
	if err = cfg.logLevel.UnmarshalText([]byte(level)); err != nil {
		return config{}, fmt.Errorf("%w: log level %q", easel.ErrInvalidArgument, level)
	}
	if cfg.brushColor, err = easel.Hex(brush); err != nil {
		return config{}, err
	}
	if cfg.lang, err = language.Parse(lang); err != nil {
		return config{}, fmt.Errorf("%w: language %q", easel.ErrInvalidArgument, lang)
	}
	return cfg, nil
}

func envString(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return def
}

// envInt returns def when the variable is unset or not an integer.
func envInt(getenv func(string) string, key string, def int) int {
	v := strings.TrimSpace(getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		easel.Logger().Warn("easel: ignoring malformed environment variable", "key", key, "value", v)
		return def
	}
	return n
}

// newLogger returns the text logger installed with easel.SetLogger.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// engineOptions maps the configuration to engine options.
func (c config) engineOptions(viewW, viewH int) []easel.EngineOption {
	opts := []easel.EngineOption{
		easel.WithCanvasSize(c.width, c.height),
		easel.WithViewportSize(viewW, viewH),
		easel.WithHistoryLimit(c.historyLimit),
		easel.WithBrush(easel.Brush{Size: easel.DefaultBrushSize, Color: c.brushColor, Mode: easel.ModeDraw}),
	}
	if c.compress {
		opts = append(opts, easel.WithCompressedHistory())
	}
	return opts
}
