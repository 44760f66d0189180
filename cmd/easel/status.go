// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/command"
)

// status is what the status bar shows.
type status struct {
	width, height int
	zoom          float64
	brush         easel.Brush
	undo, redo    int
	autosave      time.Duration
	path          string
	note          string
}

// statusOf samples the engine and session state for the status bar.
func (a *app) statusOf() status {
	w, h := a.engine.CanvasSize()
	undo, redo := a.engine.HistoryLen()
	return status{
		width:    w,
		height:   h,
		zoom:     a.engine.Zoom(),
		brush:    a.engine.Brush(),
		undo:     undo,
		redo:     redo,
		autosave: a.autosaver.Interval(),
		path:     a.session.LastSaved(),
		note:     a.note,
	}
}

// statusPrinter formats numbers for the status bar in the configured language.
type statusPrinter struct {
	p *message.Printer
}

func newStatusPrinter(tag language.Tag) statusPrinter {
	return statusPrinter{p: message.NewPrinter(tag)}
}

// line renders s as a single status bar line.
func (sp statusPrinter) line(s status) string {
	parts := []string{
		sp.p.Sprintf("%d x %d px", s.width, s.height),
		sp.p.Sprintf("Zoom %.0f%%", s.zoom*100),
		sp.p.Sprintf("%s %d px", s.brush.Mode, s.brush.Size),
		sp.p.Sprintf("Undo %d / Redo %d", s.undo, s.redo),
		"Autosave " + command.IntervalLabel(s.autosave),
	}
	if s.path != "" {
		parts = append(parts, filepath.Base(s.path))
	} else {
		parts = append(parts, "Untitled")
	}
	if s.note != "" {
		parts = append(parts, s.note)
	}
	return strings.Join(parts, "  |  ")
}
