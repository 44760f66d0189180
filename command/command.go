// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package command is the single entry point a UI shell uses to drive the
// engine: every menu item, ribbon button and shortcut becomes a Command
// handed to a Dispatcher.
package command

import (
	"fmt"
	"time"

	"github.com/gogpu/easel"
)

// Kind identifies a user command.
type Kind int

const (
	// New replaces the canvas with a blank one of the requested size.
	New Kind = iota
	// Save writes to the given path, the last saved path, or a prompted one.
	Save
	// SaveAs always writes to the given or a prompted path.
	SaveAs
	// Open replaces the canvas with an image file.
	Open
	Undo
	Redo
	ZoomIn
	ZoomOut
	Clear
	SetBrushColor
	SetBrushMode
	SetBrushSize
	// SetAutosave changes the autosave interval; zero disables it.
	SetAutosave
)

var kindNames = [...]string{
	New:           "New",
	Save:          "Save",
	SaveAs:        "Save As",
	Open:          "Open",
	Undo:          "Undo",
	Redo:          "Redo",
	ZoomIn:        "Zoom In",
	ZoomOut:       "Zoom Out",
	Clear:         "Clear",
	SetBrushColor: "Brush Color",
	SetBrushMode:  "Brush Type",
	SetBrushSize:  "Brush Size",
	SetAutosave:   "Autosave",
}

// String returns the menu label of the command.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Command is one user request. Only the fields relevant to Kind are read.
type Command struct {
	Kind Kind

	// Width and Height are the dimension text for New, as typed by the
	// user. When both are empty the Prompter is asked.
	Width, Height string

	// Path is the file for Save, SaveAs and Open. When empty the
	// Prompter is asked.
	Path string

	Color    easel.RGBA
	Mode     easel.BrushMode
	Size     int
	Interval time.Duration
}

// NewCanvas returns a New command with dimension text.
func NewCanvas(width, height string) Command {
	return Command{Kind: New, Width: width, Height: height}
}

// BrushColor returns a SetBrushColor command.
func BrushColor(c easel.RGBA) Command {
	return Command{Kind: SetBrushColor, Color: c}
}

// BrushMode returns a SetBrushMode command.
func BrushMode(m easel.BrushMode) Command {
	return Command{Kind: SetBrushMode, Mode: m}
}

// BrushSize returns a SetBrushSize command.
func BrushSize(size int) Command {
	return Command{Kind: SetBrushSize, Size: size}
}

// Autosave returns a SetAutosave command.
func Autosave(d time.Duration) Command {
	return Command{Kind: SetAutosave, Interval: d}
}
