// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"strconv"
	"strings"
	"unicode"

	"github.com/sqweek/dialog"

	"github.com/gogpu/easel/codec"
	"github.com/gogpu/easel/command"
)

// filePrompter asks for paths with the native file dialogs.
//
// Dimensions are collected by the in-window sizeForm instead, because the
// native dialogs have no text entry; the shell never dispatches a New
// command without dimensions.
type filePrompter struct{}

var _ command.Prompter = filePrompter{}

func (filePrompter) Dimensions(int, int) (string, string, error) {
	return "", "", command.ErrCancelled
}

func (filePrompter) SavePath() (string, error) {
	path, err := dialog.File().Filter("PNG image", strings.TrimPrefix(codec.Ext, ".")).Title("Save As").Save()
	return path, dialogErr(err)
}

func (filePrompter) OpenPath() (string, error) {
	path, err := dialog.File().Filter("Images", codec.Extensions...).Title("Open").Load()
	return path, dialogErr(err)
}

func dialogErr(err error) error {
	if errors.Is(err, dialog.ErrCancelled) {
		return command.ErrCancelled
	}
	return err
}

// showError reports a failed command in a native message box.
func showError(err error) {
	dialog.Message("%v", err).Title("Easel").Error()
}

// showHelp lists the keyboard and mouse shortcuts.
func showHelp() {
	dialog.Message("%s", command.HelpText()).Title("Easel shortcuts").Info()
}

// sizeField identifies the focused field of a sizeForm.
type sizeField int

const (
	fieldWidth sizeField = iota
	fieldHeight
)

// sizeForm is the modal "New canvas" form drawn over the window.
// It only accepts digits; validation happens when the command is dispatched.
type sizeForm struct {
	open   bool
	width  string
	height string
	focus  sizeField
}

// show opens the form prefilled with the current canvas size.
func (f *sizeForm) show(width, height int) {
	f.open = true
	f.width = strconv.Itoa(width)
	f.height = strconv.Itoa(height)
	f.focus = fieldWidth
}

func (f *sizeForm) close() {
	*f = sizeForm{}
}

func (f *sizeForm) field() *string {
	if f.focus == fieldHeight {
		return &f.height
	}
	return &f.width
}

// typeRune appends r to the focused field if it is a digit.
func (f *sizeForm) typeRune(r rune) {
	if !unicode.IsDigit(r) {
		return
	}
	s := f.field()
	if len(*s) < 6 {
		*s += string(r)
	}
}

// backspace deletes the last character of the focused field.
func (f *sizeForm) backspace() {
	s := f.field()
	if n := len(*s); n > 0 {
		*s = (*s)[:n-1]
	}
}

// toggle moves focus to the other field.
func (f *sizeForm) toggle() {
	if f.focus == fieldWidth {
		f.focus = fieldHeight
	} else {
		f.focus = fieldWidth
	}
}

// submit closes the form and returns the New command it describes.
func (f *sizeForm) submit() command.Command {
	cmd := command.NewCanvas(f.width, f.height)
	f.close()
	return cmd
}
