// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"strings"
	"unicode"
)

// KeyDelete is the Key of the Delete key.
const KeyDelete = '\x7f'

// Shortcut binds a key chord to a command.
type Shortcut struct {
	Ctrl  bool
	Shift bool
	// Key is the upper-case letter or the symbol on the key.
	Key  rune
	Kind Kind
}

// Label returns the chord as shown in menus, e.g. "Ctrl+Shift+S".
func (s Shortcut) Label() string {
	var b strings.Builder
	if s.Ctrl {
		b.WriteString("Ctrl+")
	}
	if s.Shift {
		b.WriteString("Shift+")
	}
	if s.Key == KeyDelete {
		b.WriteString("Delete")
	} else {
		b.WriteRune(s.Key)
	}
	return b.String()
}

// Shortcuts is the keyboard map of the shell.
var Shortcuts = []Shortcut{
	{Ctrl: true, Key: 'N', Kind: New},
	{Ctrl: true, Key: 'S', Kind: Save},
	{Ctrl: true, Shift: true, Key: 'S', Kind: SaveAs},
	{Ctrl: true, Key: 'O', Kind: Open},
	{Ctrl: true, Key: 'Z', Kind: Undo},
	{Ctrl: true, Key: 'Y', Kind: Redo},
	{Ctrl: true, Key: '=', Kind: ZoomIn},
	{Ctrl: true, Key: '-', Kind: ZoomOut},
	{Ctrl: true, Key: KeyDelete, Kind: Clear},
}

// Lookup returns the command bound to a chord. Letters match in either case.
func Lookup(ctrl, shift bool, key rune) (Kind, bool) {
	key = unicode.ToUpper(key)
	for _, s := range Shortcuts {
		if s.Ctrl == ctrl && s.Shift == shift && s.Key == key {
			return s.Kind, true
		}
	}
	return 0, false
}

// ShortcutFor returns the first shortcut bound to k.
func ShortcutFor(k Kind) (Shortcut, bool) {
	for _, s := range Shortcuts {
		if s.Kind == k {
			return s, true
		}
	}
	return Shortcut{}, false
}

// HelpText lists the keyboard shortcuts and pointer gestures.
func HelpText() string {
	var b strings.Builder
	b.WriteString("Shortcut Keys:\n")
	for _, s := range Shortcuts {
		b.WriteString(s.Label())
		b.WriteString(": ")
		b.WriteString(s.Kind.String())
		b.WriteByte('\n')
	}
	b.WriteString("Middle Mouse Button: Pan\n")
	b.WriteString("Ctrl+Mouse Wheel: Zoom\n")
	return b.String()
}
