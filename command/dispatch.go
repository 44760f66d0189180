// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"errors"
	"fmt"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/session"
)

// ErrCancelled is returned by a Prompter when the user dismisses a dialog.
// Dispatch treats it as a successful no-op.
var ErrCancelled = errors.New("command: cancelled")

// Prompter asks the user for the arguments a command did not carry.
// The shell implements it with its dialogs.
type Prompter interface {
	// Dimensions asks for a canvas size, offering the current one.
	Dimensions(width, height int) (w, h string, err error)
	// SavePath asks where to save.
	SavePath() (string, error)
	// OpenPath asks which image to open.
	OpenPath() (string, error)
}

// Dispatcher routes commands to an engine, its session and an autosaver.
type Dispatcher struct {
	engine    *easel.Engine
	session   *session.Session
	autosaver *session.Autosaver
	prompter  Prompter
}

// NewDispatcher creates a dispatcher. autosaver may be nil, in which case
// SetAutosave fails.
func NewDispatcher(s *session.Session, autosaver *session.Autosaver, p Prompter) *Dispatcher {
	return &Dispatcher{
		engine:    s.Engine(),
		session:   s,
		autosaver: autosaver,
		prompter:  p,
	}
}

// Dispatch executes cmd. Errors wrap easel.ErrInvalidArgument for bad input
// and easel.ErrIO for file failures; in both cases the canvas is unchanged.
// A cancelled prompt returns nil.
func (d *Dispatcher) Dispatch(cmd Command) error {
	err := d.dispatch(cmd)
	if errors.Is(err, ErrCancelled) {
		easel.Logger().Debug("command: cancelled", "command", cmd.Kind)
		return nil
	}
	if err != nil {
		easel.Logger().Warn("command: failed", "command", cmd.Kind, "err", err)
		return fmt.Errorf("%s: %w", cmd.Kind, err)
	}
	return nil
}

func (d *Dispatcher) dispatch(cmd Command) error {
	e := d.engine
	switch cmd.Kind {
	case New:
		return d.newCanvas(cmd.Width, cmd.Height)
	case Save:
		path := cmd.Path
		if path == "" {
			path = d.session.LastSaved()
		}
		return d.save(path)
	case SaveAs:
		return d.save(cmd.Path)
	case Open:
		path := cmd.Path
		if path == "" {
			var err error
			if path, err = d.prompt().OpenPath(); err != nil {
				return err
			}
		}
		return d.session.Open(path)
	case Undo:
		_, err := e.Undo()
		return err
	case Redo:
		_, err := e.Redo()
		return err
	case ZoomIn:
		e.ZoomIn()
	case ZoomOut:
		e.ZoomOut()
	case Clear:
		e.Clear()
	case SetBrushColor:
		e.SetBrushColor(cmd.Color)
	case SetBrushMode:
		e.SetBrushMode(cmd.Mode)
	case SetBrushSize:
		e.SetBrushSize(cmd.Size)
	case SetAutosave:
		if d.autosaver == nil {
			return errors.New("autosave unavailable")
		}
		if cmd.Interval < 0 {
			return fmt.Errorf("%w: interval %v", easel.ErrInvalidArgument, cmd.Interval)
		}
		d.autosaver.SetInterval(cmd.Interval)
	default:
		return fmt.Errorf("%w: unknown command %d", easel.ErrInvalidArgument, int(cmd.Kind))
	}
	return nil
}

func (d *Dispatcher) newCanvas(wText, hText string) error {
	if wText == "" && hText == "" {
		var err error
		w, h := d.engine.CanvasSize()
		if wText, hText, err = d.prompt().Dimensions(w, h); err != nil {
			return err
		}
	}
	w, h, err := ParseDimensions(wText, hText)
	if err != nil {
		return err
	}
	return d.engine.Resize(w, h)
}

func (d *Dispatcher) save(path string) error {
	if path == "" {
		var err error
		if path, err = d.prompt().SavePath(); err != nil {
			return err
		}
	}
	_, err := d.session.Save(path)
	return err
}

func (d *Dispatcher) prompt() Prompter {
	if d.prompter == nil {
		return noPrompter{}
	}
	return d.prompter
}

// noPrompter cancels every prompt.
type noPrompter struct{}

func (noPrompter) Dimensions(int, int) (string, string, error) { return "", "", ErrCancelled }
func (noPrompter) SavePath() (string, error)                   { return "", ErrCancelled }
func (noPrompter) OpenPath() (string, error)                   { return "", ErrCancelled }
