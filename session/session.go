// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package session connects an easel.Engine to the file system: saving,
// opening, and autosaving next to the last saved file or in the user's
// documents directory.
package session

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gogpu/easel"
	"github.com/gogpu/easel/codec"
)

// Autosave file naming.
const (
	// AutosaveSuffix is inserted before the extension of the last saved
	// path to name its autosave sibling.
	AutosaveSuffix = " - autosave"

	// AutosaveName is the autosave file used before any manual save.
	AutosaveName = "autosave" + codec.Ext
)

// Option configures a Session.
type Option func(*Session)

// WithDocumentsDir sets the directory used for autosaves before the first
// manual save. The default is DefaultDocumentsDir.
func WithDocumentsDir(dir string) Option {
	return func(s *Session) {
		s.docsDir = dir
	}
}

// Session tracks the file an engine's canvas was last saved to.
// It is safe for concurrent use.
type Session struct {
	engine  *easel.Engine
	docsDir string

	mu        sync.Mutex
	lastSaved string
}

// New creates a session for engine.
func New(engine *easel.Engine, opts ...Option) *Session {
	s := &Session{engine: engine}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Engine returns the engine the session saves.
func (s *Session) Engine() *easel.Engine {
	return s.engine
}

// LastSaved returns the path of the last successful manual save, or "".
func (s *Session) LastSaved() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSaved
}

// Save writes the canvas, flattened onto its background, as PNG to path.
// A ".png" extension is appended when missing; the final path is returned.
// On success the path becomes the base for later autosaves.
func (s *Session) Save(path string) (string, error) {
	path = codec.EnsureExt(path)
	if err := codec.Save(path, s.engine.ExportImage()); err != nil {
		easel.Logger().Warn("session: save failed", "path", path, "err", err)
		return "", fmt.Errorf("%w: %w", easel.ErrIO, err)
	}

	s.mu.Lock()
	s.lastSaved = path
	s.mu.Unlock()

	easel.Logger().Info("session: saved", "path", path)
	return path, nil
}

// Open replaces the canvas with the image at path. The canvas is left
// untouched if the file cannot be read or decoded.
func (s *Session) Open(path string) error {
	img, err := codec.Load(path)
	if err != nil {
		easel.Logger().Warn("session: open failed", "path", path, "err", err)
		return fmt.Errorf("%w: %w", easel.ErrIO, err)
	}
	if err := s.engine.ImportImage(img); err != nil {
		return err
	}
	easel.Logger().Info("session: opened", "path", path)
	return nil
}

// AutosavePath returns where AutoSave writes.
//
// After a manual save to "dir/name.png" it is "dir/name - autosave.png".
// Before any manual save it is AutosaveName inside the documents directory,
// which is created if absent.
func (s *Session) AutosavePath() (string, error) {
	if last := s.LastSaved(); last != "" {
		ext := filepath.Ext(last)
		return strings.TrimSuffix(last, ext) + AutosaveSuffix + ext, nil
	}

	dir := s.docsDir
	if dir == "" {
		var err error
		if dir, err = DefaultDocumentsDir(); err != nil {
			return "", fmt.Errorf("%w: %w", easel.ErrIO, err)
		}
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("%w: create documents dir: %w", easel.ErrIO, err)
	}
	return filepath.Join(dir, AutosaveName), nil
}

// AutoSave writes the canvas to AutosavePath without asking the user.
// It does not change LastSaved. Failures are logged and returned.
func (s *Session) AutoSave() (string, error) {
	path, err := s.AutosavePath()
	if err != nil {
		easel.Logger().Warn("session: autosave failed", "err", err)
		return "", err
	}
	if err := codec.Save(path, s.engine.ExportImage()); err != nil {
		easel.Logger().Warn("session: autosave failed", "path", path, "err", err)
		return "", fmt.Errorf("%w: %w", easel.ErrIO, err)
	}
	easel.Logger().Info("session: autosaved", "path", path)
	return path, nil
}

// DefaultDocumentsDir returns the Documents directory in the user's home.
func DefaultDocumentsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("session: home directory: %w", err)
	}
	return filepath.Join(home, "Documents"), nil
}
