// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package session

import (
	"context"
	"sync"
	"time"

	"github.com/gogpu/easel"
)

// AutosaveIntervals are the choices offered by the autosave menu.
// Zero disables autosave.
var AutosaveIntervals = []time.Duration{
	0,
	1 * time.Second,
	5 * time.Second,
	10 * time.Second,
	30 * time.Second,
	60 * time.Second,
}

// Autosaver periodically autosaves a session from its own goroutine.
// The engine serializes the export against UI calls.
//
// The zero value is not usable; create one with NewAutosaver.
type Autosaver struct {
	save func() error

	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// NewAutosaver returns a stopped autosaver for s.
func NewAutosaver(s *Session) *Autosaver {
	return newAutosaver(func() error {
		_, err := s.AutoSave()
		return err
	})
}

func newAutosaver(save func() error) *Autosaver {
	return &Autosaver{save: save}
}

// SetInterval restarts the timer with period d. d <= 0 disables autosave.
// Changing the interval always restarts the period from now.
func (a *Autosaver) SetInterval(d time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
	a.interval = max(d, 0)
	if d <= 0 {
		easel.Logger().Info("session: autosave disabled")
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	a.done = make(chan struct{})
	go a.run(ctx, d, a.done)
	easel.Logger().Info("session: autosave enabled", "interval", d)
}

// Interval returns the current period, or 0 when disabled.
func (a *Autosaver) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

// Stop disables autosave and waits for an in-flight save to finish.
func (a *Autosaver) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
	a.interval = 0
}

func (a *Autosaver) stopLocked() {
	if a.cancel == nil {
		return
	}
	a.cancel()
	<-a.done
	a.cancel, a.done = nil, nil
}

func (a *Autosaver) run(ctx context.Context, d time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(d)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Errors are logged by the save path; keep ticking.
			_ = a.save()
		}
	}
}
