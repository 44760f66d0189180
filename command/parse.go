// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gogpu/easel"
)

// ParseDimensions parses canvas width and height text. Both must be
// integers in [1, easel.MaxCanvasSide]; anything else returns an error wrapping
// easel.ErrInvalidArgument.
func ParseDimensions(width, height string) (w, h int, err error) {
	if w, err = parseSide("width", width); err != nil {
		return 0, 0, err
	}
	if h, err = parseSide("height", height); err != nil {
		return 0, 0, err
	}
	return w, h, nil
}

func parseSide(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a whole number", easel.ErrInvalidArgument, name, s)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s must be positive, got %d", easel.ErrInvalidArgument, name, n)
	}
	if n > easel.MaxCanvasSide {
		return 0, fmt.Errorf("%w: %s must be at most %d, got %d", easel.ErrInvalidArgument, name, easel.MaxCanvasSide, n)
	}
	return n, nil
}

// ParseInterval parses an autosave interval. It accepts Go durations
// ("1m30s"), bare seconds as in the autosave menu ("5s", "10"), and "off".
// Zero disables autosave.
func ParseInterval(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	switch s {
	case "", "off", "none", "disabled":
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		s = strconv.Itoa(n) + "s"
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("%w: autosave interval %q", easel.ErrInvalidArgument, s)
	}
	return d, nil
}

// IntervalLabel returns the menu label of an autosave interval.
func IntervalLabel(d time.Duration) string {
	if d <= 0 {
		return "Off"
	}
	if d%time.Second == 0 {
		return strconv.Itoa(int(d/time.Second)) + "s"
	}
	return d.String()
}
