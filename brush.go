package easel

import (
	"fmt"
	"strings"
)

// BrushMode selects what a stroke paints.
type BrushMode int

const (
	// ModeDraw paints with the brush color.
	ModeDraw BrushMode = iota
	// ModeErase paints with the canvas background color.
	//
	// Erasing is painting, not clearing alpha: over an imported image whose
	// background is not the canvas background it leaves background-colored
	// marks.
	ModeErase
)

// String returns the name the shell shows for the mode.
func (m BrushMode) String() string {
	switch m {
	case ModeDraw:
		return "Pencil"
	case ModeErase:
		return "Eraser"
	default:
		return fmt.Sprintf("BrushMode(%d)", int(m))
	}
}

// ParseBrushMode accepts the shell names ("Pencil", "Eraser") and the
// mode identifiers ("draw", "erase"), case-insensitively.
func ParseBrushMode(s string) (BrushMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pencil", "draw":
		return ModeDraw, nil
	case "eraser", "erase":
		return ModeErase, nil
	}
	return ModeDraw, fmt.Errorf("%w: brush mode %q", ErrInvalidArgument, s)
}

// Brush limits.
const (
	MinBrushSize     = 1
	MaxBrushSize     = 50
	DefaultBrushSize = 5
)

// Brush is the current painting tool state. It has no history.
type Brush struct {
	// Size is the stroke diameter in buffer pixels.
	Size int
	// Color is used in ModeDraw.
	Color RGBA
	// Mode selects drawing or erasing.
	Mode BrushMode
}

// DefaultBrush returns a 5px black pencil.
func DefaultBrush() Brush {
	return Brush{Size: DefaultBrushSize, Color: Black, Mode: ModeDraw}
}

// Paint returns the color a stroke lays down on a canvas whose background is bg.
func (b Brush) Paint(bg RGBA) RGBA {
	if b.Mode == ModeErase {
		return bg
	}
	return b.Color
}

// clampBrushSize keeps a size inside [MinBrushSize, MaxBrushSize].
func clampBrushSize(size int) int {
	if size < MinBrushSize {
		return MinBrushSize
	}
	if size > MaxBrushSize {
		return MaxBrushSize
	}
	return size
}
