package easel

// Button identifies the pointer button of a press or release.
type Button int

const (
	// ButtonLeft draws.
	ButtonLeft Button = iota
	// ButtonMiddle pans.
	ButtonMiddle
	// ButtonRight is accepted and ignored.
	ButtonRight
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// WheelDirection is the direction of one wheel notch.
type WheelDirection int

const (
	// WheelIn zooms in (wheel rotated away from the user).
	WheelIn WheelDirection = iota
	// WheelOut zooms out.
	WheelOut
)

// factor returns the zoom multiplier for one notch.
func (d WheelDirection) factor() float64 {
	if d == WheelIn {
		return ZoomInFactor
	}
	return ZoomOutFactor
}
