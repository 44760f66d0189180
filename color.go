package easel

import (
	"fmt"
	"image/color"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	r, g, b, a := c.bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB8 creates an opaque color from 8-bit RGB components.
func RGB8(r, g, b uint8) RGBA {
	return RGBA{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1.0}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without '#'.
func Hex(hex string) (RGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	var ok bool
	switch len(s) {
	case 3:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4:
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8:
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	}
	if !ok {
		return RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidArgument, hex)
	}

	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// parseHex accumulates the hex digits of s into val.
// It reports false on the first non-hex character.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// String returns the color as "#RRGGBBAA".
func (c RGBA) String() string {
	r, g, b, a := c.bytes()
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Opaque returns the color with alpha forced to 1.
func (c RGBA) Opaque() RGBA {
	c.A = 1
	return c
}

// bytes returns the color quantized to 8 bits per channel.
func (c RGBA) bytes() (r, g, b, a uint8) {
	return uint8(clamp255(c.R*255 + 0.5)),
		uint8(clamp255(c.G*255 + 0.5)),
		uint8(clamp255(c.B*255 + 0.5)),
		uint8(clamp255(c.A*255 + 0.5))
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Gray        = RGB8(128, 128, 128)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA{}
)
