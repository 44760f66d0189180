package easel

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// DefaultBackground is the canvas background color: opaque white.
var DefaultBackground = White

// MaxCanvasSide is the largest accepted buffer width or height. At this
// size width*height*4 still fits in a 32-bit int.
const MaxCanvasSide = 1 << 14

// PixelBuffer is a fixed-size grid of non-premultiplied RGBA8 pixels,
// 4 bytes per pixel in row-major order. It is the ground truth of drawn
// content.
//
// Dimensions never change after construction; resizing means building a new
// buffer. Out-of-range writes are ignored and out-of-range reads return
// Transparent, so no method panics on bad coordinates.
type PixelBuffer struct {
	width  int
	height int
	data   []uint8
}

// NewPixelBuffer creates a buffer filled with DefaultBackground.
func NewPixelBuffer(width, height int) (*PixelBuffer, error) {
	return NewPixelBufferFilled(width, height, DefaultBackground)
}

// NewPixelBufferFilled creates a buffer with every pixel set to c.
// Both sides must lie in [1, MaxCanvasSide].
func NewPixelBufferFilled(width, height int, c RGBA) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 || width > MaxCanvasSide || height > MaxCanvasSide {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidArgument, width, height)
	}
	b := &PixelBuffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
	b.Fill(c)
	return b, nil
}

// Width returns the width of the buffer.
func (b *PixelBuffer) Width() int {
	return b.width
}

// Height returns the height of the buffer.
func (b *PixelBuffer) Height() int {
	return b.height
}

// Size returns width and height.
func (b *PixelBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Data returns the raw pixel data. The slice aliases the buffer.
func (b *PixelBuffer) Data() []uint8 {
	return b.data
}

// Bytes returns the memory held by the pixel store.
func (b *PixelBuffer) Bytes() int {
	return len(b.data)
}

// SetPixel sets the color of a single pixel.
func (b *PixelBuffer) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	r, g, bl, a := c.bytes()
	b.set(x, y, r, g, bl, a)
}

// set writes one pixel without bounds checks.
func (b *PixelBuffer) set(x, y int, r, g, bl, a uint8) {
	i := (y*b.width + x) * 4
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// GetPixel returns the color of a single pixel.
func (b *PixelBuffer) GetPixel(x, y int) RGBA {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Transparent
	}
	i := (y*b.width + x) * 4
	return RGBA{
		R: float64(b.data[i+0]) / 255,
		G: float64(b.data[i+1]) / 255,
		B: float64(b.data[i+2]) / 255,
		A: float64(b.data[i+3]) / 255,
	}
}

// Fill sets every pixel to c.
func (b *PixelBuffer) Fill(c RGBA) {
	r, g, bl, a := c.bytes()
	if len(b.data) == 0 {
		return
	}
	b.data[0], b.data[1], b.data[2], b.data[3] = r, g, bl, a
	// Double the initialized prefix until the buffer is full.
	for n := 4; n < len(b.data); n *= 2 {
		copy(b.data[n:], b.data[:n])
	}
}

// Copy returns a deep copy of the buffer sharing no storage with b.
func (b *PixelBuffer) Copy() *PixelBuffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &PixelBuffer{width: b.width, height: b.height, data: data}
}

// Equal reports whether both buffers have the same dimensions and pixels.
func (b *PixelBuffer) Equal(other *PixelBuffer) bool {
	if other == nil {
		return false
	}
	return b.width == other.width && b.height == other.height && bytes.Equal(b.data, other.data)
}

// Blit copies the pixels of src onto b with src's top-left corner at
// (dx, dy). Pixels falling outside b are clipped.
func (b *PixelBuffer) Blit(src image.Image, dx, dy int) {
	sb := src.Bounds()
	dst := image.Rect(dx, dy, dx+sb.Dx(), dy+sb.Dy()).Intersect(b.Bounds())
	if dst.Empty() {
		return
	}

	// Fast path: raw row copies for the two non-premultiplied layouts.
	switch s := src.(type) {
	case *PixelBuffer:
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			sy := y - dy
			so := (sy*s.width + (dst.Min.X - dx)) * 4
			do := (y*b.width + dst.Min.X) * 4
			copy(b.data[do:do+dst.Dx()*4], s.data[so:])
		}
		return
	case *image.NRGBA:
		for y := dst.Min.Y; y < dst.Max.Y; y++ {
			so := s.PixOffset(sb.Min.X+dst.Min.X-dx, sb.Min.Y+y-dy)
			do := (y*b.width + dst.Min.X) * 4
			copy(b.data[do:do+dst.Dx()*4], s.Pix[so:])
		}
		return
	}

	for y := dst.Min.Y; y < dst.Max.Y; y++ {
		for x := dst.Min.X; x < dst.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(sb.Min.X+x-dx, sb.Min.Y+y-dy)).(color.NRGBA)
			b.set(x, y, c.R, c.G, c.B, c.A)
		}
	}
}

// ToImage converts the buffer to an image.NRGBA with copied pixels.
func (b *PixelBuffer) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// Flatten composites the buffer over an opaque bg and returns the result.
// Every pixel of the returned image is fully opaque.
func (b *PixelBuffer) Flatten(bg RGBA) *image.RGBA {
	br, bgG, bb, _ := bg.bytes()
	img := image.NewRGBA(image.Rect(0, 0, b.width, b.height))
	for i := 0; i < len(b.data); i += 4 {
		a := uint32(b.data[i+3])
		img.Pix[i+0] = over(b.data[i+0], br, a)
		img.Pix[i+1] = over(b.data[i+1], bgG, a)
		img.Pix[i+2] = over(b.data[i+2], bb, a)
		img.Pix[i+3] = 0xff
	}
	return img
}

// over blends a non-premultiplied source channel s with alpha a onto an
// opaque destination channel d.
func over(s, d uint8, a uint32) uint8 {
	return uint8((uint32(s)*a + uint32(d)*(255-a) + 127) / 255)
}

// FromImage creates a buffer holding a copy of img's pixels.
// It returns ErrInvalidArgument for an empty image.
func FromImage(img image.Image) (*PixelBuffer, error) {
	bounds := img.Bounds()
	b, err := NewPixelBufferFilled(bounds.Dx(), bounds.Dy(), Transparent)
	if err != nil {
		return nil, err
	}
	b.Blit(img, 0, 0)
	return b, nil
}

// At implements the image.Image interface.
func (b *PixelBuffer) At(x, y int) color.Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.NRGBA{}
	}
	i := (y*b.width + x) * 4
	return color.NRGBA{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

// Bounds implements the image.Image interface.
func (b *PixelBuffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *PixelBuffer) ColorModel() color.Model {
	return color.NRGBAModel
}
