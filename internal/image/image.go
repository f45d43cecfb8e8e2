// Package image holds the RGBA pixel buffers processed by strip effects.
//
// An Image carries exactly one representation: 8-bit straight-alpha bytes or
// 32-bit premultiplied floats. Both are tightly packed with four channels per
// pixel. Row 0 is the bottom scanline, so y grows upwards.
package image

import (
	"errors"
	"maps"
	"math"
)

// Channels is the number of components stored per pixel.
const Channels = 4

// Format identifies the channel representation of an Image.
type Format uint8

const (
	// FormatByte stores 8-bit straight-alpha RGBA.
	FormatByte Format = iota

	// FormatFloat stores 32-bit premultiplied RGBA.
	FormatFloat
)

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatByte:
		return "Byte"
	case FormatFloat:
		return "Float"
	default:
		return "Unknown"
	}
}

// Errors returned by image allocation.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned for a format other than byte or float.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrTooLarge is returned when the pixel count overflows the address space.
	ErrTooLarge = errors.New("image: buffer too large")
)

// Image is a rectangular RGBA pixel buffer.
type Image struct {
	Width  int
	Height int

	// Byte holds straight-alpha pixels for FormatByte images.
	Byte []uint8

	// Float holds premultiplied pixels for FormatFloat images.
	Float []float32

	// Opaque marks an image known to have alpha 1 everywhere.
	Opaque bool

	// Meta is forwarded metadata (stamp, source name and the like).
	Meta map[string]string
}

// New allocates a zeroed image of the given size and format.
func New(width, height int, format Format) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if width > math.MaxInt32/height/Channels {
		return nil, ErrTooLarge
	}
	n := width * height * Channels
	m := &Image{Width: width, Height: height}
	switch format {
	case FormatByte:
		m.Byte = make([]uint8, n)
	case FormatFloat:
		m.Float = make([]float32, n)
	default:
		return nil, ErrInvalidFormat
	}
	return m, nil
}

// Format reports the representation of the image.
func (m *Image) Format() Format {
	if m.Float != nil {
		return FormatFloat
	}
	return FormatByte
}

// IsFloat reports whether the image stores float pixels.
func (m *Image) IsFloat() bool {
	return m.Float != nil
}

// Pixels returns Width*Height.
func (m *Image) Pixels() int {
	return m.Width * m.Height
}

// SameSize reports whether o has the dimensions of m.
func (m *Image) SameSize(o *Image) bool {
	return o != nil && m.Width == o.Width && m.Height == o.Height
}

// Stride returns the number of components in one row.
func (m *Image) Stride() int {
	return m.Width * Channels
}

// Clone returns a deep copy of the image, metadata included.
func (m *Image) Clone() *Image {
	c := &Image{Width: m.Width, Height: m.Height, Opaque: m.Opaque}
	if m.Byte != nil {
		c.Byte = append([]uint8(nil), m.Byte...)
	}
	if m.Float != nil {
		c.Float = append([]float32(nil), m.Float...)
	}
	c.Meta = maps.Clone(m.Meta)
	return c
}

// Clear zeroes all pixels.
func (m *Image) Clear() {
	clear(m.Byte)
	clear(m.Float)
	m.Opaque = false
}

// ByteRows returns the byte pixels of rows [y0, y1).
func (m *Image) ByteRows(y0, y1 int) []uint8 {
	s := m.Stride()
	return m.Byte[y0*s : y1*s]
}

// FloatRows returns the float pixels of rows [y0, y1).
func (m *Image) FloatRows(y0, y1 int) []float32 {
	s := m.Stride()
	return m.Float[y0*s : y1*s]
}

// ByteAt returns the four components of pixel (x, y).
func (m *Image) ByteAt(x, y int) []uint8 {
	i := (y*m.Width + x) * Channels
	return m.Byte[i : i+Channels : i+Channels]
}

// FloatAt returns the four components of pixel (x, y).
func (m *Image) FloatAt(x, y int) []float32 {
	i := (y*m.Width + x) * Channels
	return m.Float[i : i+Channels : i+Channels]
}

// Fill sets every pixel to the given color. Byte images receive the
// straight-alpha color, float images its premultiplied form.
func (m *Image) Fill(r, g, b, a float32) {
	if m.Float != nil {
		px := [Channels]float32{r * a, g * a, b * a, a}
		for i := 0; i < len(m.Float); i += Channels {
			copy(m.Float[i:i+Channels], px[:])
		}
		return
	}
	px := [Channels]uint8{unitToByte(r), unitToByte(g), unitToByte(b), unitToByte(a)}
	for i := 0; i < len(m.Byte); i += Channels {
		copy(m.Byte[i:i+Channels], px[:])
	}
}
