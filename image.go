package stripfx

import (
	"github.com/gogpu/stripfx/internal/color"
	"github.com/gogpu/stripfx/internal/image"
)

// Image is an RGBA frame: 8-bit straight-alpha bytes or 32-bit
// premultiplied floats. Row 0 is the bottom scanline.
type Image = image.Image

// Format identifies the channel representation of an Image.
type Format = image.Format

// Pixel formats.
const (
	FormatByte  = image.FormatByte
	FormatFloat = image.FormatFloat
)

// Interpolation selects how the transform effect samples its input.
type Interpolation = image.Interpolation

// Sampling modes.
const (
	Nearest      = image.Nearest
	Bilinear     = image.Bilinear
	CubicBSpline = image.CubicBSpline
)

// ColorSpace identifies how the RGB channels of a frame are encoded.
type ColorSpace = color.Space

// Color spaces.
const (
	SpaceSRGB   = color.SpaceSRGB
	SpaceLinear = color.SpaceLinear
)

// NewImage allocates a zeroed image on the heap.
func NewImage(width, height int, format Format) (*Image, error) {
	return image.New(width, height, format)
}
