package stripfx

import "github.com/gogpu/stripfx/internal/image"

// ColorManager converts frames between the byte display representation and
// the float working representation. Both methods return new images and
// leave their argument untouched.
type ColorManager interface {
	// ToWorkingSpace returns a premultiplied float copy of m.
	ToWorkingSpace(m *Image) *Image

	// ToByte returns a straight-alpha byte copy of m.
	ToByte(m *Image) *Image
}

// DisplayColorManager keeps float frames in the display space of byte
// frames. With Linearize set, byte colors are decoded from sRGB on the way
// in and encoded back on the way out.
type DisplayColorManager struct {
	Linearize bool
}

var _ ColorManager = DisplayColorManager{}

// ToWorkingSpace implements ColorManager.
func (cm DisplayColorManager) ToWorkingSpace(m *Image) *Image {
	return image.ToFloat(m, cm.Linearize)
}

// ToByte implements ColorManager.
func (cm DisplayColorManager) ToByte(m *Image) *Image {
	return image.ToByte(m, cm.Linearize)
}

// WorkingSpace reports the encoding of float frames.
func (cm DisplayColorManager) WorkingSpace() ColorSpace {
	if cm.Linearize {
		return SpaceLinear
	}
	return SpaceSRGB
}
