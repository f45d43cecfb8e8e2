package image

import (
	"maps"

	"github.com/gogpu/stripfx/internal/color"
)

func unitToByte(v float32) uint8 {
	return color.UnitToByte(v)
}

// ToFloat returns a premultiplied float copy of src. When linearize is set,
// byte color channels are decoded from sRGB before premultiplication.
// Float sources are cloned unchanged.
func ToFloat(src *Image, linearize bool) *Image {
	if src.IsFloat() {
		return src.Clone()
	}
	dst := &Image{
		Width:  src.Width,
		Height: src.Height,
		Float:  make([]float32, len(src.Byte)),
		Opaque: src.Opaque,
		Meta:   maps.Clone(src.Meta),
	}
	for i := 0; i < len(src.Byte); i += Channels {
		a := color.ByteToUnit(src.Byte[i+3])
		for c := range 3 {
			v := color.ByteToUnit(src.Byte[i+c])
			if linearize {
				v = color.SRGBToLinearFast(src.Byte[i+c])
			}
			dst.Float[i+c] = v * a
		}
		dst.Float[i+3] = a
	}
	return dst
}

// ToByte returns a straight-alpha byte copy of src. When encode is set,
// color channels are encoded to sRGB after unpremultiplication.
// Byte sources are cloned unchanged.
func ToByte(src *Image, encode bool) *Image {
	if !src.IsFloat() {
		return src.Clone()
	}
	dst := &Image{
		Width:  src.Width,
		Height: src.Height,
		Byte:   make([]uint8, len(src.Float)),
		Opaque: src.Opaque,
		Meta:   maps.Clone(src.Meta),
	}
	for i := 0; i < len(src.Float); i += Channels {
		a := src.Float[i+3]
		for c := range 3 {
			v := src.Float[i+c]
			if a > 0 && a < 1 {
				v /= a
			}
			if encode {
				dst.Byte[i+c] = color.LinearToSRGBFast(v)
				continue
			}
			dst.Byte[i+c] = color.UnitToByte(v)
		}
		dst.Byte[i+3] = color.UnitToByte(a)
	}
	return dst
}
