package blend

import "github.com/gogpu/stripfx/internal/color"

// Float4 is a premultiplied RGBA value.
type Float4 [4]float32

// LoadPremulByte reads a straight-alpha byte pixel as premultiplied floats.
func LoadPremulByte(p []uint8) Float4 {
	a := color.ByteToUnit(p[3])
	return Float4{
		color.ByteToUnit(p[0]) * a,
		color.ByteToUnit(p[1]) * a,
		color.ByteToUnit(p[2]) * a,
		a,
	}
}

// LoadPremulFloat reads a premultiplied float pixel.
func LoadPremulFloat(p []float32) Float4 {
	return Float4{p[0], p[1], p[2], p[3]}
}

// StorePremulByte writes a premultiplied value as a straight-alpha byte
// pixel. Partially transparent colors are unpremultiplied first.
func StorePremulByte(c Float4, dst []uint8) {
	if c[3] > 0 && c[3] < 1 {
		inv := 1 / c[3]
		c[0] *= inv
		c[1] *= inv
		c[2] *= inv
	}
	dst[0] = color.UnitToByte(c[0])
	dst[1] = color.UnitToByte(c[1])
	dst[2] = color.UnitToByte(c[2])
	dst[3] = color.UnitToByte(c[3])
}

// StorePremulFloat writes a premultiplied float pixel.
func StorePremulFloat(c Float4, dst []float32) {
	dst[0], dst[1], dst[2], dst[3] = c[0], c[1], c[2], c[3]
}

// StoreOpaqueBlackByte writes (0, 0, 0, 255).
func StoreOpaqueBlackByte(dst []uint8) {
	dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 255
}

// StoreOpaqueBlackFloat writes (0, 0, 0, 1).
func StoreOpaqueBlackFloat(dst []float32) {
	dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 1
}

// Scale returns c with every component multiplied by f.
func (c Float4) Scale(f float32) Float4 {
	return Float4{c[0] * f, c[1] * f, c[2] * f, c[3] * f}
}

// Add returns the componentwise sum of c and o.
func (c Float4) Add(o Float4) Float4 {
	return Float4{c[0] + o[0], c[1] + o[1], c[2] + o[2], c[3] + o[3]}
}
