package blend

// Mode selects a color blend function.
type Mode uint8

// Blend modes. Add, Sub and Mul are the additive modes also used by layer
// blending; the rest mirror the usual paint-program set.
const (
	ModeAdd Mode = iota
	ModeSub
	ModeMul
	ModeScreen
	ModeLighten
	ModeDarken
	ModeDodge
	ModeColorBurn
	ModeLinearBurn
	ModeOverlay
	ModeHardLight
	ModeSoftLight
	ModePinLight
	ModeLinearLight
	ModeVividLight
	ModeColor
	ModeHue
	ModeSaturation
	ModeValue
	ModeDifference
	ModeExclusion

	modeCount
)

var modeNames = [modeCount]string{
	"Add", "Sub", "Mul", "Screen", "Lighten", "Darken", "Dodge", "ColorBurn",
	"LinearBurn", "Overlay", "HardLight", "SoftLight", "PinLight",
	"LinearLight", "VividLight", "Color", "Hue", "Saturation", "Value",
	"Difference", "Exclusion",
}

// String returns a string representation of the mode.
func (m Mode) String() string {
	if m < modeCount {
		return modeNames[m]
	}
	return "Unknown"
}

// Valid reports whether m names a blend mode.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Modes returns every blend mode in declaration order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ByteFunc blends one straight-alpha pixel. t is the weight of src2 in
// 0..255. Only the three color components of dst are written.
type ByteFunc func(dst, src1, src2 []uint8, t int)

// FloatFunc blends one premultiplied pixel. t is the weight of src2 in
// 0..1. Only the three color components of dst are written.
type FloatFunc func(dst, src1, src2 []float32, t float32)

var byteFuncs = [modeCount]ByteFunc{
	ModeAdd:         addByte,
	ModeSub:         subByte,
	ModeMul:         mulByte,
	ModeScreen:      separableByte(screenByte),
	ModeLighten:     separableByte(lightenByte),
	ModeDarken:      separableByte(darkenByte),
	ModeDodge:       separableByte(dodgeByte),
	ModeColorBurn:   separableByte(burnByte),
	ModeLinearBurn:  separableByte(linearBurnByte),
	ModeOverlay:     separableByte(overlayByte),
	ModeHardLight:   separableByte(hardLightByte),
	ModeSoftLight:   separableByte(softLightByte),
	ModePinLight:    separableByte(pinLightByte),
	ModeLinearLight: separableByte(linearLightByte),
	ModeVividLight:  separableByte(vividLightByte),
	ModeColor:       hsvByte(hsvColor),
	ModeHue:         hsvByte(hsvHue),
	ModeSaturation:  hsvByte(hsvSaturation),
	ModeValue:       hsvByte(hsvValue),
	ModeDifference:  separableByte(differenceByte),
	ModeExclusion:   separableByte(exclusionByte),
}

var floatFuncs = [modeCount]FloatFunc{
	ModeAdd:         addFloat,
	ModeSub:         subFloat,
	ModeMul:         mulFloat,
	ModeScreen:      separableFloat(screenFloat),
	ModeLighten:     separableFloat(lightenFloat),
	ModeDarken:      separableFloat(darkenFloat),
	ModeDodge:       separableFloat(dodgeFloat),
	ModeColorBurn:   separableFloat(burnFloat),
	ModeLinearBurn:  separableFloat(linearBurnFloat),
	ModeOverlay:     separableFloat(overlayFloat),
	ModeHardLight:   separableFloat(hardLightFloat),
	ModeSoftLight:   separableFloat(softLightFloat),
	ModePinLight:    separableFloat(pinLightFloat),
	ModeLinearLight: separableFloat(linearLightFloat),
	ModeVividLight:  separableFloat(vividLightFloat),
	ModeColor:       hsvFloat(hsvColor),
	ModeHue:         hsvFloat(hsvHue),
	ModeSaturation:  hsvFloat(hsvSaturation),
	ModeValue:       hsvFloat(hsvValue),
	ModeDifference:  separableFloat(differenceFloat),
	ModeExclusion:   separableFloat(exclusionFloat),
}

// Byte returns the byte blend function of m, or nil for an unknown mode.
func (m Mode) Byte() ByteFunc {
	if m < modeCount {
		return byteFuncs[m]
	}
	return nil
}

// Float returns the float blend function of m, or nil for an unknown mode.
func (m Mode) Float() FloatFunc {
	if m < modeCount {
		return floatFuncs[m]
	}
	return nil
}

// ApplyByte blends rows of byte pixels. The weight of each src2 pixel is its
// alpha scaled by fac and truncated; output alpha is taken from src1.
// Neither source is modified.
func ApplyByte(m Mode, fac float32, src1, src2, dst []uint8) {
	f := m.Byte()
	if f == nil {
		copy(dst, src1)
		return
	}
	for i := 0; i+3 < len(dst); i += 4 {
		a, b, d := src1[i:i+4:i+4], src2[i:i+4:i+4], dst[i:i+4:i+4]
		t := int(float32(b[3]) * fac)
		if t == 0 {
			copy(d, a)
			continue
		}
		f(d, a, b, t)
		d[3] = a[3]
	}
}

// ApplyFloat blends rows of premultiplied float pixels. The weight of each
// src2 pixel is its alpha scaled by fac; output alpha is taken from src1.
func ApplyFloat(m Mode, fac float32, src1, src2, dst []float32) {
	f := m.Float()
	if f == nil {
		copy(dst, src1)
		return
	}
	for i := 0; i+3 < len(dst); i += 4 {
		a, b, d := src1[i:i+4:i+4], src2[i:i+4:i+4], dst[i:i+4:i+4]
		t := b[3] * fac
		if t == 0 {
			copy(d, a)
			continue
		}
		f(d, a, b, t)
		d[3] = a[3]
	}
}
