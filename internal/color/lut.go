package color

import "math"

// sRGBToLinearLUT maps every sRGB byte to its linear value.
var sRGBToLinearLUT [256]float32

// linearToSRGBLUT maps linear values quantized to 12 bits back to sRGB bytes.
// 4096 entries are enough precision for 8-bit output.
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = float32(srgbDecode(float64(i) / 255.0))
	}
	for i := range 4096 {
		s := srgbEncode(float64(i) / 4095.0)
		linearToSRGBLUT[i] = uint8(min(max(int(s*255.0+0.5), 0), 255)) //nolint:gosec // clamped
	}
}

func srgbDecode(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

func srgbEncode(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// SRGBToLinearFast converts an sRGB byte to linear with a table lookup.
func SRGBToLinearFast(s uint8) float32 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts a linear value to an sRGB byte with a table
// lookup. Input is clamped to [0, 1].
func LinearToSRGBFast(l float32) uint8 {
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	index := min(int(l*4095.0+0.5), 4095)
	return linearToSRGBLUT[index]
}

// SRGBToLinearSlow is the math.Pow reference for SRGBToLinearFast.
func SRGBToLinearSlow(s uint8) float32 {
	return float32(srgbDecode(float64(s) / 255.0))
}

// LinearToSRGBSlow is the math.Pow reference for LinearToSRGBFast.
func LinearToSRGBSlow(l float32) uint8 {
	lf := min(max(float64(l), 0), 1)
	return uint8(min(max(int(srgbEncode(lf)*255.0+0.5), 0), 255)) //nolint:gosec // clamped
}
