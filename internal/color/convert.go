package color

import "math"

// SRGBToLinear converts an sRGB component to linear.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// LinearToSRGB converts a linear component to sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*float32(math.Pow(float64(l), 1.0/2.4)) - 0.055
}

// ByteToUnit maps a byte component [0,255] to [0,1].
func ByteToUnit(v uint8) float32 {
	return float32(v) / 255
}

// UnitToByte quantizes a unit float to a byte with rounding.
// Values at or below 0 map to 0 and values within half a step of 1 map
// to 255, so out-of-range floats saturate instead of wrapping.
func UnitToByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v > 1-0.5/255 {
		return 255
	}
	return uint8(255*v + 0.5)
}
