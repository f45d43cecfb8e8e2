// Package color provides the transfer functions and color models used by
// strip effects: sRGB encoding, unit float to byte quantization and the HSV
// model behind the hue, saturation, value and color blend modes.
package color

// Space identifies how the RGB channels of a buffer are encoded.
type Space uint8

const (
	// SpaceSRGB is gamma-encoded sRGB, the encoding of byte frames.
	SpaceSRGB Space = iota
	// SpaceLinear is scene-linear RGB, the working space of float frames.
	SpaceLinear
)

// String returns the conventional name of the space.
func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "sRGB"
	case SpaceLinear:
		return "Linear"
	default:
		return "Unknown"
	}
}
