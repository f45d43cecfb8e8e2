package stripfx

import "github.com/gogpu/stripfx/internal/blend"

// EffectType identifies an effect kind. It is both the type of an effect
// strip and the blend mode of any strip.
type EffectType uint8

// Effect types. Replace is the blend mode of strips drawn without
// blending and names no effect.
const (
	Replace EffectType = iota
	Cross
	Add
	Sub
	AlphaOver
	AlphaUnder
	GammaCross
	Mul
	OverDrop
	Wipe
	Glow
	Transform
	SolidColor
	Speed
	Multicam
	Adjustment
	GaussianBlur
	Text
	ColorMix

	// Blend modes.
	Screen
	Lighten
	Darken
	Dodge
	ColorBurn
	LinearBurn
	Overlay
	HardLight
	SoftLight
	PinLight
	LinearLight
	VividLight
	BlendColor
	Hue
	Saturation
	Value
	Difference
	Exclusion

	effectTypeCount
)

var effectTypeNames = [effectTypeCount]string{
	"Replace", "Cross", "Add", "Sub", "AlphaOver", "AlphaUnder", "GammaCross",
	"Mul", "OverDrop", "Wipe", "Glow", "Transform", "Color", "Speed",
	"Multicam", "Adjustment", "GaussianBlur", "Text", "ColorMix",
	"Screen", "Lighten", "Darken", "Dodge", "ColorBurn", "LinearBurn",
	"Overlay", "HardLight", "SoftLight", "PinLight", "LinearLight",
	"VividLight", "BlendColor", "Hue", "Saturation", "Value", "Difference",
	"Exclusion",
}

// String returns a string representation of the effect type.
func (t EffectType) String() string {
	if t < effectTypeCount {
		return effectTypeNames[t]
	}
	return "Unknown"
}

// IsEffect reports whether t names a registered effect.
func (t EffectType) IsEffect() bool {
	return t > Replace && t < effectTypeCount
}

// IsBlendMode reports whether t is one of the pure blend modes that
// combine colors per channel through a blend function.
func (t EffectType) IsBlendMode() bool {
	return t >= Screen && t < effectTypeCount
}

// EffectTypes returns every registered effect type in declaration order.
func EffectTypes() []EffectType {
	out := make([]EffectType, 0, effectTypeCount-1)
	for t := Cross; t < effectTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseEffectType returns the effect type with the given name.
func ParseEffectType(name string) (EffectType, bool) {
	for i, n := range effectTypeNames {
		if n == name {
			return EffectType(i), true
		}
	}
	return Replace, false
}

var blendModes = map[EffectType]blend.Mode{
	Add:         blend.ModeAdd,
	Sub:         blend.ModeSub,
	Mul:         blend.ModeMul,
	Screen:      blend.ModeScreen,
	Lighten:     blend.ModeLighten,
	Darken:      blend.ModeDarken,
	Dodge:       blend.ModeDodge,
	ColorBurn:   blend.ModeColorBurn,
	LinearBurn:  blend.ModeLinearBurn,
	Overlay:     blend.ModeOverlay,
	HardLight:   blend.ModeHardLight,
	SoftLight:   blend.ModeSoftLight,
	PinLight:    blend.ModePinLight,
	LinearLight: blend.ModeLinearLight,
	VividLight:  blend.ModeVividLight,
	BlendColor:  blend.ModeColor,
	Hue:         blend.ModeHue,
	Saturation:  blend.ModeSaturation,
	Value:       blend.ModeValue,
	Difference:  blend.ModeDifference,
	Exclusion:   blend.ModeExclusion,
}

// blendMode returns the per-channel blend function selected by t.
func blendMode(t EffectType) (blend.Mode, bool) {
	m, ok := blendModes[t]
	return m, ok
}
