package stripfx

import (
	"bytes"
	"math"
	"slices"

	"github.com/gogpu/stripfx/internal/image"
	"github.com/gogpu/stripfx/text"
)

// Params is an effect-specific parameter block owned by one strip.
// Clone returns a deep copy sharing no mutable state with the receiver.
type Params interface {
	Clone() Params
}

// WipeType selects the wipe geometry.
type WipeType uint8

const (
	// WipeSingle reveals input 1 behind one straight edge.
	WipeSingle WipeType = iota
	// WipeDouble opens two parallel edges from the center.
	WipeDouble
	// WipeIris grows a circle from the center.
	WipeIris
	// WipeClock sweeps a hand around the center.
	WipeClock
)

// String returns a string representation of the wipe type.
func (w WipeType) String() string {
	switch w {
	case WipeSingle:
		return "Single"
	case WipeDouble:
		return "Double"
	case WipeIris:
		return "Iris"
	case WipeClock:
		return "Clock"
	default:
		return "Unknown"
	}
}

// WipeParams configure the wipe effect.
type WipeParams struct {
	// EdgeWidth is the softened edge as a fraction of the mean image side.
	EdgeWidth float32
	// Angle of the edge in radians.
	Angle   float32
	Forward bool
	Type    WipeType
}

// Clone implements Params.
func (p *WipeParams) Clone() Params { c := *p; return &c }

// TransformParams configure the transform effect.
type TransformParams struct {
	ScaleX, ScaleY float32

	// TranslateX and TranslateY are percent of the image size when Percent
	// is set, pixels otherwise.
	TranslateX, TranslateY float32

	// Rotation in degrees.
	Rotation float32

	Percent bool

	// UniformScale uses ScaleX for both axes.
	UniformScale  bool
	Interpolation Interpolation
}

// Clone implements Params.
func (p *TransformParams) Clone() Params { c := *p; return &c }

// GlowParams configure the glow effect.
type GlowParams struct {
	// Threshold is the per-channel luminance a pixel must exceed.
	Threshold float32
	// Clamp limits the boosted highlight components.
	Clamp float32
	Boost float32
	// Distance is the blur radius at full resolution.
	Distance float32
	Quality  int
	// OnlyBoost outputs the glow layer without the source.
	OnlyBoost bool
}

// Clone implements Params.
func (p *GlowParams) Clone() Params { c := *p; return &c }

// SolidColorParams configure the solid color generator.
type SolidColorParams struct {
	Color [3]float32
}

// Clone implements Params.
func (p *SolidColorParams) Clone() Params { c := *p; return &c }

// SpeedMode selects how the speed effect maps timeline frames to source
// frames.
type SpeedMode uint8

const (
	// SpeedStretch fits the whole source into the strip.
	SpeedStretch SpeedMode = iota
	// SpeedMultiply plays at SpeedFactor, or along the speed_factor curve.
	SpeedMultiply
	// SpeedLength plays Length percent of the source over the strip.
	SpeedLength
	// SpeedFrameNumber holds the source frame FrameNumber.
	SpeedFrameNumber
)

// String returns a string representation of the speed mode.
func (m SpeedMode) String() string {
	switch m {
	case SpeedStretch:
		return "Stretch"
	case SpeedMultiply:
		return "Multiply"
	case SpeedLength:
		return "Length"
	case SpeedFrameNumber:
		return "FrameNumber"
	default:
		return "Unknown"
	}
}

// SpeedFactorCurve is the animated property driving SpeedMultiply.
const SpeedFactorCurve = "speed_factor"

// SpeedParams configure the speed effect.
type SpeedParams struct {
	Mode        SpeedMode
	SpeedFactor float32
	// Length in percent of the source length.
	Length      float32
	FrameNumber float32
	// Interpolate cross dissolves between neighboring source frames.
	Interpolate bool

	// frameMap holds the cumulative source frame per strip frame for an
	// animated speed factor.
	frameMap []float32
}

// Clone implements Params. The frame map is not copied; it is rebuilt on
// first use.
func (p *SpeedParams) Clone() Params {
	c := *p
	c.frameMap = nil
	return &c
}

// FrameMap returns a copy of the cached frame map, nil when not built.
func (p *SpeedParams) FrameMap() []float32 {
	return slices.Clone(p.frameMap)
}

// GaussianBlurParams configure the Gaussian blur effect.
type GaussianBlurParams struct {
	SizeX, SizeY float32
}

// Clone implements Params.
func (p *GaussianBlurParams) Clone() Params { c := *p; return &c }

// ColorMixParams configure the color mix effect.
type ColorMixParams struct {
	// BlendEffect is the blend mode, one of Add, Sub, Mul or a pure blend
	// mode.
	BlendEffect EffectType
	Factor      float32
}

// Clone implements Params.
func (p *ColorMixParams) Clone() Params { c := *p; return &c }

// TextFlag enables optional text features.
type TextFlag uint8

const (
	TextShadow TextFlag = 1 << iota
	TextOutline
	TextBox
	TextBold
	TextItalic
)

// TextParams configure the text effect.
type TextParams struct {
	Text string

	// FontPath names a font file. When empty, FontName with FontData names
	// an in-memory font. With neither, the built-in font is used.
	FontPath string
	FontName string
	FontData []byte

	// Size in pixels at full resolution.
	Size  float32
	Color [4]float32

	ShadowColor [4]float32
	// ShadowAngle in radians.
	ShadowAngle float32
	// ShadowOffset and ShadowBlur are fractions of the line height.
	ShadowOffset float32
	ShadowBlur   float32

	OutlineColor [4]float32
	// OutlineWidth is a fraction of the line height.
	OutlineWidth float32

	BoxColor [4]float32
	// BoxMargin is a fraction of the image width.
	BoxMargin float32
	// BoxRoundness is the corner radius as a fraction of half the box height.
	BoxRoundness float32

	// Loc is the anchor point as a fraction of the image size.
	Loc [2]float32
	// WrapWidth as a fraction of the image width. Zero disables wrapping.
	WrapWidth float32
	Align     text.Align
	AnchorX   text.Align
	AnchorY   text.AnchorY

	Flags TextFlag

	fonts  *text.FontCache
	fontID text.FontID
}

// Clone implements Params. The clone holds no font reference of its own.
func (p *TextParams) Clone() Params {
	c := *p
	c.FontData = bytes.Clone(p.FontData)
	c.fontID = text.NoFont
	return &c
}

// Has reports whether every flag in f is set.
func (p *TextParams) Has(f TextFlag) bool {
	return p.Flags&f == f
}

// FontID returns the font loaded for the strip, text.NoFont when none.
func (p *TextParams) FontID() text.FontID {
	return p.fontID
}

// FontCache returns the cache holding the strip's font reference.
func (p *TextParams) FontCache() *text.FontCache {
	return p.fonts
}

// CanRender reports whether the text would draw anything visible.
func (p *TextParams) CanRender() bool {
	if p.Size < 1 {
		return false
	}
	shadowHidden := p.ShadowColor[3] == 0 || !p.Has(TextShadow)
	outlineHidden := p.OutlineColor[3] == 0 || p.OutlineWidth <= 0 || !p.Has(TextOutline)
	return !(p.Color[3] == 0 && shadowHidden && outlineHidden)
}

func (p *TextParams) style() text.Style {
	var s text.Style
	if p.Has(TextBold) {
		s |= text.StyleBold
	}
	if p.Has(TextItalic) {
		s |= text.StyleItalic
	}
	return s
}

func (p *TextParams) layoutOptions() text.LayoutOptions {
	return text.LayoutOptions{
		Text:      p.Text,
		Loc:       p.Loc,
		WrapWidth: p.WrapWidth,
		Align:     p.Align,
		AnchorX:   p.AnchorX,
		AnchorY:   p.AnchorY,
	}
}

func defaultTextParams() *TextParams {
	return &TextParams{
		Text:         "Text",
		Size:         60,
		Color:        [4]float32{1, 1, 1, 1},
		ShadowColor:  [4]float32{0, 0, 0, 0.7},
		ShadowAngle:  float32(65 * math.Pi / 180),
		ShadowOffset: 0.04,
		OutlineColor: [4]float32{0, 0, 0, 0.7},
		OutlineWidth: 0.05,
		BoxColor:     [4]float32{0.2, 0.2, 0.2, 0.7},
		BoxMargin:    0.01,
		Loc:          [2]float32{0.5, 0.5},
		WrapWidth:    1,
		Align:        text.AlignCenter,
		AnchorX:      text.AlignCenter,
		AnchorY:      text.AnchorCenter,
		fontID:       text.NoFont,
	}
}

func defaultTransformParams() *TransformParams {
	return &TransformParams{
		ScaleX:        1,
		ScaleY:        1,
		Percent:       true,
		Interpolation: image.Bilinear,
	}
}

func defaultGlowParams() *GlowParams {
	return &GlowParams{
		Threshold: 0.25,
		Clamp:     1,
		Boost:     0.5,
		Distance:  3,
		Quality:   3,
	}
}
