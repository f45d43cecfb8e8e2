package text

import (
	stdcolor "image/color"
	"math"
	"unicode/utf8"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/stripfx/internal/color"
	"github.com/gogpu/stripfx/internal/image"
)

// Face measures characters for Layout.
type Face interface {
	Metrics() Metrics

	// Advance returns the advance of r in whole pixels.
	Advance(r rune) int
}

// FontFace is a font at one size and style, bound to a Session.
type FontFace struct {
	s       *Session
	id      FontID
	size    float64
	style   Style
	metrics Metrics
}

var _ Face = (*FontFace)(nil)

// ID returns the font id.
func (f *FontFace) ID() FontID { return f.id }

// Size returns the pixel size.
func (f *FontFace) Size() float64 { return f.size }

// Metrics implements Face.
func (f *FontFace) Metrics() Metrics { return f.metrics }

// Advance implements Face. Results are cached per font, size and rune.
func (f *FontFace) Advance(r rune) int {
	key := advanceKey{id: f.id, size: math.Float64bits(f.size), r: r}
	return f.s.c.advances.GetOrCreate(key, func() int {
		return int(math.Round(f.s.c.svc.Advance(f.id, f.size, r)))
	})
}

// Draw composites str over the byte image dst with its baseline starting at
// (x, y) in bottom-up coordinates. col is a straight-alpha color.
func (f *FontFace) Draw(dst *image.Image, x, y float32, str string, col [4]float32) {
	canvas := image.NewCanvas(dst)
	c := toNRGBA(col)
	dot := fixed.Point26_6{
		X: fixed.Int26_6(x * 64),
		Y: fixed.I(dst.Height) - fixed.Int26_6(y*64),
	}
	for len(str) > 0 {
		r, size := utf8.DecodeRuneInString(str)
		str = str[size:]
		f.s.c.svc.DrawGlyph(f.id, f.size, f.style, canvas, dot, r, c)
		dot.X += fixed.I(f.Advance(r))
	}
}

// DrawResult draws every character of a layout at its position.
func (f *FontFace) DrawResult(dst *image.Image, res *Result, col [4]float32) {
	for _, line := range res.Lines {
		for _, ch := range line.Chars {
			if ch.Rune == 0 || ch.Rune == '\n' {
				continue
			}
			f.Draw(dst, ch.X, ch.Y, ch.Str, col)
		}
	}
}

func toNRGBA(c [4]float32) stdcolor.NRGBA {
	return stdcolor.NRGBA{
		R: color.UnitToByte(c[0]),
		G: color.UnitToByte(c[1]),
		B: color.UnitToByte(c[2]),
		A: color.UnitToByte(c[3]),
	}
}
