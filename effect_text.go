package stripfx

import (
	"math"

	"github.com/gogpu/stripfx/internal/blend"
	"github.com/gogpu/stripfx/internal/filter"
	"github.com/gogpu/stripfx/internal/image"
	"github.com/gogpu/stripfx/internal/jfa"
	"github.com/gogpu/stripfx/text"
)

// Row grains of the text passes.
const (
	textOutlineGrain = 8
	textShadowGrain  = 8
	textBoxGrain     = 16
)

// boxCornerPower is the exponent of the superellipse rounding box corners.
const boxCornerPower = 2.1

func initText(s *Strip) {
	s.Params = defaultTextParams()
}

// loadText acquires the strip's font, releasing any font it held before.
func loadText(e *Engine, s *Strip) {
	p := s.Params.(*TextParams)
	if p.fonts == nil {
		p.fonts = e.fonts
	}
	p.fonts.Do(func(sess *text.Session) {
		sess.Release(p.fontID)
		p.fontID = acquireFont(sess, p)
	})
}

func freeText(s *Strip) {
	p, ok := s.Params.(*TextParams)
	if !ok || p.fonts == nil {
		return
	}
	p.fonts.Release(p.fontID)
	p.fontID = text.NoFont
}

// copyText gives the copy a font reference of its own.
func copyText(dst, _ *Strip) {
	p := dst.Params.(*TextParams)
	if p.fonts == nil {
		return
	}
	p.fonts.Do(func(sess *text.Session) {
		p.fontID = acquireFont(sess, p)
	})
}

// acquireFont loads the font named by p. It returns text.NoFont when p
// names no font or loading fails.
func acquireFont(sess *text.Session, p *TextParams) text.FontID {
	var (
		id  = text.NoFont
		err error
	)
	switch {
	case p.FontPath != "":
		id, err = sess.LoadFile(p.FontPath)
	case p.FontName != "" && len(p.FontData) > 0:
		id, err = sess.LoadMemory(p.FontName, p.FontData)
	}
	if err != nil {
		Logger().Warn("stripfx: font load failed, using built-in font", "err", err)
		return text.NoFont
	}
	return id
}

func earlyOutText(s *Strip, _ float32) EarlyOut {
	if !s.Params.(*TextParams).CanRender() {
		return UseInput1
	}
	return NoInput
}

// executeText renders the text block into a cleared byte image: outline,
// glyphs, shadow under both, then the box under everything.
func executeText(e *Engine, j *Job) (*Image, error) {
	rc := j.Render
	out, err := e.allocate(rc.Width, rc.Height, FormatByte)
	if err != nil {
		return nil, err
	}
	p := j.Strip.Params.(*TextParams)
	fonts := p.fonts
	if fonts == nil {
		fonts = e.fonts
	}
	lineSize := int(rc.renderScale() * float64(p.Size))

	fonts.Do(func(sess *text.Session) {
		if p.fontID >= 0 && !sess.IsLoaded(p.fontID) && p.fonts != nil {
			p.fontID = acquireFont(sess, p)
		}
		face := sess.Face(sess.Resolve(p.fontID), float64(lineSize), p.style())
		res := text.Layout(face, p.layoutOptions(), rc.Width, rc.Height)

		rect := e.drawTextOutline(p, face, res, out)
		face.DrawResult(out, res, p.Color)
		if p.Has(TextShadow) {
			e.drawTextShadow(p, res.LineHeight, rect, out)
		}
		if p.Has(TextBox) {
			margin := int(p.BoxMargin * float32(out.Width))
			b := res.BoundBox.Pad(margin, margin)
			radius := p.BoxRoundness * float32(b.YMax-b.YMin) / 2
			e.fillRectUnder(out, p.BoxColor, b, radius)
		}
	})
	return out, nil
}

// drawTextOutline composites the outline of the text over out and returns
// the rectangle it covers, or the text bound box when there is no outline.
func (e *Engine) drawTextOutline(p *TextParams, face *text.FontFace, res *text.Result, out *Image) image.Rect {
	width := int(float32(res.LineHeight) * 0.5 * p.OutlineWidth)
	if width < 1 || p.OutlineColor[3] <= 0 || !p.Has(TextOutline) {
		return res.BoundBox
	}
	w, h := out.Width, out.Height

	shape, err := image.GetTemp(w, h, FormatByte)
	if err != nil {
		Logger().Warn("stripfx: outline buffer", "err", err)
		return res.BoundBox
	}
	defer image.PutTemp(shape)
	shape.Clear()
	face.DrawResult(shape, res, [4]float32{1, 1, 1, 1})

	rect := res.BoundBox.Pad(width+1, width+1).Clamp(w, h)
	seed := jfa.SeedAlpha(e.pool, shape.Byte, w, h, 128)
	flooded := jfa.Flood(e.pool, seed, rect, width)

	col := premul(p.OutlineColor)
	textAlpha := p.Color[3]
	e.pool.ForRows(rect.Height(), textOutlineGrain, func(r0, r1 int) {
		for y := rect.YMin + r0; y < rect.YMin+r1; y++ {
			for x := rect.XMin; x <= rect.XMax; x++ {
				c := flooded.At(x, y)
				if !c.Valid() {
					continue
				}
				i := (y*w + x) * 4
				alpha := min(max(float32(width)-c.Dist(x, y)+1, 0), 1)

				a := float32(shape.Byte[i+3]) / 255
				mulOpaque := float32(1)
				if a >= 1 {
					mulOpaque = 0
				}
				mulTransparent := 1 - a
				alpha *= mulTransparent + (mulOpaque-mulTransparent)*textAlpha

				c1 := col.Scale(alpha)
				dst := out.Byte[i : i+4]
				blend.StorePremulByte(c1.Add(blend.LoadPremulByte(dst).Scale(1-c1[3])), dst)
			}
		}
	})
	return rect
}

// drawTextShadow composites a shadow of everything drawn so far under it.
// The shadow is offset along ShadowAngle and optionally blurred.
func (e *Engine) drawTextShadow(p *TextParams, lineHeight int, rect image.Rect, out *Image) {
	w, h := out.Width, out.Height
	blur := float32(lineHeight) * 0.5 * p.ShadowBlur
	dist := float64(float32(lineHeight) * p.ShadowOffset)
	ox := int(math.Cos(float64(p.ShadowAngle)) * dist)
	oy := int(math.Sin(float64(p.ShadowAngle)) * dist)

	r := rect.Translate(ox, -oy).Pad(1, 1).Clamp(w, h)
	mask := make([]uint8, w*h)
	e.pool.ForRows(r.Height(), textShadowGrain, func(r0, r1 int) {
		for y := r.YMin + r0; y < r.YMin+r1; y++ {
			sy := min(max(y+oy, 0), h-1)
			for x := r.XMin; x <= r.XMax; x++ {
				sx := min(max(x-ox, 0), w-1)
				mask[y*w+x] = out.Byte[(sy*w+sx)*4+3]
			}
		}
	})

	if blur >= 1 {
		half := filter.HalfSize(blur)
		kernel := filter.CachedGaussianKernel(float64(blur), half)
		r = r.Pad(half+1, half+1).Clamp(w, h)
		tmp := make([]uint8, w*h)
		e.pool.ForRows(r.Height(), textShadowGrain, func(r0, r1 int) {
			filter.MaskHorizontal(kernel, mask, tmp, w, r, r.YMin+r0, r.YMin+r1)
		})
		e.pool.ForRows(r.Height(), textShadowGrain, func(r0, r1 int) {
			filter.MaskVertical(kernel, tmp, mask, w, r, r.YMin+r0, r.YMin+r1)
		})
	}

	col := premul(p.ShadowColor)
	e.pool.ForRows(r.Height(), textShadowGrain, func(r0, r1 int) {
		for y := r.YMin + r0; y < r.YMin+r1; y++ {
			for x := r.XMin; x <= r.XMax; x++ {
				a := mask[y*w+x]
				if a == 0 {
					continue
				}
				dst := out.ByteAt(x, y)
				c1 := blend.LoadPremulByte(dst)
				c2 := col.Scale(float32(a) / 255)
				blend.StorePremulByte(c1.Add(c2.Scale(1-c1[3])), dst)
			}
		}
	})
}

// fillRectUnder blends col under out inside b, with XMax and YMax
// exclusive. radius rounds the corners with a superellipse.
func (e *Engine) fillRectUnder(out *Image, col [4]float32, b image.Rect, radius float32) {
	x1, x2 := min(max(b.XMin, 0), out.Width), min(max(b.XMax, 0), out.Width)
	y1, y2 := min(max(b.YMin, 0), out.Height), min(max(b.YMax, 0), out.Height)
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	if x1 == x2 || y1 == y2 {
		return
	}
	radius = min(max(radius, 0), float32(min(x2-x1, y2-y1))/2)
	base := premul(col)

	e.pool.ForRows(y2-y1, textBoxGrain, func(r0, r1 int) {
		for y := y1 + r0; y < y1+r1; y++ {
			fy := float32(y)
			for x := x1; x < x2; x++ {
				fx := float32(x)
				dst := out.ByteAt(x, y)
				pix := blend.LoadPremulByte(dst)
				c := base

				corner := true
				var cx, cy float32
				switch {
				case fx < float32(x1)+radius && fy < float32(y1)+radius:
					cx, cy = float32(x1)+radius-1, float32(y1)+radius-1
				case fx >= float32(x2)-radius && fy < float32(y1)+radius:
					cx, cy = float32(x2)-radius, float32(y1)+radius-1
				case fx < float32(x1)+radius && fy >= float32(y2)-radius:
					cx, cy = float32(x1)+radius-1, float32(y2)-radius
				case fx >= float32(x2)-radius && fy >= float32(y2)-radius:
					cx, cy = float32(x2)-radius, float32(y2)-radius
				default:
					corner = false
				}
				if corner {
					d := math.Pow(math.Pow(math.Abs(float64(fx-cx)), boxCornerPower)+
						math.Pow(math.Abs(float64(fy-cy)), boxCornerPower), 1/boxCornerPower)
					c = c.Scale(min(max(radius-float32(d), 0), 1))
				}
				blend.StorePremulByte(c.Scale(1-pix[3]).Add(pix), dst)
			}
		}
	})
}

func premul(c [4]float32) blend.Float4 {
	return blend.Float4{c[0] * c[3], c[1] * c[3], c[2] * c[3], c[3]}
}
