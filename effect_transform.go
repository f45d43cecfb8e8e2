package stripfx

import (
	"math"

	"github.com/gogpu/stripfx/internal/image"
)

func initTransform(s *Strip) {
	s.Params = defaultTransformParams()
}

// affine maps output pixels back to input coordinates.
type affine struct {
	sx, sy   float32
	tx, ty   float32
	cos, sin float32
	halfX    float32
	halfY    float32
}

func newAffine(p *TransformParams, rc *RenderContext) affine {
	w, h := float32(rc.Width), float32(rc.Height)
	a := affine{sx: p.ScaleX, sy: p.ScaleY, halfX: w / 2, halfY: h / 2}
	if p.UniformScale {
		a.sy = p.ScaleX
	}
	if p.Percent {
		a.tx = w*(p.TranslateX/100) + w/2
		a.ty = h*(p.TranslateY/100) + h/2
	} else {
		scale := float32(rc.renderScale())
		a.tx = p.TranslateX*scale + w/2
		a.ty = p.TranslateY*scale + h/2
	}
	rot := float64(p.Rotation) * math.Pi / 180
	a.cos, a.sin = float32(math.Cos(rot)), float32(math.Sin(rot))
	return a
}

// source returns the input coordinate sampled for output pixel (x, y).
func (a *affine) source(x, y int) (u, v float32) {
	xt := float32(x) - a.tx
	yt := float32(y) - a.ty
	xr := a.cos*xt + a.sin*yt
	yr := -a.sin*xt + a.cos*yt
	return xr/a.sx + a.halfX, yr/a.sy + a.halfY
}

// transformSlice scales, rotates and translates input 1 about the image
// center. Samples outside the input are transparent.
func transformSlice(j *Job, out *Image, y0, y1 int) {
	p := j.Strip.Params.(*TransformParams)
	a := newAffine(p, j.Render)
	singular := a.sx == 0 || a.sy == 0
	for y := y0; y < y1; y++ {
		for x := range out.Width {
			i := (y*out.Width + x) * 4
			if singular {
				clearPixel(out, i)
				continue
			}
			u, v := a.source(x, y)
			if out.Float != nil {
				image.SampleFloat(j.In1, u, v, p.Interpolation, out.Float[i:i+4])
			} else {
				image.SampleByte(j.In1, u, v, p.Interpolation, out.Byte[i:i+4])
			}
		}
	}
}

func clearPixel(m *Image, i int) {
	if m.Float != nil {
		clear(m.Float[i : i+4])
		return
	}
	clear(m.Byte[i : i+4])
}
