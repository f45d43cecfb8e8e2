package stripfx

import "github.com/gogpu/stripfx/internal/blend"

// blendModeSlice blends input 2 onto input 1 with the strip's blend mode,
// or with its own type for blend-mode effect strips.
func blendModeSlice(j *Job, out *Image, y0, y1 int) {
	t := j.Strip.BlendMode
	if !t.IsBlendMode() && t != Add && t != Sub && t != Mul {
		t = j.Strip.Type
	}
	applyBlend(t, j.Fac, j, out, y0, y1)
}

func initColorMix(s *Strip) {
	s.Params = &ColorMixParams{BlendEffect: Overlay, Factor: 1}
}

// colorMixSlice blends with the mode and factor of its parameters; the
// strip factor only drives the early out.
func colorMixSlice(j *Job, out *Image, y0, y1 int) {
	p := j.Strip.Params.(*ColorMixParams)
	applyBlend(p.BlendEffect, p.Factor, j, out, y0, y1)
}

// applyBlend weights each input 2 pixel by fac times its alpha and blends
// it onto input 1. Output alpha is input 1 alpha. Unknown modes copy
// input 1.
func applyBlend(t EffectType, fac float32, j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	m, ok := blendMode(t)
	if !ok {
		pixels{out}.copyRows(j.In1, lo, hi)
		return
	}
	if out.Float != nil {
		blend.ApplyFloat(m, fac, j.In1.Float[lo:hi], j.In2.Float[lo:hi], out.Float[lo:hi])
		return
	}
	blend.ApplyByte(m, fac, j.In1.Byte[lo:hi], j.In2.Byte[lo:hi], out.Byte[lo:hi])
}
