package stripfx

import "math"

// alphaOverSlice draws input 1 over input 2, scaled by the factor.
func alphaOverSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	dst, top, bottom := pixels{out}, pixels{j.In1}, pixels{j.In2}
	if j.Fac <= 0 {
		dst.copyRows(j.In2, lo, hi)
		return
	}
	fac := j.Fac
	for i := lo; i < hi; i += 4 {
		switch {
		case top.transparent(i):
			dst.copyPixel(j.In2, i)
		case fac == 1 && top.opaque(i):
			dst.copyPixel(j.In1, i)
		default:
			c1 := top.load(i)
			c2 := bottom.load(i)
			dst.store(i, c1.Scale(fac).Add(c2.Scale(1-fac*c1[3])))
		}
	}
}

// alphaUnderSlice draws input 1 under input 2, scaled by the factor.
func alphaUnderSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	dst, under, over := pixels{out}, pixels{j.In1}, pixels{j.In2}
	if j.Fac <= 0 {
		dst.copyRows(j.In2, lo, hi)
		return
	}
	fac := j.Fac
	for i := lo; i < hi; i += 4 {
		switch {
		case over.transparent(i) && fac >= 1:
			dst.copyPixel(j.In1, i)
		case over.opaque(i):
			dst.copyPixel(j.In2, i)
		default:
			c2 := over.load(i)
			c1 := under.load(i)
			dst.store(i, c1.Scale(fac*(1-c2[3])).Add(c2))
		}
	}
}

// crossSlice dissolves linearly from input 1 to input 2.
func crossSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	if out.Float != nil {
		a, b, d := j.In1.Float[lo:hi], j.In2.Float[lo:hi], out.Float[lo:hi]
		fac := j.Fac
		mfac := 1 - fac
		for i := range d {
			d[i] = mfac*a[i] + fac*b[i]
		}
		return
	}
	a, b, d := j.In1.Byte[lo:hi], j.In2.Byte[lo:hi], out.Byte[lo:hi]
	tf := int(256 * j.Fac)
	mf := 256 - tf
	for i := range d {
		d[i] = uint8((mf*int(a[i]) + tf*int(b[i])) >> 8)
	}
}

// gammaCrossSlice dissolves in a gamma 2.0 space.
func gammaCrossSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	dst, p1, p2 := pixels{out}, pixels{j.In1}, pixels{j.In2}
	fac := j.Fac
	mfac := 1 - fac
	for i := lo; i < hi; i += 4 {
		c1, c2 := p1.load(i), p2.load(i)
		for c := range 4 {
			c1[c] = gammaCorrect(mfac*invGammaCorrect(c1[c]) + fac*invGammaCorrect(c2[c]))
		}
		dst.store(i, c1)
	}
}

// gammaCorrect squares c keeping its sign.
func gammaCorrect(c float32) float32 {
	if c < 0 {
		return -(c * c)
	}
	return c * c
}

// invGammaCorrect is the signed square root.
func invGammaCorrect(c float32) float32 {
	if c < 0 {
		return -float32(math.Sqrt(float64(-c)))
	}
	return float32(math.Sqrt(float64(c)))
}
