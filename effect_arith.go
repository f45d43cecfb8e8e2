package stripfx

// Offsets of the over-drop shadow: right and down.
const (
	dropOffsetX = 8
	dropOffsetY = 8
)

// addSlice adds input 2, weighted by the factor and its alpha, to input 1.
func addSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	if out.Float != nil {
		a, b, d := j.In1.Float[lo:hi], j.In2.Float[lo:hi], out.Float[lo:hi]
		for i := 0; i < len(d); i += 4 {
			t := (1 - a[i+3]*(1-j.Fac)) * b[i+3]
			d[i] = a[i] + t*b[i]
			d[i+1] = a[i+1] + t*b[i+1]
			d[i+2] = a[i+2] + t*b[i+2]
			d[i+3] = a[i+3]
		}
		return
	}
	a, b, d := j.In1.Byte[lo:hi], j.In2.Byte[lo:hi], out.Byte[lo:hi]
	tf := int(256 * j.Fac)
	for i := 0; i < len(d); i += 4 {
		tf2 := tf * int(b[i+3])
		for c := range 3 {
			d[i+c] = uint8(min(int(a[i+c])+(tf2*int(b[i+c]))>>16, 255))
		}
		d[i+3] = a[i+3]
	}
}

// subSlice subtracts input 2, weighted by the factor and its alpha, from
// input 1.
func subSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	if out.Float != nil {
		a, b, d := j.In1.Float[lo:hi], j.In2.Float[lo:hi], out.Float[lo:hi]
		mfac := 1 - j.Fac
		for i := 0; i < len(d); i += 4 {
			t := (1 - a[i+3]*mfac) * b[i+3]
			d[i] = max(a[i]-t*b[i], 0)
			d[i+1] = max(a[i+1]-t*b[i+1], 0)
			d[i+2] = max(a[i+2]-t*b[i+2], 0)
			d[i+3] = a[i+3]
		}
		return
	}
	a, b, d := j.In1.Byte[lo:hi], j.In2.Byte[lo:hi], out.Byte[lo:hi]
	tf := int(256 * j.Fac)
	for i := 0; i < len(d); i += 4 {
		tf2 := tf * int(b[i+3])
		for c := range 3 {
			d[i+c] = uint8(max(int(a[i+c])-(tf2*int(b[i+c]))>>16, 0))
		}
		d[i+3] = a[i+3]
	}
}

// mulSlice multiplies input 1 by input 2, blended by the factor:
// fac*(a*b) + (1-fac)*a, on all four channels.
func mulSlice(j *Job, out *Image, y0, y1 int) {
	lo, hi := rowSpan(out, y0, y1)
	if out.Float != nil {
		a, b, d := j.In1.Float[lo:hi], j.In2.Float[lo:hi], out.Float[lo:hi]
		for i := range d {
			d[i] = a[i] + j.Fac*a[i]*(b[i]-1)
		}
		return
	}
	a, b, d := j.In1.Byte[lo:hi], j.In2.Byte[lo:hi], out.Byte[lo:hi]
	tf := int(256 * j.Fac)
	for i := range d {
		d[i] = uint8(int(a[i]) + (tf*int(a[i])*(int(b[i])-255))>>16)
	}
}

// overDropSlice darkens input 2 with the alpha of input 1 offset by the
// drop distance, then draws input 1 over the result.
//
// The shadow reads input 1 at global coordinates, so bands do not depend on
// each other.
func overDropSlice(j *Job, out *Image, y0, y1 int) {
	w, h := out.Width, out.Height
	xoff, yoff := min(dropOffsetX, w), min(dropOffsetY, h)
	for y := y0; y < y1; y++ {
		row := y * w * 4
		if y+yoff >= h {
			pixels{out}.copyRows(j.In2, row, row+w*4)
			continue
		}
		pixels{out}.copyRows(j.In2, row, row+xoff*4)
		src := (y + yoff) * w * 4
		if out.Float != nil {
			bg, d, fg := j.In2.Float, out.Float, j.In1.Float
			tf := 70 * j.Fac
			for x := xoff; x < w; x++ {
				i := row + x*4
				t := tf * fg[src+(x-xoff)*4+3]
				for c := range 4 {
					d[i+c] = max(0, bg[i+c]-t)
				}
			}
		} else {
			bg, d, fg := j.In2.Byte, out.Byte, j.In1.Byte
			tf := int(70 * j.Fac)
			for x := xoff; x < w; x++ {
				i := row + x*4
				t := (tf * int(fg[src+(x-xoff)*4+3])) >> 8
				for c := range 4 {
					d[i+c] = uint8(max(0, int(bg[i+c])-t))
				}
			}
		}
	}

	shadowed := &Job{Fac: j.Fac, In1: j.In1, In2: out}
	alphaOverSlice(shadowed, out, y0, y1)
}
