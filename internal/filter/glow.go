package filter

import "github.com/gogpu/stripfx/internal/parallel"

// IsolateHighlights writes to out the pixels of in whose summed color
// exceeds threshold, scaled by boost times that excess and clamped per
// component to limit. Other pixels become transparent black. Both buffers
// are premultiplied RGBA, four floats per pixel.
func IsolateHighlights(pool *parallel.WorkerPool, in, out []float32, width, height int, threshold, boost, limit float32) {
	pool.ForRows(height, 64, func(y0, y1 int) {
		for i := y0 * width * 4; i < y1*width*4; i += 4 {
			intensity := in[i] + in[i+1] + in[i+2] - threshold
			if intensity <= 0 {
				out[i], out[i+1], out[i+2], out[i+3] = 0, 0, 0, 0
				continue
			}
			s := boost * intensity
			for c := range 4 {
				out[i+c] = min(limit, in[i+c]*s)
			}
		}
	})
}

// GlowBlur blurs m in place with the glow kernel of the given blur radius
// and quality. When src is not nil the blurred glow is added to src and
// clamped to 1. A radius or half width of zero leaves m unchanged.
func GlowBlur(pool *parallel.WorkerPool, src, m []float32, width, height int, blur float32, quality int) {
	if blur <= 0 {
		return
	}
	halfWidth := int(float32(quality+1) * blur)
	if halfWidth == 0 {
		return
	}
	filter := GlowKernel(blur, halfWidth)
	temp := make([]float32, len(m))

	// Rows: read m, write temp.
	pool.ForRows(height, 32, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := range width {
				var acc [4]float32
				xmin, xmax := max(x-halfWidth, 0), min(x+halfWidth, width)
				for nx := xmin; nx < xmax; nx++ {
					k := filter[nx-x+halfWidth]
					p := m[(nx+y*width)*4:]
					acc[0] += p[0] * k
					acc[1] += p[1] * k
					acc[2] += p[2] * k
					acc[3] += p[3] * k
				}
				copy(temp[(x+y*width)*4:], acc[:])
			}
		}
	})

	// Columns: read temp, write m.
	pool.ForRows(width, 32, func(x0, x1 int) {
		for x := x0; x < x1; x++ {
			for y := range height {
				var acc [4]float32
				ymin, ymax := max(y-halfWidth, 0), min(y+halfWidth, height)
				for ny := ymin; ny < ymax; ny++ {
					k := filter[ny-y+halfWidth]
					p := temp[(x+ny*width)*4:]
					acc[0] += p[0] * k
					acc[1] += p[1] * k
					acc[2] += p[2] * k
					acc[3] += p[3] * k
				}
				off := (x + y*width) * 4
				if src != nil {
					for c := range 4 {
						acc[c] = min(1, src[off+c]+acc[c])
					}
				}
				copy(m[off:off+4], acc[:])
			}
		}
	})
}
