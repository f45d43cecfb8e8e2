package filter

import (
	"github.com/gogpu/stripfx/internal/image"
	"github.com/gogpu/stripfx/internal/parallel"
)

// Horizontal convolves rows [y0, y1) of src along x with kernel and writes
// them to dst. Samples beyond the left and right edges reuse the edge pixel.
// src and dst must share size and format and must not alias.
func Horizontal(src, dst *image.Image, kernel []float32, y0, y1 int) {
	half := len(kernel) / 2
	w := src.Width
	for y := y0; y < y1; y++ {
		row := y * w
		for x := range w {
			var acc [image.Channels]float32
			for i, k := range kernel {
				nx := clampInt(x+i-half, 0, w-1)
				accumulate(src, (row+nx)*image.Channels, k, &acc)
			}
			store(dst, (row+x)*image.Channels, &acc)
		}
	}
}

// Vertical convolves along y for output rows [y0, y1) of dst. Samples beyond
// the top and bottom edges reuse the edge row.
func Vertical(src, dst *image.Image, kernel []float32, y0, y1 int) {
	half := len(kernel) / 2
	w, h := src.Width, src.Height
	for y := y0; y < y1; y++ {
		for x := range w {
			var acc [image.Channels]float32
			for i, k := range kernel {
				ny := clampInt(y+i-half, 0, h-1)
				accumulate(src, (ny*w+x)*image.Channels, k, &acc)
			}
			store(dst, (y*w+x)*image.Channels, &acc)
		}
	}
}

func accumulate(src *image.Image, off int, k float32, acc *[image.Channels]float32) {
	if src.Float != nil {
		p := src.Float[off : off+image.Channels]
		acc[0] += p[0] * k
		acc[1] += p[1] * k
		acc[2] += p[2] * k
		acc[3] += p[3] * k
		return
	}
	p := src.Byte[off : off+image.Channels]
	acc[0] += float32(p[0]) * k
	acc[1] += float32(p[1]) * k
	acc[2] += float32(p[2]) * k
	acc[3] += float32(p[3]) * k
}

func store(dst *image.Image, off int, acc *[image.Channels]float32) {
	if dst.Float != nil {
		copy(dst.Float[off:off+image.Channels], acc[:])
		return
	}
	p := dst.Byte[off : off+image.Channels]
	for c := range image.Channels {
		p[c] = uint8(min(acc[c]+0.5, 255))
	}
}

// Separable blurs src with kx along rows and then ky along columns, running
// both passes in row bands of grain rows on pool (nil runs inline). The
// result is a new image; src is not modified.
func Separable(pool *parallel.WorkerPool, src *image.Image, kx, ky []float32, grain int) (*image.Image, error) {
	tmp, err := image.GetTemp(src.Width, src.Height, src.Format())
	if err != nil {
		return nil, err
	}
	defer image.PutTemp(tmp)

	out, err := image.New(src.Width, src.Height, src.Format())
	if err != nil {
		return nil, err
	}

	pool.ForRows(src.Height, grain, func(y0, y1 int) {
		Horizontal(src, tmp, kx, y0, y1)
	})
	pool.ForRows(src.Height, grain, func(y0, y1 int) {
		Vertical(tmp, out, ky, y0, y1)
	})
	return out, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
