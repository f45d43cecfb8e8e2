package filter

import "github.com/gogpu/stripfx/internal/image"

// MaskHorizontal convolves rows [y0, y1) of a single-channel mask of the
// given width. Only columns inside r contribute and only columns inside r are
// written with the blurred value, renormalized by the weight that fell inside
// r; the remaining columns of each row are zeroed.
func MaskHorizontal(kernel []float32, src, dst []uint8, width int, r image.Rect, y0, y1 int) {
	half := len(kernel) / 2
	for y := y0; y < y1; y++ {
		row := y * width
		for x := range width {
			if x < r.XMin || x > r.XMax {
				dst[row+x] = 0
				continue
			}
			var acc, wsum float32
			lo, hi := max(x-half, r.XMin), min(x+half, r.XMax)
			for nx := lo; nx <= hi; nx++ {
				k := kernel[nx-x+half]
				acc += float32(src[row+nx]) * k
				wsum += k
			}
			dst[row+x] = uint8(acc / wsum)
		}
	}
}

// MaskVertical is the column counterpart of MaskHorizontal; rows outside
// [r.YMin, r.YMax] do not contribute.
func MaskVertical(kernel []float32, src, dst []uint8, width int, r image.Rect, y0, y1 int) {
	half := len(kernel) / 2
	for y := y0; y < y1; y++ {
		row := y * width
		lo, hi := max(y-half, r.YMin), min(y+half, r.YMax)
		for x := range width {
			if x < r.XMin || x > r.XMax {
				dst[row+x] = 0
				continue
			}
			var acc, wsum float32
			for ny := lo; ny <= hi; ny++ {
				k := kernel[ny-y+half]
				acc += float32(src[ny*width+x]) * k
				wsum += k
			}
			dst[row+x] = uint8(acc / wsum)
		}
	}
}
