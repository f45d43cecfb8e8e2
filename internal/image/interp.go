package image

import "math"

// Interpolation selects how a source image is sampled at fractional
// coordinates.
type Interpolation uint8

const (
	// Nearest picks the pixel containing the coordinate.
	Nearest Interpolation = iota

	// Bilinear blends the four neighboring pixels.
	Bilinear

	// CubicBSpline weights a 4x4 neighborhood with the cubic B-spline basis.
	CubicBSpline
)

// String returns a string representation of the interpolation mode.
func (m Interpolation) String() string {
	switch m {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case CubicBSpline:
		return "CubicBSpline"
	default:
		return "Unknown"
	}
}

// Sample samples src at pixel coordinates (u, v) into out. Integer
// coordinates address pixel centers. Taps outside the image read as
// transparent black.
//
// For byte images out holds 0..255 values; for float images it holds
// premultiplied components.
func Sample(src *Image, u, v float32, mode Interpolation, out *[Channels]float32) {
	switch mode {
	case Nearest:
		sampleNearest(src, u, v, out)
	case CubicBSpline:
		sampleCubic(src, u, v, out)
	default:
		sampleBilinear(src, u, v, out)
	}
}

// SampleByte samples a byte image and rounds the result to bytes.
func SampleByte(src *Image, u, v float32, mode Interpolation, dst []uint8) {
	var px [Channels]float32
	Sample(src, u, v, mode, &px)
	for c := range Channels {
		dst[c] = uint8(clampFloat(px[c]+0.5, 0, 255))
	}
}

// SampleFloat samples a float image.
func SampleFloat(src *Image, u, v float32, mode Interpolation, dst []float32) {
	var px [Channels]float32
	Sample(src, u, v, mode, &px)
	copy(dst, px[:])
}

// tap adds w times pixel (x, y) of src to acc, skipping out-of-range pixels.
func tap(src *Image, x, y int, w float32, acc *[Channels]float32) {
	if x < 0 || y < 0 || x >= src.Width || y >= src.Height || w == 0 {
		return
	}
	i := (y*src.Width + x) * Channels
	if src.Float != nil {
		p := src.Float[i : i+Channels]
		for c := range Channels {
			acc[c] += w * p[c]
		}
		return
	}
	p := src.Byte[i : i+Channels]
	for c := range Channels {
		acc[c] += w * float32(p[c])
	}
}

func sampleNearest(src *Image, u, v float32, out *[Channels]float32) {
	*out = [Channels]float32{}
	if u < 0 || v < 0 {
		return
	}
	tap(src, int(u), int(v), 1, out)
}

func sampleBilinear(src *Image, u, v float32, out *[Channels]float32) {
	*out = [Channels]float32{}
	fx := float32(math.Floor(float64(u)))
	fy := float32(math.Floor(float64(v)))
	x, y := int(fx), int(fy)
	tx, ty := u-fx, v-fy

	tap(src, x, y, (1-tx)*(1-ty), out)
	tap(src, x+1, y, tx*(1-ty), out)
	tap(src, x, y+1, (1-tx)*ty, out)
	tap(src, x+1, y+1, tx*ty, out)
}

func sampleCubic(src *Image, u, v float32, out *[Channels]float32) {
	*out = [Channels]float32{}
	fx := float32(math.Floor(float64(u)))
	fy := float32(math.Floor(float64(v)))
	x, y := int(fx), int(fy)
	wx := bsplineWeights(u - fx)
	wy := bsplineWeights(v - fy)

	for j := range 4 {
		for i := range 4 {
			tap(src, x+i-1, y+j-1, wx[i]*wy[j], out)
		}
	}
}

// bsplineWeights returns the uniform cubic B-spline basis for the four taps
// around a sample with fractional offset t.
func bsplineWeights(t float32) [4]float32 {
	t2 := t * t
	t3 := t2 * t
	mt := 1 - t
	return [4]float32{
		mt * mt * mt / 6,
		(3*t3 - 6*t2 + 4) / 6,
		(-3*t3 + 3*t2 + 3*t + 1) / 6,
		t3 / 6,
	}
}

func clampFloat(val, minVal, maxVal float32) float32 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}
