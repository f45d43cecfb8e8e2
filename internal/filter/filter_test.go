package filter

import (
	"math"
	"testing"

	"github.com/gogpu/stripfx/internal/image"
	"github.com/gogpu/stripfx/internal/parallel"
)

// =============================================================================
// Kernels
// =============================================================================

func TestGaussianKernelIdentity(t *testing.T) {
	tests := []struct {
		name   string
		radius float64
		half   int
	}{
		{"zero radius", 0, 3},
		{"negative radius", -5, 3},
		{"zero half", 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := GaussianKernel(tt.radius, tt.half)
			if len(k) != 1 || k[0] != 1 {
				t.Errorf("GaussianKernel(%v, %d) = %v, want [1]", tt.radius, tt.half, k)
			}
		})
	}
}

func TestGaussianKernelNormalizedAndSymmetric(t *testing.T) {
	for _, r := range []float64{0.5, 1, 2, 3.7, 10, 20} {
		half := HalfSize(float32(r))
		if half == 0 {
			half = 1
		}
		k := GaussianKernel(r, half)
		if len(k) != 2*half+1 {
			t.Fatalf("radius %v: len = %d, want %d", r, len(k), 2*half+1)
		}
		var sum float64
		for _, v := range k {
			sum += float64(v)
		}
		if math.Abs(sum-1) > 1e-5 {
			t.Errorf("radius %v: sum = %v, want 1", r, sum)
		}
		for i := range half {
			if k[i] != k[len(k)-1-i] {
				t.Errorf("radius %v: k[%d] = %v, k[%d] = %v", r, i, k[i], len(k)-1-i, k[len(k)-1-i])
			}
		}
		if k[half] < k[0] {
			t.Errorf("radius %v: center %v below edge %v", r, k[half], k[0])
		}
	}
}

func TestHalfSize(t *testing.T) {
	tests := []struct {
		in   float32
		want int
	}{
		{0, 0}, {0.4, 0}, {0.5, 1}, {2.49, 2}, {7, 7},
	}
	for _, tt := range tests {
		if got := HalfSize(tt.in); got != tt.want {
			t.Errorf("HalfSize(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestCachedGaussianKernel(t *testing.T) {
	a := CachedGaussianKernel(3, 3)
	b := CachedGaussianKernel(3, 3)
	if &a[0] != &b[0] {
		t.Error("CachedGaussianKernel did not reuse the cached kernel")
	}
	if KernelCacheStats().Hits == 0 {
		t.Error("kernel cache recorded no hits")
	}
}

func TestGlowKernel(t *testing.T) {
	k := GlowKernel(3, 12)
	if len(k) != 24 {
		t.Fatalf("len = %d, want 24", len(k))
	}
	var sum float32
	for _, v := range k {
		sum += v
	}
	if math.Abs(float64(sum-1)) > 1e-5 {
		t.Errorf("sum = %v, want 1", sum)
	}
	if k[0] != k[1] {
		t.Errorf("first tap %v should repeat the outermost weight %v", k[0], k[1])
	}
	if k[12] < k[11] || k[11] != k[13] {
		t.Error("glow kernel not centered on index 12")
	}
}

// =============================================================================
// Separable convolution
// =============================================================================

func noise(t *testing.T, w, h int, format image.Format) *image.Image {
	t.Helper()
	m, err := image.New(w, h, format)
	if err != nil {
		t.Fatal(err)
	}
	seed := uint32(12345)
	next := func() uint32 {
		seed = seed*1664525 + 1013904223
		return seed >> 24
	}
	for i := range m.Byte {
		m.Byte[i] = uint8(next())
	}
	for i := range m.Float {
		m.Float[i] = float32(next()) / 255
	}
	return m
}

func TestSeparableIdentityKernel(t *testing.T) {
	for _, format := range []image.Format{image.FormatByte, image.FormatFloat} {
		t.Run(format.String(), func(t *testing.T) {
			src := noise(t, 17, 9, format)
			id := GaussianKernel(0, 0)
			out, err := Separable(nil, src, id, id, 4)
			if err != nil {
				t.Fatal(err)
			}
			for i := range src.Byte {
				if out.Byte[i] != src.Byte[i] {
					t.Fatalf("byte component %d = %d, want %d", i, out.Byte[i], src.Byte[i])
				}
			}
			for i := range src.Float {
				if out.Float[i] != src.Float[i] {
					t.Fatalf("float component %d = %v, want %v", i, out.Float[i], src.Float[i])
				}
			}
		})
	}
}

func TestSeparableFlatFieldUnchanged(t *testing.T) {
	src, _ := image.New(12, 12, image.FormatByte)
	src.Fill(0.5, 0.25, 1, 1)
	k := GaussianKernel(3, 3)
	out, err := Separable(nil, src, k, k, 5)
	if err != nil {
		t.Fatal(err)
	}
	for i := range src.Byte {
		if d := int(out.Byte[i]) - int(src.Byte[i]); d < -1 || d > 1 {
			t.Fatalf("component %d = %d, want %d (edge clamp should keep flat fields)", i, out.Byte[i], src.Byte[i])
		}
	}
}

func TestSeparableBandsMatchSerial(t *testing.T) {
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	src := noise(t, 23, 41, image.FormatFloat)
	kx := GaussianKernel(2, 2)
	ky := GaussianKernel(4, 4)

	serial, err := Separable(nil, src, kx, ky, 0)
	if err != nil {
		t.Fatal(err)
	}
	banded, err := Separable(pool, src, kx, ky, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range serial.Float {
		if serial.Float[i] != banded.Float[i] {
			t.Fatalf("component %d: serial %v, banded %v", i, serial.Float[i], banded.Float[i])
		}
	}
}

func TestHorizontalSpreadsImpulse(t *testing.T) {
	src, _ := image.New(9, 1, image.FormatFloat)
	src.FloatAt(4, 0)[3] = 1
	dst, _ := image.New(9, 1, image.FormatFloat)
	k := GaussianKernel(1, 2)
	Horizontal(src, dst, k, 0, 1)
	for i, w := range k {
		if got := dst.FloatAt(2+i, 0)[3]; got != w {
			t.Errorf("x=%d alpha = %v, want kernel tap %v", 2+i, got, w)
		}
	}
}

// =============================================================================
// Mask convolution
// =============================================================================

func TestMaskBlurStaysInsideRect(t *testing.T) {
	const w, h = 10, 10
	src := make([]uint8, w*h)
	tmp := make([]uint8, w*h)
	src[5*w+5] = 255
	r := image.Rect{XMin: 3, YMin: 3, XMax: 7, YMax: 7}
	k := GaussianKernel(2, 2)

	MaskHorizontal(k, src, tmp, w, r, 0, h)
	MaskVertical(k, tmp, src, w, r, 0, h)

	if src[5*w+5] == 0 || src[5*w+5] == 255 {
		t.Errorf("center = %d, want partially spread", src[5*w+5])
	}
	for y := range h {
		if src[y*w+1] != 0 || src[y*w+8] != 0 {
			t.Fatalf("row %d wrote outside rect columns", y)
		}
	}
}

func TestMaskRenormalizesAtRectEdge(t *testing.T) {
	const w = 6
	src := []uint8{200, 200, 200, 200, 200, 200}
	dst := make([]uint8, w)
	r := image.Rect{XMin: 0, YMin: 0, XMax: 5, YMax: 0}
	MaskHorizontal(GaussianKernel(3, 3), src, dst, w, r, 0, 1)
	for x, v := range dst {
		if v < 199 || v > 200 {
			t.Errorf("x=%d = %d, want ~200", x, v)
		}
	}
}

// =============================================================================
// Glow
// =============================================================================

func TestIsolateHighlights(t *testing.T) {
	in := []float32{
		0.1, 0.1, 0.1, 1, // below threshold
		1, 1, 1, 1, // bright
	}
	out := make([]float32, len(in))
	IsolateHighlights(nil, in, out, 2, 1, 0.75, 0.5, 1)
	for c := range 4 {
		if out[c] != 0 {
			t.Fatalf("dark pixel = %v, want zero", out[:4])
		}
	}
	// intensity 3-0.75 = 2.25, scale 1.125, clamped to 1
	if out[4] != 1 || out[7] != 1 {
		t.Errorf("bright pixel = %v, want clamped to 1", out[4:])
	}
}

func TestGlowBlurZeroRadius(t *testing.T) {
	m := []float32{0.5, 0.5, 0.5, 0.5}
	GlowBlur(nil, nil, m, 1, 1, 0, 3)
	if m[0] != 0.5 {
		t.Errorf("GlowBlur(radius 0) changed buffer: %v", m)
	}
}

func TestGlowBlurAddsSource(t *testing.T) {
	const w, h = 8, 8
	src := make([]float32, w*h*4)
	m := make([]float32, w*h*4)
	for i := range src {
		src[i] = 0.9
		m[i] = 0.5
	}
	GlowBlur(nil, src, m, w, h, 1, 1)
	for i, v := range m {
		if v > 1 {
			t.Fatalf("component %d = %v, want clamped to 1", i, v)
		}
	}
	if m[(4*w+4)*4] <= 0.9 {
		t.Errorf("center = %v, want source plus glow", m[(4*w+4)*4])
	}
}
