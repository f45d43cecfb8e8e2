package filter

import (
	"math"

	"github.com/gogpu/stripfx/internal/cache"
)

// GaussianKernel generates a 1D Gaussian kernel of 2*half+1 taps:
// kernel[i+half] = exp(-i²/(2·radius²)), normalized so all values sum to 1.
//
// For radius <= 0 or half <= 0, returns a single-element kernel [1.0]
// (identity).
func GaussianKernel(radius float64, half int) []float32 {
	if radius <= 0 || half <= 0 {
		return []float32{1.0}
	}

	size := half*2 + 1
	kernel := make([]float32, size)
	twoRadiusSq := 2 * radius * radius
	sum := float64(0)

	for i := -half; i <= half; i++ {
		x := float64(i)
		val := math.Exp(-(x * x) / twoRadiusSq)
		kernel[i+half] = float32(val)
		sum += val
	}

	invSum := float32(1.0 / sum)
	for i := range kernel {
		kernel[i] *= invSum
	}
	return kernel
}

// HalfSize returns the kernel half width used for a blur size: the size
// rounded to the nearest integer.
func HalfSize(size float32) int {
	return int(size + 0.5)
}

type kernelKey struct {
	radius uint64
	half   int
}

var kernelCache = cache.New[kernelKey, []float32](64)

// CachedGaussianKernel returns a shared Gaussian kernel for radius and half.
// The returned slice must not be modified.
func CachedGaussianKernel(radius float64, half int) []float32 {
	key := kernelKey{radius: math.Float64bits(radius), half: half}
	return kernelCache.GetOrCreate(key, func() []float32 {
		return GaussianKernel(radius, half)
	})
}

// KernelCacheStats reports usage of the shared kernel cache.
func KernelCacheStats() cache.Stats {
	return kernelCache.Stats()
}

// GlowKernel builds the 2*halfWidth tap kernel used by the glow blur:
// weights exp(-x²/(2π·blur²)) mirrored around index halfWidth, with the
// first tap repeating the outermost weight, normalized to sum 1.
func GlowKernel(blur float32, halfWidth int) []float32 {
	filter := make([]float32, halfWidth*2)
	k := -1.0 / (2.0 * math.Pi * float64(blur) * float64(blur))
	var weight float32
	for ix := range halfWidth {
		weight = float32(math.Exp(k * float64(ix*ix)))
		filter[halfWidth-ix] = weight
		filter[halfWidth+ix] = weight
	}
	filter[0] = weight

	var sum float32
	for _, v := range filter {
		sum += v
	}
	for i := range filter {
		filter[i] /= sum
	}
	return filter
}
