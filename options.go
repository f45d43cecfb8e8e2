package stripfx

import "github.com/gogpu/stripfx/text"

// Option configures an Engine during creation.
//
// Example:
//
//	// Default engine: one worker per CPU, heap allocation, sRGB frames
//	eng := stripfx.New()
//
//	// Four workers and a shared font cache
//	eng := stripfx.New(stripfx.WithWorkers(4), stripfx.WithFontCache(fonts))
type Option func(*engineOptions)

// engineOptions holds optional configuration for Engine creation.
type engineOptions struct {
	workers   int
	allocator Allocator
	colors    ColorManager
	fonts     *text.FontCache
	maxPixels int
}

// defaultOptions returns the default engine options.
func defaultOptions() engineOptions {
	return engineOptions{
		workers:   0,   // GOMAXPROCS
		allocator: nil, // heap allocator honoring maxPixels
		colors:    nil, // sRGB display space
		fonts:     nil, // process-wide text.Default()
	}
}

// WithWorkers sets the number of goroutines running row bands.
// Zero or a negative value uses GOMAXPROCS. One runs every band on the
// calling goroutine.
func WithWorkers(n int) Option {
	return func(o *engineOptions) {
		o.workers = n
	}
}

// WithAllocator sets the allocator used for output buffers.
// WithMaxPixels has no effect when a custom allocator is set.
func WithAllocator(a Allocator) Option {
	return func(o *engineOptions) {
		o.allocator = a
	}
}

// WithColorManager sets the color conversion used to promote byte inputs
// to float when the other input is float.
func WithColorManager(cm ColorManager) Option {
	return func(o *engineOptions) {
		o.colors = cm
	}
}

// WithFontCache sets the font cache used by text strips whose parameters
// carry no cache of their own.
func WithFontCache(c *text.FontCache) Option {
	return func(o *engineOptions) {
		o.fonts = c
	}
}

// WithMaxPixels caps the size of a single allocated buffer. Larger
// requests fail with ErrAllocation. Zero means no cap.
func WithMaxPixels(n int) Option {
	return func(o *engineOptions) {
		o.maxPixels = n
	}
}
