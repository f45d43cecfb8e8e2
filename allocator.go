package stripfx

import (
	"fmt"

	"github.com/gogpu/stripfx/internal/image"
)

// Allocator provides output buffers. Allocate returns a zeroed image of the
// requested size and format or an error; the engine wraps every error in
// ErrAllocation.
type Allocator interface {
	Allocate(width, height int, format Format) (*Image, error)
}

// HeapAllocator allocates fresh buffers from the Go heap.
type HeapAllocator struct {
	// MaxPixels caps Width*Height of one buffer. Zero means no cap.
	MaxPixels int
}

var _ Allocator = HeapAllocator{}

// Allocate implements Allocator.
func (a HeapAllocator) Allocate(width, height int, format Format) (*Image, error) {
	if a.MaxPixels > 0 && width > 0 && height > a.MaxPixels/width {
		return nil, fmt.Errorf("%dx%d exceeds %d pixels", width, height, a.MaxPixels)
	}
	return image.New(width, height, format)
}

// allocate calls the engine allocator and wraps failures in ErrAllocation.
func (e *Engine) allocate(width, height int, format Format) (*Image, error) {
	m, err := e.alloc.Allocate(width, height, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	Logger().Debug("stripfx: allocated buffer", "width", width, "height", height, "format", format)
	return m, nil
}
