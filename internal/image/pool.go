package image

import "sync"

// Pool is a thread-safe pool for reusing temporary images.
//
// Pool groups buffers by their dimensions and format. Effects that need
// scratch buffers (blur passes, glyph masks) take one with Get and hand it
// back with Put once the result has been copied out.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Image
	maxSize int // max buffers per bucket
}

type poolKey struct {
	width  int
	height int
	format Format
}

// NewPool creates a pool keeping at most maxPerBucket buffers of each
// size and format. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Image),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed image of the given size and format, reusing a pooled
// buffer when one is available.
func (p *Pool) Get(width, height int, format Format) (*Image, error) {
	key := poolKey{width: width, height: height, format: format}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		m := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		m.Clear()
		m.Meta = nil
		return m, nil
	}
	p.mu.Unlock()

	return New(width, height, format)
}

// Put returns an image to the pool. Nil images and images beyond the bucket
// capacity are dropped.
func (p *Pool) Put(m *Image) {
	if m == nil {
		return
	}
	key := poolKey{width: m.Width, height: m.Height, format: m.Format()}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return
	}
	p.buckets[key] = append(bucket, m)
}

// Len returns the number of pooled buffers.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

var defaultPool = NewPool(8)

// GetTemp takes an image from the package-level pool.
func GetTemp(width, height int, format Format) (*Image, error) {
	return defaultPool.Get(width, height, format)
}

// PutTemp returns an image to the package-level pool.
func PutTemp(m *Image) {
	defaultPool.Put(m)
}
