package stripfx

import (
	"runtime"
	"testing"

	"github.com/gogpu/stripfx/text"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.workers != 0 {
		t.Errorf("workers = %d, want 0", o.workers)
	}
	if o.allocator != nil || o.colors != nil || o.fonts != nil {
		t.Error("default options should leave allocator, colors and fonts unset")
	}
}

func TestOptions(t *testing.T) {
	fonts := text.NewFontCache()
	alloc := HeapAllocator{MaxPixels: 10}
	cm := DisplayColorManager{Linearize: true}

	o := defaultOptions()
	for _, opt := range []Option{
		WithWorkers(3),
		WithAllocator(alloc),
		WithColorManager(cm),
		WithFontCache(fonts),
		WithMaxPixels(99),
	} {
		opt(&o)
	}

	if o.workers != 3 {
		t.Errorf("workers = %d, want 3", o.workers)
	}
	if o.allocator != alloc {
		t.Errorf("allocator = %v, want %v", o.allocator, alloc)
	}
	if o.colors != cm {
		t.Errorf("colors = %v, want %v", o.colors, cm)
	}
	if o.fonts != fonts {
		t.Error("fonts not set")
	}
	if o.maxPixels != 99 {
		t.Errorf("maxPixels = %d, want 99", o.maxPixels)
	}
}

func TestNewWorkers(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"inline", 1, 1},
		{"explicit", 2, 2},
		{"default", 0, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(WithWorkers(tt.workers))
			defer e.Close()
			if got := e.Workers(); got != tt.want {
				t.Errorf("Workers() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewDefaultFonts(t *testing.T) {
	e := New(WithWorkers(1))
	if e.Fonts() != text.Default() {
		t.Error("Fonts() should default to text.Default()")
	}
	fonts := text.NewFontCache()
	if New(WithWorkers(1), WithFontCache(fonts)).Fonts() != fonts {
		t.Error("WithFontCache not honored")
	}
}
