package text

import (
	"image/color"
	"image/draw"

	"golang.org/x/image/math/fixed"
)

// FontID identifies a font loaded by a Service.
type FontID int

// NoFont is the FontID of a font that is not loaded.
const NoFont FontID = -1

// Style selects synthesized font styles.
type Style uint8

// Style flags.
const (
	StyleBold Style = 1 << iota
	StyleItalic
)

// Metrics are the vertical metrics of a font at one size, in whole pixels.
type Metrics struct {
	// LineHeight is the distance between consecutive baselines.
	LineHeight int

	// Descender is the offset of the lowest glyph point from the baseline.
	// It is zero or negative.
	Descender int
}

// Service loads and rasterizes fonts.
//
// Loads are unique: each successful LoadFile or LoadMemory returns a new id
// with one reference. AddRef adds a reference and Unload drops one,
// reporting whether it was the last. Ids are never reused.
//
// Implementations must be safe for concurrent use.
type Service interface {
	LoadFile(path string) (FontID, error)
	LoadMemory(name string, data []byte) (FontID, error)
	AddRef(id FontID)
	Unload(id FontID) bool
	IsLoaded(id FontID) bool

	// Mono returns the built-in monospace font. It is always loaded.
	Mono() FontID

	Metrics(id FontID, size float64) Metrics

	// Advance returns the horizontal advance of r in pixels.
	Advance(id FontID, size float64, r rune) float64

	// DrawGlyph composites r with color col over dst, with the pen at dot.
	// dst uses top-down coordinates.
	DrawGlyph(id FontID, size float64, style Style, dst draw.Image, dot fixed.Point26_6, r rune, col color.Color)
}
