// Package text provides fonts and text layout for the text strip effect.
//
// The package is split along three concerns:
//
//   - Service: loads fonts, measures glyph advances and rasterizes glyphs.
//     The default implementation parses TrueType/OpenType data with
//     golang.org/x/image/font/opentype and measures advances with the
//     HarfBuzz shaper from github.com/go-text/typesetting.
//   - FontCache: a process-wide, reference-counted cache that deduplicates
//     fonts by file path or by in-memory name on top of the Service. All
//     font access happens inside FontCache.Do, which holds the cache lock.
//   - Layout: turns a string into positioned characters with word wrap,
//     per-line alignment, block anchoring and a bounding box.
//
// # Example usage
//
//	cache := text.Default()
//	cache.Do(func(s *text.Session) {
//	    id := s.Resolve(fontID)
//	    face := s.Face(id, 60, 0)
//	    res := text.Layout(face, text.LayoutOptions{Text: "Hello"}, 1920, 1080)
//	    face.DrawResult(out, res, [4]float32{1, 1, 1, 1})
//	})
//
// Coordinates are bottom-up: y = 0 is the bottom row of the target image
// and line positions decrease in y as lines advance.
package text
