package text

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// obliqueSlant is the horizontal shift per pixel of height for synthesized
// italics.
const obliqueSlant = 0.2

// OpenType is the default Service. Fonts are parsed with
// golang.org/x/image/font/opentype for metrics and rasterization, and with
// go-text/typesetting for HarfBuzz advance measurement. The Go Mono font is
// preloaded as the built-in fallback.
//
// OpenType is safe for concurrent use.
type OpenType struct {
	mu     sync.Mutex
	next   FontID
	fonts  map[FontID]*loadedFont
	mono   FontID
	shaper shaping.HarfbuzzShaper
}

type loadedFont struct {
	name  string
	refs  int
	otf   *opentype.Font
	gt    *gtfont.Face // nil when go-text cannot parse the font
	faces map[float64]font.Face
}

var _ Service = (*OpenType)(nil)

// NewOpenType creates an OpenType service with the built-in font loaded.
func NewOpenType() *OpenType {
	s := &OpenType{fonts: make(map[FontID]*loadedFont), mono: NoFont}
	id, err := s.LoadMemory("<builtin mono>", gomono.TTF)
	if err != nil {
		Logger().Warn("text: built-in font unavailable", "err", err)
		return s
	}
	s.mono = id
	return s
}

// LoadFile implements Service.
func (s *OpenType) LoadFile(path string) (FontID, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return NoFont, fmt.Errorf("text: read font: %w", err)
	}
	return s.load(path, data)
}

// LoadMemory implements Service. data is retained; callers must not modify
// it afterwards.
func (s *OpenType) LoadMemory(name string, data []byte) (FontID, error) {
	return s.load(name, data)
}

func (s *OpenType) load(name string, data []byte) (FontID, error) {
	if len(data) == 0 {
		return NoFont, ErrEmptyFontData
	}
	otf, err := opentype.Parse(data)
	if err != nil {
		return NoFont, fmt.Errorf("text: failed to parse font: %w", err)
	}
	f := &loadedFont{name: name, refs: 1, otf: otf, faces: make(map[float64]font.Face)}
	if gt, err := gtfont.ParseTTF(bytes.NewReader(data)); err == nil {
		f.gt = gt
	} else {
		Logger().Debug("text: shaper cannot parse font, using sfnt advances", "name", name, "err", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.fonts[id] = f
	return id, nil
}

// AddRef implements Service.
func (s *OpenType) AddRef(id FontID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := s.fonts[id]; f != nil {
		f.refs++
	}
}

// Unload implements Service. The built-in font is never unloaded.
func (s *OpenType) Unload(id FontID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.fonts[id]
	if f == nil || id == s.mono {
		return false
	}
	f.refs--
	if f.refs > 0 {
		return false
	}
	for _, face := range f.faces {
		_ = face.Close()
	}
	delete(s.fonts, id)
	return true
}

// IsLoaded implements Service.
func (s *OpenType) IsLoaded(id FontID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fonts[id] != nil
}

// Mono implements Service.
func (s *OpenType) Mono() FontID {
	return s.mono
}

// Refs returns the reference count of id, or 0 if it is not loaded.
func (s *OpenType) Refs(id FontID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if f := s.fonts[id]; f != nil {
		return f.refs
	}
	return 0
}

// Metrics implements Service.
func (s *OpenType) Metrics(id FontID, size float64) Metrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.face(id, size)
	if face == nil {
		return Metrics{}
	}
	m := face.Metrics()
	return Metrics{
		LineHeight: (m.Ascent + m.Descent).Ceil(),
		Descender:  -m.Descent.Ceil(),
	}
}

// Advance implements Service. Control characters have no advance.
func (s *OpenType) Advance(id FontID, size float64, r rune) float64 {
	if r < ' ' {
		return 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.fonts[id]
	if f == nil {
		return 0
	}
	if f.gt != nil {
		out := s.shaper.Shape(shaping.Input{
			Text:      []rune{r},
			RunStart:  0,
			RunEnd:    1,
			Direction: di.DirectionLTR,
			Face:      f.gt,
			Size:      fixed.Int26_6(size * 64),
			Script:    language.LookupScript(r),
			Language:  language.NewLanguage("en"),
		})
		return fixedToFloat(out.Advance)
	}

	var buf sfnt.Buffer
	idx, err := f.otf.GlyphIndex(&buf, r)
	if err != nil {
		return 0
	}
	adv, err := f.otf.GlyphAdvance(&buf, idx, fixed.Int26_6(size*64), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// DrawGlyph implements Service.
func (s *OpenType) DrawGlyph(id FontID, size float64, style Style, dst draw.Image, dot fixed.Point26_6, r rune, col color.Color) {
	if r < ' ' {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	face := s.face(id, size)
	if face == nil {
		return
	}
	dr, mask, maskp, _, ok := face.Glyph(dot, r)
	if !ok || dr.Empty() {
		return
	}
	if style&StyleItalic != 0 {
		om := newObliqueMask(mask, maskp, dr, dot.Y.Round())
		mask, dr, maskp = om, om.bounds, om.bounds.Min
	}
	src := image.NewUniform(col)
	draw.DrawMask(dst, dr, src, image.Point{}, mask, maskp, draw.Over)
	if style&StyleBold != 0 {
		draw.DrawMask(dst, dr.Add(image.Pt(1, 0)), src, image.Point{}, mask, maskp, draw.Over)
	}
}

// face returns the cached face of id at size. Callers hold s.mu.
func (s *OpenType) face(id FontID, size float64) font.Face {
	f := s.fonts[id]
	if f == nil || size <= 0 {
		return nil
	}
	if face, ok := f.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(f.otf, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		Logger().Warn("text: cannot create face", "name", f.name, "size", size, "err", err)
		return nil
	}
	f.faces[size] = face
	return face
}

// obliqueMask shears a glyph mask to the right above the baseline.
type obliqueMask struct {
	src      image.Image
	off      image.Point
	glyph    image.Rectangle
	baseline int
	bounds   image.Rectangle
}

func newObliqueMask(src image.Image, maskp image.Point, dr image.Rectangle, baseline int) *obliqueMask {
	top := int(float64(baseline-dr.Min.Y) * obliqueSlant)
	bottom := int(float64(baseline-dr.Max.Y) * obliqueSlant)
	b := dr
	b.Max.X += max(top, 0)
	b.Min.X += min(bottom, 0)
	return &obliqueMask{
		src:      src,
		off:      maskp.Sub(dr.Min),
		glyph:    dr,
		baseline: baseline,
		bounds:   b,
	}
}

func (m *obliqueMask) ColorModel() color.Model { return color.AlphaModel }
func (m *obliqueMask) Bounds() image.Rectangle { return m.bounds }

func (m *obliqueMask) At(x, y int) color.Color {
	sx := x - int(float64(m.baseline-y)*obliqueSlant)
	if !(image.Point{X: sx, Y: y}.In(m.glyph)) {
		return color.Alpha{}
	}
	return m.src.At(sx+m.off.X, y+m.off.Y)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
