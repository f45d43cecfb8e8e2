package text

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/stripfx/internal/image"
)

func TestOpenTypeMono(t *testing.T) {
	svc := NewOpenType()
	mono := svc.Mono()
	require.NotEqual(t, NoFont, mono)
	assert.True(t, svc.IsLoaded(mono))
	assert.False(t, svc.Unload(mono), "built-in font is never unloaded")

	m := svc.Metrics(mono, 40)
	assert.Greater(t, m.LineHeight, 30)
	assert.Less(t, m.Descender, 0)

	// Go Mono is monospaced.
	a := svc.Advance(mono, 40, 'i')
	b := svc.Advance(mono, 40, 'W')
	assert.Greater(t, a, 0.0)
	assert.InDelta(t, a, b, 1e-9)
	assert.Zero(t, svc.Advance(mono, 40, '\n'))
}

func TestOpenTypeRefcount(t *testing.T) {
	svc := NewOpenType()
	id, err := svc.LoadMemory("goregular", goregular.TTF)
	require.NoError(t, err)
	svc.AddRef(id)
	assert.Equal(t, 2, svc.Refs(id))

	assert.False(t, svc.Unload(id))
	assert.True(t, svc.Unload(id))
	assert.False(t, svc.IsLoaded(id))
	assert.Equal(t, 0, svc.Refs(id))
}

func TestOpenTypeLoadErrors(t *testing.T) {
	svc := NewOpenType()
	_, err := svc.LoadMemory("junk", []byte("not a font"))
	assert.Error(t, err)

	_, err = svc.LoadMemory("empty", nil)
	assert.ErrorIs(t, err, ErrEmptyFontData)

	_, err = svc.LoadFile(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)
}

func TestFaceDrawPaintsAboveBaseline(t *testing.T) {
	c := NewFontCache()
	dst, err := image.New(64, 64, image.FormatByte)
	require.NoError(t, err)

	c.Do(func(s *Session) {
		f := s.Face(s.Resolve(NoFont), 32, 0)
		f.Draw(dst, 8, 16, "H", [4]float32{1, 1, 1, 1})
	})

	var above, below int
	for y := range dst.Height {
		for x := range dst.Width {
			if dst.ByteAt(x, y)[3] == 0 {
				continue
			}
			if y >= 16 {
				above++
			} else {
				below++
			}
		}
	}
	assert.Greater(t, above, 20, "glyph drawn above the baseline")
	assert.Zero(t, below, "'H' has no descender")
}

func TestFaceDrawStyles(t *testing.T) {
	c := NewFontCache()
	coverage := func(style Style) int {
		dst, _ := image.New(64, 64, image.FormatByte)
		c.Do(func(s *Session) {
			s.Face(s.Resolve(NoFont), 32, style).Draw(dst, 8, 16, "l", [4]float32{1, 1, 1, 1})
		})
		n := 0
		for i := 3; i < len(dst.Byte); i += 4 {
			if dst.Byte[i] > 0 {
				n++
			}
		}
		return n
	}
	regular := coverage(0)
	assert.Greater(t, coverage(StyleBold), regular)
	assert.Greater(t, coverage(StyleItalic), 0)
}
