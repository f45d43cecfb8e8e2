package stripfx

import "github.com/gogpu/stripfx/internal/blend"

var opaqueBlack = blend.Float4{0, 0, 0, 1}

// pixels reads and writes the pixels of an image of either format in
// premultiplied form. Indices are component offsets of a pixel.
type pixels struct {
	m *Image
}

func (p pixels) load(i int) blend.Float4 {
	if p.m.Float != nil {
		return blend.LoadPremulFloat(p.m.Float[i : i+4])
	}
	return blend.LoadPremulByte(p.m.Byte[i : i+4])
}

func (p pixels) store(i int, c blend.Float4) {
	if p.m.Float != nil {
		blend.StorePremulFloat(c, p.m.Float[i:i+4])
		return
	}
	blend.StorePremulByte(c, p.m.Byte[i:i+4])
}

func (p pixels) storeOpaqueBlack(i int) {
	if p.m.Float != nil {
		blend.StoreOpaqueBlackFloat(p.m.Float[i : i+4])
		return
	}
	blend.StoreOpaqueBlackByte(p.m.Byte[i : i+4])
}

// copyPixel copies pixel i of src unchanged.
func (p pixels) copyPixel(src *Image, i int) {
	if p.m.Float != nil {
		copy(p.m.Float[i:i+4], src.Float[i:i+4])
		return
	}
	copy(p.m.Byte[i:i+4], src.Byte[i:i+4])
}

// copyRows copies components [lo, hi) of src unchanged.
func (p pixels) copyRows(src *Image, lo, hi int) {
	if p.m.Float != nil {
		copy(p.m.Float[lo:hi], src.Float[lo:hi])
		return
	}
	copy(p.m.Byte[lo:hi], src.Byte[lo:hi])
}

// transparent reports whether pixel i has zero alpha.
func (p pixels) transparent(i int) bool {
	if p.m.Float != nil {
		return p.m.Float[i+3] <= 0
	}
	return p.m.Byte[i+3] == 0
}

// opaque reports whether pixel i has full alpha.
func (p pixels) opaque(i int) bool {
	if p.m.Float != nil {
		return p.m.Float[i+3] >= 1
	}
	return p.m.Byte[i+3] == 255
}

// rowSpan returns the component range of rows [y0, y1).
func rowSpan(m *Image, y0, y1 int) (lo, hi int) {
	s := m.Stride()
	return y0 * s, y1 * s
}
