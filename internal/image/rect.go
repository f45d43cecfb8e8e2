package image

// Rect is a pixel rectangle with inclusive bounds, in bottom-up image
// coordinates.
type Rect struct {
	XMin, YMin int
	XMax, YMax int
}

// Width returns the number of columns covered by r.
func (r Rect) Width() int {
	return r.XMax - r.XMin + 1
}

// Height returns the number of rows covered by r.
func (r Rect) Height() int {
	return r.YMax - r.YMin + 1
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.XMax < r.XMin || r.YMax < r.YMin
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{r.XMin + dx, r.YMin + dy, r.XMax + dx, r.YMax + dy}
}

// Pad returns r grown by px columns and py rows on each side.
func (r Rect) Pad(px, py int) Rect {
	return Rect{r.XMin - px, r.YMin - py, r.XMax + px, r.YMax + py}
}

// Clamp returns r with every bound clamped into a width x height image.
func (r Rect) Clamp(width, height int) Rect {
	return Rect{
		XMin: clampInt(r.XMin, 0, width-1),
		YMin: clampInt(r.YMin, 0, height-1),
		XMax: clampInt(r.XMax, 0, width-1),
		YMax: clampInt(r.YMax, 0, height-1),
	}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.XMin, o.XMin), min(r.YMin, o.YMin), max(r.XMax, o.XMax), max(r.YMax, o.YMax)}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
