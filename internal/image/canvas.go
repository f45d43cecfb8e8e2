package image

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas exposes a byte Image as a draw.Image so standard rasterizers can
// paint into it. Canvas coordinates follow the image package convention of
// y growing downwards; row 0 of the canvas is the top row of the Image.
type Canvas struct {
	m *Image
}

var _ draw.Image = (*Canvas)(nil)

// NewCanvas wraps a byte image. It panics on float images.
func NewCanvas(m *Image) *Canvas {
	if m.IsFloat() {
		panic("image: canvas over float image")
	}
	return &Canvas{m: m}
}

// ColorModel implements image.Image.
func (c *Canvas) ColorModel() color.Model {
	return color.NRGBAModel
}

// Bounds implements image.Image.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.m.Width, c.m.Height)
}

// At implements image.Image.
func (c *Canvas) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		return color.NRGBA{}
	}
	p := c.m.ByteAt(x, c.m.Height-1-y)
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Set implements draw.Image.
func (c *Canvas) Set(x, y int, col color.Color) {
	if !(image.Point{X: x, Y: y}.In(c.Bounds())) {
		return
	}
	n, _ := color.NRGBAModel.Convert(col).(color.NRGBA)
	p := c.m.ByteAt(x, c.m.Height-1-y)
	p[0], p[1], p[2], p[3] = n.R, n.G, n.B, n.A
}

// FlipY converts a bottom-up row index to canvas coordinates and back.
func (c *Canvas) FlipY(y int) int {
	return c.m.Height - 1 - y
}
