package image

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// Load decodes an image file using every format registered with the
// standard image package.
func Load(path string) (*Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r into a byte Image.
func Decode(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// FromStdImage copies a standard library image into a byte Image, flipping
// rows so that the top row of img becomes the last row.
func FromStdImage(img image.Image) *Image {
	b := img.Bounds()
	m := &Image{Width: b.Dx(), Height: b.Dy()}
	m.Byte = make([]uint8, m.Width*m.Height*Channels)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range m.Height {
			src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+m.Width*Channels]
			copy(m.ByteRows(m.Height-1-y, m.Height-y), src)
		}
		return m
	}

	for y := range m.Height {
		row := m.ByteRows(m.Height-1-y, m.Height-y)
		for x := range m.Width {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y))
			n, _ := c.(color.NRGBA)
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = n.R, n.G, n.B, n.A
		}
	}
	return m
}

// ToStdImage converts m to a straight-alpha standard library image. Float
// images are quantized without color-space conversion.
func ToStdImage(m *Image) *image.NRGBA {
	if m.IsFloat() {
		m = ToByte(m, false)
	}
	out := image.NewNRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := range m.Height {
		copy(out.Pix[y*out.Stride:], m.ByteRows(m.Height-1-y, m.Height-y))
	}
	return out
}

// EncodePNG writes m to w as PNG.
func EncodePNG(w io.Writer, m *Image) error {
	if err := png.Encode(w, ToStdImage(m)); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes m to a PNG file.
func SavePNG(path string, m *Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := EncodePNG(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
