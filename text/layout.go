package text

import (
	"math"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/stripfx/internal/image"
)

// Align is a horizontal alignment or anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the alignment name.
func (a Align) String() string {
	switch a {
	case AlignLeft:
		return "Left"
	case AlignCenter:
		return "Center"
	case AlignRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AnchorY is the vertical anchor of a text block.
type AnchorY uint8

const (
	AnchorTop AnchorY = iota
	AnchorCenter
	AnchorBottom
)

// String returns the anchor name.
func (a AnchorY) String() string {
	switch a {
	case AnchorTop:
		return "Top"
	case AnchorCenter:
		return "Center"
	case AnchorBottom:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// LayoutOptions configure Layout.
type LayoutOptions struct {
	Text string

	// Loc is the anchor point as a fraction of the image size.
	Loc [2]float32

	// WrapWidth is the wrap width as a fraction of the image width.
	// Zero disables wrapping.
	WrapWidth float32

	// Align aligns lines within the block.
	Align Align

	AnchorX Align
	AnchorY AnchorY
}

// Char is one laid out character. The final character of every layout is
// a terminating Char with Rune 0, so that its position marks the end of
// the text.
type Char struct {
	Index   int
	Offset  int // byte offset in the normalized text
	Rune    rune
	Str     string
	Advance int

	// X, Y is the baseline position in image pixels.
	X, Y float32

	wrap bool
}

// Line is a run of characters on one baseline. Newline characters and the
// space at which a line was wrapped stay at the end of their line.
type Line struct {
	Chars []Char
	Width int
}

// Result is a finished layout.
type Result struct {
	Lines      []Line
	LineHeight int
	Descender  int

	// CharCount is the number of runes in the text, excluding the
	// terminating Char.
	CharCount int

	// BoundBox is the text block rectangle in image pixels.
	BoundBox image.Rect
}

// Layout lays out opts.Text with face in a width x height image. The text
// is normalized to NFC first.
func Layout(face Face, opts LayoutOptions, width, height int) *Result {
	str := norm.NFC.String(opts.Text)
	m := face.Metrics()
	res := &Result{
		LineHeight: m.LineHeight,
		Descender:  m.Descender,
		CharCount:  utf8.RuneCountInString(str),
	}
	chars := buildChars(face, str)
	res.Lines = wrapChars(chars, wrapWidth(opts.WrapWidth, width), m.LineHeight)
	alignLines(res, opts, width, height)
	res.BoundBox = boundBox(res, opts, width, height)
	return res
}

func buildChars(face Face, str string) []Char {
	chars := make([]Char, 0, len(str)+1)
	for off := 0; off < len(str); {
		r, size := utf8.DecodeRuneInString(str[off:])
		chars = append(chars, Char{
			Index:   len(chars),
			Offset:  off,
			Rune:    r,
			Str:     str[off : off+size],
			Advance: face.Advance(r),
		})
		off += size
	}
	return append(chars, Char{Index: len(chars), Offset: len(str)})
}

func wrapWidth(frac float32, width int) int {
	if frac == 0 {
		return math.MaxInt
	}
	return int(frac * float32(width))
}

// wrapChars breaks lines greedily at the last space before the pen passes
// limit, then assigns line-relative positions.
func wrapChars(chars []Char, limit, lineHeight int) []Line {
	var x float32
	lastSpace := -1
	for i := range chars {
		c := &chars[i]
		if c.Rune == ' ' {
			c.X = x
			lastSpace = i
		}
		if c.Rune == '\n' {
			x = 0
			lastSpace = -1
		}
		if c.Rune != 0 && x > float32(limit) && lastSpace >= 0 {
			sp := &chars[lastSpace]
			sp.wrap = true
			x -= sp.X + float32(sp.Advance)
			lastSpace = -1
		}
		x += float32(c.Advance)
	}

	lines := []Line{{}}
	x = 0
	var y float32
	for _, c := range chars {
		c.X, c.Y = x, y
		l := &lines[len(lines)-1]
		l.Chars = append(l.Chars, c)
		l.Width = int(x)
		x += float32(c.Advance)
		if c.wrap || c.Rune == '\n' {
			lines = append(lines, Line{})
			x = 0
			y -= float32(lineHeight)
		}
	}
	return lines
}

func (r *Result) maxLineWidth() int {
	w := 0
	for _, l := range r.Lines {
		w = max(w, l.Width)
	}
	return w
}

func (r *Result) textHeight() int {
	return len(r.Lines) * r.LineHeight
}

func anchorOffset(opts LayoutOptions, widthMax, textHeight int) (x, y float32) {
	switch opts.AnchorX {
	case AlignCenter:
		x = -float32(widthMax) / 2
	case AlignRight:
		x = -float32(widthMax)
	}
	switch opts.AnchorY {
	case AnchorCenter:
		y = float32(textHeight) / 2
	case AnchorBottom:
		y = float32(textHeight)
	}
	return x, y
}

func alignLines(res *Result, opts LayoutOptions, width, height int) {
	widthMax := res.maxLineWidth()
	cx := opts.Loc[0] * float32(width)
	cy := opts.Loc[1] * float32(height)
	baseline := float32(-res.LineHeight - res.Descender)
	ax, ay := anchorOffset(opts, widthMax, res.textHeight())

	for i := range res.Lines {
		line := &res.Lines[i]
		var lx float32
		switch opts.Align {
		case AlignRight:
			lx = float32(widthMax - line.Width)
		case AlignCenter:
			lx = float32(widthMax-line.Width) / 2
		}
		ox := float32(math.Round(float64(cx + lx + ax)))
		oy := float32(math.Round(float64(cy + baseline + ay)))
		for j := range line.Chars {
			line.Chars[j].X += ox
			line.Chars[j].Y += oy
		}
	}
}

func boundBox(res *Result, opts LayoutOptions, width, height int) image.Rect {
	textHeight := res.textHeight()
	widthMax := res.maxLineWidth()
	if widthMax == 0 {
		widthMax = textHeight * 2
	}
	cx := opts.Loc[0] * float32(width)
	cy := opts.Loc[1] * float32(height)
	ax, ay := anchorOffset(opts, widthMax, textHeight)

	var b image.Rect
	b.XMin = int(ax + cx)
	b.XMax = int(ax + cx + float32(widthMax))
	b.YMin = int(ay + cy - float32(textHeight))
	b.YMax = b.YMin + textHeight
	return b
}
