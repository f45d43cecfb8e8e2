package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedFace gives every printable rune the same advance.
type fixedFace struct {
	advance int
	metrics Metrics
}

func (f fixedFace) Metrics() Metrics { return f.metrics }

func (f fixedFace) Advance(r rune) int {
	if r < ' ' {
		return 0
	}
	return f.advance
}

func testFace() fixedFace {
	return fixedFace{advance: 10, metrics: Metrics{LineHeight: 20, Descender: -4}}
}

func lineText(l Line) string {
	var s string
	for _, c := range l.Chars {
		s += c.Str
	}
	return s
}

func TestLayoutNoWrapSingleLine(t *testing.T) {
	res := Layout(testFace(), LayoutOptions{Text: "hello world again", WrapWidth: 0}, 100, 100)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 17*10, res.Lines[0].Width, "width is the sum of advances")
	assert.Equal(t, 17, res.CharCount)
	require.Len(t, res.Lines[0].Chars, 18)
	last := res.Lines[0].Chars[17]
	assert.Equal(t, rune(0), last.Rune, "layout ends with a terminating char")
}

func TestLayoutWrapsAtLastSpace(t *testing.T) {
	// limit 0.8 * 100 = 80 pixels
	res := Layout(testFace(), LayoutOptions{Text: "aaa bbb ccc", WrapWidth: 0.8}, 100, 100)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "aaa bbb ", lineText(res.Lines[0]))
	assert.Equal(t, "ccc", lineText(res.Lines[1]))
	assert.Equal(t, 70, res.Lines[0].Width, "wrapped space is excluded from the width")
	assert.Equal(t, 30, res.Lines[1].Width)
}

func TestLayoutNewline(t *testing.T) {
	res := Layout(testFace(), LayoutOptions{Text: "ab\ncde"}, 100, 100)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, 20, res.Lines[0].Width)
	assert.Equal(t, 30, res.Lines[1].Width)

	y0 := res.Lines[0].Chars[0].Y
	y1 := res.Lines[1].Chars[0].Y
	assert.Equal(t, float32(20), y0-y1, "lines advance downwards by the line height")
}

func TestLayoutAlignment(t *testing.T) {
	tests := []struct {
		name  string
		align Align
		want  float32 // x of the first char of the short line, relative to the long one
	}{
		{"left", AlignLeft, 0},
		{"center", AlignCenter, 10},
		{"right", AlignRight, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Layout(testFace(), LayoutOptions{Text: "abcd\nab", Align: tt.align}, 200, 100)
			require.Len(t, res.Lines, 2)
			assert.Equal(t, tt.want, res.Lines[1].Chars[0].X-res.Lines[0].Chars[0].X)
		})
	}
}

func TestLayoutAnchorsAndBoundBox(t *testing.T) {
	opts := LayoutOptions{
		Text:    "abcd",
		Loc:     [2]float32{0.5, 0.5},
		AnchorX: AlignCenter,
		AnchorY: AnchorCenter,
	}
	res := Layout(testFace(), opts, 200, 100)
	b := res.BoundBox
	assert.Equal(t, 80, b.XMin)
	assert.Equal(t, 120, b.XMax)
	assert.Equal(t, 40, b.YMin)
	assert.Equal(t, 60, b.YMax)

	first := res.Lines[0].Chars[0]
	assert.Equal(t, float32(80), first.X)
	// baseline = center + height/2 - line height + |descender|
	assert.Equal(t, float32(50+10-20+4), first.Y)
}

func TestLayoutTopLeftAnchor(t *testing.T) {
	opts := LayoutOptions{Text: "ab", Loc: [2]float32{0, 1}, AnchorX: AlignLeft, AnchorY: AnchorTop}
	res := Layout(testFace(), opts, 100, 100)
	assert.Equal(t, 0, res.BoundBox.XMin)
	assert.Equal(t, 100, res.BoundBox.YMax)
	assert.Equal(t, 80, res.BoundBox.YMin)
}

func TestLayoutEmptyText(t *testing.T) {
	res := Layout(testFace(), LayoutOptions{Text: "", Loc: [2]float32{0.5, 0.5}}, 100, 100)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, 0, res.CharCount)
	assert.Equal(t, 40, res.BoundBox.Width()-1, "empty text gets a box twice the text height wide")
}

func TestLayoutNormalizesNFC(t *testing.T) {
	res := Layout(testFace(), LayoutOptions{Text: "e\u0301"}, 100, 100)
	assert.Equal(t, 1, res.CharCount)
	assert.Equal(t, "\u00e9", res.Lines[0].Chars[0].Str)
}

func TestAlignStrings(t *testing.T) {
	assert.Equal(t, "Center", AlignCenter.String())
	assert.Equal(t, "Bottom", AnchorBottom.String())
	assert.Equal(t, "Unknown", Align(9).String())
}
