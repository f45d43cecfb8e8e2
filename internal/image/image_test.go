package image

import (
	"bytes"
	"errors"
	"image/color"
	"math"
	"testing"
)

// =============================================================================
// Allocation
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		format  Format
		wantErr error
	}{
		{"byte", 4, 3, FormatByte, nil},
		{"float", 4, 3, FormatFloat, nil},
		{"zero width", 0, 3, FormatByte, ErrInvalidDimensions},
		{"negative height", 4, -1, FormatFloat, ErrInvalidDimensions},
		{"bad format", 4, 3, Format(9), ErrInvalidFormat},
		{"overflow", math.MaxInt32, math.MaxInt32, FormatByte, ErrTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.w, tt.h, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if m.Format() != tt.format {
				t.Errorf("Format() = %v, want %v", m.Format(), tt.format)
			}
			want := tt.w * tt.h * Channels
			if got := len(m.Byte) + len(m.Float); got != want {
				t.Errorf("component count = %d, want %d", got, want)
			}
		})
	}
}

func TestFormatString(t *testing.T) {
	if FormatByte.String() != "Byte" || FormatFloat.String() != "Float" || Format(7).String() != "Unknown" {
		t.Error("unexpected Format.String() values")
	}
}

func TestCloneIsDeep(t *testing.T) {
	m, _ := New(2, 2, FormatByte)
	m.Meta = map[string]string{"k": "v"}
	m.Byte[0] = 10

	c := m.Clone()
	c.Byte[0] = 20
	c.Meta["k"] = "w"

	if m.Byte[0] != 10 {
		t.Errorf("original pixel = %d, want 10", m.Byte[0])
	}
	if m.Meta["k"] != "v" {
		t.Errorf("original meta = %q, want %q", m.Meta["k"], "v")
	}
}

func TestRows(t *testing.T) {
	m, _ := New(3, 4, FormatFloat)
	rows := m.FloatRows(1, 3)
	if len(rows) != 2*3*Channels {
		t.Fatalf("len(FloatRows) = %d, want %d", len(rows), 2*3*Channels)
	}
	rows[0] = 1
	if m.FloatAt(0, 1)[0] != 1 {
		t.Error("FloatRows does not alias row 1")
	}
}

func TestFill(t *testing.T) {
	b, _ := New(2, 2, FormatByte)
	b.Fill(1, 0, 0, 0.5)
	if got := b.ByteAt(1, 1); got[0] != 255 || got[3] != 128 {
		t.Errorf("byte fill = %v, want straight red at half alpha", got)
	}

	f, _ := New(2, 2, FormatFloat)
	f.Fill(1, 0, 0, 0.5)
	if got := f.FloatAt(1, 1); got[0] != 0.5 || got[3] != 0.5 {
		t.Errorf("float fill = %v, want premultiplied red", got)
	}
}

// =============================================================================
// Conversion
// =============================================================================

func TestToFloatPremultiplies(t *testing.T) {
	m, _ := New(1, 1, FormatByte)
	copy(m.Byte, []uint8{255, 0, 0, 51})

	f := ToFloat(m, false)
	px := f.FloatAt(0, 0)
	if math.Abs(float64(px[0]-0.2)) > 1e-6 || math.Abs(float64(px[3]-0.2)) > 1e-6 {
		t.Errorf("ToFloat() = %v, want r=0.2 a=0.2", px)
	}
	if m.Byte[0] != 255 {
		t.Error("ToFloat mutated its input")
	}
}

func TestByteFloatRoundTrip(t *testing.T) {
	m, _ := New(16, 16, FormatByte)
	for i := range m.Byte {
		m.Byte[i] = uint8(i * 7)
	}
	for i := 3; i < len(m.Byte); i += 4 {
		m.Byte[i] = 255
	}
	for _, linear := range []bool{false, true} {
		back := ToByte(ToFloat(m, linear), linear)
		for i := range m.Byte {
			if d := int(back.Byte[i]) - int(m.Byte[i]); d < -1 || d > 1 {
				t.Fatalf("linear=%v: component %d = %d, want %d", linear, i, back.Byte[i], m.Byte[i])
			}
		}
	}
}

// =============================================================================
// Sampling
// =============================================================================

func gradient(t *testing.T) *Image {
	t.Helper()
	m, err := New(4, 4, FormatByte)
	if err != nil {
		t.Fatal(err)
	}
	for y := range 4 {
		for x := range 4 {
			p := m.ByteAt(x, y)
			p[0], p[1], p[2], p[3] = uint8(x*60), uint8(y*60), 0, 255
		}
	}
	return m
}

func TestSampleNearestIdentity(t *testing.T) {
	m := gradient(t)
	dst := make([]uint8, 4)
	for y := range 4 {
		for x := range 4 {
			SampleByte(m, float32(x), float32(y), Nearest, dst)
			if !bytes.Equal(dst, m.ByteAt(x, y)) {
				t.Errorf("Nearest(%d,%d) = %v, want %v", x, y, dst, m.ByteAt(x, y))
			}
		}
	}
}

func TestSampleBilinear(t *testing.T) {
	m := gradient(t)
	dst := make([]uint8, 4)

	SampleByte(m, 1.5, 2, Bilinear, dst)
	if dst[0] != 90 || dst[1] != 120 || dst[3] != 255 {
		t.Errorf("Bilinear(1.5,2) = %v, want r=90 g=120 a=255", dst)
	}

	SampleByte(m, 3.5, 0, Bilinear, dst)
	if dst[3] != 128 {
		t.Errorf("Bilinear at border alpha = %d, want 128", dst[3])
	}
}

func TestSampleOutsideIsTransparent(t *testing.T) {
	m := gradient(t)
	dst := make([]uint8, 4)
	for _, mode := range []Interpolation{Nearest, Bilinear, CubicBSpline} {
		SampleByte(m, -5, 1, mode, dst)
		if dst[3] != 0 {
			t.Errorf("%v outside alpha = %d, want 0", mode, dst[3])
		}
	}
}

func TestBSplineWeightsSumToOne(t *testing.T) {
	for _, f := range []float32{0, 0.25, 0.5, 0.9} {
		w := bsplineWeights(f)
		sum := w[0] + w[1] + w[2] + w[3]
		if math.Abs(float64(sum-1)) > 1e-6 {
			t.Errorf("bsplineWeights(%v) sum = %v, want 1", f, sum)
		}
	}
}

func TestSampleCubicFlat(t *testing.T) {
	m, _ := New(8, 8, FormatFloat)
	m.Fill(0.5, 0.5, 0.5, 1)
	dst := make([]float32, 4)
	SampleFloat(m, 3.3, 4.7, CubicBSpline, dst)
	if math.Abs(float64(dst[3]-1)) > 1e-5 {
		t.Errorf("cubic alpha on flat field = %v, want 1", dst[3])
	}
}

// =============================================================================
// Pool
// =============================================================================

func TestPoolReuse(t *testing.T) {
	p := NewPool(1)
	a, err := p.Get(2, 2, FormatFloat)
	if err != nil {
		t.Fatal(err)
	}
	a.Float[0] = 3
	p.Put(a)
	p.Put(&Image{Width: 2, Height: 2, Float: make([]float32, 16)})
	if p.Len() != 1 {
		t.Errorf("Len() = %d, want 1", p.Len())
	}
	b, _ := p.Get(2, 2, FormatFloat)
	if b != a {
		t.Error("Get() did not reuse pooled image")
	}
	if b.Float[0] != 0 {
		t.Error("reused image not cleared")
	}
}

// =============================================================================
// Canvas and I/O
// =============================================================================

func TestCanvasFlipsRows(t *testing.T) {
	m, _ := New(2, 3, FormatByte)
	c := NewCanvas(m)
	c.Set(1, 0, color.NRGBA{R: 9, A: 255})
	if got := m.ByteAt(1, 2); got[0] != 9 {
		t.Errorf("canvas top row maps to %v, want last image row", got)
	}
	if c.FlipY(0) != 2 {
		t.Errorf("FlipY(0) = %d, want 2", c.FlipY(0))
	}
}

func TestPNGRoundTrip(t *testing.T) {
	m := gradient(t)
	var buf bytes.Buffer
	if err := EncodePNG(&buf, m); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back.Byte, m.Byte) {
		t.Error("PNG round trip changed pixels")
	}
}
