package color

import (
	"math"
	"testing"
)

// =============================================================================
// sRGB LUT Tests
// =============================================================================

func TestSRGBToLinearAccuracy(t *testing.T) {
	for i := range 256 {
		fast := SRGBToLinearFast(uint8(i))
		slow := SRGBToLinearSlow(uint8(i))
		if diff := math.Abs(float64(fast - slow)); diff > 0.0001 {
			t.Errorf("sRGB %d: fast=%f, slow=%f, error=%f", i, fast, slow, diff)
		}
	}
}

func TestLinearToSRGBAccuracy(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		linear := float32(i) / 1000.0
		fast := int(LinearToSRGBFast(linear))
		slow := int(LinearToSRGBSlow(linear))
		if diff := fast - slow; diff > 1 || diff < -1 {
			t.Errorf("Linear %f: fast=%d, slow=%d", linear, fast, slow)
		}
	}
}

func TestSRGBRoundTrip(t *testing.T) {
	for i := range 256 {
		back := LinearToSRGBFast(SRGBToLinearFast(uint8(i)))
		if diff := int(back) - i; diff > 1 || diff < -1 {
			t.Errorf("round trip %d -> %d", i, back)
		}
	}
}

func TestLinearToSRGBClamps(t *testing.T) {
	if got := LinearToSRGBFast(-0.5); got != 0 {
		t.Errorf("LinearToSRGBFast(-0.5) = %d, want 0", got)
	}
	if got := LinearToSRGBFast(2); got != 255 {
		t.Errorf("LinearToSRGBFast(2) = %d, want 255", got)
	}
}

// =============================================================================
// Quantization Tests
// =============================================================================

func TestUnitToByte(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"negative", -1, 0},
		{"zero", 0, 0},
		{"half", 0.5, 128},
		{"near one", 1 - 0.4/255, 255},
		{"one", 1, 255},
		{"over", 3, 255},
		{"quarter", 0.25, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitToByte(tt.in); got != tt.want {
				t.Errorf("UnitToByte(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestByteUnitRoundTrip(t *testing.T) {
	for i := range 256 {
		if got := UnitToByte(ByteToUnit(uint8(i))); int(got) != i {
			t.Errorf("UnitToByte(ByteToUnit(%d)) = %d", i, got)
		}
	}
}

// =============================================================================
// HSV Tests
// =============================================================================

func TestRGBToHSV(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		h, s, v float32
	}{
		{"red", 1, 0, 0, 0, 1, 1},
		{"green", 0, 1, 0, 1.0 / 3.0, 1, 1},
		{"blue", 0, 0, 1, 2.0 / 3.0, 1, 1},
		{"gray", 0.5, 0.5, 0.5, 0, 0, 0.5},
		{"black", 0, 0, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, v := RGBToHSV(tt.r, tt.g, tt.b)
			if !near(h, tt.h) || !near(s, tt.s) || !near(v, tt.v) {
				t.Errorf("RGBToHSV(%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.r, tt.g, tt.b, h, s, v, tt.h, tt.s, tt.v)
			}
		})
	}
}

func TestHSVRoundTrip(t *testing.T) {
	colors := [][3]float32{
		{0.2, 0.4, 0.6}, {0.9, 0.1, 0.3}, {0.5, 0.5, 0.1}, {1, 1, 1}, {0.05, 0.8, 0.8},
	}
	for _, c := range colors {
		h, s, v := RGBToHSV(c[0], c[1], c[2])
		r, g, b := HSVToRGB(h, s, v)
		if !near(r, c[0]) || !near(g, c[1]) || !near(b, c[2]) {
			t.Errorf("HSV round trip %v -> (%v, %v, %v)", c, r, g, b)
		}
	}
}

func TestHSVToRGBWrapsHue(t *testing.T) {
	tests := []struct {
		name    string
		h       float32
		r, g, b float32
	}{
		{"full turn", 1, 1, 0, 0},
		{"past a turn", 4.0 / 3.0, 0, 1, 0},
		{"negative", -1.0 / 3.0, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := HSVToRGB(tt.h, 1, 1)
			if !near(r, tt.r) || !near(g, tt.g) || !near(b, tt.b) {
				t.Errorf("HSVToRGB(%v, 1, 1) = (%v, %v, %v), want (%v, %v, %v)", tt.h, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

func TestSpaceString(t *testing.T) {
	if SpaceSRGB.String() != "sRGB" || SpaceLinear.String() != "Linear" {
		t.Errorf("unexpected names %q %q", SpaceSRGB, SpaceLinear)
	}
	if Space(9).String() != "Unknown" {
		t.Errorf("Space(9).String() = %q", Space(9))
	}
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}
