package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBToHSV converts RGB in [0,1] to hue, saturation and value, each in [0,1].
// Hue is expressed as a fraction of a full turn.
func RGBToHSV(r, g, b float32) (h, s, v float32) {
	hd, sd, vd := colorful.Color{R: float64(r), G: float64(g), B: float64(b)}.Hsv()
	return float32(hd / 360), float32(sd), float32(vd)
}

// HSVToRGB converts hue, saturation and value in [0,1] back to RGB. Hue
// wraps around a full turn.
func HSVToRGB(h, s, v float32) (r, g, b float32) {
	turn := float64(h) - math.Floor(float64(h))
	c := colorful.Hsv(turn*360, float64(s), float64(v))
	return float32(c.R), float32(c.G), float32(c.B)
}
