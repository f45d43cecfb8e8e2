package blend

import "github.com/gogpu/stripfx/internal/color"

func addFloat(dst, a, b []float32, t float32) {
	for c := range 3 {
		dst[c] = a[c] + b[c]*t
	}
}

func subFloat(dst, a, b []float32, t float32) {
	for c := range 3 {
		dst[c] = a[c] - b[c]*t
	}
}

func mulFloat(dst, a, b []float32, t float32) {
	mt := 1 - t
	for c := range 3 {
		dst[c] = mt*a[c] + t*a[c]*b[c]
	}
}

func separableFloat(f func(a, b float32) float32) FloatFunc {
	return func(dst, a, b []float32, t float32) {
		mt := 1 - t
		for c := range 3 {
			dst[c] = f(a[c], b[c])*t + a[c]*mt
		}
	}
}

func screenFloat(a, b float32) float32 {
	return 1 - (1-a)*(1-b)
}

func lightenFloat(a, b float32) float32 { return max(a, b) }

func darkenFloat(a, b float32) float32 { return min(a, b) }

func dodgeFloat(a, b float32) float32 {
	if b >= 1 {
		return 1
	}
	return min(a/(1-b), 1)
}

func burnFloat(a, b float32) float32 {
	if b <= 0 {
		return 0
	}
	return max(1-(1-a)/b, 0)
}

func linearBurnFloat(a, b float32) float32 {
	return max(a+b-1, 0)
}

func overlayFloat(a, b float32) float32 {
	if a > 0.5 {
		return 1 - (1-2*(a-0.5))*(1-b)
	}
	return 2 * a * b
}

func hardLightFloat(a, b float32) float32 {
	return overlayFloat(b, a)
}

func softLightFloat(a, b float32) float32 {
	if a < 0.5 {
		return (b + 0.5) * a
	}
	return 1 - (0.5-b)*(1-a)
}

func pinLightFloat(a, b float32) float32 {
	if b > 0.5 {
		return max(2*b-1, a)
	}
	return min(2*b, a)
}

func linearLightFloat(a, b float32) float32 {
	if b > 0.5 {
		return min(a+2*b-1, 1)
	}
	return max(a+2*b-1, 0)
}

func vividLightFloat(a, b float32) float32 {
	switch {
	case b >= 1:
		if a <= 0 {
			return 0.5
		}
		return 1
	case b <= 0:
		if a >= 1 {
			return 0.5
		}
		return 0
	case b > 0.5:
		return min(a/(2*(1-b)), 1)
	default:
		return max(1-(1-a)/(2*b), 0)
	}
}

func differenceFloat(a, b float32) float32 {
	if a > b {
		return a - b
	}
	return b - a
}

func exclusionFloat(a, b float32) float32 {
	return 0.5 - 2*(a-0.5)*(b-0.5)
}

func hsvFloat(f func(h1, s1, v1, h2, s2, v2 float32) (h, s, v float32)) FloatFunc {
	return func(dst, a, b []float32, t float32) {
		mt := 1 - t
		h1, s1, v1 := color.RGBToHSV(a[0], a[1], a[2])
		h2, s2, v2 := color.RGBToHSV(b[0], b[1], b[2])
		r, g, bl := color.HSVToRGB(f(h1, s1, v1, h2, s2, v2))
		dst[0] = r*t + a[0]*mt
		dst[1] = g*t + a[1]*mt
		dst[2] = bl*t + a[2]*mt
	}
}

// HSV component transfers shared by the byte and float variants.

const saturationEpsilon = 1.1920929e-07

func hsvHue(_, s1, v1, h2, _, _ float32) (h, s, v float32) {
	return h2, s1, v1
}

func hsvSaturation(h1, s1, v1, _, s2, _ float32) (h, s, v float32) {
	if s1 > saturationEpsilon {
		s1 = s2
	}
	return h1, s1, v1
}

func hsvValue(h1, s1, _, _, _, v2 float32) (h, s, v float32) {
	return h1, s1, v2
}

func hsvColor(_, _, v1, h2, s2, _ float32) (h, s, v float32) {
	return h2, s2, v1
}
