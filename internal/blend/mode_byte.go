package blend

import "github.com/gogpu/stripfx/internal/color"

func addByte(dst, a, b []uint8, t int) {
	for c := range 3 {
		dst[c] = clampByte(divRound(int(a[c])*255+int(b[c])*t, 255))
	}
}

func subByte(dst, a, b []uint8, t int) {
	for c := range 3 {
		v := int(a[c])*255 - int(b[c])*t
		if v <= 0 {
			dst[c] = 0
			continue
		}
		dst[c] = clampByte(divRound(v, 255))
	}
}

func mulByte(dst, a, b []uint8, t int) {
	mt := 255 - t
	for c := range 3 {
		ac := int(a[c])
		dst[c] = clampByte(divRound(mt*ac*255+t*ac*int(b[c]), 255*255))
	}
}

// separableByte lifts a per-channel function into a mix of the blended
// result and src1, weighted by t.
func separableByte(f func(a, b int) int) ByteFunc {
	return func(dst, a, b []uint8, t int) {
		mt := 255 - t
		for c := range 3 {
			ac := int(a[c])
			v := clampByte(f(ac, int(b[c])))
			dst[c] = clampByte(divRound(int(v)*t+ac*mt, 255))
		}
	}
}

func screenByte(a, b int) int {
	return 255 - (255-a)*(255-b)/255
}

func lightenByte(a, b int) int { return max(a, b) }

func darkenByte(a, b int) int { return min(a, b) }

func dodgeByte(a, b int) int {
	if b == 255 {
		return 255
	}
	return min(a*255/(255-b), 255)
}

func burnByte(a, b int) int {
	if b == 0 {
		return 0
	}
	return max(255-(255-a)*255/b, 0)
}

func linearBurnByte(a, b int) int {
	return max(a+b-255, 0)
}

func overlayByte(a, b int) int {
	if a >= 128 {
		return 255 - (510-2*a)*(255-b)/255
	}
	return 2 * a * b / 255
}

func hardLightByte(a, b int) int {
	return overlayByte(b, a)
}

func softLightByte(a, b int) int {
	if a < 128 {
		return (2*b + 255) * a / 510
	}
	return 255 - (255-2*b)*(255-a)/510
}

func pinLightByte(a, b int) int {
	if b >= 128 {
		return max(2*b-255, a)
	}
	return min(2*b, a)
}

func linearLightByte(a, b int) int {
	if b >= 128 {
		return min(a+2*b-255, 255)
	}
	return max(a+2*b-255, 0)
}

func vividLightByte(a, b int) int {
	switch {
	case b == 255:
		if a == 0 {
			return 127
		}
		return 255
	case b == 0:
		if a == 255 {
			return 127
		}
		return 0
	case b > 127:
		return min(a*255/(2*(255-b)), 255)
	default:
		return max(255-(255-a)*255/(2*b), 0)
	}
}

func differenceByte(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

func exclusionByte(a, b int) int {
	return (65025 - (2*a-255)*(2*b-255)) / 510
}

// hsvByte lifts an HSV component transfer into a byte blend function.
func hsvByte(f func(h1, s1, v1, h2, s2, v2 float32) (h, s, v float32)) ByteFunc {
	return func(dst, a, b []uint8, t int) {
		mt := 255 - t
		h1, s1, v1 := color.RGBToHSV(color.ByteToUnit(a[0]), color.ByteToUnit(a[1]), color.ByteToUnit(a[2]))
		h2, s2, v2 := color.RGBToHSV(color.ByteToUnit(b[0]), color.ByteToUnit(b[1]), color.ByteToUnit(b[2]))
		r, g, bl := color.HSVToRGB(f(h1, s1, v1, h2, s2, v2))
		res := [3]float32{r, g, bl}
		for c := range 3 {
			v := int(res[c] * 255)
			dst[c] = clampByte(divRound(v*t+int(a[c])*mt, 255))
		}
	}
}
