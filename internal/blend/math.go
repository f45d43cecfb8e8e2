// Package blend implements the per-pixel arithmetic shared by strip effects:
// premultiplied load and store, opaque black fill and the color blend modes.
//
// Every mode has a byte variant working on straight-alpha 0..255 integers and
// a float variant working on premultiplied values. The byte variants are exact
// integer translations of the float formulas so both agree to one step of
// quantization on opaque input.
package blend

// divRound divides a by b, rounding to nearest for non-negative a.
//
// Formula: (2a + b) / (2b), truncated towards zero.
func divRound(a, b int) int {
	return (2*a + b) / (2 * b)
}

// clampByte clamps an int to byte range [0, 255].
func clampByte(x int) uint8 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}
