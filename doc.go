// Package stripfx composites the effect strips of a video sequence editor.
//
// # Overview
//
// Given an effect strip, up to two input frames and a blend factor, an
// [Engine] produces the composited output frame: cross dissolves, wipes,
// glow, blurs, transforms, text overlays, color blend modes, speed remapping
// and multi-camera selection.
//
// # Quick Start
//
//	import "github.com/gogpu/stripfx"
//
//	eng := stripfx.New()
//	defer eng.Close()
//
//	s := stripfx.NewStrip(stripfx.Cross, clipA, clipB)
//	s.Start, s.Length = 0, 25
//
//	rc := &stripfx.RenderContext{Width: 1920, Height: 1080, SceneWidth: 1920}
//	fac := eng.Factor(rc, s, 12)
//	out, err := eng.Execute(ctx, rc, s, 12, fac, frameA, frameB)
//
// # Architecture
//
// The package is organized into:
//   - Public API: Engine, Strip, EffectType, Handle and the parameter blocks
//   - text: font service, reference counted font cache and text layout
//   - Internal: image (buffers), blend (pixel arithmetic), filter
//     (convolution), jfa (distance transform), parallel (row bands)
//
// Every effect type maps to a [Handle] bundling its parameter lifecycle,
// input count, early-out policy, default factor and executor. Handles come
// from a table built once; [GetEffectHandle] is a pure lookup.
//
// # Pixel Formats
//
// An [Image] holds 8-bit straight-alpha bytes or 32-bit premultiplied
// floats. If either input of an effect is float, both are promoted and the
// output is float. Inputs are never modified.
//
// # Coordinate System
//
// Row 0 is the bottom scanline and y grows upwards. Wipe angles, shadow
// offsets and text anchors all use this convention.
//
// # Concurrency
//
// An Engine is safe for concurrent use. Sliced effects run in row bands on
// the engine's worker pool. The font cache is the only state shared between
// strips and guards itself.
package stripfx

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
