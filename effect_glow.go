package stripfx

import (
	"github.com/gogpu/stripfx/internal/filter"
	"github.com/gogpu/stripfx/internal/image"
)

func initGlow(s *Strip) {
	s.Params = defaultGlowParams()
}

// executeGlow isolates the highlights of input 1, blurs them and adds them
// back. Byte input is processed in float and converted back.
func executeGlow(e *Engine, j *Job) (*Image, error) {
	p := j.Strip.Params.(*GlowParams)
	rc := j.Render
	renderSize := 100 * float32(rc.Width) / float32(rc.sceneWidth())

	src := j.In1
	if !src.IsFloat() {
		src = image.ToFloat(src, false)
	}
	glow, err := e.allocate(rc.Width, rc.Height, FormatFloat)
	if err != nil {
		return nil, err
	}

	filter.IsolateHighlights(e.pool, src.Float, glow.Float, rc.Width, rc.Height,
		p.Threshold*3, p.Boost*j.Fac, p.Clamp)
	var base []float32
	if !p.OnlyBoost {
		base = src.Float
	}
	filter.GlowBlur(e.pool, base, glow.Float, rc.Width, rc.Height,
		p.Distance*(renderSize/100), p.Quality)
	Logger().Debug("stripfx: glow", "radius", p.Distance*(renderSize/100), "quality", p.Quality)

	if j.In1.IsFloat() {
		return glow, nil
	}
	return image.ToByte(glow, false), nil
}
