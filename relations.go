package stripfx

// IsEffectOf reports whether effect reads input directly.
func IsEffectOf(effect, input *Strip) bool {
	if effect == nil || input == nil || !effect.Type.IsEffect() {
		return false
	}
	return effect.Input1 == input || effect.Input2 == input
}

// Invalidate drops the caches of s after its bounds or animation changed,
// and of every strip in dependents that is an effect of s. Speed frame maps
// are rebuilt right away.
func (e *Engine) Invalidate(rc *RenderContext, s *Strip, dependents ...*Strip) {
	invalidateStrip(rc, s)
	for _, d := range dependents {
		if IsEffectOf(d, s) {
			invalidateStrip(rc, d)
		}
	}
}

func invalidateStrip(rc *RenderContext, s *Strip) {
	if s.Type != Speed {
		return
	}
	p, ok := s.Params.(*SpeedParams)
	if !ok {
		return
	}
	p.frameMap = nil
	rebuildSpeedMap(rc, s)
}
