package stripfx

// EffectFaderCurve is the animated property overriding the blend factor.
const EffectFaderCurve = "effect_fader"

func earlyOutNoop(*Strip, float32) EarlyOut { return DoEffect }

func earlyOutNoInput(*Strip, float32) EarlyOut { return NoInput }

func earlyOutFade(_ *Strip, fac float32) EarlyOut {
	switch fac {
	case 0:
		return UseInput1
	case 1:
		return UseInput2
	}
	return DoEffect
}

func earlyOutMulInput2(_ *Strip, fac float32) EarlyOut {
	if fac == 0 {
		return UseInput1
	}
	return DoEffect
}

func earlyOutMulInput1(_ *Strip, fac float32) EarlyOut {
	if fac == 0 {
		return UseInput2
	}
	return DoEffect
}

func factorNoop(*Strip, float64) float32 { return 1 }

// factorFade is the position of frame within the strip, clamped to [0, 1].
func factorFade(s *Strip, frame float64) float32 {
	if s.Len() <= 0 {
		return 1
	}
	fac := float32(frame-s.LeftHandle()) / float32(s.Len())
	return min(max(fac, 0), 1)
}
