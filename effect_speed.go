package stripfx

import "math"

func initSpeed(s *Strip) {
	s.Params = &SpeedParams{Mode: SpeedStretch, SpeedFactor: 1}
}

func loadSpeed(_ *Engine, s *Strip) {
	s.Params.(*SpeedParams).frameMap = nil
}

// rebuildSpeedMap integrates the speed_factor curve over the strip into a
// table of source frames per strip frame, clamped to the source length.
// Without a curve or source the table is left unchanged.
func rebuildSpeedMap(rc *RenderContext, s *Strip) {
	n := int(s.Len())
	if s.Input1 == nil || n < 1 {
		return
	}
	c := rc.curve(s, SpeedFactorCurve)
	if c == nil {
		return
	}
	p := s.Params.(*SpeedParams)
	limit := float32(s.Input1.Length)
	m := make([]float32, n)
	var target float32
	for i := 1; i < n; i++ {
		target += float32(c.Eval(s.LeftHandle() + float64(i)))
		target = min(max(target, 0), limit)
		m[i] = target
	}
	p.frameMap = m
	Logger().Debug("stripfx: speed frame map", "strip", s.Name, "frames", n)
}

// SpeedTargetFrame returns the source frame speed strip s shows at frame.
// With interpolation input 0 is the exact target and input 1 the next
// whole frame; otherwise input is ignored. A speed strip without input
// yields 0.
func SpeedTargetFrame(rc *RenderContext, s *Strip, frame float64, input int) float64 {
	src := s.Input1
	if src == nil {
		return 0
	}
	p := s.Params.(*SpeedParams)
	index := math.Round(frame - s.Start)

	var target float64
	switch p.Mode {
	case SpeedStretch:
		content := src.Length - src.StartOffset
		if n := s.Len(); n > 0 {
			target = content * (index / n)
		}
	case SpeedMultiply:
		if rc.curve(s, SpeedFactorCurve) != nil {
			if p.frameMap == nil {
				rebuildSpeedMap(rc, s)
			}
			if len(p.frameMap) > 0 {
				i := min(max(int(index), 0), len(p.frameMap)-1)
				target = float64(p.frameMap[i])
			}
		} else {
			target = index * float64(p.SpeedFactor)
		}
	case SpeedLength:
		target = src.Length * float64(p.Length/100)
	case SpeedFrameNumber:
		target = float64(p.FrameNumber)
	}

	target = min(max(target, 0), src.Length) + s.Start
	if !p.Interpolate || input == 0 {
		return target
	}
	return math.Ceil(target)
}

// executeSpeed passes through the retimed source frame in input 1. With
// interpolation it dissolves towards the next source frame in input 2 by
// the fractional part of the target frame.
func executeSpeed(e *Engine, j *Job) (*Image, error) {
	p := j.Strip.Params.(*SpeedParams)
	if !p.Interpolate || j.In2 == nil {
		return j.In1.Clone(), nil
	}
	target := SpeedTargetFrame(j.Render, j.Strip, j.Frame, 0)
	fac := float32(target - math.Floor(target))
	return e.ExecuteHandle(j.Ctx, GetEffectHandle(Cross), j.Render, j.Strip, j.Frame, fac, j.In1, j.In2)
}
