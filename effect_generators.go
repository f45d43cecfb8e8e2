package stripfx

import (
	"fmt"

	"github.com/gogpu/stripfx/internal/color"
)

func initSolidColor(s *Strip) {
	s.Params = &SolidColorParams{Color: [3]float32{0.5, 0.5, 0.5}}
}

// executeSolidColor fills the frame with an opaque color.
func executeSolidColor(e *Engine, j *Job) (*Image, error) {
	out, err := e.output(j)
	if err != nil {
		return nil, err
	}
	c := j.Strip.Params.(*SolidColorParams).Color
	e.pool.ForRows(out.Height, defaultGrain, func(y0, y1 int) {
		lo, hi := rowSpan(out, y0, y1)
		if out.Float != nil {
			px := [4]float32{c[0], c[1], c[2], 1}
			for i := lo; i < hi; i += 4 {
				copy(out.Float[i:i+4], px[:])
			}
			return
		}
		px := [4]uint8{color.UnitToByte(c[0]), color.UnitToByte(c[1]), color.UnitToByte(c[2]), 255}
		for i := lo; i < hi; i += 4 {
			copy(out.Byte[i:i+4], px[:])
		}
	})
	out.Opaque = true
	return out, nil
}

// executeMulticam renders the strip's source channel. Sources at or above
// the strip's own channel render nothing.
func executeMulticam(e *Engine, j *Job) (*Image, error) {
	s := j.Strip
	if s.MulticamSource == 0 || s.MulticamSource >= s.Channel {
		return nil, nil
	}
	if j.Render.Timeline == nil {
		return nil, ErrNoTimeline
	}
	return renderChannel(j, s, j.Frame, s.MulticamSource)
}

// executeAdjustment renders what lies below the strip, so that the blend
// mode and modifiers of the strip apply to it. Inside a meta strip with
// nothing below, the content below the meta is used.
func executeAdjustment(e *Engine, j *Job) (*Image, error) {
	if j.Render.Timeline == nil {
		Logger().Warn("stripfx: adjustment strip without timeline", "strip", j.Strip.Name)
		return nil, ErrNoTimeline
	}
	return adjustmentBelow(j, j.Strip, j.Frame)
}

func adjustmentBelow(j *Job, s *Strip, frame float64) (*Image, error) {
	frame = min(max(frame, s.LeftHandle()), s.RightHandle()-1)
	if s.Channel > 1 {
		out, err := renderChannel(j, s, frame, s.Channel-1)
		if err != nil || out != nil {
			return out, err
		}
	}
	if s.Meta == nil {
		return nil, nil
	}
	return adjustmentBelow(j, s.Meta, frame)
}

func renderChannel(j *Job, caller *Strip, frame float64, channel int) (*Image, error) {
	out, err := j.Render.Timeline.RenderChannel(j.Ctx, j.Render, frame, channel, caller)
	if err != nil {
		return nil, fmt.Errorf("stripfx: render channel %d: %w", channel, err)
	}
	return out, nil
}
