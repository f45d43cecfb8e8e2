package stripfx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func speedStrip(srcLen, stripLen float64) (*Strip, *Strip) {
	src := &Strip{Name: "clip", Length: srcLen}
	s := NewStrip(Speed, src, nil)
	s.Length = stripLen
	return s, src
}

func TestSpeedStretchIdentity(t *testing.T) {
	s, _ := speedStrip(10, 10)
	rc := &RenderContext{Width: 1, Height: 1}
	for i := range 10 {
		assert.InDelta(t, float64(i), SpeedTargetFrame(rc, s, float64(i), 0), 1e-9, "frame %d", i)
	}
}

func TestSpeedStretchHalfSpeed(t *testing.T) {
	s, _ := speedStrip(5, 10)
	s.Start = 100
	rc := &RenderContext{Width: 1, Height: 1}
	assert.InDelta(t, 101.5, SpeedTargetFrame(rc, s, 103, 0), 1e-9)
}

func TestSpeedModes(t *testing.T) {
	rc := &RenderContext{Width: 1, Height: 1}
	tests := []struct {
		name  string
		set   func(p *SpeedParams)
		frame float64
		want  float64
	}{
		{"multiply", func(p *SpeedParams) { p.Mode, p.SpeedFactor = SpeedMultiply, 2 }, 3, 6},
		{"multiply clamped", func(p *SpeedParams) { p.Mode, p.SpeedFactor = SpeedMultiply, 3 }, 9, 20},
		{"length", func(p *SpeedParams) { p.Mode, p.Length = SpeedLength, 50 }, 4, 10},
		{"frame number", func(p *SpeedParams) { p.Mode, p.FrameNumber = SpeedFrameNumber, 7 }, 2, 7},
		{"frame number clamped", func(p *SpeedParams) { p.Mode, p.FrameNumber = SpeedFrameNumber, 70 }, 2, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := speedStrip(20, 10)
			tt.set(s.Params.(*SpeedParams))
			assert.InDelta(t, tt.want, SpeedTargetFrame(rc, s, tt.frame, 0), 1e-6)
		})
	}
}

func TestSpeedInterpolationInputs(t *testing.T) {
	s, _ := speedStrip(5, 10)
	s.Params.(*SpeedParams).Interpolate = true
	rc := &RenderContext{Width: 1, Height: 1}
	assert.InDelta(t, 1.5, SpeedTargetFrame(rc, s, 3, 0), 1e-9)
	assert.InDelta(t, 2, SpeedTargetFrame(rc, s, 3, 1), 1e-9)
}

func TestSpeedWithoutInput(t *testing.T) {
	s := NewStrip(Speed, nil, nil)
	assert.Zero(t, SpeedTargetFrame(&RenderContext{}, s, 5, 0))
}

func TestSpeedFrameMap(t *testing.T) {
	s, _ := speedStrip(12, 10)
	p := s.Params.(*SpeedParams)
	p.Mode = SpeedMultiply
	tl := &fakeTimeline{curves: map[string]float64{SpeedFactorCurve: 2}}
	rc := &RenderContext{Width: 1, Height: 1, Timeline: tl}

	assert.InDelta(t, 6, SpeedTargetFrame(rc, s, 3, 0), 1e-6)
	assert.Equal(t, []float32{0, 2, 4, 6, 8, 10, 12, 12, 12, 12}, p.FrameMap())

	tl.curves[SpeedFactorCurve] = 1
	assert.InDelta(t, 6, SpeedTargetFrame(rc, s, 3, 0), 1e-6, "cached map is reused")

	e := newTestEngine(t)
	e.Invalidate(rc, s)
	assert.InDelta(t, 3, SpeedTargetFrame(rc, s, 3, 0), 1e-6, "invalidate rebuilds the map")
}

func TestInvalidateDependents(t *testing.T) {
	s, src := speedStrip(12, 4)
	s.Params.(*SpeedParams).Mode = SpeedMultiply
	rc := &RenderContext{Timeline: &fakeTimeline{curves: map[string]float64{SpeedFactorCurve: 1}}}
	other := NewStrip(Speed, &Strip{}, nil)
	other.Params.(*SpeedParams).frameMap = []float32{5}

	e := newTestEngine(t)
	e.Invalidate(rc, src, s, other)
	assert.Equal(t, []float32{0, 1, 2, 3}, s.Params.(*SpeedParams).FrameMap())
	assert.Equal(t, []float32{5}, other.Params.(*SpeedParams).FrameMap(), "unrelated strips keep their map")
}

func TestSpeedCopyDropsFrameMap(t *testing.T) {
	s, _ := speedStrip(10, 10)
	s.Params.(*SpeedParams).frameMap = []float32{0, 1}
	c := s.Copy()
	assert.Nil(t, c.Params.(*SpeedParams).FrameMap())
	assert.NotNil(t, s.Params.(*SpeedParams).FrameMap())
}

func TestSpeedExecute(t *testing.T) {
	e := newTestEngine(t)
	s, _ := speedStrip(5, 10)
	rc := &RenderContext{Width: 2, Height: 2}
	cur, next := solidByte(2, 2, 0, 0, 0, 255), solidByte(2, 2, 255, 255, 255, 255)

	out, err := e.Execute(context.Background(), rc, s, 3, 1, cur, next)
	require.NoError(t, err)
	assert.Equal(t, cur.Byte, out.Byte, "without interpolation input 1 passes through")

	s.Params.(*SpeedParams).Interpolate = true
	out, err = e.Execute(context.Background(), rc, s, 3, 1, cur, next)
	require.NoError(t, err)
	assertPixel(t, [4]uint8{127, 127, 127, 255}, out.ByteAt(0, 0), 0)
}
