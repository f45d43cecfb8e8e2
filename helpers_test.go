package stripfx

import (
	"context"
	"sync"
)

func solidByte(w, h int, r, g, b, a uint8) *Image {
	m, err := NewImage(w, h, FormatByte)
	if err != nil {
		panic(err)
	}
	for i := 0; i < len(m.Byte); i += 4 {
		m.Byte[i], m.Byte[i+1], m.Byte[i+2], m.Byte[i+3] = r, g, b, a
	}
	return m
}

func solidFloat(w, h int, r, g, b, a float32) *Image {
	m, err := NewImage(w, h, FormatFloat)
	if err != nil {
		panic(err)
	}
	m.Fill(r, g, b, a)
	return m
}

// gradientByte has distinct opaque colors per pixel.
func gradientByte(w, h int) *Image {
	m, err := NewImage(w, h, FormatByte)
	if err != nil {
		panic(err)
	}
	for y := range h {
		for x := range w {
			p := m.ByteAt(x, y)
			p[0], p[1], p[2], p[3] = uint8(x*16), uint8(y*16), uint8((x+y)*8), 255
		}
	}
	return m
}

type channelCall struct {
	frame   float64
	channel int
	caller  *Strip
}

// fakeTimeline renders fixed images per channel and serves constant curves.
type fakeTimeline struct {
	mu       sync.Mutex
	channels map[int]*Image
	curves   map[string]float64
	calls    []channelCall
}

func (f *fakeTimeline) RenderChannel(_ context.Context, _ *RenderContext, frame float64, channel int, caller *Strip) (*Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, channelCall{frame, channel, caller})
	m := f.channels[channel]
	if m == nil {
		return nil, nil
	}
	return m.Clone(), nil
}

func (f *fakeTimeline) Curve(_ *Strip, property string) Curve {
	v, ok := f.curves[property]
	if !ok {
		return nil
	}
	return CurveFunc(func(float64) float64 { return v })
}
