package stripfx

import "context"

// Timeline is the sequence an effect renders within. Multicam and
// adjustment strips render other channels through it, and animated
// properties are read from its curves.
type Timeline interface {
	// RenderChannel renders the given channel at frame as seen by caller,
	// considering only strips below caller's group. It returns nil, nil when
	// nothing is visible there.
	RenderChannel(ctx context.Context, rc *RenderContext, frame float64, channel int, caller *Strip) (*Image, error)

	// Curve returns the animation curve of a strip property, or nil when
	// the property is not animated.
	Curve(s *Strip, property string) Curve
}

// Curve is an animated property.
type Curve interface {
	Eval(frame float64) float64
}

// CurveFunc adapts a function to the Curve interface.
type CurveFunc func(frame float64) float64

// Eval implements Curve.
func (f CurveFunc) Eval(frame float64) float64 { return f(frame) }

// RenderContext describes the frame being rendered.
type RenderContext struct {
	Width, Height int

	// SceneWidth is the full-resolution width; glow scales its radius by
	// Width/SceneWidth. Zero means Width.
	SceneWidth int

	// RenderScale compensates pixel sizes for preview resolutions. Zero
	// means 1.
	RenderScale float64

	Timeline Timeline
}

func (rc *RenderContext) renderScale() float64 {
	if rc.RenderScale == 0 {
		return 1
	}
	return rc.RenderScale
}

func (rc *RenderContext) sceneWidth() int {
	if rc.SceneWidth <= 0 {
		return rc.Width
	}
	return rc.SceneWidth
}

func (rc *RenderContext) curve(s *Strip, property string) Curve {
	if rc == nil || rc.Timeline == nil {
		return nil
	}
	return rc.Timeline.Curve(s, property)
}
