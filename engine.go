package stripfx

import (
	"context"
	"fmt"
	"maps"

	"github.com/gogpu/stripfx/internal/parallel"
	"github.com/gogpu/stripfx/text"
)

// Engine executes effect strips.
//
// Thread safety: Engine is safe for concurrent use. A single strip must not
// be rendered from two goroutines at once, since its lazy load and speed
// frame map mutate the strip.
type Engine struct {
	pool   *parallel.WorkerPool
	alloc  Allocator
	colors ColorManager
	fonts  *text.FontCache
}

// New creates an engine.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{
		alloc:  o.allocator,
		colors: o.colors,
		fonts:  o.fonts,
	}
	if e.alloc == nil {
		e.alloc = HeapAllocator{MaxPixels: o.maxPixels}
	}
	if e.colors == nil {
		e.colors = DisplayColorManager{}
	}
	if e.fonts == nil {
		e.fonts = text.Default()
	}
	if o.workers != 1 {
		e.pool = parallel.NewWorkerPool(o.workers)
	}
	return e
}

// Close stops the worker goroutines. Renders after Close run on the
// calling goroutine.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
	}
}

// Workers returns the number of goroutines running row bands.
func (e *Engine) Workers() int {
	if e.pool == nil {
		return 1
	}
	return e.pool.Workers()
}

// Fonts returns the font cache used by text strips.
func (e *Engine) Fonts() *text.FontCache {
	return e.fonts
}

// HandleFor returns the handle of s, running the effect's load hook first
// if s has not been loaded. Strips that are not effects get a handle
// without executor.
func (e *Engine) HandleFor(s *Strip) Handle {
	h := GetEffectHandle(s.Type)
	if !s.Type.IsEffect() {
		return h
	}
	if s.notLoaded {
		if h.Load != nil {
			h.Load(e, s)
		}
		s.notLoaded = false
	}
	return h
}

// BlendHandle returns the handle compositing s over the channels below it
// according to s.BlendMode. A not yet loaded strip has its own effect
// loaded first and then the blend effect.
func (e *Engine) BlendHandle(s *Strip) Handle {
	if s.BlendMode == Replace {
		return GetEffectHandle(Replace)
	}
	if s.notLoaded {
		if own := GetEffectHandle(s.Type); own.Load != nil {
			own.Load(e, s)
		}
	}
	h := GetEffectHandle(s.BlendMode)
	if s.notLoaded {
		if h.Load != nil {
			h.Load(e, s)
		}
		s.notLoaded = false
	}
	return h
}

// Factor returns the blend factor of s at frame: the effect_fader curve
// when animated, EffectFader when the default fade is off, and the
// effect's default factor otherwise.
func (e *Engine) Factor(rc *RenderContext, s *Strip, frame float64) float32 {
	if c := rc.curve(s, EffectFaderCurve); c != nil {
		return float32(c.Eval(frame))
	}
	if !s.UseDefaultFade {
		return float32(s.EffectFader)
	}
	return e.HandleFor(s).DefaultFactor(s, frame)
}

// Execute renders effect strip s at frame with the given factor.
//
// The inputs are not modified. It returns nil, nil when the effect produces
// nothing: no executor, or a required input is missing. Errors are limited
// to allocation failures, mismatched input sizes, timeline errors and
// cancellation of ctx before work starts.
func (e *Engine) Execute(ctx context.Context, rc *RenderContext, s *Strip, frame float64, fac float32, in1, in2 *Image) (*Image, error) {
	return e.ExecuteHandle(ctx, e.HandleFor(s), rc, s, frame, fac, in1, in2)
}

// ExecuteHandle is Execute with an explicit handle, as used for blend modes
// and by effects running other effects.
func (e *Engine) ExecuteHandle(ctx context.Context, h Handle, rc *RenderContext, s *Strip, frame float64, fac float32, in1, in2 *Image) (*Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !h.Valid() {
		Logger().Warn("stripfx: effect has no executor", "type", h.Type, "strip", s.Name)
		return nil, nil
	}

	eo := h.EarlyOut(s, fac)
	Logger().Debug("stripfx: early out", "type", h.Type, "decision", eo, "fac", fac)
	switch eo {
	case UseInput1:
		return cloneImage(in1), nil
	case UseInput2:
		return cloneImage(in2), nil
	case NoInput:
		in1, in2 = nil, nil
	case DoEffect:
		if h.NumInputs > 0 && (in1 == nil || (in2 == nil && h.NumInputs == 2)) {
			Logger().Debug("stripfx: missing input", "type", h.Type, "strip", s.Name)
			return nil, nil
		}
	}

	for _, in := range []*Image{in1, in2} {
		if in != nil && (in.Width != rc.Width || in.Height != rc.Height) {
			return nil, fmt.Errorf("%w: %dx%d, want %dx%d", ErrSizeMismatch, in.Width, in.Height, rc.Width, rc.Height)
		}
	}

	sameInput := in1 != nil && in1 == in2
	j := &Job{Ctx: ctx, Render: rc, Strip: s, Frame: frame, Fac: fac}
	j.In1, j.In2 = e.promote(in1, in2)

	var (
		out *Image
		err error
	)
	if h.Execute != nil {
		out, err = h.Execute(e, j)
	} else {
		out, err = e.executeSliced(h, j)
	}
	if err != nil || out == nil {
		return nil, err
	}
	if sameInput {
		out.Meta = maps.Clone(in1.Meta)
	}
	return out, nil
}

func (e *Engine) executeSliced(h Handle, j *Job) (*Image, error) {
	out, err := e.output(j)
	if err != nil {
		return nil, err
	}
	grain := h.Grain
	if grain <= 0 {
		grain = defaultGrain
	}
	Logger().Debug("stripfx: sliced execution", "type", h.Type, "rows", out.Height, "grain", grain)
	e.pool.ForRows(out.Height, grain, func(y0, y1 int) {
		h.ExecuteSlice(j, out, y0, y1)
	})
	return out, nil
}

// promote converts a byte input to the float working space when the other
// input is float. Converted inputs are fresh copies.
func (e *Engine) promote(in1, in2 *Image) (*Image, *Image) {
	if !isFloat(in1) && !isFloat(in2) {
		return in1, in2
	}
	same := in1 == in2
	if in1 != nil && !in1.IsFloat() {
		in1 = e.colors.ToWorkingSpace(in1)
	}
	if same {
		return in1, in1
	}
	if in2 != nil && !in2.IsFloat() {
		in2 = e.colors.ToWorkingSpace(in2)
	}
	return in1, in2
}

// output allocates the output buffer of j: float if any input is float.
func (e *Engine) output(j *Job) (*Image, error) {
	format := FormatByte
	if isFloat(j.In1) || isFloat(j.In2) {
		format = FormatFloat
	}
	return e.allocate(j.Render.Width, j.Render.Height, format)
}

func isFloat(m *Image) bool {
	return m != nil && m.IsFloat()
}

func cloneImage(m *Image) *Image {
	if m == nil {
		return nil
	}
	return m.Clone()
}
