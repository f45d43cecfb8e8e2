package stripfx

// Strip is a span of the timeline carrying media or an effect.
//
// Times are in frames. The content occupies [Start, Start+Length) and the
// trims StartOffset and EndOffset hide frames at either end.
type Strip struct {
	Name    string
	Type    EffectType
	Channel int

	Start       float64
	Length      float64
	StartOffset float64
	EndOffset   float64

	// Input1 and Input2 are the strips an effect reads.
	Input1, Input2 *Strip

	// BlendMode composites the strip over the channels below it.
	BlendMode    EffectType
	BlendOpacity float64

	// MulticamSource is the channel shown by a multicam strip.
	MulticamSource int

	// UseDefaultFade derives the factor from the strip position. When
	// false EffectFader is used.
	UseDefaultFade bool
	EffectFader    float64

	Params Params

	// Meta is the enclosing group strip, nil at the top level.
	Meta *Strip

	notLoaded bool
}

// NewStrip creates a strip of type t reading in1 and in2, with the default
// parameters of its effect. The effect is loaded lazily on first use.
func NewStrip(t EffectType, in1, in2 *Strip) *Strip {
	s := &Strip{
		Type:           t,
		Name:           t.String(),
		Input1:         in1,
		Input2:         in2,
		BlendOpacity:   100,
		UseDefaultFade: true,
		EffectFader:    1,
	}
	h := GetEffectHandle(t)
	if h.Init != nil {
		h.Init(s)
	}
	s.notLoaded = true
	return s
}

// LeftHandle returns the first visible frame.
func (s *Strip) LeftHandle() float64 {
	return s.Start + s.StartOffset
}

// RightHandle returns the frame after the last visible one.
func (s *Strip) RightHandle() float64 {
	return s.Start + s.Length - s.EndOffset
}

// Len returns the number of visible frames.
func (s *Strip) Len() float64 {
	return s.RightHandle() - s.LeftHandle()
}

// Loaded reports whether the effect's load hook has run.
func (s *Strip) Loaded() bool {
	return !s.notLoaded
}

// MarkNotLoaded schedules the load hook to run again on next use, as after
// reading the strip back from storage.
func (s *Strip) MarkNotLoaded() {
	s.notLoaded = true
}

// Copy returns a deep copy of s. Parameter blocks are duplicated through
// the effect's copy hook; inputs and group are shared.
func (s *Strip) Copy() *Strip {
	c := *s
	if s.Params != nil {
		c.Params = s.Params.Clone()
	}
	if h := GetEffectHandle(s.Type); h.Copy != nil {
		h.Copy(&c, s)
	}
	return &c
}

// Free releases the parameter block and any resources it owns.
func (s *Strip) Free() {
	if h := GetEffectHandle(s.Type); h.Free != nil {
		h.Free(s)
	}
	s.Params = nil
}
