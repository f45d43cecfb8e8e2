package stripfx

import "context"

// EarlyOut tells the dispatcher how much work an effect needs.
type EarlyOut uint8

const (
	// DoEffect runs the executor.
	DoEffect EarlyOut = iota
	// UseInput1 returns a copy of input 1.
	UseInput1
	// UseInput2 returns a copy of input 2.
	UseInput2
	// NoInput runs the executor without inputs.
	NoInput
)

// String returns a string representation of the early-out decision.
func (e EarlyOut) String() string {
	switch e {
	case DoEffect:
		return "DoEffect"
	case UseInput1:
		return "UseInput1"
	case UseInput2:
		return "UseInput2"
	case NoInput:
		return "NoInput"
	default:
		return "Unknown"
	}
}

// Job is one effect invocation.
type Job struct {
	Ctx    context.Context
	Render *RenderContext
	Strip  *Strip
	Frame  float64
	Fac    float32

	// In1 and In2 share size and format with the output. Executors must
	// not modify them.
	In1, In2 *Image
}

// Handle bundles the behavior of one effect type. Exactly one of Execute
// and ExecuteSlice is set for a valid handle.
type Handle struct {
	Type EffectType

	// Init fills the default parameter block of a new strip.
	Init func(s *Strip)
	// Load runs once after creation or reload, before the first render.
	Load func(e *Engine, s *Strip)
	// Free releases resources owned by the parameter block.
	Free func(s *Strip)
	// Copy fixes up dst after its parameters were cloned from src.
	Copy func(dst, src *Strip)

	NumInputs int

	EarlyOut      func(s *Strip, fac float32) EarlyOut
	DefaultFactor func(s *Strip, frame float64) float32

	// Execute renders the whole frame.
	Execute func(e *Engine, j *Job) (*Image, error)

	// ExecuteSlice renders output rows [y0, y1). Bands of Grain rows may
	// run concurrently.
	ExecuteSlice func(j *Job, out *Image, y0, y1 int)
	Grain        int
}

// Valid reports whether the handle has an executor.
func (h Handle) Valid() bool {
	return h.Execute != nil || h.ExecuteSlice != nil
}

const defaultGrain = 64

func baseHandle(t EffectType) Handle {
	return Handle{
		Type:          t,
		NumInputs:     2,
		EarlyOut:      earlyOutNoop,
		DefaultFactor: factorNoop,
	}
}

func slicedHandle(t EffectType, fn func(j *Job, out *Image, y0, y1 int)) Handle {
	h := baseHandle(t)
	h.ExecuteSlice = fn
	h.Grain = defaultGrain
	return h
}

func buildHandles() [effectTypeCount]Handle {
	var table [effectTypeCount]Handle
	for t := range effectTypeCount {
		table[t] = baseHandle(t)
	}

	h := slicedHandle(Cross, crossSlice)
	h.EarlyOut, h.DefaultFactor = earlyOutFade, factorFade
	table[Cross] = h

	h = slicedHandle(GammaCross, gammaCrossSlice)
	h.EarlyOut, h.DefaultFactor = earlyOutFade, factorFade
	table[GammaCross] = h

	h = slicedHandle(Add, addSlice)
	h.EarlyOut = earlyOutMulInput2
	table[Add] = h

	h = slicedHandle(Sub, subSlice)
	h.EarlyOut = earlyOutMulInput2
	table[Sub] = h

	h = slicedHandle(Mul, mulSlice)
	h.EarlyOut = earlyOutMulInput2
	table[Mul] = h

	for t := Screen; t < effectTypeCount; t++ {
		h = slicedHandle(t, blendModeSlice)
		h.EarlyOut = earlyOutMulInput2
		table[t] = h
	}

	h = slicedHandle(ColorMix, colorMixSlice)
	h.Init = initColorMix
	h.EarlyOut = earlyOutMulInput2
	table[ColorMix] = h

	h = slicedHandle(AlphaOver, alphaOverSlice)
	h.Init = swapInputs
	h.EarlyOut = earlyOutMulInput1
	table[AlphaOver] = h

	table[OverDrop] = slicedHandle(OverDrop, overDropSlice)

	h = slicedHandle(AlphaUnder, alphaUnderSlice)
	h.Init = swapInputs
	table[AlphaUnder] = h

	h = baseHandle(Wipe)
	h.Init = initWipe
	h.EarlyOut, h.DefaultFactor = earlyOutFade, factorFade
	h.Execute = executeWipe
	table[Wipe] = h

	h = baseHandle(Glow)
	h.Init = initGlow
	h.NumInputs = 1
	h.Execute = executeGlow
	table[Glow] = h

	h = slicedHandle(Transform, transformSlice)
	h.Init = initTransform
	h.NumInputs = 1
	table[Transform] = h

	h = baseHandle(Speed)
	h.Init, h.Load = initSpeed, loadSpeed
	h.NumInputs = 1
	h.Execute = executeSpeed
	table[Speed] = h

	h = baseHandle(SolidColor)
	h.Init = initSolidColor
	h.NumInputs = 0
	h.EarlyOut = earlyOutNoInput
	h.Execute = executeSolidColor
	table[SolidColor] = h

	h = baseHandle(Multicam)
	h.NumInputs = 0
	h.EarlyOut = earlyOutNoInput
	h.Execute = executeMulticam
	table[Multicam] = h

	h = baseHandle(Adjustment)
	h.NumInputs = 0
	h.EarlyOut = earlyOutNoInput
	h.Execute = executeAdjustment
	table[Adjustment] = h

	h = baseHandle(GaussianBlur)
	h.Init = initGaussianBlur
	h.NumInputs = 1
	h.EarlyOut = earlyOutGaussianBlur
	h.Execute = executeGaussianBlur
	table[GaussianBlur] = h

	h = baseHandle(Text)
	h.Init, h.Load, h.Free, h.Copy = initText, loadText, freeText, copyText
	h.NumInputs = 0
	h.EarlyOut = earlyOutText
	h.Execute = executeText
	table[Text] = h

	return table
}

// handles is filled by init: executors refer back to the table.
var handles [effectTypeCount]Handle

func init() {
	handles = buildHandles()
}

// GetEffectHandle returns the handle of effect type t. Unknown types and
// Replace yield a handle without executor.
func GetEffectHandle(t EffectType) Handle {
	if t < effectTypeCount {
		return handles[t]
	}
	return baseHandle(t)
}

// NumInputs returns the number of inputs effect type t reads, or 0 when it
// has no executor.
func NumInputs(t EffectType) int {
	h := GetEffectHandle(t)
	if !h.Valid() {
		return 0
	}
	return h.NumInputs
}

func swapInputs(s *Strip) {
	s.Input1, s.Input2 = s.Input2, s.Input1
}
