package stripfx

import (
	"fmt"

	"github.com/gogpu/stripfx/internal/filter"
)

const blurGrain = 32

func initGaussianBlur(s *Strip) {
	s.Params = &GaussianBlurParams{}
}

func earlyOutGaussianBlur(s *Strip, _ float32) EarlyOut {
	p := s.Params.(*GaussianBlurParams)
	if p.SizeX == 0 && p.SizeY == 0 {
		return UseInput1
	}
	return DoEffect
}

// executeGaussianBlur convolves input 1 with separable Gaussian kernels of
// half width SizeX and SizeY rounded to whole pixels.
func executeGaussianBlur(e *Engine, j *Job) (*Image, error) {
	p := j.Strip.Params.(*GaussianBlurParams)
	kx := filter.CachedGaussianKernel(float64(p.SizeX), filter.HalfSize(p.SizeX))
	ky := filter.CachedGaussianKernel(float64(p.SizeY), filter.HalfSize(p.SizeY))
	out, err := filter.Separable(e.pool, j.In1, kx, ky, blurGrain)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}
	return out, nil
}
