// Package filter provides the convolution filters used by strip effects.
//
// This package contains:
//   - Normalized Gaussian kernels with a shared kernel cache
//   - Separable row-range convolution over byte and float RGBA images
//   - Rectangle-limited alpha mask convolution (text shadows)
//   - Highlight isolation and blur (glow)
//
// Every pass writes only the output rows it is given and reads a source it
// never modifies, so callers may run disjoint row bands concurrently.
package filter
