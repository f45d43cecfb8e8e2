// Package jfa implements the jump flooding algorithm: an approximate
// nearest-seed transform over a 2D grid.
//
// Every cell of a Grid holds the coordinate of the closest seed found so
// far, or the invalid coordinate. A pass replaces each cell with the closest
// of the nine candidates at offsets of -step, 0 and +step in both axes.
// Running passes with shrinking steps spreads seeds across the grid in
// O(n log n) work. Results are approximate: a cell may keep a seed that is
// not the true nearest one.
package jfa

import (
	"math"

	"github.com/gogpu/stripfx/internal/image"
	"github.com/gogpu/stripfx/internal/parallel"
)

// Invalid marks a coordinate component that refers to no seed.
const Invalid uint16 = 0xFFFF

// Coord is a grid position. A Coord with X == Invalid refers to no seed.
type Coord struct {
	X, Y uint16
}

// None is the coordinate stored in cells with no known seed.
var None = Coord{X: Invalid, Y: Invalid}

// Valid reports whether c refers to a seed.
func (c Coord) Valid() bool {
	return c.X != Invalid
}

// DistSq returns the squared Euclidean distance from c to (x, y).
func (c Coord) DistSq(x, y int) float32 {
	dx := float32(c.X) - float32(x)
	dy := float32(c.Y) - float32(y)
	return dx*dx + dy*dy
}

// Dist returns the Euclidean distance from c to (x, y).
func (c Coord) Dist(x, y int) float32 {
	return float32(math.Sqrt(float64(c.DistSq(x, y))))
}

// Grid is a row-major field of coordinates.
type Grid struct {
	Width, Height int
	Cells         []Coord
}

// NewGrid returns a width x height grid with every cell set to None.
func NewGrid(width, height int) *Grid {
	g := &Grid{Width: width, Height: height, Cells: make([]Coord, width*height)}
	for i := range g.Cells {
		g.Cells[i] = None
	}
	return g
}

// At returns the cell at (x, y).
func (g *Grid) At(x, y int) Coord {
	return g.Cells[y*g.Width+x]
}

// Seed builds a grid in which every cell for which opaque returns true
// holds its own coordinate and every other cell holds None. Rows are
// initialized in parallel bands on pool.
func Seed(pool *parallel.WorkerPool, width, height int, opaque func(x, y int) bool) *Grid {
	g := &Grid{Width: width, Height: height, Cells: make([]Coord, width*height)}
	pool.ForRows(height, 16, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			row := g.Cells[y*width : (y+1)*width]
			for x := range row {
				if opaque(x, y) {
					row[x] = Coord{X: uint16(x), Y: uint16(y)}
				} else {
					row[x] = None
				}
			}
		}
	})
	return g
}

// SeedAlpha seeds a grid from the alpha channel of an RGBA byte buffer:
// cells with alpha of at least threshold are seeds.
func SeedAlpha(pool *parallel.WorkerPool, rgba []uint8, width, height int, threshold uint8) *Grid {
	return Seed(pool, width, height, func(x, y int) bool {
		return rgba[(y*width+x)*4+3] >= threshold
	})
}

// Pass runs one flooding step over the cells of r, reading in and writing
// out. Candidates outside the grid or without a seed are skipped; on equal
// distance the first candidate in scan order (dy then dx, both ascending)
// wins. Cells of out outside r are not written.
func Pass(pool *parallel.WorkerPool, in, out *Grid, r image.Rect, step int) {
	if r.Empty() {
		return
	}
	w, h := in.Width, in.Height
	pool.ForRows(r.Height(), 8, func(b0, b1 int) {
		for y := r.YMin + b0; y < r.YMin+b1; y++ {
			for x := r.XMin; x <= r.XMax; x++ {
				closest := None
				best := float32(math.MaxFloat32)
				for dy := -step; dy <= step; dy += step {
					yy := y + dy
					if yy < 0 || yy >= h {
						continue
					}
					for dx := -step; dx <= step; dx += step {
						xx := x + dx
						if xx < 0 || xx >= w {
							continue
						}
						c := in.Cells[yy*w+xx]
						if !c.Valid() {
							continue
						}
						if d := c.DistSq(x, y); d < best {
							best = d
							closest = c
						}
					}
				}
				out.Cells[y*w+x] = closest
			}
		}
	})
}

// Schedule returns the step sizes used to flood out to the given distance:
// a single step-1 pass, then Pow2Ceil(distance)/2 halving down to 1.
func Schedule(distance int) []int {
	steps := []int{1}
	for step := Pow2Ceil(distance) / 2; step != 0; step /= 2 {
		steps = append(steps, step)
	}
	return steps
}

// Flood runs the full pass schedule for distance over r, starting from seed,
// and returns the resulting grid. seed is not modified. Cells outside r are
// None in the result.
func Flood(pool *parallel.WorkerPool, seed *Grid, r image.Rect, distance int) *Grid {
	src := NewGrid(seed.Width, seed.Height)
	dst := NewGrid(seed.Width, seed.Height)
	steps := Schedule(distance)

	Pass(pool, seed, src, r, steps[0])
	for _, step := range steps[1:] {
		Pass(pool, src, dst, r, step)
		src, dst = dst, src
	}
	return src
}

// Pow2Ceil returns the smallest power of two that is >= n, or 1 for n <= 1.
func Pow2Ceil(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
