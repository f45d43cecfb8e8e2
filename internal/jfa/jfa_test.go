package jfa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/stripfx/internal/image"
	"github.com/gogpu/stripfx/internal/parallel"
)

func full(w, h int) image.Rect {
	return image.Rect{XMin: 0, YMin: 0, XMax: w - 1, YMax: h - 1}
}

func TestPow2Ceil(t *testing.T) {
	cases := map[int]int{-3: 1, 0: 1, 1: 1, 2: 2, 3: 4, 8: 8, 9: 16, 100: 128}
	for in, want := range cases {
		assert.Equal(t, want, Pow2Ceil(in), "Pow2Ceil(%d)", in)
	}
}

func TestSchedule(t *testing.T) {
	assert.Equal(t, []int{1}, Schedule(1))
	assert.Equal(t, []int{1, 1}, Schedule(2))
	assert.Equal(t, []int{1, 8, 4, 2, 1}, Schedule(16))
	assert.Equal(t, []int{1, 8, 4, 2, 1}, Schedule(10))
}

func TestSeedAlpha(t *testing.T) {
	rgba := make([]uint8, 3*2*4)
	rgba[(1*3+2)*4+3] = 128
	rgba[(0*3+0)*4+3] = 127

	g := SeedAlpha(nil, rgba, 3, 2, 128)
	require.Len(t, g.Cells, 6)
	assert.Equal(t, Coord{X: 2, Y: 1}, g.At(2, 1))
	assert.False(t, g.At(0, 0).Valid())
	assert.Equal(t, None, g.At(1, 0))
}

func TestFloodSingleSeedReachesEveryCell(t *testing.T) {
	const w, h = 16, 16
	pool := parallel.NewWorkerPool(4)
	defer pool.Close()

	seed := Seed(pool, w, h, func(x, y int) bool { return x == 5 && y == 9 })
	out := Flood(pool, seed, full(w, h), 16)

	for y := range h {
		for x := range w {
			require.Equal(t, Coord{X: 5, Y: 9}, out.At(x, y), "cell (%d, %d)", x, y)
		}
	}
	assert.Equal(t, Coord{X: 5, Y: 9}, seed.At(5, 9))
	assert.False(t, seed.At(0, 0).Valid(), "Flood modified its seed")
}

func TestFloodNoSeeds(t *testing.T) {
	seed := NewGrid(8, 8)
	out := Flood(nil, seed, full(8, 8), 8)
	for _, c := range out.Cells {
		require.False(t, c.Valid())
	}
}

func TestPassTieBreakScanOrder(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		seed := Seed(nil, 5, 1, func(x, _ int) bool { return x == 0 || x == 4 })
		out := Flood(nil, seed, full(5, 1), 2)
		assert.Equal(t, Coord{X: 0, Y: 0}, out.At(2, 0))
		assert.Equal(t, Coord{X: 4, Y: 0}, out.At(3, 0))
	})
	t.Run("vertical", func(t *testing.T) {
		seed := Seed(nil, 1, 5, func(_, y int) bool { return y == 0 || y == 4 })
		out := Flood(nil, seed, full(1, 5), 2)
		assert.Equal(t, Coord{X: 0, Y: 0}, out.At(0, 2))
		assert.Equal(t, Coord{X: 0, Y: 4}, out.At(0, 3))
	})
}

func TestPassPicksNearest(t *testing.T) {
	seed := Seed(nil, 7, 1, func(x, _ int) bool { return x == 0 || x == 6 })
	out := Flood(nil, seed, full(7, 1), 4)
	assert.Equal(t, uint16(0), out.At(1, 0).X)
	assert.Equal(t, uint16(0), out.At(2, 0).X)
	assert.Equal(t, uint16(6), out.At(4, 0).X)
	assert.Equal(t, uint16(6), out.At(5, 0).X)
}

func TestFloodRestrictedToRect(t *testing.T) {
	const w, h = 10, 10
	seed := Seed(nil, w, h, func(x, y int) bool { return x == 4 && y == 4 })
	r := image.Rect{XMin: 2, YMin: 2, XMax: 6, YMax: 6}
	out := Flood(nil, seed, r, 4)

	for y := range h {
		for x := range w {
			inside := x >= r.XMin && x <= r.XMax && y >= r.YMin && y <= r.YMax
			assert.Equal(t, inside, out.At(x, y).Valid(), "cell (%d, %d)", x, y)
		}
	}
}

func TestCoordDist(t *testing.T) {
	c := Coord{X: 3, Y: 4}
	assert.Equal(t, float32(25), c.DistSq(0, 0))
	assert.InDelta(t, 5, c.Dist(0, 0), 1e-6)
}
