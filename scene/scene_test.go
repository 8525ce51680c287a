package scene

import (
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"blocksketch/geom"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func noJitter(v Variant) Variant {
	v.CoordJitterPerSec = 0
	v.SizeJitterPerSec = 0
	return v
}

func TestNewSceneGrid(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			s := NewScene(v, testRng())
			require.Len(t, s.Blocks, v.BlockCount)

			for i := 0; i < v.BlockCount/2; i++ {
				fi := float64(i)
				b := s.Blocks[i]
				require.Equal(t, geom.FPt(fi*20, fi*10.5), b.Pos, "block %d", i)
				require.Equal(t, geom.FPt(10+3*fi, 7+4*fi), b.Size, "block %d", i)
			}
		})
	}
}

func TestNewSceneRandomHalfInRange(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			rng := testRng()
			for range 50 {
				s := NewScene(v, rng)
				for _, b := range s.Blocks[v.BlockCount/2:] {
					require.GreaterOrEqual(t, b.Pos.X, -300.0)
					require.LessOrEqual(t, b.Pos.X, 300.0)
					require.GreaterOrEqual(t, b.Pos.Y, -300.0)
					require.LessOrEqual(t, b.Pos.Y, 300.0)

					require.GreaterOrEqual(t, b.Size.X, -50.0)
					require.LessOrEqual(t, b.Size.X, 50.0)
					require.GreaterOrEqual(t, b.Size.Y, -50.0)
					require.LessOrEqual(t, b.Size.Y, 50.0)
				}
			}
		})
	}
}

func TestNewSceneColors(t *testing.T) {
	colored := NewScene(VariantColored, testRng())
	for _, b := range colored.Blocks {
		require.True(t, b.HasColor)
		for _, c := range []float64{b.Color.R, b.Color.G, b.Color.B} {
			require.GreaterOrEqual(t, c, 0.0)
			require.Less(t, c, 1.0)
		}
	}

	mono := NewScene(VariantMono, testRng())
	for _, b := range mono.Blocks {
		require.False(t, b.HasColor)
	}
}

func TestUpdateDeltaBounded(t *testing.T) {
	const dt = 1.0 / 60

	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			rng := testRng()
			s := NewScene(v, rng)

			// mouse is outside of the window so only jitter applies
			mouse := Mouse{Pos: geom.FPt(0, 0), LeftDown: true}

			for range 100 {
				before := slices.Clone(s.Blocks)
				s.Update(dt, mouse, rng)

				for i, b := range s.Blocks {
					maxCoord := v.CoordJitterPerSec * dt
					maxSize := v.SizeJitterPerSec * dt

					require.LessOrEqual(t, math.Abs(b.Pos.X-before[i].Pos.X), maxCoord)
					require.LessOrEqual(t, math.Abs(b.Pos.Y-before[i].Pos.Y), maxCoord)
					require.LessOrEqual(t, math.Abs(b.Size.X-before[i].Size.X), maxSize)
					require.LessOrEqual(t, math.Abs(b.Size.Y-before[i].Size.Y), maxSize)
				}
			}
		})
	}
}

func TestUpdateDeltaBoundedWithMouse(t *testing.T) {
	const dt = 1.0 / 30

	v := VariantColored
	rng := testRng()
	s := NewScene(v, rng)

	mouse := Mouse{Pos: geom.FPt(40, -20), OverWindow: true}

	before := slices.Clone(s.Blocks)
	s.Update(dt, mouse, rng)

	maxCoord := (v.CoordJitterPerSec + v.MoveMultPerSec) * dt
	for i, b := range s.Blocks {
		require.LessOrEqual(t, math.Abs(b.Pos.X-before[i].Pos.X), maxCoord)
		require.LessOrEqual(t, math.Abs(b.Pos.Y-before[i].Pos.Y), maxCoord)
	}
}

func TestMouseRepelAndAttract(t *testing.T) {
	const dt = 1.0 / 60

	v := noJitter(VariantColored)

	mousePos := geom.FPt(0, 0)

	near := NewColoredBlock(geom.FPt(30, -40), geom.FPt(10, 10), RGB{})   // distance 50
	far := NewColoredBlock(geom.FPt(-150, 200), geom.FPt(10, 10), RGB{}) // distance 250

	type testCase struct {
		Name     string
		Block    Block
		LeftDown bool
		Repel    bool
	}

	cases := []testCase{
		{"near pressed", near, true, true},
		{"near released", near, false, false},
		{"far pressed", far, true, false},
		{"far released", far, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			rng := testRng()
			s := &Scene{Variant: v, Blocks: []Block{tc.Block}}
			mouse := Mouse{Pos: mousePos, LeftDown: tc.LeftDown, OverWindow: true}

			for range 20 {
				s.Blocks[0] = tc.Block
				s.Update(dt, mouse, rng)

				moved := s.Blocks[0].Pos.Sub(tc.Block.Pos)
				toMouse := mousePos.Sub(tc.Block.Pos)

				signX := geom.Signum(moved.X) * geom.Signum(toMouse.X)
				signY := geom.Signum(moved.Y) * geom.Signum(toMouse.Y)

				if tc.Repel {
					require.Equal(t, -1.0, signX)
					require.Equal(t, -1.0, signY)
				} else {
					require.Equal(t, 1.0, signX)
					require.Equal(t, 1.0, signY)
				}
			}
		})
	}
}

func TestMouseIgnoredWhenNotOverWindow(t *testing.T) {
	v := noJitter(VariantColored)
	rng := testRng()
	s := NewScene(v, rng)
	before := slices.Clone(s.Blocks)

	s.Update(1.0/60, Mouse{Pos: geom.FPt(500, 500)}, rng)

	require.Equal(t, before, s.Blocks)
}

func TestMonoIgnoresMouse(t *testing.T) {
	v := noJitter(VariantMono)
	rng := testRng()
	s := NewScene(v, rng)
	before := slices.Clone(s.Blocks)

	s.Update(1.0/60, Mouse{Pos: geom.FPt(500, 500), OverWindow: true}, rng)

	require.Equal(t, before, s.Blocks)
}

func TestCardinalityInvariant(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			rng := testRng()
			s := NewScene(v, rng)
			mouse := Mouse{Pos: geom.FPt(10, 10), LeftDown: true, OverWindow: true}

			for range 500 {
				s.Update(1.0/60, mouse, rng)
				require.Len(t, s.Blocks, v.BlockCount)
			}
		})
	}
}

func TestZeroDeltaKeepsScene(t *testing.T) {
	for _, v := range Variants {
		t.Run(v.Name, func(t *testing.T) {
			rng := testRng()
			s := NewScene(v, rng)
			before := slices.Clone(s.Blocks)

			mouse := Mouse{Pos: geom.FPt(20, 15), LeftDown: true, OverWindow: true}
			for range 2 {
				s.Update(0, mouse, rng)
			}

			require.Equal(t, before, s.Blocks)
		})
	}
}

func TestMouseForceZeroDelta(t *testing.T) {
	s := &Scene{Variant: VariantColored}
	b := NewColoredBlock(geom.FPt(5, 5), geom.FPt(1, 1), RGB{})

	force := s.MouseForce(b, 0, Mouse{Pos: geom.FPt(0, 0), LeftDown: true, OverWindow: true}, testRng())

	require.Zero(t, force.X)
	require.Zero(t, force.Y)
}

func TestBlockRectNegativeSize(t *testing.T) {
	b := NewBlock(geom.FPt(10, 20), geom.FPt(-4, 6))
	r := b.Rect()

	require.Equal(t, geom.FRect(8, 17, 12, 23), r)
}

func TestVariantByName(t *testing.T) {
	v, ok := VariantByName("mono")
	require.True(t, ok)
	require.Equal(t, 20, v.BlockCount)

	_, ok = VariantByName("nope")
	require.False(t, ok)
}
