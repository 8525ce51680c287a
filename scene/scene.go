package scene

import (
	"math/rand/v2"

	"blocksketch/geom"
)

// Variant holds hard coded constants of a sketch.
//
// Ranges with "PerSec" are multiplied by elapsed time on every update.
type Variant struct {
	Name string

	BlockCount int

	// random half of the blocks spawn in
	// [-SpawnCoord, SpawnCoord] and [-SpawnSize, SpawnSize]
	SpawnCoord float64
	SpawnSize  float64

	Colored bool

	CoordJitterPerSec float64
	SizeJitterPerSec  float64

	FollowMouse bool
	// mouse force is picked from [0, MoveMultPerSec]
	MoveMultPerSec float64
	// blocks closer than this are pushed away while left button is down
	RepelRadius float64
}

var VariantColored = Variant{
	Name: "colored",

	BlockCount: 100,

	SpawnCoord: 300,
	SpawnSize:  50,

	Colored: true,

	CoordJitterPerSec: 100,
	SizeJitterPerSec:  30,

	FollowMouse:    true,
	MoveMultPerSec: 200,
	RepelRadius:    100,
}

var VariantMono = Variant{
	Name: "mono",

	BlockCount: 20,

	SpawnCoord: 300,
	SpawnSize:  50,

	CoordJitterPerSec: 50,
	SizeJitterPerSec:  15,
}

var Variants = []Variant{
	VariantColored,
	VariantMono,
}

func VariantByName(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// Mouse is a snapshot of mouse in world space.
type Mouse struct {
	Pos        geom.FPoint
	LeftDown   bool
	OverWindow bool
}

type Scene struct {
	Variant Variant
	Blocks  []Block
}

// RandRange returns random number in [lo, hi).
func RandRange(rng *rand.Rand, lo, hi float64) float64 {
	return geom.Lerp(lo, hi, rng.Float64())
}

func randColor(rng *rand.Rand) RGB {
	return RGB{
		R: RandRange(rng, 0, 1),
		G: RandRange(rng, 0, 1),
		B: RandRange(rng, 0, 1),
	}
}

func NewScene(v Variant, rng *rand.Rand) *Scene {
	s := &Scene{
		Variant: v,
		Blocks:  make([]Block, 0, v.BlockCount),
	}

	newBlock := func(pos, size geom.FPoint) Block {
		if v.Colored {
			return NewColoredBlock(pos, size, randColor(rng))
		}
		return NewBlock(pos, size)
	}

	half := v.BlockCount / 2

	// blocks on a diagonal that grow with index
	for i := 0; i < half; i++ {
		fi := float64(i)
		s.Blocks = append(s.Blocks, newBlock(
			geom.FPt(fi*20, fi*10.5),
			geom.FPt(10+fi*3, 7+fi*4),
		))
	}

	for i := half; i < v.BlockCount; i++ {
		pos := geom.FPt(
			RandRange(rng, -v.SpawnCoord, v.SpawnCoord),
			RandRange(rng, -v.SpawnCoord, v.SpawnCoord),
		)
		size := geom.FPt(
			RandRange(rng, -v.SpawnSize, v.SpawnSize),
			RandRange(rng, -v.SpawnSize, v.SpawnSize),
		)
		s.Blocks = append(s.Blocks, newBlock(pos, size))
	}

	return s
}

// Update moves every block by one frame.
// dt is elapsed time since last frame in seconds.
func (s *Scene) Update(dt float64, mouse Mouse, rng *rand.Rand) {
	v := s.Variant

	for i := range s.Blocks {
		b := &s.Blocks[i]

		// jitter around
		b.Pos.X += RandRange(rng, -v.CoordJitterPerSec, v.CoordJitterPerSec) * dt
		b.Pos.Y += RandRange(rng, -v.CoordJitterPerSec, v.CoordJitterPerSec) * dt
		b.Size.X += RandRange(rng, -v.SizeJitterPerSec, v.SizeJitterPerSec) * dt
		b.Size.Y += RandRange(rng, -v.SizeJitterPerSec, v.SizeJitterPerSec) * dt

		if v.FollowMouse && mouse.OverWindow {
			b.Pos = b.Pos.Add(s.MouseForce(*b, dt, mouse, rng))
		}
	}
}

// MouseForce returns displacement that pulls block towards the mouse.
// If left button is down and block is within RepelRadius,
// block gets pushed away instead.
func (s *Scene) MouseForce(b Block, dt float64, mouse Mouse, rng *rand.Rand) geom.FPoint {
	mult := RandRange(rng, 0, s.Variant.MoveMultPerSec) * dt

	if mouse.LeftDown && b.Pos.Distance(mouse.Pos) < s.Variant.RepelRadius {
		mult = -mult
	}

	return geom.FPt(
		geom.Signum(mouse.Pos.X-b.Pos.X)*mult,
		geom.Signum(mouse.Pos.Y-b.Pos.Y)*mult,
	)
}
