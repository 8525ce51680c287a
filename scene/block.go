package scene

import (
	"blocksketch/geom"
)

// RGB channels are in [0, 1].
type RGB struct {
	R, G, B float64
}

type Block struct {
	// center of the block
	Pos  geom.FPoint
	Size geom.FPoint

	Color    RGB
	HasColor bool
}

func NewBlock(pos, size geom.FPoint) Block {
	return Block{
		Pos:  pos,
		Size: size,
	}
}

func NewColoredBlock(pos, size geom.FPoint, color RGB) Block {
	return Block{
		Pos:      pos,
		Size:     size,
		Color:    color,
		HasColor: true,
	}
}

// Rect returns rectangle that block covers.
// Size can drift below zero, so rect is canonicalized.
func (b Block) Rect() geom.FRectangle {
	return geom.CenterFRectangle(b.Pos.X, b.Pos.Y, b.Size.X, b.Size.Y).Canon()
}
