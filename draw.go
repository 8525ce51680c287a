package main

import (
	"image/color"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebv "github.com/hajimehoshi/ebiten/v2/vector"

	"blocksketch/geom"
	"blocksketch/scene"
)

func DrawFilledRect(
	dst *eb.Image,
	rect geom.FRectangle,
	clr color.Color,
	antialias bool,
) {
	ebv.DrawFilledRect(
		dst,
		f32(rect.Min.X), f32(rect.Min.Y), f32(rect.Dx()), f32(rect.Dy()),
		clr,
		antialias,
	)
}

func FillRect(dst *eb.Image, rect geom.FRectangle, clr color.Color) {
	DrawFilledRect(dst, rect, clr, IsAntiAliasOn())
}

// BlockScreenRect returns where block is on the screen.
func BlockScreenRect(b scene.Block, screenW, screenH float64) geom.FRectangle {
	center := WorldToScreen(b.Pos, screenW, screenH)
	return geom.CenterFRectangle(center.X, center.Y, b.Size.X, b.Size.Y).Canon()
}

func BlockColor(b scene.Block) color.NRGBA {
	if b.HasColor {
		return ColorFromRGB(b.Color)
	}
	return ColorTable[ColorBlockUniform]
}

func DrawScene(dst *eb.Image, s *scene.Scene) {
	dst.Fill(ColorTable[ColorBg])

	w, h := ImageSizeF(dst)

	for _, b := range s.Blocks {
		rect := BlockScreenRect(b, w, h)
		if rect.Empty() {
			continue
		}
		FillRect(dst, rect, BlockColor(b))
	}
}
