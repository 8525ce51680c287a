package main

import (
	"image"

	eb "github.com/hajimehoshi/ebiten/v2"

	"blocksketch/geom"
)

func CursorFPt() geom.FPoint {
	mx, my := eb.CursorPosition()
	return geom.FPt(f64(mx), f64(my))
}

// World space has origin at the center of the screen and y axis pointing up.

func WorldToScreen(pt geom.FPoint, screenW, screenH float64) geom.FPoint {
	return geom.FPt(screenW*0.5+pt.X, screenH*0.5-pt.Y)
}

func ScreenToWorld(pt geom.FPoint, screenW, screenH float64) geom.FPoint {
	return geom.FPt(pt.X-screenW*0.5, screenH*0.5-pt.Y)
}

func ImageSizeF(img image.Image) (float64, float64) {
	return f64(img.Bounds().Dx()), f64(img.Bounds().Dy())
}
