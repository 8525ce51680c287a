package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
	ebi "github.com/hajimehoshi/ebiten/v2/inpututil"

	"blocksketch/geom"
	"blocksketch/scene"
)

func IsMouseButtonPressed(button eb.MouseButton) bool {
	return eb.IsMouseButtonPressed(button)
}

func IsKeyJustPressed(key eb.Key) bool {
	return ebi.IsKeyJustPressed(key)
}

// IsCursorOverWindow reports whether cursor is inside of focused window.
//
// ebiten keeps reporting last known cursor position when cursor leaves the window,
// so we check bounds ourselves.
func IsCursorOverWindow() bool {
	if !eb.IsFocused() {
		return false
	}
	return CursorFPt().In(geom.FRectWH(ScreenWidth, ScreenHeight))
}

// MouseInWorld takes a snapshot of the mouse in world space.
func MouseInWorld() scene.Mouse {
	return scene.Mouse{
		Pos:        ScreenToWorld(CursorFPt(), ScreenWidth, ScreenHeight),
		LeftDown:   IsMouseButtonPressed(eb.MouseButtonLeft),
		OverWindow: IsCursorOverWindow(),
	}
}
