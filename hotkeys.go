package main

import (
	eb "github.com/hajimehoshi/ebiten/v2"
)

const (
	ShowDebugConsoleKey = eb.KeyF1

	LoadColorTableKey eb.Key = eb.KeyF9
	SaveColorTableKey eb.Key = eb.KeyF10

	ResetSceneKey eb.Key = eb.KeyR

	ToggleAntiAliasKey eb.Key = eb.KeyA

	ScreenshotKey eb.Key = eb.KeyP
)
