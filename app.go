package main

import (
	"fmt"
	"math/rand/v2"

	eb "github.com/hajimehoshi/ebiten/v2"

	"blocksketch/scene"
)

type App struct {
	Scene *scene.Scene
	Rng   *rand.Rand

	ShowDebugConsole bool

	takeScreenshot bool
}

func NewApp(variant scene.Variant, seed uint64) *App {
	a := new(App)
	a.Rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	a.Scene = scene.NewScene(variant, a.Rng)
	return a
}

func (a *App) Update() error {
	ClearDebugMsgs()

	// ==========================
	// update global timer
	// ==========================
	UpdateGlobalTimer()

	fpsStr := fmt.Sprintf("%.2f", eb.ActualFPS())
	tpsStr := fmt.Sprintf("%.2f", eb.ActualTPS())

	// ==========================
	// update windows title
	// ==========================
	eb.SetWindowTitle("Blocks FPS: " + fpsStr + " TPS: " + tpsStr)

	// ==========================
	// DebugPrint
	// ==========================
	DebugPrint("FPS", fpsStr)
	DebugPrint("TPS", tpsStr)
	DebugPrint("variant", a.Scene.Variant.Name)
	DebugPrint("blocks", len(a.Scene.Blocks))
	DebugPrint("antialias", IsAntiAliasOn())
	DebugPrint("time", GlobalTimerNow())

	// ==========================
	// hotkeys
	// ==========================
	if IsKeyJustPressed(ShowDebugConsoleKey) {
		a.ShowDebugConsole = !a.ShowDebugConsole
	}

	if IsKeyJustPressed(ResetSceneKey) {
		a.Scene = scene.NewScene(a.Scene.Variant, a.Rng)
	}

	if IsKeyJustPressed(ToggleAntiAliasKey) {
		ToggleAntiAlias()
	}

	if IsKeyJustPressed(SaveColorTableKey) {
		SaveColorTable()
	}

	if IsKeyJustPressed(LoadColorTableKey) {
		LoadColorTable()
	}

	if ScreenshotEnabled && IsKeyJustPressed(ScreenshotKey) {
		a.takeScreenshot = true
	}

	// ==========================
	// update scene
	// ==========================
	mouse := MouseInWorld()
	DebugPrintf("mouse", "%.1f, %.1f", mouse.Pos.X, mouse.Pos.Y)

	a.Scene.Update(UpdateDelta().Seconds(), mouse, a.Rng)

	return nil
}

func (a *App) Draw(dst *eb.Image) {
	DrawScene(dst, a.Scene)

	if a.takeScreenshot {
		a.takeScreenshot = false

		if name, err := TakeScreenshot(dst); err != nil {
			ErrorLogger.Printf("failed to take screenshot: %v", err)
		} else {
			InfoLogger.Printf("saved screenshot %s", name)
		}
	}

	if a.ShowDebugConsole {
		DrawDebugMsgs(dst)
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	ScreenWidth = f64(outsideWidth)
	ScreenHeight = f64(outsideHeight)

	return outsideWidth, outsideHeight
}
