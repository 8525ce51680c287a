//go:build !screenshot

package main

import (
	"errors"

	eb "github.com/hajimehoshi/ebiten/v2"
)

const ScreenshotEnabled = false

func TakeScreenshot(img *eb.Image) (string, error) {
	return "", errors.New("screenshot is not enabled, rebuild with screenshot tag")
}
