//go:build screenshot

package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	eb "github.com/hajimehoshi/ebiten/v2"
)

const ScreenshotEnabled = true

func init() {
	DebugPutsPersist("screenshot", "true")
}

func ImageImageFromEbImage(img *eb.Image) image.Image {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	img.ReadPixels(rgba.Pix)
	return rgba
}

func TakeScreenshot(img *eb.Image) (string, error) {
	timer := NewProfTimer("screenshot")
	defer timer.Report()

	timeStr := time.Now().Format("0102150405")

	dirPath, err := RelativePath("./")
	if err != nil {
		return "", err
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool)
	for _, entry := range entries {
		taken[entry.Name()] = true
	}

	var filename = fmt.Sprintf("blocks-%s.png", timeStr)

	for nameCounter := 2; taken[filename]; nameCounter++ {
		filename = fmt.Sprintf("blocks-%s-(%d).png", timeStr, nameCounter)
	}

	fullPath := filepath.Join(dirPath, filename)

	buffer := &bytes.Buffer{}
	err = png.Encode(buffer, ImageImageFromEbImage(img))
	if err != nil {
		return "", err
	}

	toWrite := buffer.Bytes()
	InfoLogger.Printf("bytes len : %d", len(toWrite))

	err = os.WriteFile(fullPath, toWrite, 0644)
	if err != nil {
		return "", err
	}

	return filename, nil
}
