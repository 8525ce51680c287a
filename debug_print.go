package main

import (
	"fmt"
	"strings"

	eb "github.com/hajimehoshi/ebiten/v2"
	ebu "github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"blocksketch/geom"
)

type DebugMsg struct {
	Key   string
	Value string
}

var TheDebugPrintManager struct {
	DebugMsgs           []DebugMsg
	PersistentDebugMsgs []DebugMsg

	builder strings.Builder
}

func DebugPrintf(key, fmtStr string, values ...any) {
	DebugPuts(key, fmt.Sprintf(fmtStr, values...))
}

func DebugPrint(key string, values ...any) {
	DebugPuts(key, fmt.Sprint(values...))
}

func DebugPuts(key, value string) {
	dm := &TheDebugPrintManager
	dm.DebugMsgs = putDebugMsg(dm.DebugMsgs, key, value)
}

func DebugPrintPersist(key string, values ...any) {
	DebugPutsPersist(key, fmt.Sprint(values...))
}

func DebugPutsPersist(key, value string) {
	dm := &TheDebugPrintManager
	dm.PersistentDebugMsgs = putDebugMsg(dm.PersistentDebugMsgs, key, value)
}

func putDebugMsg(msgs []DebugMsg, key, value string) []DebugMsg {
	for i, msg := range msgs {
		if msg.Key == key {
			msgs[i].Value = value
			return msgs
		}
	}

	return append(msgs, DebugMsg{
		Key:   key,
		Value: value,
	})
}

// DebugMsgsText joins every message into "key: value" lines,
// persistent messages first.
func DebugMsgsText() string {
	dm := &TheDebugPrintManager

	dm.builder.Reset()

	total := len(dm.PersistentDebugMsgs) + len(dm.DebugMsgs)
	msgCounter := 0

	for _, msgs := range [][]DebugMsg{dm.PersistentDebugMsgs, dm.DebugMsgs} {
		for _, msg := range msgs {
			// builder doesn't actually errors out
			// no need to check error
			dm.builder.WriteString(msg.Key)
			dm.builder.WriteString(": ")
			dm.builder.WriteString(msg.Value)

			msgCounter++
			if msgCounter != total {
				dm.builder.WriteString("\n")
			}
		}
	}

	return dm.builder.String()
}

func DrawDebugMsgs(dst *eb.Image) {
	// size of ebitenutil debug font glyph
	const glyphW = 6
	const glyphH = 16

	const hozMargin = 5
	const vertMargin = 5

	text := DebugMsgsText()
	if text == "" {
		return
	}

	lines := strings.Split(text, "\n")
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := f64(maxLen*glyphW) + hozMargin*2
	boxH := f64(len(lines)*glyphH) + vertMargin*2

	dstW, dstH := ImageSizeF(dst)

	rect := geom.FRect(dstW-boxW, dstH-boxH, dstW, dstH)

	// draw background
	FillRect(dst, rect, ColorTable[ColorDebugStroke])
	FillRect(dst, rect.Inset(2), ColorTable[ColorDebugBg])

	ebu.DebugPrintAt(dst, text, int(rect.Min.X+hozMargin), int(rect.Min.Y+vertMargin))
}

func ClearDebugMsgs() {
	dm := &TheDebugPrintManager

	dm.DebugMsgs = dm.DebugMsgs[:0]
}
