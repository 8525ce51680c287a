package main

import (
	"encoding/json"
	"fmt"
	"image/color"
)

type ColorTableIndex int

const (
	ColorBg ColorTableIndex = iota

	// used for blocks without their own color
	ColorBlockUniform

	ColorDebugBg
	ColorDebugStroke

	ColorTableSize
)

var colorTableNames = [ColorTableSize]string{
	ColorBg:           "ColorBg",
	ColorBlockUniform: "ColorBlockUniform",
	ColorDebugBg:      "ColorDebugBg",
	ColorDebugStroke:  "ColorDebugStroke",
}

func (i ColorTableIndex) String() string {
	if 0 <= i && i < ColorTableSize {
		return colorTableNames[i]
	}
	return fmt.Sprintf("ColorTableIndex(%d)", int(i))
}

var ColorTable [ColorTableSize]color.NRGBA

func init() {
	ColorTable = DefaultColorTable()
}

func DefaultColorTable() [ColorTableSize]color.NRGBA {
	var table [ColorTableSize]color.NRGBA

	table[ColorBg] = MustParseColorString("darkgray")
	table[ColorBlockUniform] = MustParseColorString("red")

	table[ColorDebugBg] = MustParseColorString("black")
	table[ColorDebugStroke] = MustParseColorString("white")

	return table
}

// ColorTableToJson encodes table as a map of css color strings.
func ColorTableToJson(table [ColorTableSize]color.NRGBA) ([]byte, error) {
	tableMap := make(map[string]string)

	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		tableMap[i.String()] = ColorToString(table[i])
	}

	jsonBytes, err := json.MarshalIndent(tableMap, "", "    ")
	if err != nil {
		return nil, err
	}

	return jsonBytes, nil
}

// ColorTableFromJson decodes table written by ColorTableToJson.
// Colors that are missing are taken from base.
func ColorTableFromJson(
	tableJson []byte,
	base [ColorTableSize]color.NRGBA,
) ([ColorTableSize]color.NRGBA, error) {
	colorTable := base

	var tableMap map[string]string

	err := json.Unmarshal(tableJson, &tableMap)
	if err != nil {
		return colorTable, err
	}

	stringToIndex := make(map[string]int)
	for i := ColorTableIndex(0); i < ColorTableSize; i++ {
		stringToIndex[i.String()] = int(i)
	}

	for k, v := range tableMap {
		if index, ok := stringToIndex[k]; ok {
			clr, err := ParseColorString(v)
			if err != nil {
				return base, fmt.Errorf("%s: %w", k, err)
			}
			colorTable[index] = clr
		}
	}

	return colorTable, nil
}

// SaveColorTable copies current color table to the clipboard.
func SaveColorTable() {
	jsonBytes, err := ColorTableToJson(ColorTable)
	if err != nil {
		ErrorLogger.Printf("failed to save color table: %v", err)
		return
	}

	ClipboardWriteText(string(jsonBytes))
	InfoLogger.Print("copied color table to clipboard")
}

// LoadColorTable replaces current color table with the one in the clipboard.
func LoadColorTable() {
	text := ClipboardReadText()
	if text == "" {
		ErrorLogger.Print("clipboard is empty")
		return
	}

	table, err := ColorTableFromJson([]byte(text), ColorTable)
	if err != nil {
		ErrorLogger.Printf("failed to load color table: %v", err)
		return
	}

	ColorTable = table
	InfoLogger.Print("loaded color table from clipboard")
}
