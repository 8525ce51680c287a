package main

import (
	"fmt"
	"image/color"

	css "github.com/mazznoer/csscolorparser"

	"blocksketch/geom"
	"blocksketch/scene"
)

func ColorToNRGBA(clr color.Color) color.NRGBA {
	if clr == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(clr).(color.NRGBA)
}

// ColorFromRGB converts block color to opaque NRGBA.
func ColorFromRGB(c scene.RGB) color.NRGBA {
	r := geom.Clamp(c.R, 0, 1)
	g := geom.Clamp(c.G, 0, 1)
	b := geom.Clamp(c.B, 0, 1)

	return color.NRGBA{uint8(r * 255), uint8(g * 255), uint8(b * 255), 255}
}

func ColorToString(clr color.Color) string {
	c := ColorToNRGBA(clr)
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// ParseColorString parses any css color string like "red", "#FF000080" or "rgb(10, 20, 30)".
func ParseColorString(str string) (color.NRGBA, error) {
	c, err := css.Parse(str)

	if err != nil {
		return color.NRGBA{}, err
	}

	nrgba := color.NRGBA{
		R: uint8(255 * c.R),
		G: uint8(255 * c.G),
		B: uint8(255 * c.B),
		A: uint8(255 * c.A),
	}

	return nrgba, nil
}

func MustParseColorString(str string) color.NRGBA {
	c, err := ParseColorString(str)
	if err != nil {
		panic(err)
	}
	return c
}
