package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var pegColors = map[Peg]color.RGBA{
	Empty:  colornames.Gainsboro,
	White:  colornames.White,
	Red:    colornames.Red,
	Purple: colornames.Purple,
	Yellow: colornames.Yellow,
	Blue:   colornames.Blue,
	Cyan:   colornames.Cyan,
}

var keyPegColors = map[KeyPeg]color.RGBA{
	KeyEmpty: colornames.Darkgray,
	KeyWhite: colornames.White,
	KeyRed:   colornames.Red,
}

// DisplayColor maps a peg to the color it is drawn with. Pegs outside the
// palette are drawn black.
func DisplayColor(peg Peg) color.RGBA {
	if c, ok := pegColors[peg]; ok {
		return c
	}
	return colornames.Black
}

func KeyDisplayColor(key KeyPeg) color.RGBA {
	if c, ok := keyPegColors[key]; ok {
		return c
	}
	return colornames.Black
}
