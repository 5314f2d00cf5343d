package core

import "image/color"

// Color represents a foreground color for a screen cell or a drawn shape.
// Terminal frontends map it to ANSI 256-color codes, window frontends to RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// palette holds the RGBA values used by pixel frontends.
var palette = map[Color]color.RGBA{
	ColorDefault:      {0xff, 0xff, 0xff, 0xff},
	ColorRed:          {0xf4, 0x43, 0x36, 0xff},
	ColorGreen:        {0x4c, 0xaf, 0x50, 0xff},
	ColorYellow:       {0xff, 0xeb, 0x3b, 0xff},
	ColorBlue:         {0x21, 0x96, 0xf3, 0xff},
	ColorMagenta:      {0xe9, 0x1e, 0x63, 0xff},
	ColorCyan:         {0x00, 0xbc, 0xd4, 0xff},
	ColorWhite:        {0xee, 0xee, 0xee, 0xff},
	ColorBrightRed:    {0xff, 0x6e, 0x6e, 0xff},
	ColorBrightGreen:  {0x8b, 0xf5, 0x8f, 0xff},
	ColorBrightYellow: {0xff, 0xf5, 0x9d, 0xff},
	ColorBrightBlue:   {0x82, 0xb1, 0xff, 0xff},
	ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
	ColorOrange:       {0xff, 0x98, 0x00, 0xff},
	ColorGray:         {0xaa, 0xaa, 0xaa, 0xff},
	ColorDarkGray:     {0x55, 0x55, 0x55, 0xff},
}

// RGBA returns the color scaled by alpha in [0, 1], premultiplied as
// image/color expects.
func (c Color) RGBA(alpha float64) color.RGBA {
	base, ok := palette[c]
	if !ok {
		base = palette[ColorDefault]
	}
	a := ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(float64(base.A) * a),
	}
}
