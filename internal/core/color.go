package core

import "image/color"

// Color is a palette tag attached to screen cells and particles.
// Terminal hosts map it to ANSI 256-color codes, graphical hosts to RGBA.
type Color uint8

// Palette entries used by the runner and its hosts.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightCyan
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default":       ColorDefault,
	"red":           ColorRed,
	"green":         ColorGreen,
	"yellow":        ColorYellow,
	"cyan":          ColorCyan,
	"white":         ColorWhite,
	"bright_red":    ColorBrightRed,
	"bright_yellow": ColorBrightYellow,
	"bright_cyan":   ColorBrightCyan,
	"orange":        ColorOrange,
	"gray":          ColorGray,
}

// ParseColor resolves a palette name such as "orange" or "bright_cyan".
func ParseColor(name string) (Color, bool) {
	c, ok := colorNames[name]
	return c, ok
}

var colorRGBA = map[Color]color.RGBA{
	ColorDefault:      {220, 220, 220, 255},
	ColorRed:          {205, 49, 49, 255},
	ColorGreen:        {64, 160, 80, 255},
	ColorYellow:       {229, 192, 60, 255},
	ColorCyan:         {17, 168, 205, 255},
	ColorWhite:        {229, 229, 229, 255},
	ColorBrightRed:    {241, 76, 76, 255},
	ColorBrightYellow: {245, 245, 67, 255},
	ColorBrightCyan:   {41, 232, 255, 255},
	ColorOrange:       {255, 135, 0, 255},
	ColorGray:         {138, 138, 138, 255},
}

// ToRGBA returns the opaque RGBA value graphical hosts draw the color with.
func (c Color) ToRGBA() color.RGBA {
	if v, ok := colorRGBA[c]; ok {
		return v
	}
	return colorRGBA[ColorDefault]
}

// Fade scales an opaque color by alpha in [0, 1], keeping it premultiplied.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	a := ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
