package core

import (
	"fmt"
	"image/color"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Hosts map it to ANSI 256-color codes or RGB values.
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
	ColorOrange
	ColorGray
)

var colorNames = map[string]Color{
	"default": ColorDefault,
	"red":     ColorRed,
	"green":   ColorGreen,
	"yellow":  ColorYellow,
	"blue":    ColorBlue,
	"magenta": ColorMagenta,
	"cyan":    ColorCyan,
	"white":   ColorWhite,
	"orange":  ColorOrange,
	"gray":    ColorGray,
	"grey":    ColorGray,
}

// ParseColor resolves a color name as written in config files.
func ParseColor(name string) (Color, error) {
	c, ok := colorNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return ColorDefault, fmt.Errorf("core: unknown color %q", name)
	}
	return c, nil
}

// ANSI returns the ANSI 256-color code for the color, or "" for the terminal default.
func (c Color) ANSI() string {
	switch c {
	case ColorRed:
		return "9"
	case ColorGreen:
		return "10"
	case ColorYellow:
		return "11"
	case ColorBlue:
		return "12"
	case ColorMagenta:
		return "13"
	case ColorCyan:
		return "14"
	case ColorWhite:
		return "15"
	case ColorOrange:
		return "208"
	case ColorGray:
		return "245"
	default:
		return ""
	}
}

// Colors returns every predefined color in declaration order.
func Colors() []Color {
	return []Color{
		ColorDefault, ColorRed, ColorGreen, ColorYellow, ColorBlue,
		ColorMagenta, ColorCyan, ColorWhite, ColorOrange, ColorGray,
	}
}

// RGB returns the color for pixel hosts. The default color is light gray.
func (c Color) RGB() color.RGBA {
	switch c {
	case ColorRed:
		return color.RGBA{R: 230, G: 41, B: 55, A: 255}
	case ColorGreen:
		return color.RGBA{R: 0, G: 228, B: 48, A: 255}
	case ColorYellow:
		return color.RGBA{R: 253, G: 249, B: 0, A: 255}
	case ColorBlue:
		return color.RGBA{R: 0, G: 121, B: 241, A: 255}
	case ColorMagenta:
		return color.RGBA{R: 255, G: 0, B: 255, A: 255}
	case ColorCyan:
		return color.RGBA{R: 0, G: 228, B: 228, A: 255}
	case ColorWhite:
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	case ColorOrange:
		return color.RGBA{R: 255, G: 161, B: 0, A: 255}
	case ColorGray:
		return color.RGBA{R: 130, G: 130, B: 130, A: 255}
	default:
		return color.RGBA{R: 200, G: 200, B: 200, A: 255}
	}
}
