package core

// Color represents a foreground or background color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
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
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightWhite
	ColorOrange
	ColorBrown
	ColorGray

	// Dark red backgrounds, one per heat tier.
	ColorEmber1
	ColorEmber2
	ColorEmber3
	ColorEmber4
)

// Embers lists the heat tints from coolest to hottest.
var Embers = [...]Color{ColorEmber1, ColorEmber2, ColorEmber3, ColorEmber4}
