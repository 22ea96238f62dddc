package core

// Color represents a foreground color for a screen cell.
// The platform maps it to ANSI 256-color codes.
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
	ColorPink
	ColorPeach
	ColorMint
	ColorLightCyan
	ColorLavender
	ColorLightBlue
	ColorRose
	ColorOrange
	ColorGray
)

// BrickPalette holds the per-row brick colors, cycled by row index.
var BrickPalette = []Color{
	ColorPink,
	ColorPeach,
	ColorMint,
	ColorLightCyan,
	ColorLavender,
	ColorLightBlue,
	ColorRose,
}
