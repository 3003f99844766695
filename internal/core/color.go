package core

// Color represents a foreground color for a screen cell.
// Platforms map these to terminal or RGB colors.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorOrange
	ColorBrown
)
