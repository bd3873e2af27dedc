package core

// Color represents a foreground color for a game pixel.
// Mapped to ANSI 256-color codes by the platform renderer.
// The zero value means "no pixel" on the raster canvas.
type Color uint8

// Predefined colors for game elements.
const (
	ColorNone Color = iota
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
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)
