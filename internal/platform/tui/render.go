package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pixel-dash/internal/core"
	"github.com/vovakirdan/pixel-dash/internal/sprite"
)

// ansiCodes maps core.Color to ANSI 256-color codes for lipgloss.
var ansiCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// cellStyle caches lipgloss styles per (top, bottom) pixel color pair.
var cellStyle = map[[2]core.Color]lipgloss.Style{}

// styleFor builds the style matching cellRune's glyph choice: a lone bottom
// pixel renders as a lower half block, so its color is the foreground; in
// every other lit case the top pixel is the foreground and the bottom, when
// present, the background.
func styleFor(top, bottom core.Color) lipgloss.Style {
	key := [2]core.Color{top, bottom}
	if s, ok := cellStyle[key]; ok {
		return s
	}

	s := lipgloss.NewStyle()
	switch {
	case top == core.ColorNone:
		s = s.Foreground(ansiCodes[bottom])
	case bottom == core.ColorNone:
		s = s.Foreground(ansiCodes[top])
	default:
		s = s.Foreground(ansiCodes[top]).Background(ansiCodes[bottom])
	}
	cellStyle[key] = s
	return s
}

// RenderCanvas converts the pixel raster to a styled string. Each character
// cell packs two vertically stacked pixels: the upper half block glyph takes
// the top pixel as foreground and the bottom pixel as background, doubling
// the effective vertical resolution of the terminal.
//
// Adjacent cells with the same color pair are grouped into one styled run to
// keep the ANSI escape overhead down.
func RenderCanvas(c *sprite.Canvas) string {
	size := c.Size()
	rows := size.Height / 2

	var sb strings.Builder
	sb.Grow(size.Width*rows*2 + rows)

	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < size.Width {
			top := c.At(x, row*2)
			bottom := c.At(x, row*2+1)

			var run strings.Builder
			for x < size.Width && c.At(x, row*2) == top && c.At(x, row*2+1) == bottom {
				run.WriteRune(cellRune(top, bottom))
				x++
			}

			if top == core.ColorNone && bottom == core.ColorNone {
				sb.WriteString(run.String())
			} else {
				sb.WriteString(styleFor(top, bottom).Render(run.String()))
			}
		}
	}
	return sb.String()
}

// cellRune picks the glyph for a pixel pair. A lit top pixel needs the upper
// half block; a bottom-only pixel uses the lower half block so no background
// styling is needed for it when the top is dark.
func cellRune(top, bottom core.Color) rune {
	switch {
	case top == core.ColorNone && bottom == core.ColorNone:
		return ' '
	case top == core.ColorNone:
		return '▄'
	default:
		return '▀'
	}
}

// PlainCanvas renders the raster as unstyled text, one character per pixel
// pair. Used for screenshots where ANSI codes would be noise.
func PlainCanvas(c *sprite.Canvas) string {
	size := c.Size()
	rows := size.Height / 2

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < size.Width; x++ {
			sb.WriteRune(cellRune(c.At(x, row*2), c.At(x, row*2+1)))
		}
	}
	return sb.String()
}
