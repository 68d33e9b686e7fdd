package core

// Color is a foreground color for a screen cell.
type Color uint8

// Palette used by the canvas and HUD.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
)

// ansi256 maps palette entries to xterm 256-color indexes.
var ansi256 = [...]int{
	ColorDefault:      -1,
	ColorRed:          1,
	ColorGreen:        2,
	ColorYellow:       3,
	ColorBlue:         4,
	ColorMagenta:      5,
	ColorCyan:         6,
	ColorBrightRed:    9,
	ColorBrightGreen:  10,
	ColorBrightYellow: 11,
	ColorBrightCyan:   14,
	ColorBrightWhite:  15,
	ColorOrange:       208,
}

// ANSI returns the xterm 256-color index of c, or -1 for the terminal default.
func (c Color) ANSI() int {
	if int(c) >= len(ansi256) {
		return -1
	}
	return ansi256[c]
}
