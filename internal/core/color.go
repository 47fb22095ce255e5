package core

// Color represents a palette entry for a screen cell.
// Values map to ANSI 16-color codes plus a few 256-color extras in the renderer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
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
	ColorGray
)

// Style is the foreground, background and emphasis of a cell.
// The zero value is the terminal's normal style.
type Style struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// Emphasized returns s with bold enabled.
func (s Style) Emphasized() Style {
	s.Bold = true
	return s
}
