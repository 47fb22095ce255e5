package core

import (
	"strings"
)

// Cell is a single character position on the screen.
type Cell struct {
	Rune  rune
	Style Style
}

var blank = Cell{Rune: ' '}

// Screen is a character grid that games draw into. The platform turns it
// into terminal output, so games never touch the terminal themselves.
// Writes outside the grid are dropped and reads outside it yield a blank.
type Screen struct {
	width, height int
	cells         []Cell // row-major
}

// NewScreen returns a blank screen of the given size.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.Resize(width, height)
	return s
}

// Width returns the screen width in cells.
func (s *Screen) Width() int { return s.width }

// Height returns the screen height in cells.
func (s *Screen) Height() int { return s.height }

// Resize changes the dimensions and blanks the screen. Resizing to the
// current size keeps the content.
func (s *Screen) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if s.cells != nil && width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.cells = make([]Cell, width*height)
	s.Clear()
}

// Clear blanks every cell, style included.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = blank
	}
}

func (s *Screen) index(x, y int) (int, bool) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return 0, false
	}
	return y*s.width + x, true
}

// Set writes an unstyled rune.
func (s *Screen) Set(x, y int, r rune) {
	s.SetStyled(x, y, r, Style{})
}

// SetStyled writes a rune with a style.
func (s *Screen) SetStyled(x, y int, r rune, st Style) {
	if i, ok := s.index(x, y); ok {
		s.cells[i] = Cell{Rune: r, Style: st}
	}
}

// Get returns the rune at (x, y).
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at (x, y).
func (s *Screen) GetCell(x, y int) Cell {
	if i, ok := s.index(x, y); ok {
		return s.cells[i]
	}
	return blank
}

// DrawText writes text left to right from (x, y), one rune per cell.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawStyledText(x, y, text, Style{})
}

// DrawStyledText is DrawText with a style.
func (s *Screen) DrawStyledText(x, y int, text string, st Style) {
	for _, r := range text {
		s.SetStyled(x, y, r, st)
		x++
	}
}

// DrawRect fills r with fill.
func (s *Screen) DrawRect(r Rect, fill rune, st Style) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetStyled(x, y, fill, st)
		}
	}
}

// DrawHLine draws length copies of r rightwards from (x, y).
func (s *Screen) DrawHLine(x, y, length int, r rune) {
	s.DrawRect(NewRect(x, y, length, 1), r, Style{})
}

// DrawVLine draws length copies of r downwards from (x, y).
func (s *Screen) DrawVLine(x, y, length int, r rune) {
	s.DrawRect(NewRect(x, y, 1, length), r, Style{})
}

// String returns the screen as plain text, one line per row.
func (s *Screen) String() string {
	lines := make([]string, s.height)
	for y := range lines {
		lines[y] = s.Row(y)
	}
	return strings.Join(lines, "\n")
}

// Row returns row y as plain text; a row outside the screen is blank.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	sb.Grow(s.width)
	for _, c := range s.cells[y*s.width : (y+1)*s.width] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
