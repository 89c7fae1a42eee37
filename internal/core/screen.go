package core

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Cell is one character position on the screen. A double-width rune
// occupies its own cell and the next one, which holds Rune 0.
type Cell struct {
	Rune  rune
	Color Color
}

// Continuation reports whether the cell is the right half of a wide rune.
func (c Cell) Continuation() bool {
	return c.Rune == 0
}

var blankCell = Cell{Rune: ' ', Color: ColorDefault}

// Ambiguous-width runes (box drawing, blocks) count as one column, the way
// lipgloss measures them.
var widths = &runewidth.Condition{EastAsianWidth: false}

// TextWidth returns the number of terminal columns text occupies.
func TextWidth(text string) int {
	return widths.StringWidth(text)
}

// Screen is a 2D character buffer for rendering the runner.
// It decouples rendering from the terminal: the simulation draws runes and
// colors here and the platform turns the buffer into styled output.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the screen dimensions. Content is discarded; the next frame
// redraws everything anyway.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the entire screen with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blankCell
		}
	}
}

// Set places an uncolored rune at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	s.SetColored(x, y, r, ColorDefault)
}

// SetColored places a single-width rune with a color at the given position.
func (s *Screen) SetColored(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.release(x, y)
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// setWide places a double-width rune on (x, y) and (x+1, y). A rune cut
// by either edge is drawn as spaces.
func (s *Screen) setWide(x, y int, r rune, c Color) {
	if x < 0 || x+1 >= s.width {
		s.SetColored(x, y, ' ', c)
		s.SetColored(x+1, y, ' ', c)
		return
	}
	s.SetColored(x, y, r, c)
	s.release(x+1, y)
	s.cells[y][x+1] = Cell{Rune: 0, Color: c}
}

// release blanks the other half of a wide rune about to be overwritten
// at (x, y), so no orphaned half is left behind.
func (s *Screen) release(x, y int) {
	row := s.cells[y]
	if row[x].Continuation() && x > 0 {
		row[x-1] = blankCell
	}
	if x+1 < s.width && row[x+1].Continuation() {
		row[x+1] = blankCell
	}
}

// Get returns the rune at the given position, or space when out of bounds.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// GetCell returns the cell at the given position, or a blank cell when out of bounds.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return blankCell
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y).
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	s.DrawTextColored(x, y, text, ColorDefault)
}

// DrawTextColored writes a colored string horizontally starting at (x, y).
// Each rune advances by its display width; zero-width runes are dropped.
func (s *Screen) DrawTextColored(x, y int, text string, c Color) {
	if y < 0 || y >= s.height {
		return
	}
	for _, r := range text {
		switch widths.RuneWidth(r) {
		case 0:
			continue
		case 2:
			s.setWide(x, y, r, c)
			x += 2
		default:
			s.SetColored(x, y, r, c)
			x++
		}
	}
}

// DrawTextCentered draws text centered horizontally at the given y position.
func (s *Screen) DrawTextCentered(y int, text string) {
	x := (s.width - TextWidth(text)) / 2
	s.DrawText(x, y, text)
}

// DrawRect fills a rectangular area with the given rune and color.
func (s *Screen) DrawRect(r Rect, fill rune, c Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			s.SetColored(x, y, fill, c)
		}
	}
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(r Rect) {
	s.Set(r.X, r.Y, '┌')
	s.Set(r.Right()-1, r.Y, '┐')
	s.Set(r.X, r.Bottom()-1, '└')
	s.Set(r.Right()-1, r.Bottom()-1, '┘')

	for x := r.X + 1; x < r.Right()-1; x++ {
		s.Set(x, r.Y, '─')
		s.Set(x, r.Bottom()-1, '─')
	}
	for y := r.Y + 1; y < r.Bottom()-1; y++ {
		s.Set(r.X, y, '│')
		s.Set(r.Right()-1, y, '│')
	}
}

// DrawHLine draws a horizontal line from (x, y) with the given length.
func (s *Screen) DrawHLine(x, y, length int, r rune, c Color) {
	for i := 0; i < length; i++ {
		s.SetColored(x+i, y, r, c)
	}
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, c := range s.cells[y] {
			if !c.Continuation() {
				sb.WriteRune(c.Rune)
			}
		}
	}
	return sb.String()
}

// Row returns the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		if !c.Continuation() {
			sb.WriteRune(c.Rune)
		}
	}
	return sb.String()
}
