// Package draw renders to ANSI terminals.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// MoveCursor moves cursor to a specific position (1-based).
func MoveCursor(w io.Writer, x, y int) {
	fmt.Fprintf(w, "\033[%d;%dH", y, x)
}

// Text writes s at a 1-based terminal position. Positions left of or above
// the screen are clamped to the first column or row.
func Text(w io.Writer, x, y int, s string) {
	MoveCursor(w, max(x, 1), max(y, 1))
	io.WriteString(w, s)
}

// TextCentered writes s centered on column centerX.
func TextCentered(w io.Writer, centerX, y int, s string) {
	Text(w, centerX-len([]rune(s))/2, y, s)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
