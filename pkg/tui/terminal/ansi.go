// ABOUTME: VT100 control sequences the editor emits and the cursor position report it parses.
// ABOUTME: Appenders build parameterised sequences without fmt so frames stay allocation-light.

package terminal

import "strconv"

// Control sequences written to the terminal. All are ESC-prefixed.
const (
	ClearScreen    = "\x1b[2J"
	CursorHome     = "\x1b[H"
	ClearLineRight = "\x1b[K"
	HideCursor     = "\x1b[?25l"
	ShowCursor     = "\x1b[?25h"
	RequestCursor  = "\x1b[6n"

	// CursorToCorner moves right then down by 999; the terminal clamps
	// the cursor to its real bottom-right cell.
	CursorToCorner = "\x1b[999C\x1b[999B"
)

// AppendCursorPosition appends ESC [ row ; col H for the 0-indexed
// (row, col). The wire form is 1-indexed.
func AppendCursorPosition(dst []byte, row, col int) []byte {
	dst = append(dst, "\x1b["...)
	dst = strconv.AppendInt(dst, int64(row+1), 10)
	dst = append(dst, ';')
	dst = strconv.AppendInt(dst, int64(col+1), 10)
	return append(dst, 'H')
}
