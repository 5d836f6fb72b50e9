// ABOUTME: EditorState: cursor position and screen geometry for one editing session
// ABOUTME: Geometry is fixed at construction; only the input processor moves the cursor

package editor

// State is the editor's mutable state. It is created once the terminal
// is in raw mode and its size is known, then passed by pointer to the
// renderer and the input processor.
type State struct {
	CursorRow  int
	CursorCol  int
	ScreenRows int
	ScreenCols int
}

// NewState returns a State for a rows x cols screen with the cursor at
// the top-left cell.
func NewState(rows, cols int) *State {
	return &State{ScreenRows: rows, ScreenCols: cols}
}

// Move shifts the cursor by (dRow, dCol). When clamp is set the cursor
// stays inside the screen; otherwise it moves freely, past zero too.
func (s *State) Move(dRow, dCol int, clamp bool) {
	s.CursorRow += dRow
	s.CursorCol += dCol
	if clamp {
		s.CursorRow = clampIndex(s.CursorRow, s.ScreenRows)
		s.CursorCol = clampIndex(s.CursorCol, s.ScreenCols)
	}
}

// clampIndex bounds v to [0, n-1]; for an empty axis it returns 0.
func clampIndex(v, n int) int {
	if v >= n {
		v = n - 1
	}
	if v < 0 {
		v = 0
	}
	return v
}
