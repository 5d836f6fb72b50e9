// ABOUTME: Screen composes a full frame (hide cursor, redraw rows, place cursor, show cursor)
// ABOUTME: and flushes it with a single write; the welcome row is centred at one third height

package tui

import (
	"fmt"
	"io"

	"github.com/mauromedda/ntext/pkg/tui/terminal"
	"github.com/mauromedda/ntext/pkg/tui/width"
)

// EmptyRowMarker is drawn at the start of rows past the end of the text.
const EmptyRowMarker = "~"

// Frame is everything a redraw needs. Cursor coordinates are 0-indexed.
type Frame struct {
	Rows      int
	Cols      int
	CursorRow int
	CursorCol int
	Welcome   string
}

// Screen renders frames to a terminal.
type Screen struct {
	out      io.Writer
	maxFrame int
}

// NewScreen returns a Screen writing to out.
func NewScreen(out io.Writer) *Screen {
	return &Screen{out: out, maxFrame: DefaultMaxFrameBytes}
}

// SetMaxFrameBytes caps the size of one frame.
func (s *Screen) SetMaxFrameBytes(n int) {
	s.maxFrame = n
}

// Refresh draws f. A write failure is returned as is. If the frame hit
// the size cap it is still flushed, truncated, and ErrFrameTooLarge is
// returned so the caller can decide to carry on.
func (s *Screen) Refresh(f Frame) error {
	buf := AcquireBuffer()
	defer buf.Release()
	buf.SetLimit(s.maxFrame)

	composeErr := ComposeFrame(buf, f)
	if err := buf.Flush(s.out); err != nil {
		return err
	}
	if composeErr != nil {
		return fmt.Errorf("%d bytes dropped: %w", buf.Dropped(), composeErr)
	}
	return nil
}

// ComposeFrame appends the frame for f to b. Sequences that do not fit
// are dropped; the first such failure is returned after composition
// finishes.
func ComposeFrame(b *RenderBuffer, f Frame) error {
	var firstErr error
	add := func(s string) {
		if err := b.AppendString(s); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	add(terminal.HideCursor)
	add(terminal.CursorHome)

	welcomeRow := f.Rows / 3
	for y := 0; y < f.Rows; y++ {
		if y == welcomeRow {
			add(WelcomeLine(f.Welcome, f.Cols))
		} else {
			add(EmptyRowMarker)
		}
		add(terminal.ClearLineRight)
		if y < f.Rows-1 {
			add("\r\n")
		}
	}

	add(string(terminal.AppendCursorPosition(nil, f.CursorRow, f.CursorCol)))
	add(terminal.ShowCursor)

	return firstErr
}

// WelcomeLine centres msg in cols cells. The message is cut to fit; the
// first padding cell carries the empty-row marker.
func WelcomeLine(msg string, cols int) string {
	text := width.Truncate(msg, cols)
	padding := (cols - width.Cells(text)) / 2

	line := make([]byte, 0, max(padding, 0)+len(text))
	if padding > 0 {
		line = append(line, EmptyRowMarker...)
		padding--
	}
	for ; padding > 0; padding-- {
		line = append(line, ' ')
	}
	return string(append(line, text...))
}
