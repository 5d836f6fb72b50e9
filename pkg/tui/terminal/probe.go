// ABOUTME: WindowSizeProbe: ioctl size query with a cursor-position-report fallback.
// ABOUTME: The fallback parks the cursor bottom-right, asks for its position, and parses ESC[rows;colsR.

package terminal

import (
	"bytes"
	"io"
	"strconv"
)

// reportBufSize bounds how many bytes of a cursor position report are read.
const reportBufSize = 31

// Size is the visible screen geometry.
type Size struct {
	Rows int
	Cols int
	// FromReport is true when the size came from the cursor position
	// report rather than the OS query.
	FromReport bool
}

// SizeFunc asks the OS for the window size.
type SizeFunc func() (rows, cols int, err error)

// Prober determines screen geometry. Query may be nil, in which case
// only the cursor position report is used.
type Prober struct {
	Query SizeFunc
	Out   io.Writer
	In    io.Reader
}

// Probe returns the screen size. The OS answer wins when it reports a
// non-zero column count; otherwise the terminal itself is asked.
func (p *Prober) Probe() (Size, error) {
	if p.Query != nil {
		rows, cols, err := p.Query()
		if err == nil && cols != 0 {
			return Size{Rows: rows, Cols: cols}, nil
		}
	}
	return p.probeByReport()
}

func (p *Prober) probeByReport() (Size, error) {
	if _, err := io.WriteString(p.Out, CursorToCorner); err != nil {
		return Size{}, newError(KindIO, "write", err)
	}
	if _, err := io.WriteString(p.Out, RequestCursor); err != nil {
		return Size{}, newError(KindIO, "write", err)
	}

	var buf [reportBufSize]byte
	n := 0
	terminated := false
	for n < len(buf) {
		got, err := p.In.Read(buf[n : n+1])
		if err != nil && !isTimeout(err) && err != io.EOF {
			return Size{}, newError(KindIO, "read", err)
		}
		if got != 1 {
			break
		}
		n++
		if buf[n-1] == 'R' {
			terminated = true
			break
		}
	}
	if !terminated {
		return Size{}, newError(KindProbe, "cursor position report", ErrReportIncomplete)
	}

	rows, cols, err := ParseCursorReport(buf[:n])
	if err != nil {
		return Size{}, err
	}
	return Size{Rows: rows, Cols: cols, FromReport: true}, nil
}

// ParseCursorReport parses a complete ESC [ rows ; cols R response.
// Both numbers must be positive decimal integers.
func ParseCursorReport(b []byte) (rows, cols int, err error) {
	malformed := newError(KindProbe, "cursor position report", ErrReportMalformed)

	if len(b) < 2 || b[0] != 0x1b || b[1] != '[' {
		return 0, 0, malformed
	}
	body, ok := bytes.CutSuffix(b[2:], []byte{'R'})
	if !ok {
		return 0, 0, malformed
	}
	r, c, ok := bytes.Cut(body, []byte{';'})
	if !ok {
		return 0, 0, malformed
	}

	rows, ok = parsePositive(r)
	if !ok {
		return 0, 0, malformed
	}
	cols, ok = parsePositive(c)
	if !ok {
		return 0, 0, malformed
	}
	return rows, cols, nil
}

func parsePositive(b []byte) (int, bool) {
	if len(b) == 0 {
		return 0, false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(string(b))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}
