// ABOUTME: Key-code mode: echoes the decimal value of every byte a raw-mode terminal delivers
// ABOUTME: Diagnostic for finding what a key sends before binding it; 'q' exits

package keycodes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mauromedda/ntext/pkg/tui/key"
	"github.com/mauromedda/ntext/pkg/tui/terminal"
)

// QuitByte ends the session.
const QuitByte byte = 'q'

// Run enters raw mode and prints one line per input byte until QuitByte
// is read. Control bytes print as "27", printable ones as "119 ('w')".
// Output post-processing is off, so lines end in an explicit CR LF.
func Run(ctx context.Context, t terminal.Terminal) (err error) {
	if err := t.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if rerr := t.ExitRawMode(); rerr != nil && err == nil {
			err = fmt.Errorf("restoring terminal: %w", rerr)
		}
	}()

	r := terminal.NewReader(t)
	line := make([]byte, 0, 16)
	for {
		b, err := r.ReadKey(ctx)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		line = AppendLine(line[:0], b)
		if _, err := t.Write(line); err != nil {
			return fmt.Errorf("echoing key code: %w", err)
		}
		if b == QuitByte {
			return nil
		}
	}
}

// AppendLine appends the echo line for b to dst. Bytes outside
// printable ASCII are shown by value only.
func AppendLine(dst []byte, b byte) []byte {
	dst = strconv.AppendInt(dst, int64(b), 10)
	if !key.IsControl(b) && b < 0x80 {
		dst = append(dst, " ('"...)
		dst = append(dst, b)
		dst = append(dst, "')"...)
	}
	return append(dst, "\r\n"...)
}
