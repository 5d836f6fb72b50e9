// ABOUTME: InputReader: polls a raw-mode tty for one byte at a time.
// ABOUTME: Empty reads and EAGAIN/EINTR are the configured read timeout and are retried.

package terminal

import (
	"context"
	"errors"
	"io"
	"syscall"
)

// Reader reads single bytes from a tty configured with VMIN=0, VTIME>0.
type Reader struct {
	src io.Reader
	buf [1]byte
}

// NewReader wraps src. A Read returning (0, nil) is treated as a timeout.
func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

// ReadKey blocks until one byte arrives, ctx is done, or the read fails.
// Every timeout is followed by another read; only ctx ends the wait early.
func (r *Reader) ReadKey(ctx context.Context) (byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		n, err := r.src.Read(r.buf[:])
		if n == 1 {
			return r.buf[0], nil
		}
		if err == nil || isTimeout(err) {
			continue
		}
		return 0, newError(KindIO, "read", err)
	}
}

// isTimeout reports whether err only means no data was ready yet.
func isTimeout(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR)
}
