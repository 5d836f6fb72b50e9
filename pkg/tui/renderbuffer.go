// ABOUTME: Pooled append-only frame buffer; one Flush is one write to the terminal
// ABOUTME: Appends past the frame cap are dropped and reported so a frame degrades instead of failing

package tui

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// DefaultMaxFrameBytes caps a single frame.
const DefaultMaxFrameBytes = 1 << 20

// ErrFrameTooLarge is returned by Append when the frame cap would be
// exceeded. The bytes are dropped; the buffer keeps what it had.
var ErrFrameTooLarge = errors.New("frame exceeds size limit")

var bufferPool = sync.Pool{
	New: func() any {
		return &RenderBuffer{
			buf: make([]byte, 0, 4096),
		}
	},
}

// AcquireBuffer gets an empty RenderBuffer from the pool.
func AcquireBuffer() *RenderBuffer {
	b := bufferPool.Get().(*RenderBuffer)
	b.reset()
	return b
}

// RenderBuffer assembles one frame. It has no read API: bytes go in
// through Append and leave through Flush.
type RenderBuffer struct {
	buf     []byte
	limit   int
	dropped int
}

// SetLimit changes the frame cap for this buffer.
func (b *RenderBuffer) SetLimit(n int) {
	b.limit = n
}

// Append adds p to the frame.
func (b *RenderBuffer) Append(p []byte) error {
	if len(b.buf)+len(p) > b.limit {
		b.dropped += len(p)
		return ErrFrameTooLarge
	}
	b.buf = append(b.buf, p...)
	return nil
}

// AppendString adds s to the frame.
func (b *RenderBuffer) AppendString(s string) error {
	if len(b.buf)+len(s) > b.limit {
		b.dropped += len(s)
		return ErrFrameTooLarge
	}
	b.buf = append(b.buf, s...)
	return nil
}

// Len returns the number of bytes held.
func (b *RenderBuffer) Len() int {
	return len(b.buf)
}

// Dropped returns how many bytes were refused since the buffer was acquired.
func (b *RenderBuffer) Dropped() int {
	return b.dropped
}

// Flush writes the whole frame to w in exactly one Write call.
func (b *RenderBuffer) Flush(w io.Writer) error {
	n, err := w.Write(b.buf)
	if err != nil {
		return fmt.Errorf("flushing frame: %w", err)
	}
	if n != len(b.buf) {
		return fmt.Errorf("flushing frame: %w", io.ErrShortWrite)
	}
	return nil
}

// Release returns the buffer to the pool. b must not be used afterwards.
func (b *RenderBuffer) Release() {
	if b == nil {
		return
	}
	b.reset()
	bufferPool.Put(b)
}

func (b *RenderBuffer) reset() {
	b.buf = b.buf[:0]
	b.limit = DefaultMaxFrameBytes
	b.dropped = 0
}
