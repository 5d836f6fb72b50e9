// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Serves scripted input bytes, captures output, and counts writes and raw-mode transitions.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests.
// Input is consumed one byte per Read; once it runs dry Read returns io.EOF.
type VirtualTerminal struct {
	mu         sync.Mutex
	out        bytes.Buffer
	in         []byte
	rows       int
	cols       int
	rawMode    bool
	enterCount int
	exitCount  int
	writeCount int
	writeErr   error
}

// NewVirtualTerminal returns a VirtualTerminal with the given geometry.
func NewVirtualTerminal(rows, cols int) *VirtualTerminal {
	return &VirtualTerminal{
		rows: rows,
		cols: cols,
	}
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured geometry.
func (v *VirtualTerminal) Size() (Size, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return Size{Rows: v.rows, Cols: v.cols}, nil
}

// Read hands out the next scripted input byte.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(p) == 0 {
		return 0, nil
	}
	if len(v.in) == 0 {
		return 0, io.EOF
	}
	p[0] = v.in[0]
	v.in = v.in[1:]
	return 1, nil
}

// Write appends data to the output buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeCount++
	if v.writeErr != nil {
		return 0, newError(KindIO, "write", v.writeErr)
	}
	n, err := v.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input bytes for Read.
func (v *VirtualTerminal) Feed(p ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.in = append(v.in, p...)
}

// FailWrites makes every later Write return err.
func (v *VirtualTerminal) FailWrites(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.out.String()
}

// Reset clears the output buffer and the write count.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.out.Reset()
	v.writeCount = 0
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// WriteCount returns how many Write calls were made since the last Reset.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writeCount
}

// SetSize updates the geometry returned by Size.
func (v *VirtualTerminal) SetSize(rows, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rows = rows
	v.cols = cols
}
