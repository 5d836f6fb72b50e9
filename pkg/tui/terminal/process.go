// ABOUTME: ProcessTerminal implements Terminal on the process's stdin/stdout tty.
// ABOUTME: Holds the raw-mode Session and probes geometry via ioctl, then cursor report.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"os"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a pair of tty files.
type ProcessTerminal struct {
	mu      sync.Mutex
	in      *os.File
	out     *os.File
	session *Session
}

// NewProcessTerminal returns a ProcessTerminal on os.Stdin and os.Stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading in and writing out.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnterRawMode switches the input tty to raw mode, saving the previous
// attributes. A second call while raw mode is active does nothing.
func (t *ProcessTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session != nil {
		return nil
	}
	s, err := EnterRaw(int(t.in.Fd()))
	if err != nil {
		return err
	}
	t.session = s
	return nil
}

// ExitRawMode restores the attributes captured by EnterRawMode.
func (t *ProcessTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.session == nil {
		return nil
	}
	if err := t.session.Restore(); err != nil {
		return err
	}
	t.session = nil
	return nil
}

// Size asks the OS for the window size and falls back to the cursor
// position report when the OS cannot answer.
func (t *ProcessTerminal) Size() (Size, error) {
	p := &Prober{
		Query: func() (int, int, error) {
			cols, rows, err := term.GetSize(int(t.out.Fd()))
			return rows, cols, err
		},
		Out: t.out,
		In:  t,
	}
	return p.Probe()
}

// Read performs one read on the input tty. With raw mode active it
// returns (0, nil) when the read timeout expires.
func (t *ProcessTerminal) Read(p []byte) (int, error) {
	n, err := unix.Read(int(t.in.Fd()), p)
	if n < 0 {
		n = 0
	}
	return n, err
}

// Write sends p to the output tty in a single write call.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, newError(KindIO, "write", err)
	}
	return n, nil
}
