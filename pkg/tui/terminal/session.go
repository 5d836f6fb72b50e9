// ABOUTME: Raw-mode session: captures the tty attributes once, applies the raw set, restores on demand.
// ABOUTME: Session is the scoped guard; callers defer Restore so every return path puts the tty back.

//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Read timeout in tenths of a second and the minimum byte count for a
// read to return. VMIN=0 lets read return empty when the timer expires.
const (
	readTimeoutDeciseconds = 1
	readMinBytes           = 0
)

// Config is an opaque snapshot of terminal attributes.
type Config struct {
	termios unix.Termios
}

// Capture reads the current attributes of fd.
func Capture(fd int) (*Config, error) {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, newError(KindTerminal, "tcgetattr", err)
	}
	return &Config{termios: *t}, nil
}

// Apply writes cfg to fd, discarding unread input first.
func Apply(fd int, cfg *Config) error {
	t := cfg.termios
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermiosFlush, &t); err != nil {
		return newError(KindTerminal, "tcsetattr", err)
	}
	return nil
}

// MakeRaw turns t into the editor's raw attribute set.
func MakeRaw(t *unix.Termios) {
	// No echo, no line buffering, no Ctrl-V, no Ctrl-C/Ctrl-Z signals.
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// No break-to-SIGINT, CR->NL, parity check, bit stripping, Ctrl-S/Ctrl-Q.
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Cc[unix.VMIN] = readMinBytes
	t.Cc[unix.VTIME] = readTimeoutDeciseconds
}

// Session owns one raw-mode period on a tty.
type Session struct {
	mu    sync.Mutex
	fd    int
	saved *Config
}

// EnterRaw captures the attributes of fd and switches it to raw mode.
// The returned Session must be restored by the caller.
func EnterRaw(fd int) (*Session, error) {
	if !term.IsTerminal(fd) {
		return nil, newError(KindTerminal, "enter raw mode", ErrNotTerminal)
	}

	saved, err := Capture(fd)
	if err != nil {
		return nil, err
	}

	raw := &Config{termios: saved.termios}
	MakeRaw(&raw.termios)
	if err := Apply(fd, raw); err != nil {
		return nil, err
	}
	return &Session{fd: fd, saved: saved}, nil
}

// Saved returns the attributes captured before raw mode was entered.
func (s *Session) Saved() *Config {
	return s.saved
}

// Restore reapplies the captured attributes. Calling it again reapplies
// the same snapshot, so repeated calls leave the tty unchanged.
func (s *Session) Restore() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return Apply(s.fd, s.saved)
}
