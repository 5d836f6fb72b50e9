// ABOUTME: Raw-mode and geometry tests against a real pseudo-terminal from creack/pty
// ABOUTME: Checks the applied attribute set, restore idempotence, and both probe paths

//go:build linux

package terminal

import (
	"errors"
	"os"
	"testing"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"
)

func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func getTermios(t *testing.T, fd int) *unix.Termios {
	t.Helper()

	tio, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		t.Fatalf("tcgetattr: %v", err)
	}
	return tio
}

func sameAttrs(a, b *unix.Termios) bool {
	return a.Iflag == b.Iflag && a.Oflag == b.Oflag && a.Cflag == b.Cflag &&
		a.Lflag == b.Lflag && a.Cc == b.Cc
}

func TestEnterRaw_AppliesRawAttributes(t *testing.T) {
	_, tty := openPTY(t)
	fd := int(tty.Fd())

	s, err := EnterRaw(fd)
	if err != nil {
		t.Fatalf("EnterRaw() unexpected error: %v", err)
	}
	defer func() { _ = s.Restore() }()

	raw := getTermios(t, fd)
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.IEXTEN|unix.ISIG) != 0 {
		t.Errorf("Lflag = %#x, want echo/canonical/extended/signals off", raw.Lflag)
	}
	if raw.Iflag&(unix.BRKINT|unix.ICRNL|unix.INPCK|unix.ISTRIP|unix.IXON) != 0 {
		t.Errorf("Iflag = %#x, want input processing off", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("Oflag = %#x, want OPOST off", raw.Oflag)
	}
	if raw.Cflag&unix.CSIZE != unix.CS8 {
		t.Errorf("Cflag = %#x, want CS8", raw.Cflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Errorf("VMIN/VTIME = %d/%d, want 0/1", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
}

func TestSession_RestoreIsIdempotent(t *testing.T) {
	_, tty := openPTY(t)
	fd := int(tty.Fd())
	orig := getTermios(t, fd)

	s, err := EnterRaw(fd)
	if err != nil {
		t.Fatalf("EnterRaw() unexpected error: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := s.Restore(); err != nil {
			t.Fatalf("Restore() #%d unexpected error: %v", i+1, err)
		}
		if got := getTermios(t, fd); !sameAttrs(got, orig) {
			t.Errorf("after Restore() #%d attributes differ from the captured snapshot", i+1)
		}
	}
}

func TestEnterRaw_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	_, err = EnterRaw(int(r.Fd()))
	if !errors.Is(err, ErrNotTerminal) || !IsKind(err, KindTerminal) {
		t.Fatalf("EnterRaw(pipe) = %v, want ErrNotTerminal", err)
	}
}

func TestProcessTerminal_EnterTwiceCapturesOnce(t *testing.T) {
	_, tty := openPTY(t)
	fd := int(tty.Fd())
	orig := getTermios(t, fd)

	pt := NewFileTerminal(tty, tty)
	if err := pt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}
	if err := pt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}
	if err := pt.ExitRawMode(); err != nil {
		t.Fatal(err)
	}
	if got := getTermios(t, fd); !sameAttrs(got, orig) {
		t.Error("ExitRawMode did not restore the pre-raw attributes")
	}
	if err := pt.ExitRawMode(); err != nil {
		t.Errorf("second ExitRawMode() unexpected error: %v", err)
	}
}

func TestProcessTerminal_SizeFromIoctl(t *testing.T) {
	ptmx, tty := openPTY(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatal(err)
	}

	got, err := NewFileTerminal(tty, tty).Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if got != (Size{Rows: 30, Cols: 100}) {
		t.Errorf("Size() = %+v, want 30x100 from ioctl", got)
	}
}

func TestProcessTerminal_SizeFromCursorReport(t *testing.T) {
	ptmx, tty := openPTY(t)
	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 0, Cols: 0}); err != nil {
		t.Fatal(err)
	}

	pt := NewFileTerminal(tty, tty)
	if err := pt.EnterRawMode(); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = pt.ExitRawMode() }()

	// Queue the terminal's answer before asking so the read never races
	// the 100ms read timeout.
	if _, err := ptmx.Write([]byte("\x1b[24;80R")); err != nil {
		t.Fatal(err)
	}

	got, err := pt.Size()
	if err != nil {
		t.Fatalf("Size() unexpected error: %v", err)
	}
	if got != (Size{Rows: 24, Cols: 80, FromReport: true}) {
		t.Errorf("Size() = %+v, want 24x80 from report", got)
	}
}
