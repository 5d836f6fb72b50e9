package terminal

import (
	"errors"
	"syscall"
	"testing"
)

func TestError_MessageAndUnwrap(t *testing.T) {
	t.Parallel()

	err := newError(KindTerminal, "tcgetattr", syscall.ENOTTY)
	if got, want := err.Error(), "tcgetattr: "+syscall.ENOTTY.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, syscall.ENOTTY) {
		t.Error("expected errors.Is to reach the OS error")
	}
	if !IsKind(err, KindTerminal) || IsKind(err, KindIO) {
		t.Error("IsKind mismatch")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	t.Parallel()

	inner := newError(KindProbe, "cursor position report", ErrReportMalformed)
	wrapped := errors.Join(errors.New("probing"), inner)
	if !IsKind(wrapped, KindProbe) {
		t.Error("expected wrapped probe error to match")
	}
	if !errors.Is(wrapped, ErrReportMalformed) {
		t.Error("expected sentinel to match through wrapping")
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	for kind, want := range map[Kind]string{
		KindTerminal: "terminal",
		KindIO:       "io",
		KindProbe:    "probe",
		Kind(99):     "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
