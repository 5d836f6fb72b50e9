// ABOUTME: Error kinds for terminal attribute, I/O and geometry-probe failures.
// ABOUTME: Error wraps the OS detail so callers can report it and errors.Is still matches.

package terminal

import (
	"errors"
	"fmt"
)

// Kind classifies a terminal failure.
type Kind int

const (
	KindTerminal Kind = iota // attribute get/set
	KindIO                   // read/write other than timeout
	KindProbe                // window size could not be determined
)

func (k Kind) String() string {
	switch k {
	case KindTerminal:
		return "terminal"
	case KindIO:
		return "io"
	case KindProbe:
		return "probe"
	default:
		return "unknown"
	}
}

var (
	// ErrNotTerminal is returned when raw mode is requested on a non-tty.
	ErrNotTerminal = errors.New("not a terminal")

	// ErrReportMalformed means the cursor position report did not have
	// the form ESC [ rows ; cols R.
	ErrReportMalformed = errors.New("malformed cursor position report")

	// ErrReportIncomplete means no R terminator arrived before the scratch
	// buffer filled or the input went quiet.
	ErrReportIncomplete = errors.New("incomplete cursor position report")
)

// Error is a failure in one terminal operation.
type Error struct {
	Kind Kind
	Op   string // e.g. "tcgetattr", "read", "probe"
	Err  error
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries a terminal Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var te *Error
	return errors.As(err, &te) && te.Kind == kind
}
