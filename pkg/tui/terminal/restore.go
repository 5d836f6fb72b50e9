// ABOUTME: Teardown and RestoreOnPanic put the screen and tty attributes back before the process exits.
// ABOUTME: Used by the fatal-error path and as a deferred panic guard in main.

package terminal

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Teardown clears the screen, homes the cursor, and leaves raw mode.
// Every step is best-effort; the first error is returned.
func Teardown(t Terminal) error {
	_, werr := t.Write([]byte(ClearScreen + CursorHome))
	if err := t.ExitRawMode(); err != nil {
		return err
	}
	return werr
}

// RestoreOnPanic should be deferred at the top of main (or any
// goroutine that owns the terminal). On panic it tears the terminal
// down, prints the panic value and stack trace, then exits with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}

	_ = Teardown(t)

	fmt.Fprintf(os.Stderr, "\npanic: %v\n\n%s\n", r, debug.Stack())
	os.Exit(1)
}
