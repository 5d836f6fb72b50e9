// ABOUTME: Tests for the input processor: motion, quit, no-op bytes, clamping option
// ABOUTME: Uses terminal.VirtualTerminal to observe the quit clear sequence

package editor

import (
	"errors"
	"testing"

	"github.com/mauromedda/ntext/pkg/tui/terminal"
)

func TestProcessor_RoundTripReturnsHome(t *testing.T) {
	t.Parallel()

	for _, clamp := range []bool{true, false} {
		vt := terminal.NewVirtualTerminal(24, 80)
		p := NewProcessor(vt, WithClamp(clamp))
		st := NewState(24, 80)

		for _, b := range []byte("dsaw") { // right, down, left, up
			act, err := p.Handle(st, b)
			if err != nil || act != ActionContinue {
				t.Fatalf("Handle(%q) = (%v, %v), want continue", b, act, err)
			}
		}
		if st.CursorRow != 0 || st.CursorCol != 0 {
			t.Errorf("clamp=%v: cursor = (%d, %d), want (0, 0)", clamp, st.CursorRow, st.CursorCol)
		}
		if vt.Output() != "" {
			t.Errorf("motion wrote %q, want nothing", vt.Output())
		}
	}
}

func TestProcessor_Motion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		b                byte
		wantRow, wantCol int
	}{
		{name: "up", b: 'w', wantRow: 4, wantCol: 5},
		{name: "down", b: 's', wantRow: 6, wantCol: 5},
		{name: "left", b: 'a', wantRow: 5, wantCol: 4},
		{name: "right", b: 'd', wantRow: 5, wantCol: 6},
		{name: "unbound letter", b: 'x', wantRow: 5, wantCol: 5},
		{name: "unbound control", b: 0x03, wantRow: 5, wantCol: 5},
		{name: "uppercase not bound", b: 'W', wantRow: 5, wantCol: 5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewProcessor(terminal.NewVirtualTerminal(24, 80))
			st := NewState(24, 80)
			st.CursorRow, st.CursorCol = 5, 5

			act, err := p.Handle(st, tt.b)
			if err != nil || act != ActionContinue {
				t.Fatalf("Handle(%q) = (%v, %v)", tt.b, act, err)
			}
			if st.CursorRow != tt.wantRow || st.CursorCol != tt.wantCol {
				t.Errorf("cursor = (%d, %d), want (%d, %d)", st.CursorRow, st.CursorCol, tt.wantRow, tt.wantCol)
			}
		})
	}
}

func TestProcessor_Quit(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(24, 80)
	p := NewProcessor(vt)
	st := NewState(24, 80)
	st.CursorRow, st.CursorCol = 3, 7

	act, err := p.Handle(st, 0x11)
	if err != nil {
		t.Fatalf("Handle(Ctrl+Q) unexpected error: %v", err)
	}
	if act != ActionQuit {
		t.Errorf("Handle(Ctrl+Q) = %v, want quit", act)
	}
	if got, want := vt.Output(), "\x1b[2J\x1b[H"; got != want {
		t.Errorf("quit wrote %q, want %q", got, want)
	}
	if st.CursorRow != 3 || st.CursorCol != 7 {
		t.Errorf("quit moved the cursor to (%d, %d)", st.CursorRow, st.CursorCol)
	}
}

func TestProcessor_QuitWriteFailure(t *testing.T) {
	t.Parallel()

	vt := terminal.NewVirtualTerminal(24, 80)
	vt.FailWrites(errors.New("EIO"))

	act, err := NewProcessor(vt).Handle(NewState(24, 80), 0x11)
	if act != ActionQuit || !terminal.IsKind(err, terminal.KindIO) {
		t.Errorf("Handle(Ctrl+Q) = (%v, %v), want quit with io error", act, err)
	}
}

func TestProcessor_UnclampedMovesPastEdges(t *testing.T) {
	t.Parallel()

	p := NewProcessor(terminal.NewVirtualTerminal(2, 2), WithClamp(false))
	st := NewState(2, 2)

	for _, b := range []byte("ww") {
		if _, err := p.Handle(st, b); err != nil {
			t.Fatal(err)
		}
	}
	if st.CursorRow != -2 {
		t.Errorf("CursorRow = %d, want -2", st.CursorRow)
	}
}

func TestProcessor_CustomKeymap(t *testing.T) {
	t.Parallel()

	b := DefaultBindings()
	b[CommandQuit] = 'q'
	km, err := NewKeymap(b)
	if err != nil {
		t.Fatal(err)
	}

	p := NewProcessor(terminal.NewVirtualTerminal(24, 80), WithKeymap(km))
	if act, _ := p.Handle(NewState(24, 80), 'q'); act != ActionQuit {
		t.Errorf("Handle('q') = %v, want quit", act)
	}
	if act, _ := p.Handle(NewState(24, 80), 0x11); act != ActionContinue {
		t.Errorf("Handle(Ctrl+Q) after rebinding = %v, want continue", act)
	}
}

func TestAction_String(t *testing.T) {
	t.Parallel()

	if ActionQuit.String() != "quit" || ActionContinue.String() != "continue" {
		t.Errorf("String() = %q, %q", ActionQuit.String(), ActionContinue.String())
	}
}
