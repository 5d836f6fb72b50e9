// ABOUTME: InputProcessor: applies one input byte to the editor state
// ABOUTME: Quit clears the screen and homes the cursor before reporting ActionQuit

package editor

import (
	"fmt"
	"io"

	"github.com/mauromedda/ntext/pkg/tui/terminal"
)

// Action tells the main loop what to do after a key.
type Action int

const (
	ActionContinue Action = iota
	ActionQuit
)

func (a Action) String() string {
	if a == ActionQuit {
		return "quit"
	}
	return "continue"
}

// Processor dispatches input bytes through a Keymap.
type Processor struct {
	out   io.Writer
	keys  Keymap
	clamp bool
}

// Option configures a Processor.
type Option func(*Processor)

// WithKeymap replaces the default bindings.
func WithKeymap(km Keymap) Option {
	return func(p *Processor) { p.keys = km }
}

// WithClamp sets whether cursor motion stops at the screen edges.
func WithClamp(clamp bool) Option {
	return func(p *Processor) { p.clamp = clamp }
}

// NewProcessor returns a Processor that writes the quit sequence to out.
// Cursor motion is clamped to the screen by default.
func NewProcessor(out io.Writer, opts ...Option) *Processor {
	p := &Processor{out: out, keys: DefaultKeymap(), clamp: true}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Handle applies b to st. Unbound bytes are ignored.
func (p *Processor) Handle(st *State, b byte) (Action, error) {
	switch p.keys[b] {
	case CommandQuit:
		if _, err := io.WriteString(p.out, terminal.ClearScreen+terminal.CursorHome); err != nil {
			return ActionQuit, fmt.Errorf("clearing screen on quit: %w", err)
		}
		return ActionQuit, nil
	case CommandUp:
		st.Move(-1, 0, p.clamp)
	case CommandDown:
		st.Move(1, 0, p.clamp)
	case CommandLeft:
		st.Move(0, -1, p.clamp)
	case CommandRight:
		st.Move(0, 1, p.clamp)
	}
	return ActionContinue, nil
}
