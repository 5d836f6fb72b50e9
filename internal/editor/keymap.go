// ABOUTME: Keymap binds raw input bytes to editor commands; one flat navigation table
// ABOUTME: Defaults: Ctrl+Q quits, w/s/a/d move the cursor up/down/left/right

package editor

import (
	"fmt"

	"github.com/mauromedda/ntext/pkg/tui/key"
)

// Command is something a key can do.
type Command string

const (
	CommandUp    Command = "up"
	CommandDown  Command = "down"
	CommandLeft  Command = "left"
	CommandRight Command = "right"
	CommandQuit  Command = "quit"
)

// Commands lists every bindable command.
func Commands() []Command {
	return []Command{CommandUp, CommandDown, CommandLeft, CommandRight, CommandQuit}
}

// Bindings assigns one byte to each command.
type Bindings map[Command]byte

// DefaultBindings returns the built-in bindings.
func DefaultBindings() Bindings {
	return Bindings{
		CommandQuit:  key.Ctrl('q'),
		CommandUp:    'w',
		CommandDown:  's',
		CommandLeft:  'a',
		CommandRight: 'd',
	}
}

// Keymap maps input bytes to commands.
type Keymap map[byte]Command

// DefaultKeymap returns the keymap for DefaultBindings.
func DefaultKeymap() Keymap {
	km, _ := NewKeymap(DefaultBindings())
	return km
}

// NewKeymap inverts b. Two commands on the same byte are an error.
func NewKeymap(b Bindings) (Keymap, error) {
	km := make(Keymap, len(b))
	for _, cmd := range Commands() {
		k, ok := b[cmd]
		if !ok {
			continue
		}
		if other, taken := km[k]; taken {
			return nil, fmt.Errorf("key %s bound to both %s and %s", key.Name(k), other, cmd)
		}
		km[k] = cmd
	}
	return km, nil
}
