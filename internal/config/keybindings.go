// ABOUTME: Resolves the keys section of the settings into an editor keymap
// ABOUTME: Unknown command names get a fuzzy "did you mean" suggestion

package config

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/mauromedda/ntext/internal/editor"
	pilog "github.com/mauromedda/ntext/internal/log"
	"github.com/mauromedda/ntext/pkg/tui/fuzzy"
	"github.com/mauromedda/ntext/pkg/tui/key"
)

// Keymap builds the editor keymap: defaults overridden by the keys section.
func (s *Settings) Keymap() (editor.Keymap, error) {
	bindings := editor.DefaultBindings()

	names := make([]string, 0, len(s.Keys))
	for name := range s.Keys {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		cmd, err := lookupCommand(name)
		if err != nil {
			return nil, err
		}
		b, err := key.ParseBinding(s.Keys[name])
		if err != nil {
			return nil, fmt.Errorf("keys.%s: %w", name, err)
		}
		bindings[cmd] = b
	}

	km, err := editor.NewKeymap(bindings)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return km, nil
}

// lookupCommand maps a config name to a command.
func lookupCommand(name string) (editor.Command, error) {
	cmds := editor.Commands()
	candidates := make([]string, len(cmds))
	for i, c := range cmds {
		if string(c) == name {
			return c, nil
		}
		candidates[i] = string(c)
	}

	if guess, ok := fuzzy.Suggest(name, candidates); ok {
		return "", fmt.Errorf("keys: unknown command %q (did you mean %q?)", name, guess)
	}
	return "", fmt.Errorf("keys: unknown command %q (known: %v)", name, candidates)
}

func parseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return pilog.LevelInfo, nil
	}
	return pilog.ParseLevel(s)
}

// Level returns the configured log level.
func (s *Settings) Level() slog.Level {
	l, err := parseLogLevel(s.LogLevel)
	if err != nil {
		return pilog.LevelInfo
	}
	return l
}
