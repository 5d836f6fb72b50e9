// ABOUTME: Single-byte key helpers: control-byte classification, binding specs, and display names.
// ABOUTME: ParseBinding turns config strings like "ctrl+q" or "w" into the byte a raw tty delivers.

package key

import (
	"errors"
	"fmt"
	"strings"
)

// Named bytes a raw-mode terminal delivers for common keys.
const (
	Enter     byte = 0x0d
	Tab       byte = 0x09
	Escape    byte = 0x1b
	Backspace byte = 0x7f
	Space     byte = ' '
)

// ErrUnknownBinding is returned for binding specs that do not map to a single byte.
var ErrUnknownBinding = errors.New("unknown key binding")

// namedKeys maps binding names to bytes.
var namedKeys = map[string]byte{
	"enter":     Enter,
	"return":    Enter,
	"tab":       Tab,
	"esc":       Escape,
	"escape":    Escape,
	"backspace": Backspace,
	"space":     Space,
}

// byteNames provides labels for bytes that are not shown as themselves.
var byteNames = map[byte]string{
	Enter:     "Enter",
	Tab:       "Tab",
	Escape:    "Esc",
	Backspace: "Backspace",
	Space:     "Space",
}

// Ctrl returns the byte sent for Ctrl+c. Letters are case-insensitive.
func Ctrl(c byte) byte {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	return c & 0x1f
}

// IsControl reports whether b is a C0 control byte or DEL.
func IsControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// ParseBinding parses a binding spec into the byte it matches.
// Accepted forms: a single printable ASCII character ("w"), a named
// key ("enter", "esc"), or "ctrl+" followed by a letter or one of @[\]^_.
func ParseBinding(spec string) (byte, error) {
	if len(spec) == 1 && spec[0] > 0x20 && spec[0] < 0x7f {
		return spec[0], nil
	}

	s := strings.ToLower(strings.TrimSpace(spec))
	if b, ok := namedKeys[s]; ok {
		return b, nil
	}

	if rest, ok := strings.CutPrefix(s, "ctrl+"); ok && len(rest) == 1 {
		c := rest[0]
		if (c >= 'a' && c <= 'z') || strings.IndexByte(`@[\]^_`, c) >= 0 {
			return Ctrl(c), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownBinding, spec)
}

// Name returns a human-readable label for b ("Ctrl+Q", "w", "Enter").
func Name(b byte) string {
	if name, ok := byteNames[b]; ok {
		return name
	}
	switch {
	case b == 0:
		return "Ctrl+@"
	case b < 0x20:
		return "Ctrl+" + string(rune(b|0x40))
	case b < 0x7f:
		return string(rune(b))
	default:
		return fmt.Sprintf("0x%02x", b)
	}
}
