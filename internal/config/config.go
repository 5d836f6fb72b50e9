// ABOUTME: Settings loading from an optional YAML file; a missing file yields the defaults
// ABOUTME: Unknown fields are rejected so typos surface instead of being ignored

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/mauromedda/ntext/pkg/tui/width"
)

// Settings holds the user configuration.
type Settings struct {
	Welcome     string            `yaml:"welcome,omitempty"`
	ClampCursor *bool             `yaml:"clamp_cursor,omitempty"`
	Keys        map[string]string `yaml:"keys,omitempty"`
	LogFile     string            `yaml:"log_file,omitempty"`
	LogLevel    string            `yaml:"log_level,omitempty"`
}

// DefaultWelcome is the welcome message for the given build version.
func DefaultWelcome(version string) string {
	return "ntext editor -- version " + version
}

// Default returns the built-in settings.
func Default(version string) *Settings {
	return &Settings{
		Welcome:  DefaultWelcome(version),
		LogLevel: "info",
	}
}

// Load reads settings from path. A missing file is not an error: the
// defaults are returned. Env references in string fields are expanded
// and the result is validated.
func Load(path, version string) (*Settings, error) {
	s := Default(version)

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var fromFile Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fromFile); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	merged := merge(s, &fromFile)
	ResolveEnvVars(merged)
	merged.Welcome = normalizeWelcome(merged.Welcome)
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return merged, nil
}

// merge overlays non-zero file values onto the defaults.
func merge(base, file *Settings) *Settings {
	result := *base
	if file.Welcome != "" {
		result.Welcome = file.Welcome
	}
	if file.ClampCursor != nil {
		clamp := *file.ClampCursor
		result.ClampCursor = &clamp
	}
	if len(file.Keys) > 0 {
		result.Keys = make(map[string]string, len(file.Keys))
		for k, v := range file.Keys {
			result.Keys[k] = v
		}
	}
	if file.LogFile != "" {
		result.LogFile = file.LogFile
	}
	if file.LogLevel != "" {
		result.LogLevel = file.LogLevel
	}
	return &result
}

// Clamp reports whether cursor motion stops at the screen edges.
func (s *Settings) Clamp() bool {
	return s.ClampCursor == nil || *s.ClampCursor
}

// Validate checks the key bindings and the log level.
func (s *Settings) Validate() error {
	if _, err := s.Keymap(); err != nil {
		return err
	}
	if _, err := parseLogLevel(s.LogLevel); err != nil {
		return err
	}
	return nil
}

// normalizeWelcome keeps the welcome text to one row of printable,
// NFC-composed characters so its width can be measured.
func normalizeWelcome(s string) string {
	return norm.NFC.String(width.Sanitize(s))
}
