package width

import "testing"

func TestSanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "hello", want: "hello"},
		{name: "sgr", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "cursor move", input: "a\x1b[2;3Hb", want: "ab"},
		{name: "osc bel", input: "\x1b]0;title\x07text", want: "text"},
		{name: "osc st", input: "\x1b]8;;http://x\x1b\\link", want: "link"},
		{name: "two byte", input: "\x1bcreset", want: "reset"},
		{name: "controls", input: "a\tb\r\nc\x7f", want: "abc"},
		{name: "trailing esc", input: "abc\x1b", want: "abc"},
		{name: "unterminated csi", input: "abc\x1b[12", want: "abc"},
		{name: "unicode kept", input: "café 世界", want: "café 世界"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
