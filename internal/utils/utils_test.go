package utils

import "testing"

func TestStripANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "src/file1.ts(1,1): error", want: "src/file1.ts(1,1): error"},
		{name: "csi color", input: "\x1b[31mred\x1b[0m", want: "red"},
		{name: "csi with params", input: "\x1b[1;96mbold cyan\x1b[39;49m", want: "bold cyan"},
		{name: "csi with intermediates", input: "\x1b[0 qtext", want: "text"},
		{name: "esc final only", input: "\x1bMline up", want: "line up"},
		{name: "osc terminator", input: "\x1b]done", want: "done"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripANSI(tt.input); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 8); got != "hello..." {
		t.Errorf("got %q", got)
	}
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("abc", 2); got != "ab" {
		t.Errorf("got %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestCountLines(t *testing.T) {
	if got := CountLines(""); got != 0 {
		t.Errorf("got %d", got)
	}
	if got := CountLines("a\nb\n"); got != 2 {
		t.Errorf("got %d", got)
	}
	if got := CountLines("a\nb"); got != 2 {
		t.Errorf("got %d", got)
	}
}

func TestFormatMillis(t *testing.T) {
	if got := FormatMillis(850); got != "850ms" {
		t.Errorf("got %q", got)
	}
	if got := FormatMillis(12400); got != "12.4s" {
		t.Errorf("got %q", got)
	}
}
