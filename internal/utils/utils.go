package utils

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"
)

// ansiRe matches ECMA-48 escape sequences: a two-byte sequence (ESC plus a
// single final byte) or a CSI sequence of parameter bytes, intermediate
// bytes, and one final byte.
var ansiRe = sync.OnceValue(func() *regexp.Regexp {
	return regexp.MustCompile(`\x1b(?:[@-Z\\\]^_]|\[[0-?]*[ -/]*[@-~])`)
})

// StripANSI removes terminal escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe().ReplaceAllString(s, "")
}

// Truncate truncates s to max runes, appending "..." if truncated.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// CountLines counts the number of lines in s.
func CountLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

// FormatMillis formats a millisecond duration for display: "850ms", "12.4s".
func FormatMillis(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.1fs", float64(ms)/1000)
}
