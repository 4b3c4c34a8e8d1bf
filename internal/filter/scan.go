package filter

import (
	"regexp"
	"strings"

	"github.com/falleng0d/tscx/internal/utils"
)

// numberedContinuation matches the line-number prefix of pretty-printed
// diagnostic detail, e.g. "10   const x: number = 'y'".
var numberedContinuation = regexp.MustCompile(`^[0-9]+\s`)

// headerToken matches the file reference at the start of a header line:
// everything up to the first ':' or '('. A Windows drive-letter absolute
// path therefore truncates at the drive colon; tsc emits project-relative
// slash paths, so this does not arise in practice.
var headerToken = regexp.MustCompile(`^[^:(]+`)

// scanState carries the one bit of state the scan needs between lines:
// whether the record currently being scanned was selected for output.
// Continuation lines inherit it; every header line resets it.
type scanState struct {
	showCurrent bool
}

// Scan partitions the compiler's combined output into diagnostic records (a
// header line carrying a file reference, followed by its continuation lines)
// and keeps the records selected by fs. Records are emitted whole or not at
// all. Returned lines are byte-identical to the input, escape sequences
// intact; classification happens on a sanitized copy. The second return is
// the aggregate status: 1 if at least one header line was selected, else 0.
func Scan(output string, fs *FilterSet) ([]string, int) {
	var (
		emit   []string
		status int
		state  scanState
	)
	for _, line := range SplitLines(output) {
		clean := utils.StripANSI(line)
		if isContinuation(clean) {
			if state.showCurrent || fs.MatchAll() {
				emit = append(emit, line)
			}
			continue
		}
		token := headerToken.FindString(clean)
		if token == "" {
			// No file reference to extract. The line is inert: it inherits
			// the current record's decision rather than starting a new one.
			if state.showCurrent || fs.MatchAll() {
				emit = append(emit, line)
			}
			continue
		}
		if fs.Match(strings.TrimSpace(token)) {
			state.showCurrent = true
			emit = append(emit, line)
			status = 1
		} else {
			state.showCurrent = false
		}
	}
	return emit, status
}

// isContinuation reports whether a sanitized line belongs to the preceding
// header's record: indented detail, or a line-number-prefixed source excerpt.
func isContinuation(line string) bool {
	return strings.HasPrefix(line, " ") || numberedContinuation.MatchString(line)
}

// SplitLines splits captured output into lines, tolerating CRLF and a
// trailing newline.
func SplitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
