package stages

import (
	"strings"
	"unicode"
	"unicode/utf8"

	m "github.com/mouse-blink/scramble/internal/model"
)

// eachLine rewrites every line of text one to one.
func eachLine(text string, fn func(line string) string) string {
	lines := m.SplitLines(text)
	for i, line := range lines.Body {
		lines.Body[i] = fn(line)
	}

	return lines.String()
}

// expandLines rewrites every line of text into zero or more lines.
func expandLines(text string, fn func(line string) []string) string {
	lines := m.SplitLines(text)

	out := make([]string, 0, len(lines.Body))
	for _, line := range lines.Body {
		out = append(out, fn(line)...)
	}

	lines.Body = out

	return lines.String()
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// leadingWhitespace returns the number of leading whitespace characters and the
// rest of the line.
func leadingWhitespace(line string) (int, string) {
	rest := strings.TrimLeftFunc(line, unicode.IsSpace)

	return utf8.RuneCountInString(line[:len(line)-len(rest)]), rest
}

func spaces(n int) string {
	return strings.Repeat(" ", n)
}
