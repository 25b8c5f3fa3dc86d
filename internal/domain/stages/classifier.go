package stages

import (
	"strings"
	"unicode/utf8"
)

// shortLineLimit is the longest line that is never worth splitting.
const shortLineLimit = 40

var criticalPrefixes = []string{"package ", "import ", "@", "//", "/*", "*"}

// IsCritical reports whether a line must keep its structure: declarations,
// annotations, comments, lines holding string literals and short lines.
func IsCritical(line string) bool {
	trimmed := strings.TrimSpace(line)

	for _, prefix := range criticalPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}

	if strings.Contains(trimmed, `"`) {
		return true
	}

	return utf8.RuneCountInString(line) <= shortLineLimit
}
