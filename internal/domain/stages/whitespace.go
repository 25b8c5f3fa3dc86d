package stages

import (
	"strings"

	m "github.com/mouse-blink/scramble/internal/model"
)

// Reindent replaces the indentation of every non-blank line with a random run
// of spaces or tabs, sometimes mixing both.
func Reindent(text string, level m.ChaosLevel, rnd Random) string {
	return eachLine(text, func(line string) string {
		if isBlank(line) {
			return line
		}

		indent, content := leadingWhitespace(line)

		var newIndent string
		if rnd.Bool() {
			newIndent = spaces(rnd.Intn(indent + 3))
		} else {
			newIndent = strings.Repeat("\t", rnd.Intn(indent/4+2))
		}

		if rnd.Percent(int(level) * 5) {
			newIndent = mixIndent(newIndent, rnd)
		}

		return newIndent + content
	})
}

// mixIndent flips each indentation character independently: a tab becomes four
// spaces and a space becomes a tab.
func mixIndent(indent string, rnd Random) string {
	var b strings.Builder

	for _, c := range indent {
		switch {
		case rnd.Bool():
			b.WriteRune(c)
		case c == '\t':
			b.WriteString("    ")
		default:
			b.WriteByte('\t')
		}
	}

	return b.String()
}
