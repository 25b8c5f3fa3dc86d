package stages

import (
	"strings"

	m "github.com/mouse-blink/scramble/internal/model"
)

// braceMoveChance is the percentage of brace-bearing lines whose brace moves.
const braceMoveChance = 40

// MoveBraces sometimes pushes the first opening brace of a line onto its own
// line with a random indentation.
func MoveBraces(text string, _ m.ChaosLevel, rnd Random) string {
	return expandLines(text, func(line string) []string {
		idx := strings.IndexByte(line, '{')
		if idx < 0 || !rnd.Percent(braceMoveChance) {
			return []string{line}
		}

		brace := spaces(rnd.Intn(8)) + "{"
		if after := line[idx+1:]; strings.TrimSpace(after) != "" {
			brace += after
		}

		return []string{strings.TrimSpace(line[:idx]), brace}
	})
}
