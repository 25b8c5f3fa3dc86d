package stages

import (
	m "github.com/mouse-blink/scramble/internal/model"
)

// PadLineEnds appends up to nine spaces to a level-proportional share of lines.
func PadLineEnds(text string, level m.ChaosLevel, rnd Random) string {
	return eachLine(text, func(line string) string {
		if !rnd.Percent(int(level) * 8) {
			return line
		}

		return line + spaces(rnd.Intn(10))
	})
}
