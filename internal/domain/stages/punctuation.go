package stages

import (
	"regexp"

	m "github.com/mouse-blink/scramble/internal/model"
)

var punctuationPattern = regexp.MustCompile(`[,;]`)

// ScatterPunctuation pads every comma and semicolon with up to three spaces on
// one side.
func ScatterPunctuation(text string, _ m.ChaosLevel, rnd Random) string {
	return punctuationPattern.ReplaceAllStringFunc(text, func(mark string) string {
		pad := spaces(rnd.Intn(4))
		if rnd.Bool() {
			return mark + pad
		}

		return pad + mark
	})
}
