package stages

import (
	"strings"

	m "github.com/mouse-blink/scramble/internal/model"
)

const (
	// splitChance is the percentage of eligible lines that get split.
	splitChance = 30
	// safeBreakChars may end the first half of a split line.
	safeBreakChars = ",;{(&|+-*/"
)

// FindSafeBreak returns the rune index just after the safe break character
// closest to two thirds of the line, searching down to one third. It returns -1
// when the middle third holds no such character.
func FindSafeBreak(line string) int {
	return findSafeBreak([]rune(line))
}

func findSafeBreak(runes []rune) int {
	lo, hi := len(runes)/3, 2*len(runes)/3

	for i := min(hi, len(runes)-1); i >= lo; i-- {
		if strings.ContainsRune(safeBreakChars, runes[i]) {
			return i + 1
		}
	}

	return -1
}

// SplitLongLines breaks some long, non-critical lines at a safe point and
// indents the continuation randomly.
func SplitLongLines(text string, _ m.ChaosLevel, rnd Random) string {
	return expandLines(text, func(line string) []string {
		if IsCritical(line) || !rnd.Percent(splitChance) {
			return []string{line}
		}

		runes := []rune(line)

		at := findSafeBreak(runes)
		if at <= 0 || at >= len(runes)-1 {
			return []string{line}
		}

		return []string{string(runes[:at]), spaces(rnd.Intn(15)) + strings.TrimSpace(string(runes[at:]))}
	})
}
