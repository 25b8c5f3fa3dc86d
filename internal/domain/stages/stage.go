package stages

import (
	m "github.com/mouse-blink/scramble/internal/model"
)

// Func is a total text-to-text transformation.
type Func func(text string, level m.ChaosLevel, rnd Random) string

// Stage is a named transformation that only runs from MinLevel upwards.
type Stage struct {
	Name     m.StageName
	MinLevel m.ChaosLevel
	Apply    Func
}

// Default returns the full pipeline in execution order.
func Default() []Stage {
	return []Stage{
		{Name: m.StageWhitespace, MinLevel: 1, Apply: Reindent},
		{Name: m.StagePunctuation, MinLevel: 1, Apply: ScatterPunctuation},
		{Name: m.StageBraces, MinLevel: 3, Apply: MoveBraces},
		{Name: m.StageBlankLines, MinLevel: 5, Apply: ShuffleBlankLines},
		{Name: m.StageOperators, MinLevel: 7, Apply: SpaceOperators},
		{Name: m.StageTrailing, MinLevel: 7, Apply: PadLineEnds},
		{Name: m.StageLineSplit, MinLevel: 9, Apply: SplitLongLines},
	}
}
