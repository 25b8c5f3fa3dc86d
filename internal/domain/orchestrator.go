package domain

import (
	"github.com/mouse-blink/scramble/internal/domain/stages"
	m "github.com/mouse-blink/scramble/internal/model"
)

// Scrambler runs the stage pipeline over a source text.
type Scrambler interface {
	// Scramble never fails; every stage is total. It is safe for concurrent use.
	Scramble(text string, cfg m.Config) m.ScrambleResult
}

type orchestrator struct {
	rnd      stages.Random
	pipeline []stages.Stage
}

// NewScrambler constructs a Scrambler drawing from rnd. With no pipeline the
// default stage order is used.
func NewScrambler(rnd stages.Random, pipeline ...stages.Stage) Scrambler {
	if len(pipeline) == 0 {
		pipeline = stages.Default()
	}

	return &orchestrator{
		rnd:      rnd,
		pipeline: pipeline,
	}
}

func (o *orchestrator) Scramble(text string, cfg m.Config) m.ScrambleResult {
	out := text

	var applied []m.StageName

	for _, stage := range o.pipeline {
		if !o.shouldRun(stage, cfg) {
			continue
		}

		out = stage.Apply(out, cfg.Level, o.rnd)
		applied = append(applied, stage.Name)
	}

	return m.ScrambleResult{
		Text:    out,
		Changed: out != text,
		Applied: applied,
	}
}

func (o *orchestrator) shouldRun(stage stages.Stage, cfg m.Config) bool {
	return cfg.Level >= stage.MinLevel && cfg.Enabled(stage.Name)
}
