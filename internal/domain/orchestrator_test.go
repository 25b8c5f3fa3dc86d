package domain

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/scramble/internal/domain/stages"
	m "github.com/mouse-blink/scramble/internal/model"
)

// zeroRandom always draws the smallest value and never passes a probability check.
type zeroRandom struct{}

func (zeroRandom) Intn(int) int     { return 0 }
func (zeroRandom) Bool() bool       { return false }
func (zeroRandom) Percent(int) bool { return false }

func recordingStage(name m.StageName, minLevel m.ChaosLevel, calls *[]m.StageName) stages.Stage {
	return stages.Stage{
		Name:     name,
		MinLevel: minLevel,
		Apply: func(text string, _ m.ChaosLevel, _ stages.Random) string {
			*calls = append(*calls, name)
			return text + string(name) + ";"
		},
	}
}

func TestScrambler_LevelGating(t *testing.T) {
	tests := []struct {
		level int
		want  []m.StageName
	}{
		{level: 1, want: []m.StageName{m.StageWhitespace, m.StagePunctuation}},
		{level: 2, want: []m.StageName{m.StageWhitespace, m.StagePunctuation}},
		{level: 3, want: []m.StageName{m.StageWhitespace, m.StagePunctuation, m.StageBraces}},
		{level: 5, want: []m.StageName{m.StageWhitespace, m.StagePunctuation, m.StageBraces, m.StageBlankLines}},
		{level: 7, want: []m.StageName{
			m.StageWhitespace, m.StagePunctuation, m.StageBraces, m.StageBlankLines,
			m.StageOperators, m.StageTrailing,
		}},
		{level: 9, want: m.AllStages()},
		{level: 10, want: m.AllStages()},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level %d", tt.level), func(t *testing.T) {
			var calls []m.StageName

			var pipeline []stages.Stage
			for _, stage := range stages.Default() {
				pipeline = append(pipeline, recordingStage(stage.Name, stage.MinLevel, &calls))
			}

			result := NewScrambler(zeroRandom{}, pipeline...).Scramble("", m.NewConfig(tt.level))

			if diff := cmp.Diff(tt.want, calls); diff != "" {
				t.Errorf("stages run (-want +got):\n%s", diff)
			}

			if diff := cmp.Diff(tt.want, result.Applied); diff != "" {
				t.Errorf("Applied (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScrambler_DisabledStagesAreSkipped(t *testing.T) {
	var calls []m.StageName

	var pipeline []stages.Stage
	for _, stage := range stages.Default() {
		pipeline = append(pipeline, recordingStage(stage.Name, stage.MinLevel, &calls))
	}

	cfg := m.NewConfig(10, m.StagePunctuation, m.StageLineSplit)
	result := NewScrambler(zeroRandom{}, pipeline...).Scramble("x", cfg)

	want := []m.StageName{m.StageWhitespace, m.StageBraces, m.StageBlankLines, m.StageOperators, m.StageTrailing}
	assert.Equal(t, want, calls)
	assert.Equal(t, want, result.Applied)
}

func TestScrambler_StagesRunInOrderOnPreviousOutput(t *testing.T) {
	var calls []m.StageName

	pipeline := []stages.Stage{
		recordingStage("first", 1, &calls),
		recordingStage("second", 1, &calls),
	}

	result := NewScrambler(zeroRandom{}, pipeline...).Scramble("", m.NewConfig(1))

	assert.Equal(t, "first;second;", result.Text)
	assert.True(t, result.Changed)
}

func TestScrambler_ChangedFlag(t *testing.T) {
	identity := stages.Stage{
		Name:     "identity",
		MinLevel: 1,
		Apply:    func(text string, _ m.ChaosLevel, _ stages.Random) string { return text },
	}

	result := NewScrambler(zeroRandom{}, identity).Scramble("class A {}\n", m.NewConfig(5))

	assert.False(t, result.Changed)
	assert.Equal(t, "class A {}\n", result.Text)
	assert.Equal(t, []m.StageName{"identity"}, result.Applied)
}

func TestScrambler_LevelOnePreservesShape(t *testing.T) {
	input := "package foo;\nclass A {\n    int x = 1;\n}\n"

	result := NewScrambler(zeroRandom{}).Scramble(input, m.NewConfig(1))

	lines := m.SplitLines(result.Text)
	require.Equal(t, 4, lines.Len())
	assert.True(t, lines.Terminated)
	assert.Equal(t, "package foo;", lines.Body[0])
	assert.Equal(t, "}", lines.Body[3])
}

func TestScrambler_DefaultPipelineKeepsLineCountBelowLevelFive(t *testing.T) {
	input := "package foo;\nclass A {\n    int x = 1;\n    void f(int a, int b) { g(a, b); }\n}\n"

	for seed := uint64(1); seed <= 50; seed++ {
		for _, level := range []int{1, 2} {
			result := NewScrambler(stages.NewRandom(seed)).Scramble(input, m.NewConfig(level))

			assert.Equal(t, 5, m.SplitLines(result.Text).Len(), "seed %d level %d", seed, level)
			assert.True(t, strings.HasSuffix(result.Text, "\n"))
		}
	}
}

func TestScrambler_PreservesTokensAtEveryLevel(t *testing.T) {
	input := "class A {\n    int f(int a, int b) {\n        return a + b * 2;\n    }\n}\n"
	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}

	for seed := uint64(1); seed <= 20; seed++ {
		for level := 1; level <= 10; level++ {
			result := NewScrambler(stages.NewRandom(seed)).Scramble(input, m.NewConfig(level))
			assert.Equal(t, strip(input), strip(result.Text), "seed %d level %d", seed, level)
		}
	}
}

func TestScrambler_ConcurrentUse(t *testing.T) {
	scrambler := NewScrambler(stages.NewRandom(7))
	input := "class A {\n    int x = 1, y = 2;\n}\n"

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 20 {
				result := scrambler.Scramble(input, m.NewConfig(10))
				assert.NotEmpty(t, result.Text)
			}
		}()
	}

	wg.Wait()
}
