package stages

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/scramble/internal/model"
)

func TestPadLineEnds(t *testing.T) {
	rnd := &scriptedRandom{percents: []bool{true, false}, ints: []int{4}}

	assert.Equal(t, "a;    \nb;\n", PadLineEnds("a;\nb;\n", 7, rnd))
}

func TestPadLineEnds_KeepsVisibleContent(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		out := PadLineEnds(sampleSource, 10, NewRandom(seed))

		in := m.SplitLines(sampleSource)
		got := m.SplitLines(out)
		require.Equal(t, in.Len(), got.Len())

		for i := range in.Body {
			require.True(t, strings.HasPrefix(got.Body[i], in.Body[i]))
			assert.Empty(t, strings.Trim(got.Body[i][len(in.Body[i]):], " "))
		}
	}
}
