package stages

import (
	m "github.com/mouse-blink/scramble/internal/model"
)

// ShuffleBlankLines injects random blank lines, then collapses long blank runs
// and, occasionally, every double blank line as well.
func ShuffleBlankLines(text string, level m.ChaosLevel, rnd Random) string {
	lines := m.SplitLines(text)

	body := injectBlankLines(lines.Body, level, rnd)
	body = collapseBlankRuns(body, 3)

	if rnd.Percent(int(level) * 2) {
		body = collapseBlankRuns(body, 2)
	}

	lines.Body = body

	return lines.String()
}

func injectBlankLines(lines []string, level m.ChaosLevel, rnd Random) []string {
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		if rnd.Percent(int(level) * 3) {
			for range rnd.Intn(4) {
				out = append(out, "")
			}
		}

		out = append(out, line)
	}

	return out
}

// collapseBlankRuns replaces every run of at least minRun blank lines with the
// first line of the run.
func collapseBlankRuns(lines []string, minRun int) []string {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); {
		if !isBlank(lines[i]) {
			out = append(out, lines[i])
			i++

			continue
		}

		end := i
		for end < len(lines) && isBlank(lines[end]) {
			end++
		}

		if end-i >= minRun {
			out = append(out, lines[i])
		} else {
			out = append(out, lines[i:end]...)
		}

		i = end
	}

	return out
}
