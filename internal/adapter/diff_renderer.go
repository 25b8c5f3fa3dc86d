package adapter

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	m "github.com/mouse-blink/scramble/internal/model"
)

const defaultDiffContext = 3

// DiffRenderer turns a before/after pair into a printable line diff.
type DiffRenderer interface {
	// Render returns "" when before and after are identical.
	Render(path m.Path, before, after string) string
}

// LineDiffRenderer renders unified-style line diffs computed by diffmatchpatch.
type LineDiffRenderer struct {
	dmp     *diffmatchpatch.DiffMatchPatch
	context int
}

// NewLineDiffRenderer returns a renderer with three lines of context.
func NewLineDiffRenderer() *LineDiffRenderer {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0

	return &LineDiffRenderer{dmp: dmp, context: defaultDiffContext}
}

type lineOp struct {
	kind byte // ' ', '-' or '+'
	old  int  // old lines consumed before this op
	new  int  // new lines consumed before this op
	text string
}

// Render implements DiffRenderer.
func (r *LineDiffRenderer) Render(path m.Path, before, after string) string {
	if before == after {
		return ""
	}

	ops := r.lineOps(before, after)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s (original)\n+++ %s (scrambled)\n", path, path)

	for _, span := range hunkSpans(ops, r.context) {
		writeHunk(&b, ops[span[0]:span[1]])
	}

	return b.String()
}

func (r *LineDiffRenderer) lineOps(before, after string) []lineOp {
	a, b, lineArray := r.dmp.DiffLinesToChars(before, after)
	diffs := r.dmp.DiffMain(a, b, false)
	diffs = r.dmp.DiffCharsToLines(diffs, lineArray)

	var (
		ops      []lineOp
		old, new int
	)

	for _, d := range diffs {
		if d.Text == "" {
			continue
		}

		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		for _, line := range lines {
			switch d.Type {
			case diffmatchpatch.DiffEqual:
				ops = append(ops, lineOp{kind: ' ', old: old, new: new, text: line})
				old++
				new++
			case diffmatchpatch.DiffDelete:
				ops = append(ops, lineOp{kind: '-', old: old, new: new, text: line})
				old++
			case diffmatchpatch.DiffInsert:
				ops = append(ops, lineOp{kind: '+', old: old, new: new, text: line})
				new++
			}
		}
	}

	return ops
}

// hunkSpans returns [start, end) ranges of ops, each holding a group of
// changes padded with up to context unchanged lines. Changes separated by
// more than 2*context unchanged lines land in separate hunks.
func hunkSpans(ops []lineOp, context int) [][2]int {
	var spans [][2]int

	i := 0

	for {
		for i < len(ops) && ops[i].kind == ' ' {
			i++
		}

		if i == len(ops) {
			return spans
		}

		start := max(0, i-context)
		end := i

		for end < len(ops) {
			if ops[end].kind != ' ' {
				end++
				continue
			}

			run := end
			for run < len(ops) && ops[run].kind == ' ' {
				run++
			}

			if run == len(ops) || run-end > 2*context {
				end = min(run, end+context)
				break
			}

			end = run
		}

		spans = append(spans, [2]int{start, end})
		i = end
	}
}

func writeHunk(b *strings.Builder, ops []lineOp) {
	oldCount, newCount := 0, 0

	for _, op := range ops {
		if op.kind != '+' {
			oldCount++
		}

		if op.kind != '-' {
			newCount++
		}
	}

	fmt.Fprintf(b, "@@ -%d,%d +%d,%d @@\n",
		hunkStart(ops[0].old, oldCount), oldCount,
		hunkStart(ops[0].new, newCount), newCount)

	for _, op := range ops {
		b.WriteByte(op.kind)
		b.WriteString(op.text)
		b.WriteByte('\n')
	}
}

// hunkStart follows the unified format: an empty range points at the line before it.
func hunkStart(consumed, count int) int {
	if count == 0 {
		return consumed
	}

	return consumed + 1
}
