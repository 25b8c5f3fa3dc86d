package adapter

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineDiffRenderer_Render(t *testing.T) {
	r := NewLineDiffRenderer()

	t.Run("identical texts render nothing", func(t *testing.T) {
		assert.Empty(t, r.Render("A.java", "a\nb\n", "a\nb\n"))
	})

	t.Run("single changed line", func(t *testing.T) {
		got := r.Render("A.java", "a\nb\nc\n", "a\nB\nc\n")

		want := strings.Join([]string{
			"--- A.java (original)",
			"+++ A.java (scrambled)",
			"@@ -1,3 +1,3 @@",
			" a",
			"-b",
			"+B",
			" c",
			"",
		}, "\n")
		assert.Equal(t, want, got)
	})

	t.Run("inserted blank lines", func(t *testing.T) {
		got := r.Render("A.java", "a\nb\n", "a\n\n\nb\n")

		assert.Contains(t, got, "@@ -1,2 +1,4 @@\n a\n+\n+\n b\n")
	})

	t.Run("distant changes split into hunks", func(t *testing.T) {
		var before, after []string
		for i := range 20 {
			line := fmt.Sprintf("line %d;", i)
			before = append(before, line)
			if i == 1 || i == 17 {
				line = "  " + line + "   "
			}
			after = append(after, line)
		}

		got := r.Render("A.java", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")

		assert.Equal(t, 2, strings.Count(got, "\n@@ -"))
		assert.Contains(t, got, "@@ -1,5 +1,5 @@\n line 0;\n-line 1;\n+  line 1;   \n line 2;\n")
		assert.NotContains(t, got, " line 9;")
	})

	t.Run("changes after the first line of a long file", func(t *testing.T) {
		var before, after []string
		for i := range 24 {
			line := fmt.Sprintf("    value%d = compute(%d);", i, i)
			before = append(before, line)
			if i == 1 || i == 2 || i == 21 {
				line = "\t" + strings.TrimSpace(line) + "  "
			}
			after = append(after, line)
		}

		got := r.Render("B.java", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n")

		assert.Contains(t, got, "@@ -1,6 +1,6 @@\n     value0 = compute(0);\n"+
			"-    value1 = compute(1);\n-    value2 = compute(2);\n"+
			"+\tvalue1 = compute(1);  \n+\tvalue2 = compute(2);  \n     value3 = compute(3);\n")
		assert.Contains(t, got, "-    value21 = compute(21);\n+\tvalue21 = compute(21);  \n")
		assert.Equal(t, 3, strings.Count(got, "\n-"))
		assert.Equal(t, 3, strings.Count(got, "\n+")-1)
	})

	t.Run("nearby changes share a hunk", func(t *testing.T) {
		got := r.Render("A.java", "1\n2\n3\n4\n5\n6\n", "1\nX\n3\n4\n5\nY\n")

		assert.Equal(t, 1, strings.Count(got, "@@ -"))
	})
}

func TestHunkStart(t *testing.T) {
	assert.Equal(t, 1, hunkStart(0, 3))
	assert.Equal(t, 4, hunkStart(4, 0))
}
