package stages

import (
	"cmp"
	"regexp"
	"slices"
	"strings"

	m "github.com/mouse-blink/scramble/internal/model"
)

// spacedOperators get random spacing on both sides.
var spacedOperators = []string{"+", "-", "*", "/", "=", "==", "!=", "&&", "||", "<", ">", "<=", ">="}

// protectedOperators contain spaced characters but must stay intact, so they are
// matched as whole tokens and copied through unchanged.
var protectedOperators = []string{
	"++", "--", "+=", "-=", "*=", "/=", "%=", "&=", "|=", "^=",
	"->", "=>", "<<", ">>", "<<=", ">>=", ">>>", ">>>=",
	"//", "/*", "*/", "::", "===", "!==",
}

var (
	operatorPattern   = compileOperatorPattern()
	protectedOperator = toSet(protectedOperators)
)

// compileOperatorPattern builds a single alternation with the longest tokens
// first. Go regexps prefer the earliest alternative, so every match is the
// longest operator starting at that position.
func compileOperatorPattern() *regexp.Regexp {
	tokens := slices.Concat(spacedOperators, protectedOperators)
	slices.SortStableFunc(tokens, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	quoted := make([]string, len(tokens))
	for i, token := range tokens {
		quoted[i] = regexp.QuoteMeta(token)
	}

	return regexp.MustCompile(`[ \t]*(?:` + strings.Join(quoted, "|") + `)[ \t]*`)
}

// SpaceOperators rewrites the horizontal whitespace around operators with 0-3
// random spaces per side. Newlines are never consumed.
func SpaceOperators(text string, _ m.ChaosLevel, rnd Random) string {
	return operatorPattern.ReplaceAllStringFunc(text, func(match string) string {
		op := strings.Trim(match, " \t")
		if _, ok := protectedOperator[op]; ok {
			return match
		}

		return spaces(rnd.Intn(4)) + op + spaces(rnd.Intn(4))
	})
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}

	return set
}
