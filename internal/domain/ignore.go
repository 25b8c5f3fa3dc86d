package domain

import (
	"slices"
	"strings"

	m "github.com/mouse-blink/scramble/internal/model"
)

const ignoreDirective = "scramble:ignore"

type ignoreRule struct {
	all   bool
	names map[string]struct{}
}

func (r ignoreRule) ignores(stage m.StageName) bool {
	if r.all {
		return true
	}

	_, ok := r.names[strings.ToLower(string(stage))]

	return ok
}

// apply switches off the stages the rule names.
func (r ignoreRule) apply(cfg m.Config) m.Config {
	var disabled []m.StageName

	for _, stage := range m.AllStages() {
		if r.ignores(stage) {
			disabled = append(disabled, stage)
		}
	}

	return cfg.WithDisabled(disabled...)
}

// unknown lists directive names that match no stage.
func (r ignoreRule) unknown() []string {
	var names []string

	for name := range r.names {
		if !m.IsKnownStage(m.StageName(name)) {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

func mergeIgnoreRule(dst *ignoreRule, src ignoreRule) {
	if src.all {
		dst.all = true
		dst.names = nil

		return
	}

	if dst.all || len(src.names) == 0 {
		return
	}

	if dst.names == nil {
		dst.names = make(map[string]struct{}, len(src.names))
	}

	for name := range src.names {
		dst.names[name] = struct{}{}
	}
}

// parseIgnoreDirective reads one comment line. Line comments, block comment
// openers and the "*" continuation lines of a block are accepted.
func parseIgnoreDirective(commentText string) (ignoreRule, bool) {
	s := strings.TrimSpace(commentText)

	switch {
	case strings.HasPrefix(s, "//"):
		s = strings.TrimPrefix(s, "//")
	case strings.HasPrefix(s, "/*"):
		s = strings.TrimPrefix(strings.TrimPrefix(s, "/*"), "*")
	case strings.HasPrefix(s, "*"):
		s = strings.TrimPrefix(s, "*")
	}

	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "*/"))

	if !strings.HasPrefix(s, ignoreDirective) {
		return ignoreRule{}, false
	}

	rest := strings.TrimPrefix(s, ignoreDirective)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return ignoreRule{}, false
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return ignoreRule{all: true}, true
	}

	parts := strings.Split(rest, ",")
	rule := ignoreRule{names: make(map[string]struct{}, len(parts))}

	for _, part := range parts {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" {
			continue
		}

		rule.names[name] = struct{}{}
	}

	if len(rule.names) == 0 {
		rule.all = true
		rule.names = nil
	}

	return rule, true
}

// fileIgnoreRule merges the directives found in the comment header of text,
// that is every comment before the first line of code.
func fileIgnoreRule(text string) ignoreRule {
	var (
		rule    ignoreRule
		inBlock bool
	)

	for _, raw := range m.SplitLines(text).Body {
		line := strings.TrimSpace(raw)

		switch {
		case inBlock:
			inBlock = !strings.Contains(line, "*/")
		case line == "":
			continue
		case strings.HasPrefix(line, "//"):
		case strings.HasPrefix(line, "/*"):
			inBlock = !strings.Contains(line[2:], "*/")
		default:
			return rule
		}

		if r, ok := parseIgnoreDirective(line); ok {
			mergeIgnoreRule(&rule, r)
		}
	}

	return rule
}
