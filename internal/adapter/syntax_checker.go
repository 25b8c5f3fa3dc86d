package adapter

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	m "github.com/mouse-blink/scramble/internal/model"
)

// maxErrorDepth bounds recursion on pathological trees.
const maxErrorDepth = 1000

// SyntaxChecker counts syntax errors in a source text.
type SyntaxChecker interface {
	// CountErrors returns the number of ERROR and MISSING nodes in src.
	// ok is false when the language has no grammar.
	CountErrors(ctx context.Context, lang m.Language, src []byte) (count int, ok bool, err error)
}

// TreeSitterChecker parses sources with tree-sitter grammars.
type TreeSitterChecker struct{}

// NewTreeSitterChecker constructs a TreeSitterChecker.
func NewTreeSitterChecker() *TreeSitterChecker {
	return &TreeSitterChecker{}
}

// CountErrors parses src with a fresh parser, so it is safe for concurrent use.
func (c *TreeSitterChecker) CountErrors(ctx context.Context, lang m.Language, src []byte) (int, bool, error) {
	grammar := grammarFor(lang)
	if grammar == nil {
		return 0, false, nil
	}

	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(grammar)

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return 0, false, fmt.Errorf("parse %s source: %w", lang, err)
	}
	defer tree.Close()

	return countErrorNodes(tree.RootNode(), 0), true, nil
}

func grammarFor(lang m.Language) *sitter.Language {
	switch lang {
	case m.LanguageJava:
		return java.GetLanguage()
	default:
		return nil
	}
}

func countErrorNodes(node *sitter.Node, depth int) int {
	if node == nil || depth > maxErrorDepth {
		return 0
	}

	count := 0
	if node.IsError() || node.IsMissing() {
		count++
	}

	if !node.HasError() {
		return count
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		count += countErrorNodes(node.Child(i), depth+1)
	}

	return count
}
