// Package testkit holds structural invariant checks shared by tests
// and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"zag/internal/ast"
	"zag/internal/source"
	"zag/internal/token"
)

// CheckTokenInvariants verifies a token stream against its source:
// spans stay inside the content, offsets never run backwards, and the
// stream ends with exactly one EOF.
func CheckTokenInvariants(tokens []token.Token, content []byte) error {
	limit, err := safecast.Conv[uint32](len(content))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}
	if len(tokens) == 0 {
		return fmt.Errorf("empty token stream, want at least EOF")
	}
	var prevEnd uint32
	for i, tok := range tokens {
		if tok.Start > tok.End {
			return fmt.Errorf("token %d (%v) has inverted span %d..%d", i, tok.Kind, tok.Start, tok.End)
		}
		if tok.End > limit {
			return fmt.Errorf("token %d (%v) ends beyond content: %d > %d", i, tok.Kind, tok.End, limit)
		}
		if tok.Start < prevEnd {
			return fmt.Errorf("token %d (%v) starts before previous end: %d < %d", i, tok.Kind, tok.Start, prevEnd)
		}
		prevEnd = tok.End
		if tok.Kind == token.EOF && i != len(tokens)-1 {
			return fmt.Errorf("EOF at index %d is not the last token", i)
		}
	}
	if tokens[len(tokens)-1].Kind != token.EOF {
		return fmt.Errorf("stream does not end with EOF")
	}
	return nil
}

// CheckTreeInvariants verifies a parsed tree: the root exists, every
// top-level declaration has a well-formed span inside the file, and
// every recorded error points at a real token.
func CheckTreeInvariants(tree *ast.Tree, fileID source.FileID) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	if tree.Root == ast.NoNode {
		return fmt.Errorf("tree has no root")
	}
	limit, err := safecast.Conv[uint32](len(tree.Source))
	if err != nil {
		return fmt.Errorf("content length overflow: %w", err)
	}

	for _, decl := range tree.RootNode(tree.Root).Decls {
		if decl == ast.NoNode {
			return fmt.Errorf("root holds an absent declaration")
		}
		sp := tree.Span(decl, fileID)
		if sp.Start > sp.End {
			return fmt.Errorf("%v has inverted span %d..%d", tree.Kind(decl), sp.Start, sp.End)
		}
		if sp.End > limit {
			return fmt.Errorf("%v span ends beyond content: %d > %d", tree.Kind(decl), sp.End, limit)
		}
	}

	tokenCount, err := safecast.Conv[uint32](len(tree.Tokens))
	if err != nil {
		return fmt.Errorf("token count overflow: %w", err)
	}
	for i, e := range tree.Errors {
		if uint32(e.Token) >= tokenCount {
			return fmt.Errorf("error %d points at token %d of %d", i, e.Token, tokenCount)
		}
	}
	return nil
}
