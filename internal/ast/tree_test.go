package ast

import (
	"testing"

	"zag/internal/lexer"
	"zag/internal/token"
)

// buildExprTree hand-assembles the tree for `a + b * c` so traversal
// can be checked without involving the parser.
func buildExprTree(t *testing.T) (*Tree, NodeID) {
	t.Helper()
	src := []byte("a + b * c")
	tree := NewTree(src, lexer.Tokenize(src))

	a := tree.NewTokenNode(NodeIdentifier, 0)
	b := tree.NewTokenNode(NodeIdentifier, 2)
	c := tree.NewTokenNode(NodeIdentifier, 4)
	mul := tree.NewInfixOp(InfixOpNode{OpToken: 3, Op: InfixMul, Lhs: b, Rhs: c})
	add := tree.NewInfixOp(InfixOpNode{OpToken: 1, Op: InfixAdd, Lhs: a, Rhs: mul})
	return tree, add
}

func TestTreeTokenExtent(t *testing.T) {
	tree, add := buildExprTree(t)

	if got := tree.FirstToken(add); got != 0 {
		t.Errorf("FirstToken = %d, want 0", got)
	}
	if got := tree.LastToken(add); got != 4 {
		t.Errorf("LastToken = %d, want 4", got)
	}

	span := tree.Span(add, 1)
	if span.Start != 0 || span.End != uint32(len(tree.Source)) {
		t.Errorf("Span = [%d, %d), want [0, %d)", span.Start, span.End, len(tree.Source))
	}
}

func TestTreeChildrenOrder(t *testing.T) {
	tree, add := buildExprTree(t)

	children := tree.Children(add, nil)
	if len(children) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(children))
	}
	if tree.Kind(children[0]) != NodeIdentifier {
		t.Errorf("first child kind = %s, want Identifier", tree.Kind(children[0]))
	}
	if tree.Kind(children[1]) != NodeInfixOp {
		t.Errorf("second child kind = %s, want InfixOp", tree.Kind(children[1]))
	}
	if got := tree.Child(add, 2); got != NoNode {
		t.Errorf("Child(2) = %d, want NoNode", got)
	}

	// Every child's extent stays inside the parent's extent.
	for _, child := range children {
		if tree.FirstToken(child) < tree.FirstToken(add) || tree.LastToken(child) > tree.LastToken(add) {
			t.Errorf("child [%d, %d] escapes parent [%d, %d]",
				tree.FirstToken(child), tree.LastToken(child),
				tree.FirstToken(add), tree.LastToken(add))
		}
	}
}

func TestRequireTerminator(t *testing.T) {
	src := []byte("if (a) b else { c; }")
	tree := NewTree(src, lexer.Tokenize(src))

	cond := tree.NewTokenNode(NodeIdentifier, 2)
	thenBody := tree.NewTokenNode(NodeIdentifier, 4)
	elseBody := tree.NewBlock(BlockNode{LBrace: 6, RBrace: 9})
	bareIf := tree.NewIf(IfNode{IfToken: 0, Condition: cond, Body: thenBody})

	if !tree.RequireTerminator(bareIf) {
		t.Error("if with expression body should require a terminator")
	}

	elseNode := tree.NewElse(ElseNode{ElseToken: 5, Body: elseBody})
	fullIf := tree.NewIf(IfNode{IfToken: 0, Condition: cond, Body: thenBody, Else: elseNode})
	if tree.RequireTerminator(fullIf) {
		t.Error("if ending in a block else should not require a terminator")
	}

	deferred := tree.NewDefer(DeferNode{DeferToken: 0, Expr: fullIf})
	if tree.RequireTerminator(deferred) {
		t.Error("defer should follow its expression")
	}
	if !tree.RequireTerminator(tree.NewDefer(DeferNode{DeferToken: 0, Expr: bareIf})) {
		t.Error("defer of a bare if should require a terminator")
	}

	if tree.RequireTerminator(elseBody) {
		t.Error("a block never requires a terminator")
	}
}

func TestTokenNodeKindGuard(t *testing.T) {
	tree := NewTree(nil, lexer.Tokenize(nil))

	defer func() {
		if recover() == nil {
			t.Error("NewTokenNode should panic for a payload kind")
		}
	}()
	tree.NewTokenNode(NodeInfixOp, 0)
}

func TestErrorMessages(t *testing.T) {
	src := []byte("const x")
	tokens := lexer.Tokenize(src)

	tests := []struct {
		name string
		err  Error
		want string
	}{
		{
			name: "expected token",
			err:  Error{Kind: ErrExpectedToken, Token: 2, Expected: token.Semicolon},
			want: "expected ';', found EOF",
		},
		{
			name: "expected expression",
			err:  Error{Kind: ErrExpectedExpr, Token: 1},
			want: "expected expression, found an identifier",
		},
		{
			name: "extra qualifier",
			err:  Error{Kind: ErrExtraAlignQualifier, Token: 0},
			want: "extra align qualifier",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Message(tokens); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
