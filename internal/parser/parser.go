package parser

import (
	"errors"

	"zag/internal/ast"
	"zag/internal/lexer"
	"zag/internal/token"
)

// errRecover unwinds a failed grammar rule to the nearest recovery
// point (a statement boundary inside a block, a declaration boundary
// inside a container). The error it reports is already recorded on
// the tree by the time errRecover propagates.
var errRecover = errors.New("parser: syntax error")

// Parse tokenizes source and parses it into a tree. It always returns
// a usable tree: syntax errors are recorded in tree.Errors and
// represented as partial subtrees, never as a failed parse.
func Parse(source []byte) *ast.Tree {
	tokens := lexer.Tokenize(source)
	tree := ast.NewTree(source, tokens)
	p := parser{tree: tree, s: NewStream(tokens)}
	tree.Root = p.parseRoot()
	return tree
}

type parser struct {
	tree *ast.Tree
	s    *Stream
}

func (p *parser) peek() token.Kind {
	return p.s.Peek().Kind
}

func (p *parser) at(k token.Kind) bool {
	return p.peek() == k
}

func (p *parser) next() token.Index {
	return p.s.Next()
}

// eat consumes the next token when it matches k.
func (p *parser) eat(k token.Kind) token.OptIndex {
	if p.at(k) {
		return token.Some(p.next())
	}
	return 0
}

// record pushes a syntax error without unwinding.
func (p *parser) record(e ast.Error) {
	p.tree.AddError(e)
}

// fail pushes a syntax error and unwinds to the nearest recovery
// point.
func (p *parser) fail(e ast.Error) error {
	p.record(e)
	return errRecover
}

func (p *parser) failExpected(kind ast.ErrorKind) error {
	return p.fail(ast.Error{Kind: kind, Token: p.s.PeekIndex()})
}

// expect consumes a token of kind k or fails with ExpectedToken.
func (p *parser) expect(k token.Kind) (token.Index, error) {
	if p.at(k) {
		return p.next(), nil
	}
	return 0, p.fail(ast.Error{Kind: ast.ErrExpectedToken, Token: p.s.PeekIndex(), Expected: k})
}

// expectNode runs a sub-parser that is allowed to match nothing and
// turns "matched nothing" into kind.
func (p *parser) expectNode(parse func() (ast.NodeID, error), kind ast.ErrorKind) (ast.NodeID, error) {
	node, err := parse()
	if err != nil {
		return ast.NoNode, err
	}
	if !node.IsValid() {
		return ast.NoNode, p.failExpected(kind)
	}
	return node, nil
}

// parseList parses a comma-separated, optionally trailing-comma list
// closed by end. item reports "no more items" by returning NoNode.
func (p *parser) parseList(item func() (ast.NodeID, error), end token.Kind) ([]ast.NodeID, token.Index, error) {
	var nodes []ast.NodeID
	for {
		n, err := item()
		if err != nil {
			return nil, 0, err
		}
		if !n.IsValid() {
			break
		}
		nodes = append(nodes, n)
		if !p.eat(token.Comma).Valid() {
			break
		}
	}
	if p.at(end) {
		return nodes, p.next(), nil
	}
	return nil, 0, p.fail(ast.Error{Kind: ast.ErrExpectedCommaOrEnd, Token: p.s.PeekIndex(), Expected: end})
}

// recoverContainerMember skips tokens until the next plausible
// declaration start. A semicolon or closing brace at nesting depth
// zero ends the bad member; nested brackets are balanced so a brace
// inside a skipped initializer does not end recovery early.
func (p *parser) recoverContainerMember() {
	depth := 0
	for {
		switch p.peek() {
		case token.EOF:
			return
		case token.KwTest, token.KwComptime, token.KwPub, token.KwUsingNamespace, token.KwUse,
			token.KwConst, token.KwVar, token.KwFn, token.KwExtern, token.KwExport,
			token.KwInline, token.KwThreadLocal:
			if depth == 0 {
				return
			}
		case token.LBrace, token.LBracket, token.LParen:
			depth++
		case token.RBracket, token.RParen:
			if depth > 0 {
				depth--
			}
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		case token.Semicolon:
			if depth == 0 {
				p.next()
				return
			}
		}
		p.next()
	}
}

// recoverStatement skips tokens until the next statement boundary.
func (p *parser) recoverStatement() {
	depth := 0
	for {
		switch p.peek() {
		case token.EOF:
			return
		case token.LBrace, token.LBracket, token.LParen:
			depth++
		case token.RBracket, token.RParen:
			if depth > 0 {
				depth--
			}
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		case token.Semicolon:
			if depth == 0 {
				p.next()
				return
			}
		}
		p.next()
	}
}
