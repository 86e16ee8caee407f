package parser

import (
	"zag/internal/ast"
	"zag/internal/token"
)

// parseAsmExpr parses `asm volatile? (template : outputs : inputs :
// clobbers)`. Each colon section is optional but positional.
func (p *parser) parseAsmExpr() (ast.NodeID, error) {
	asmTok := p.next()
	volatileTok := p.eat(token.KwVolatile)
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	template, err := p.expectNode(p.parseStringLiteral, ast.ErrExpectedStringLiteral)
	if err != nil {
		return ast.NoNode, err
	}
	node := ast.AsmNode{
		AsmToken:      asmTok,
		VolatileToken: volatileTok,
		Template:      template,
	}
	if p.eat(token.Colon).Valid() {
		node.Outputs, err = p.parseAsmItems(p.parseAsmOutputItem)
		if err != nil {
			return ast.NoNode, err
		}
		if p.eat(token.Colon).Valid() {
			node.Inputs, err = p.parseAsmItems(p.parseAsmInputItem)
			if err != nil {
				return ast.NoNode, err
			}
			if p.eat(token.Colon).Valid() {
				node.Clobbers, err = p.parseAsmItems(p.parseStringLiteral)
				if err != nil {
					return ast.NoNode, err
				}
			}
		}
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return ast.NoNode, err
	}
	node.RParen = rparen
	return p.tree.NewAsm(node), nil
}

// parseAsmItems parses a comma-separated list that is terminated by
// whatever the item parser declines to consume.
func (p *parser) parseAsmItems(item func() (ast.NodeID, error)) ([]ast.NodeID, error) {
	var items []ast.NodeID
	for {
		n, err := item()
		if err != nil {
			return nil, err
		}
		if !n.IsValid() {
			return items, nil
		}
		items = append(items, n)
		if !p.eat(token.Comma).Valid() {
			return items, nil
		}
	}
}

// parseAsmOutputItem parses `[sym] "constraint" (-> type | var)`.
func (p *parser) parseAsmOutputItem() (ast.NodeID, error) {
	if !p.at(token.LBracket) {
		return ast.NoNode, nil
	}
	lbracket := p.next()
	symTok, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return ast.NoNode, err
	}
	constraint, err := p.expectNode(p.parseStringLiteral, ast.ErrExpectedStringLiteral)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	node := ast.AsmOutputNode{
		LBracket:   lbracket,
		Symbol:     p.tree.NewTokenNode(ast.NodeIdentifier, symTok),
		Constraint: constraint,
	}
	switch {
	case p.eat(token.Arrow).Valid():
		node.ReturnType, err = p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
		if err != nil {
			return ast.NoNode, err
		}
	case p.at(token.Ident):
		node.Variable = p.tree.NewTokenNode(ast.NodeIdentifier, p.next())
	default:
		return ast.NoNode, p.failExpected(ast.ErrExpectedAsmOutputReturnOrType)
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return ast.NoNode, err
	}
	node.RParen = rparen
	return p.tree.NewAsmOutput(node), nil
}

// parseAsmInputItem parses `[sym] "constraint" (expr)`.
func (p *parser) parseAsmInputItem() (ast.NodeID, error) {
	if !p.at(token.LBracket) {
		return ast.NoNode, nil
	}
	lbracket := p.next()
	symTok, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return ast.NoNode, err
	}
	constraint, err := p.expectNode(p.parseStringLiteral, ast.ErrExpectedStringLiteral)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
	if err != nil {
		return ast.NoNode, err
	}
	rparen, err := p.expect(token.RParen)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewAsmInput(ast.AsmInputNode{
		LBracket:   lbracket,
		Symbol:     p.tree.NewTokenNode(ast.NodeIdentifier, symTok),
		Constraint: constraint,
		Expr:       expr,
		RParen:     rparen,
	}), nil
}
