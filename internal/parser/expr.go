package parser

import (
	"zag/internal/ast"
	"zag/internal/token"
)

// opChain controls how many operators a binary chain consumes: exactly
// zero-or-one for the non-associative levels, any number (left folded)
// for the associative ones.
type opChain uint8

const (
	chainOnce opChain = iota
	chainInfinitely
)

// parseBinOp parses child (op child)* per the chain mode, building
// left-associative infix nodes. matchOp consumes nothing; the operator
// token is consumed here.
func (p *parser) parseBinOp(chain opChain, child func() (ast.NodeID, error), matchOp func(token.Kind) (ast.InfixOp, bool)) (ast.NodeID, error) {
	lhs, err := child()
	if err != nil || !lhs.IsValid() {
		return lhs, err
	}
	for {
		op, ok := matchOp(p.peek())
		if !ok {
			return lhs, nil
		}
		opTok := p.next()

		// catch may bind an error capture before its right operand
		var payload ast.NodeID
		if op == ast.InfixCatch {
			payload, err = p.parsePayload()
			if err != nil {
				return ast.NoNode, err
			}
		}
		rhs, err := p.expectNode(child, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
		lhs = p.tree.NewInfixOp(ast.InfixOpNode{
			OpToken: opTok,
			Op:      op,
			Lhs:     lhs,
			Payload: payload,
			Rhs:     rhs,
		})
		if chain == chainOnce {
			return lhs, nil
		}
	}
}

// parseExpr parses an expression without assignment operators, or
// returns NoNode.
// parseExpr parses try* boolOrExpr. A leading try wraps the whole
// expression, so `try a + b` propagates the error of the sum.
func (p *parser) parseExpr() (ast.NodeID, error) {
	if p.at(token.KwTry) {
		opTok := p.next()
		rhs, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: opTok, Op: ast.PrefixTry, Rhs: rhs}), nil
	}
	return p.parseBoolOrExpr()
}

// parseAssignExpr parses expr (assignOp expr)?. Assignment does not
// chain.
func (p *parser) parseAssignExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainOnce, p.parseExpr, assignOp)
}

func (p *parser) parseBoolOrExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainInfinitely, p.parseBoolAndExpr, func(k token.Kind) (ast.InfixOp, bool) {
		return ast.InfixBoolOr, k == token.KwOr
	})
}

func (p *parser) parseBoolAndExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainInfinitely, p.parseCompareExpr, func(k token.Kind) (ast.InfixOp, bool) {
		return ast.InfixBoolAnd, k == token.KwAnd
	})
}

// Comparison does not chain: `a == b == c` is a syntax error one
// level up, not a boolean cascade.
func (p *parser) parseCompareExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainOnce, p.parseBitwiseExpr, compareOp)
}

func (p *parser) parseBitwiseExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainInfinitely, p.parseBitShiftExpr, bitwiseOp)
}

func (p *parser) parseBitShiftExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainInfinitely, p.parseAdditionExpr, bitShiftOp)
}

func (p *parser) parseAdditionExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainInfinitely, p.parseMultiplyExpr, additionOp)
}

func (p *parser) parseMultiplyExpr() (ast.NodeID, error) {
	return p.parseBinOp(chainInfinitely, p.parsePrefixExpr, multiplyOp)
}

// parsePrefixExpr parses prefixOp* primaryExpr, right to left.
func (p *parser) parsePrefixExpr() (ast.NodeID, error) {
	op, ok := prefixOp(p.peek())
	if !ok {
		return p.parsePrimaryExpr()
	}
	opTok := p.next()
	rhs, err := p.expectNode(p.parsePrefixExpr, ast.ErrExpectedPrefixExpr)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: opTok, Op: op, Rhs: rhs}), nil
}

func assignOp(k token.Kind) (ast.InfixOp, bool) {
	switch k {
	case token.Eq:
		return ast.InfixAssign, true
	case token.PlusEq:
		return ast.InfixAssignAdd, true
	case token.PlusPercentEq:
		return ast.InfixAssignAddWrap, true
	case token.MinusEq:
		return ast.InfixAssignSub, true
	case token.MinusPercentEq:
		return ast.InfixAssignSubWrap, true
	case token.StarEq:
		return ast.InfixAssignMul, true
	case token.StarPercentEq:
		return ast.InfixAssignMulWrap, true
	case token.SlashEq:
		return ast.InfixAssignDiv, true
	case token.PercentEq:
		return ast.InfixAssignMod, true
	case token.AmpEq:
		return ast.InfixAssignBitAnd, true
	case token.PipeEq:
		return ast.InfixAssignBitOr, true
	case token.CaretEq:
		return ast.InfixAssignBitXor, true
	case token.ShlEq:
		return ast.InfixAssignBitShiftLeft, true
	case token.ShrEq:
		return ast.InfixAssignBitShiftRight, true
	default:
		return 0, false
	}
}

func compareOp(k token.Kind) (ast.InfixOp, bool) {
	switch k {
	case token.EqEq:
		return ast.InfixEqualEqual, true
	case token.BangEq:
		return ast.InfixBangEqual, true
	case token.Lt:
		return ast.InfixLessThan, true
	case token.LtEq:
		return ast.InfixLessOrEqual, true
	case token.Gt:
		return ast.InfixGreaterThan, true
	case token.GtEq:
		return ast.InfixGreaterOrEqual, true
	default:
		return 0, false
	}
}

func bitwiseOp(k token.Kind) (ast.InfixOp, bool) {
	switch k {
	case token.Amp:
		return ast.InfixBitAnd, true
	case token.Caret:
		return ast.InfixBitXor, true
	case token.Pipe:
		return ast.InfixBitOr, true
	case token.KwOrElse:
		return ast.InfixOrElse, true
	case token.KwCatch:
		return ast.InfixCatch, true
	default:
		return 0, false
	}
}

func bitShiftOp(k token.Kind) (ast.InfixOp, bool) {
	switch k {
	case token.Shl:
		return ast.InfixBitShiftLeft, true
	case token.Shr:
		return ast.InfixBitShiftRight, true
	default:
		return 0, false
	}
}

func additionOp(k token.Kind) (ast.InfixOp, bool) {
	switch k {
	case token.Plus:
		return ast.InfixAdd, true
	case token.Minus:
		return ast.InfixSub, true
	case token.PlusPlus:
		return ast.InfixArrayCat, true
	case token.PlusPercent:
		return ast.InfixAddWrap, true
	case token.MinusPercent:
		return ast.InfixSubWrap, true
	default:
		return 0, false
	}
}

func multiplyOp(k token.Kind) (ast.InfixOp, bool) {
	switch k {
	case token.PipePipe:
		return ast.InfixMergeErrorSets, true
	case token.Star:
		return ast.InfixMul, true
	case token.Slash:
		return ast.InfixDiv, true
	case token.Percent:
		return ast.InfixMod, true
	case token.StarStar:
		return ast.InfixArrayMult, true
	case token.StarPercent:
		return ast.InfixMulWrap, true
	default:
		return 0, false
	}
}

func prefixOp(k token.Kind) (ast.PrefixOp, bool) {
	switch k {
	case token.Bang:
		return ast.PrefixBoolNot, true
	case token.Minus:
		return ast.PrefixNegation, true
	case token.Tilde:
		return ast.PrefixBitNot, true
	case token.MinusPercent:
		return ast.PrefixNegationWrap, true
	case token.Amp:
		return ast.PrefixAddressOf, true
	case token.KwTry:
		return ast.PrefixTry, true
	case token.KwAwait:
		return ast.PrefixAwait, true
	default:
		return 0, false
	}
}
