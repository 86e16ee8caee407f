package parser

import (
	"zag/internal/ast"
	"zag/internal/token"
)

// parseTypeExpr parses prefixTypeOp* errorUnionExpr. Pointer, slice,
// array and optional type constructors live here rather than in the
// general prefix level so their qualifiers can be collected.
func (p *parser) parseTypeExpr() (ast.NodeID, error) {
	switch p.peek() {
	case token.Question:
		opTok := p.next()
		rhs, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: opTok, Op: ast.PrefixOptionalType, Rhs: rhs}), nil

	case token.Star, token.StarStar:
		// ** is a pointer to a pointer; the qualifiers belong to the
		// inner one.
		double := p.at(token.StarStar)
		opTok := p.next()
		var info ast.PtrInfo
		if err := p.parsePtrModifiers(&info); err != nil {
			return ast.NoNode, err
		}
		rhs, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
		if err != nil {
			return ast.NoNode, err
		}
		node := p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: opTok, Op: ast.PrefixPtrType, Ptr: info, Rhs: rhs})
		if double {
			node = p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: opTok, Op: ast.PrefixPtrType, Rhs: node})
		}
		return node, nil

	case token.LBracket:
		lbracket := p.next()
		switch {
		case p.eat(token.Star).Valid():
			// [*]T, a many-item pointer
			if _, err := p.expect(token.RBracket); err != nil {
				return ast.NoNode, err
			}
			var info ast.PtrInfo
			if err := p.parsePtrModifiers(&info); err != nil {
				return ast.NoNode, err
			}
			rhs, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
			if err != nil {
				return ast.NoNode, err
			}
			return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: lbracket, Op: ast.PrefixPtrType, Ptr: info, Rhs: rhs}), nil

		case p.eat(token.RBracket).Valid():
			// []T slice
			var info ast.PtrInfo
			if err := p.parsePtrModifiers(&info); err != nil {
				return ast.NoNode, err
			}
			rhs, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
			if err != nil {
				return ast.NoNode, err
			}
			return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: lbracket, Op: ast.PrefixSliceType, Ptr: info, Rhs: rhs}), nil

		default:
			// [len]T array
			length, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
			if err != nil {
				return ast.NoNode, err
			}
			if _, err := p.expect(token.RBracket); err != nil {
				return ast.NoNode, err
			}
			rhs, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
			if err != nil {
				return ast.NoNode, err
			}
			return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: lbracket, Op: ast.PrefixArrayType, ArrayLen: length, Rhs: rhs}), nil
		}

	default:
		return p.parseErrorUnionExpr()
	}
}

// parsePtrModifiers collects align/const/volatile/allowzero qualifiers
// on a pointer or slice type. Repeating a qualifier is a structural
// error that aborts the rule, not a value silently overwritten.
func (p *parser) parsePtrModifiers(info *ast.PtrInfo) error {
	for {
		switch p.peek() {
		case token.KwAlign:
			if info.Align.IsValid() {
				return p.fail(ast.Error{Kind: ast.ErrExtraAlignQualifier, Token: p.s.PeekIndex()})
			}
			p.next()
			if _, err := p.expect(token.LParen); err != nil {
				return err
			}
			expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
			if err != nil {
				return err
			}
			info.Align = expr
			if p.eat(token.Colon).Valid() {
				start, err := p.expectIntegerLiteral()
				if err != nil {
					return err
				}
				if _, err := p.expect(token.Colon); err != nil {
					return err
				}
				end, err := p.expectIntegerLiteral()
				if err != nil {
					return err
				}
				info.BitRangeStart, info.BitRangeEnd = start, end
			}
			if _, err := p.expect(token.RParen); err != nil {
				return err
			}
		case token.KwConst:
			if info.ConstToken.Valid() {
				return p.fail(ast.Error{Kind: ast.ErrExtraConstQualifier, Token: p.s.PeekIndex()})
			}
			info.ConstToken = token.Some(p.next())
		case token.KwVolatile:
			if info.VolatileToken.Valid() {
				return p.fail(ast.Error{Kind: ast.ErrExtraVolatileQualifier, Token: p.s.PeekIndex()})
			}
			info.VolatileToken = token.Some(p.next())
		case token.KwAllowZero:
			if info.AllowZeroToken.Valid() {
				return p.fail(ast.Error{Kind: ast.ErrExtraAllowZeroQualifier, Token: p.s.PeekIndex()})
			}
			info.AllowZeroToken = token.Some(p.next())
		default:
			return nil
		}
	}
}

func (p *parser) expectIntegerLiteral() (ast.NodeID, error) {
	if !p.at(token.IntLit) {
		return ast.NoNode, p.failExpected(ast.ErrExpectedIntegerLiteral)
	}
	return p.tree.NewTokenNode(ast.NodeIntLit, p.next()), nil
}

// parseErrorUnionExpr parses suffixExpr (! typeExpr)?.
func (p *parser) parseErrorUnionExpr() (ast.NodeID, error) {
	lhs, err := p.parseSuffixExpr()
	if err != nil || !lhs.IsValid() {
		return lhs, err
	}
	bang := p.eat(token.Bang)
	if !bang.Valid() {
		return lhs, nil
	}
	rhs, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewInfixOp(ast.InfixOpNode{
		OpToken: bang.Unwrap(),
		Op:      ast.InfixErrorUnion,
		Lhs:     lhs,
		Rhs:     rhs,
	}), nil
}

// parseSuffixExpr parses a primary followed by any number of suffix
// operations and calls. `async` must resolve to either an async
// function type or an async call.
func (p *parser) parseSuffixExpr() (ast.NodeID, error) {
	if p.at(token.KwAsync) {
		asyncTok := p.next()
		if p.at(token.KwFn) {
			// async fn type; the prototype parser owns the async token
			p.s.PutBack(asyncTok)
		} else {
			return p.parseAsyncCall(asyncTok)
		}
	}
	res, err := p.parsePrimaryTypeExpr()
	if err != nil || !res.IsValid() {
		return res, err
	}
	for {
		node, err := p.parseSuffixOp(res)
		if err != nil {
			return ast.NoNode, err
		}
		if node.IsValid() {
			res = node
			continue
		}
		if p.at(token.LParen) {
			res, err = p.parseCallArgs(res, 0)
			if err != nil {
				return ast.NoNode, err
			}
			continue
		}
		return res, nil
	}
}

func (p *parser) parseAsyncCall(asyncTok token.Index) (ast.NodeID, error) {
	res, err := p.expectNode(p.parsePrimaryTypeExpr, ast.ErrExpectedPrimaryExpr)
	if err != nil {
		return ast.NoNode, err
	}
	for {
		node, err := p.parseSuffixOp(res)
		if err != nil {
			return ast.NoNode, err
		}
		if !node.IsValid() {
			break
		}
		res = node
	}
	if !p.at(token.LParen) {
		return ast.NoNode, p.failExpected(ast.ErrExpectedParamList)
	}
	return p.parseCallArgs(res, token.Some(asyncTok))
}

func (p *parser) parseCallArgs(lhs ast.NodeID, asyncTok token.OptIndex) (ast.NodeID, error) {
	lparen := p.next()
	args, rparen, err := p.parseList(p.parseExpr, token.RParen)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewSuffixOp(ast.SuffixOpNode{
		Lhs:        lhs,
		Op:         ast.SuffixCall,
		AsyncToken: asyncTok,
		LToken:     token.Some(lparen),
		Exprs:      args,
		RToken:     rparen,
	}), nil
}

// parseSuffixOp parses one indexing, slicing, field access, deref or
// unwrap suffix, or returns NoNode.
func (p *parser) parseSuffixOp(lhs ast.NodeID) (ast.NodeID, error) {
	switch p.peek() {
	case token.LBracket:
		lbracket := p.next()
		start, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
		if p.eat(token.PeriodPeriod).Valid() {
			exprs := []ast.NodeID{start}
			end, err := p.parseExpr()
			if err != nil {
				return ast.NoNode, err
			}
			if end.IsValid() {
				exprs = append(exprs, end)
			}
			rbracket, err := p.expect(token.RBracket)
			if err != nil {
				return ast.NoNode, err
			}
			return p.tree.NewSuffixOp(ast.SuffixOpNode{
				Lhs:    lhs,
				Op:     ast.SuffixSlice,
				LToken: token.Some(lbracket),
				Exprs:  exprs,
				RToken: rbracket,
			}), nil
		}
		rbracket, err := p.expect(token.RBracket)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewSuffixOp(ast.SuffixOpNode{
			Lhs:    lhs,
			Op:     ast.SuffixArrayAccess,
			LToken: token.Some(lbracket),
			Exprs:  []ast.NodeID{start},
			RToken: rbracket,
		}), nil

	case token.Period:
		period := p.next()
		switch p.peek() {
		case token.Ident:
			name := p.next()
			return p.tree.NewInfixOp(ast.InfixOpNode{
				OpToken: period,
				Op:      ast.InfixPeriod,
				Lhs:     lhs,
				Rhs:     p.tree.NewTokenNode(ast.NodeIdentifier, name),
			}), nil
		case token.Star:
			return p.tree.NewSuffixOp(ast.SuffixOpNode{Lhs: lhs, Op: ast.SuffixDeref, RToken: p.next()}), nil
		case token.Question:
			return p.tree.NewSuffixOp(ast.SuffixOpNode{Lhs: lhs, Op: ast.SuffixUnwrapOptional, RToken: p.next()}), nil
		default:
			return ast.NoNode, p.fail(ast.Error{Kind: ast.ErrExpectedToken, Token: p.s.PeekIndex(), Expected: token.Ident})
		}

	default:
		return ast.NoNode, nil
	}
}

// parseCurlySuffixExpr parses typeExpr followed by an optional
// initializer list.
func (p *parser) parseCurlySuffixExpr() (ast.NodeID, error) {
	lhs, err := p.parseTypeExpr()
	if err != nil || !lhs.IsValid() {
		return lhs, err
	}
	if !p.at(token.LBrace) {
		return lhs, nil
	}
	return p.parseInitList(lhs)
}

// parseInitList parses `{ .a = x, .b = y }`, `{ x, y }` or `{}` as a
// struct or array initializer suffix on lhs.
func (p *parser) parseInitList(lhs ast.NodeID) (ast.NodeID, error) {
	lbrace := p.next()
	if p.at(token.RBrace) {
		return p.tree.NewSuffixOp(ast.SuffixOpNode{
			Lhs:    lhs,
			Op:     ast.SuffixStructInit,
			LToken: token.Some(lbrace),
			RToken: p.next(),
		}), nil
	}

	first, err := p.parseFieldInitializer()
	if err != nil {
		return ast.NoNode, err
	}
	if first.IsValid() {
		fields := []ast.NodeID{first}
		for p.eat(token.Comma).Valid() {
			next, err := p.parseFieldInitializer()
			if err != nil {
				return ast.NoNode, err
			}
			if !next.IsValid() {
				break
			}
			fields = append(fields, next)
		}
		if !p.at(token.RBrace) {
			return ast.NoNode, p.fail(ast.Error{Kind: ast.ErrExpectedCommaOrEnd, Token: p.s.PeekIndex(), Expected: token.RBrace})
		}
		return p.tree.NewSuffixOp(ast.SuffixOpNode{
			Lhs:    lhs,
			Op:     ast.SuffixStructInit,
			LToken: token.Some(lbrace),
			Exprs:  fields,
			RToken: p.next(),
		}), nil
	}

	items, rbrace, err := p.parseList(p.parseExpr, token.RBrace)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewSuffixOp(ast.SuffixOpNode{
		Lhs:    lhs,
		Op:     ast.SuffixArrayInit,
		LToken: token.Some(lbrace),
		Exprs:  items,
		RToken: rbrace,
	}), nil
}

// parseFieldInitializer parses `.name = expr`, backing off without
// consuming anything when the dot starts an enum literal instead.
func (p *parser) parseFieldInitializer() (ast.NodeID, error) {
	if !p.at(token.Period) {
		return ast.NoNode, nil
	}
	period := p.next()
	if !p.at(token.Ident) {
		p.s.PutBack(period)
		return ast.NoNode, nil
	}
	name := p.next()
	if !p.at(token.Eq) {
		p.s.PutBack(period)
		return ast.NoNode, nil
	}
	p.next()
	expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewFieldInitializer(ast.FieldInitializerNode{
		PeriodToken: period,
		NameToken:   name,
		Expr:        expr,
	}), nil
}
