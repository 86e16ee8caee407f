package parser

import (
	"zag/internal/ast"
	"zag/internal/token"
)

// parsePrimaryExpr parses the head of an expression: control flow,
// conditionals, loops and blocks with expression bodies, or a
// curly-suffix expression.
func (p *parser) parsePrimaryExpr() (ast.NodeID, error) {
	switch p.peek() {
	case token.KwAsm:
		return p.parseAsmExpr()

	case token.KwIf:
		return p.parseIfExpr(p.parseExpr, ast.ErrExpectedExpr)

	case token.KwBreak:
		ltok := p.next()
		label, err := p.parseBreakLabel()
		if err != nil {
			return ast.NoNode, err
		}
		rhs, err := p.parseExpr()
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewControlFlowExpr(ast.ControlFlowExprNode{
			LTok:  ltok,
			Kind:  ast.ControlFlowBreak,
			Label: label,
			Rhs:   rhs,
		}), nil

	case token.KwContinue:
		ltok := p.next()
		label, err := p.parseBreakLabel()
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewControlFlowExpr(ast.ControlFlowExprNode{
			LTok:  ltok,
			Kind:  ast.ControlFlowContinue,
			Label: label,
		}), nil

	case token.KwReturn:
		ltok := p.next()
		rhs, err := p.parseExpr()
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewControlFlowExpr(ast.ControlFlowExprNode{
			LTok: ltok,
			Kind: ast.ControlFlowReturn,
			Rhs:  rhs,
		}), nil

	case token.KwComptime:
		tok := p.next()
		expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewComptime(ast.ComptimeNode{ComptimeToken: tok, Expr: expr}), nil

	case token.KwResume:
		tok := p.next()
		rhs, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewPrefixOp(ast.PrefixOpNode{OpToken: tok, Op: ast.PrefixResume, Rhs: rhs}), nil

	case token.Ident:
		if label := p.parseBlockLabel(); label.Valid() {
			switch p.peek() {
			case token.LBrace:
				return p.parseBlock(label)
			case token.KwInline, token.KwWhile, token.KwFor:
				return p.parseLoopExpr(label, p.parseExpr, ast.ErrExpectedExpr)
			}
			// the colon belonged to something else
			p.s.PutBack(label.Unwrap())
		}
		return p.parseCurlySuffixExpr()

	case token.LBrace:
		return p.parseBlock(0)

	case token.KwInline, token.KwWhile, token.KwFor:
		return p.parseLoopExpr(0, p.parseExpr, ast.ErrExpectedExpr)

	default:
		return p.parseCurlySuffixExpr()
	}
}

// parseBreakLabel parses `: name` after break or continue.
func (p *parser) parseBreakLabel() (token.OptIndex, error) {
	if !p.eat(token.Colon).Valid() {
		return 0, nil
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return 0, err
	}
	return token.Some(name), nil
}

// parseIfExpr parses an if with bodies produced by the given parser,
// so the same shape serves expression and type positions.
func (p *parser) parseIfExpr(body func() (ast.NodeID, error), bodyErr ast.ErrorKind) (ast.NodeID, error) {
	ifTok := p.next()
	cond, payload, err := p.parseCondition()
	if err != nil {
		return ast.NoNode, err
	}
	bodyNode, err := p.expectNode(body, bodyErr)
	if err != nil {
		return ast.NoNode, err
	}
	node := ast.IfNode{
		IfToken:   ifTok,
		Condition: cond,
		Payload:   payload,
		Body:      bodyNode,
	}
	if elseTok := p.eat(token.KwElse); elseTok.Valid() {
		elsePayload, err := p.parsePayload()
		if err != nil {
			return ast.NoNode, err
		}
		elseBody, err := p.expectNode(body, bodyErr)
		if err != nil {
			return ast.NoNode, err
		}
		node.Else = p.tree.NewElse(ast.ElseNode{
			ElseToken: elseTok.Unwrap(),
			Payload:   elsePayload,
			Body:      elseBody,
		})
	}
	return p.tree.NewIf(node), nil
}

// parseLoopExpr parses inline? (while | for) with the given body
// parser.
func (p *parser) parseLoopExpr(label token.OptIndex, body func() (ast.NodeID, error), bodyErr ast.ErrorKind) (ast.NodeID, error) {
	inline := p.eat(token.KwInline)
	switch p.peek() {
	case token.KwWhile:
		return p.parseWhileExpr(label, inline, body, bodyErr)
	case token.KwFor:
		return p.parseForExpr(label, inline, body, bodyErr)
	default:
		return ast.NoNode, p.failExpected(ast.ErrExpectedInlinable)
	}
}

func (p *parser) parseWhileExpr(label, inline token.OptIndex, body func() (ast.NodeID, error), bodyErr ast.ErrorKind) (ast.NodeID, error) {
	whileTok := p.next()
	cond, payload, err := p.parseCondition()
	if err != nil {
		return ast.NoNode, err
	}
	continueExpr, err := p.parseWhileContinueExpr()
	if err != nil {
		return ast.NoNode, err
	}
	bodyNode, err := p.expectNode(body, bodyErr)
	if err != nil {
		return ast.NoNode, err
	}
	node := ast.WhileNode{
		Label:       label,
		InlineToken: inline,
		WhileToken:  whileTok,
		Condition:   cond,
		Payload:     payload,
		Continue:    continueExpr,
		Body:        bodyNode,
	}
	if elseTok := p.eat(token.KwElse); elseTok.Valid() {
		elsePayload, err := p.parsePayload()
		if err != nil {
			return ast.NoNode, err
		}
		elseBody, err := p.expectNode(body, bodyErr)
		if err != nil {
			return ast.NoNode, err
		}
		node.Else = p.tree.NewElse(ast.ElseNode{
			ElseToken: elseTok.Unwrap(),
			Payload:   elsePayload,
			Body:      elseBody,
		})
	}
	return p.tree.NewWhile(node), nil
}

func (p *parser) parseForExpr(label, inline token.OptIndex, body func() (ast.NodeID, error), bodyErr ast.ErrorKind) (ast.NodeID, error) {
	forTok := p.next()
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	array, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return ast.NoNode, err
	}
	payload, err := p.parsePtrIndexPayload()
	if err != nil {
		return ast.NoNode, err
	}
	if !payload.IsValid() {
		return ast.NoNode, p.failExpected(ast.ErrExpectedPayload)
	}
	bodyNode, err := p.expectNode(body, bodyErr)
	if err != nil {
		return ast.NoNode, err
	}
	node := ast.ForNode{
		Label:       label,
		InlineToken: inline,
		ForToken:    forTok,
		ArrayExpr:   array,
		Payload:     payload,
		Body:        bodyNode,
	}
	if elseTok := p.eat(token.KwElse); elseTok.Valid() {
		elseBody, err := p.expectNode(body, bodyErr)
		if err != nil {
			return ast.NoNode, err
		}
		node.Else = p.tree.NewElse(ast.ElseNode{ElseToken: elseTok.Unwrap(), Body: elseBody})
	}
	return p.tree.NewFor(node), nil
}

// parsePrimaryTypeExpr parses the leaves of the type grammar:
// literals, identifiers, container declarations, builtin calls,
// grouped expressions and the type-bodied control forms.
func (p *parser) parsePrimaryTypeExpr() (ast.NodeID, error) {
	switch p.peek() {
	case token.Builtin:
		return p.parseBuiltinCall()
	case token.CharLit:
		return p.tree.NewTokenNode(ast.NodeCharLit, p.next()), nil
	case token.IntLit:
		return p.tree.NewTokenNode(ast.NodeIntLit, p.next()), nil
	case token.FloatLit:
		return p.tree.NewTokenNode(ast.NodeFloatLit, p.next()), nil
	case token.StringLit, token.MultilineStringLine:
		return p.parseStringLiteral()
	case token.KwTrue, token.KwFalse:
		return p.tree.NewTokenNode(ast.NodeBoolLit, p.next()), nil
	case token.KwNull:
		return p.tree.NewTokenNode(ast.NodeNullLit, p.next()), nil
	case token.KwUndefined:
		return p.tree.NewTokenNode(ast.NodeUndefinedLit, p.next()), nil
	case token.KwUnreachable:
		return p.tree.NewTokenNode(ast.NodeUnreachable, p.next()), nil

	case token.Period:
		// enum literal `.Name`
		period := p.next()
		if !p.at(token.Ident) {
			p.s.PutBack(period)
			return ast.NoNode, nil
		}
		return p.tree.NewEnumLit(ast.EnumLitNode{PeriodToken: period, NameToken: p.next()}), nil

	case token.KwError:
		return p.parseErrorTypeExpr()

	case token.KwExtern, token.KwPacked:
		layout := p.next()
		switch p.peek() {
		case token.KwStruct, token.KwEnum, token.KwUnion:
			return p.parseContainerDecl(token.Some(layout))
		}
		p.s.PutBack(layout)
		if p.at(token.KwExtern) {
			// extern fn type
			return p.parseFnProto(fnProtoPrefix{})
		}
		return ast.NoNode, nil

	case token.KwStruct, token.KwEnum, token.KwUnion:
		return p.parseContainerDecl(0)

	case token.KwFn, token.KwNakedCC, token.KwStdcallCC, token.KwAsync:
		return p.parseFnProto(fnProtoPrefix{})

	case token.KwIf:
		return p.parseIfExpr(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
	case token.KwInline, token.KwWhile, token.KwFor:
		return p.parseLoopExpr(0, p.parseTypeExpr, ast.ErrExpectedTypeExpr)
	case token.KwSwitch:
		return p.parseSwitchExpr()

	case token.KwComptime:
		tok := p.next()
		expr, err := p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewComptime(ast.ComptimeNode{ComptimeToken: tok, Expr: expr}), nil

	case token.Ident:
		if label := p.parseBlockLabel(); label.Valid() {
			switch p.peek() {
			case token.LBrace:
				return p.parseBlock(label)
			case token.KwInline, token.KwWhile, token.KwFor:
				return p.parseLoopExpr(label, p.parseTypeExpr, ast.ErrExpectedTypeExpr)
			}
			p.s.PutBack(label.Unwrap())
		}
		return p.tree.NewTokenNode(ast.NodeIdentifier, p.next()), nil

	case token.LParen:
		lparen := p.next()
		expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
		rparen, err := p.expect(token.RParen)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewGroupedExpr(ast.GroupedExprNode{LParen: lparen, Expr: expr, RParen: rparen}), nil

	default:
		return ast.NoNode, nil
	}
}

// parseErrorTypeExpr parses `error{A, B}` or `error.Name`.
func (p *parser) parseErrorTypeExpr() (ast.NodeID, error) {
	errorTok := p.next()
	if p.eat(token.LBrace).Valid() {
		decls, rbrace, err := p.parseList(p.parseErrorTag, token.RBrace)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewErrorSetDecl(ast.ErrorSetDeclNode{
			ErrorToken: errorTok,
			Decls:      decls,
			RBrace:     rbrace,
		}), nil
	}
	period, err := p.expect(token.Period)
	if err != nil {
		return ast.NoNode, err
	}
	name, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewInfixOp(ast.InfixOpNode{
		OpToken: period,
		Op:      ast.InfixPeriod,
		Lhs:     p.tree.NewTokenNode(ast.NodeErrorType, errorTok),
		Rhs:     p.tree.NewTokenNode(ast.NodeIdentifier, name),
	}), nil
}

func (p *parser) parseErrorTag() (ast.NodeID, error) {
	doc := p.parseDocComment()
	if !p.at(token.Ident) {
		if doc.IsValid() {
			p.record(ast.Error{Kind: ast.ErrUnattachedDocComment, Token: p.tree.FirstToken(doc)})
		}
		return ast.NoNode, nil
	}
	return p.tree.NewErrorTag(ast.ErrorTagNode{Doc: doc, NameToken: p.next()}), nil
}

// parseBuiltinCall parses `@name(args)`.
func (p *parser) parseBuiltinCall() (ast.NodeID, error) {
	builtinTok := p.next()
	if !p.at(token.LParen) {
		return ast.NoNode, p.failExpected(ast.ErrExpectedCall)
	}
	p.next()
	params, rparen, err := p.parseList(p.parseExpr, token.RParen)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewBuiltinCall(ast.BuiltinCallNode{
		BuiltinToken: builtinTok,
		Params:       params,
		RParen:       rparen,
	}), nil
}

// parseContainerDecl parses struct/enum/union with an optional layout
// token already consumed by the caller.
func (p *parser) parseContainerDecl(layout token.OptIndex) (ast.NodeID, error) {
	kindTok := p.next()
	node := ast.ContainerDeclNode{LayoutToken: layout, KindToken: kindTok}
	switch p.tree.Token(kindTok).Kind {
	case token.KwStruct:
		node.Kind = ast.ContainerStruct
	case token.KwEnum:
		node.Kind = ast.ContainerEnum
		if p.eat(token.LParen).Valid() {
			arg, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
			if err != nil {
				return ast.NoNode, err
			}
			if _, err := p.expect(token.RParen); err != nil {
				return ast.NoNode, err
			}
			node.InitKind, node.InitArg = ast.ContainerInitType, arg
		}
	case token.KwUnion:
		node.Kind = ast.ContainerUnion
		if p.eat(token.LParen).Valid() {
			if p.eat(token.KwEnum).Valid() {
				node.InitKind = ast.ContainerInitEnum
				if p.eat(token.LParen).Valid() {
					arg, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
					if err != nil {
						return ast.NoNode, err
					}
					if _, err := p.expect(token.RParen); err != nil {
						return ast.NoNode, err
					}
					node.InitArg = arg
				}
			} else {
				arg, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
				if err != nil {
					return ast.NoNode, err
				}
				node.InitKind, node.InitArg = ast.ContainerInitType, arg
			}
			if _, err := p.expect(token.RParen); err != nil {
				return ast.NoNode, err
			}
		}
	}
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return ast.NoNode, err
	}
	node.LBrace = lbrace
	node.Members = p.parseContainerMembers(false)
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return ast.NoNode, err
	}
	node.RBrace = rbrace
	return p.tree.NewContainerDecl(node), nil
}

// parseSwitchExpr parses `switch (expr) { prongs }`.
func (p *parser) parseSwitchExpr() (ast.NodeID, error) {
	switchTok := p.next()
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.LBrace); err != nil {
		return ast.NoNode, err
	}
	cases, rbrace, err := p.parseList(p.parseSwitchProng, token.RBrace)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewSwitch(ast.SwitchNode{
		SwitchToken: switchTok,
		Expr:        expr,
		Cases:       cases,
		RBrace:      rbrace,
	}), nil
}

// parseSwitchProng parses `items => expr` or `else => expr`.
func (p *parser) parseSwitchProng() (ast.NodeID, error) {
	items, err := p.parseSwitchCaseItems()
	if err != nil {
		return ast.NoNode, err
	}
	if len(items) == 0 {
		return ast.NoNode, nil
	}
	arrow, err := p.expect(token.FatArrow)
	if err != nil {
		return ast.NoNode, err
	}
	payload, err := p.parsePtrPayload()
	if err != nil {
		return ast.NoNode, err
	}
	expr, err := p.expectNode(p.parseAssignExpr, ast.ErrExpectedExprOrAssignment)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewSwitchCase(ast.SwitchCaseNode{
		Items:   items,
		Arrow:   arrow,
		Payload: payload,
		Expr:    expr,
	}), nil
}

func (p *parser) parseSwitchCaseItems() ([]ast.NodeID, error) {
	if elseTok := p.eat(token.KwElse); elseTok.Valid() {
		return []ast.NodeID{p.tree.NewTokenNode(ast.NodeSwitchElse, elseTok.Unwrap())}, nil
	}
	var items []ast.NodeID
	for {
		item, err := p.parseSwitchItem()
		if err != nil {
			return nil, err
		}
		if !item.IsValid() {
			return items, nil
		}
		items = append(items, item)
		if !p.eat(token.Comma).Valid() {
			return items, nil
		}
	}
}

// parseSwitchItem parses an expression or an inclusive range
// `a ... b`.
func (p *parser) parseSwitchItem() (ast.NodeID, error) {
	expr, err := p.parseExpr()
	if err != nil || !expr.IsValid() {
		return expr, err
	}
	ellipsis := p.eat(token.Ellipsis)
	if !ellipsis.Valid() {
		return expr, nil
	}
	rhs, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewInfixOp(ast.InfixOpNode{
		OpToken: ellipsis.Unwrap(),
		Op:      ast.InfixRange,
		Lhs:     expr,
		Rhs:     rhs,
	}), nil
}
