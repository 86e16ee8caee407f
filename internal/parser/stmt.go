package parser

import (
	"zag/internal/ast"
	"zag/internal/token"
)

// parseBlock parses `{ ... }`. A failed statement is skipped to the
// next statement boundary and parsing continues inside the same
// block.
func (p *parser) parseBlock(label token.OptIndex) (ast.NodeID, error) {
	lbrace, err := p.expect(token.LBrace)
	if err != nil {
		return ast.NoNode, err
	}
	var stmts []ast.NodeID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			p.recoverStatement()
			continue
		}
		if !stmt.IsValid() {
			p.record(ast.Error{Kind: ast.ErrExpectedStatement, Token: p.s.PeekIndex()})
			p.recoverStatement()
			continue
		}
		stmts = append(stmts, stmt)
	}
	rbrace, err := p.expect(token.RBrace)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewBlock(ast.BlockNode{
		Label:      label,
		LBrace:     lbrace,
		Statements: stmts,
		RBrace:     rbrace,
	}), nil
}

// parseStatement parses one statement, or returns NoNode when the
// next token cannot start one.
func (p *parser) parseStatement() (ast.NodeID, error) {
	doc := p.parseDocComment()
	comptimeTok := p.eat(token.KwComptime)

	switch p.peek() {
	case token.KwConst, token.KwVar:
		return p.parseVarDecl(varDeclPrefix{doc: doc, comptimeTok: comptimeTok})
	}
	if comptimeTok.Valid() {
		body, err := p.expectNode(p.parseBlockExprStatement, ast.ErrExpectedBlockOrAssignment)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewComptime(ast.ComptimeNode{
			Doc:           doc,
			ComptimeToken: comptimeTok.Unwrap(),
			Expr:          body,
		}), nil
	}
	if doc.IsValid() {
		p.record(ast.Error{Kind: ast.ErrUnattachedDocComment, Token: p.tree.FirstToken(doc)})
	}

	switch p.peek() {
	case token.KwSuspend:
		suspendTok := p.next()
		if p.eat(token.Semicolon).Valid() {
			return p.tree.NewSuspend(ast.SuspendNode{SuspendToken: suspendTok}), nil
		}
		body, err := p.expectNode(p.parseBlockExprStatement, ast.ErrExpectedBlockOrExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewSuspend(ast.SuspendNode{SuspendToken: suspendTok, Body: body}), nil

	case token.KwDefer:
		deferTok := p.next()
		expr, err := p.expectNode(p.parseBlockExprStatement, ast.ErrExpectedBlockOrExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewDefer(ast.DeferNode{DeferToken: deferTok, Expr: expr}), nil

	case token.KwErrdefer:
		deferTok := p.next()
		payload, err := p.parsePayload()
		if err != nil {
			return ast.NoNode, err
		}
		expr, err := p.expectNode(p.parseBlockExprStatement, ast.ErrExpectedBlockOrExpr)
		if err != nil {
			return ast.NoNode, err
		}
		return p.tree.NewDefer(ast.DeferNode{DeferToken: deferTok, Payload: payload, Expr: expr}), nil

	case token.KwIf:
		return p.parseIfStatement()

	case token.KwSwitch:
		return p.parseSwitchExpr()
	}

	label := p.parseBlockLabel()
	switch p.peek() {
	case token.LBrace:
		return p.parseBlock(label)
	case token.KwInline, token.KwWhile, token.KwFor:
		return p.parseLoopStatement(label)
	}
	if label.Valid() {
		return ast.NoNode, p.failExpected(ast.ErrExpectedLabelable)
	}

	expr, err := p.parseAssignExpr()
	if err != nil {
		return ast.NoNode, err
	}
	if !expr.IsValid() {
		return ast.NoNode, nil
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoNode, err
	}
	return expr, nil
}

// parseBlockLabel consumes `ident :` and returns the label token, or
// consumes nothing.
func (p *parser) parseBlockLabel() token.OptIndex {
	if !p.at(token.Ident) {
		return 0
	}
	ident := p.next()
	if p.eat(token.Colon).Valid() {
		return token.Some(ident)
	}
	p.s.PutBack(ident)
	return 0
}

// parseBlockExpr parses an optionally labeled block, or returns
// NoNode leaving the stream untouched.
func (p *parser) parseBlockExpr() (ast.NodeID, error) {
	label := p.parseBlockLabel()
	if !p.at(token.LBrace) {
		if label.Valid() {
			p.s.PutBack(label.Unwrap())
		}
		return ast.NoNode, nil
	}
	return p.parseBlock(label)
}

// parseBlockExprStatement parses a block expression or an assignment
// expression terminated by a semicolon.
func (p *parser) parseBlockExprStatement() (ast.NodeID, error) {
	block, err := p.parseBlockExpr()
	if err != nil || block.IsValid() {
		return block, err
	}
	expr, err := p.parseAssignExpr()
	if err != nil || !expr.IsValid() {
		return expr, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.NoNode, err
	}
	return expr, nil
}

func (p *parser) parseIfStatement() (ast.NodeID, error) {
	ifTok := p.next()
	cond, payload, err := p.parseCondition()
	if err != nil {
		return ast.NoNode, err
	}

	body, err := p.parseBlockExpr()
	if err != nil {
		return ast.NoNode, err
	}
	exprBody := false
	if !body.IsValid() {
		body, err = p.parseAssignExpr()
		if err != nil {
			return ast.NoNode, err
		}
		if !body.IsValid() {
			return ast.NoNode, p.failExpected(ast.ErrExpectedBlockOrAssignment)
		}
		exprBody = true
		if p.eat(token.Semicolon).Valid() {
			return p.tree.NewIf(ast.IfNode{IfToken: ifTok, Condition: cond, Payload: payload, Body: body}), nil
		}
	}

	var elseNode ast.NodeID
	if elseTok := p.eat(token.KwElse); elseTok.Valid() {
		elsePayload, err := p.parsePayload()
		if err != nil {
			return ast.NoNode, err
		}
		elseBody, err := p.expectNode(p.parseStatement, ast.ErrExpectedStatement)
		if err != nil {
			return ast.NoNode, err
		}
		elseNode = p.tree.NewElse(ast.ElseNode{ElseToken: elseTok.Unwrap(), Payload: elsePayload, Body: elseBody})
	} else if exprBody {
		p.record(ast.Error{Kind: ast.ErrExpectedSemiOrElse, Token: p.s.PeekIndex()})
	}
	return p.tree.NewIf(ast.IfNode{
		IfToken:   ifTok,
		Condition: cond,
		Payload:   payload,
		Body:      body,
		Else:      elseNode,
	}), nil
}

// parseCondition parses `( expr )` plus the optional capture payload
// shared by if and while.
func (p *parser) parseCondition() (cond, payload ast.NodeID, err error) {
	if _, err = p.expect(token.LParen); err != nil {
		return
	}
	if cond, err = p.expectNode(p.parseExpr, ast.ErrExpectedExpr); err != nil {
		return
	}
	if _, err = p.expect(token.RParen); err != nil {
		return
	}
	payload, err = p.parsePtrPayload()
	return
}

func (p *parser) parseLoopStatement(label token.OptIndex) (ast.NodeID, error) {
	inline := p.eat(token.KwInline)
	switch p.peek() {
	case token.KwWhile:
		return p.parseWhileStatement(label, inline)
	case token.KwFor:
		return p.parseForStatement(label, inline)
	}
	return ast.NoNode, p.failExpected(ast.ErrExpectedInlinable)
}

func (p *parser) parseWhileStatement(label, inline token.OptIndex) (ast.NodeID, error) {
	whileTok := p.next()
	cond, payload, err := p.parseCondition()
	if err != nil {
		return ast.NoNode, err
	}
	continueExpr, err := p.parseWhileContinueExpr()
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
	}

	body, exprBody, done, err := p.parseLoopBody()
	if err != nil {
		return ast.NoNode, err
	}
	node.Body = body
	if done {
		return p.tree.NewWhile(node), nil
	}
	node.Else, err = p.parseLoopElse(exprBody, true)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewWhile(node), nil
}

func (p *parser) parseForStatement(label, inline token.OptIndex) (ast.NodeID, error) {
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
	node := ast.ForNode{
		Label:       label,
		InlineToken: inline,
		ForToken:    forTok,
		ArrayExpr:   array,
		Payload:     payload,
	}

	body, exprBody, done, err := p.parseLoopBody()
	if err != nil {
		return ast.NoNode, err
	}
	node.Body = body
	if done {
		return p.tree.NewFor(node), nil
	}
	node.Else, err = p.parseLoopElse(exprBody, false)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewFor(node), nil
}

// parseLoopBody parses a loop body in statement position: a block
// expression, or an assignment expression whose trailing semicolon
// finishes the statement. done reports that the statement is complete
// and no else branch may follow.
func (p *parser) parseLoopBody() (body ast.NodeID, exprBody, done bool, err error) {
	body, err = p.parseBlockExpr()
	if err != nil {
		return
	}
	if body.IsValid() {
		return
	}
	body, err = p.parseAssignExpr()
	if err != nil {
		return
	}
	if !body.IsValid() {
		err = p.failExpected(ast.ErrExpectedBlockOrAssignment)
		return
	}
	exprBody = true
	if p.eat(token.Semicolon).Valid() {
		done = true
	}
	return
}

// parseLoopElse parses the optional else branch of a loop statement.
// An expression-bodied loop without else is missing its terminator.
func (p *parser) parseLoopElse(exprBody, allowPayload bool) (ast.NodeID, error) {
	elseTok := p.eat(token.KwElse)
	if !elseTok.Valid() {
		if exprBody {
			p.record(ast.Error{Kind: ast.ErrExpectedSemiOrElse, Token: p.s.PeekIndex()})
		}
		return ast.NoNode, nil
	}
	var payload ast.NodeID
	if allowPayload {
		var err error
		payload, err = p.parsePayload()
		if err != nil {
			return ast.NoNode, err
		}
	}
	body, err := p.expectNode(p.parseStatement, ast.ErrExpectedStatement)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewElse(ast.ElseNode{ElseToken: elseTok.Unwrap(), Payload: payload, Body: body}), nil
}

// parseWhileContinueExpr parses `: ( assignExpr )`.
func (p *parser) parseWhileContinueExpr() (ast.NodeID, error) {
	if !p.eat(token.Colon).Valid() {
		return ast.NoNode, nil
	}
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	expr, err := p.expectNode(p.parseAssignExpr, ast.ErrExpectedExprOrAssignment)
	if err != nil {
		return ast.NoNode, err
	}
	if _, err := p.expect(token.RParen); err != nil {
		return ast.NoNode, err
	}
	return expr, nil
}

// parsePayload parses `|name|`.
func (p *parser) parsePayload() (ast.NodeID, error) {
	if !p.at(token.Pipe) {
		return ast.NoNode, nil
	}
	lpipe := p.next()
	ident, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	rpipe, err := p.expect(token.Pipe)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewPayload(ast.PayloadNode{
		LPipe: lpipe,
		Error: p.tree.NewTokenNode(ast.NodeIdentifier, ident),
		RPipe: rpipe,
	}), nil
}

// parsePtrPayload parses `|*name|` or `|name|`.
func (p *parser) parsePtrPayload() (ast.NodeID, error) {
	if !p.at(token.Pipe) {
		return ast.NoNode, nil
	}
	lpipe := p.next()
	star := p.eat(token.Star)
	ident, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	rpipe, err := p.expect(token.Pipe)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewPointerPayload(ast.PointerPayloadNode{
		LPipe:    lpipe,
		PtrToken: star,
		Value:    p.tree.NewTokenNode(ast.NodeIdentifier, ident),
		RPipe:    rpipe,
	}), nil
}

// parsePtrIndexPayload parses `|*name|`, `|name|` or
// `|*name, index|`.
func (p *parser) parsePtrIndexPayload() (ast.NodeID, error) {
	if !p.at(token.Pipe) {
		return ast.NoNode, nil
	}
	lpipe := p.next()
	star := p.eat(token.Star)
	ident, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	var index ast.NodeID
	if p.eat(token.Comma).Valid() {
		idx, err := p.expect(token.Ident)
		if err != nil {
			return ast.NoNode, err
		}
		index = p.tree.NewTokenNode(ast.NodeIdentifier, idx)
	}
	rpipe, err := p.expect(token.Pipe)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewPointerIndexPayload(ast.PointerIndexPayloadNode{
		LPipe:    lpipe,
		PtrToken: star,
		Value:    p.tree.NewTokenNode(ast.NodeIdentifier, ident),
		Index:    index,
		RPipe:    rpipe,
	}), nil
}
