package parser

import (
	"zag/internal/ast"
	"zag/internal/token"
)

// parseRoot parses the whole file as an implicit container.
func (p *parser) parseRoot() ast.NodeID {
	var decls []ast.NodeID
	for {
		decls = append(decls, p.parseContainerMembers(true)...)
		if p.at(token.EOF) {
			break
		}
		// Stray token no member rule accepts, e.g. an unmatched '}'.
		p.record(ast.Error{Kind: ast.ErrExpectedContainerMembers, Token: p.s.PeekIndex()})
		p.next()
	}
	eof := p.next()
	return p.tree.NewRoot(ast.RootNode{Decls: decls, EofToken: eof})
}

// parseContainerMembers parses declarations and fields until the
// container ends. A failed member is skipped to the next declaration
// boundary so one bad declaration does not blank the rest.
func (p *parser) parseContainerMembers(top bool) []ast.NodeID {
	var members []ast.NodeID
	for {
		doc := p.parseDocComment()
		switch p.peek() {
		case token.KwTest:
			node, err := p.parseTestDecl(doc)
			if err != nil {
				p.recoverContainerMember()
				continue
			}
			members = append(members, node)

		case token.KwComptime:
			node, err := p.parseTopLevelComptime(doc)
			if err != nil {
				p.recoverContainerMember()
				continue
			}
			members = append(members, node)

		case token.KwPub:
			visib := token.Some(p.next())
			node, err := p.parseTopLevelDecl(doc, visib)
			if err != nil {
				p.recoverContainerMember()
				continue
			}
			if node.IsValid() {
				members = append(members, node)
				continue
			}
			if p.at(token.Ident) {
				if !p.containerField(&members, doc, visib) {
					return members
				}
				continue
			}
			p.record(ast.Error{Kind: ast.ErrExpectedPubItem, Token: p.s.PeekIndex()})
			return members

		case token.KwConst, token.KwVar, token.KwFn, token.KwExtern, token.KwExport,
			token.KwInline, token.KwThreadLocal, token.KwNakedCC, token.KwStdcallCC,
			token.KwAsync, token.KwUsingNamespace, token.KwUse:
			node, err := p.parseTopLevelDecl(doc, 0)
			if err != nil {
				p.recoverContainerMember()
				continue
			}
			members = append(members, node)

		case token.Ident:
			if !p.containerField(&members, doc, 0) {
				return members
			}

		case token.EOF, token.RBrace:
			if doc.IsValid() {
				p.record(ast.Error{Kind: ast.ErrUnattachedDocComment, Token: p.tree.FirstToken(doc)})
			}
			return members

		default:
			p.record(ast.Error{Kind: ast.ErrExpectedContainerMembers, Token: p.s.PeekIndex()})
			p.recoverContainerMember()
			if top && p.at(token.RBrace) {
				return members
			}
		}
	}
}

// containerField parses one field plus its separating comma. It
// returns false when member parsing should stop because the container
// end follows the field.
func (p *parser) containerField(members *[]ast.NodeID, doc ast.NodeID, visib token.OptIndex) bool {
	node, err := p.parseContainerField(doc, visib)
	if err != nil {
		p.recoverContainerMember()
		return true
	}
	*members = append(*members, node)
	if p.eat(token.Comma).Valid() {
		return true
	}
	switch p.peek() {
	case token.RBrace, token.EOF:
		return false
	default:
		p.record(ast.Error{Kind: ast.ErrExpectedToken, Token: p.s.PeekIndex(), Expected: token.Comma})
		p.recoverContainerMember()
		return true
	}
}

// parseDocComment collects a run of doc comment tokens into one node,
// or returns NoNode when the next token is not a doc comment.
func (p *parser) parseDocComment() ast.NodeID {
	var lines []token.Index
	for p.at(token.DocComment) {
		lines = append(lines, p.next())
	}
	if len(lines) == 0 {
		return ast.NoNode
	}
	return p.tree.NewDocComment(ast.DocCommentNode{Lines: lines})
}

func (p *parser) parseTestDecl(doc ast.NodeID) (ast.NodeID, error) {
	testTok := p.next()
	name, err := p.expectNode(p.parseStringLiteral, ast.ErrExpectedStringLiteral)
	if err != nil {
		return ast.NoNode, err
	}
	if !p.at(token.LBrace) {
		return ast.NoNode, p.failExpected(ast.ErrExpectedLBrace)
	}
	body, err := p.parseBlock(0)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewTestDecl(ast.TestDeclNode{Doc: doc, TestToken: testTok, Name: name, Body: body}), nil
}

// parseTopLevelComptime parses `comptime { ... }` at container level.
func (p *parser) parseTopLevelComptime(doc ast.NodeID) (ast.NodeID, error) {
	comptimeTok := p.next()
	body, err := p.expectNode(p.parseBlockExpr, ast.ErrExpectedLBrace)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewComptime(ast.ComptimeNode{Doc: doc, ComptimeToken: comptimeTok, Expr: body}), nil
}

// parseTopLevelDecl parses a function, variable or usingnamespace
// declaration, or returns NoNode when the next token starts none of
// them.
func (p *parser) parseTopLevelDecl(doc ast.NodeID, visib token.OptIndex) (ast.NodeID, error) {
	var externExport, inlineTok token.OptIndex
	var libName ast.NodeID
	switch p.peek() {
	case token.KwExport:
		externExport = token.Some(p.next())
	case token.KwExtern:
		externExport = token.Some(p.next())
		var err error
		libName, err = p.parseStringLiteral()
		if err != nil {
			return ast.NoNode, err
		}
	case token.KwInline:
		inlineTok = token.Some(p.next())
	}

	switch p.peek() {
	case token.KwFn, token.KwNakedCC, token.KwStdcallCC, token.KwAsync:
		proto, err := p.parseFnProto(fnProtoPrefix{
			doc:          doc,
			visib:        visib,
			externExport: externExport,
			libName:      libName,
			inlineTok:    inlineTok,
		})
		if err != nil {
			return ast.NoNode, err
		}
		if p.eat(token.Semicolon).Valid() {
			return proto, nil
		}
		if p.at(token.LBrace) {
			body, err := p.parseBlock(0)
			if err != nil {
				return ast.NoNode, err
			}
			p.tree.FnProtoNode(proto).Body = body
			return proto, nil
		}
		return ast.NoNode, p.failExpected(ast.ErrExpectedSemiOrLBrace)
	}

	threadLocal := p.eat(token.KwThreadLocal)
	switch p.peek() {
	case token.KwConst, token.KwVar:
		return p.parseVarDecl(varDeclPrefix{
			doc:         doc,
			visib:       visib,
			externTok:   externExport,
			libName:     libName,
			threadLocal: threadLocal,
		})
	}
	if threadLocal.Valid() || externExport.Valid() || inlineTok.Valid() {
		return ast.NoNode, p.failExpected(ast.ErrExpectedVarDeclOrFn)
	}

	switch p.peek() {
	case token.KwUsingNamespace, token.KwUse:
		return p.parseUse(doc, visib)
	}
	return ast.NoNode, nil
}

func (p *parser) parseUse(doc ast.NodeID, visib token.OptIndex) (ast.NodeID, error) {
	useTok := p.next()
	expr, err := p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
	if err != nil {
		return ast.NoNode, err
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewUse(ast.UseNode{
		Doc:        doc,
		VisibToken: visib,
		UseToken:   useTok,
		Expr:       expr,
		Semicolon:  semi,
	}), nil
}

type fnProtoPrefix struct {
	doc          ast.NodeID
	visib        token.OptIndex
	externExport token.OptIndex
	libName      ast.NodeID
	inlineTok    token.OptIndex
}

// parseFnProto parses a function prototype starting at its calling
// convention or fn keyword. The body, if any, is attached by the
// caller.
func (p *parser) parseFnProto(prefix fnProtoPrefix) (ast.NodeID, error) {
	var cc, async token.OptIndex
	externExport := prefix.externExport
	libName := prefix.libName
	switch p.peek() {
	case token.KwNakedCC, token.KwStdcallCC:
		cc = token.Some(p.next())
	case token.KwAsync:
		async = token.Some(p.next())
	case token.KwExtern:
		if !externExport.Valid() {
			externExport = token.Some(p.next())
			var err error
			libName, err = p.parseStringLiteral()
			if err != nil {
				return ast.NoNode, err
			}
		}
	}
	fnTok, err := p.expect(token.KwFn)
	if err != nil {
		return ast.NoNode, err
	}
	name := p.eat(token.Ident)
	if _, err := p.expect(token.LParen); err != nil {
		return ast.NoNode, err
	}
	params, rparen, err := p.parseList(p.parseParamDecl, token.RParen)
	if err != nil {
		return ast.NoNode, err
	}
	var varArgs token.OptIndex
	if len(params) > 0 {
		varArgs = p.tree.ParamDeclNode(params[len(params)-1]).VarArgsToken
	}
	align, err := p.parseByteAlign()
	if err != nil {
		return ast.NoNode, err
	}
	section, err := p.parseLinkSection()
	if err != nil {
		return ast.NoNode, err
	}
	bang := p.eat(token.Bang)
	var ret ast.NodeID
	if p.at(token.KwVar) {
		ret = p.tree.NewTokenNode(ast.NodeVarType, p.next())
	} else {
		ret, err = p.expectNode(p.parseTypeExpr, ast.ErrExpectedReturnType)
		if err != nil {
			return ast.NoNode, err
		}
	}
	return p.tree.NewFnProto(ast.FnProtoNode{
		Doc:               prefix.doc,
		VisibToken:        prefix.visib,
		ExternExportToken: externExport,
		LibName:           libName,
		InlineToken:       prefix.inlineTok,
		CCToken:           cc,
		AsyncToken:        async,
		FnToken:           fnTok,
		NameToken:         name,
		Params:            params,
		VarArgsToken:      varArgs,
		RParen:            rparen,
		Align:             align,
		Section:           section,
		BangToken:         bang,
		ReturnType:        ret,
	}), nil
}

// parseParamDecl parses one parameter, or NoNode at the end of the
// list.
func (p *parser) parseParamDecl() (ast.NodeID, error) {
	doc := p.parseDocComment()
	comptimeTok := p.eat(token.KwComptime)
	noalias := p.eat(token.KwNoalias)
	var name token.OptIndex
	if p.at(token.Ident) {
		ident := p.next()
		if p.eat(token.Colon).Valid() {
			name = token.Some(ident)
		} else {
			// Plain identifier is already the parameter type.
			p.s.PutBack(ident)
		}
	}

	var typ ast.NodeID
	var varArgs token.OptIndex
	switch p.peek() {
	case token.KwVar:
		typ = p.tree.NewTokenNode(ast.NodeVarType, p.next())
	case token.Ellipsis:
		varArgs = token.Some(p.next())
	default:
		node, err := p.parseTypeExpr()
		if err != nil {
			return ast.NoNode, err
		}
		if !node.IsValid() {
			if doc.IsValid() || comptimeTok.Valid() || noalias.Valid() || name.Valid() {
				return ast.NoNode, p.failExpected(ast.ErrExpectedParamType)
			}
			return ast.NoNode, nil
		}
		typ = node
	}
	return p.tree.NewParamDecl(ast.ParamDeclNode{
		Doc:           doc,
		ComptimeToken: comptimeTok,
		NoaliasToken:  noalias,
		NameToken:     name,
		Type:          typ,
		VarArgsToken:  varArgs,
	}), nil
}

type varDeclPrefix struct {
	doc         ast.NodeID
	visib       token.OptIndex
	externTok   token.OptIndex
	libName     ast.NodeID
	threadLocal token.OptIndex
	comptimeTok token.OptIndex
}

// parseVarDecl parses `const`/`var` declarations; the caller has
// checked that the mut keyword is next.
func (p *parser) parseVarDecl(prefix varDeclPrefix) (ast.NodeID, error) {
	mut := p.next()
	name, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	var typ ast.NodeID
	if p.eat(token.Colon).Valid() {
		typ, err = p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
		if err != nil {
			return ast.NoNode, err
		}
	}
	align, err := p.parseByteAlign()
	if err != nil {
		return ast.NoNode, err
	}
	section, err := p.parseLinkSection()
	if err != nil {
		return ast.NoNode, err
	}
	eq := p.eat(token.Eq)
	var initNode ast.NodeID
	if eq.Valid() {
		initNode, err = p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
	}
	semi, err := p.expect(token.Semicolon)
	if err != nil {
		return ast.NoNode, err
	}
	return p.tree.NewVarDecl(ast.VarDeclNode{
		Doc:              prefix.doc,
		VisibToken:       prefix.visib,
		ThreadLocalToken: prefix.threadLocal,
		ComptimeToken:    prefix.comptimeTok,
		ExternToken:      prefix.externTok,
		LibName:          prefix.libName,
		MutToken:         mut,
		NameToken:        name,
		Type:             typ,
		Align:            align,
		Section:          section,
		EqToken:          eq,
		Init:             initNode,
		Semicolon:        semi,
	}), nil
}

func (p *parser) parseContainerField(doc ast.NodeID, visib token.OptIndex) (ast.NodeID, error) {
	name, err := p.expect(token.Ident)
	if err != nil {
		return ast.NoNode, err
	}
	var typ, value ast.NodeID
	if p.eat(token.Colon).Valid() {
		typ, err = p.expectNode(p.parseTypeExpr, ast.ErrExpectedTypeExpr)
		if err != nil {
			return ast.NoNode, err
		}
	}
	if p.eat(token.Eq).Valid() {
		value, err = p.expectNode(p.parseExpr, ast.ErrExpectedExpr)
		if err != nil {
			return ast.NoNode, err
		}
	}
	return p.tree.NewContainerField(ast.ContainerFieldNode{
		Doc:        doc,
		VisibToken: visib,
		NameToken:  name,
		Type:       typ,
		Value:      value,
	}), nil
}

// parseByteAlign parses `align(expr)`, returning the expression.
func (p *parser) parseByteAlign() (ast.NodeID, error) {
	if !p.eat(token.KwAlign).Valid() {
		return ast.NoNode, nil
	}
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
	return expr, nil
}

// parseLinkSection parses `linksection(expr)`, returning the
// expression.
func (p *parser) parseLinkSection() (ast.NodeID, error) {
	if !p.eat(token.KwLinkSection).Valid() {
		return ast.NoNode, nil
	}
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
	return expr, nil
}

// parseStringLiteral parses a string literal or a run of multiline
// string lines, or returns NoNode.
func (p *parser) parseStringLiteral() (ast.NodeID, error) {
	switch p.peek() {
	case token.StringLit:
		return p.tree.NewTokenNode(ast.NodeStringLit, p.next()), nil
	case token.MultilineStringLine:
		var lines []token.Index
		for p.at(token.MultilineStringLine) {
			lines = append(lines, p.next())
		}
		return p.tree.NewMultilineString(ast.MultilineStringNode{Lines: lines}), nil
	default:
		return ast.NoNode, nil
	}
}
