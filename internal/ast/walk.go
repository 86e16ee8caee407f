package ast

import (
	"zag/internal/source"
	"zag/internal/token"
)

// or picks the first present optional token, falling back to def.
func or(def token.Index, opts ...token.OptIndex) token.Index {
	for _, o := range opts {
		if o.Valid() {
			return o.Unwrap()
		}
	}
	return def
}

// FirstToken returns the index of the first token the node covers.
// Attached doc comments are not part of a declaration's extent.
func (t *Tree) FirstToken(id NodeID) token.Index {
	switch t.Kind(id) {
	case NodeRoot:
		p := t.RootNode(id)
		if len(p.Decls) > 0 {
			return t.FirstToken(p.Decls[0])
		}
		return p.EofToken
	case NodeUse:
		p := t.UseNode(id)
		return or(p.UseToken, p.VisibToken)
	case NodeTestDecl:
		return t.TestDeclNode(id).TestToken
	case NodeVarDecl:
		p := t.VarDeclNode(id)
		return or(p.MutToken, p.VisibToken, p.ExternToken, p.ComptimeToken, p.ThreadLocalToken)
	case NodeDefer:
		return t.DeferNode(id).DeferToken
	case NodeComptime:
		return t.ComptimeNode(id).ComptimeToken
	case NodeSuspend:
		return t.SuspendNode(id).SuspendToken
	case NodeInfixOp:
		return t.FirstToken(t.InfixOpNode(id).Lhs)
	case NodePrefixOp:
		return t.PrefixOpNode(id).OpToken
	case NodeSuffixOp:
		p := t.SuffixOpNode(id)
		if p.AsyncToken.Valid() {
			return p.AsyncToken.Unwrap()
		}
		return t.FirstToken(p.Lhs)
	case NodeGroupedExpr:
		return t.GroupedExprNode(id).LParen
	case NodeControlFlowExpr:
		return t.ControlFlowExprNode(id).LTok
	case NodeIf:
		return t.IfNode(id).IfToken
	case NodeWhile:
		p := t.WhileNode(id)
		return or(p.WhileToken, p.Label, p.InlineToken)
	case NodeFor:
		p := t.ForNode(id)
		return or(p.ForToken, p.Label, p.InlineToken)
	case NodeSwitch:
		return t.SwitchNode(id).SwitchToken
	case NodeSwitchCase:
		return t.FirstToken(t.SwitchCaseNode(id).Items[0])
	case NodeElse:
		return t.ElseNode(id).ElseToken
	case NodePayload:
		return t.PayloadNode(id).LPipe
	case NodePointerPayload:
		return t.PointerPayloadNode(id).LPipe
	case NodePointerIndexPayload:
		return t.PointerIndexPayloadNode(id).LPipe
	case NodeContainerDecl:
		p := t.ContainerDeclNode(id)
		return or(p.KindToken, p.LayoutToken)
	case NodeContainerField:
		p := t.ContainerFieldNode(id)
		return or(p.NameToken, p.VisibToken)
	case NodeErrorSetDecl:
		return t.ErrorSetDeclNode(id).ErrorToken
	case NodeErrorTag:
		return t.ErrorTagNode(id).NameToken
	case NodeFnProto:
		p := t.FnProtoNode(id)
		return or(p.FnToken, p.VisibToken, p.ExternExportToken, p.InlineToken, p.CCToken, p.AsyncToken)
	case NodeParamDecl:
		p := t.ParamDeclNode(id)
		switch {
		case p.ComptimeToken.Valid():
			return p.ComptimeToken.Unwrap()
		case p.NoaliasToken.Valid():
			return p.NoaliasToken.Unwrap()
		case p.NameToken.Valid():
			return p.NameToken.Unwrap()
		case p.VarArgsToken.Valid():
			return p.VarArgsToken.Unwrap()
		default:
			return t.FirstToken(p.Type)
		}
	case NodeBlock:
		p := t.BlockNode(id)
		return or(p.LBrace, p.Label)
	case NodeBuiltinCall:
		return t.BuiltinCallNode(id).BuiltinToken
	case NodeAsm:
		return t.AsmNode(id).AsmToken
	case NodeAsmOutput:
		return t.AsmOutputNode(id).LBracket
	case NodeAsmInput:
		return t.AsmInputNode(id).LBracket
	case NodeFieldInitializer:
		return t.FieldInitializerNode(id).PeriodToken
	case NodeDocComment:
		return t.DocCommentNode(id).Lines[0]
	case NodeMultilineStringLit:
		return t.MultilineStringNode(id).Lines[0]
	case NodeEnumLit:
		return t.EnumLitNode(id).PeriodToken
	default:
		return t.TokenOf(id)
	}
}

// LastToken returns the index of the last token the node covers.
func (t *Tree) LastToken(id NodeID) token.Index {
	switch t.Kind(id) {
	case NodeRoot:
		p := t.RootNode(id)
		if len(p.Decls) > 0 {
			return t.LastToken(p.Decls[len(p.Decls)-1])
		}
		return p.EofToken
	case NodeUse:
		return t.UseNode(id).Semicolon
	case NodeTestDecl:
		return t.LastToken(t.TestDeclNode(id).Body)
	case NodeVarDecl:
		return t.VarDeclNode(id).Semicolon
	case NodeDefer:
		return t.LastToken(t.DeferNode(id).Expr)
	case NodeComptime:
		return t.LastToken(t.ComptimeNode(id).Expr)
	case NodeSuspend:
		p := t.SuspendNode(id)
		if p.Body.IsValid() {
			return t.LastToken(p.Body)
		}
		return p.SuspendToken
	case NodeInfixOp:
		return t.LastToken(t.InfixOpNode(id).Rhs)
	case NodePrefixOp:
		return t.LastToken(t.PrefixOpNode(id).Rhs)
	case NodeSuffixOp:
		return t.SuffixOpNode(id).RToken
	case NodeGroupedExpr:
		return t.GroupedExprNode(id).RParen
	case NodeControlFlowExpr:
		p := t.ControlFlowExprNode(id)
		if p.Rhs.IsValid() {
			return t.LastToken(p.Rhs)
		}
		return or(p.LTok, p.Label)
	case NodeIf:
		p := t.IfNode(id)
		if p.Else.IsValid() {
			return t.LastToken(p.Else)
		}
		return t.LastToken(p.Body)
	case NodeWhile:
		p := t.WhileNode(id)
		if p.Else.IsValid() {
			return t.LastToken(p.Else)
		}
		return t.LastToken(p.Body)
	case NodeFor:
		p := t.ForNode(id)
		if p.Else.IsValid() {
			return t.LastToken(p.Else)
		}
		return t.LastToken(p.Body)
	case NodeSwitch:
		return t.SwitchNode(id).RBrace
	case NodeSwitchCase:
		return t.LastToken(t.SwitchCaseNode(id).Expr)
	case NodeElse:
		return t.LastToken(t.ElseNode(id).Body)
	case NodePayload:
		return t.PayloadNode(id).RPipe
	case NodePointerPayload:
		return t.PointerPayloadNode(id).RPipe
	case NodePointerIndexPayload:
		return t.PointerIndexPayloadNode(id).RPipe
	case NodeContainerDecl:
		return t.ContainerDeclNode(id).RBrace
	case NodeContainerField:
		p := t.ContainerFieldNode(id)
		if p.Value.IsValid() {
			return t.LastToken(p.Value)
		}
		if p.Type.IsValid() {
			return t.LastToken(p.Type)
		}
		return p.NameToken
	case NodeErrorSetDecl:
		return t.ErrorSetDeclNode(id).RBrace
	case NodeErrorTag:
		return t.ErrorTagNode(id).NameToken
	case NodeFnProto:
		p := t.FnProtoNode(id)
		if p.Body.IsValid() {
			return t.LastToken(p.Body)
		}
		if p.ReturnType.IsValid() {
			return t.LastToken(p.ReturnType)
		}
		if p.Section.IsValid() {
			return t.LastToken(p.Section)
		}
		if p.Align.IsValid() {
			return t.LastToken(p.Align)
		}
		return p.RParen
	case NodeParamDecl:
		p := t.ParamDeclNode(id)
		switch {
		case p.VarArgsToken.Valid():
			return p.VarArgsToken.Unwrap()
		case p.Type.IsValid():
			return t.LastToken(p.Type)
		case p.NameToken.Valid():
			return p.NameToken.Unwrap()
		case p.NoaliasToken.Valid():
			return p.NoaliasToken.Unwrap()
		default:
			return p.ComptimeToken.Unwrap()
		}
	case NodeBlock:
		return t.BlockNode(id).RBrace
	case NodeBuiltinCall:
		return t.BuiltinCallNode(id).RParen
	case NodeAsm:
		return t.AsmNode(id).RParen
	case NodeAsmOutput:
		return t.AsmOutputNode(id).RParen
	case NodeAsmInput:
		return t.AsmInputNode(id).RParen
	case NodeFieldInitializer:
		return t.LastToken(t.FieldInitializerNode(id).Expr)
	case NodeDocComment:
		p := t.DocCommentNode(id)
		return p.Lines[len(p.Lines)-1]
	case NodeMultilineStringLit:
		p := t.MultilineStringNode(id)
		return p.Lines[len(p.Lines)-1]
	case NodeEnumLit:
		return t.EnumLitNode(id).NameToken
	default:
		return t.TokenOf(id)
	}
}

// Span returns the source range the node covers in file.
func (t *Tree) Span(id NodeID, file source.FileID) source.Span {
	first := t.Token(t.FirstToken(id))
	last := t.Token(t.LastToken(id))
	return source.Span{File: file, Start: first.Start, End: last.End}
}

func appendValid(buf []NodeID, ids ...NodeID) []NodeID {
	for _, id := range ids {
		if id.IsValid() {
			buf = append(buf, id)
		}
	}
	return buf
}

// Children appends the node's owned children to buf in source order and
// returns the extended slice. Attached doc comments are reachable only
// through the Doc fields, not through Children.
func (t *Tree) Children(id NodeID, buf []NodeID) []NodeID {
	switch t.Kind(id) {
	case NodeRoot:
		return append(buf, t.RootNode(id).Decls...)
	case NodeUse:
		return appendValid(buf, t.UseNode(id).Expr)
	case NodeTestDecl:
		p := t.TestDeclNode(id)
		return appendValid(buf, p.Name, p.Body)
	case NodeVarDecl:
		p := t.VarDeclNode(id)
		return appendValid(buf, p.LibName, p.Type, p.Align, p.Section, p.Init)
	case NodeDefer:
		p := t.DeferNode(id)
		return appendValid(buf, p.Payload, p.Expr)
	case NodeComptime:
		return appendValid(buf, t.ComptimeNode(id).Expr)
	case NodeSuspend:
		return appendValid(buf, t.SuspendNode(id).Body)
	case NodeInfixOp:
		p := t.InfixOpNode(id)
		return appendValid(buf, p.Lhs, p.Payload, p.Rhs)
	case NodePrefixOp:
		p := t.PrefixOpNode(id)
		buf = appendValid(buf, p.ArrayLen)
		if p.Op == PrefixPtrType || p.Op == PrefixSliceType {
			buf = appendValid(buf, p.Ptr.Align, p.Ptr.BitRangeStart, p.Ptr.BitRangeEnd)
		}
		return appendValid(buf, p.Rhs)
	case NodeSuffixOp:
		p := t.SuffixOpNode(id)
		buf = appendValid(buf, p.Lhs)
		return append(buf, p.Exprs...)
	case NodeGroupedExpr:
		return appendValid(buf, t.GroupedExprNode(id).Expr)
	case NodeControlFlowExpr:
		return appendValid(buf, t.ControlFlowExprNode(id).Rhs)
	case NodeIf:
		p := t.IfNode(id)
		return appendValid(buf, p.Condition, p.Payload, p.Body, p.Else)
	case NodeWhile:
		p := t.WhileNode(id)
		return appendValid(buf, p.Condition, p.Payload, p.Continue, p.Body, p.Else)
	case NodeFor:
		p := t.ForNode(id)
		return appendValid(buf, p.ArrayExpr, p.Payload, p.Body, p.Else)
	case NodeSwitch:
		p := t.SwitchNode(id)
		buf = appendValid(buf, p.Expr)
		return append(buf, p.Cases...)
	case NodeSwitchCase:
		p := t.SwitchCaseNode(id)
		buf = append(buf, p.Items...)
		return appendValid(buf, p.Payload, p.Expr)
	case NodeElse:
		p := t.ElseNode(id)
		return appendValid(buf, p.Payload, p.Body)
	case NodePayload:
		return appendValid(buf, t.PayloadNode(id).Error)
	case NodePointerPayload:
		return appendValid(buf, t.PointerPayloadNode(id).Value)
	case NodePointerIndexPayload:
		p := t.PointerIndexPayloadNode(id)
		return appendValid(buf, p.Value, p.Index)
	case NodeContainerDecl:
		p := t.ContainerDeclNode(id)
		buf = appendValid(buf, p.InitArg)
		return append(buf, p.Members...)
	case NodeContainerField:
		p := t.ContainerFieldNode(id)
		return appendValid(buf, p.Type, p.Value)
	case NodeErrorSetDecl:
		return append(buf, t.ErrorSetDeclNode(id).Decls...)
	case NodeErrorTag:
		return buf
	case NodeFnProto:
		p := t.FnProtoNode(id)
		buf = appendValid(buf, p.LibName)
		buf = append(buf, p.Params...)
		return appendValid(buf, p.Align, p.Section, p.ReturnType, p.Body)
	case NodeParamDecl:
		return appendValid(buf, t.ParamDeclNode(id).Type)
	case NodeBlock:
		return append(buf, t.BlockNode(id).Statements...)
	case NodeBuiltinCall:
		return append(buf, t.BuiltinCallNode(id).Params...)
	case NodeAsm:
		p := t.AsmNode(id)
		buf = appendValid(buf, p.Template)
		buf = append(buf, p.Outputs...)
		buf = append(buf, p.Inputs...)
		return append(buf, p.Clobbers...)
	case NodeAsmOutput:
		p := t.AsmOutputNode(id)
		return appendValid(buf, p.Symbol, p.Constraint, p.Variable, p.ReturnType)
	case NodeAsmInput:
		p := t.AsmInputNode(id)
		return appendValid(buf, p.Symbol, p.Constraint, p.Expr)
	case NodeFieldInitializer:
		return appendValid(buf, t.FieldInitializerNode(id).Expr)
	default:
		// Token-payload nodes, doc comments, multiline strings and
		// enum literals have no node children.
		return buf
	}
}

// Child returns the i-th owned child, or NoNode when i is out of range.
func (t *Tree) Child(id NodeID, i int) NodeID {
	children := t.Children(id, nil)
	if i < 0 || i >= len(children) {
		return NoNode
	}
	return children[i]
}

// RequireTerminator reports whether the node, used as a statement,
// must be followed by a semicolon. Block-bodied control flow carries
// its own terminator; the check follows else and wrapper chains to the
// final expression.
func (t *Tree) RequireTerminator(id NodeID) bool {
	for {
		switch t.Kind(id) {
		case NodeRoot, NodeContainerField, NodeParamDecl, NodeBlock,
			NodePayload, NodePointerPayload, NodePointerIndexPayload,
			NodeSwitch, NodeSwitchCase, NodeSwitchElse,
			NodeFieldInitializer, NodeDocComment, NodeTestDecl:
			return false
		case NodeWhile:
			p := t.WhileNode(id)
			if p.Else.IsValid() {
				id = p.Else
				continue
			}
			return t.Kind(p.Body) != NodeBlock
		case NodeFor:
			p := t.ForNode(id)
			if p.Else.IsValid() {
				id = p.Else
				continue
			}
			return t.Kind(p.Body) != NodeBlock
		case NodeIf:
			p := t.IfNode(id)
			if p.Else.IsValid() {
				id = p.Else
				continue
			}
			return t.Kind(p.Body) != NodeBlock
		case NodeElse:
			id = t.ElseNode(id).Body
		case NodeDefer:
			id = t.DeferNode(id).Expr
		case NodeComptime:
			id = t.ComptimeNode(id).Expr
		case NodeSuspend:
			p := t.SuspendNode(id)
			if p.Body.IsValid() {
				id = p.Body
				continue
			}
			return true
		default:
			return true
		}
	}
}
