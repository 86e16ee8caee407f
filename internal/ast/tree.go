package ast

import (
	"zag/internal/token"
)

// Node is one entry in the node arena. Token-payload kinds store a
// token index in val directly; every other kind stores a 1-based index
// into the payload arena for that kind.
type Node struct {
	Kind NodeKind
	val  uint32
}

// Tree owns every node of one parsed file. Nodes reference each other
// and the token list by index only, so the whole tree is freed at once
// when the Tree is dropped.
type Tree struct {
	Source []byte
	Tokens []token.Token
	Root   NodeID
	Errors []Error

	nodes Arena[Node]

	roots            Arena[RootNode]
	uses             Arena[UseNode]
	testDecls        Arena[TestDeclNode]
	varDecls         Arena[VarDeclNode]
	defers           Arena[DeferNode]
	comptimes        Arena[ComptimeNode]
	suspends         Arena[SuspendNode]
	infixOps         Arena[InfixOpNode]
	prefixOps        Arena[PrefixOpNode]
	suffixOps        Arena[SuffixOpNode]
	grouped          Arena[GroupedExprNode]
	controlFlows     Arena[ControlFlowExprNode]
	ifs              Arena[IfNode]
	whiles           Arena[WhileNode]
	fors             Arena[ForNode]
	switches         Arena[SwitchNode]
	switchCases      Arena[SwitchCaseNode]
	elses            Arena[ElseNode]
	payloads         Arena[PayloadNode]
	ptrPayloads      Arena[PointerPayloadNode]
	ptrIndexPayloads Arena[PointerIndexPayloadNode]
	containerDecls   Arena[ContainerDeclNode]
	containerFields  Arena[ContainerFieldNode]
	errorSetDecls    Arena[ErrorSetDeclNode]
	errorTags        Arena[ErrorTagNode]
	fnProtos         Arena[FnProtoNode]
	paramDecls       Arena[ParamDeclNode]
	blocks           Arena[BlockNode]
	builtinCalls     Arena[BuiltinCallNode]
	asms             Arena[AsmNode]
	asmOutputs       Arena[AsmOutputNode]
	asmInputs        Arena[AsmInputNode]
	fieldInits       Arena[FieldInitializerNode]
	docComments      Arena[DocCommentNode]
	multilineStrings Arena[MultilineStringNode]
	enumLits         Arena[EnumLitNode]
}

// NewTree creates an empty tree over source and its token list. The
// node arena capacity is sized off the token count; two tokens per
// node is a rough average for real code.
func NewTree(source []byte, tokens []token.Token) *Tree {
	t := &Tree{
		Source: source,
		Tokens: tokens,
	}
	t.nodes.data = make([]Node, 0, len(tokens)/2+1)
	return t
}

// Len returns the number of allocated nodes.
func (t *Tree) Len() uint32 {
	return t.nodes.Len()
}

// Kind returns the kind of id. id must be valid.
func (t *Tree) Kind(id NodeID) NodeKind {
	return t.nodes.Get(uint32(id)).Kind
}

// Token returns the token at index i.
func (t *Tree) Token(i token.Index) token.Token {
	return t.Tokens[i]
}

// TokenText returns the source text of the token at index i.
func (t *Tree) TokenText(i token.Index) string {
	return t.Tokens[i].Text(t.Source)
}

// AddError appends a parse error to the tree.
func (t *Tree) AddError(e Error) {
	t.Errors = append(t.Errors, e)
}

func (t *Tree) newNode(kind NodeKind, val uint32) NodeID {
	return NodeID(t.nodes.Allocate(Node{Kind: kind, val: val}))
}

// payload resolves id to its payload arena index, or 0 when id is
// NoNode or of a different kind.
func (t *Tree) payload(id NodeID, kind NodeKind) uint32 {
	n := t.nodes.Get(uint32(id))
	if n == nil || n.Kind != kind {
		return 0
	}
	return n.val
}

// NewTokenNode allocates a node whose whole payload is a single token.
// kind must be a token-payload kind.
func (t *Tree) NewTokenNode(kind NodeKind, tok token.Index) NodeID {
	if !kind.isTokenKind() {
		panic("ast: " + kind.String() + " is not a token-payload kind")
	}
	return t.newNode(kind, uint32(tok))
}

// TokenOf returns the token index a token-payload node stores.
func (t *Tree) TokenOf(id NodeID) token.Index {
	n := t.nodes.Get(uint32(id))
	if n == nil || !n.Kind.isTokenKind() {
		panic("ast: TokenOf on non-token node")
	}
	return token.Index(n.val)
}

func (t *Tree) NewRoot(p RootNode) NodeID {
	return t.newNode(NodeRoot, t.roots.Allocate(p))
}

func (t *Tree) RootNode(id NodeID) *RootNode {
	return t.roots.Get(t.payload(id, NodeRoot))
}

func (t *Tree) NewUse(p UseNode) NodeID {
	return t.newNode(NodeUse, t.uses.Allocate(p))
}

func (t *Tree) UseNode(id NodeID) *UseNode {
	return t.uses.Get(t.payload(id, NodeUse))
}

func (t *Tree) NewTestDecl(p TestDeclNode) NodeID {
	return t.newNode(NodeTestDecl, t.testDecls.Allocate(p))
}

func (t *Tree) TestDeclNode(id NodeID) *TestDeclNode {
	return t.testDecls.Get(t.payload(id, NodeTestDecl))
}

func (t *Tree) NewVarDecl(p VarDeclNode) NodeID {
	return t.newNode(NodeVarDecl, t.varDecls.Allocate(p))
}

func (t *Tree) VarDeclNode(id NodeID) *VarDeclNode {
	return t.varDecls.Get(t.payload(id, NodeVarDecl))
}

func (t *Tree) NewDefer(p DeferNode) NodeID {
	return t.newNode(NodeDefer, t.defers.Allocate(p))
}

func (t *Tree) DeferNode(id NodeID) *DeferNode {
	return t.defers.Get(t.payload(id, NodeDefer))
}

func (t *Tree) NewComptime(p ComptimeNode) NodeID {
	return t.newNode(NodeComptime, t.comptimes.Allocate(p))
}

func (t *Tree) ComptimeNode(id NodeID) *ComptimeNode {
	return t.comptimes.Get(t.payload(id, NodeComptime))
}

func (t *Tree) NewSuspend(p SuspendNode) NodeID {
	return t.newNode(NodeSuspend, t.suspends.Allocate(p))
}

func (t *Tree) SuspendNode(id NodeID) *SuspendNode {
	return t.suspends.Get(t.payload(id, NodeSuspend))
}

func (t *Tree) NewInfixOp(p InfixOpNode) NodeID {
	return t.newNode(NodeInfixOp, t.infixOps.Allocate(p))
}

func (t *Tree) InfixOpNode(id NodeID) *InfixOpNode {
	return t.infixOps.Get(t.payload(id, NodeInfixOp))
}

func (t *Tree) NewPrefixOp(p PrefixOpNode) NodeID {
	return t.newNode(NodePrefixOp, t.prefixOps.Allocate(p))
}

func (t *Tree) PrefixOpNode(id NodeID) *PrefixOpNode {
	return t.prefixOps.Get(t.payload(id, NodePrefixOp))
}

func (t *Tree) NewSuffixOp(p SuffixOpNode) NodeID {
	return t.newNode(NodeSuffixOp, t.suffixOps.Allocate(p))
}

func (t *Tree) SuffixOpNode(id NodeID) *SuffixOpNode {
	return t.suffixOps.Get(t.payload(id, NodeSuffixOp))
}

func (t *Tree) NewGroupedExpr(p GroupedExprNode) NodeID {
	return t.newNode(NodeGroupedExpr, t.grouped.Allocate(p))
}

func (t *Tree) GroupedExprNode(id NodeID) *GroupedExprNode {
	return t.grouped.Get(t.payload(id, NodeGroupedExpr))
}

func (t *Tree) NewControlFlowExpr(p ControlFlowExprNode) NodeID {
	return t.newNode(NodeControlFlowExpr, t.controlFlows.Allocate(p))
}

func (t *Tree) ControlFlowExprNode(id NodeID) *ControlFlowExprNode {
	return t.controlFlows.Get(t.payload(id, NodeControlFlowExpr))
}

func (t *Tree) NewIf(p IfNode) NodeID {
	return t.newNode(NodeIf, t.ifs.Allocate(p))
}

func (t *Tree) IfNode(id NodeID) *IfNode {
	return t.ifs.Get(t.payload(id, NodeIf))
}

func (t *Tree) NewWhile(p WhileNode) NodeID {
	return t.newNode(NodeWhile, t.whiles.Allocate(p))
}

func (t *Tree) WhileNode(id NodeID) *WhileNode {
	return t.whiles.Get(t.payload(id, NodeWhile))
}

func (t *Tree) NewFor(p ForNode) NodeID {
	return t.newNode(NodeFor, t.fors.Allocate(p))
}

func (t *Tree) ForNode(id NodeID) *ForNode {
	return t.fors.Get(t.payload(id, NodeFor))
}

func (t *Tree) NewSwitch(p SwitchNode) NodeID {
	return t.newNode(NodeSwitch, t.switches.Allocate(p))
}

func (t *Tree) SwitchNode(id NodeID) *SwitchNode {
	return t.switches.Get(t.payload(id, NodeSwitch))
}

func (t *Tree) NewSwitchCase(p SwitchCaseNode) NodeID {
	return t.newNode(NodeSwitchCase, t.switchCases.Allocate(p))
}

func (t *Tree) SwitchCaseNode(id NodeID) *SwitchCaseNode {
	return t.switchCases.Get(t.payload(id, NodeSwitchCase))
}

func (t *Tree) NewElse(p ElseNode) NodeID {
	return t.newNode(NodeElse, t.elses.Allocate(p))
}

func (t *Tree) ElseNode(id NodeID) *ElseNode {
	return t.elses.Get(t.payload(id, NodeElse))
}

func (t *Tree) NewPayload(p PayloadNode) NodeID {
	return t.newNode(NodePayload, t.payloads.Allocate(p))
}

func (t *Tree) PayloadNode(id NodeID) *PayloadNode {
	return t.payloads.Get(t.payload(id, NodePayload))
}

func (t *Tree) NewPointerPayload(p PointerPayloadNode) NodeID {
	return t.newNode(NodePointerPayload, t.ptrPayloads.Allocate(p))
}

func (t *Tree) PointerPayloadNode(id NodeID) *PointerPayloadNode {
	return t.ptrPayloads.Get(t.payload(id, NodePointerPayload))
}

func (t *Tree) NewPointerIndexPayload(p PointerIndexPayloadNode) NodeID {
	return t.newNode(NodePointerIndexPayload, t.ptrIndexPayloads.Allocate(p))
}

func (t *Tree) PointerIndexPayloadNode(id NodeID) *PointerIndexPayloadNode {
	return t.ptrIndexPayloads.Get(t.payload(id, NodePointerIndexPayload))
}

func (t *Tree) NewContainerDecl(p ContainerDeclNode) NodeID {
	return t.newNode(NodeContainerDecl, t.containerDecls.Allocate(p))
}

func (t *Tree) ContainerDeclNode(id NodeID) *ContainerDeclNode {
	return t.containerDecls.Get(t.payload(id, NodeContainerDecl))
}

func (t *Tree) NewContainerField(p ContainerFieldNode) NodeID {
	return t.newNode(NodeContainerField, t.containerFields.Allocate(p))
}

func (t *Tree) ContainerFieldNode(id NodeID) *ContainerFieldNode {
	return t.containerFields.Get(t.payload(id, NodeContainerField))
}

func (t *Tree) NewErrorSetDecl(p ErrorSetDeclNode) NodeID {
	return t.newNode(NodeErrorSetDecl, t.errorSetDecls.Allocate(p))
}

func (t *Tree) ErrorSetDeclNode(id NodeID) *ErrorSetDeclNode {
	return t.errorSetDecls.Get(t.payload(id, NodeErrorSetDecl))
}

func (t *Tree) NewErrorTag(p ErrorTagNode) NodeID {
	return t.newNode(NodeErrorTag, t.errorTags.Allocate(p))
}

func (t *Tree) ErrorTagNode(id NodeID) *ErrorTagNode {
	return t.errorTags.Get(t.payload(id, NodeErrorTag))
}

func (t *Tree) NewFnProto(p FnProtoNode) NodeID {
	return t.newNode(NodeFnProto, t.fnProtos.Allocate(p))
}

func (t *Tree) FnProtoNode(id NodeID) *FnProtoNode {
	return t.fnProtos.Get(t.payload(id, NodeFnProto))
}

func (t *Tree) NewParamDecl(p ParamDeclNode) NodeID {
	return t.newNode(NodeParamDecl, t.paramDecls.Allocate(p))
}

func (t *Tree) ParamDeclNode(id NodeID) *ParamDeclNode {
	return t.paramDecls.Get(t.payload(id, NodeParamDecl))
}

func (t *Tree) NewBlock(p BlockNode) NodeID {
	return t.newNode(NodeBlock, t.blocks.Allocate(p))
}

func (t *Tree) BlockNode(id NodeID) *BlockNode {
	return t.blocks.Get(t.payload(id, NodeBlock))
}

func (t *Tree) NewBuiltinCall(p BuiltinCallNode) NodeID {
	return t.newNode(NodeBuiltinCall, t.builtinCalls.Allocate(p))
}

func (t *Tree) BuiltinCallNode(id NodeID) *BuiltinCallNode {
	return t.builtinCalls.Get(t.payload(id, NodeBuiltinCall))
}

func (t *Tree) NewAsm(p AsmNode) NodeID {
	return t.newNode(NodeAsm, t.asms.Allocate(p))
}

func (t *Tree) AsmNode(id NodeID) *AsmNode {
	return t.asms.Get(t.payload(id, NodeAsm))
}

func (t *Tree) NewAsmOutput(p AsmOutputNode) NodeID {
	return t.newNode(NodeAsmOutput, t.asmOutputs.Allocate(p))
}

func (t *Tree) AsmOutputNode(id NodeID) *AsmOutputNode {
	return t.asmOutputs.Get(t.payload(id, NodeAsmOutput))
}

func (t *Tree) NewAsmInput(p AsmInputNode) NodeID {
	return t.newNode(NodeAsmInput, t.asmInputs.Allocate(p))
}

func (t *Tree) AsmInputNode(id NodeID) *AsmInputNode {
	return t.asmInputs.Get(t.payload(id, NodeAsmInput))
}

func (t *Tree) NewFieldInitializer(p FieldInitializerNode) NodeID {
	return t.newNode(NodeFieldInitializer, t.fieldInits.Allocate(p))
}

func (t *Tree) FieldInitializerNode(id NodeID) *FieldInitializerNode {
	return t.fieldInits.Get(t.payload(id, NodeFieldInitializer))
}

func (t *Tree) NewDocComment(p DocCommentNode) NodeID {
	return t.newNode(NodeDocComment, t.docComments.Allocate(p))
}

func (t *Tree) DocCommentNode(id NodeID) *DocCommentNode {
	return t.docComments.Get(t.payload(id, NodeDocComment))
}

func (t *Tree) NewMultilineString(p MultilineStringNode) NodeID {
	return t.newNode(NodeMultilineStringLit, t.multilineStrings.Allocate(p))
}

func (t *Tree) MultilineStringNode(id NodeID) *MultilineStringNode {
	return t.multilineStrings.Get(t.payload(id, NodeMultilineStringLit))
}

func (t *Tree) NewEnumLit(p EnumLitNode) NodeID {
	return t.newNode(NodeEnumLit, t.enumLits.Allocate(p))
}

func (t *Tree) EnumLitNode(id NodeID) *EnumLitNode {
	return t.enumLits.Get(t.payload(id, NodeEnumLit))
}
