package ast

import (
	"zag/internal/token"
)

// InfixOp is the operator of an InfixOpNode.
type InfixOp uint8

const (
	InfixAdd InfixOp = iota
	InfixAddWrap
	InfixArrayCat
	InfixArrayMult
	InfixAssign
	InfixAssignAdd
	InfixAssignAddWrap
	InfixAssignBitAnd
	InfixAssignBitOr
	InfixAssignBitShiftLeft
	InfixAssignBitShiftRight
	InfixAssignBitXor
	InfixAssignDiv
	InfixAssignMod
	InfixAssignMul
	InfixAssignMulWrap
	InfixAssignSub
	InfixAssignSubWrap
	InfixBangEqual
	InfixBitAnd
	InfixBitOr
	InfixBitShiftLeft
	InfixBitShiftRight
	InfixBitXor
	InfixBoolAnd
	InfixBoolOr
	InfixCatch
	InfixDiv
	InfixEqualEqual
	InfixErrorUnion
	InfixGreaterOrEqual
	InfixGreaterThan
	InfixLessOrEqual
	InfixLessThan
	InfixMergeErrorSets
	InfixMod
	InfixMul
	InfixMulWrap
	InfixOrElse
	InfixPeriod
	InfixRange
	InfixSub
	InfixSubWrap
)

// PrefixOp is the operator of a PrefixOpNode.
type PrefixOp uint8

const (
	PrefixAddressOf PrefixOp = iota
	PrefixArrayType
	PrefixAwait
	PrefixBitNot
	PrefixBoolNot
	PrefixNegation
	PrefixNegationWrap
	PrefixOptionalType
	PrefixPtrType
	PrefixResume
	PrefixSliceType
	PrefixTry
)

// SuffixOp is the operator of a SuffixOpNode.
type SuffixOp uint8

const (
	SuffixCall SuffixOp = iota
	SuffixArrayAccess
	SuffixSlice
	SuffixArrayInit
	SuffixStructInit
	SuffixDeref
	SuffixUnwrapOptional
)

// ControlFlowKind distinguishes break, continue and return.
type ControlFlowKind uint8

const (
	ControlFlowBreak ControlFlowKind = iota
	ControlFlowContinue
	ControlFlowReturn
)

// ContainerKind is the aggregate flavor of a ContainerDecl.
type ContainerKind uint8

const (
	ContainerStruct ContainerKind = iota
	ContainerEnum
	ContainerUnion
)

// ContainerInitKind describes the parenthesized argument after the
// container keyword: none, `enum(Tag)` / `union(enum)`, or `enum(u8)`
// style type arguments.
type ContainerInitKind uint8

const (
	ContainerInitNone ContainerInitKind = iota
	ContainerInitEnum
	ContainerInitType
)

// RootNode is the file-level declaration list. EofToken anchors the
// span of an empty file.
type RootNode struct {
	Doc      NodeID
	Decls    []NodeID
	EofToken token.Index
}

// UseNode is a `usingnamespace` (or legacy `use`) declaration.
type UseNode struct {
	Doc        NodeID
	VisibToken token.OptIndex
	UseToken   token.Index
	Expr       NodeID
	Semicolon  token.Index
}

// TestDeclNode is a `test "name" { ... }` declaration.
type TestDeclNode struct {
	Doc       NodeID
	TestToken token.Index
	Name      NodeID
	Body      NodeID
}

// VarDeclNode is a `var` or `const` declaration, at container or
// statement level.
type VarDeclNode struct {
	Doc              NodeID
	VisibToken       token.OptIndex
	ThreadLocalToken token.OptIndex
	ComptimeToken    token.OptIndex
	ExternToken      token.OptIndex
	LibName          NodeID
	MutToken         token.Index
	NameToken        token.Index
	Type             NodeID
	Align            NodeID
	Section          NodeID
	EqToken          token.OptIndex
	Init             NodeID
	Semicolon        token.Index
}

// DeferNode is `defer expr` or `errdefer |err| expr`.
type DeferNode struct {
	DeferToken token.Index
	Payload    NodeID
	Expr       NodeID
}

// ComptimeNode wraps an expression or block evaluated at compile time.
type ComptimeNode struct {
	Doc           NodeID
	ComptimeToken token.Index
	Expr          NodeID
}

// SuspendNode is `suspend` with an optional body.
type SuspendNode struct {
	SuspendToken token.Index
	Body         NodeID
}

// InfixOpNode is a binary operation. Payload is only set for catch
// (`lhs catch |err| rhs`).
type InfixOpNode struct {
	OpToken token.Index
	Op      InfixOp
	Lhs     NodeID
	Payload NodeID
	Rhs     NodeID
}

// PtrInfo carries the qualifiers of pointer and slice type prefixes.
// The qualifier tokens are recorded so diagnostics can point at
// duplicates.
type PtrInfo struct {
	AllowZeroToken token.OptIndex
	Align          NodeID
	BitRangeStart  NodeID
	BitRangeEnd    NodeID
	ConstToken     token.OptIndex
	VolatileToken  token.OptIndex
}

// PrefixOpNode is a prefix operation, including pointer, slice, array
// and optional type constructors. ArrayLen is set for PrefixArrayType;
// Ptr is consulted for PrefixPtrType and PrefixSliceType.
type PrefixOpNode struct {
	OpToken  token.Index
	Op       PrefixOp
	ArrayLen NodeID
	Ptr      PtrInfo
	Rhs      NodeID
}

// SuffixOpNode is a postfix operation on Lhs. Exprs holds call
// arguments, initializer entries, or the index/slice bounds depending
// on Op. RToken closes the operation: ')' for calls, ']' for indexing,
// '}' for initializers, and the '*' or '?' token for deref and unwrap.
type SuffixOpNode struct {
	Lhs        NodeID
	Op         SuffixOp
	AsyncToken token.OptIndex
	LToken     token.OptIndex
	Exprs      []NodeID
	RToken     token.Index
}

// GroupedExprNode is a parenthesized expression.
type GroupedExprNode struct {
	LParen token.Index
	Expr   NodeID
	RParen token.Index
}

// ControlFlowExprNode is break, continue or return, with an optional
// label (break/continue) and an optional operand.
type ControlFlowExprNode struct {
	LTok  token.Index
	Kind  ControlFlowKind
	Label token.OptIndex
	Rhs   NodeID
}

// IfNode is an if expression with optional capture payload and else
// branch.
type IfNode struct {
	IfToken   token.Index
	Condition NodeID
	Payload   NodeID
	Body      NodeID
	Else      NodeID
}

// WhileNode is a while loop. Continue is the `: (expr)` continuation.
type WhileNode struct {
	Label       token.OptIndex
	InlineToken token.OptIndex
	WhileToken  token.Index
	Condition   NodeID
	Payload     NodeID
	Continue    NodeID
	Body        NodeID
	Else        NodeID
}

// ForNode is a for loop over an array or slice expression.
type ForNode struct {
	Label       token.OptIndex
	InlineToken token.OptIndex
	ForToken    token.Index
	ArrayExpr   NodeID
	Payload     NodeID
	Body        NodeID
	Else        NodeID
}

// SwitchNode is a switch expression.
type SwitchNode struct {
	SwitchToken token.Index
	Expr        NodeID
	Cases       []NodeID
	RBrace      token.Index
}

// SwitchCaseNode is one prong. Items are expressions or ranges; a
// SwitchElse node stands in for the `else` item.
type SwitchCaseNode struct {
	Items   []NodeID
	Arrow   token.Index
	Payload NodeID
	Expr    NodeID
}

// ElseNode is the else branch of if/while/for, with an optional error
// payload.
type ElseNode struct {
	ElseToken token.Index
	Payload   NodeID
	Body      NodeID
}

// PayloadNode is `|error|` as used by errdefer and catch.
type PayloadNode struct {
	LPipe token.Index
	Error NodeID
	RPipe token.Index
}

// PointerPayloadNode is `|*value|` as used by if and while.
type PointerPayloadNode struct {
	LPipe    token.Index
	PtrToken token.OptIndex
	Value    NodeID
	RPipe    token.Index
}

// PointerIndexPayloadNode is `|*value, index|` as used by for.
type PointerIndexPayloadNode struct {
	LPipe    token.Index
	PtrToken token.OptIndex
	Value    NodeID
	Index    NodeID
	RPipe    token.Index
}

// ContainerDeclNode is a struct, enum or union literal type.
type ContainerDeclNode struct {
	LayoutToken token.OptIndex
	KindToken   token.Index
	Kind        ContainerKind
	InitKind    ContainerInitKind
	InitArg     NodeID
	LBrace      token.Index
	Members     []NodeID
	RBrace      token.Index
}

// ContainerFieldNode is one field of a container declaration.
type ContainerFieldNode struct {
	Doc        NodeID
	VisibToken token.OptIndex
	NameToken  token.Index
	Type       NodeID
	Value      NodeID
}

// ErrorSetDeclNode is `error { A, B }`.
type ErrorSetDeclNode struct {
	ErrorToken token.Index
	Decls      []NodeID
	RBrace     token.Index
}

// ErrorTagNode is one name inside an error set declaration.
type ErrorTagNode struct {
	Doc       NodeID
	NameToken token.Index
}

// FnProtoNode is a function prototype, optionally with a body.
type FnProtoNode struct {
	Doc               NodeID
	VisibToken        token.OptIndex
	ExternExportToken token.OptIndex
	LibName           NodeID
	InlineToken       token.OptIndex
	CCToken           token.OptIndex
	AsyncToken        token.OptIndex
	FnToken           token.Index
	NameToken         token.OptIndex
	Params            []NodeID
	VarArgsToken      token.OptIndex
	RParen            token.Index
	Align             NodeID
	Section           NodeID
	BangToken         token.OptIndex
	ReturnType        NodeID
	Body              NodeID
}

// ParamDeclNode is one function parameter. VarArgsToken marks a
// trailing `...`; Type is NoNode in that case and for `var` typed
// parameters the type is a VarType node.
type ParamDeclNode struct {
	Doc           NodeID
	ComptimeToken token.OptIndex
	NoaliasToken  token.OptIndex
	NameToken     token.OptIndex
	Type          NodeID
	VarArgsToken  token.OptIndex
}

// BlockNode is `{ ... }`, optionally labeled.
type BlockNode struct {
	Label      token.OptIndex
	LBrace     token.Index
	Statements []NodeID
	RBrace     token.Index
}

// BuiltinCallNode is `@name(args)`.
type BuiltinCallNode struct {
	BuiltinToken token.Index
	Params       []NodeID
	RParen       token.Index
}

// AsmNode is an inline assembly expression.
type AsmNode struct {
	AsmToken      token.Index
	VolatileToken token.OptIndex
	Template      NodeID
	Outputs       []NodeID
	Inputs        []NodeID
	Clobbers      []NodeID
	RParen        token.Index
}

// AsmOutputNode is one output operand: `[sym] "constraint" (variable)`
// or `[sym] "constraint" -> Type`.
type AsmOutputNode struct {
	LBracket   token.Index
	Symbol     NodeID
	Constraint NodeID
	Variable   NodeID
	ReturnType NodeID
	RParen     token.Index
}

// AsmInputNode is one input operand: `[sym] "constraint" (expr)`.
type AsmInputNode struct {
	LBracket   token.Index
	Symbol     NodeID
	Constraint NodeID
	Expr       NodeID
	RParen     token.Index
}

// FieldInitializerNode is `.name = expr` inside a struct initializer.
type FieldInitializerNode struct {
	PeriodToken token.Index
	NameToken   token.Index
	Expr        NodeID
}

// DocCommentNode is a run of consecutive `///` tokens attached to the
// following declaration.
type DocCommentNode struct {
	Lines []token.Index
}

// MultilineStringNode is a run of consecutive `\\` line tokens forming
// one string literal.
type MultilineStringNode struct {
	Lines []token.Index
}

// EnumLitNode is an anonymous enum literal `.Name`.
type EnumLitNode struct {
	PeriodToken token.Index
	NameToken   token.Index
}
