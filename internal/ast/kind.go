package ast

// NodeKind discriminates the payload a node carries. The set is closed;
// every kind is handled by the switches in walk.go.
type NodeKind uint8

const (
	NodeRoot NodeKind = iota
	NodeUse
	NodeTestDecl
	NodeVarDecl
	NodeDefer
	NodeComptime
	NodeSuspend

	NodeInfixOp
	NodePrefixOp
	NodeSuffixOp
	NodeGroupedExpr
	NodeControlFlowExpr

	NodeIf
	NodeWhile
	NodeFor
	NodeSwitch
	NodeSwitchCase
	NodeSwitchElse
	NodeElse
	NodePayload
	NodePointerPayload
	NodePointerIndexPayload

	NodeContainerDecl
	NodeContainerField
	NodeErrorSetDecl
	NodeErrorTag
	NodeFnProto
	NodeParamDecl
	NodeBlock

	NodeBuiltinCall
	NodeAsm
	NodeAsmOutput
	NodeAsmInput
	NodeFieldInitializer
	NodeDocComment

	NodeIdentifier
	NodeIntLit
	NodeFloatLit
	NodeStringLit
	NodeMultilineStringLit
	NodeCharLit
	NodeBoolLit
	NodeNullLit
	NodeUndefinedLit
	NodeEnumLit
	NodeErrorType
	NodeVarType
	NodeUnreachable

	nodeKindCount
)

var nodeKindNames = [nodeKindCount]string{
	NodeRoot:                "Root",
	NodeUse:                 "Use",
	NodeTestDecl:            "TestDecl",
	NodeVarDecl:             "VarDecl",
	NodeDefer:               "Defer",
	NodeComptime:            "Comptime",
	NodeSuspend:             "Suspend",
	NodeInfixOp:             "InfixOp",
	NodePrefixOp:            "PrefixOp",
	NodeSuffixOp:            "SuffixOp",
	NodeGroupedExpr:         "GroupedExpr",
	NodeControlFlowExpr:     "ControlFlowExpr",
	NodeIf:                  "If",
	NodeWhile:               "While",
	NodeFor:                 "For",
	NodeSwitch:              "Switch",
	NodeSwitchCase:          "SwitchCase",
	NodeSwitchElse:          "SwitchElse",
	NodeElse:                "Else",
	NodePayload:             "Payload",
	NodePointerPayload:      "PointerPayload",
	NodePointerIndexPayload: "PointerIndexPayload",
	NodeContainerDecl:       "ContainerDecl",
	NodeContainerField:      "ContainerField",
	NodeErrorSetDecl:        "ErrorSetDecl",
	NodeErrorTag:            "ErrorTag",
	NodeFnProto:             "FnProto",
	NodeParamDecl:           "ParamDecl",
	NodeBlock:               "Block",
	NodeBuiltinCall:         "BuiltinCall",
	NodeAsm:                 "Asm",
	NodeAsmOutput:           "AsmOutput",
	NodeAsmInput:            "AsmInput",
	NodeFieldInitializer:    "FieldInitializer",
	NodeDocComment:          "DocComment",
	NodeIdentifier:          "Identifier",
	NodeIntLit:              "IntLit",
	NodeFloatLit:            "FloatLit",
	NodeStringLit:           "StringLit",
	NodeMultilineStringLit:  "MultilineStringLit",
	NodeCharLit:             "CharLit",
	NodeBoolLit:             "BoolLit",
	NodeNullLit:             "NullLit",
	NodeUndefinedLit:        "UndefinedLit",
	NodeEnumLit:             "EnumLit",
	NodeErrorType:           "ErrorType",
	NodeVarType:             "VarType",
	NodeUnreachable:         "Unreachable",
}

func (k NodeKind) String() string {
	if k < nodeKindCount {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// isTokenKind reports whether nodes of this kind store a bare token index
// as their payload instead of an arena reference.
func (k NodeKind) isTokenKind() bool {
	switch k {
	case NodeIdentifier, NodeIntLit, NodeFloatLit, NodeStringLit,
		NodeCharLit, NodeBoolLit, NodeNullLit, NodeUndefinedLit,
		NodeErrorType, NodeVarType, NodeUnreachable, NodeSwitchElse:
		return true
	default:
		return false
	}
}
