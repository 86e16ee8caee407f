package diag

import (
	"zag/internal/ast"
	"zag/internal/source"
)

// FromTree reports every syntax error recorded on tree as an error
// diagnostic against file. Message text comes from the tree's own
// rendering, so CLI output and tree errors never disagree.
func FromTree(tree *ast.Tree, file source.FileID, r Reporter) {
	for _, e := range tree.Errors {
		tok := tree.Token(e.Token)
		r.Report(codeFor(e.Kind), SevError, tok.Span(file), e.Message(tree.Tokens), nil)
	}
}

// CollectTree is FromTree into a fresh bag.
func CollectTree(tree *ast.Tree, file source.FileID, max int) *Bag {
	bag := NewBag(max)
	FromTree(tree, file, BagReporter{Bag: bag})
	return bag
}

func codeFor(kind ast.ErrorKind) Code {
	switch kind {
	case ast.ErrInvalidToken:
		return LexInvalidBytes
	case ast.ErrExpectedToken:
		return SynExpectedToken
	case ast.ErrExpectedCommaOrEnd:
		return SynExpectedCommaOrEnd
	case ast.ErrExpectedExpr:
		return SynExpectedExpr
	case ast.ErrExpectedPrimaryExpr:
		return SynExpectedPrimaryExpr
	case ast.ErrExpectedTypeExpr:
		return SynExpectedTypeExpr
	case ast.ErrExpectedPrefixExpr:
		return SynExpectedPrefixExpr
	case ast.ErrExpectedStatement:
		return SynExpectedStatement
	case ast.ErrExpectedVarDeclOrFn:
		return SynExpectedVarDeclOrFn
	case ast.ErrExpectedReturnType:
		return SynExpectedReturnType
	case ast.ErrExpectedAggregateKeyword:
		return SynExpectedAggregateKeyword
	case ast.ErrExpectedEqOrSemi:
		return SynExpectedEqOrSemi
	case ast.ErrExpectedSemiOrLBrace:
		return SynExpectedSemiOrLBrace
	case ast.ErrExpectedSemiOrElse:
		return SynExpectedSemiOrElse
	case ast.ErrExpectedLBrace:
		return SynExpectedLBrace
	case ast.ErrExpectedLabelable:
		return SynExpectedLabelable
	case ast.ErrExpectedInlinable:
		return SynExpectedInlinable
	case ast.ErrExpectedBlockOrAssignment:
		return SynExpectedBlockOrAssign
	case ast.ErrExpectedBlockOrExpr:
		return SynExpectedBlockOrExpr
	case ast.ErrExpectedBlockOrField:
		return SynExpectedBlockOrField
	case ast.ErrExpectedExprOrAssignment:
		return SynExpectedExprOrAssign
	case ast.ErrExpectedParamList:
		return SynExpectedParamList
	case ast.ErrExpectedPayload:
		return SynExpectedPayload
	case ast.ErrExpectedParamType:
		return SynExpectedParamType
	case ast.ErrExpectedPubItem:
		return SynExpectedPubItem
	case ast.ErrExpectedStringLiteral:
		return SynExpectedStringLiteral
	case ast.ErrExpectedIntegerLiteral:
		return SynExpectedIntegerLiteral
	case ast.ErrExpectedAsmOutputReturnOrType:
		return SynExpectedAsmOutput
	case ast.ErrExpectedCall:
		return SynExpectedCall
	case ast.ErrExpectedSwitchItem:
		return SynExpectedSwitchItem
	case ast.ErrExpectedContainerMembers:
		return SynExpectedContainerMember
	case ast.ErrUnattachedDocComment:
		return SynUnattachedDocComment
	case ast.ErrExtraAlignQualifier:
		return SynExtraAlignQualifier
	case ast.ErrExtraConstQualifier:
		return SynExtraConstQualifier
	case ast.ErrExtraVolatileQualifier:
		return SynExtraVolatileQualifier
	case ast.ErrExtraAllowZeroQualifier:
		return SynExtraAllowZeroQualifier
	default:
		return UnknownCode
	}
}
