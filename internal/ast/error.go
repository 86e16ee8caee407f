package ast

import (
	"fmt"
	"io"

	"zag/internal/token"
)

// ErrorKind enumerates the recoverable syntax errors a parse records.
type ErrorKind uint8

const (
	// ErrInvalidToken is the catch-all for a token no rule accepts.
	ErrInvalidToken ErrorKind = iota
	// ErrExpectedToken carries the single kind that would have been
	// accepted at the offending position.
	ErrExpectedToken
	// ErrExpectedCommaOrEnd carries the closing kind of the list the
	// parser was inside.
	ErrExpectedCommaOrEnd

	ErrExpectedExpr
	ErrExpectedPrimaryExpr
	ErrExpectedTypeExpr
	ErrExpectedPrefixExpr
	ErrExpectedStatement
	ErrExpectedVarDeclOrFn
	ErrExpectedReturnType
	ErrExpectedAggregateKeyword
	ErrExpectedEqOrSemi
	ErrExpectedSemiOrLBrace
	ErrExpectedSemiOrElse
	ErrExpectedLBrace
	ErrExpectedLabelable
	ErrExpectedInlinable
	ErrExpectedBlockOrAssignment
	ErrExpectedBlockOrExpr
	ErrExpectedBlockOrField
	ErrExpectedExprOrAssignment
	ErrExpectedParamList
	ErrExpectedPayload
	ErrExpectedParamType
	ErrExpectedPubItem
	ErrExpectedStringLiteral
	ErrExpectedIntegerLiteral
	ErrExpectedAsmOutputReturnOrType
	ErrExpectedCall
	ErrExpectedSwitchItem
	ErrExpectedContainerMembers

	ErrUnattachedDocComment
	ErrExtraAlignQualifier
	ErrExtraConstQualifier
	ErrExtraVolatileQualifier
	ErrExtraAllowZeroQualifier
)

// Error is one recorded syntax error. Token is the offending token;
// Expected is consulted only by the kinds documented above.
type Error struct {
	Kind     ErrorKind
	Token    token.Index
	Expected token.Kind
}

// foundDesc describes the offending token for a message. Token classes
// already read as prose; concrete symbols get quoted.
func foundDesc(k token.Kind) string {
	switch k {
	case token.Invalid, token.EOF, token.Ident, token.Builtin,
		token.IntLit, token.FloatLit, token.StringLit,
		token.MultilineStringLine, token.CharLit,
		token.LineComment, token.DocComment:
		return k.Symbol()
	default:
		return "'" + k.Symbol() + "'"
	}
}

// Message formats the error against the token list it was recorded
// for.
func (e Error) Message(tokens []token.Token) string {
	found := foundDesc(tokens[e.Token].Kind)
	switch e.Kind {
	case ErrInvalidToken:
		if tokens[e.Token].Kind == token.Invalid {
			return "invalid bytes"
		}
		return fmt.Sprintf("invalid token: %s", found)
	case ErrExpectedToken:
		return fmt.Sprintf("expected '%s', found %s", e.Expected.Symbol(), found)
	case ErrExpectedCommaOrEnd:
		return fmt.Sprintf("expected ',' or '%s', found %s", e.Expected.Symbol(), found)
	case ErrExpectedExpr:
		return fmt.Sprintf("expected expression, found %s", found)
	case ErrExpectedPrimaryExpr:
		return fmt.Sprintf("expected primary expression, found %s", found)
	case ErrExpectedTypeExpr:
		return fmt.Sprintf("expected type expression, found %s", found)
	case ErrExpectedPrefixExpr:
		return fmt.Sprintf("expected prefix expression, found %s", found)
	case ErrExpectedStatement:
		return fmt.Sprintf("expected statement, found %s", found)
	case ErrExpectedVarDeclOrFn:
		return fmt.Sprintf("expected variable declaration or function, found %s", found)
	case ErrExpectedReturnType:
		return fmt.Sprintf("expected '!' or block, found %s", found)
	case ErrExpectedAggregateKeyword:
		return fmt.Sprintf("expected '%s', '%s', or '%s', found %s",
			token.KwStruct.Symbol(), token.KwUnion.Symbol(), token.KwEnum.Symbol(), found)
	case ErrExpectedEqOrSemi:
		return fmt.Sprintf("expected '=' or ';', found %s", found)
	case ErrExpectedSemiOrLBrace:
		return fmt.Sprintf("expected ';' or '{', found %s", found)
	case ErrExpectedSemiOrElse:
		return fmt.Sprintf("expected ';' or 'else', found %s", found)
	case ErrExpectedLBrace:
		return fmt.Sprintf("expected '{', found %s", found)
	case ErrExpectedLabelable:
		return fmt.Sprintf("expected 'while', 'for', '{', found %s", found)
	case ErrExpectedInlinable:
		return fmt.Sprintf("expected 'while' or 'for', found %s", found)
	case ErrExpectedBlockOrAssignment:
		return fmt.Sprintf("expected block or assignment, found %s", found)
	case ErrExpectedBlockOrExpr:
		return fmt.Sprintf("expected block or expression, found %s", found)
	case ErrExpectedBlockOrField:
		return fmt.Sprintf("expected block or field, found %s", found)
	case ErrExpectedExprOrAssignment:
		return fmt.Sprintf("expected expression or assignment, found %s", found)
	case ErrExpectedParamList:
		return fmt.Sprintf("expected parameter list, found %s", found)
	case ErrExpectedPayload:
		return fmt.Sprintf("expected loop payload, found %s", found)
	case ErrExpectedParamType:
		return fmt.Sprintf("expected parameter type, found %s", found)
	case ErrExpectedPubItem:
		return "expected function or variable declaration after pub"
	case ErrExpectedStringLiteral:
		return fmt.Sprintf("expected string literal, found %s", found)
	case ErrExpectedIntegerLiteral:
		return fmt.Sprintf("expected integer literal, found %s", found)
	case ErrExpectedAsmOutputReturnOrType:
		return fmt.Sprintf("expected '->' or identifier, found %s", found)
	case ErrExpectedCall:
		return "expected call, found other expression"
	case ErrExpectedSwitchItem:
		return fmt.Sprintf("expected switch item, found %s", found)
	case ErrExpectedContainerMembers:
		return fmt.Sprintf("expected test, comptime, var decl, or container field, found %s", found)
	case ErrUnattachedDocComment:
		return "unattached documentation comment"
	case ErrExtraAlignQualifier:
		return "extra align qualifier"
	case ErrExtraConstQualifier:
		return "extra const qualifier"
	case ErrExtraVolatileQualifier:
		return "extra volatile qualifier"
	case ErrExtraAllowZeroQualifier:
		return "extra allowzero qualifier"
	default:
		return fmt.Sprintf("unknown syntax error at %s", found)
	}
}

// Render writes the formatted message to w.
func (e Error) Render(tokens []token.Token, w io.Writer) error {
	_, err := io.WriteString(w, e.Message(tokens))
	return err
}
