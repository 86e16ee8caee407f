package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInvalidBytes Code = 1001

	// Syntactic
	SynExpectedToken            Code = 2001
	SynExpectedCommaOrEnd       Code = 2002
	SynExpectedExpr             Code = 2003
	SynExpectedPrimaryExpr      Code = 2004
	SynExpectedTypeExpr         Code = 2005
	SynExpectedPrefixExpr       Code = 2006
	SynExpectedStatement        Code = 2007
	SynExpectedVarDeclOrFn      Code = 2008
	SynExpectedReturnType       Code = 2009
	SynExpectedAggregateKeyword Code = 2010
	SynExpectedEqOrSemi         Code = 2011
	SynExpectedSemiOrLBrace     Code = 2012
	SynExpectedSemiOrElse       Code = 2013
	SynExpectedLBrace           Code = 2014
	SynExpectedLabelable        Code = 2015
	SynExpectedInlinable        Code = 2016
	SynExpectedBlockOrAssign    Code = 2017
	SynExpectedBlockOrExpr      Code = 2018
	SynExpectedBlockOrField     Code = 2019
	SynExpectedExprOrAssign     Code = 2020
	SynExpectedParamList        Code = 2021
	SynExpectedPayload          Code = 2022
	SynExpectedParamType        Code = 2023
	SynExpectedPubItem          Code = 2024
	SynExpectedStringLiteral    Code = 2025
	SynExpectedIntegerLiteral   Code = 2026
	SynExpectedAsmOutput        Code = 2027
	SynExpectedCall             Code = 2028
	SynExpectedSwitchItem       Code = 2029
	SynExpectedContainerMember  Code = 2030
	SynUnattachedDocComment     Code = 2031
	SynExtraAlignQualifier      Code = 2032
	SynExtraConstQualifier      Code = 2033
	SynExtraVolatileQualifier   Code = 2034
	SynExtraAllowZeroQualifier  Code = 2035

	// Driver I/O
	IOLoadFileError Code = 3001
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown diagnostic",

	LexInvalidBytes: "invalid bytes in source",

	SynExpectedToken:            "expected a specific token",
	SynExpectedCommaOrEnd:       "expected ',' or the end of the list",
	SynExpectedExpr:             "expected an expression",
	SynExpectedPrimaryExpr:      "expected a primary expression",
	SynExpectedTypeExpr:         "expected a type expression",
	SynExpectedPrefixExpr:       "expected a prefix operand",
	SynExpectedStatement:        "expected a statement",
	SynExpectedVarDeclOrFn:      "expected a variable declaration or function",
	SynExpectedReturnType:       "expected a return type",
	SynExpectedAggregateKeyword: "expected struct, enum, or union",
	SynExpectedEqOrSemi:         "expected '=' or ';'",
	SynExpectedSemiOrLBrace:     "expected ';' or a block",
	SynExpectedSemiOrElse:       "expected ';' or 'else'",
	SynExpectedLBrace:           "expected a block",
	SynExpectedLabelable:        "label must precede a block or loop",
	SynExpectedInlinable:        "inline must precede a loop",
	SynExpectedBlockOrAssign:    "expected a block or assignment",
	SynExpectedBlockOrExpr:      "expected a block or expression",
	SynExpectedBlockOrField:     "expected a block or field",
	SynExpectedExprOrAssign:     "expected an expression or assignment",
	SynExpectedParamList:        "expected a call argument list",
	SynExpectedPayload:          "expected a loop payload",
	SynExpectedParamType:        "expected a parameter type",
	SynExpectedPubItem:          "pub must precede a declaration",
	SynExpectedStringLiteral:    "expected a string literal",
	SynExpectedIntegerLiteral:   "expected an integer literal",
	SynExpectedAsmOutput:        "expected asm output destination",
	SynExpectedCall:             "expected a call",
	SynExpectedSwitchItem:       "expected a switch case item",
	SynExpectedContainerMember:  "expected a container member",
	SynUnattachedDocComment:     "doc comment is not attached to anything",
	SynExtraAlignQualifier:      "duplicate align qualifier",
	SynExtraConstQualifier:      "duplicate const qualifier",
	SynExtraVolatileQualifier:   "duplicate volatile qualifier",
	SynExtraAllowZeroQualifier:  "duplicate allowzero qualifier",

	IOLoadFileError: "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
