package token

// Kind is the category of a source token.
type Kind uint8

const (
	// Invalid marks bytes the tokenizer could not classify.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is an identifier.
	Ident
	// Builtin is an @-prefixed builtin name, e.g. @import.
	Builtin

	// IntLit is an integer literal in any radix.
	IntLit
	// FloatLit is a floating point literal.
	FloatLit
	// StringLit is a double-quoted string literal.
	StringLit
	// MultilineStringLine is one \\-prefixed line of a multiline string.
	MultilineStringLine
	// CharLit is a single-quoted character literal.
	CharLit

	// LineComment is a // comment, transparent to the grammar.
	LineComment
	// DocComment is a /// comment attached to the following declaration.
	DocComment

	Bang             // !
	BangEq           // !=
	Pipe             // |
	PipePipe         // ||
	PipeEq           // |=
	Eq               // =
	EqEq             // ==
	FatArrow         // =>
	LParen           // (
	RParen           // )
	Semicolon        // ;
	Colon            // :
	Percent          // %
	PercentEq        // %=
	LBrace           // {
	RBrace           // }
	LBracket         // [
	RBracket         // ]
	Period           // .
	PeriodPeriod     // ..
	Ellipsis         // ...
	Caret            // ^
	CaretEq          // ^=
	Plus             // +
	PlusPlus         // ++
	PlusEq           // +=
	PlusPercent      // +%
	PlusPercentEq    // +%=
	Minus            // -
	MinusEq          // -=
	MinusPercent     // -%
	MinusPercentEq   // -%=
	Arrow            // ->
	Star             // *
	StarEq           // *=
	StarStar         // **
	StarPercent      // *%
	StarPercentEq    // *%=
	Slash            // /
	SlashEq          // /=
	Comma            // ,
	Amp              // &
	AmpEq            // &=
	Question         // ?
	Lt               // <
	LtEq             // <=
	Shl              // <<
	ShlEq            // <<=
	Gt               // >
	GtEq             // >=
	Shr              // >>
	ShrEq            // >>=
	Tilde            // ~

	KwAlign          // align
	KwAllowZero      // allowzero
	KwAnd            // and
	KwAsm            // asm
	KwAsync          // async
	KwAwait          // await
	KwBreak          // break
	KwCatch          // catch
	KwComptime       // comptime
	KwConst          // const
	KwContinue       // continue
	KwDefer          // defer
	KwElse           // else
	KwEnum           // enum
	KwErrdefer       // errdefer
	KwError          // error
	KwExport         // export
	KwExtern         // extern
	KwFalse          // false
	KwFn             // fn
	KwFor            // for
	KwIf             // if
	KwInline         // inline
	KwLinkSection    // linksection
	KwNakedCC        // nakedcc
	KwNoalias        // noalias
	KwNull           // null
	KwOr             // or
	KwOrElse         // orelse
	KwPacked         // packed
	KwPub            // pub
	KwResume         // resume
	KwReturn         // return
	KwStdcallCC      // stdcallcc
	KwStruct         // struct
	KwSuspend        // suspend
	KwSwitch         // switch
	KwTest           // test
	KwThreadLocal    // threadlocal
	KwTrue           // true
	KwTry            // try
	KwUndefined      // undefined
	KwUnion          // union
	KwUnreachable    // unreachable
	KwUse            // use
	KwUsingNamespace // usingnamespace
	KwVar            // var
	KwVolatile       // volatile
	KwWhile          // while

	kindCount
)

// Symbol returns the fixed surface text of punctuation and keywords,
// and a class description for the open-ended kinds. Diagnostics
// rendering relies on it.
func (k Kind) Symbol() string {
	switch k {
	case Invalid:
		return "invalid bytes"
	case EOF:
		return "EOF"
	case Ident:
		return "an identifier"
	case Builtin:
		return "a builtin function"
	case IntLit:
		return "an integer literal"
	case FloatLit:
		return "a float literal"
	case StringLit:
		return "a string literal"
	case MultilineStringLine:
		return "a multiline string literal line"
	case CharLit:
		return "a character literal"
	case LineComment:
		return "a comment"
	case DocComment:
		return "a doc comment"
	case Bang:
		return "!"
	case BangEq:
		return "!="
	case Pipe:
		return "|"
	case PipePipe:
		return "||"
	case PipeEq:
		return "|="
	case Eq:
		return "="
	case EqEq:
		return "=="
	case FatArrow:
		return "=>"
	case LParen:
		return "("
	case RParen:
		return ")"
	case Semicolon:
		return ";"
	case Colon:
		return ":"
	case Percent:
		return "%"
	case PercentEq:
		return "%="
	case LBrace:
		return "{"
	case RBrace:
		return "}"
	case LBracket:
		return "["
	case RBracket:
		return "]"
	case Period:
		return "."
	case PeriodPeriod:
		return ".."
	case Ellipsis:
		return "..."
	case Caret:
		return "^"
	case CaretEq:
		return "^="
	case Plus:
		return "+"
	case PlusPlus:
		return "++"
	case PlusEq:
		return "+="
	case PlusPercent:
		return "+%"
	case PlusPercentEq:
		return "+%="
	case Minus:
		return "-"
	case MinusEq:
		return "-="
	case MinusPercent:
		return "-%"
	case MinusPercentEq:
		return "-%="
	case Arrow:
		return "->"
	case Star:
		return "*"
	case StarEq:
		return "*="
	case StarStar:
		return "**"
	case StarPercent:
		return "*%"
	case StarPercentEq:
		return "*%="
	case Slash:
		return "/"
	case SlashEq:
		return "/="
	case Comma:
		return ","
	case Amp:
		return "&"
	case AmpEq:
		return "&="
	case Question:
		return "?"
	case Lt:
		return "<"
	case LtEq:
		return "<="
	case Shl:
		return "<<"
	case ShlEq:
		return "<<="
	case Gt:
		return ">"
	case GtEq:
		return ">="
	case Shr:
		return ">>"
	case ShrEq:
		return ">>="
	case Tilde:
		return "~"
	default:
		if text, ok := keywordText(k); ok {
			return text
		}
		return "unknown token"
	}
}

// String returns the identifier-style name of the kind for dumps.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

var kindNames = [...]string{
	Invalid:             "Invalid",
	EOF:                 "EOF",
	Ident:               "Ident",
	Builtin:             "Builtin",
	IntLit:              "IntLit",
	FloatLit:            "FloatLit",
	StringLit:           "StringLit",
	MultilineStringLine: "MultilineStringLine",
	CharLit:             "CharLit",
	LineComment:         "LineComment",
	DocComment:          "DocComment",
	Bang:                "Bang",
	BangEq:              "BangEq",
	Pipe:                "Pipe",
	PipePipe:            "PipePipe",
	PipeEq:              "PipeEq",
	Eq:                  "Eq",
	EqEq:                "EqEq",
	FatArrow:            "FatArrow",
	LParen:              "LParen",
	RParen:              "RParen",
	Semicolon:           "Semicolon",
	Colon:               "Colon",
	Percent:             "Percent",
	PercentEq:           "PercentEq",
	LBrace:              "LBrace",
	RBrace:              "RBrace",
	LBracket:            "LBracket",
	RBracket:            "RBracket",
	Period:              "Period",
	PeriodPeriod:        "PeriodPeriod",
	Ellipsis:            "Ellipsis",
	Caret:               "Caret",
	CaretEq:             "CaretEq",
	Plus:                "Plus",
	PlusPlus:            "PlusPlus",
	PlusEq:              "PlusEq",
	PlusPercent:         "PlusPercent",
	PlusPercentEq:       "PlusPercentEq",
	Minus:               "Minus",
	MinusEq:             "MinusEq",
	MinusPercent:        "MinusPercent",
	MinusPercentEq:      "MinusPercentEq",
	Arrow:               "Arrow",
	Star:                "Star",
	StarEq:              "StarEq",
	StarStar:            "StarStar",
	StarPercent:         "StarPercent",
	StarPercentEq:       "StarPercentEq",
	Slash:               "Slash",
	SlashEq:             "SlashEq",
	Comma:               "Comma",
	Amp:                 "Amp",
	AmpEq:               "AmpEq",
	Question:            "Question",
	Lt:                  "Lt",
	LtEq:                "LtEq",
	Shl:                 "Shl",
	ShlEq:               "ShlEq",
	Gt:                  "Gt",
	GtEq:                "GtEq",
	Shr:                 "Shr",
	ShrEq:               "ShrEq",
	Tilde:               "Tilde",
	KwAlign:             "KwAlign",
	KwAllowZero:         "KwAllowZero",
	KwAnd:               "KwAnd",
	KwAsm:               "KwAsm",
	KwAsync:             "KwAsync",
	KwAwait:             "KwAwait",
	KwBreak:             "KwBreak",
	KwCatch:             "KwCatch",
	KwComptime:          "KwComptime",
	KwConst:             "KwConst",
	KwContinue:          "KwContinue",
	KwDefer:             "KwDefer",
	KwElse:              "KwElse",
	KwEnum:              "KwEnum",
	KwErrdefer:          "KwErrdefer",
	KwError:             "KwError",
	KwExport:            "KwExport",
	KwExtern:            "KwExtern",
	KwFalse:             "KwFalse",
	KwFn:                "KwFn",
	KwFor:               "KwFor",
	KwIf:                "KwIf",
	KwInline:            "KwInline",
	KwLinkSection:       "KwLinkSection",
	KwNakedCC:           "KwNakedCC",
	KwNoalias:           "KwNoalias",
	KwNull:              "KwNull",
	KwOr:                "KwOr",
	KwOrElse:            "KwOrElse",
	KwPacked:            "KwPacked",
	KwPub:               "KwPub",
	KwResume:            "KwResume",
	KwReturn:            "KwReturn",
	KwStdcallCC:         "KwStdcallCC",
	KwStruct:            "KwStruct",
	KwSuspend:           "KwSuspend",
	KwSwitch:            "KwSwitch",
	KwTest:              "KwTest",
	KwThreadLocal:       "KwThreadLocal",
	KwTrue:              "KwTrue",
	KwTry:               "KwTry",
	KwUndefined:         "KwUndefined",
	KwUnion:             "KwUnion",
	KwUnreachable:       "KwUnreachable",
	KwUse:               "KwUse",
	KwUsingNamespace:    "KwUsingNamespace",
	KwVar:               "KwVar",
	KwVolatile:          "KwVolatile",
	KwWhile:             "KwWhile",
}
