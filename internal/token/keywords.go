package token

var keywords = map[string]Kind{
	"align":          KwAlign,
	"allowzero":      KwAllowZero,
	"and":            KwAnd,
	"asm":            KwAsm,
	"async":          KwAsync,
	"await":          KwAwait,
	"break":          KwBreak,
	"catch":          KwCatch,
	"comptime":       KwComptime,
	"const":          KwConst,
	"continue":       KwContinue,
	"defer":          KwDefer,
	"else":           KwElse,
	"enum":           KwEnum,
	"errdefer":       KwErrdefer,
	"error":          KwError,
	"export":         KwExport,
	"extern":         KwExtern,
	"false":          KwFalse,
	"fn":             KwFn,
	"for":            KwFor,
	"if":             KwIf,
	"inline":         KwInline,
	"linksection":    KwLinkSection,
	"nakedcc":        KwNakedCC,
	"noalias":        KwNoalias,
	"null":           KwNull,
	"or":             KwOr,
	"orelse":         KwOrElse,
	"packed":         KwPacked,
	"pub":            KwPub,
	"resume":         KwResume,
	"return":         KwReturn,
	"stdcallcc":      KwStdcallCC,
	"struct":         KwStruct,
	"suspend":        KwSuspend,
	"switch":         KwSwitch,
	"test":           KwTest,
	"threadlocal":    KwThreadLocal,
	"true":           KwTrue,
	"try":            KwTry,
	"undefined":      KwUndefined,
	"union":          KwUnion,
	"unreachable":    KwUnreachable,
	"use":            KwUse,
	"usingnamespace": KwUsingNamespace,
	"var":            KwVar,
	"volatile":       KwVolatile,
	"while":          KwWhile,
}

// keywordTexts is the reverse of keywords, built once for Symbol().
var keywordTexts = func() map[Kind]string {
	m := make(map[Kind]string, len(keywords))
	for text, kind := range keywords {
		m[kind] = text
	}
	return m
}()

// LookupKeyword reports whether ident is a keyword and which one.
// Keywords are case-sensitive; only the lowercase spelling matches.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

func keywordText(k Kind) (string, bool) {
	text, ok := keywordTexts[k]
	return text, ok
}
