package token

import (
	"zag/internal/source"
)

// Index is the position of a token inside a tree's token list.
type Index uint32

// OptIndex is an optional token position: the index plus one, with the
// zero value meaning "absent". Index 0 is a valid token, so a plain
// Index cannot double as its own sentinel.
type OptIndex uint32

// Some wraps an Index into a present OptIndex.
func Some(i Index) OptIndex {
	return OptIndex(i + 1)
}

// Valid reports whether the optional index holds a token.
func (o OptIndex) Valid() bool {
	return o != 0
}

// Unwrap returns the wrapped Index. Only meaningful when Valid.
func (o OptIndex) Unwrap() Index {
	return Index(o - 1)
}

// Token is a classified half-open byte range [Start, End) into the
// immutable source buffer. Tokens are created by the tokenizer and
// never mutated afterwards.
type Token struct {
	Kind  Kind
	Start uint32
	End   uint32
}

// Span converts the byte range into a source.Span for file.
func (t Token) Span(file source.FileID) source.Span {
	return source.Span{File: file, Start: t.Start, End: t.End}
}

// Text slices the token's bytes out of src.
func (t Token) Text(src []byte) string {
	return string(src[t.Start:t.End])
}

// IsLiteral reports whether the token is a literal of any sort.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, MultilineStringLine, CharLit,
		KwTrue, KwFalse, KwNull, KwUndefined:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	_, ok := keywordText(t.Kind)
	return ok
}

// IsComment reports whether the token is a line or doc comment.
func (t Token) IsComment() bool {
	return t.Kind == LineComment || t.Kind == DocComment
}
