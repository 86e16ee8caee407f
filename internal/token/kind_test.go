package token_test

import (
	"testing"

	"zag/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.IntLit, token.FloatLit, token.StringLit,
		token.MultilineStringLine, token.CharLit,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwUndefined,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwConst, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestSymbolPunctuation(t *testing.T) {
	cases := map[token.Kind]string{
		token.Plus:          "+",
		token.PlusPercentEq: "+%=",
		token.ShlEq:         "<<=",
		token.Ellipsis:      "...",
		token.FatArrow:      "=>",
		token.KwOrElse:      "orelse",
		token.KwConst:       "const",
		token.Ident:         "an identifier",
		token.StringLit:     "a string literal",
		token.Invalid:       "invalid bytes",
	}
	for k, want := range cases {
		if got := k.Symbol(); got != want {
			t.Errorf("%v.Symbol() = %q, expected %q", k, got, want)
		}
	}
}

func TestStringNamesAreUnique(t *testing.T) {
	seen := map[string]token.Kind{}
	for k := token.Invalid; k <= token.KwWhile; k++ {
		name := k.String()
		if name == "Kind(?)" {
			t.Fatalf("kind %d has no name", k)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("kinds %v and %v share name %q", prev, k, name)
		}
		seen[name] = k
	}
}

func TestOptIndex(t *testing.T) {
	var none token.OptIndex
	if none.Valid() {
		t.Fatal("zero OptIndex must be absent")
	}
	some := token.Some(0)
	if !some.Valid() {
		t.Fatal("Some(0) must be present")
	}
	if some.Unwrap() != 0 {
		t.Fatalf("Some(0).Unwrap() = %d, expected 0", some.Unwrap())
	}
}
