package lexer

import (
	"testing"

	"zag/internal/token"
)

// checkKinds tokenizes src and compares the kind sequence, implicitly
// requiring a trailing EOF.
func checkKinds(t *testing.T, src string, want ...token.Kind) []token.Token {
	t.Helper()
	toks := Tokenize([]byte(src))
	if toks[len(toks)-1].Kind != token.EOF {
		t.Fatalf("%q: token stream does not end in EOF", src)
	}
	got := toks[:len(toks)-1]
	if len(got) != len(want) {
		kinds := make([]token.Kind, len(got))
		for i, tok := range got {
			kinds[i] = tok.Kind
		}
		t.Fatalf("%q: expected %d tokens %v, got %d: %v", src, len(want), want, len(got), kinds)
	}
	for i, tok := range got {
		if tok.Kind != want[i] {
			t.Errorf("%q: token %d is %v, expected %v", src, i, tok.Kind, want[i])
		}
	}
	return toks
}

func TestKeywordsAndIdents(t *testing.T) {
	checkKinds(t, "const x = undefined;",
		token.KwConst, token.Ident, token.Eq, token.KwUndefined, token.Semicolon)
	checkKinds(t, "constx", token.Ident)
	checkKinds(t, "orelse orelsex", token.KwOrElse, token.Ident)
	checkKinds(t, "const", token.KwConst)
}

func TestOperatorChains(t *testing.T) {
	cases := []struct {
		src  string
		want []token.Kind
	}{
		{"<<=", []token.Kind{token.ShlEq}},
		{"<<", []token.Kind{token.Shl}},
		{"< <", []token.Kind{token.Lt, token.Lt}},
		{">>=", []token.Kind{token.ShrEq}},
		{"+%=", []token.Kind{token.PlusPercentEq}},
		{"+%", []token.Kind{token.PlusPercent}},
		{"++", []token.Kind{token.PlusPlus}},
		{"-%=", []token.Kind{token.MinusPercentEq}},
		{"*%", []token.Kind{token.StarPercent}},
		{"**", []token.Kind{token.StarStar}},
		{"->", []token.Kind{token.Arrow}},
		{"=>", []token.Kind{token.FatArrow}},
		{"...", []token.Kind{token.Ellipsis}},
		{"..", []token.Kind{token.PeriodPeriod}},
		{".", []token.Kind{token.Period}},
		{"!=", []token.Kind{token.BangEq}},
		{"||", []token.Kind{token.PipePipe}},
		{"==", []token.Kind{token.EqEq}},
		{"^=", []token.Kind{token.CaretEq}},
		{"&=", []token.Kind{token.AmpEq}},
		{"~", []token.Kind{token.Tilde}},
	}
	for _, tc := range cases {
		checkKinds(t, tc.src, tc.want...)
	}
}

func TestNumberLiterals(t *testing.T) {
	// "1.3" must be a single float token spanning the whole string
	toks := checkKinds(t, "1.3", token.FloatLit)
	if toks[0].Start != 0 || toks[0].End != 3 {
		t.Errorf("1.3 spans [%d,%d), expected [0,3)", toks[0].Start, toks[0].End)
	}

	checkKinds(t, "0", token.IntLit)
	checkKinds(t, "123", token.IntLit)
	checkKinds(t, "0x1fF", token.IntLit)
	checkKinds(t, "0o777", token.IntLit)
	checkKinds(t, "0b101", token.IntLit)
	checkKinds(t, "1e5", token.FloatLit)
	checkKinds(t, "1.5e-3", token.FloatLit)
	checkKinds(t, "0.0", token.FloatLit)

	// shape only: radix mismatches are a later stage's concern
	checkKinds(t, "0b2", token.IntLit)

	// a dot that does not start a fraction ends the integer
	checkKinds(t, "1..2", token.IntLit, token.PeriodPeriod, token.IntLit)
	checkKinds(t, "1.min", token.IntLit, token.Period, token.Ident)
}

func TestCharLiterals(t *testing.T) {
	toks := checkKinds(t, `'\x1b'`, token.CharLit)
	if toks[0].Start != 0 || toks[0].End != 6 {
		t.Errorf(`'\x1b' spans [%d,%d), expected [0,6)`, toks[0].Start, toks[0].End)
	}

	checkKinds(t, "'a'", token.CharLit)
	checkKinds(t, `'\n'`, token.CharLit)
	checkKinds(t, `'\''`, token.CharLit)
	checkKinds(t, "'ä'", token.CharLit)
	checkKinds(t, `'\u{1f4a9}'`, token.CharLit)

	// short hex escape must not lex as a char literal
	toks = Tokenize([]byte(`'\x1'`))
	for _, tok := range toks[:len(toks)-1] {
		if tok.Kind != token.Invalid {
			t.Fatalf(`'\x1' produced %v, expected only Invalid tokens`, tok.Kind)
		}
	}
	if len(toks) < 2 {
		t.Fatal(`'\x1' produced no tokens before EOF`)
	}
}

func TestStringLiterals(t *testing.T) {
	checkKinds(t, `"hello"`, token.StringLit)
	checkKinds(t, `"es\"caped"`, token.StringLit)
	checkKinds(t, `@"weird name"`, token.Ident)
	checkKinds(t, "@import", token.Builtin)

	// a raw newline terminates the string as invalid
	checkKinds(t, "\"abc\ndef\"", token.Invalid, token.Ident, token.Invalid)
}

func TestMultilineStrings(t *testing.T) {
	toks := checkKinds(t, "\\\\first line\n\\\\second\n",
		token.MultilineStringLine, token.MultilineStringLine)
	if toks[0].Text([]byte("\\\\first line\n\\\\second\n")) != "\\\\first line" {
		t.Errorf("unexpected first line text %q", toks[0].Text([]byte("\\\\first line\n\\\\second\n")))
	}
	checkKinds(t, "\\\\no newline at eof", token.MultilineStringLine)
	checkKinds(t, "\\x", token.Invalid, token.Ident)
}

func TestComments(t *testing.T) {
	checkKinds(t, "// plain\n", token.LineComment)
	checkKinds(t, "/// doc\n", token.DocComment)
	checkKinds(t, "//// four slashes\n", token.LineComment)
	checkKinds(t, "//\n", token.LineComment)
	checkKinds(t, "///\n", token.DocComment)
	checkKinds(t, "// eof comment", token.LineComment)
	checkKinds(t, "/// doc\nconst", token.DocComment, token.KwConst)
}

func TestPendingInvalidInsideComment(t *testing.T) {
	// the control byte becomes one Invalid token, delivered by the
	// call after the comment token, and scanning continues
	src := []byte("//a\x01b\nconst")
	toks := Tokenize(src)
	want := []token.Kind{token.LineComment, token.Invalid, token.KwConst, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i := range want {
		if toks[i].Kind != want[i] {
			t.Fatalf("token %d is %v, expected %v", i, toks[i].Kind, want[i])
		}
	}
	inv := toks[1]
	if inv.Start != 3 || inv.End != 4 {
		t.Errorf("invalid token spans [%d,%d), expected [3,4)", inv.Start, inv.End)
	}
}

func TestPendingInvalidBeforeEOF(t *testing.T) {
	toks := Tokenize([]byte("//bad\x7f"))
	want := []token.Kind{token.LineComment, token.Invalid, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("expected %v, got %v", want, toks)
	}
	for i := range want {
		if toks[i].Kind != want[i] {
			t.Fatalf("token %d is %v, expected %v", i, toks[i].Kind, want[i])
		}
	}
}

func TestUnicodeLineSeparatorsRejected(t *testing.T) {
	// U+2028 inside a comment is a pending Invalid of 3 bytes
	src := []byte("//a b\n")
	toks := Tokenize(src)
	if toks[0].Kind != token.LineComment || toks[1].Kind != token.Invalid {
		t.Fatalf("expected LineComment then Invalid, got %v %v", toks[0].Kind, toks[1].Kind)
	}
	if toks[1].End-toks[1].Start != 3 {
		t.Errorf("U+2028 invalid span is %d bytes, expected 3", toks[1].End-toks[1].Start)
	}

	// but an ordinary non-ASCII rune in a comment is fine
	checkKinds(t, "// héllo\n", token.LineComment)
}

func TestInvalidTopLevelBytes(t *testing.T) {
	checkKinds(t, "\x00", token.Invalid)
	checkKinds(t, "\xc3(", token.Invalid, token.LParen) // truncated UTF-8
	checkKinds(t, "α", token.Invalid)                   // non-ASCII outside literals
	checkKinds(t, "#", token.Invalid)
}

func TestEOFIsSticky(t *testing.T) {
	lx := New([]byte("x"))
	if got := lx.Next(); got.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", got.Kind)
	}
	for i := 0; i < 3; i++ {
		got := lx.Next()
		if got.Kind != token.EOF {
			t.Fatalf("call %d after end: expected EOF, got %v", i, got.Kind)
		}
		if got.Start != got.End {
			t.Fatalf("EOF token must have an empty span, got [%d,%d)", got.Start, got.End)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	toks := Tokenize(nil)
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("empty input: expected a lone EOF, got %v", toks)
	}
}

// TestSpanCoverage checks the reconstruction property: concatenating
// token spans in order, plus skipped whitespace, reproduces the exact
// input byte range with no gaps and no overlaps.
func TestSpanCoverage(t *testing.T) {
	srcs := []string{
		"const std = @import(\"std\");\n",
		"fn add(a: i32, b: i32) i32 { return a + b; }\n",
		"test \"t\" {\n    var x: u8 = 'q';\n}\n",
		"// comment\n/// doc\npub fn f() void {}\n",
		"\\\\line one\n\\\\line two\n",
	}
	isSpace := func(b byte) bool {
		return b == ' ' || b == '\n' || b == '\t' || b == '\r'
	}
	for _, src := range srcs {
		toks := Tokenize([]byte(src))
		var pos uint32
		for _, tok := range toks {
			for pos < tok.Start {
				if !isSpace(src[pos]) {
					t.Fatalf("%q: byte %d not covered by any token", src, pos)
				}
				pos++
			}
			if tok.Start < pos {
				t.Fatalf("%q: token %v [%d,%d) overlaps previous coverage at %d",
					src, tok.Kind, tok.Start, tok.End, pos)
			}
			pos = tok.End
		}
		if pos != uint32(len(src)) {
			t.Fatalf("%q: coverage stops at %d of %d", src, pos, len(src))
		}
	}
}

// TestTerminationOnArbitraryBytes feeds hostile inputs and requires a
// finite, EOF-terminated stream.
func TestTerminationOnArbitraryBytes(t *testing.T) {
	srcs := [][]byte{
		{0xff, 0xfe, 0xfd},
		[]byte("'"),
		[]byte("'\\"),
		[]byte("\"unterminated"),
		[]byte("\\"),
		[]byte("@"),
		[]byte("0x"),
		[]byte("1e"),
		[]byte("1."),
		[]byte("'\\u{"),
		{0xe2, 0x80}, // truncated U+2028
	}
	for _, src := range srcs {
		toks := Tokenize(src)
		if len(toks) > len(src)+2 {
			t.Errorf("%q: %d tokens for %d bytes, lexer not making progress",
				src, len(toks), len(src))
		}
		if toks[len(toks)-1].Kind != token.EOF {
			t.Errorf("%q: stream does not end in EOF", src)
		}
	}
}
