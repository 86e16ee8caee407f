// Package lexer turns raw source bytes into a stream of tokens. It is
// a pure state machine: no allocation happens inside Next, malformed
// input never aborts the scan, and after the end of input every call
// returns EOF.
package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"zag/internal/token"
)

// Lexer is a pull-based tokenizer over one immutable source buffer.
// The zero value is not usable; call New.
type Lexer struct {
	src   []byte
	limit uint32
	index uint32

	// pending is a one-slot buffer for a synthetic Invalid token that
	// was discovered inside another token (bad byte in a comment or
	// literal). It is returned by the call after the enclosing token,
	// or before the EOF token, so a single bad byte costs exactly one
	// Invalid token and never stops the scan.
	pending *token.Token
}

// New creates a tokenizer over src. The buffer must stay immutable for
// the lexer's lifetime; tokens reference it by byte offsets only.
func New(src []byte) *Lexer {
	limit, err := safecast.Conv[uint32](len(src))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return &Lexer{src: src, limit: limit}
}

// Next scans and returns the next token. After the end of input it
// keeps returning EOF tokens with an empty span.
func (lx *Lexer) Next() token.Token {
	if lx.pending != nil {
		tok := *lx.pending
		lx.pending = nil
		return tok
	}

	st := stateStart
	result := token.Token{Kind: token.EOF, Start: lx.index}
	seenEscapeDigits := 0
	remainingCodeUnits := 0
	finished := false

loop:
	for ; lx.index < lx.limit; lx.index++ {
		c := lx.src[lx.index]
		switch st {
		case stateStart:
			switch {
			case c == ' ' || c == '\n' || c == '\t' || c == '\r':
				result.Start = lx.index + 1
			case c == '"':
				st = stateStringLit
				result.Kind = token.StringLit
			case c == '\'':
				st = stateCharLit
				result.Kind = token.CharLit
			case isIdentStart(c):
				st = stateIdent
				result.Kind = token.Ident
			case c == '@':
				st = stateSawAtSign
			case c == '\\':
				st = stateBackslash
			case c == '0':
				st = stateZero
				result.Kind = token.IntLit
			case isDigit(c):
				st = stateIntDec
				result.Kind = token.IntLit
			case c == '=':
				st = stateEq
			case c == '!':
				st = stateBang
			case c == '|':
				st = statePipe
			case c == '%':
				st = statePercent
			case c == '*':
				st = stateStar
			case c == '/':
				st = stateSlash
			case c == '+':
				st = statePlus
			case c == '-':
				st = stateMinus
			case c == '&':
				st = stateAmp
			case c == '^':
				st = stateCaret
			case c == '<':
				st = stateLt
			case c == '>':
				st = stateGt
			case c == '.':
				st = statePeriod
			case c == '(':
				result.Kind = token.LParen
				lx.index++
				finished = true
				break loop
			case c == ')':
				result.Kind = token.RParen
				lx.index++
				finished = true
				break loop
			case c == '{':
				result.Kind = token.LBrace
				lx.index++
				finished = true
				break loop
			case c == '}':
				result.Kind = token.RBrace
				lx.index++
				finished = true
				break loop
			case c == '[':
				result.Kind = token.LBracket
				lx.index++
				finished = true
				break loop
			case c == ']':
				result.Kind = token.RBracket
				lx.index++
				finished = true
				break loop
			case c == ';':
				result.Kind = token.Semicolon
				lx.index++
				finished = true
				break loop
			case c == ':':
				result.Kind = token.Colon
				lx.index++
				finished = true
				break loop
			case c == ',':
				result.Kind = token.Comma
				lx.index++
				finished = true
				break loop
			case c == '?':
				result.Kind = token.Question
				lx.index++
				finished = true
				break loop
			case c == '~':
				result.Kind = token.Tilde
				lx.index++
				finished = true
				break loop
			default:
				// Unknown byte at the top level. A whole multi-byte
				// UTF-8 sequence becomes one Invalid token.
				result.Kind = token.Invalid
				lx.index += invalidByteLength(lx.src, lx.index, lx.limit)
				finished = true
				break loop
			}

		case stateIdent:
			if !isIdentChar(c) {
				if kw, ok := token.LookupKeyword(string(lx.src[result.Start:lx.index])); ok {
					result.Kind = kw
				}
				finished = true
				break loop
			}

		case stateSawAtSign:
			switch {
			case c == '"':
				// @"..." is an identifier with arbitrary content.
				st = stateStringLit
				result.Kind = token.Ident
			case isIdentStart(c):
				st = stateBuiltin
				result.Kind = token.Builtin
			default:
				result.Kind = token.Invalid
				finished = true
				break loop
			}

		case stateBuiltin:
			if !isIdentChar(c) {
				finished = true
				break loop
			}

		case stateStringLit:
			switch c {
			case '\\':
				st = stateStringBackslash
			case '"':
				lx.index++
				finished = true
				break loop
			case '\n':
				result.Kind = token.Invalid
				finished = true
				break loop
			default:
				lx.checkLiteralCharacter()
			}

		case stateStringBackslash:
			if c == '\n' {
				result.Kind = token.Invalid
				finished = true
				break loop
			}
			st = stateStringLit

		case stateBackslash:
			if c == '\\' {
				st = stateMultilineStringLine
				result.Kind = token.MultilineStringLine
			} else {
				result.Kind = token.Invalid
				finished = true
				break loop
			}

		case stateMultilineStringLine:
			switch c {
			case '\n':
				finished = true
				break loop
			case '\t':
				// tabs stay legal inside multiline strings
			default:
				lx.checkLiteralCharacter()
			}

		case stateCharLit:
			switch {
			case c == '\\':
				st = stateCharBackslash
			case c == '\'' || c < 0x20 || c == 0x7f:
				result.Kind = token.Invalid
				finished = true
				break loop
			case c >= 0xc0 && c <= 0xdf:
				remainingCodeUnits = 1
				st = stateCharUnicode
			case c >= 0xe0 && c <= 0xef:
				remainingCodeUnits = 2
				st = stateCharUnicode
			case c >= 0xf0 && c <= 0xf7:
				remainingCodeUnits = 3
				st = stateCharUnicode
			case c >= 0x80:
				// stray continuation byte
				result.Kind = token.Invalid
				finished = true
				break loop
			default:
				st = stateCharEnd
			}

		case stateCharBackslash:
			switch c {
			case '\n':
				result.Kind = token.Invalid
				finished = true
				break loop
			case 'x':
				st = stateCharHexEscape
				seenEscapeDigits = 0
			case 'u':
				st = stateCharUnicodeSawU
			default:
				st = stateCharEnd
			}

		case stateCharHexEscape:
			if isHexDigit(c) {
				seenEscapeDigits++
				if seenEscapeDigits == 2 {
					st = stateCharEnd
				}
			} else {
				result.Kind = token.Invalid
				finished = true
				break loop
			}

		case stateCharUnicodeSawU:
			if c == '{' {
				st = stateCharUnicodeEscape
			} else {
				result.Kind = token.Invalid
				finished = true
				break loop
			}

		case stateCharUnicodeEscape:
			switch {
			case isHexDigit(c):
			case c == '}':
				st = stateCharEnd
			default:
				result.Kind = token.Invalid
				finished = true
				break loop
			}

		case stateCharUnicode:
			remainingCodeUnits--
			if remainingCodeUnits == 0 {
				st = stateCharEnd
			}

		case stateCharEnd:
			if c == '\'' {
				lx.index++
			} else {
				result.Kind = token.Invalid
			}
			finished = true
			break loop

		case stateZero:
			switch {
			case c == 'b':
				st = stateIntBin
			case c == 'o':
				st = stateIntOct
			case c == 'x':
				st = stateIntHex
			case isDigit(c):
				st = stateIntDec
			case c == '.':
				st = stateNumberDot
			case c == 'e' || c == 'E':
				st = stateFloatExponentUnsigned
				result.Kind = token.FloatLit
			default:
				finished = true
				break loop
			}

		case stateIntDec:
			switch {
			case isDigit(c):
			case c == '.':
				st = stateNumberDot
			case c == 'e' || c == 'E':
				st = stateFloatExponentUnsigned
				result.Kind = token.FloatLit
			default:
				finished = true
				break loop
			}

		case stateIntHex:
			if !isHexDigit(c) {
				finished = true
				break loop
			}

		case stateIntOct, stateIntBin:
			// Shape only: radix-digit consistency is not a lexing
			// concern, so any decimal digit extends the literal.
			if !isDigit(c) {
				finished = true
				break loop
			}

		case stateNumberDot:
			switch {
			case c == '.':
				// "1.." is an integer followed by a range operator.
				lx.index--
				finished = true
				break loop
			case isDigit(c):
				st = stateFloatFraction
				result.Kind = token.FloatLit
			default:
				// "1.foo" is a field access on an integer literal.
				lx.index--
				finished = true
				break loop
			}

		case stateFloatFraction:
			switch {
			case isDigit(c):
			case c == 'e' || c == 'E':
				st = stateFloatExponentUnsigned
			default:
				finished = true
				break loop
			}

		case stateFloatExponentUnsigned:
			switch {
			case c == '+' || c == '-' || isDigit(c):
				st = stateFloatExponentNumber
			default:
				// "1e" then something else: the exponent marker is
				// still part of the literal's shape.
				lx.index--
				finished = true
				break loop
			}

		case stateFloatExponentNumber:
			if !isDigit(c) {
				finished = true
				break loop
			}

		case stateEq:
			switch c {
			case '=':
				result.Kind = token.EqEq
				lx.index++
			case '>':
				result.Kind = token.FatArrow
				lx.index++
			default:
				result.Kind = token.Eq
			}
			finished = true
			break loop

		case stateBang:
			if c == '=' {
				result.Kind = token.BangEq
				lx.index++
			} else {
				result.Kind = token.Bang
			}
			finished = true
			break loop

		case statePipe:
			switch c {
			case '|':
				result.Kind = token.PipePipe
				lx.index++
			case '=':
				result.Kind = token.PipeEq
				lx.index++
			default:
				result.Kind = token.Pipe
			}
			finished = true
			break loop

		case statePercent:
			if c == '=' {
				result.Kind = token.PercentEq
				lx.index++
			} else {
				result.Kind = token.Percent
			}
			finished = true
			break loop

		case stateStar:
			switch c {
			case '=':
				result.Kind = token.StarEq
				lx.index++
				finished = true
				break loop
			case '*':
				result.Kind = token.StarStar
				lx.index++
				finished = true
				break loop
			case '%':
				st = stateStarPercent
			default:
				result.Kind = token.Star
				finished = true
				break loop
			}

		case stateStarPercent:
			if c == '=' {
				result.Kind = token.StarPercentEq
				lx.index++
			} else {
				result.Kind = token.StarPercent
			}
			finished = true
			break loop

		case stateSlash:
			switch c {
			case '/':
				st = stateLineCommentStart
			case '=':
				result.Kind = token.SlashEq
				lx.index++
				finished = true
				break loop
			default:
				result.Kind = token.Slash
				finished = true
				break loop
			}

		case statePlus:
			switch c {
			case '=':
				result.Kind = token.PlusEq
				lx.index++
				finished = true
				break loop
			case '+':
				result.Kind = token.PlusPlus
				lx.index++
				finished = true
				break loop
			case '%':
				st = statePlusPercent
			default:
				result.Kind = token.Plus
				finished = true
				break loop
			}

		case statePlusPercent:
			if c == '=' {
				result.Kind = token.PlusPercentEq
				lx.index++
			} else {
				result.Kind = token.PlusPercent
			}
			finished = true
			break loop

		case stateMinus:
			switch c {
			case '=':
				result.Kind = token.MinusEq
				lx.index++
				finished = true
				break loop
			case '>':
				result.Kind = token.Arrow
				lx.index++
				finished = true
				break loop
			case '%':
				st = stateMinusPercent
			default:
				result.Kind = token.Minus
				finished = true
				break loop
			}

		case stateMinusPercent:
			if c == '=' {
				result.Kind = token.MinusPercentEq
				lx.index++
			} else {
				result.Kind = token.MinusPercent
			}
			finished = true
			break loop

		case stateAmp:
			if c == '=' {
				result.Kind = token.AmpEq
				lx.index++
			} else {
				result.Kind = token.Amp
			}
			finished = true
			break loop

		case stateCaret:
			if c == '=' {
				result.Kind = token.CaretEq
				lx.index++
			} else {
				result.Kind = token.Caret
			}
			finished = true
			break loop

		case stateLt:
			switch c {
			case '=':
				result.Kind = token.LtEq
				lx.index++
				finished = true
				break loop
			case '<':
				st = stateShl
			default:
				result.Kind = token.Lt
				finished = true
				break loop
			}

		case stateShl:
			if c == '=' {
				result.Kind = token.ShlEq
				lx.index++
			} else {
				result.Kind = token.Shl
			}
			finished = true
			break loop

		case stateGt:
			switch c {
			case '=':
				result.Kind = token.GtEq
				lx.index++
				finished = true
				break loop
			case '>':
				st = stateShr
			default:
				result.Kind = token.Gt
				finished = true
				break loop
			}

		case stateShr:
			if c == '=' {
				result.Kind = token.ShrEq
				lx.index++
			} else {
				result.Kind = token.Shr
			}
			finished = true
			break loop

		case statePeriod:
			if c == '.' {
				st = statePeriod2
			} else {
				result.Kind = token.Period
				finished = true
				break loop
			}

		case statePeriod2:
			if c == '.' {
				result.Kind = token.Ellipsis
				lx.index++
			} else {
				result.Kind = token.PeriodPeriod
			}
			finished = true
			break loop

		case stateLineCommentStart:
			switch c {
			case '/':
				st = stateDocCommentStart
			case '\n':
				result.Kind = token.LineComment
				finished = true
				break loop
			default:
				st = stateLineComment
				lx.checkLiteralCharacter()
			}

		case stateDocCommentStart:
			switch c {
			case '/':
				// four slashes and more are a plain comment
				st = stateLineComment
			case '\n':
				result.Kind = token.DocComment
				finished = true
				break loop
			default:
				st = stateDocComment
				lx.checkLiteralCharacter()
			}

		case stateLineComment:
			if c == '\n' {
				result.Kind = token.LineComment
				finished = true
				break loop
			}
			lx.checkLiteralCharacter()

		case stateDocComment:
			if c == '\n' {
				result.Kind = token.DocComment
				finished = true
				break loop
			}
			lx.checkLiteralCharacter()
		}
	}

	if !finished {
		lx.finishAtEOF(st, &result)
	}

	if result.Kind == token.EOF {
		if lx.pending != nil {
			tok := *lx.pending
			lx.pending = nil
			return tok
		}
		result.Start = lx.index
	}

	result.End = lx.index
	return result
}

// finishAtEOF resolves the token kind for states that ran out of input
// before reaching a natural boundary.
func (lx *Lexer) finishAtEOF(st state, result *token.Token) {
	switch st {
	case stateStart:
		// nothing to finish; result stays EOF
	case stateIdent:
		if kw, ok := token.LookupKeyword(string(lx.src[result.Start:lx.index])); ok {
			result.Kind = kw
		}
	case stateBuiltin,
		stateZero, stateIntDec, stateIntHex, stateIntOct, stateIntBin,
		stateFloatFraction, stateFloatExponentNumber,
		stateMultilineStringLine:
		// kind already set, token simply ends at EOF
	case stateNumberDot, stateFloatExponentUnsigned:
		result.Kind = token.FloatLit
	case stateEq:
		result.Kind = token.Eq
	case stateBang:
		result.Kind = token.Bang
	case statePipe:
		result.Kind = token.Pipe
	case statePercent:
		result.Kind = token.Percent
	case stateStar:
		result.Kind = token.Star
	case stateStarPercent:
		result.Kind = token.StarPercent
	case stateSlash:
		result.Kind = token.Slash
	case statePlus:
		result.Kind = token.Plus
	case statePlusPercent:
		result.Kind = token.PlusPercent
	case stateMinus:
		result.Kind = token.Minus
	case stateMinusPercent:
		result.Kind = token.MinusPercent
	case stateAmp:
		result.Kind = token.Amp
	case stateCaret:
		result.Kind = token.Caret
	case stateLt:
		result.Kind = token.Lt
	case stateShl:
		result.Kind = token.Shl
	case stateGt:
		result.Kind = token.Gt
	case stateShr:
		result.Kind = token.Shr
	case statePeriod:
		result.Kind = token.Period
	case statePeriod2:
		result.Kind = token.PeriodPeriod
	case stateLineCommentStart, stateLineComment:
		result.Kind = token.LineComment
	case stateDocCommentStart, stateDocComment:
		result.Kind = token.DocComment
	default:
		// unterminated literal or escape
		result.Kind = token.Invalid
	}
}

// checkLiteralCharacter validates the byte under the cursor inside a
// comment or literal. A disallowed byte is recorded into the one-slot
// pending buffer; scanning of the enclosing token continues.
func (lx *Lexer) checkLiteralCharacter() {
	if lx.pending != nil {
		return
	}
	invalidLen := lx.invalidCharacterLength()
	if invalidLen == 0 {
		return
	}
	lx.pending = &token.Token{
		Kind:  token.Invalid,
		Start: lx.index,
		End:   lx.index + invalidLen,
	}
}

// Tokenize runs a fresh lexer over src and collects the whole token
// sequence, including the trailing EOF token.
func Tokenize(src []byte) []token.Token {
	lx := New(src)
	toks := make([]token.Token, 0, len(src)/8+1)
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			return toks
		}
	}
}
