package lexer

import (
	"unicode/utf8"
)

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || isDigit(b)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// invalidByteLength reports how many bytes the unclassifiable sequence
// at index occupies, so one bad UTF-8 rune yields one Invalid token.
func invalidByteLength(src []byte, index, limit uint32) uint32 {
	c := src[index]
	if c < 0x80 {
		return 1
	}
	_, size := utf8.DecodeRune(src[index:limit])
	if size <= 0 {
		return 1
	}
	return uint32(size)
}

// invalidCharacterLength decides whether the byte under the cursor is
// allowed inside comments and literals. It returns the length of the
// offending sequence, or 0 if the character is fine. For a valid
// multi-byte rune it advances the cursor past the continuation bytes
// so they are not re-checked byte by byte.
func (lx *Lexer) invalidCharacterLength() uint32 {
	c0 := lx.src[lx.index]
	if c0 < 0x80 {
		// \n never reaches here; \t is tolerated in comments and
		// multiline strings, everything else below 0x20 plus DEL is
		// a disallowed control byte.
		if (c0 < 0x20 && c0 != '\t') || c0 == 0x7f {
			return 1
		}
		return 0
	}

	r, size := utf8.DecodeRune(lx.src[lx.index:lx.limit])
	if r == utf8.RuneError && size <= 1 {
		// truncated or malformed sequence: flag exactly one byte and
		// keep scanning, guaranteeing forward progress
		return 1
	}
	switch r {
	case 0x0085, 0x2028, 0x2029:
		// NEL, LINE SEPARATOR, PARAGRAPH SEPARATOR — the Unicode
		// line breaks the language refuses inside literals
		return uint32(size)
	}
	lx.index += uint32(size - 1)
	return 0
}
