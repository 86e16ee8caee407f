package lexer

// state is one position in the tokenizer's state machine. Every call
// to Next starts in stateStart and runs until a token is finished.
type state uint8

const (
	stateStart state = iota
	stateIdent
	stateBuiltin
	stateSawAtSign

	stateStringLit
	stateStringBackslash
	stateMultilineStringLine
	stateBackslash

	stateCharLit
	stateCharBackslash
	stateCharHexEscape
	stateCharUnicodeSawU
	stateCharUnicodeEscape
	stateCharUnicode
	stateCharEnd

	stateZero
	stateIntDec
	stateIntHex
	stateIntOct
	stateIntBin
	stateNumberDot
	stateFloatFraction
	stateFloatExponentUnsigned
	stateFloatExponentNumber

	stateEq
	stateBang
	statePipe
	statePercent
	stateStar
	stateStarPercent
	stateSlash
	statePlus
	statePlusPercent
	stateMinus
	stateMinusPercent
	stateAmp
	stateCaret
	stateLt
	stateShl
	stateGt
	stateShr
	statePeriod
	statePeriod2

	stateLineCommentStart
	stateLineComment
	stateDocCommentStart
	stateDocComment
)
