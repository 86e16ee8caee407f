package fuzztests

import (
	"testing"

	"zag/internal/lexer"
	"zag/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		if len(input) > maxFuzzInput {
			input = append([]byte(nil), input[:maxFuzzInput]...)
		} else {
			input = append([]byte(nil), input...)
		}

		tokens := lexer.Tokenize(input)
		if err := testkit.CheckTokenInvariants(tokens, input); err != nil {
			t.Fatalf("token invariants violated: %v", err)
		}
	})
}
