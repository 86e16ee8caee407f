package parser

import (
	"testing"

	"zag/internal/lexer"
	"zag/internal/token"
)

func TestStreamSkipsLineComments(t *testing.T) {
	tokens := lexer.Tokenize([]byte("a // note\nb"))
	s := NewStream(tokens)
	var kinds []token.Kind
	for {
		i := s.Next()
		kinds = append(kinds, tokens[i].Kind)
		if tokens[i].Kind == token.EOF {
			break
		}
	}
	want := []token.Kind{token.Ident, token.Ident, token.EOF}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("token %d = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestStreamPutBack(t *testing.T) {
	tokens := lexer.Tokenize([]byte("a b c"))
	s := NewStream(tokens)
	s.Next()
	second := s.Next()
	s.PutBack(second)
	if got := s.Next(); got != second {
		t.Errorf("after PutBack, Next = %d, want %d", got, second)
	}
}

func TestStreamStickyEOF(t *testing.T) {
	tokens := lexer.Tokenize(nil)
	s := NewStream(tokens)
	eof := s.Next()
	if tokens[eof].Kind != token.EOF {
		t.Fatalf("first token kind = %s, want EOF", tokens[eof].Kind)
	}
	if again := s.Next(); again != eof {
		t.Errorf("Next after EOF = %d, want %d", again, eof)
	}
}

func TestStreamPrevSkipsLineComments(t *testing.T) {
	tokens := lexer.Tokenize([]byte("a // trailing\nb"))
	s := NewStream(tokens)
	s.Next()
	s.Next()
	prev := s.Prev()
	if tokens[prev].Kind != token.Ident {
		t.Errorf("Prev kind = %s, want Ident", tokens[prev].Kind)
	}
}
