package parser

import (
	"zag/internal/token"
)

// Stream is a cursor over a token list. Line comments are transparent:
// every consuming or peeking operation skips them, while doc comments
// pass through so grammar rules can collect them explicitly.
type Stream struct {
	tokens []token.Token
	index  uint32
}

// NewStream positions a cursor at the start of tokens. The list must
// be terminated by an EOF token.
func NewStream(tokens []token.Token) *Stream {
	return &Stream{tokens: tokens}
}

// PeekIndex returns the index of the next significant token without
// consuming it.
func (s *Stream) PeekIndex() token.Index {
	i := s.index
	for s.tokens[i].Kind == token.LineComment {
		i++
	}
	return token.Index(i)
}

// Peek returns the next significant token without consuming it.
func (s *Stream) Peek() token.Token {
	return s.tokens[s.PeekIndex()]
}

// Next consumes and returns the index of the next significant token.
// At EOF the cursor stays put, so further calls keep returning the
// EOF index.
func (s *Stream) Next() token.Index {
	i := s.PeekIndex()
	if s.tokens[i].Kind != token.EOF {
		s.index = uint32(i) + 1
	} else {
		s.index = uint32(i)
	}
	return i
}

// Prev returns the index of the most recently consumed significant
// token, or 0 when nothing has been consumed yet.
func (s *Stream) Prev() token.Index {
	i := s.index
	for i > 0 {
		i--
		if s.tokens[i].Kind != token.LineComment {
			return token.Index(i)
		}
	}
	return 0
}

// PutBack rewinds the cursor so that the token at i is the next one
// returned. Line comments between i and the old position need no
// special handling; they are skipped again on the way forward.
func (s *Stream) PutBack(i token.Index) {
	s.index = uint32(i)
}
