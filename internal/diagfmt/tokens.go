package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"zag/internal/source"
	"zag/internal/token"
)

// textualKinds are the kinds whose surface text varies, so the dump
// shows it. Punctuation and keywords are implied by the kind name.
var textualKinds = map[token.Kind]bool{
	token.Invalid:             true,
	token.Ident:               true,
	token.Builtin:             true,
	token.IntLit:              true,
	token.FloatLit:            true,
	token.StringLit:           true,
	token.MultilineStringLine: true,
	token.CharLit:             true,
	token.LineComment:         true,
	token.DocComment:          true,
}

const maxDumpTextLen = 40

func dumpText(src []byte, tok token.Token) (string, bool) {
	if !textualKinds[tok.Kind] {
		return "", false
	}
	text := tok.Text(src)
	if len(text) > maxDumpTextLen {
		text = text[:maxDumpTextLen] + "..."
	}
	return text, true
}

// TokensPretty writes one line per token: index, kind, optional text
// and resolved positions.
func TokensPretty(w io.Writer, fs *source.FileSet, file source.FileID, tokens []token.Token) error {
	src := fs.Get(file).Content
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span(file))
		if _, err := fmt.Fprintf(w, "%4d: %-20s", i, tok.Kind.String()); err != nil {
			return err
		}
		if text, ok := dumpText(src, tok); ok {
			if _, err := fmt.Fprintf(w, " %q", text); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d\n",
			start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}
	return nil
}

// TokenJSON is one token in the JSON dump.
type TokenJSON struct {
	Kind      string `json:"kind"`
	Text      string `json:"text,omitempty"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	Line      uint32 `json:"line"`
	Col       uint32 `json:"col"`
}

// TokensJSON writes the token list as an indented JSON array.
func TokensJSON(w io.Writer, fs *source.FileSet, file source.FileID, tokens []token.Token) error {
	src := fs.Get(file).Content
	out := make([]TokenJSON, 0, len(tokens))
	for _, tok := range tokens {
		start, _ := fs.Resolve(tok.Span(file))
		entry := TokenJSON{
			Kind:      tok.Kind.String(),
			StartByte: tok.Start,
			EndByte:   tok.End,
			Line:      start.Line,
			Col:       start.Col,
		}
		if text, ok := dumpText(src, tok); ok {
			entry.Text = text
		}
		out = append(out, entry)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
