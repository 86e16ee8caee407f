// Package token defines the lexical token model for the zag front-end.
// Invariants:
//   - A Token is a half-open byte range [Start, End) into the source
//     buffer; the buffer itself is never copied into tokens.
//   - The tokenizer produces tokens in strictly increasing Start order
//     and covers every significant byte of the input exactly once
//     (whitespace is skipped, never emitted).
//   - Keywords get dedicated kinds via an exact table lookup after a
//     maximal identifier run; everything else stays Ident.
//   - Line comments are ordinary tokens here; the parser's stream skips
//     them. Doc comments are distinct and consumed by grammar rules.
package token
