// Package fuzztests houses Go fuzz harnesses that exercise the
// source -> lexer -> parser pipeline on arbitrary inputs. The goal is
// to smoke test robustness: no panics, no hangs, and the structural
// invariants of the token stream and syntax tree hold for any input.
package fuzztests
