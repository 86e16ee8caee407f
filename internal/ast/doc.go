// Package ast defines the arena-backed syntax tree produced by the
// parser. A Tree owns the source buffer, the token list and every
// node; nodes refer to tokens and to each other by index, never by
// pointer, so a tree is cheap to copy around and is released as one
// unit.
//
// Node extents are not stored. FirstToken and LastToken recompute
// them on demand from the structure, which keeps nodes small and
// guarantees the extent can never drift out of sync with the
// children.
package ast
