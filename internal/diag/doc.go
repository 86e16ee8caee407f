// Package diag defines the diagnostic model shared by the lexer,
// parser and driver layers.
//
// Diagnostic is the central record: a Severity, a stable numeric Code,
// a message, the primary source.Span and optional Notes. Producers
// emit through a Reporter so storage stays decoupled; BagReporter
// collects into a Bag, which supports sorting, deduplication and a
// hard cap on the number of retained entries.
//
// The parser does not use this package directly. It records structural
// errors on the tree it builds; FromTree converts those records into
// diagnostics once a file identity is known.
//
// Rendering lives in internal/diagfmt. Keep the data here
// deterministic and side-effect free so check results can be cached
// and replayed.
package diag
