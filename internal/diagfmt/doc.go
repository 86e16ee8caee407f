// Package diagfmt renders diagnostics, token streams and syntax trees
// for the command line, in both human-readable and JSON forms.
//
// The human-readable diagnostic format is one header line per
// diagnostic followed by the offending source line and a caret
// underline. Severity coloring is optional and off by default so the
// output stays stable when piped.
package diagfmt
