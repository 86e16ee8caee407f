package diag

import (
	"zag/internal/source"
)

// Note attaches secondary context to a diagnostic, e.g. the opening
// brace a missing '}' refers back to.
type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}
