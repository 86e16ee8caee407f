package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"zag/internal/diag"
	"zag/internal/source"
)

var severityColors = map[diag.Severity]*color.Color{
	diag.SevInfo:    color.New(color.FgCyan),
	diag.SevWarning: color.New(color.FgYellow),
	diag.SevError:   color.New(color.FgRed, color.Bold),
}

// Pretty renders every diagnostic in the bag as
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//	    <source line>
//	    <caret underline>
//
// Call bag.Sort() first for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	if err := prettyHeader(w, d.Severity, d.Code, d.Message, d.Primary, fs, opts); err != nil {
		return err
	}
	if err := prettyContext(w, d.Primary, fs); err != nil {
		return err
	}
	if !opts.ShowNotes {
		return nil
	}
	for _, n := range d.Notes {
		if err := prettyHeader(w, diag.SevInfo, diag.UnknownCode, "note: "+n.Msg, n.Span, fs, opts); err != nil {
			return err
		}
		if err := prettyContext(w, n.Span, fs); err != nil {
			return err
		}
	}
	return nil
}

func prettyHeader(w io.Writer, sev diag.Severity, code diag.Code, msg string, span source.Span, fs *source.FileSet, opts PrettyOpts) error {
	sevText := sev.String()
	if opts.Color {
		sevText = severityColors[sev].Sprint(sevText)
	}
	f := fs.Get(span.File)
	if f == nil {
		// IO diagnostics carry no span; the path is in the message.
		_, err := fmt.Fprintf(w, "%s [%s]: %s\n", sevText, code.ID(), msg)
		return err
	}
	start, _ := fs.Resolve(span)
	if code == diag.UnknownCode {
		_, err := fmt.Fprintf(w, "%s:%d:%d: %s\n", f.Path, start.Line, start.Col, msg)
		return err
	}
	_, err := fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n", f.Path, start.Line, start.Col, sevText, code.ID(), msg)
	return err
}

// prettyContext prints the first line the span touches with a
// ^~~~ underline. Widths are measured with runewidth so the carets
// stay aligned under CJK and other wide runes.
func prettyContext(w io.Writer, span source.Span, fs *source.FileSet) error {
	f := fs.Get(span.File)
	if f == nil {
		return nil
	}
	start, end := fs.Resolve(span)
	line := f.GetLine(start.Line)
	if line == "" && span.Start >= uint32(len(f.Content)) {
		// EOF span; nothing to underline
		return nil
	}
	line = strings.ReplaceAll(line, "\t", " ")
	if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
		return err
	}

	startCol := int(start.Col) - 1
	if startCol > len(line) {
		startCol = len(line)
	}
	endCol := len(line)
	if end.Line == start.Line && int(end.Col)-1 < endCol {
		endCol = int(end.Col) - 1
	}
	if endCol < startCol {
		endCol = startCol
	}

	pad := runewidth.StringWidth(line[:startCol])
	width := runewidth.StringWidth(line[startCol:endCol])
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	_, err := fmt.Fprintf(w, "    %s%s\n", strings.Repeat(" ", pad), underline)
	return err
}
