package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"zag/internal/ast"
	"zag/internal/source"
)

// tokenPayloadKinds mirrors the node kinds whose payload is a single
// token, so the dump can show the underlying source text.
var tokenPayloadKinds = map[ast.NodeKind]bool{
	ast.NodeIdentifier:   true,
	ast.NodeIntLit:       true,
	ast.NodeFloatLit:     true,
	ast.NodeStringLit:    true,
	ast.NodeCharLit:      true,
	ast.NodeBoolLit:      true,
	ast.NodeNullLit:      true,
	ast.NodeUndefinedLit: true,
	ast.NodeErrorType:    true,
	ast.NodeVarType:      true,
	ast.NodeUnreachable:  true,
	ast.NodeSwitchElse:   true,
}

func nodeText(tree *ast.Tree, id ast.NodeID) (string, bool) {
	if !tokenPayloadKinds[tree.Kind(id)] {
		return "", false
	}
	return tree.TokenText(tree.TokenOf(id)), true
}

// TreePretty writes an indented dump of the syntax tree rooted at
// tree.Root. Each line shows the node kind, its resolved span and,
// for token-payload nodes, the source text.
func TreePretty(w io.Writer, tree *ast.Tree, fs *source.FileSet, file source.FileID) error {
	return treePrettyNode(w, tree, fs, file, tree.Root, 0)
}

func treePrettyNode(w io.Writer, tree *ast.Tree, fs *source.FileSet, file source.FileID, id ast.NodeID, depth int) error {
	if id == ast.NoNode {
		return nil
	}
	span := tree.Span(id, file)
	start, end := fs.Resolve(span)
	line := fmt.Sprintf("%s%s %d:%d-%d:%d",
		strings.Repeat("  ", depth), tree.Kind(id),
		start.Line, start.Col, end.Line, end.Col)
	if text, ok := nodeText(tree, id); ok {
		line += fmt.Sprintf(" %q", dumpTrim(text))
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	for _, child := range tree.Children(id, nil) {
		if err := treePrettyNode(w, tree, fs, file, child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func dumpTrim(text string) string {
	if len(text) > maxDumpTextLen {
		return text[:maxDumpTextLen] + "..."
	}
	return text
}

// NodeJSON is one syntax tree node in the JSON dump.
type NodeJSON struct {
	Kind      string     `json:"kind"`
	StartByte uint32     `json:"start_byte"`
	EndByte   uint32     `json:"end_byte"`
	StartLine uint32     `json:"start_line"`
	StartCol  uint32     `json:"start_col"`
	EndLine   uint32     `json:"end_line"`
	EndCol    uint32     `json:"end_col"`
	Text      string     `json:"text,omitempty"`
	Children  []NodeJSON `json:"children,omitempty"`
}

// BuildTreeJSON converts the tree into its JSON dump form.
func BuildTreeJSON(tree *ast.Tree, fs *source.FileSet, file source.FileID) NodeJSON {
	return buildNodeJSON(tree, fs, file, tree.Root)
}

func buildNodeJSON(tree *ast.Tree, fs *source.FileSet, file source.FileID, id ast.NodeID) NodeJSON {
	span := tree.Span(id, file)
	start, end := fs.Resolve(span)
	out := NodeJSON{
		Kind:      tree.Kind(id).String(),
		StartByte: span.Start,
		EndByte:   span.End,
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
	if text, ok := nodeText(tree, id); ok {
		out.Text = text
	}
	for _, child := range tree.Children(id, nil) {
		if child == ast.NoNode {
			continue
		}
		out.Children = append(out.Children, buildNodeJSON(tree, fs, file, child))
	}
	return out
}

// TreeJSON writes the tree dump as indented JSON.
func TreeJSON(w io.Writer, tree *ast.Tree, fs *source.FileSet, file source.FileID) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(BuildTreeJSON(tree, fs, file))
}
