package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"zag/internal/diag"
	"zag/internal/lexer"
	"zag/internal/parser"
	"zag/internal/source"
)

func checkSource(t *testing.T, name, src string) (*source.FileSet, source.FileID, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.AddVirtual(name, []byte(src))
	tree := parser.Parse([]byte(src))
	bag := diag.CollectTree(tree, file, 64)
	return fs, file, bag
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	fs, _, bag := checkSource(t, "broken.zag", "const x = ;\n")
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", bag.Len())
	}

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Color: false, ShowNotes: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "broken.zag:1:11: ERROR [SYN2003]:") {
		t.Errorf("missing header, got:\n%s", out)
	}
	if !strings.Contains(out, "const x = ;") {
		t.Errorf("missing context line, got:\n%s", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("missing caret, got:\n%s", out)
	}
}

func TestPrettyCleanSource(t *testing.T) {
	fs, _, bag := checkSource(t, "ok.zag", "const x = 5;\n")
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d", bag.Len())
	}
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestJSONShape(t *testing.T) {
	fs, _, bag := checkSource(t, "broken.zag", "const x = ;\n")

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("expected 1 diagnostic, got count=%d len=%d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Code != "SYN2003" {
		t.Errorf("code = %q, want SYN2003", d.Code)
	}
	if d.Severity != "ERROR" {
		t.Errorf("severity = %q, want ERROR", d.Severity)
	}
	if d.Location.File != "broken.zag" {
		t.Errorf("file = %q, want broken.zag", d.Location.File)
	}
	if d.Location.StartLine != 1 || d.Location.StartCol != 11 {
		t.Errorf("position = %d:%d, want 1:11", d.Location.StartLine, d.Location.StartCol)
	}
}

func TestJSONMaxLimit(t *testing.T) {
	fs, _, bag := checkSource(t, "broken.zag", "const a = ;\nconst b = ;\nconst c = ;\n")
	if bag.Len() < 2 {
		t.Fatalf("expected several diagnostics, got %d", bag.Len())
	}

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{Max: 1}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(out.Diagnostics) != 1 {
		t.Errorf("expected 1 diagnostic after limit, got %d", len(out.Diagnostics))
	}
	if out.Count != bag.Len() {
		t.Errorf("count = %d, want total %d", out.Count, bag.Len())
	}
}

func TestTokensPretty(t *testing.T) {
	src := "const x = 5;\n"
	fs := source.NewFileSet()
	file := fs.AddVirtual("tok.zag", []byte(src))
	toks := lexer.Tokenize([]byte(src))

	var buf bytes.Buffer
	if err := TokensPretty(&buf, fs, file, toks); err != nil {
		t.Fatalf("TokensPretty: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "KwConst") {
		t.Errorf("missing const keyword, got:\n%s", out)
	}
	if !strings.Contains(out, `"x"`) {
		t.Errorf("missing identifier text, got:\n%s", out)
	}
	if !strings.Contains(out, "1:1-1:6") {
		t.Errorf("missing position of first token, got:\n%s", out)
	}
}

func TestTreePretty(t *testing.T) {
	src := "const x = 5;\n"
	fs := source.NewFileSet()
	file := fs.AddVirtual("tree.zag", []byte(src))
	tree := parser.Parse([]byte(src))

	var buf bytes.Buffer
	if err := TreePretty(&buf, tree, fs, file); err != nil {
		t.Fatalf("TreePretty: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "Root ") {
		t.Errorf("dump should start at Root, got:\n%s", out)
	}
	if !strings.Contains(out, "VarDecl") {
		t.Errorf("missing VarDecl node, got:\n%s", out)
	}
	if !strings.Contains(out, `IntLit`) || !strings.Contains(out, `"5"`) {
		t.Errorf("missing literal text, got:\n%s", out)
	}
}

func TestTreeJSON(t *testing.T) {
	src := "const x = 5;\n"
	fs := source.NewFileSet()
	file := fs.AddVirtual("tree.zag", []byte(src))
	tree := parser.Parse([]byte(src))

	var buf bytes.Buffer
	if err := TreeJSON(&buf, tree, fs, file); err != nil {
		t.Fatalf("TreeJSON: %v", err)
	}
	var root NodeJSON
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if root.Kind != "Root" {
		t.Errorf("root kind = %q, want Root", root.Kind)
	}
	if len(root.Children) != 1 || root.Children[0].Kind != "VarDecl" {
		t.Fatalf("expected single VarDecl child, got %+v", root.Children)
	}
}
