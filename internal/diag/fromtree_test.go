package diag

import (
	"strings"
	"testing"

	"zag/internal/parser"
)

func TestFromTree(t *testing.T) {
	tree := parser.Parse([]byte("const x = ;"))
	bag := CollectTree(tree, 1, 16)
	if bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Code != SynExpectedExpr {
		t.Errorf("code = %s, want SynExpectedExpr", d.Code.ID())
	}
	if d.Severity != SevError {
		t.Errorf("severity = %s, want ERROR", d.Severity)
	}
	if d.Primary.File != 1 {
		t.Errorf("file = %d, want 1", d.Primary.File)
	}
	if d.Primary.Start != 10 {
		t.Errorf("span start = %d, want 10 (the semicolon)", d.Primary.Start)
	}
	if !strings.Contains(d.Message, "expected") {
		t.Errorf("message %q does not describe the expectation", d.Message)
	}
}

func TestFromTreeCleanSource(t *testing.T) {
	tree := parser.Parse([]byte("const x = 1;\n"))
	bag := CollectTree(tree, 1, 16)
	if bag.Len() != 0 {
		t.Fatalf("got %d diagnostics, want 0", bag.Len())
	}
	if bag.HasErrors() {
		t.Error("HasErrors on a clean parse")
	}
}
