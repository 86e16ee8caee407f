package diag

import (
	"testing"

	"zag/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestBagLimit(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(SynExpectedExpr, span(1, 0, 1), "first")) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(NewError(SynExpectedExpr, span(1, 2, 3), "second")) {
		t.Fatal("second add rejected")
	}
	if bag.Add(NewError(SynExpectedExpr, span(1, 4, 5), "third")) {
		t.Error("add beyond the limit accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagSortOrder(t *testing.T) {
	bag := NewBag(8)
	bag.Add(New(SevWarning, UnknownCode, span(2, 0, 1), "later file"))
	bag.Add(NewError(SynExpectedExpr, span(1, 10, 11), "later offset"))
	bag.Add(New(SevWarning, UnknownCode, span(1, 0, 1), "warning first span"))
	bag.Add(NewError(SynExpectedToken, span(1, 0, 1), "error first span"))
	bag.Sort()

	items := bag.Items()
	if items[0].Severity != SevError || items[0].Primary.Start != 0 {
		t.Errorf("item 0 = %+v, want the error at offset 0", items[0])
	}
	if items[1].Severity != SevWarning {
		t.Errorf("item 1 severity = %s, want WARNING", items[1].Severity)
	}
	if items[2].Primary.Start != 10 {
		t.Errorf("item 2 start = %d, want 10", items[2].Primary.Start)
	}
	if items[3].Primary.File != 2 {
		t.Errorf("item 3 file = %d, want 2", items[3].Primary.File)
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(8)
	bag.Add(NewError(SynExpectedExpr, span(1, 0, 1), "once"))
	bag.Add(NewError(SynExpectedExpr, span(1, 0, 1), "twice"))
	bag.Add(NewError(SynExpectedToken, span(1, 0, 1), "different code"))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Errorf("Len after Dedup = %d, want 2", bag.Len())
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(1)
	a.Add(NewError(SynExpectedExpr, span(1, 0, 1), "a"))
	b := NewBag(1)
	b.Add(NewError(SynExpectedExpr, span(1, 2, 3), "b"))
	a.Merge(b)
	if a.Len() != 2 {
		t.Errorf("Len after Merge = %d, want 2", a.Len())
	}
}

func TestDedupReporter(t *testing.T) {
	bag := NewBag(8)
	r := NewDedupReporter(BagReporter{Bag: bag})
	r.Report(SynExpectedExpr, SevError, span(1, 0, 1), "dup", nil)
	r.Report(SynExpectedExpr, SevError, span(1, 0, 1), "dup", nil)
	r.Report(SynExpectedExpr, SevError, span(1, 0, 1), "other message", nil)
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestCodeID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexInvalidBytes, "LEX1001"},
		{SynExpectedExpr, "SYN2003"},
		{UnknownCode, "E0000"},
	}
	for _, tc := range tests {
		if got := tc.code.ID(); got != tc.want {
			t.Errorf("ID(%d) = %q, want %q", tc.code, got, tc.want)
		}
	}
}
