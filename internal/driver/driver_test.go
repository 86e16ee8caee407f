package driver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"zag/internal/diag"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestParseBytesReportsSyntaxErrors(t *testing.T) {
	res := ParseBytes("broken.zag", []byte("const x = ;\n"), 64)
	if res.Bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", res.Bag.Len())
	}
	d := res.Bag.Items()[0]
	if d.Code != diag.SynExpectedExpr {
		t.Errorf("code = %v, want SynExpectedExpr", d.Code)
	}
	if res.Tree == nil {
		t.Error("tree must be produced even with errors")
	}
}

func TestParseBytesClean(t *testing.T) {
	res := ParseBytes("ok.zag", []byte("const x = 5;\n"), 64)
	if res.Bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d", res.Bag.Len())
	}
}

func TestTokenizeBytesInvalid(t *testing.T) {
	res := TokenizeBytes("bad.zag", []byte("const\x01 x\n"), 64)
	if !res.Bag.HasErrors() {
		t.Fatal("expected an invalid-bytes diagnostic")
	}
	if got := res.Bag.Items()[0].Code; got != diag.LexInvalidBytes {
		t.Errorf("code = %v, want LexInvalidBytes", got)
	}
}

func TestCollectFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.zag", "")
	writeFile(t, dir, "a.zag", "")
	writeFile(t, dir, "notes.txt", "")

	files, err := CollectFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %v", files)
	}
	if filepath.Base(files[0]) != "a.zag" || filepath.Base(files[1]) != "b.zag" {
		t.Errorf("files not sorted: %v", files)
	}
}

func TestCheckMany(t *testing.T) {
	dir := t.TempDir()
	good := writeFile(t, dir, "good.zag", "const x = 5;\n")
	bad := writeFile(t, dir, "bad.zag", "const x = ;\n")

	fs, results, err := CheckMany(context.Background(), []string{good, bad}, CheckOptions{
		MaxDiagnostics: 64,
		Jobs:           2,
	})
	if err != nil {
		t.Fatalf("CheckMany: %v", err)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files loaded, got %d", fs.Len())
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Path != good || results[1].Path != bad {
		t.Errorf("result order does not match input: %v, %v", results[0].Path, results[1].Path)
	}
	if results[0].Bag.HasErrors() {
		t.Errorf("good file has errors: %v", results[0].Bag.Items())
	}
	if !results[1].Bag.HasErrors() {
		t.Error("bad file has no errors")
	}
}

func TestCheckManyMissingFile(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.zag")

	_, results, err := CheckMany(context.Background(), []string{missing}, CheckOptions{
		MaxDiagnostics: 64,
	})
	if err != nil {
		t.Fatalf("CheckMany: %v", err)
	}
	if len(results) != 1 || !results[0].Bag.HasErrors() {
		t.Fatal("expected an IO diagnostic for the missing file")
	}
	if got := results[0].Bag.Items()[0].Code; got != diag.IOLoadFileError {
		t.Errorf("code = %v, want IOLoadFileError", got)
	}
}

func TestCheckManyCache(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.zag", "const x = ;\n")

	cache, err := OpenDiskCacheAt(filepath.Join(dir, "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	opts := CheckOptions{MaxDiagnostics: 64, Cache: cache}

	_, first, err := CheckMany(context.Background(), []string{bad}, opts)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if first[0].FromCache {
		t.Fatal("first run must not hit the cache")
	}

	_, second, err := CheckMany(context.Background(), []string{bad}, opts)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if !second[0].FromCache {
		t.Fatal("second run must hit the cache")
	}
	if second[0].Bag.Len() != first[0].Bag.Len() {
		t.Fatalf("replayed %d diagnostics, want %d", second[0].Bag.Len(), first[0].Bag.Len())
	}
	got, want := second[0].Bag.Items()[0], first[0].Bag.Items()[0]
	if got.Code != want.Code || got.Message != want.Message || got.Primary.Start != want.Primary.Start {
		t.Errorf("replayed diagnostic differs: got %+v, want %+v", got, want)
	}
}

func TestDiskCacheDropAll(t *testing.T) {
	cache, err := OpenDiskCacheAt(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("OpenDiskCacheAt: %v", err)
	}
	key := [32]byte{1}
	if err := cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Path: "x.zag"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("entry survived DropAll")
	}
}
