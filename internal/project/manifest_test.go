package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"demo\"\n")

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if m.Config.Package.Name != "demo" {
		t.Errorf("name = %q, want demo", m.Config.Package.Name)
	}
	if m.Config.Check.MaxDiagnostics != DefaultMaxDiagnostics {
		t.Errorf("max_diagnostics = %d, want default %d", m.Config.Check.MaxDiagnostics, DefaultMaxDiagnostics)
	}
	if m.Config.Check.Color != ColorAuto {
		t.Errorf("color = %q, want auto", m.Config.Check.Color)
	}
	if m.Root != dir {
		t.Errorf("root = %q, want %q", m.Root, dir)
	}
}

func TestLoadFileCheckSection(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[check]
max_diagnostics = 10
color = "never"
include = ["src", "tests"]
`)

	m, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if m.Config.Check.MaxDiagnostics != 10 {
		t.Errorf("max_diagnostics = %d, want 10", m.Config.Check.MaxDiagnostics)
	}
	if m.Config.Check.Color != ColorNever {
		t.Errorf("color = %q, want never", m.Config.Check.Color)
	}
	got := m.IncludePaths()
	want := []string{filepath.Join(dir, "src"), filepath.Join(dir, "tests")}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("include paths = %v, want %v", got, want)
	}
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad color", "[check]\ncolor = \"sometimes\"\n"},
		{"zero max", "[check]\nmax_diagnostics = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			if _, err := LoadFile(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	path, ok, err := Find(nested)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !ok {
		t.Fatal("manifest not found from nested directory")
	}
	if filepath.Dir(path) != root {
		t.Errorf("found %q, want manifest in %q", path, root)
	}
}

func TestLoadMissingManifest(t *testing.T) {
	_, ok, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if ok {
		t.Error("expected no manifest in an empty temp dir")
	}
}
