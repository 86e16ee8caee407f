package source

import (
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb\n", "a\nb\n", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"bare cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, changed := normalizeCRLF([]byte(tc.in))
			if string(out) != tc.want {
				t.Errorf("expected %q, got %q", tc.want, string(out))
			}
			if changed != tc.changed {
				t.Errorf("expected changed=%v, got %v", tc.changed, changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	in := []byte{0xEF, 0xBB, 0xBF, 'x'}
	out, had := removeBOM(in)
	if !had {
		t.Fatal("expected BOM to be detected")
	}
	if string(out) != "x" {
		t.Errorf("expected %q, got %q", "x", string(out))
	}

	out, had = removeBOM([]byte("xy"))
	if had || string(out) != "xy" {
		t.Errorf("expected short content untouched, got %q (had=%v)", string(out), had)
	}
}

func TestBuildLineIndex(t *testing.T) {
	idx := buildLineIndex([]byte("a\nbb\n\nc"))
	want := []uint32{1, 4, 5}
	if len(idx) != len(want) {
		t.Fatalf("expected %v, got %v", want, idx)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, idx)
		}
	}
}
