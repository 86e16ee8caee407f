package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const maxSeedBytes = 64 << 10

var builtinSeeds = []string{
	"",
	"const x = 5;\n",
	"fn add(a: i32, b: i32) i32 { return a + b; }\n",
	"pub fn main() void {}\n",
	"const S = struct { x: i32, y: i32, };\n",
	"const E = error{OutOfMemory, FileNotFound};\n",
	"test \"smoke\" { var i: usize = 0; while (i < 10) : (i += 1) {} }\n",
	"const p: ?*const volatile u8 = null;\n",
	"comptime { @compileLog(\"hi\"); }\n",
	"var v = if (a) b else c;\n",
	"const r = switch (x) { 0 ... 9 => a, else => b, };\n",
	"fn f() !void { try g(); }\n",
	"usingnamespace @import(\"std\");\n",
	"const s = \\\\line one\n\\\\line two\n;\n",
}

func addCorpusSeeds(f *testing.F) {
	for _, seed := range builtinSeeds {
		f.Add([]byte(seed))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".zag" {
			return nil
		}
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
