package driver

import (
	"zag/internal/ast"
	"zag/internal/diag"
	"zag/internal/parser"
	"zag/internal/source"
)

// ParseResult bundles the syntax tree of one file with the file set
// it was loaded into and the diagnostics converted from parse errors.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *ast.Tree
	Bag     *diag.Bag
}

// ParseFile loads path and parses it. The tree is always produced;
// syntax errors land in the bag.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return parseLoaded(fs, fileID, maxDiagnostics), nil
}

// ParseBytes is ParseFile for in-memory content (stdin, tests).
func ParseBytes(name string, content []byte, maxDiagnostics int) *ParseResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return parseLoaded(fs, fileID, maxDiagnostics)
}

func parseLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *ParseResult {
	file := fs.Get(fileID)
	tree := parser.Parse(file.Content)
	bag := diag.CollectTree(tree, fileID, maxDiagnostics)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    tree,
		Bag:     bag,
	}
}
