package driver

import (
	"zag/internal/diag"
	"zag/internal/lexer"
	"zag/internal/source"
	"zag/internal/token"
)

// TokenizeResult bundles the token stream of one file with the file
// set it was loaded into and any lexical diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and produces its full token stream, including
// comment tokens. Invalid byte runs surface in the bag.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return tokenizeLoaded(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes is Tokenize for in-memory content (stdin, tests).
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeLoaded(fs, fileID, maxDiagnostics)
}

func tokenizeLoaded(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	file := fs.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(&diag.BagReporter{Bag: bag})

	tokens := lexer.Tokenize(file.Content)
	for _, tok := range tokens {
		if tok.Kind == token.Invalid {
			diag.ReportError(reporter, diag.LexInvalidBytes,
				tok.Span(fileID), "invalid bytes in source").Emit()
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}
