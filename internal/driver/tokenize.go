// Package driver implements the operations behind the CLI commands:
// tokenizing, checking, formatting, and converting documents, with
// parallel directory walks for the batch variants.
package driver

import (
	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Parser  *parser.Parser
	Tokens  []parser.SpanToken
}

// Tokenize reads the file and collects its full token stream, trivia
// included.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	p := parser.New(file)
	var tokens []parser.SpanToken
	for {
		st := p.NextNoSkip()
		tokens = append(tokens, st)
		if st.Tok.Kind == token.EOF {
			break
		}
	}

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Parser:  p,
		Tokens:  tokens,
	}, nil
}
