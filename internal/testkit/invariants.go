// Package testkit holds shared checks used by tests and fuzz targets.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Yurihaia/ycf/internal/lexer"
	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

// CheckTokenStreamInvariants lexes the whole file and verifies the
// structural properties the rest of the codebase relies on:
// 1) token spans are contiguous and cover the content exactly
// 2) only EOF has an empty span, and EOF sits at the end of content
// 3) ReadToken keeps returning EOF once the input is exhausted
// It returns the non-EOF tokens it read.
func CheckTokenStreamInvariants(f *source.File) ([]token.Token, error) {
	if f == nil {
		return nil, fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return nil, fmt.Errorf("len content overflow: %w", err)
	}

	c := lexer.NewCursor(f)
	var toks []token.Token
	var pos uint32
	for {
		tok := c.ReadToken()
		if tok.Kind == token.EOF {
			if tok.Span.Start != lenContent || tok.Span.End != lenContent {
				return toks, fmt.Errorf("EOF span %v, want %d:%d", tok.Span, lenContent, lenContent)
			}
			break
		}
		if tok.Span.File != f.ID {
			return toks, fmt.Errorf("token span points to file %d, want %d", tok.Span.File, f.ID)
		}
		if tok.Span.Empty() {
			return toks, fmt.Errorf("empty span for %v at %d", tok.Kind, tok.Span.Start)
		}
		if tok.Span.Start != pos {
			return toks, fmt.Errorf("gap in stream: %v starts at %d, want %d", tok.Kind, tok.Span.Start, pos)
		}
		if tok.Span.End > lenContent {
			return toks, fmt.Errorf("span %v beyond content (%d bytes)", tok.Span, lenContent)
		}
		pos = tok.Span.End
		toks = append(toks, tok)
	}
	if pos != lenContent {
		return toks, fmt.Errorf("stream stopped at %d of %d bytes", pos, lenContent)
	}

	// EOF должен быть «липким»
	for i := 0; i < 3; i++ {
		if tok := c.ReadToken(); tok.Kind != token.EOF {
			return toks, fmt.Errorf("read past EOF returned %v", tok.Kind)
		}
	}
	return toks, nil
}
