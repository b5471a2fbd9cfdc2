package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/token"
)

type TokenOutput struct {
	Kind string `json:"kind"`
	Text string `json:"text,omitempty"`
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
	// Start/End — байтовые границы в файле
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, p *parser.Parser, tokens []parser.SpanToken) error {
	for i, st := range tokens {
		fmt.Fprintf(w, "%3d: %-10s", i+1, st.Tok.Kind.String())

		if text := p.Src(st.Tok); text != "" && st.Tok.Kind != token.Whitespace {
			fmt.Fprintf(w, " %q", text)
		}

		fmt.Fprintf(w, " at %d:%d", st.Line, st.Col)
		fmt.Fprintln(w)

		if st.Tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, p *parser.Parser, tokens []parser.SpanToken) error {
	output := make([]TokenOutput, 0, len(tokens))

	for _, st := range tokens {
		out := TokenOutput{
			Kind:  st.Tok.Kind.String(),
			Line:  st.Line,
			Col:   st.Col,
			Start: st.Tok.Span.Start,
			End:   st.Tok.Span.End,
		}
		if st.Tok.Kind != token.Whitespace {
			out.Text = p.Src(st.Tok)
		}
		output = append(output, out)

		if st.Tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
