package parser_test

import (
	"testing"

	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

// makeTestParser создаёт парсер для тестовой строки
func makeTestParser(input string) *parser.Parser {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.ycf", []byte(input))
	return parser.New(fs.Get(fileID))
}

func TestNextTokenSkipsTrivia(t *testing.T) {
	p := makeTestParser("  // comment\n  foo")
	st := p.NextToken()
	if st.Tok.Kind != token.Ident {
		t.Fatalf("expected Ident, got %v", st.Tok.Kind)
	}
	if got := p.Src(st.Tok); got != "foo" {
		t.Errorf("expected src %q, got %q", "foo", got)
	}
}

func TestLineColTracking(t *testing.T) {
	// позиции 0-indexed; комментарий и пробелы двигают счётчики
	tests := []struct {
		name  string
		input string
		line  uint32
		col   uint32
	}{
		{"start of input", "a", 0, 0},
		{"after spaces", "   a", 0, 3},
		{"after newline", "\na", 1, 0},
		{"after comment line", "// c\na", 1, 0},
		{"second line with indent", "x = 1\n  y", 1, 2},
		{"multiline whitespace", "\n\n\n    a", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := makeTestParser(tt.input)
			var st parser.SpanToken
			for {
				st = p.NextToken()
				if st.Tok.Kind == token.EOF {
					t.Fatal("hit EOF before target token")
				}
				if p.Src(st.Tok) == "a" || p.Src(st.Tok) == "y" {
					break
				}
			}
			if st.Line != tt.line || st.Col != tt.col {
				t.Errorf("expected %d:%d, got %d:%d", tt.line, tt.col, st.Line, st.Col)
			}
		})
	}
}

func TestPeekIsIdempotent(t *testing.T) {
	p := makeTestParser("foo bar")
	first := p.PeekToken()
	second := p.PeekToken()
	if first != second {
		t.Fatalf("peek moved the stream: %v vs %v", first, second)
	}
	next := p.NextToken()
	if next != first {
		t.Fatalf("next did not return the peeked token")
	}
}

func TestPeekNoSkipSeesTrivia(t *testing.T) {
	p := makeTestParser("a .b")
	if p.NextToken().Tok.Kind != token.Ident {
		t.Fatal("expected leading ident")
	}
	// с пропуском '.' виден, без пропуска — пробел
	if got := p.PeekNoSkip().Tok.Kind; got != token.Whitespace {
		t.Errorf("expected Whitespace without skip, got %v", got)
	}
	if got := p.PeekToken().Tok.Kind; got != token.Dot {
		t.Errorf("expected Dot with skip, got %v", got)
	}
}

// Peek в одном режиме, next в другом: кеш lookahead обязан
// перепроверяться против текущего режима.
func TestLookaheadRevalidatedAgainstSkipMode(t *testing.T) {
	p := makeTestParser("a b")
	p.NextToken() // 'a'

	if got := p.PeekNoSkip().Tok.Kind; got != token.Whitespace {
		t.Fatalf("expected Whitespace in no-skip peek, got %v", got)
	}
	// обычный next должен прозрачно пропустить закешированный пробел
	st := p.NextToken()
	if st.Tok.Kind != token.Ident || p.Src(st.Tok) != "b" {
		t.Errorf("expected ident b, got %v %q", st.Tok.Kind, p.Src(st.Tok))
	}
}

func TestSkipModeRoundTrip(t *testing.T) {
	p := makeTestParser("a b")
	p.NextToken()
	p.PeekNoSkip()
	// peek в режиме skip после no-skip peek обязан дать тот же
	// результат, что и без промежуточного peek
	if got := p.PeekToken().Tok.Kind; got != token.Ident {
		t.Errorf("expected Ident, got %v", got)
	}
	if got := p.NextToken(); p.Src(got.Tok) != "b" {
		t.Errorf("expected b, got %q", p.Src(got.Tok))
	}
}

func TestPeekEOF(t *testing.T) {
	p := makeTestParser("   // only trivia\n")
	if !p.PeekEOF() {
		t.Error("expected EOF after trivia-only input")
	}
	p = makeTestParser("x")
	if p.PeekEOF() {
		t.Error("did not expect EOF before ident")
	}
}

func TestCommentLineTracking(t *testing.T) {
	// комментарий включает завершающий \n и должен сдвинуть строку
	p := makeTestParser("// one\n// two\nkey")
	st := p.NextToken()
	if st.Line != 2 || st.Col != 0 {
		t.Errorf("expected 2:0, got %d:%d", st.Line, st.Col)
	}
}
