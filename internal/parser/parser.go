package parser

import (
	"bytes"

	"github.com/Yurihaia/ycf/internal/lexer"
	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

// SpanToken — токен плюс строка/колонка его начала (0-indexed).
type SpanToken struct {
	Tok  token.Token
	Line uint32
	Col  uint32
}

// Parser — однопроходный поток токенов с одним токеном lookahead,
// переключаемым пропуском trivia и счётом строк/колонок. Один Parser
// на один входной буфер; буфер заимствуется на всё время жизни.
type Parser struct {
	cursor *lexer.Cursor
	line   uint32
	col    uint32
	// skip управляет прозрачным пропуском Whitespace/Comment.
	// Выключается там, где важна смежность (точечные пути).
	skip      bool
	lookahead *SpanToken
}

// New creates a parser over the file's content.
func New(f *source.File) *Parser {
	return &Parser{
		cursor: lexer.NewCursor(f),
		skip:   true,
	}
}

// Cursor returns the underlying cursor (used by tooling that wants the
// raw token stream positions).
func (p *Parser) Cursor() *lexer.Cursor {
	return p.cursor
}

func (p *Parser) shouldSkip(k token.Kind) bool {
	return p.skip && (k == token.Whitespace || k == token.Comment)
}

// NextToken возвращает следующий видимый токен. Закешированный
// lookahead перепроверяется против ТЕКУЩЕГО режима skip: между peek и
// next режим мог поменяться.
func (p *Parser) NextToken() SpanToken {
	if p.lookahead != nil {
		st := *p.lookahead
		p.lookahead = nil
		if p.shouldSkip(st.Tok.Kind) {
			return p.NextToken()
		}
		return st
	}

	line, col := p.line, p.col
	tok := p.cursor.ReadToken()
	src := p.cursor.TokenSrc(tok.Span)

	// двигаем счёт строк/колонок; \n сбрасывает колонку
	if tok.IsTrivia() {
		if i := bytes.LastIndexByte(src, '\n'); i >= 0 {
			p.line += uint32(bytes.Count(src, []byte{'\n'}))
			p.col = uint32(len(src) - i - 1)
		} else {
			p.col += uint32(len(src))
		}
	} else {
		p.col += uint32(len(src))
	}

	if p.shouldSkip(tok.Kind) {
		return p.NextToken()
	}

	return SpanToken{Tok: tok, Line: line, Col: col}
}

// PeekToken возвращает следующий видимый токен, не потребляя его.
// Идемпотентен: повторный peek не двигает курсор.
func (p *Parser) PeekToken() SpanToken {
	if p.lookahead != nil && !p.shouldSkip(p.lookahead.Tok.Kind) {
		return *p.lookahead
	}
	next := p.NextToken()
	p.lookahead = &next
	return next
}

// NextNoSkip читает следующий токен с выключенным пропуском trivia.
func (p *Parser) NextNoSkip() SpanToken {
	old := p.skip
	p.skip = false
	res := p.NextToken()
	p.skip = old
	return res
}

// PeekNoSkip подсматривает следующий токен с выключенным пропуском
// trivia: так '.' сразу после идентификатора отличим от '.' после
// пробела.
func (p *Parser) PeekNoSkip() SpanToken {
	old := p.skip
	p.skip = false
	res := p.PeekToken()
	p.skip = old
	return res
}

// Src re-slices the source text covered by the token.
func (p *Parser) Src(tok token.Token) string {
	return string(p.cursor.TokenSrc(tok.Span))
}

// PeekEOF reports whether the next visible token is EOF.
func (p *Parser) PeekEOF() bool {
	return p.PeekToken().Tok.Kind == token.EOF
}

// ErrorHere constructs a ParseError of the given kind attached to the
// next visible token.
func (p *Parser) ErrorHere(kind ParseErrorKind) *ParseError {
	return newError(p.PeekToken(), kind)
}
