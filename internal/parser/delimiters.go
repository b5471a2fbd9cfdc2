package parser

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// expect consumes the next token and checks its kind.
func (p *Parser) expect(kind token.Kind, errKind ParseErrorKind) *ParseError {
	st := p.NextToken()
	if st.Tok.Kind != kind {
		return newError(st, errKind)
	}
	return nil
}

// eatIf consumes the next token only when it has the given kind.
func (p *Parser) eatIf(kind token.Kind) bool {
	if p.PeekToken().Tok.Kind != kind {
		return false
	}
	p.NextToken()
	return true
}

// StartMap consumes '{'.
func (p *Parser) StartMap() *ParseError { return p.expect(token.LBrace, ExpectedMapStart) }

// MapDelimiter consumes the '=' between a key and its value.
func (p *Parser) MapDelimiter() *ParseError { return p.expect(token.Equal, ExpectedEqual) }

// EndMap consumes '}'.
func (p *Parser) EndMap() *ParseError { return p.expect(token.RBrace, ExpectedMapEnd) }

// TryStartMap consumes '{' if one is next.
func (p *Parser) TryStartMap() bool { return p.eatIf(token.LBrace) }

// TryMapDelimiter consumes '=' if one is next.
func (p *Parser) TryMapDelimiter() bool { return p.eatIf(token.Equal) }

// TryEndMap consumes '}' if one is next.
func (p *Parser) TryEndMap() bool { return p.eatIf(token.RBrace) }

// PeekEndMap reports whether '}' is next without consuming it.
func (p *Parser) PeekEndMap() bool { return p.PeekToken().Tok.Kind == token.RBrace }

// StartList consumes '['.
func (p *Parser) StartList() *ParseError { return p.expect(token.LBracket, ExpectedListStart) }

// EndList consumes ']'.
func (p *Parser) EndList() *ParseError { return p.expect(token.RBracket, ExpectedListEnd) }

// TryStartList consumes '[' if one is next.
func (p *Parser) TryStartList() bool { return p.eatIf(token.LBracket) }

// TryEndList consumes ']' if one is next.
func (p *Parser) TryEndList() bool { return p.eatIf(token.RBracket) }

// PeekEndList reports whether ']' is next without consuming it.
func (p *Parser) PeekEndList() bool { return p.PeekToken().Tok.Kind == token.RBracket }
