package parser

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// ParseNull consumes a `null` keyword.
func (p *Parser) ParseNull() *ParseError {
	st := p.NextToken()
	if st.Tok.Kind != token.KwNull {
		return newError(st, ExpectedNull)
	}
	return nil
}

// TryParseNull consumes a `null` keyword if one is next. The stream is
// untouched when it reports false.
func (p *Parser) TryParseNull() bool {
	if p.PeekToken().Tok.Kind != token.KwNull {
		return false
	}
	p.NextToken()
	return true
}

// ParseBool consumes a `true` or `false` keyword.
func (p *Parser) ParseBool() (bool, *ParseError) {
	st := p.NextToken()
	switch st.Tok.Kind {
	case token.KwTrue:
		return true, nil
	case token.KwFalse:
		return false, nil
	default:
		return false, newError(st, ExpectedBool)
	}
}

// TryParseBool consumes a bool keyword if one is next.
func (p *Parser) TryParseBool() (value, ok bool) {
	switch p.PeekToken().Tok.Kind {
	case token.KwTrue:
		p.NextToken()
		return true, true
	case token.KwFalse:
		p.NextToken()
		return false, true
	default:
		return false, false
	}
}
