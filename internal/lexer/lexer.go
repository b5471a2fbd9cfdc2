package lexer

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// ReadToken consumes the next token starting at the current offset and
// returns it. After EOF it always returns an EOF token with an empty
// span at the end of the buffer.
func (c *Cursor) ReadToken() token.Token {
	start := c.Mark()

	if c.IsEOF() {
		return token.Token{Kind: token.EOF, Span: c.SpanFrom(start)}
	}

	r, _ := c.peekRune()
	var kind token.Kind

	switch {
	case r == '/':
		c.bump()
		if c.peek() == '/' {
			// съесть всё до конца строки, включая сам \n
			for !c.IsEOF() && c.bump() != '\n' {
			}
			kind = token.Comment
		} else {
			kind = token.Unknown
		}

	case isFormatWhitespace(r):
		for {
			r2, sz := c.peekRune()
			if sz == 0 || !isFormatWhitespace(r2) {
				break
			}
			c.bumpRune()
		}
		kind = token.Whitespace

	case r == '_' || isXIDStart(r):
		return c.scanIdentOrKeyword(start)

	case r == '[':
		c.bump()
		kind = token.LBracket
	case r == ']':
		c.bump()
		kind = token.RBracket
	case r == '{':
		c.bump()
		kind = token.LBrace
	case r == '}':
		c.bump()
		kind = token.RBrace
	case r == '.':
		c.bump()
		kind = token.Dot
	case r == '=':
		c.bump()
		kind = token.Equal

	case r == '-' || r >= '0' && r <= '9':
		return c.scanNumber(start)

	case r == '"':
		return c.scanString(start)

	default:
		c.bumpRune()
		kind = token.Unknown
	}

	return token.Token{Kind: kind, Span: c.SpanFrom(start)}
}
