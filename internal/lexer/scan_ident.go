package lexer

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через
// LookupKeyword. Первый символ уже проверен вызывающим кодом.
// Продолжение: XID_Continue, '_' или '-' (дефисы в идентификаторах
// допустимы — это отличает формат от большинства языков).
func (c *Cursor) scanIdentOrKeyword(start Mark) token.Token {
	c.bumpRune()

	for !c.IsEOF() {
		b := c.peek()
		if b < utf8RuneSelf {
			// ASCII fast-path
			if !isIdentContinueByte(b) {
				break
			}
			c.bump()
			continue
		}
		r, _ := c.peekRune()
		if !isXIDContinue(r) {
			break
		}
		c.bumpRune()
	}

	sp := c.SpanFrom(start)
	if k, ok := token.LookupKeyword(string(c.TokenSrc(sp))); ok {
		return token.Token{Kind: k, Span: sp}
	}
	return token.Token{Kind: token.Ident, Span: sp}
}
