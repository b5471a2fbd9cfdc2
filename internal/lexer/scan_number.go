package lexer

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., -5, 1.0, 1e-3, 1.0e+10.
// '_' допустим как разделитель во всех базах. Неверные формы не
// ошибка на этом уровне: парсер увидит пустой или мусорный digit span
// и вернёт InvalidInteger/InvalidFloat.
func (c *Cursor) scanNumber(start Mark) token.Token {
	sign := false
	if c.peek() == '-' {
		c.bump()
		sign = true
		if c.IsEOF() {
			// одинокий '-': signed Dec с пустым digit span
			return token.Token{Kind: token.Int, Span: c.SpanFrom(start), Sign: true, Base: token.BaseDec}
		}
	}

	first := c.bump()
	base := token.BaseDec

	if first == '0' {
		switch c.peek() {
		case 'x':
			c.bump()
			for isHexOrSep(c.peek()) {
				c.bump()
			}
			base = token.BaseHex
		case 'o':
			c.bump()
			// десятичный класс цифр; 8/9 отбракует парсер по radix
			for isDecOrSep(c.peek()) {
				c.bump()
			}
			base = token.BaseOct
		case 'b':
			c.bump()
			for isDecOrSep(c.peek()) {
				c.bump()
			}
			base = token.BaseBin
		default:
			for isDecOrSep(c.peek()) {
				c.bump()
			}
		}
		if base != token.BaseDec {
			// базовые литералы никогда не становятся Float
			return token.Token{Kind: token.Int, Span: c.SpanFrom(start), Sign: sign, Base: base}
		}
	} else {
		for isDecOrSep(c.peek()) {
			c.bump()
		}
	}

	switch c.peek() {
	case '.':
		c.bump()
		if isDec(c.peek()) {
			for isDecOrSep(c.peek()) {
				c.bump()
			}
			c.scanExponent()
		}
		return token.Token{Kind: token.Float, Span: c.SpanFrom(start)}
	case 'e', 'E':
		c.scanExponent()
		return token.Token{Kind: token.Float, Span: c.SpanFrom(start)}
	}

	return token.Token{Kind: token.Int, Span: c.SpanFrom(start), Sign: sign, Base: token.BaseDec}
}

// scanExponent съедает [eE][+-]?digits, если курсор стоит на e/E.
func (c *Cursor) scanExponent() {
	if b := c.peek(); b != 'e' && b != 'E' {
		return
	}
	c.bump()
	if b := c.peek(); b == '+' || b == '-' {
		c.bump()
	}
	for isDecOrSep(c.peek()) {
		c.bump()
	}
}
