package lexer

import (
	"github.com/Yurihaia/ycf/internal/token"
)

// scanString сканирует до незаэкранированной '"'. На этом уровне
// распознаются только \" и \\ — ровно столько, чтобы найти настоящий
// терминатор; остальные escape проверяет парсер. Голый перевод строки
// или EOF завершают токен с Terminated=false.
func (c *Cursor) scanString(start Mark) token.Token {
	c.bump() // opening '"'
	terminated := false

	for !c.IsEOF() {
		b := c.bump()
		if b == '"' {
			terminated = true
			break
		}
		if b == '\\' {
			if b2 := c.peek(); b2 == '"' || b2 == '\\' {
				c.bump()
			}
			continue
		}
		if b == '\n' {
			break
		}
	}

	return token.Token{Kind: token.String, Span: c.SpanFrom(start), Terminated: terminated}
}
