package parser

import (
	"strings"
	"unicode/utf8"

	"github.com/Yurihaia/ycf/internal/token"
)

// ParseString consumes a string token and expands its escapes.
func (p *Parser) ParseString() (string, *ParseError) {
	st := p.NextToken()
	if st.Tok.Kind != token.String {
		return "", newError(st, ExpectedString)
	}
	return p.unescape(st)
}

// TryParseString consumes a string token if one is next. A string that
// is present but malformed still fails: peek only decides the kind.
func (p *Parser) TryParseString() (string, bool, *ParseError) {
	if p.PeekToken().Tok.Kind != token.String {
		return "", false, nil
	}
	s, err := p.ParseString()
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

// unescape раскрывает escape-последовательности внутренности строки.
// Позиция ошибки — номер символа (не байта) обратного слэша внутри
// строки, 0-indexed.
func (p *Parser) unescape(st SpanToken) (string, *ParseError) {
	if !st.Tok.Terminated {
		return "", newError(st, StringUnterminated)
	}

	src := p.Src(st.Tok)
	inner := src[1 : len(src)-1]
	if strings.IndexByte(inner, '\\') < 0 {
		return inner, nil
	}

	var out strings.Builder
	out.Grow(len(inner))
	var pos uint32 // char offset inside inner
	i := 0
	for i < len(inner) {
		r, sz := utf8.DecodeRuneInString(inner[i:])
		if r != '\\' {
			out.WriteString(inner[i : i+sz])
			i += sz
			pos++
			continue
		}

		escPos := pos
		i++ // backslash
		if i >= len(inner) {
			// лексер это не пропустит, но пусть будет закрыто
			return "", newEscapeError(st, escPos)
		}
		e := inner[i]
		i++
		pos += 2
		switch e {
		case 'n':
			out.WriteByte('\n')
		case 'r':
			out.WriteByte('\r')
		case 't':
			out.WriteByte('\t')
		case '0':
			out.WriteByte(0)
		case '\\':
			out.WriteByte('\\')
		case '"':
			out.WriteByte('"')
		case 'x':
			if len(inner)-i < 2 {
				return "", newEscapeError(st, escPos)
			}
			hi, ok1 := hexDigit(inner[i])
			lo, ok2 := hexDigit(inner[i+1])
			v := hi<<4 | lo
			// \xHH ограничен ASCII; не-ASCII байты пишутся через \u{}
			if !ok1 || !ok2 || v > 0x7F {
				return "", newEscapeError(st, escPos)
			}
			out.WriteByte(byte(v))
			i += 2
			pos += 2
		case 'u':
			if i >= len(inner) || inner[i] != '{' {
				return "", newEscapeError(st, escPos)
			}
			i++
			pos++
			var v uint32
			digits := 0
			for i < len(inner) && inner[i] != '}' {
				d, ok := hexDigit(inner[i])
				if !ok || digits == 6 {
					return "", newEscapeError(st, escPos)
				}
				v = v<<4 | d
				digits++
				i++
				pos++
			}
			if i >= len(inner) || digits == 0 || !utf8.ValidRune(rune(v)) {
				return "", newEscapeError(st, escPos)
			}
			i++ // '}'
			pos++
			out.WriteRune(rune(v))
		default:
			return "", newEscapeError(st, escPos)
		}
	}
	return out.String(), nil
}

func hexDigit(b byte) (uint32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint32(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint32(b-'A') + 10, true
	default:
		return 0, false
	}
}
