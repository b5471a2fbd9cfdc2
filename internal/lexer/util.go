package lexer

import (
	"unicode"
	"unicode/utf8"
)

const utf8RuneSelf = 0x80

// ===== Работа с рунами поверх Cursor =====

// peekRune читает текущую позицию как руну.
func (c *Cursor) peekRune() (r rune, size int) {
	if c.IsEOF() {
		return utf8.RuneError, 0
	}
	b := c.peek()
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(c.file.Content[c.off:])
}

// bumpRune перемещает курсор на размер текущей руны.
func (c *Cursor) bumpRune() {
	_, sz := c.peekRune()
	c.off += uint32(sz)
}

// ===== Классификаторы =====

// ASCII fast-path для идентификаторов; Unicode — через isXIDStart/Continue.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || b == '-' || (b >= '0' && b <= '9')
}

var xidStartExtra = []*unicode.RangeTable{unicode.L, unicode.Nl, unicode.Other_ID_Start}

var xidContinueExtra = []*unicode.RangeTable{
	unicode.L, unicode.Nl, unicode.Nd, unicode.Mn, unicode.Mc, unicode.Pc,
	unicode.Other_ID_Start, unicode.Other_ID_Continue,
}

// isXIDStart reports the Unicode XID_Start property, built from the
// stdlib range tables the same way go/scanner approximates it.
func isXIDStart(r rune) bool {
	return unicode.In(r, xidStartExtra...) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// isXIDContinue reports the Unicode XID_Continue property.
func isXIDContinue(r rune) bool {
	return unicode.In(r, xidContinueExtra...) &&
		!unicode.In(r, unicode.Pattern_Syntax, unicode.Pattern_White_Space)
}

// IsIdentifier reports whether s would lex as a single plain
// identifier. Keywords do not count: they lex as their own kind.
func IsIdentifier(s string) bool {
	if s == "" || s == "true" || s == "false" || s == "null" {
		return false
	}
	for i, r := range s {
		if i == 0 {
			if r != '_' && !isXIDStart(r) {
				return false
			}
			continue
		}
		if r != '-' && r != '_' && !isXIDContinue(r) {
			return false
		}
	}
	return true
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isDecOrSep(b byte) bool { return isDec(b) || b == '_' }

func isHexOrSep(b byte) bool {
	return isDecOrSep(b) ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// isFormatWhitespace reports membership in the format's fixed
// whitespace set.
func isFormatWhitespace(r rune) bool {
	switch r {
	case '\t', // horizontal tab, '\t'
		'\n',     // line feed, '\n'
		'\v',     // vertical tab
		'\f',     // form feed
		'\r',     // carriage return, '\r'
		' ',      // space, ' '
		'\u0085', // next line
		'\u200e', // left-to-right mark
		'\u200f', // right-to-left mark
		'\u2028', // line separator
		'\u2029': // paragraph separator
		return true
	}
	return false
}
