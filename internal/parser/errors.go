package parser

import (
	"fmt"
)

// ParseErrorKind is the closed set of ways a parse can fail.
type ParseErrorKind uint8

const (
	ExpectedNull ParseErrorKind = iota
	ExpectedBool
	// ExpectedInteger is qualified by ParseError.Signed.
	ExpectedInteger
	ExpectedFloat
	ExpectedMapStart
	ExpectedMapEnd
	ExpectedListStart
	ExpectedListEnd
	ExpectedEqual
	InvalidInteger
	InvalidFloat
	ExpectedString
	// InvalidEscape is qualified by ParseError.EscapePos.
	InvalidEscape
	StringUnterminated
	ExpectedIdent
	UnknownToken
	// NestingTooDeep reports that the configured depth limit was hit.
	NestingTooDeep
)

// ParseError — одна ошибка разбора: вид плюс токен-нарушитель с его
// позицией. После конструирования не изменяется; восстановления нет,
// первая ошибка прерывает весь разбор.
type ParseError struct {
	Token SpanToken
	Kind  ParseErrorKind

	// Signed qualifies ExpectedInteger: was a signed integer expected.
	Signed bool
	// EscapePos is the 0-indexed character offset of the bad escape
	// within the string interior. Only meaningful for InvalidEscape.
	EscapePos uint32
}

func newError(tok SpanToken, kind ParseErrorKind) *ParseError {
	return &ParseError{Token: tok, Kind: kind}
}

func newIntegerError(tok SpanToken, signed bool) *ParseError {
	return &ParseError{Token: tok, Kind: ExpectedInteger, Signed: signed}
}

func newEscapeError(tok SpanToken, pos uint32) *ParseError {
	return &ParseError{Token: tok, Kind: InvalidEscape, EscapePos: pos}
}

// Describe renders the failure without the position suffix.
func (e *ParseError) Describe() string {
	expected := func(s string) string {
		return fmt.Sprintf("Expected %s, found %s", s, e.Token.Tok.Describe())
	}
	switch e.Kind {
	case ExpectedNull:
		return expected("null")
	case ExpectedBool:
		return expected("a bool")
	case ExpectedInteger:
		if e.Signed {
			return expected("a signed integer")
		}
		return expected("an unsigned integer")
	case ExpectedFloat:
		return expected("a floating point number")
	case ExpectedMapStart:
		return expected("a map")
	case ExpectedMapEnd:
		return expected("'}'")
	case ExpectedListStart:
		return expected("a list")
	case ExpectedListEnd:
		return expected("']'")
	case ExpectedEqual:
		return expected("'='")
	case ExpectedString:
		return expected("a string")
	case ExpectedIdent:
		return expected("an identifier")
	case InvalidInteger:
		return "Invalid integer"
	case InvalidFloat:
		return "Invalid float"
	case StringUnterminated:
		return `Expected a closing '"'`
	case InvalidEscape:
		return fmt.Sprintf("Invalid escape sequence at character %d of string", e.EscapePos)
	case NestingTooDeep:
		return "Nesting too deep"
	default:
		return fmt.Sprintf("Unknown token %s", e.Token.Tok.Describe())
	}
}

// Error renders the failure with the 0-indexed line:col of the
// offending token's start.
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Describe(), e.Token.Line, e.Token.Col)
}
