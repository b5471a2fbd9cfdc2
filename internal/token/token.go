package token

import (
	"github.com/Yurihaia/ycf/internal/source"
)

// Token is a single lexical unit: a kind plus the byte span it covers.
// Integer tokens additionally carry their sign and base; string tokens
// carry whether a closing '"' was found.
type Token struct {
	Kind Kind
	Span source.Span

	// Sign сообщает, что integer начинался с '-'. Только для Kind == Int.
	Sign bool
	// Base — система счисления литерала. Только для Kind == Int.
	Base Base
	// Terminated сообщает, была ли найдена закрывающая '"'.
	// Только для Kind == String.
	Terminated bool
}

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	return t.Kind == Whitespace || t.Kind == Comment
}

// IsKeyword reports whether the token is one of the literal keywords.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsLiteral reports whether the token is a scalar literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case KwTrue, KwFalse, KwNull, Int, Float, String:
		return true
	default:
		return false
	}
}

// Describe renders the token for an error message ("an identifier",
// "'['", "a signed integer", ...).
func (t Token) Describe() string {
	switch t.Kind {
	case Comment:
		return "a comment"
	case Whitespace:
		return "whitespace"
	case Ident:
		return "an identifier"
	case KwTrue:
		return "'true'"
	case KwFalse:
		return "'false'"
	case KwNull:
		return "'null'"
	case LBracket:
		return "'['"
	case RBracket:
		return "']'"
	case LBrace:
		return "'{'"
	case RBrace:
		return "'}'"
	case Dot:
		return "'.'"
	case Equal:
		return "'='"
	case Int:
		if t.Sign {
			return "a signed integer"
		}
		return "an unsigned integer"
	case Float:
		return "a floating point number"
	case String:
		return "a string"
	case EOF:
		return "the end of the file"
	default:
		return "an unknown token"
	}
}
