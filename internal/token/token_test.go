package token_test

import (
	"testing"

	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsTrivia(t *testing.T) {
	for _, k := range []token.Kind{token.Whitespace, token.Comment} {
		if !tok(k).IsTrivia() {
			t.Fatalf("%v should be trivia", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.Dot, token.EOF, token.Int} {
		if tok(k).IsTrivia() {
			t.Fatalf("%v must NOT be trivia", k)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{
		token.KwTrue, token.KwFalse, token.KwNull,
		token.Int, token.Float, token.String,
	}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.LBrace, token.Equal, token.Unknown}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestLookupKeyword(t *testing.T) {
	cases := []struct {
		ident string
		kind  token.Kind
		ok    bool
	}{
		{"true", token.KwTrue, true},
		{"false", token.KwFalse, true},
		{"null", token.KwNull, true},
		{"True", 0, false},
		{"NULL", 0, false},
		{"nil", 0, false},
		{"truey", 0, false},
	}
	for _, tc := range cases {
		k, ok := token.LookupKeyword(tc.ident)
		if ok != tc.ok || (ok && k != tc.kind) {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v, %v", tc.ident, k, ok, tc.kind, tc.ok)
		}
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		tok  token.Token
		want string
	}{
		{tok(token.Ident), "an identifier"},
		{tok(token.RBrace), "'}'"},
		{token.Token{Kind: token.Int, Sign: true}, "a signed integer"},
		{token.Token{Kind: token.Int}, "an unsigned integer"},
		{tok(token.EOF), "the end of the file"},
		{tok(token.Unknown), "an unknown token"},
	}
	for _, tc := range cases {
		if got := tc.tok.Describe(); got != tc.want {
			t.Errorf("Describe(%v) = %q, want %q", tc.tok.Kind, got, tc.want)
		}
	}
}

func TestBase(t *testing.T) {
	cases := []struct {
		base   token.Base
		offset uint32
		radix  int
	}{
		{token.BaseDec, 0, 10},
		{token.BaseHex, 2, 16},
		{token.BaseOct, 2, 8},
		{token.BaseBin, 2, 2},
	}
	for _, tc := range cases {
		if got := tc.base.DigitOffset(); got != tc.offset {
			t.Errorf("%v.DigitOffset() = %d, want %d", tc.base, got, tc.offset)
		}
		if got := tc.base.Radix(); got != tc.radix {
			t.Errorf("%v.Radix() = %d, want %d", tc.base, got, tc.radix)
		}
	}
}
