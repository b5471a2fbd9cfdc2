package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Unknown indicates a character the lexer has no rule for. It is not
	// an error at this layer; the parser turns it into a positioned one.
	Unknown Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Comment represents a '//' line comment, including its newline.
	Comment
	// Whitespace represents a maximal run of whitespace characters.
	Whitespace

	// Ident represents an identifier token.
	Ident
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// LBracket represents the start of a list.
	LBracket // [
	// RBracket represents the end of a list.
	RBracket // ]
	// LBrace represents the start of a map.
	LBrace // {
	// RBrace represents the end of a map.
	RBrace // }
	// Dot separates key path segments.
	Dot // .
	// Equal separates a map key from its value.
	Equal // =

	// Int represents an integer literal; sign and base live on the Token.
	Int
	// Float represents a floating point literal.
	Float
	// String represents a string literal; termination lives on the Token.
	String
)

var kindNames = [...]string{
	Unknown:    "Unknown",
	EOF:        "EOF",
	Comment:    "Comment",
	Whitespace: "Whitespace",
	Ident:      "Ident",
	KwTrue:     "True",
	KwFalse:    "False",
	KwNull:     "Null",
	LBracket:   "LBracket",
	RBracket:   "RBracket",
	LBrace:     "LBrace",
	RBrace:     "RBrace",
	Dot:        "Dot",
	Equal:      "Equal",
	Int:        "Int",
	Float:      "Float",
	String:     "String",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
