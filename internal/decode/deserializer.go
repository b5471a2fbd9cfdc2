package decode

import (
	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

// DefaultMaxDepth ограничивает вложенность контейнеров: каждый '{',
// '[' и каждый сегмент точечного пути считается уровнем.
const DefaultMaxDepth = 128

// Deserializer drives a Visitor over a single document. It owns the
// parser; one Deserializer decodes one value (or one Document).
type Deserializer struct {
	p        *parser.Parser
	depth    int
	maxDepth int
}

// New creates a deserializer over the file's content.
func New(f *source.File) *Deserializer {
	return &Deserializer{
		p:        parser.New(f),
		maxDepth: DefaultMaxDepth,
	}
}

// SetMaxDepth overrides the nesting limit. Values below 1 are ignored.
func (d *Deserializer) SetMaxDepth(n int) {
	if n >= 1 {
		d.maxDepth = n
	}
}

// Parser exposes the underlying parser, for callers that need to check
// stream state after decoding (trailing input, positions).
func (d *Deserializer) Parser() *parser.Parser {
	return d.p
}

func (d *Deserializer) enter() error {
	d.depth++
	if d.depth > d.maxDepth {
		return parseErr(d.p.ErrorHere(parser.NestingTooDeep))
	}
	return nil
}

func (d *Deserializer) leave() {
	d.depth--
}

// Any decodes whatever value comes next, dispatching on the lookahead
// token.
func (d *Deserializer) Any(v Visitor) error {
	pk := d.p.PeekToken().Tok
	switch pk.Kind {
	case token.KwNull:
		return d.Unit(v)
	case token.KwTrue, token.KwFalse:
		return d.Bool(v)
	case token.Int:
		if pk.Sign {
			return d.Int64(v)
		}
		return d.Uint64(v)
	case token.Float:
		return d.Float64(v)
	case token.String:
		return d.Str(v)
	case token.LBracket:
		return d.Seq(v)
	case token.LBrace:
		return d.Map(v)
	default:
		return parseErr(d.p.ErrorHere(parser.UnknownToken))
	}
}

// Unit decodes a null.
func (d *Deserializer) Unit(v Visitor) error {
	if err := d.p.ParseNull(); err != nil {
		return parseErr(err)
	}
	return v.Null()
}

// Option decodes either a null or the underlying value.
func (d *Deserializer) Option(v Visitor) error {
	if d.p.TryParseNull() {
		return v.Null()
	}
	return d.Any(v)
}

// Bool decodes a boolean.
func (d *Deserializer) Bool(v Visitor) error {
	b, err := d.p.ParseBool()
	if err != nil {
		return parseErr(err)
	}
	return v.Bool(b)
}

// Str decodes a string with escapes expanded.
func (d *Deserializer) Str(v Visitor) error {
	s, err := d.p.ParseString()
	if err != nil {
		return parseErr(err)
	}
	return v.Str(s)
}

func decodeUint[T parser.Unsigned](d *Deserializer, v Visitor) error {
	n, err := parser.ParseUint[T](d.p)
	if err != nil {
		return parseErr(err)
	}
	return v.Uint(uint64(n))
}

func decodeInt[T parser.Signed](d *Deserializer, v Visitor) error {
	n, err := parser.ParseInt[T](d.p)
	if err != nil {
		return parseErr(err)
	}
	return v.Int(int64(n))
}

// Uint8 decodes an unsigned integer that must fit in 8 bits. The
// narrowing failure is an InvalidInteger at the offending token, not a
// visitor-side check.
func (d *Deserializer) Uint8(v Visitor) error  { return decodeUint[uint8](d, v) }
func (d *Deserializer) Uint16(v Visitor) error { return decodeUint[uint16](d, v) }
func (d *Deserializer) Uint32(v Visitor) error { return decodeUint[uint32](d, v) }
func (d *Deserializer) Uint64(v Visitor) error { return decodeUint[uint64](d, v) }

func (d *Deserializer) Int8(v Visitor) error  { return decodeInt[int8](d, v) }
func (d *Deserializer) Int16(v Visitor) error { return decodeInt[int16](d, v) }
func (d *Deserializer) Int32(v Visitor) error { return decodeInt[int32](d, v) }
func (d *Deserializer) Int64(v Visitor) error { return decodeInt[int64](d, v) }

// Float32 decodes a float parsed at 32-bit precision.
func (d *Deserializer) Float32(v Visitor) error {
	f, err := parser.ParseFloat[float32](d.p)
	if err != nil {
		return parseErr(err)
	}
	return v.Float(float64(f))
}

// Float64 decodes a float.
func (d *Deserializer) Float64(v Visitor) error {
	f, err := parser.ParseFloat[float64](d.p)
	if err != nil {
		return parseErr(err)
	}
	return v.Float(f)
}

// Seq decodes a '[' ... ']' list.
func (d *Deserializer) Seq(v Visitor) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.p.StartList(); err != nil {
		return parseErr(err)
	}
	return v.Seq(&seqAccess{d: d})
}

// Map decodes a '{' ... '}' map.
func (d *Deserializer) Map(v Visitor) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	if err := d.p.StartMap(); err != nil {
		return parseErr(err)
	}
	return v.Map(&mapAccess{d: d})
}

// Document decodes the whole input as an implicit top-level map: bare
// `key = value` entries until EOF, no surrounding braces.
func (d *Deserializer) Document(v Visitor) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	return v.Map(&topAccess{d: d})
}

// adjacentKey reads an identifier with trivia skipping off. The caller
// is responsible for having peeked past any trivia first when leading
// whitespace is allowed.
func (d *Deserializer) adjacentKey() (string, error) {
	st := d.p.PeekNoSkip()
	if st.Tok.Kind != token.Ident {
		return "", parseErr(&parser.ParseError{Token: st, Kind: parser.ExpectedIdent})
	}
	d.p.NextNoSkip()
	return d.p.Src(st.Tok), nil
}

// value decodes the right-hand side of a map entry: either a dotted
// path continuation, which flattens into a singleton nested map, or
// '=' followed by the value.
func (d *Deserializer) value(v Visitor) error {
	if d.p.PeekNoSkip().Tok.Kind == token.Dot {
		d.p.NextNoSkip()
		return d.pathValue(v)
	}
	if err := d.p.MapDelimiter(); err != nil {
		return parseErr(err)
	}
	return d.Any(v)
}

// pathValue presents the remainder of a dotted path as a one-entry map.
func (d *Deserializer) pathValue(v Visitor) error {
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()
	return v.Map(&pathAccess{d: d})
}

type seqAccess struct {
	d *Deserializer
}

func (a *seqAccess) Next(v Visitor) (bool, error) {
	if a.d.p.TryEndList() {
		return false, nil
	}
	if err := a.d.Any(v); err != nil {
		return false, err
	}
	return true, nil
}

type mapAccess struct {
	d *Deserializer
}

func (a *mapAccess) NextKey() (string, bool, error) {
	if a.d.p.TryEndMap() {
		return "", false, nil
	}
	key, err := a.d.adjacentKey()
	if err != nil {
		return "", false, err
	}
	return key, true, nil
}

func (a *mapAccess) NextValue(v Visitor) error {
	return a.d.value(v)
}

// pathAccess — одноэлементная карта, синтезированная из хвоста
// точечного пути: `a.b.c = 1` видна как {a = {b = {c = 1}}}.
type pathAccess struct {
	d    *Deserializer
	done bool
}

func (a *pathAccess) NextKey() (string, bool, error) {
	if a.done {
		return "", false, nil
	}
	// сегмент обязан примыкать к '.': пробел разрывает путь
	key, err := a.d.adjacentKey()
	if err != nil {
		return "", false, err
	}
	return key, true, nil
}

func (a *pathAccess) NextValue(v Visitor) error {
	a.done = true
	return a.d.value(v)
}

type topAccess struct {
	d *Deserializer
}

func (a *topAccess) NextKey() (string, bool, error) {
	if a.d.p.PeekEOF() {
		return "", false, nil
	}
	key, err := a.d.adjacentKey()
	if err != nil {
		return "", false, err
	}
	return key, true, nil
}

func (a *topAccess) NextValue(v Visitor) error {
	return a.d.value(v)
}
