package parser

import (
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/Yurihaia/ycf/internal/token"
)

// Unsigned are the integer targets ParseUint can narrow to.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Signed are the integer targets ParseInt can narrow to.
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Float are the targets ParseFloat can produce.
type Float interface {
	~float32 | ~float64
}

// ParseUint consumes an unsigned integer token and narrows it to T.
// Знаковый токен сюда не подходит: даже "-0" — это ExpectedInteger.
func ParseUint[T Unsigned](p *Parser) (T, *ParseError) {
	st := p.NextToken()
	if st.Tok.Kind != token.Int || st.Tok.Sign {
		return 0, newIntegerError(st, false)
	}
	mag, perr := p.parseMagnitude(st)
	if perr != nil {
		return 0, perr
	}
	v, err := safecast.Conv[T](mag)
	if err != nil {
		return 0, newError(st, InvalidInteger)
	}
	return v, nil
}

// ParseInt consumes an integer token (with optional sign) and narrows
// it to T.
func ParseInt[T Signed](p *Parser) (T, *ParseError) {
	st := p.NextToken()
	if st.Tok.Kind != token.Int {
		return 0, newIntegerError(st, true)
	}
	mag, perr := p.parseMagnitude(st)
	if perr != nil {
		return 0, perr
	}

	var wide int64
	if st.Tok.Sign {
		// модуль читается как uint64 и оборачивается; двойная обёртка
		// (результат > 0) значит underflow. Так проходит ровно
		// -9223372036854775808 и не проходит ничего ниже.
		wide = -int64(mag)
		if wide > 0 {
			return 0, newError(st, InvalidInteger)
		}
	} else {
		v, err := safecast.Conv[int64](mag)
		if err != nil {
			return 0, newError(st, InvalidInteger)
		}
		wide = v
	}

	v, err := safecast.Conv[T](wide)
	if err != nil {
		return 0, newError(st, InvalidInteger)
	}
	return v, nil
}

// ParseFloat consumes a float token.
func ParseFloat[T Float](p *Parser) (T, *ParseError) {
	st := p.NextToken()
	if st.Tok.Kind != token.Float {
		return 0, newError(st, ExpectedFloat)
	}
	bits := 64
	if _, is32 := any(T(0)).(float32); is32 {
		bits = 32
	}
	v, err := strconv.ParseFloat(p.Src(st.Tok), bits)
	if err != nil {
		return 0, newError(st, InvalidFloat)
	}
	return T(v), nil
}

// parseMagnitude reads the digit span of an integer token as a uint64.
func (p *Parser) parseMagnitude(st SpanToken) (uint64, *ParseError) {
	src := p.Src(st.Tok)
	off := int(st.Tok.Base.DigitOffset())
	if st.Tok.Sign {
		off++
	}
	digits := src[off:]
	// лексер допускает '_' как разделитель; strconv с явной базой нет
	if strings.IndexByte(digits, '_') >= 0 {
		digits = strings.ReplaceAll(digits, "_", "")
	}
	mag, err := strconv.ParseUint(digits, st.Tok.Base.Radix(), 64)
	if err != nil {
		return 0, newError(st, InvalidInteger)
	}
	return mag, nil
}

// TryParseUint peeks for an unsigned integer token before committing.
func TryParseUint[T Unsigned](p *Parser) (T, bool, *ParseError) {
	pk := p.PeekToken().Tok
	if pk.Kind != token.Int || pk.Sign {
		return 0, false, nil
	}
	v, err := ParseUint[T](p)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// TryParseInt peeks for an integer token before committing.
func TryParseInt[T Signed](p *Parser) (T, bool, *ParseError) {
	if p.PeekToken().Tok.Kind != token.Int {
		return 0, false, nil
	}
	v, err := ParseInt[T](p)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// TryParseFloat peeks for a float token before committing.
func TryParseFloat[T Float](p *Parser) (T, bool, *ParseError) {
	if p.PeekToken().Tok.Kind != token.Float {
		return 0, false, nil
	}
	v, err := ParseFloat[T](p)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
