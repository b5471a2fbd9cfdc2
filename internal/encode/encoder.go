// Package encode renders values back into document text. The output
// always round-trips through the parser; layout is either a compact
// single line or one entry per line with indentation.
package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/Yurihaia/ycf/internal/lexer"
)

type frameKind uint8

const (
	frameDocument frameKind = iota
	frameMap
	frameList
)

type frame struct {
	kind  frameKind
	count int
}

// Encoder — потоковый писатель документа. Вызывающий код поставляет
// структуру (Key/Begin*/End*) и скаляры; Encoder отвечает за
// разделители, отступы и экранирование. Ошибка записи липкая: после
// первой все вызовы становятся no-op.
type Encoder struct {
	w      io.Writer
	indent string // "" means compact, single-line output
	stack  []frame
	err    error
}

// NewEncoder writes a top-level document (bare `key = value` entries)
// to w in compact form.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:     w,
		stack: []frame{{kind: frameDocument}},
	}
}

// SetIndent switches to one entry per line, nested levels indented
// with the given string.
func (e *Encoder) SetIndent(indent string) {
	e.indent = indent
}

// Err returns the first write or value error, if any.
func (e *Encoder) Err() error {
	return e.err
}

func (e *Encoder) top() *frame {
	return &e.stack[len(e.stack)-1]
}

func (e *Encoder) write(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

// sep пишет разделитель перед очередным входом текущего фрейма.
func (e *Encoder) sep() {
	f := e.top()
	defer func() { f.count++ }()

	pretty := e.indent != ""
	switch f.kind {
	case frameDocument:
		if f.count > 0 {
			if pretty {
				e.write("\n")
			} else {
				e.write(" ")
			}
		}
	default:
		if pretty {
			e.write("\n")
			e.write(strings.Repeat(e.indent, len(e.stack)-1))
		} else {
			e.write(" ")
		}
	}
}

// Key begins a map entry. The name must be a plain identifier or a
// dotted path of identifiers ("a.b.c" re-flattens a chain of singleton
// maps).
func (e *Encoder) Key(name string) error {
	if e.err != nil {
		return e.err
	}
	if e.top().kind == frameList {
		e.err = fmt.Errorf("encode: key %q inside a list", name)
		return e.err
	}
	for seg := range strings.SplitSeq(name, ".") {
		if !lexer.IsIdentifier(seg) {
			e.err = fmt.Errorf("encode: %q is not a valid map key", name)
			return e.err
		}
	}
	e.sep()
	e.write(name)
	e.write(" = ")
	return e.err
}

// sepValue writes the separator before a value unless the value is the
// right-hand side of a `key = `.
func (e *Encoder) sepValue() {
	if e.top().kind == frameList {
		e.sep()
	}
}

// Null writes a null literal.
func (e *Encoder) Null() error {
	e.sepValue()
	e.write("null")
	return e.err
}

// Bool writes a boolean literal.
func (e *Encoder) Bool(v bool) error {
	e.sepValue()
	e.write(strconv.FormatBool(v))
	return e.err
}

// Uint writes an unsigned decimal integer.
func (e *Encoder) Uint(v uint64) error {
	e.sepValue()
	e.write(strconv.FormatUint(v, 10))
	return e.err
}

// Int writes a signed decimal integer.
func (e *Encoder) Int(v int64) error {
	e.sepValue()
	e.write(strconv.FormatInt(v, 10))
	return e.err
}

// Float writes a float literal. NaN and infinities have no syntax and
// are rejected.
func (e *Encoder) Float(v float64) error {
	if e.err != nil {
		return e.err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		e.err = fmt.Errorf("encode: %v has no literal form", v)
		return e.err
	}
	e.sepValue()
	s := strconv.FormatFloat(v, 'g', -1, 64)
	// гарантируем, что литерал перечитается как float, а не как int
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	e.write(s)
	return e.err
}

// Str writes a quoted, escaped string literal.
func (e *Encoder) Str(v string) error {
	e.sepValue()
	e.write(escapeString(v))
	return e.err
}

// BeginList opens a '[' ... ']' list.
func (e *Encoder) BeginList() error {
	e.sepValue()
	e.write("[")
	e.stack = append(e.stack, frame{kind: frameList})
	return e.err
}

// EndList closes the innermost list.
func (e *Encoder) EndList() error {
	return e.end(frameList, "]")
}

// BeginMap opens a '{' ... '}' map.
func (e *Encoder) BeginMap() error {
	e.sepValue()
	e.write("{")
	e.stack = append(e.stack, frame{kind: frameMap})
	return e.err
}

// EndMap closes the innermost map.
func (e *Encoder) EndMap() error {
	return e.end(frameMap, "}")
}

func (e *Encoder) end(kind frameKind, close string) error {
	if e.err != nil {
		return e.err
	}
	f := e.top()
	if f.kind != kind || len(e.stack) == 1 {
		e.err = fmt.Errorf("encode: mismatched %s", close)
		return e.err
	}
	empty := f.count == 0
	e.stack = e.stack[:len(e.stack)-1]
	if e.indent != "" && !empty {
		e.write("\n")
		e.write(strings.Repeat(e.indent, len(e.stack)-1))
	} else if !empty {
		e.write(" ")
	}
	e.write(close)
	return e.err
}

// Close finishes the document: all containers must be closed, and
// pretty output gets a trailing newline.
func (e *Encoder) Close() error {
	if e.err != nil {
		return e.err
	}
	if len(e.stack) != 1 {
		e.err = fmt.Errorf("encode: %d unclosed containers", len(e.stack)-1)
		return e.err
	}
	if e.indent != "" && e.top().count > 0 {
		e.write("\n")
	}
	return e.err
}
