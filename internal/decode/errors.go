package decode

import (
	"fmt"

	"github.com/Yurihaia/ycf/internal/parser"
)

// Error — ошибка десериализации: либо синтаксис (ParseError), либо
// сообщение от Visitor, либо ошибка ввода-вывода.
type Error struct {
	msg   string
	parse *parser.ParseError
	io    error
}

// Errorf builds a message error, for visitors that reject a value.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

func parseErr(err *parser.ParseError) *Error {
	return &Error{parse: err}
}

// IOError wraps a read failure.
func IOError(err error) *Error {
	return &Error{io: err}
}

// ParseError returns the underlying syntax error, if this is one.
func (e *Error) ParseError() *parser.ParseError {
	return e.parse
}

func (e *Error) Error() string {
	switch {
	case e.parse != nil:
		return e.parse.Error()
	case e.io != nil:
		return e.io.Error()
	default:
		return e.msg
	}
}

func (e *Error) Unwrap() error {
	switch {
	case e.parse != nil:
		return e.parse
	case e.io != nil:
		return e.io
	default:
		return nil
	}
}
