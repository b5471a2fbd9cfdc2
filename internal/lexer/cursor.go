package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/Yurihaia/ycf/internal/source"
)

// Cursor представляет собой позицию в буфере. Он ничего не знает о
// грамматике: ReadToken выдаёт по одному токену за вызов, включая
// Whitespace и Comment.
type Cursor struct {
	file *source.File
	off  uint32
}

// NewCursor creates a new cursor over the provided file.
func NewCursor(f *source.File) *Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return &Cursor{file: f, off: 0}
}

// IsEOF проверяет, достигнут ли конец буфера.
func (c *Cursor) IsEOF() bool {
	return c.off >= uint32(len(c.file.Content))
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() uint32 {
	return c.off
}

// File returns the source file the cursor reads from.
func (c *Cursor) File() *source.File {
	return c.file
}

// peek читает текущий байт, если есть, иначе возвращает 0.
func (c *Cursor) peek() byte {
	if c.IsEOF() {
		return 0
	}
	return c.file.Content[c.off]
}

// peek2 читает текущий и следующий байт, если есть.
func (c *Cursor) peek2() (b0, b1 byte, ok bool) {
	if c.off+1 >= uint32(len(c.file.Content)) {
		return 0, 0, false
	}
	return c.file.Content[c.off], c.file.Content[c.off+1], true
}

// bump перемещает курсор на один байт вперед и возвращает прочитанный байт.
func (c *Cursor) bump() byte {
	if c.IsEOF() {
		return 0
	}
	b := c.file.Content[c.off]
	c.off++
	return b
}

// eat consumes the next byte if it matches the provided byte.
func (c *Cursor) eat(b byte) bool {
	if !c.IsEOF() && c.file.Content[c.off] == b {
		c.off++
		return true
	}
	return false
}

// Mark это метка, чтобы быстро получать Span читаемого фрагмента.
type Mark uint32

// Mark сохраняет текущую позицию курсора.
func (c *Cursor) Mark() Mark {
	return Mark(c.off)
}

// SpanFrom получает Span для фрагмента, начиная с метки.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{
		File:  c.file.ID,
		Start: uint32(m),
		End:   c.off,
	}
}

// Reset возвращает курсор назад к метке.
func (c *Cursor) Reset(m Mark) {
	c.off = uint32(m)
}

// TokenSrc re-slices the owning buffer by the token's span. The token
// must have come from this cursor's file.
func (c *Cursor) TokenSrc(sp source.Span) []byte {
	return c.file.Content[sp.Start:sp.End]
}
