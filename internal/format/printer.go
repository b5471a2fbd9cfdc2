package format

import (
	"bytes"
	"strings"

	"github.com/Yurihaia/ycf/internal/decode"
	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
	"github.com/Yurihaia/ycf/internal/token"
)

type Options struct {
	IndentWidth int
	UseTabs     bool
}

func (o Options) withDefaults() Options {
	if o.IndentWidth == 0 {
		o.IndentWidth = 2
	}
	return o
}

func (o Options) indentUnit() string {
	if o.UseTabs {
		return "\t"
	}
	return strings.Repeat(" ", o.IndentWidth)
}

// Format returns the normalized text of the file. Files that do not
// parse are returned unchanged along with the parse error.
func Format(f *source.File, opt Options) ([]byte, error) {
	if err := decode.New(f).Document(decode.Discard); err != nil {
		return f.Content, err
	}
	opt = opt.withDefaults()

	p := &printer{
		opt:  opt,
		unit: opt.indentUnit(),
	}
	p.collect(f)
	p.print()
	return p.buf.Bytes(), nil
}

type printer struct {
	opt  Options
	unit string

	toks []parser.SpanToken
	src  []string

	buf      bytes.Buffer
	depth    int
	lineOpen bool
	lastLine uint32 // source line of the previous emitted token
}

// collect собирает все нетривиальные токены плюс комментарии; пробелы
// отбрасываются, раскладку печать строит заново.
func (p *printer) collect(f *source.File) {
	ps := parser.New(f)
	for {
		st := ps.NextNoSkip()
		if st.Tok.Kind == token.EOF {
			return
		}
		if st.Tok.Kind == token.Whitespace {
			continue
		}
		p.toks = append(p.toks, st)
		p.src = append(p.src, ps.Src(st.Tok))
	}
}

func (p *printer) writeIndent(srcLine uint32) {
	if p.lineOpen {
		return
	}
	// сохраняем не более одной пустой строки между входами
	if p.buf.Len() > 0 && srcLine > p.lastLine+1 {
		p.buf.WriteByte('\n')
	}
	for i := 0; i < p.depth; i++ {
		p.buf.WriteString(p.unit)
	}
	p.lineOpen = true
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.lineOpen = false
}

// endValue closes the line after a completed value, attaching a
// trailing comment when one sits on the same source line.
func (p *printer) endValue(i int) int {
	if i+1 < len(p.toks) && p.toks[i+1].Tok.Kind == token.Comment &&
		p.toks[i+1].Line == p.toks[i].Line {
		p.buf.WriteByte(' ')
		p.buf.WriteString(strings.TrimRight(p.src[i+1], "\n"))
		p.lastLine = p.toks[i+1].Line
		i++
	}
	p.newline()
	return i
}

func (p *printer) print() {
	for i := 0; i < len(p.toks); i++ {
		st := p.toks[i]
		text := p.src[i]

		switch st.Tok.Kind {
		case token.Comment:
			p.writeIndent(st.Line)
			p.buf.WriteString(strings.TrimRight(text, "\n"))
			p.newline()

		case token.Ident:
			// ключ или сегмент точечного пути
			p.writeIndent(st.Line)
			p.buf.WriteString(text)

		case token.Dot:
			p.buf.WriteByte('.')

		case token.Equal:
			p.buf.WriteString(" = ")

		case token.LBrace, token.LBracket:
			p.writeIndent(st.Line)
			p.buf.WriteString(text)
			// пустой контейнер схлопывается в {} / []
			if i+1 < len(p.toks) && isClosing(p.toks[i+1].Tok.Kind) {
				p.buf.WriteString(p.src[i+1])
				p.lastLine = p.toks[i+1].Line
				i = p.endValue(i + 1)
				continue
			}
			p.newline()
			p.depth++

		case token.RBrace, token.RBracket:
			if p.lineOpen {
				p.newline()
			}
			p.depth--
			p.writeIndent(st.Line)
			p.buf.WriteString(text)
			p.lastLine = st.Line
			i = p.endValue(i)
			continue

		default:
			// скалярное значение: литерал или ключевое слово
			p.writeIndent(st.Line)
			p.buf.WriteString(text)
			p.lastLine = st.Line
			i = p.endValue(i)
			continue
		}
		p.lastLine = st.Line
	}
	if p.lineOpen {
		p.newline()
	}
}

func isClosing(k token.Kind) bool {
	return k == token.RBrace || k == token.RBracket
}
