package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
)

// Pretty печатает ошибку разбора в человекочитаемом виде:
// <path>:<line>:<col>: error: <message>
// затем строка-контекст с ^~~~ под span токена-нарушителя.
// Позиции 0-indexed, как и в самой ошибке.
func Pretty(w io.Writer, f *source.File, perr *parser.ParseError, opts PrettyOpts) {
	if perr == nil {
		return
	}

	headerColor := color.New(color.Bold)
	errColor := color.New(color.FgRed, color.Bold)
	caretColor := color.New(color.FgRed)
	headerColor.DisableColor()
	errColor.DisableColor()
	caretColor.DisableColor()
	if opts.Color {
		headerColor.EnableColor()
		errColor.EnableColor()
		caretColor.EnableColor()
	}

	tok := perr.Token
	fmt.Fprintf(w, "%s: %s %s\n",
		headerColor.Sprintf("%s:%d:%d", displayPath(f.Path, opts.PathMode), tok.Line, tok.Col),
		errColor.Sprint("error:"),
		perr.Describe(),
	)

	line := f.GetLine(tok.Line + 1)
	if line == "" && tok.Line > 0 {
		return
	}

	prefix := line
	if int(tok.Col) <= len(line) {
		prefix = line[:tok.Col]
	}
	pad := runewidth.StringWidth(prefix)
	width := max(1, runewidth.StringWidth(tokenText(line, tok)))

	if opts.Width > 0 && runewidth.StringWidth(line) > opts.Width {
		line = runewidth.Truncate(line, opts.Width, "...")
	}

	fmt.Fprintf(w, "  %s\n", line)
	fmt.Fprintf(w, "  %s%s\n",
		strings.Repeat(" ", pad),
		caretColor.Sprint("^"+strings.Repeat("~", width-1)),
	)
}

// tokenText вырезает текст токена из строки контекста; EOF и токены,
// уехавшие за конец строки, дают пустой срез.
func tokenText(line string, tok parser.SpanToken) string {
	start := int(tok.Col)
	if start >= len(line) {
		return ""
	}
	end := start + int(tok.Tok.Span.Len())
	if end > len(line) {
		end = len(line)
	}
	return line[start:end]
}

func displayPath(path string, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		return path
	}
}
