package diagfmt_test

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"github.com/Yurihaia/ycf/internal/diagfmt"
	"github.com/Yurihaia/ycf/internal/parser"
	"github.com/Yurihaia/ycf/internal/source"
)

func parseError(t *testing.T, input string) (*source.File, *parser.ParseError) {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("test.ycf", []byte(input)))
	p := parser.New(f)
	if _, err := p.ParsePath(); err != nil {
		return f, err
	}
	if err := p.MapDelimiter(); err != nil {
		return f, err
	}
	_, err := p.ParseBool()
	if err == nil {
		t.Fatal("expected a parse error")
	}
	return f, err
}

func TestPrettyHeaderAndCaret(t *testing.T) {
	f, perr := parseError(t, "x = }\n")
	var b strings.Builder
	diagfmt.Pretty(&b, f, perr, diagfmt.PrettyOpts{})
	got := b.String()

	want := "test.ycf:0:4: error: Expected a bool, found '}'\n" +
		"  x = }\n" +
		"      ^\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestPrettyCaretAfterWideRunes(t *testing.T) {
	// ключ из кириллицы: байтовая колонка больше видимой
	f, perr := parseError(t, "имя = }\n")
	var b strings.Builder
	diagfmt.Pretty(&b, f, perr, diagfmt.PrettyOpts{})
	lines := strings.Split(b.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("short output: %q", b.String())
	}
	caret := strings.Index(lines[2], "^")
	context := strings.Index(lines[1], "}")
	// каретка должна стоять под '}' по видимым колонкам, не по байтам
	if runewidth.StringWidth(lines[2][:caret]) != runewidth.StringWidth(lines[1][:context]) {
		t.Errorf("caret misaligned:\n%s", b.String())
	}
}

func TestPrettyBasenamePathMode(t *testing.T) {
	f, perr := parseError(t, "x = }\n")
	f.Path = "some/dir/test.ycf"
	var b strings.Builder
	diagfmt.Pretty(&b, f, perr, diagfmt.PrettyOpts{PathMode: diagfmt.PathModeBasename})
	if !strings.HasPrefix(b.String(), "test.ycf:") {
		t.Errorf("got %q", b.String())
	}
}
