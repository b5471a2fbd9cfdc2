package encode_test

import (
	"strings"
	"testing"

	"github.com/Yurihaia/ycf/internal/encode"
)

func compactEncoder() (*encode.Encoder, *strings.Builder) {
	var b strings.Builder
	return encode.NewEncoder(&b), &b
}

func TestScalars(t *testing.T) {
	tests := []struct {
		name string
		emit func(e *encode.Encoder) error
		want string
	}{
		{"null", func(e *encode.Encoder) error { return e.Null() }, "null"},
		{"true", func(e *encode.Encoder) error { return e.Bool(true) }, "true"},
		{"uint", func(e *encode.Encoder) error { return e.Uint(42) }, "42"},
		{"int", func(e *encode.Encoder) error { return e.Int(-42) }, "-42"},
		{"float", func(e *encode.Encoder) error { return e.Float(2.5) }, "2.5"},
		{"whole float keeps a dot", func(e *encode.Encoder) error { return e.Float(3) }, "3.0"},
		{"exponent float", func(e *encode.Encoder) error { return e.Float(1e21) }, "1e+21"},
		{"string", func(e *encode.Encoder) error { return e.Str("hi") }, `"hi"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, b := compactEncoder()
			if err := tt.emit(e); err != nil {
				t.Fatal(err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStringEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a\nb", `"a\nb"`},
		{"tab\t", `"tab\t"`},
		{`q"q`, `"q\"q"`},
		{`back\slash`, `"back\\slash"`},
		{"nul\x00", `"nul\0"`},
		{"\x01", `"\u{1}"`},
		{"\x7f", `"\u{7F}"`},
		{"кириллица", `"кириллица"`},
	}
	for _, tt := range tests {
		e, b := compactEncoder()
		if err := e.Str(tt.in); err != nil {
			t.Fatal(err)
		}
		if got := b.String(); got != tt.want {
			t.Errorf("%q: got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFloatWithoutLiteralForm(t *testing.T) {
	e, _ := compactEncoder()
	if err := e.Float(0); err != nil {
		t.Fatal(err)
	}
	// после NaN кодировщик залипает в ошибке
	var nan = 0.0
	nan = nan / nan
	if err := e.Float(nan); err == nil {
		t.Fatal("expected error for NaN")
	}
	if err := e.Null(); err == nil {
		t.Fatal("expected sticky error")
	}
}

func TestCompactDocument(t *testing.T) {
	e, b := compactEncoder()
	e.Key("name")
	e.Str("demo")
	e.Key("tags")
	e.BeginList()
	e.Uint(1)
	e.Uint(2)
	e.EndList()
	e.Key("server")
	e.BeginMap()
	e.Key("port")
	e.Uint(8080)
	e.EndMap()
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	want := `name = "demo" tags = [ 1 2 ] server = { port = 8080 }`
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestPrettyDocument(t *testing.T) {
	var b strings.Builder
	e := encode.NewEncoder(&b)
	e.SetIndent("  ")
	e.Key("server")
	e.BeginMap()
	e.Key("port")
	e.Uint(8080)
	e.Key("hosts")
	e.BeginList()
	e.Str("a")
	e.Str("b")
	e.EndList()
	e.EndMap()
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	want := "server = {\n  port = 8080\n  hosts = [\n    \"a\"\n    \"b\"\n  ]\n}\n"
	if got := b.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEmptyContainers(t *testing.T) {
	e, b := compactEncoder()
	e.Key("m")
	e.BeginMap()
	e.EndMap()
	e.Key("l")
	e.BeginList()
	e.EndList()
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "m = {} l = []"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestDottedKey(t *testing.T) {
	e, b := compactEncoder()
	e.Key("a.b.c")
	e.Uint(1)
	if err := e.Close(); err != nil {
		t.Fatal(err)
	}
	if got, want := b.String(), "a.b.c = 1"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestInvalidKeys(t *testing.T) {
	for _, key := range []string{"", "1x", "a b", "true", "a..b", "-x"} {
		e, _ := compactEncoder()
		if err := e.Key(key); err == nil {
			t.Errorf("expected rejection of key %q", key)
		}
	}
}

func TestKeyInsideList(t *testing.T) {
	e, _ := compactEncoder()
	e.BeginList()
	if err := e.Key("x"); err == nil {
		t.Fatal("expected error for key inside list")
	}
}

func TestUnclosedContainer(t *testing.T) {
	e, _ := compactEncoder()
	e.Key("x")
	e.BeginMap()
	if err := e.Close(); err == nil {
		t.Fatal("expected error for unclosed map")
	}
}

func TestMismatchedEnd(t *testing.T) {
	e, _ := compactEncoder()
	e.Key("x")
	e.BeginMap()
	if err := e.EndList(); err == nil {
		t.Fatal("expected error for ']' closing a map")
	}
}
