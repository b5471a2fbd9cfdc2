package driver

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/Yurihaia/ycf/internal/format"
	"github.com/Yurihaia/ycf/internal/token"
)

func writeTemp(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestTokenize(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.ycf", "a = 1 // c")

	res, err := Tokenize(path)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	var kinds []token.Kind
	for _, st := range res.Tokens {
		kinds = append(kinds, st.Tok.Kind)
	}
	want := []token.Kind{
		token.Ident, token.Whitespace, token.Equal, token.Whitespace,
		token.Int, token.Whitespace, token.Comment, token.EOF,
	}
	if len(kinds) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(kinds), len(want), kinds)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: got %v, want %v", i, kinds[i], k)
		}
	}
}

func TestCheckFile(t *testing.T) {
	dir := t.TempDir()
	good := writeTemp(t, dir, "good.ycf", "port = 8080\n")
	bad := writeTemp(t, dir, "bad.ycf", "port = }\n")

	res, err := CheckFile(good, 0)
	if err != nil {
		t.Fatalf("CheckFile(good): %v", err)
	}
	if res.ParseErr != nil {
		t.Fatalf("good file reported parse error: %v", res.ParseErr)
	}

	res, err = CheckFile(bad, 0)
	if err != nil {
		t.Fatalf("CheckFile(bad): %v", err)
	}
	if res.ParseErr == nil {
		t.Fatal("bad file reported no parse error")
	}
	if res.ParseErr.Token.Line != 0 || res.ParseErr.Token.Col != 7 {
		t.Errorf("error position = %d:%d, want 0:7",
			res.ParseErr.Token.Line, res.ParseErr.Token.Col)
	}
}

func TestCheckDir(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "a.ycf", "a = 1\n")
	writeTemp(t, dir, "b.ycf", "b = }\n")
	writeTemp(t, dir, "skip.txt", "not a document")

	results, err := CheckDir(context.Background(), dir, 2, 0)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	// listYCFFiles сортирует: a.ycf, b.ycf
	if results[0].ParseErr != nil {
		t.Errorf("a.ycf: unexpected parse error: %v", results[0].ParseErr)
	}
	if results[1].ParseErr == nil {
		t.Error("b.ycf: expected a parse error")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	results, err := CheckDir(context.Background(), t.TempDir(), 0, 0)
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if results != nil {
		t.Fatalf("got %d results, want none", len(results))
	}
}

func TestFormatFileWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.ycf", "m={a=1}\n")

	res, err := FormatFile(path, format.Options{}, true)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if !res.Changed {
		t.Fatal("expected Changed")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "m = {\n  a = 1\n}\n"
	if string(got) != want {
		t.Errorf("rewritten file = %q, want %q", got, want)
	}

	// Повторный прогон ничего не меняет
	res, err = FormatFile(path, format.Options{}, true)
	if err != nil {
		t.Fatalf("FormatFile (second): %v", err)
	}
	if res.Changed {
		t.Error("second run reported Changed")
	}
}

func TestFormatFileParseError(t *testing.T) {
	dir := t.TempDir()
	const src = "a = }\n"
	path := writeTemp(t, dir, "a.ycf", src)

	res, err := FormatFile(path, format.Options{}, true)
	if err != nil {
		t.Fatalf("FormatFile: %v", err)
	}
	if res.ParseErr == nil {
		t.Fatal("expected parse error")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != src {
		t.Errorf("broken file was modified: %q", got)
	}
}

func TestFormatDir(t *testing.T) {
	dir := t.TempDir()
	writeTemp(t, dir, "a.ycf", "a=1\n")
	writeTemp(t, dir, "b.ycf", "b = 2\n")

	results, err := FormatDir(context.Background(), dir, 0, format.Options{}, false)
	if err != nil {
		t.Fatalf("FormatDir: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].Changed {
		t.Error("a.ycf: expected Changed")
	}
	if results[1].Changed {
		t.Error("b.ycf: already normalized, got Changed")
	}
}

func TestConvertJSON(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.ycf", "name = \"demo\" port = 8080\n")

	out, err := Convert(path, ConvertJSON)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if got["name"] != "demo" {
		t.Errorf("name = %v, want demo", got["name"])
	}
	if got["port"] != float64(8080) {
		t.Errorf("port = %v, want 8080", got["port"])
	}
}

func TestConvertMsgpack(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.ycf", "on = true\n")

	out, err := Convert(path, ConvertMsgpack)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty msgpack output")
	}
}

func TestConvertUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	path := writeTemp(t, dir, "a.ycf", "a = 1\n")
	if _, err := Convert(path, ConvertFormat("yaml")); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
