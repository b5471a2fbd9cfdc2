package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addLanguageSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.ycf файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if filepath.Ext(path) != ".ycf" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

// addLanguageSeeds covers every syntactic form of the language directly.
func addLanguageSeeds(f *testing.F) {
	seeds := []string{
		"",
		"a = 1",
		"a = -1 b = 0xFF c = 0b1010 d = 0o77",
		"x = 1_000_000",
		"pi = 3.14 e = 2.71e-3 big = 1e10",
		"on = true off = false nothing = null",
		"s = \"hello\\nworld\" t = \"\\u{1F600}\" u = \"\\x7F\"",
		"m = { a = 1 b = { c = 2 } }",
		"l = [ 1 2 3 [ 4 ] ]",
		"server.port = 8080 server.host = \"local\"",
		"// comment\na = 1 // trailing\n",
		"variant = { Point = { x = 1 y = 2 } }",
		"empty_m = {} empty_l = []",
		"\"unterminated",
		"bad = \\q",
		"deep = { a = { b = { c = { d = [ [ [ 1 ] ] ] } } } }",
		"dup = 1 dup = 2",
		"юникод = \"значение\"",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
