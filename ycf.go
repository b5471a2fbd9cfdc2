// Package ycf reads and writes a compact, human-writable configuration
// format: bare `key = value` entries at the top level, `{ }` maps with
// identifier keys, `[ ]` lists without separators, and dotted paths
// (`a.b.c = 1`) as shorthand for singleton nested maps.
package ycf

import (
	"bytes"

	"github.com/Yurihaia/ycf/internal/decode"
	"github.com/Yurihaia/ycf/internal/source"
)

func fileFor(data []byte) *source.File {
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual("input.ycf", data))
}

// Unmarshal decodes a document into v, which must be a non-nil pointer
// to a struct, map, or interface value. Struct fields are matched by
// `ycf:"name"` tags, then by field name; pointer fields act as
// optionals (null sets them to nil).
func Unmarshal(data []byte, v any) error {
	d := decode.New(fileFor(data))
	target, err := unmarshalTarget(v)
	if err != nil {
		return err
	}
	return d.Document(&reflectVisitor{target: target})
}

// Valid reports whether data is a well-formed document.
func Valid(data []byte) bool {
	return decode.New(fileFor(data)).Document(decode.Discard) == nil
}

// Marshal encodes v as a compact single-line document.
func Marshal(v any) ([]byte, error) {
	return marshal(v, "")
}

// MarshalIndent encodes v with one entry per line, nested levels
// indented with indent.
func MarshalIndent(v any, indent string) ([]byte, error) {
	return marshal(v, indent)
}

func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeDocument(&buf, v, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
