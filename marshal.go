package ycf

import (
	"fmt"
	"io"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/Yurihaia/ycf/internal/encode"
)

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

var valueType = reflect.TypeOf(Value{})

// encodeDocument emits v as a top-level document: v must render as a
// map (struct, string-keyed map, or KindMap Value).
func encodeDocument(w io.Writer, v any, indent string) error {
	e := encode.NewEncoder(w)
	if indent != "" {
		e.SetIndent(indent)
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return fmt.Errorf("ycf: cannot marshal nil as a document")
		}
		rv = rv.Elem()
	}

	var err error
	switch {
	case rv.Type() == valueType:
		val := rv.Interface().(Value)
		if val.Kind != KindMap {
			return fmt.Errorf("ycf: a document must be a map, not kind %d", val.Kind)
		}
		err = encodeValueEntries(e, &val)
	case rv.Kind() == reflect.Struct:
		err = encodeStructEntries(e, rv)
	case rv.Kind() == reflect.Map:
		err = encodeMapEntries(e, rv)
	default:
		return fmt.Errorf("ycf: a document must be a struct or map, got %s", rv.Type())
	}
	if err != nil {
		return err
	}
	return e.Close()
}

func encodeValueEntries(e *encode.Encoder, v *Value) error {
	for _, key := range sortedKeys(v.Map) {
		entry := v.Map[key]
		if err := e.Key(key); err != nil {
			return err
		}
		if err := entry.encodeTo(e); err != nil {
			return err
		}
	}
	return nil
}

func encodeMapEntries(e *encode.Encoder, rv reflect.Value) error {
	if rv.Type().Key().Kind() != reflect.String {
		return fmt.Errorf("ycf: map keys must be strings, not %s", rv.Type().Key())
	}
	keys := make([]string, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		keys = append(keys, iter.Key().String())
	}
	slices.Sort(keys)
	for _, key := range keys {
		if err := e.Key(key); err != nil {
			return err
		}
		val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
		if err := encodeReflect(e, val); err != nil {
			return err
		}
	}
	return nil
}

func encodeStructEntries(e *encode.Encoder, rv reflect.Value) error {
	typ := rv.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, opts, _ := strings.Cut(f.Tag.Get("ycf"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = f.Name
		}
		field := rv.Field(i)
		if opts == "omitempty" && field.IsZero() {
			continue
		}
		if err := e.Key(name); err != nil {
			return err
		}
		if err := encodeReflect(e, field); err != nil {
			return err
		}
	}
	return nil
}

func encodeReflect(e *encode.Encoder, rv reflect.Value) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return e.Null()
		}
		rv = rv.Elem()
	}
	if rv.Type() == valueType {
		val := rv.Interface().(Value)
		return val.encodeTo(e)
	}

	switch rv.Kind() {
	case reflect.Bool:
		return e.Bool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return e.Int(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return e.Uint(rv.Uint())
	case reflect.Float32, reflect.Float64:
		return e.Float(rv.Float())
	case reflect.String:
		return e.Str(rv.String())
	case reflect.Slice, reflect.Array:
		if err := e.BeginList(); err != nil {
			return err
		}
		for i := 0; i < rv.Len(); i++ {
			if err := encodeReflect(e, rv.Index(i)); err != nil {
				return err
			}
		}
		return e.EndList()
	case reflect.Map:
		if err := e.BeginMap(); err != nil {
			return err
		}
		if err := encodeMapEntries(e, rv); err != nil {
			return err
		}
		return e.EndMap()
	case reflect.Struct:
		if err := e.BeginMap(); err != nil {
			return err
		}
		if err := encodeStructEntries(e, rv); err != nil {
			return err
		}
		return e.EndMap()
	default:
		return fmt.Errorf("ycf: cannot marshal %s", rv.Type())
	}
}
