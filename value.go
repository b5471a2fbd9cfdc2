package ycf

import (
	"bytes"

	"github.com/Yurihaia/ycf/internal/decode"
	"github.com/Yurihaia/ycf/internal/encode"
)

// Kind discriminates the variants of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindUint
	KindInt
	KindFloat
	KindString
	KindList
	KindMap
)

// Value — нетипизированное дерево документа. Целые без знака и со
// знаком различаются: токен без '-' даёт KindUint, с '-' — KindInt.
// Повторные ключи карты затирают предыдущие.
type Value struct {
	Kind  Kind
	Bool  bool
	Uint  uint64
	Int   int64
	Float float64
	Str   string
	List  []Value
	Map   map[string]Value
}

// ParseValue decodes a whole document into a Value of KindMap.
func ParseValue(data []byte) (*Value, error) {
	d := decode.New(fileFor(data))
	var v Value
	if err := d.Document(&valueVisitor{out: &v}); err != nil {
		return nil, err
	}
	return &v, nil
}

// Get returns the entry under key, or a null Value when absent.
func (v *Value) Get(key string) Value {
	if v.Kind == KindMap {
		if e, ok := v.Map[key]; ok {
			return e
		}
	}
	return Value{}
}

// Lookup walks a dotted path through nested maps.
func (v *Value) Lookup(path ...string) (Value, bool) {
	cur := *v
	for _, key := range path {
		if cur.Kind != KindMap {
			return Value{}, false
		}
		e, ok := cur.Map[key]
		if !ok {
			return Value{}, false
		}
		cur = e
	}
	return cur, true
}

// Interface converts the value to plain Go data: nil, bool, uint64,
// int64, float64, string, []any, or map[string]any.
func (v *Value) Interface() any {
	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindUint:
		return v.Uint
	case KindInt:
		return v.Int
	case KindFloat:
		return v.Float
	case KindString:
		return v.Str
	case KindList:
		out := make([]any, len(v.List))
		for i := range v.List {
			out[i] = v.List[i].Interface()
		}
		return out
	case KindMap:
		out := make(map[string]any, len(v.Map))
		for k := range v.Map {
			entry := v.Map[k]
			out[k] = entry.Interface()
		}
		return out
	default:
		return nil
	}
}

// Marshal renders the value back to document text. A KindMap value at
// the top level becomes a bare document without braces.
func (v *Value) Marshal(indent string) ([]byte, error) {
	var buf bytes.Buffer
	e := encode.NewEncoder(&buf)
	if indent != "" {
		e.SetIndent(indent)
	}
	if v.Kind == KindMap {
		if err := encodeValueEntries(e, v); err != nil {
			return nil, err
		}
	} else if err := v.encodeTo(e); err != nil {
		return nil, err
	}
	if err := e.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v *Value) encodeTo(e *encode.Encoder) error {
	switch v.Kind {
	case KindNull:
		return e.Null()
	case KindBool:
		return e.Bool(v.Bool)
	case KindUint:
		return e.Uint(v.Uint)
	case KindInt:
		return e.Int(v.Int)
	case KindFloat:
		return e.Float(v.Float)
	case KindString:
		return e.Str(v.Str)
	case KindList:
		if err := e.BeginList(); err != nil {
			return err
		}
		for i := range v.List {
			if err := v.List[i].encodeTo(e); err != nil {
				return err
			}
		}
		return e.EndList()
	default:
		if err := e.BeginMap(); err != nil {
			return err
		}
		for _, key := range sortedKeys(v.Map) {
			entry := v.Map[key]
			if err := e.Key(key); err != nil {
				return err
			}
			if err := entry.encodeTo(e); err != nil {
				return err
			}
		}
		return e.EndMap()
	}
}

// valueVisitor реализует decode.Visitor поверх Value.
type valueVisitor struct {
	out *Value
}

func (v *valueVisitor) Null() error         { *v.out = Value{}; return nil }
func (v *valueVisitor) Bool(b bool) error   { *v.out = Value{Kind: KindBool, Bool: b}; return nil }
func (v *valueVisitor) Int(n int64) error   { *v.out = Value{Kind: KindInt, Int: n}; return nil }
func (v *valueVisitor) Uint(n uint64) error { *v.out = Value{Kind: KindUint, Uint: n}; return nil }
func (v *valueVisitor) Float(f float64) error {
	*v.out = Value{Kind: KindFloat, Float: f}
	return nil
}
func (v *valueVisitor) Str(s string) error { *v.out = Value{Kind: KindString, Str: s}; return nil }

func (v *valueVisitor) Seq(a decode.SeqAccess) error {
	list := []Value{}
	for {
		var elem Value
		ok, err := a.Next(&valueVisitor{out: &elem})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		list = append(list, elem)
	}
	*v.out = Value{Kind: KindList, List: list}
	return nil
}

func (v *valueVisitor) Map(a decode.MapAccess) error {
	m := map[string]Value{}
	for {
		key, ok, err := a.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		var entry Value
		if err := a.NextValue(&valueVisitor{out: &entry}); err != nil {
			return err
		}
		m[key] = entry
	}
	*v.out = Value{Kind: KindMap, Map: m}
	return nil
}
