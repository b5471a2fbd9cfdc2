package ycf

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/Yurihaia/ycf/internal/decode"
)

func unmarshalTarget(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, fmt.Errorf("ycf: unmarshal target must be a non-nil pointer, got %T", v)
	}
	return rv.Elem(), nil
}

// reflectVisitor реализует decode.Visitor поверх reflect. Указатели
// разыменовываются с аллокацией по пути; null обнуляет цель, поэтому
// указатель ведёт себя как optional.
type reflectVisitor struct {
	target reflect.Value
}

// settable разворачивает указатели, аллоцируя nil по пути.
func (v *reflectVisitor) settable() reflect.Value {
	t := v.target
	for t.Kind() == reflect.Pointer {
		if t.IsNil() {
			t.Set(reflect.New(t.Type().Elem()))
		}
		t = t.Elem()
	}
	return t
}

func mismatch(what string, t reflect.Value) error {
	return decode.Errorf("ycf: cannot unmarshal %s into %s", what, t.Type())
}

func (v *reflectVisitor) Null() error {
	v.target.SetZero()
	return nil
}

func (v *reflectVisitor) Bool(b bool) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.Bool:
		t.SetBool(b)
	case reflect.Interface:
		return v.assignAny(t, b)
	default:
		return mismatch("a bool", t)
	}
	return nil
}

func (v *reflectVisitor) Int(n int64) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if t.OverflowInt(n) {
			return decode.Errorf("ycf: %d overflows %s", n, t.Type())
		}
		t.SetInt(n)
	case reflect.Interface:
		return v.assignAny(t, n)
	default:
		return mismatch("an integer", t)
	}
	return nil
}

func (v *reflectVisitor) Uint(n uint64) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if t.OverflowUint(n) {
			return decode.Errorf("ycf: %d overflows %s", n, t.Type())
		}
		t.SetUint(n)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n > math.MaxInt64 || t.OverflowInt(int64(n)) {
			return decode.Errorf("ycf: %d overflows %s", n, t.Type())
		}
		t.SetInt(int64(n))
	case reflect.Interface:
		return v.assignAny(t, n)
	default:
		return mismatch("an integer", t)
	}
	return nil
}

func (v *reflectVisitor) Float(f float64) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.Float32, reflect.Float64:
		if t.OverflowFloat(f) {
			return decode.Errorf("ycf: %g overflows %s", f, t.Type())
		}
		t.SetFloat(f)
	case reflect.Interface:
		return v.assignAny(t, f)
	default:
		return mismatch("a float", t)
	}
	return nil
}

func (v *reflectVisitor) Str(s string) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.String:
		t.SetString(s)
	case reflect.Interface:
		return v.assignAny(t, s)
	default:
		return mismatch("a string", t)
	}
	return nil
}

func (v *reflectVisitor) assignAny(t reflect.Value, val any) error {
	if t.NumMethod() != 0 {
		return mismatch("a value", t)
	}
	t.Set(reflect.ValueOf(val))
	return nil
}

func (v *reflectVisitor) Seq(a decode.SeqAccess) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.Slice:
		return seqInto(a, t)
	case reflect.Array:
		return seqIntoArray(a, t)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return mismatch("a list", t)
		}
		s := reflect.New(reflect.TypeOf([]any{})).Elem()
		if err := seqInto(a, s); err != nil {
			return err
		}
		t.Set(s)
		return nil
	default:
		return mismatch("a list", t)
	}
}

func seqInto(a decode.SeqAccess, t reflect.Value) error {
	slice := reflect.MakeSlice(t.Type(), 0, 4)
	for {
		elem := reflect.New(t.Type().Elem()).Elem()
		ok, err := a.Next(&reflectVisitor{target: elem})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		slice = reflect.Append(slice, elem)
	}
	t.Set(slice)
	return nil
}

func seqIntoArray(a decode.SeqAccess, t reflect.Value) error {
	i := 0
	for {
		elem := reflect.New(t.Type().Elem()).Elem()
		ok, err := a.Next(&reflectVisitor{target: elem})
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		if i >= t.Len() {
			return decode.Errorf("ycf: list does not fit in %s", t.Type())
		}
		t.Index(i).Set(elem)
		i++
	}
	for ; i < t.Len(); i++ {
		t.Index(i).SetZero()
	}
	return nil
}

func (v *reflectVisitor) Map(a decode.MapAccess) error {
	t := v.settable()
	switch t.Kind() {
	case reflect.Struct:
		return mapIntoStruct(a, t)
	case reflect.Map:
		return mapIntoMap(a, t)
	case reflect.Interface:
		if t.NumMethod() != 0 {
			return mismatch("a map", t)
		}
		m := reflect.New(reflect.TypeOf(map[string]any{})).Elem()
		if err := mapIntoMap(a, m); err != nil {
			return err
		}
		t.Set(m)
		return nil
	default:
		return mismatch("a map", t)
	}
}

func mapIntoMap(a decode.MapAccess, t reflect.Value) error {
	if t.Type().Key().Kind() != reflect.String {
		return decode.Errorf("ycf: map keys must be strings, not %s", t.Type().Key())
	}
	m := reflect.MakeMap(t.Type())
	for {
		key, ok, err := a.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		val := reflect.New(t.Type().Elem()).Elem()
		if err := a.NextValue(&reflectVisitor{target: val}); err != nil {
			return err
		}
		m.SetMapIndex(reflect.ValueOf(key).Convert(t.Type().Key()), val)
	}
	t.Set(m)
	return nil
}

func mapIntoStruct(a decode.MapAccess, t reflect.Value) error {
	// каждое декодирование строит значение заново: повторный ключ
	// замещает предыдущее целиком, слияния нет
	t.SetZero()
	for {
		key, ok, err := a.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		field, found := lookupField(t, key)
		if !found {
			// незнакомые ключи молча пропускаются
			if err := a.NextValue(decode.Discard); err != nil {
				return err
			}
			continue
		}
		if err := a.NextValue(&reflectVisitor{target: field}); err != nil {
			return err
		}
	}
}

// lookupField matches a document key to a struct field: `ycf` tag
// first, then exact name, then a case-insensitive fallback.
func lookupField(t reflect.Value, key string) (reflect.Value, bool) {
	typ := t.Type()
	fold := -1
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("ycf"), ",")
		if tag == "-" {
			continue
		}
		if tag != "" {
			if tag == key {
				return t.Field(i), true
			}
			continue
		}
		if f.Name == key {
			return t.Field(i), true
		}
		if fold < 0 && strings.EqualFold(f.Name, key) {
			fold = i
		}
	}
	if fold >= 0 {
		return t.Field(fold), true
	}
	return reflect.Value{}, false
}
