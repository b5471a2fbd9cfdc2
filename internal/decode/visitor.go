package decode

// Visitor строит значение из того, что встретилось во входе. Один
// вызов на значение; для контейнеров Deserializer передаёт access,
// через который Visitor вытягивает элементы.
type Visitor interface {
	Null() error
	Bool(v bool) error
	Int(v int64) error
	Uint(v uint64) error
	Float(v float64) error
	Str(v string) error
	Seq(a SeqAccess) error
	Map(a MapAccess) error
}

// SeqAccess hands list elements to a visitor one at a time.
type SeqAccess interface {
	// Next decodes the next element into v. It reports false once the
	// closing ']' has been consumed.
	Next(v Visitor) (bool, error)
}

// MapAccess hands map entries to a visitor one at a time. NextValue
// must follow every successful NextKey.
type MapAccess interface {
	// NextKey reports false once the map has ended.
	NextKey() (string, bool, error)
	NextValue(v Visitor) error
}

// EnumVisitor receives the single variant of an enum value.
type EnumVisitor interface {
	Variant(name string, va VariantAccess) error
}

// VariantAccess decodes the payload of an enum variant. Exactly one
// method must be called, matching the variant's shape.
type VariantAccess interface {
	// Unit consumes a null payload.
	Unit() error
	// Newtype decodes a single payload value.
	Newtype(v Visitor) error
	// Tuple decodes a list payload.
	Tuple(v Visitor) error
	// Struct decodes a map payload.
	Struct(v Visitor) error
}
