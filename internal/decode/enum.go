package decode

// Enum decodes an enum value: either a bare string naming a unit
// variant, or a single-entry map `{ variant = payload }` whose payload
// shape is picked by the EnumVisitor through the VariantAccess.
func (d *Deserializer) Enum(ev EnumVisitor) error {
	name, ok, perr := d.p.TryParseString()
	if perr != nil {
		return parseErr(perr)
	}
	if ok {
		return ev.Variant(name, stringVariant{})
	}

	if !d.p.TryStartMap() {
		return Errorf("expected an enum")
	}
	if err := d.enter(); err != nil {
		return err
	}
	defer d.leave()

	// нормализуем lookahead за trivia перед строгим чтением ключа
	d.p.PeekToken()
	name, err := d.adjacentKey()
	if err != nil {
		return err
	}
	if err := ev.Variant(name, &variantAccess{d: d}); err != nil {
		return err
	}
	if perr := d.p.EndMap(); perr != nil {
		return parseErr(perr)
	}
	return nil
}

// stringVariant backs a bare-string unit variant: it has no payload.
type stringVariant struct{}

func (stringVariant) Unit() error { return nil }

func (stringVariant) Newtype(Visitor) error {
	return Errorf("a bare string variant has no payload")
}

func (stringVariant) Tuple(Visitor) error {
	return Errorf("a bare string variant has no payload")
}

func (stringVariant) Struct(Visitor) error {
	return Errorf("a bare string variant has no payload")
}

// variantAccess decodes the payload after the variant key.
type variantAccess struct {
	d *Deserializer
}

func (a *variantAccess) Unit() error {
	if err := a.d.p.MapDelimiter(); err != nil {
		return parseErr(err)
	}
	if err := a.d.p.ParseNull(); err != nil {
		return parseErr(err)
	}
	return nil
}

func (a *variantAccess) Newtype(v Visitor) error {
	if err := a.d.p.MapDelimiter(); err != nil {
		return parseErr(err)
	}
	return a.d.Any(v)
}

func (a *variantAccess) Tuple(v Visitor) error {
	if err := a.d.p.MapDelimiter(); err != nil {
		return parseErr(err)
	}
	return a.d.Seq(v)
}

func (a *variantAccess) Struct(v Visitor) error {
	if err := a.d.p.MapDelimiter(); err != nil {
		return parseErr(err)
	}
	return a.d.Map(v)
}
