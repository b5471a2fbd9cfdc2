package decode

// Discard is a Visitor that validates structure and drops every value.
var Discard Visitor = discardVisitor{}

type discardVisitor struct{}

func (discardVisitor) Null() error          { return nil }
func (discardVisitor) Bool(bool) error      { return nil }
func (discardVisitor) Int(int64) error      { return nil }
func (discardVisitor) Uint(uint64) error    { return nil }
func (discardVisitor) Float(float64) error  { return nil }
func (discardVisitor) Str(string) error     { return nil }

func (discardVisitor) Seq(a SeqAccess) error {
	for {
		ok, err := a.Next(Discard)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

func (discardVisitor) Map(a MapAccess) error {
	for {
		_, ok, err := a.NextKey()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := a.NextValue(Discard); err != nil {
			return err
		}
	}
}
