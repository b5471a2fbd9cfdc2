package token

// Base is the numeral system an integer literal is written in.
type Base uint8

const (
	// BaseDec has no prefix.
	BaseDec Base = iota
	// BaseHex is prefixed with 0x.
	BaseHex
	// BaseOct is prefixed with 0o.
	BaseOct
	// BaseBin is prefixed with 0b.
	BaseBin
)

// DigitOffset returns the number of prefix bytes to skip before the
// digits start: 0 for decimal, 2 ("0x"/"0o"/"0b") for the rest.
func (b Base) DigitOffset() uint32 {
	if b == BaseDec {
		return 0
	}
	return 2
}

// Radix returns the numeric radix of the base.
func (b Base) Radix() int {
	switch b {
	case BaseHex:
		return 16
	case BaseOct:
		return 8
	case BaseBin:
		return 2
	default:
		return 10
	}
}

func (b Base) String() string {
	switch b {
	case BaseHex:
		return "hex"
	case BaseOct:
		return "oct"
	case BaseBin:
		return "bin"
	default:
		return "dec"
	}
}
