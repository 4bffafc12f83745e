package bip

// Describes basic types and constants shared by the loader, the
// preprocessor and the enumerator.

import "errors"

const (
	// MaxCols is the maximum number of variables. This is the hard
	// limit of the design: a solution vector must fit a single 32-bit
	// word.
	MaxCols = 32
	// MaxRows is the maximum number of constraints. Unlike MaxCols it
	// is only a memory and performance budget.
	MaxRows = 128
)

// A Sense is the relational operator of a constraint row.
type Sense byte

const (
	// LE is a "less than or equal" constraint.
	LE = Sense(iota)
	// GE is a "greater than or equal" constraint.
	GE
	// EQ is an equality constraint.
	EQ
)

func (s Sense) String() string {
	switch s {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "=="
	default:
		panic("invalid sense")
	}
}

// Errors detected while loading or preprocessing a problem. They are
// returned wrapped with line or row context, so they should be tested
// with errors.Is. Once a problem passes preprocessing, enumeration
// cannot fail.
var (
	// ErrFormat means a line had the wrong number of fields or an
	// unrecognized sense token.
	ErrFormat = errors.New("invalid format")
	// ErrRange means a numeric token was not finite, not integral
	// where an integer was expected, or out of bounds.
	ErrRange = errors.New("value out of range")
	// ErrOverflow means the coefficients of a row could overflow the
	// representable range when summed up during enumeration.
	ErrOverflow = errors.New("numerical overflow")
	// ErrUnexpectedEOF means the input ended before the declared
	// number of constraint rows was read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)
