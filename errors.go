package dec128

import "github.com/zeebo/errs"

var (
	// Error is the class of errors caused by invalid input, such as a
	// malformed string or an invalid bit pattern.
	Error = errs.Class("dec128")

	// OverflowError is the class of errors returned when a result cannot be
	// represented as a Decimal.
	OverflowError = errs.Class("dec128 overflow")

	// DivideByZeroError is the class of errors returned when the divisor of
	// a Quo or Rem is zero.
	DivideByZeroError = errs.Class("dec128 divide by zero")
)

var (
	ErrOverflow     = OverflowError.New("value was either too large or too small for a Decimal")
	ErrDivideByZero = DivideByZeroError.New("attempted to divide by zero")
)
