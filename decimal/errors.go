package decimal

import "github.com/zeebo/errs"

// Error is the class of general decimal errors.
var Error = errs.Class("decimal")

// Error classes.
var (
	ParseError           = errs.Class("parse")
	UnsupportedBaseError = errs.Class("unsupported base")
	FractionalError      = errs.Class("fractional")
	RangeError           = errs.Class("range")
)

// ErrDivisionByZero is returned by Div when the divisor is zero.
var ErrDivisionByZero = Error.New("division by zero")
