package decimal

import (
	"github.com/zeebo/errs"
)

var (
	// Error is the class of errors from the stream codec wrapping
	// failures of the underlying reader, writer or control blocks.
	Error = errs.Class("decimal")

	// DivideByZero is the class of errors returned when a divisor or
	// modulus is zero.
	DivideByZero = errs.Class("divide by zero")

	// Overflow is the class of errors returned when a value does not fit
	// its destination or a float input is not finite.
	Overflow = errs.Class("overflow")

	// InvalidArgument is the class of errors returned for malformed input
	// and unsupported operands.
	InvalidArgument = errs.Class("invalid argument")
)
