package fractal

import "errors"

var (
	// ErrInvalidArgument reports parameters outside a routine's contract.
	ErrInvalidArgument = errors.New("fractal: invalid argument")
	// ErrBudgetExceeded reports that a drawing hit its call ceiling.
	ErrBudgetExceeded = errors.New("fractal: call budget exceeded")
)
