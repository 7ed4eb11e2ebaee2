package amortizer

import "errors"

// Errors returned by the package. They are wrapped with context, use
// errors.Is to test for them.
var (
	// ErrInvalidArgumentType is returned when a loan parameter is not a number,
	// typically a string value coming from a loosely typed source.
	ErrInvalidArgumentType = errors.New("arguments must be integer or float")
	// ErrInvalidPeriod is returned when the number of periods is not in [1, MaxPeriod].
	ErrInvalidPeriod = errors.New("period must be between 1 and 1200 months")
	// ErrInvalidInterestRate is returned when the annual rate is outside [0, 100].
	ErrInvalidInterestRate = errors.New("interest rate per year must be between 0 and 100%")
	// ErrInvalidAmount is returned when the loan amount is not a positive finite number.
	ErrInvalidAmount = errors.New("amount must be a positive number")

	// ErrUnknownMethod is returned for an amortization method outside of Annuity and Straight.
	ErrUnknownMethod = errors.New("unknown amortization method")

	// ErrExportIO is returned when an export destination cannot be written.
	ErrExportIO = errors.New("cannot write export file")
)
