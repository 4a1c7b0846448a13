package reporting

import "errors"

var (
	// ErrInvalidDate is returned when a date string cannot be parsed.
	ErrInvalidDate = errors.New("reporting: invalid date")
	// ErrDataIntegrity is returned when a monetary or quantity field is
	// non-finite or negative.
	ErrDataIntegrity = errors.New("reporting: data integrity")
)
