package domain

import "errors"

// Domain errors. The calculators themselves never fail; these cover caller
// contract violations caught at the API boundary.
var (
	ErrInvalidMonth     = errors.New("month must be between 1 and 12")
	ErrInvalidFrequency = errors.New("payment frequency must be monthly or quarterly")
)
