package locale

import "errors"

var (
	ErrMissingCode  = errors.New("locale: descriptor code is required")
	ErrInvalidEntry = errors.New("locale: entry must be a code or a descriptor")
)
