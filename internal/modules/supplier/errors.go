package supplier

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("supplier not found")
	ErrForbidden  = errors.New("supplier belongs to another producer")
)
