package meeting

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("meeting not found")
	ErrForbidden  = errors.New("meeting belongs to another producer")
)
