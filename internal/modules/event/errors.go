package event

import "errors"

var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("event not found")
	ErrForbidden        = errors.New("event belongs to another producer")
	ErrDuplicate        = errors.New("event already exists for this couple and date")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrAlreadySigned    = errors.New("supplier has already signed")
)
