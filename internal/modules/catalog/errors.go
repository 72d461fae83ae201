package catalog

import "errors"

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("vehicle not found")
	ErrForbidden  = errors.New("forbidden")
)
