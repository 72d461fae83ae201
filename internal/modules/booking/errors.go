package booking

import "errors"

var (
	ErrValidation              = errors.New("validation error")
	ErrNotAvailable            = errors.New("vehicle not available for selected dates")
	ErrOverbooking             = errors.New("overlapping booking rejected by storage")
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrNotFound                = errors.New("booking not found")
	ErrForbidden               = errors.New("forbidden")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
