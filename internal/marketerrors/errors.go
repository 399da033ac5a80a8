package marketerrors

import "errors"

// Rejection kinds surfaced to clients
var (
	ErrUnauthorized = errors.New("unauthorized access")
	ErrForbidden    = errors.New("forbidden access")
)

// input validation errors
var (
	ErrInvalidInput = errors.New("invalid input")
)
