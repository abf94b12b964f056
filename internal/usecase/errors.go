package usecase

import "errors"

// Sentinel errors services return so handlers can map them to HTTP codes
// with errors.Is. Wrap them with fmt.Errorf("%w: detail") for context.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("conflict")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)
