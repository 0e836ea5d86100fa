package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation (HTTP 400).
var ErrInvalid = errors.New("invalid input")

// ErrUnsupportedBloodType is returned when a blood type is not one of the eight canonical types.
var ErrUnsupportedBloodType = errors.New("unsupported blood type")

// ErrConflict indicates a uniqueness or state conflict (HTTP 409).
var ErrConflict = errors.New("conflict")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")
