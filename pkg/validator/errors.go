package validator

import "errors"

// Sentinel errors matched by ValidationError and ValidationErrors via errors.Is.
var (
	// ErrValidationFailed matches any validation failure regardless of kind.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFieldFormat is matched when a value does not have the required shape or length.
	ErrFieldFormat = errors.New("invalid format")

	// ErrFieldRange is matched when a numeric value is outside its allowed bounds.
	ErrFieldRange = errors.New("value out of range")

	// ErrCrossFieldRule is matched when a rule spanning several fields or the whole record fails.
	ErrCrossFieldRule = errors.New("cross-field rule violated")

	// ErrCollectionSize is matched when a collection is empty or larger than allowed.
	ErrCollectionSize = errors.New("invalid collection size")
)
