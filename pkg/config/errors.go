package config

import "errors"

var (
	// ErrParsingConfig wraps env parse failures: a missing required
	// variable or a value of the wrong type.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned by LoadEnvFiles; the implicit .env read
	// in Load never fails.
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
