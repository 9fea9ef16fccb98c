package classify

import "errors"

var (
	// ErrInvalidLadder is returned when thresholds are not strictly increasing
	// or the label count is not one more than the threshold count.
	ErrInvalidLadder = errors.New("invalid threshold ladder")

	// ErrInvalidMeasurement is returned for non-positive or non-finite
	// measurements and for an index that overflows.
	ErrInvalidMeasurement = errors.New("invalid measurement")
)
