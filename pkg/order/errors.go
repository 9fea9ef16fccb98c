package order

import "errors"

var (
	// ErrInvalidPolicy is returned when a Policy contradicts itself.
	ErrInvalidPolicy = errors.New("invalid order policy")

	// ErrInvalidTransition is returned when a status event does not apply to the current status.
	ErrInvalidTransition = errors.New("invalid order status transition")

	// ErrRejected wraps sink failures raised after an order was accepted.
	ErrRejected = errors.New("order rejected by sink")
)
