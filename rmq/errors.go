package rmq

import "errors"

// Sentinel errors for RMQ build and query.
var (
	// ErrBadLength is returned when a structure is built over n <= 0 positions.
	ErrBadLength = errors.New("rmq: sequence length must be positive")

	// ErrBadRange indicates a query outside 0 <= i <= j < n.
	ErrBadRange = errors.New("rmq: invalid query range")
)
