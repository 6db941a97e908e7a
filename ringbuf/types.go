package ringbuf

import "errors"

var (
	// ErrBadCapacity indicates a non-positive capacity.
	ErrBadCapacity = errors.New("ringbuf: capacity must be positive")
	// ErrCapacityExceeded indicates a write to a full buffer, or initial
	// contents larger than the capacity.
	ErrCapacityExceeded = errors.New("ringbuf: capacity exceeded")
)
