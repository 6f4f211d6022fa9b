package pkg

import "errors"

// Driver error taxonomy surfaced to the upper USB class-stack (spec §7).
var (
	// ErrInvalidEndpoint indicates an operation on an endpoint that does
	// not exist, is unallocated, or is the wrong direction.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrEndpointOverflow indicates allocation failed because no free
	// slot remains in the endpoint table.
	ErrEndpointOverflow = errors.New("endpoint overflow")

	// ErrBufferOverflow indicates a write payload exceeds the endpoint's
	// maximum packet size.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrWouldBlock indicates the hardware has not finished transmitting
	// the previous packet, or has no packet ready for read.
	ErrWouldBlock = errors.New("would block")
)

// Fatal reports a programming-error contract violation: a FIFO index
// outside 0..7, a requested max-packet-size above 2048, or read/write
// attempted in a control-transfer stage that cannot support it. Per spec
// §7 these are not runtime conditions to recover from — the caller has
// violated the driver's contract, so Fatal logs and then panics.
func Fatal(component Component, msg string, args ...any) {
	LogError(component, msg, args...)
	panic(msg)
}
