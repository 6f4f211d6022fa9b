// Package pkg provides shared utilities for the tivausb TM4C123 USB
// device-mode driver.
//
// It contains common functionality used across the fifo allocator and the
// tm4c123 hardware binding:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for the USB driver error taxonomy
//   - Component identifiers for log filtering
//   - A Fatal helper for the programming errors the driver contract
//     treats as unrecoverable
//
// The package has zero external dependencies, relying only on the Go
// standard library.
//
// # Logging
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogDebug(pkg.ComponentBus, "endpoint allocated", "index", 3)
//
// # Errors
//
//	if errors.Is(err, pkg.ErrWouldBlock) {
//	    // hardware still busy with the previous packet
//	}
package pkg
