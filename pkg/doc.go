// Package pkg provides shared utilities for the usb2 packet codec.
//
// This package contains common functionality used across the packet,
// request, and descriptor layers, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error types for USB decode and protocol errors
//   - Component identifiers for log filtering
//
// The package relies only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with USB-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentPacket, "decoded token", "address", 5)
//
// The decode path itself never logs; it is a pure function of its input.
//
// # Errors
//
// Decode failures are defined as sentinel values:
//
//	if errors.Is(err, pkg.ErrCRC) {
//	    // Handle checksum mismatch
//	}
package pkg
