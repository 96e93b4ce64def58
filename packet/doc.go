// Package packet implements decoding and encoding of USB 2.0 link-layer
// packets (USB 2.0 Spec Chapter 8).
//
// The package operates on raw byte sequences as they appear after the
// physical layer has removed NRZI encoding and bit stuffing. It recognizes
// the packet kind from the PID byte, extracts the bit-packed fields of each
// kind, and validates the CRC5 (token) or CRC16 (data) checksum.
//
// # Decoding
//
// [Decode] is the entry point for most callers:
//
//	p, err := packet.Decode(raw)
//	if err != nil {
//	    // handle decode error
//	}
//	switch p := p.(type) {
//	case packet.TokenPacket:
//	    // p.Address, p.Endpoint
//	case packet.SOFPacket:
//	    // p.FrameNumber
//	case packet.DataPacket:
//	    // p.Payload
//	case packet.HandshakePacket:
//	    // p.PID
//	}
//
// Packet kinds form a closed set, so decoded packets are concrete value
// types dispatched by type switch rather than an open class hierarchy.
//
// # Checksum failures
//
// A checksum mismatch is reported as a [*CRCError] that still carries the
// decoded (unverified) packet, so diagnostic tooling can inspect what the
// bytes said:
//
//	p, err := packet.Decode(raw)
//	var crcErr *packet.CRCError
//	if errors.As(err, &crcErr) {
//	    // crcErr.Packet holds the unverified fields
//	}
//
// A PID byte whose check bits do not complement its type bits is rejected
// outright with [pkg.ErrInvalidPID]: without a trustworthy PID the field
// layout of the remaining bytes is unknown, so no best-effort field decode
// is attempted. Callers that want to inspect a corrupted PID can call
// [DecodePID] directly.
//
// # Concurrency
//
// Every function in this package is a pure computation over its input
// buffer. There is no shared mutable state, so all operations are safe to
// call from multiple goroutines simultaneously. Input buffers are borrowed
// for the duration of the call; only [DataPacket.Payload] aliases the
// input afterwards.
package packet
