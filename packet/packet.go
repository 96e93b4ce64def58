package packet

import (
	"fmt"

	"github.com/japaric/usb2/pkg"
)

// Packet is a decoded USB 2.0 packet. The concrete types form a closed
// set: [TokenPacket], [SOFPacket], [DataPacket], [HandshakePacket],
// [SplitPacket], [PingPacket], and [PreamblePacket]. Callers dispatch by
// type switch.
type Packet interface {
	// Kind returns the packet identifier.
	Kind() PID

	// MarshalTo serializes the packet to buf, recomputing checksums
	// from the field values. Returns the number of bytes written, or 0
	// if buf is too small.
	MarshalTo(buf []byte) int
}

// CRCError reports a checksum mismatch. The decoded packet is carried
// alongside the computed and received checksum values so diagnostic
// callers can still inspect the unverified fields.
//
// CRCError matches [pkg.ErrCRC] under [errors.Is].
type CRCError struct {
	Packet   Packet // Decoded packet with unverified fields
	Computed uint16 // Checksum computed over the received fields
	Received uint16 // Checksum transmitted with the packet
}

// Error returns a description of the mismatch.
func (e *CRCError) Error() string {
	return fmt.Sprintf("%s packet CRC error: computed 0x%04X, received 0x%04X",
		e.Packet.Kind(), e.Computed, e.Received)
}

// Unwrap returns [pkg.ErrCRC].
func (e *CRCError) Unwrap() error { return pkg.ErrCRC }

// checkPID validates the length and PID byte common to every packet
// parser: data must hold at least min bytes and the PID check nibble must
// complement the type nibble.
func checkPID(data []byte, min int) (PID, error) {
	if len(data) < min {
		return 0, pkg.ErrPacketTooShort
	}
	pid, ok := DecodePID(data[0])
	if !ok {
		return pid, pkg.ErrInvalidPID
	}
	return pid, nil
}

// Decode decodes a single USB 2.0 packet from data, dispatching on the
// PID byte to the parser for the recognized packet kind. It is the entry
// point most callers need.
//
// A corrupted PID byte (check bits not complementing the type bits) or
// the reserved PID value fails with [pkg.ErrInvalidPID] before any field
// decode is attempted. A checksum mismatch returns the decoded packet
// together with a [*CRCError] carrying the unverified fields.
//
// Decode is a pure function of data: it holds no state across calls and
// is safe to call concurrently on independent inputs.
func Decode(data []byte) (Packet, error) {
	pid, err := checkPID(data, 1)
	if err != nil {
		return nil, err
	}
	switch pid {
	case PIDOut, PIDIn, PIDSetup:
		var p TokenPacket
		if err := ParseToken(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case PIDSOF:
		var p SOFPacket
		if err := ParseSOF(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case PIDData0, PIDData1, PIDData2, PIDMData:
		var p DataPacket
		if err := ParseData(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case PIDACK, PIDNAK, PIDStall, PIDNYET:
		var p HandshakePacket
		if err := ParseHandshake(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case PIDSplit:
		var p SplitPacket
		if err := ParseSplit(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case PIDPing:
		var p PingPacket
		if err := ParsePing(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case PIDPre:
		var p PreamblePacket
		if err := ParsePreamble(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, pkg.ErrInvalidPID
	}
}
