package packet

import (
	"encoding/binary"

	"github.com/japaric/usb2/pkg"
)

// Data packet sizing (USB 2.0 Spec Section 8.4.4).
const (
	// DataPacketOverhead is the wire overhead of a data packet: the PID
	// byte plus the two-byte CRC16.
	DataPacketOverhead = 3

	// MaxDataPayloadSize is the largest payload USB 2.0 defines for any
	// endpoint (1024 bytes, high-speed isochronous). The decoder does
	// not enforce it: per-endpoint maximum packet size is a
	// transfer-layer concern.
	MaxDataPayloadSize = 1024
)

// DataPacket represents a DATA0, DATA1, DATA2, or MDATA packet carrying a
// payload protected by CRC16.
type DataPacket struct {
	PID     PID    // Data kind: PIDData0, PIDData1, PIDData2, or PIDMData
	Payload []byte // Payload bytes; aliases the decoded input buffer
	CRC     uint16 // Received CRC16 over the payload
}

// Kind returns the packet identifier.
func (p DataPacket) Kind() PID { return p.PID }

// ParseData parses a data packet into out. The payload is everything
// between the PID byte and the trailing little-endian CRC16; out.Payload
// aliases data rather than copying it.
//
// On a checksum mismatch the fields of out are still populated and the
// returned error is a [*CRCError] carrying them.
func ParseData(data []byte, out *DataPacket) error {
	pid, err := checkPID(data, DataPacketOverhead)
	if err != nil {
		return err
	}
	if !pid.IsData() {
		return pkg.ErrInvalidRequest
	}
	out.PID = pid
	out.Payload = data[1 : len(data)-2]
	out.CRC = binary.LittleEndian.Uint16(data[len(data)-2:])
	if computed := CRC16(out.Payload); computed != out.CRC {
		return &CRCError{Packet: *out, Computed: computed, Received: out.CRC}
	}
	return nil
}

// MarshalTo serializes the data packet to buf, computing the CRC16 from
// the payload. Returns the number of bytes written, or 0 if buf is too
// small.
func (p DataPacket) MarshalTo(buf []byte) int {
	size := len(p.Payload) + DataPacketOverhead
	if len(buf) < size {
		return 0
	}
	buf[0] = p.PID.Byte()
	copy(buf[1:], p.Payload)
	binary.LittleEndian.PutUint16(buf[size-2:size], CRC16(p.Payload))
	return size
}
