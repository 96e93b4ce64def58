package packet

import (
	"fmt"

	"github.com/japaric/usb2/pkg"
)

// SPLIT token field layout (USB 2.0 Spec Section 8.4.2). After the PID
// byte, nineteen field bits are transmitted LSB-first followed by the
// five-bit CRC: hub address bits 0-6, SC bit 7, port bits 8-14, S bit 15,
// E/U bit 16, endpoint type bits 17-18, CRC5 bits 19-23.
const (
	splitFieldBits = 19

	// SplitPacketSize is the wire size of a SPLIT token in bytes.
	SplitPacketSize = 4

	// PingPacketSize is the wire size of a PING token in bytes. PING
	// uses the OUT/IN/SETUP token layout.
	PingPacketSize = TokenPacketSize

	// PreamblePacketSize is the wire size of a PRE/ERR packet in bytes.
	PreamblePacketSize = 1
)

// EndpointType is the two-bit endpoint type field of a SPLIT token
// (USB 2.0 Spec Table 8-10).
type EndpointType uint8

// SPLIT endpoint type values.
const (
	EndpointTypeControl     EndpointType = 0b00
	EndpointTypeIsochronous EndpointType = 0b01
	EndpointTypeBulk        EndpointType = 0b10
	EndpointTypeInterrupt   EndpointType = 0b11
)

// String returns a human-readable endpoint type name.
func (t EndpointType) String() string {
	switch t {
	case EndpointTypeControl:
		return "Control"
	case EndpointTypeIsochronous:
		return "Isochronous"
	case EndpointTypeBulk:
		return "Bulk"
	case EndpointTypeInterrupt:
		return "Interrupt"
	default:
		return fmt.Sprintf("Unknown Endpoint Type (%d)", uint8(t))
	}
}

// SplitPacket represents a SPLIT token, issued by a high-speed host to a
// hub to start or complete a split transaction with a full- or low-speed
// device behind that hub.
type SplitPacket struct {
	HubAddress   uint8        // Hub device address (7 bits, 0-127)
	Complete     bool         // SC bit: false = SSPLIT (start), true = CSPLIT (complete)
	Port         uint8        // Hub port number (7 bits, 0-127)
	Speed        bool         // S bit: false = full speed, true = low speed
	End          bool         // E bit: end of full-speed payload (U bit, reserved, on CSPLIT)
	EndpointType EndpointType // Endpoint type of the target endpoint
	CRC          uint8        // Received CRC5 over the 19 field bits
}

// Kind returns the packet identifier.
func (p SplitPacket) Kind() PID { return PIDSplit }

// ParseSplit parses a SPLIT token packet into out.
//
// On a checksum mismatch the fields of out are still populated and the
// returned error is a [*CRCError] carrying them.
func ParseSplit(data []byte, out *SplitPacket) error {
	pid, err := checkPID(data, SplitPacketSize)
	if err != nil {
		return err
	}
	if pid != PIDSplit {
		return pkg.ErrInvalidRequest
	}
	fields, err := ExtractBits(data[1:4], 0, 16)
	if err != nil {
		return err
	}
	high, err := ExtractBits(data[1:4], 16, 8)
	if err != nil {
		return err
	}
	v := uint32(fields) | uint32(high)<<16
	out.HubAddress = uint8(v & 0x7F)
	out.Complete = v>>7&1 != 0
	out.Port = uint8(v >> 8 & 0x7F)
	out.Speed = v>>15&1 != 0
	out.End = v>>16&1 != 0
	out.EndpointType = EndpointType(v >> 17 & 0x03)
	out.CRC = uint8(v >> splitFieldBits & 0x1F)
	if computed := CRC5(v&(1<<splitFieldBits-1), splitFieldBits); computed != out.CRC {
		return &CRCError{Packet: *out, Computed: uint16(computed), Received: uint16(out.CRC)}
	}
	return nil
}

// MarshalTo serializes the SPLIT token to buf, computing the CRC5 from
// the field bits. Returns the number of bytes written, or 0 if buf is too
// small.
func (p SplitPacket) MarshalTo(buf []byte) int {
	if len(buf) < SplitPacketSize {
		return 0
	}
	v := uint32(p.HubAddress & 0x7F)
	if p.Complete {
		v |= 1 << 7
	}
	v |= uint32(p.Port&0x7F) << 8
	if p.Speed {
		v |= 1 << 15
	}
	if p.End {
		v |= 1 << 16
	}
	v |= uint32(p.EndpointType&0x03) << 17
	v |= uint32(CRC5(v, splitFieldBits)) << splitFieldBits
	buf[0] = PIDSplit.Byte()
	buf[1] = byte(v)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v >> 16)
	return SplitPacketSize
}

// PingPacket represents a PING token, used by high-speed hosts to probe
// whether a bulk or control endpoint has space for the next OUT data
// packet. It shares the OUT/IN/SETUP token field layout.
type PingPacket struct {
	Address  uint8 // Device address (7 bits, 0-127)
	Endpoint uint8 // Endpoint number (4 bits, 0-15)
	CRC      uint8 // Received CRC5 over address+endpoint
}

// Kind returns the packet identifier.
func (p PingPacket) Kind() PID { return PIDPing }

// ParsePing parses a PING token packet into out.
//
// On a checksum mismatch the fields of out are still populated and the
// returned error is a [*CRCError] carrying them.
func ParsePing(data []byte, out *PingPacket) error {
	pid, err := checkPID(data, PingPacketSize)
	if err != nil {
		return err
	}
	if pid != PIDPing {
		return pkg.ErrInvalidRequest
	}
	fields, err := ExtractBits(data[1:3], 0, tokenFieldBits)
	if err != nil {
		return err
	}
	crc, err := ExtractBits(data[1:3], tokenFieldBits, 5)
	if err != nil {
		return err
	}
	out.Address = uint8(fields & 0x7F)
	out.Endpoint = uint8(fields >> 7)
	out.CRC = uint8(crc)
	if computed := CRC5(uint32(fields), tokenFieldBits); computed != out.CRC {
		return &CRCError{Packet: *out, Computed: uint16(computed), Received: uint16(out.CRC)}
	}
	return nil
}

// MarshalTo serializes the PING token to buf, computing the CRC5 from the
// address and endpoint fields. Returns the number of bytes written, or 0
// if buf is too small.
func (p PingPacket) MarshalTo(buf []byte) int {
	if len(buf) < PingPacketSize {
		return 0
	}
	fields := uint32(p.Address&0x7F) | uint32(p.Endpoint&0x0F)<<7
	buf[0] = PIDPing.Byte()
	buf[1] = 0
	buf[2] = 0
	putBits(buf[1:3], 0, tokenFieldBits, fields)
	putBits(buf[1:3], tokenFieldBits, 5, uint32(CRC5(fields, tokenFieldBits)))
	return PingPacketSize
}

// PreamblePacket represents the PID-only PRE token (full-speed preamble
// issued before low-speed traffic) or, in split transactions, the ERR
// handshake, which shares the same PID value.
type PreamblePacket struct{}

// Kind returns the packet identifier.
func (p PreamblePacket) Kind() PID { return PIDPre }

// ParsePreamble parses a PRE/ERR packet into out. Like handshakes, the
// packet is wire-exact: any bytes after the PID yield
// [pkg.ErrTrailingBytes].
func ParsePreamble(data []byte, out *PreamblePacket) error {
	pid, err := checkPID(data, PreamblePacketSize)
	if err != nil {
		return err
	}
	if pid != PIDPre {
		return pkg.ErrInvalidRequest
	}
	*out = PreamblePacket{}
	if len(data) > PreamblePacketSize {
		return pkg.ErrTrailingBytes
	}
	return nil
}

// MarshalTo serializes the PRE/ERR packet to buf. Returns the number of
// bytes written, or 0 if buf is too small.
func (p PreamblePacket) MarshalTo(buf []byte) int {
	if len(buf) < PreamblePacketSize {
		return 0
	}
	buf[0] = PIDPre.Byte()
	return PreamblePacketSize
}
