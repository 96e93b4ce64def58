package packet

import "github.com/japaric/usb2/pkg"

// Token packet field layout (USB 2.0 Spec Section 8.4.1). After the PID
// byte, eleven field bits are transmitted LSB-first followed by the
// five-bit CRC: address bits 0-6, endpoint bits 7-10 (or frame number
// bits 0-10 for SOF), CRC5 bits 11-15.
const (
	tokenFieldBits = 11

	// TokenPacketSize is the wire size of a token packet in bytes.
	TokenPacketSize = 3
)

// TokenPacket represents an OUT, IN, or SETUP token addressing a device
// endpoint for the transaction that follows.
type TokenPacket struct {
	PID      PID   // Token kind: PIDOut, PIDIn, or PIDSetup
	Address  uint8 // Device address (7 bits, 0-127)
	Endpoint uint8 // Endpoint number (4 bits, 0-15)
	CRC      uint8 // Received CRC5 over address+endpoint
}

// Kind returns the packet identifier.
func (p TokenPacket) Kind() PID { return p.PID }

// ParseToken parses an OUT, IN, or SETUP token packet into out.
//
// On a checksum mismatch the fields of out are still populated and the
// returned error is a [*CRCError] carrying them.
func ParseToken(data []byte, out *TokenPacket) error {
	pid, err := checkPID(data, TokenPacketSize)
	if err != nil {
		return err
	}
	if pid != PIDOut && pid != PIDIn && pid != PIDSetup {
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
	out.PID = pid
	out.Address = uint8(fields & 0x7F)
	out.Endpoint = uint8(fields >> 7)
	out.CRC = uint8(crc)
	if computed := CRC5(uint32(fields), tokenFieldBits); computed != out.CRC {
		return &CRCError{Packet: *out, Computed: uint16(computed), Received: uint16(out.CRC)}
	}
	return nil
}

// MarshalTo serializes the token packet to buf, computing the CRC5 from
// the address and endpoint fields. Returns the number of bytes written,
// or 0 if buf is too small.
func (p TokenPacket) MarshalTo(buf []byte) int {
	if len(buf) < TokenPacketSize {
		return 0
	}
	fields := uint32(p.Address&0x7F) | uint32(p.Endpoint&0x0F)<<7
	buf[0] = p.PID.Byte()
	buf[1] = 0
	buf[2] = 0
	putBits(buf[1:3], 0, tokenFieldBits, fields)
	putBits(buf[1:3], tokenFieldBits, 5, uint32(CRC5(fields, tokenFieldBits)))
	return TokenPacketSize
}

// SOFPacket represents a Start-of-Frame token. It carries an 11-bit frame
// number in place of the address and endpoint fields.
type SOFPacket struct {
	FrameNumber uint16 // Frame number (11 bits, 0-2047)
	CRC         uint8  // Received CRC5 over the frame number
}

// Kind returns the packet identifier.
func (p SOFPacket) Kind() PID { return PIDSOF }

// ParseSOF parses a Start-of-Frame token packet into out.
//
// On a checksum mismatch the fields of out are still populated and the
// returned error is a [*CRCError] carrying them.
func ParseSOF(data []byte, out *SOFPacket) error {
	pid, err := checkPID(data, TokenPacketSize)
	if err != nil {
		return err
	}
	if pid != PIDSOF {
		return pkg.ErrInvalidRequest
	}
	frame, err := ExtractBits(data[1:3], 0, tokenFieldBits)
	if err != nil {
		return err
	}
	crc, err := ExtractBits(data[1:3], tokenFieldBits, 5)
	if err != nil {
		return err
	}
	out.FrameNumber = frame
	out.CRC = uint8(crc)
	if computed := CRC5(uint32(frame), tokenFieldBits); computed != out.CRC {
		return &CRCError{Packet: *out, Computed: uint16(computed), Received: uint16(out.CRC)}
	}
	return nil
}

// MarshalTo serializes the SOF packet to buf, computing the CRC5 from the
// frame number. Returns the number of bytes written, or 0 if buf is too
// small.
func (p SOFPacket) MarshalTo(buf []byte) int {
	if len(buf) < TokenPacketSize {
		return 0
	}
	frame := uint32(p.FrameNumber) & 0x7FF
	buf[0] = PIDSOF.Byte()
	buf[1] = 0
	buf[2] = 0
	putBits(buf[1:3], 0, tokenFieldBits, frame)
	putBits(buf[1:3], tokenFieldBits, 5, uint32(CRC5(frame, tokenFieldBits)))
	return TokenPacketSize
}
