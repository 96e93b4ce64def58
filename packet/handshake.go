package packet

import "github.com/japaric/usb2/pkg"

// HandshakePacketSize is the wire size of a handshake packet in bytes.
// Handshake packets are PID-only (USB 2.0 Spec Section 8.4.5).
const HandshakePacketSize = 1

// HandshakePacket represents an ACK, NAK, STALL, or NYET handshake.
type HandshakePacket struct {
	PID PID // Handshake kind: PIDACK, PIDNAK, PIDStall, or PIDNYET
}

// Kind returns the packet identifier.
func (p HandshakePacket) Kind() PID { return p.PID }

// ParseHandshake parses a handshake packet into out. Handshake packets
// are wire-exact: any bytes after the PID yield [pkg.ErrTrailingBytes],
// with out still populated from the PID byte.
func ParseHandshake(data []byte, out *HandshakePacket) error {
	pid, err := checkPID(data, HandshakePacketSize)
	if err != nil {
		return err
	}
	if !pid.IsHandshake() {
		return pkg.ErrInvalidRequest
	}
	out.PID = pid
	if len(data) > HandshakePacketSize {
		return pkg.ErrTrailingBytes
	}
	return nil
}

// MarshalTo serializes the handshake packet to buf. Returns the number of
// bytes written, or 0 if buf is too small.
func (p HandshakePacket) MarshalTo(buf []byte) int {
	if len(buf) < HandshakePacketSize {
		return 0
	}
	buf[0] = p.PID.Byte()
	return HandshakePacketSize
}
