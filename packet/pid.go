package packet

import "fmt"

// PID identifies a USB 2.0 packet kind. Its value is the 4-bit type code
// from the low nibble of the PID byte (USB 2.0 Spec Table 8-1).
type PID uint8

// Packet identifiers.
const (
	PIDReserved PID = 0x0 // Reserved PID
	PIDOut      PID = 0x1 // OUT token
	PIDACK      PID = 0x2 // ACK handshake
	PIDData0    PID = 0x3 // DATA0 data
	PIDPing     PID = 0x4 // PING token (high-speed flow control)
	PIDSOF      PID = 0x5 // Start-of-Frame token
	PIDNYET     PID = 0x6 // NYET handshake
	PIDData2    PID = 0x7 // DATA2 data (high-speed isochronous)
	PIDSplit    PID = 0x8 // SPLIT token (split transaction)
	PIDIn       PID = 0x9 // IN token
	PIDNAK      PID = 0xA // NAK handshake
	PIDData1    PID = 0xB // DATA1 data
	PIDPre      PID = 0xC // PRE token / ERR handshake (shared value)
	PIDSetup    PID = 0xD // SETUP token
	PIDStall    PID = 0xE // STALL handshake
	PIDMData    PID = 0xF // MDATA data (split and isochronous)
)

// Group classifies PIDs by packet format.
type Group uint8

// PID groups (USB 2.0 Spec Table 8-1). The group is encoded in the low
// two bits of the type code.
const (
	GroupSpecial   Group = 0 // PRE, ERR, SPLIT, PING, reserved
	GroupToken     Group = 1 // OUT, IN, SOF, SETUP
	GroupHandshake Group = 2 // ACK, NAK, STALL, NYET
	GroupData      Group = 3 // DATA0, DATA1, DATA2, MDATA
)

// String returns a human-readable group name.
func (g Group) String() string {
	switch g {
	case GroupToken:
		return "Token"
	case GroupData:
		return "Data"
	case GroupHandshake:
		return "Handshake"
	case GroupSpecial:
		return "Special"
	default:
		return fmt.Sprintf("Unknown Group (%d)", uint8(g))
	}
}

// DecodePID decodes a raw PID byte into its packet kind. The mapping is
// total: every 4-bit type code yields a PID, with codes not defined by
// USB 2.0 reported as [PIDReserved].
//
// The second return value reports whether the high check nibble is the
// one's complement of the type nibble. A false value means the PID byte
// was corrupted in transit; [Decode] treats that as fatal, but callers
// inspecting raw captures may still use the returned kind.
func DecodePID(b byte) (PID, bool) {
	return PID(b & 0x0F), (b^(b>>4))&0x0F == 0x0F
}

// Byte returns the wire representation of the PID: the type code in the
// low nibble and its one's complement in the high nibble.
func (p PID) Byte() byte {
	return byte(p&0x0F) | ^byte(p&0x0F)<<4&0xF0
}

// Group returns the packet format group of the PID.
func (p PID) Group() Group {
	return Group(p & 0x03)
}

// IsToken reports whether the PID is an OUT, IN, SOF, or SETUP token.
func (p PID) IsToken() bool { return p.Group() == GroupToken }

// IsData reports whether the PID is one of the four data kinds.
func (p PID) IsData() bool { return p.Group() == GroupData }

// IsHandshake reports whether the PID is an ACK, NAK, STALL, or NYET
// handshake.
func (p PID) IsHandshake() bool { return p.Group() == GroupHandshake }

// IsSpecial reports whether the PID is in the special group (PRE/ERR,
// SPLIT, PING, or reserved).
func (p PID) IsSpecial() bool { return p.Group() == GroupSpecial }

// String returns the USB 2.0 name of the PID.
func (p PID) String() string {
	switch p {
	case PIDOut:
		return "OUT"
	case PIDIn:
		return "IN"
	case PIDSOF:
		return "SOF"
	case PIDSetup:
		return "SETUP"
	case PIDData0:
		return "DATA0"
	case PIDData1:
		return "DATA1"
	case PIDData2:
		return "DATA2"
	case PIDMData:
		return "MDATA"
	case PIDACK:
		return "ACK"
	case PIDNAK:
		return "NAK"
	case PIDStall:
		return "STALL"
	case PIDNYET:
		return "NYET"
	case PIDPre:
		return "PRE"
	case PIDSplit:
		return "SPLIT"
	case PIDPing:
		return "PING"
	case PIDReserved:
		return "Reserved"
	default:
		return fmt.Sprintf("Unknown PID (0x%X)", uint8(p))
	}
}
