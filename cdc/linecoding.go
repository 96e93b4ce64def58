package cdc

import (
	"encoding/binary"
	"fmt"

	"github.com/japaric/usb2/pkg"
)

// StopBits is the bCharFormat field of the line coding structure.
type StopBits uint8

// Stop bit values.
const (
	StopBits1   StopBits = 0 // 1 stop bit
	StopBits1_5 StopBits = 1 // 1.5 stop bits
	StopBits2   StopBits = 2 // 2 stop bits
)

// String returns a human-readable stop bit count.
func (s StopBits) String() string {
	switch s {
	case StopBits1:
		return "1"
	case StopBits1_5:
		return "1.5"
	case StopBits2:
		return "2"
	default:
		return fmt.Sprintf("Unknown Stop Bits (%d)", uint8(s))
	}
}

// Parity is the bParityType field of the line coding structure.
type Parity uint8

// Parity values.
const (
	ParityNone  Parity = 0
	ParityOdd   Parity = 1
	ParityEven  Parity = 2
	ParityMark  Parity = 3
	ParitySpace Parity = 4
)

// String returns a human-readable parity name.
func (p Parity) String() string {
	switch p {
	case ParityNone:
		return "None"
	case ParityOdd:
		return "Odd"
	case ParityEven:
		return "Even"
	case ParityMark:
		return "Mark"
	case ParitySpace:
		return "Space"
	default:
		return fmt.Sprintf("Unknown Parity (%d)", uint8(p))
	}
}

// LineCoding represents the serial line configuration exchanged by the
// GET_LINE_CODING and SET_LINE_CODING requests (PSTN 1.2 Spec
// Table 17).
type LineCoding struct {
	DTERate    uint32   // Data terminal rate in bits per second
	CharFormat StopBits // Stop bits
	ParityType Parity   // Parity
	DataBits   uint8    // Data bits: 5, 6, 7, 8, or 16
}

// LineCodingSize is the wire size of the line coding structure in bytes.
const LineCodingSize = 7

// DefaultLineCoding is the common 115200 8N1 configuration.
var DefaultLineCoding = LineCoding{
	DTERate:    115200,
	CharFormat: StopBits1,
	ParityType: ParityNone,
	DataBits:   8,
}

// MarshalTo serializes the line coding structure to buf.
// Returns the number of bytes written (always 7 if buf is large enough).
func (l *LineCoding) MarshalTo(buf []byte) int {
	if len(buf) < LineCodingSize {
		return 0
	}
	binary.LittleEndian.PutUint32(buf[0:4], l.DTERate)
	buf[4] = uint8(l.CharFormat)
	buf[5] = uint8(l.ParityType)
	buf[6] = l.DataBits
	return LineCodingSize
}

// ParseLineCoding parses a line coding structure from data into out.
// Returns an error if the data is too short or a field holds a value
// outside its defined range.
func ParseLineCoding(data []byte, out *LineCoding) error {
	if len(data) < LineCodingSize {
		return pkg.ErrDescriptorTooShort
	}
	format := StopBits(data[4])
	if format > StopBits2 {
		return pkg.ErrInvalidParameter
	}
	parity := Parity(data[5])
	if parity > ParitySpace {
		return pkg.ErrInvalidParameter
	}
	bits := data[6]
	switch bits {
	case 5, 6, 7, 8, 16:
	default:
		return pkg.ErrInvalidParameter
	}
	out.DTERate = binary.LittleEndian.Uint32(data[0:4])
	out.CharFormat = format
	out.ParityType = parity
	out.DataBits = bits
	return nil
}
