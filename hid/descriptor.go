package hid

import (
	"encoding/binary"

	"github.com/japaric/usb2/pkg"
)

// Descriptor represents the HID class descriptor (9 bytes) for a device
// with a single report descriptor.
type Descriptor struct {
	HIDVersion             uint16 // bcdHID release number, binary-coded decimal
	CountryCode            uint8  // Country code of localized hardware (0 = not localized)
	ReportDescriptorLength uint16 // Total size of the report descriptor
}

// DescriptorSize is the size of the HID descriptor in bytes.
const DescriptorSize = 9

// MarshalTo serializes the HID descriptor to buf, declaring a single
// subordinate report descriptor. Returns the number of bytes written
// (always 9 if buf is large enough).
func (d *Descriptor) MarshalTo(buf []byte) int {
	if len(buf) < DescriptorSize {
		return 0
	}
	buf[0] = DescriptorSize
	buf[1] = DescriptorTypeHID
	binary.LittleEndian.PutUint16(buf[2:4], d.HIDVersion)
	buf[4] = d.CountryCode
	buf[5] = 1 // one subordinate descriptor
	buf[6] = DescriptorTypeReport
	binary.LittleEndian.PutUint16(buf[7:9], d.ReportDescriptorLength)
	return DescriptorSize
}

// ParseDescriptor parses a HID class descriptor from data into out.
// Returns an error if the data is too short, the descriptor type is
// wrong, or the first subordinate descriptor is not a report
// descriptor.
func ParseDescriptor(data []byte, out *Descriptor) error {
	if len(data) < DescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeHID {
		return pkg.ErrDescriptorTypeMismatch
	}
	if data[6] != DescriptorTypeReport {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.HIDVersion = binary.LittleEndian.Uint16(data[2:4])
	out.CountryCode = data[4]
	out.ReportDescriptorLength = binary.LittleEndian.Uint16(data[7:9])
	return nil
}
