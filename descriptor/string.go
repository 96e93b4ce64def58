package descriptor

import (
	"encoding/binary"
	"unicode/utf16"

	"github.com/japaric/usb2/pkg"
)

// StringDescriptorTo writes a USB string descriptor to buf, encoding s
// as UTF-16LE. Strings longer than the 255-byte descriptor limit are
// truncated. Returns the number of bytes written, or 0 if buf is too
// small.
func StringDescriptorTo(buf []byte, s string) int {
	units := utf16.Encode([]rune(s))
	length := 2 + len(units)*2
	if length > 255 {
		length = 254 // room for whole UTF-16 units only
		units = units[:(length-2)/2]
	}
	if len(buf) < length {
		return 0
	}
	buf[0] = uint8(length)
	buf[1] = TypeString
	for i, u := range units {
		binary.LittleEndian.PutUint16(buf[2+i*2:], u)
	}
	return length
}

// ParseString decodes a USB string descriptor. Returns an error if the
// data is shorter than the descriptor header claims or the descriptor
// type is wrong.
func ParseString(data []byte) (string, error) {
	if len(data) < 2 {
		return "", pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeString {
		return "", pkg.ErrDescriptorTypeMismatch
	}
	length := int(data[0])
	if length < 2 || length > len(data) {
		return "", pkg.ErrDescriptorTooShort
	}
	units := make([]uint16, 0, (length-2)/2)
	for i := 2; i+1 < length; i += 2 {
		units = append(units, binary.LittleEndian.Uint16(data[i:i+2]))
	}
	return string(utf16.Decode(units)), nil
}

// LanguageDescriptorTo writes the language ID string descriptor (string
// index 0) to buf. The standard language ID for US English is 0x0409.
// Returns the number of bytes written, or 0 if buf is too small.
func LanguageDescriptorTo(buf []byte, langIDs ...uint16) int {
	length := 2 + len(langIDs)*2
	if len(buf) < length {
		return 0
	}
	buf[0] = uint8(length)
	buf[1] = TypeString
	for i, id := range langIDs {
		binary.LittleEndian.PutUint16(buf[2+i*2:], id)
	}
	return length
}

// ParseLanguageDescriptor decodes the language ID string descriptor.
func ParseLanguageDescriptor(data []byte) ([]uint16, error) {
	if len(data) < 2 {
		return nil, pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeString {
		return nil, pkg.ErrDescriptorTypeMismatch
	}
	length := int(data[0])
	if length < 2 || length > len(data) {
		return nil, pkg.ErrDescriptorTooShort
	}
	ids := make([]uint16, 0, (length-2)/2)
	for i := 2; i+1 < length; i += 2 {
		ids = append(ids, binary.LittleEndian.Uint16(data[i:i+2]))
	}
	return ids, nil
}
