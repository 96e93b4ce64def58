package packet

import "github.com/japaric/usb2/pkg"

// ExtractBits extracts an unsigned integer field of bitWidth bits starting
// at bitOffset from data. Bit 0 is the least-significant bit of data[0],
// matching the LSB-first order in which USB transmits each byte; fields
// spanning byte boundaries are little-endian.
//
// bitWidth must be at most 16 (no USB 2.0 packet field is wider). Returns
// [pkg.ErrFieldOutOfRange] if the requested span exceeds the buffer, and
// [pkg.ErrInvalidParameter] for an invalid offset or width.
func ExtractBits(data []byte, bitOffset, bitWidth int) (uint16, error) {
	if bitOffset < 0 || bitWidth < 0 || bitWidth > 16 {
		return 0, pkg.ErrInvalidParameter
	}
	if bitOffset+bitWidth > len(data)*8 {
		return 0, pkg.ErrFieldOutOfRange
	}
	var v uint32
	shift := uint(0)
	for i := bitOffset / 8; shift < uint(bitWidth)+uint(bitOffset%8); i++ {
		v |= uint32(data[i]) << shift
		shift += 8
	}
	v >>= uint(bitOffset % 8)
	return uint16(v & (1<<uint(bitWidth) - 1)), nil
}

// putBits inserts the low bitWidth bits of value into buf starting at
// bitOffset, LSB-first. Bits outside the field are preserved. The caller
// guarantees the span fits the buffer.
func putBits(buf []byte, bitOffset, bitWidth int, value uint32) {
	for i := 0; i < bitWidth; i++ {
		pos := bitOffset + i
		mask := byte(1) << uint(pos%8)
		if value>>uint(i)&1 != 0 {
			buf[pos/8] |= mask
		} else {
			buf[pos/8] &^= mask
		}
	}
}
