package packet

// USB 2.0 CRC generator polynomials (USB 2.0 Spec Section 8.3.5),
// bit-reflected to match the LSB-first wire bit order.
const (
	crc5Poly  = 0x14   // x^5 + x^2 + 1
	crc16Poly = 0xA001 // x^16 + x^15 + x^2 + 1
)

// CRC5 computes the USB CRC5 over the low bits of value, consumed
// LSB-first. Token packets cover 11 bits (address+endpoint or frame
// number); SPLIT packets cover 19 bits. The result is the complemented
// 5-bit residual as it appears on the wire.
func CRC5(value uint32, bits int) uint8 {
	crc := uint8(0x1F)
	for i := 0; i < bits; i++ {
		bit := uint8(value>>i) & 1
		if (crc^bit)&1 != 0 {
			crc = (crc >> 1) ^ crc5Poly
		} else {
			crc >>= 1
		}
	}
	return ^crc & 0x1F
}

// VerifyCRC5 reports whether received matches the CRC5 computed over the
// low bits of value.
func VerifyCRC5(value uint32, bits int, received uint8) bool {
	return CRC5(value, bits) == received&0x1F
}

// crc16Table is the byte-indexed lookup table for the reflected USB CRC16.
var crc16Table = func() [256]uint16 {
	var table [256]uint16
	for i := 0; i < 256; i++ {
		crc := uint16(i)
		for bit := 0; bit < 8; bit++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ crc16Poly
			} else {
				crc >>= 1
			}
		}
		table[i] = crc
	}
	return table
}()

// CRC16 computes the USB CRC16 over data. The register is initialized to
// all ones and the residual is complemented before returning, matching the
// value transmitted after a data packet payload (little-endian on the
// wire). CRC16 of an empty payload is 0x0000.
func CRC16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc = crc16Table[byte(crc)^b] ^ (crc >> 8)
	}
	return ^crc
}

// VerifyCRC16 reports whether received matches the CRC16 computed over data.
func VerifyCRC16(data []byte, received uint16) bool {
	return CRC16(data) == received
}
