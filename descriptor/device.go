package descriptor

import (
	"encoding/binary"

	"github.com/japaric/usb2/pkg"
)

// Device represents a USB device descriptor (18 bytes).
type Device struct {
	USBVersion        uint16 // USB specification version (BCD)
	Class             uint8  // Class code
	SubClass          uint8  // Subclass code
	Protocol          uint8  // Protocol code
	MaxPacketSize0    uint8  // Max packet size for EP0 (8, 16, 32, or 64)
	VendorID          uint16 // Vendor ID
	ProductID         uint16 // Product ID
	DeviceVersion     uint16 // Device release number (BCD)
	ManufacturerIndex uint8  // Index of manufacturer string (0 = none)
	ProductIndex      uint8  // Index of product string (0 = none)
	SerialNumberIndex uint8  // Index of serial number string (0 = none)
	NumConfigurations uint8  // Number of configurations
}

// DeviceSize is the size of a device descriptor in bytes.
const DeviceSize = 18

// MarshalTo serializes the device descriptor to buf.
// Returns the number of bytes written (always 18 if buf is large enough).
func (d *Device) MarshalTo(buf []byte) int {
	if len(buf) < DeviceSize {
		return 0
	}
	buf[0] = DeviceSize
	buf[1] = TypeDevice
	binary.LittleEndian.PutUint16(buf[2:4], d.USBVersion)
	buf[4] = d.Class
	buf[5] = d.SubClass
	buf[6] = d.Protocol
	buf[7] = d.MaxPacketSize0
	binary.LittleEndian.PutUint16(buf[8:10], d.VendorID)
	binary.LittleEndian.PutUint16(buf[10:12], d.ProductID)
	binary.LittleEndian.PutUint16(buf[12:14], d.DeviceVersion)
	buf[14] = d.ManufacturerIndex
	buf[15] = d.ProductIndex
	buf[16] = d.SerialNumberIndex
	buf[17] = d.NumConfigurations
	return DeviceSize
}

// ParseDevice parses a device descriptor from data into out.
// Returns an error if the data is too short or the descriptor type is wrong.
func ParseDevice(data []byte, out *Device) error {
	if len(data) < DeviceSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeDevice {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.USBVersion = binary.LittleEndian.Uint16(data[2:4])
	out.Class = data[4]
	out.SubClass = data[5]
	out.Protocol = data[6]
	out.MaxPacketSize0 = data[7]
	out.VendorID = binary.LittleEndian.Uint16(data[8:10])
	out.ProductID = binary.LittleEndian.Uint16(data[10:12])
	out.DeviceVersion = binary.LittleEndian.Uint16(data[12:14])
	out.ManufacturerIndex = data[14]
	out.ProductIndex = data[15]
	out.SerialNumberIndex = data[16]
	out.NumConfigurations = data[17]
	return nil
}

// DeviceQualifier represents a USB device qualifier descriptor (10
// bytes), describing how a high-speed capable device would behave at its
// other operating speed.
type DeviceQualifier struct {
	USBVersion        uint16 // USB specification version (BCD)
	Class             uint8  // Class code
	SubClass          uint8  // Subclass code
	Protocol          uint8  // Protocol code
	MaxPacketSize0    uint8  // Max packet size for EP0 at the other speed
	NumConfigurations uint8  // Number of other-speed configurations
}

// DeviceQualifierSize is the size of a device qualifier descriptor in bytes.
const DeviceQualifierSize = 10

// MarshalTo serializes the device qualifier descriptor to buf.
// Returns the number of bytes written (always 10 if buf is large enough).
func (d *DeviceQualifier) MarshalTo(buf []byte) int {
	if len(buf) < DeviceQualifierSize {
		return 0
	}
	buf[0] = DeviceQualifierSize
	buf[1] = TypeDeviceQualifier
	binary.LittleEndian.PutUint16(buf[2:4], d.USBVersion)
	buf[4] = d.Class
	buf[5] = d.SubClass
	buf[6] = d.Protocol
	buf[7] = d.MaxPacketSize0
	buf[8] = d.NumConfigurations
	buf[9] = 0 // bReserved
	return DeviceQualifierSize
}

// ParseDeviceQualifier parses a device qualifier descriptor from data into out.
// Returns an error if the data is too short or the descriptor type is wrong.
func ParseDeviceQualifier(data []byte, out *DeviceQualifier) error {
	if len(data) < DeviceQualifierSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeDeviceQualifier {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.USBVersion = binary.LittleEndian.Uint16(data[2:4])
	out.Class = data[4]
	out.SubClass = data[5]
	out.Protocol = data[6]
	out.MaxPacketSize0 = data[7]
	out.NumConfigurations = data[8]
	return nil
}
