package descriptor

import (
	"encoding/binary"

	"github.com/japaric/usb2/pkg"
)

// Configuration represents a USB configuration descriptor (9 bytes,
// excluding the interface and endpoint descriptors that follow it on the
// wire).
type Configuration struct {
	TotalLength   uint16 // Total length of the configuration hierarchy
	NumInterfaces uint8  // Number of interfaces
	Value         uint8  // Configuration value for SET_CONFIGURATION
	StringIndex   uint8  // Index of string descriptor (0 = none)
	Attributes    uint8  // Configuration attributes
	MaxPower      uint8  // Maximum power consumption (2 mA units)
}

// Configuration attribute bits.
const (
	AttrBusPowered   = 0x80 // Reserved, must be set
	AttrSelfPowered  = 0x40 // Self-powered
	AttrRemoteWakeup = 0x20 // Remote wakeup capable
)

// ConfigurationSize is the size of a configuration descriptor in bytes.
const ConfigurationSize = 9

// MarshalTo serializes the configuration descriptor to buf. The
// bus-powered attribute bit, required by the specification, is always
// set. Returns the number of bytes written (always 9 if buf is large
// enough).
func (c *Configuration) MarshalTo(buf []byte) int {
	if len(buf) < ConfigurationSize {
		return 0
	}
	buf[0] = ConfigurationSize
	buf[1] = TypeConfiguration
	binary.LittleEndian.PutUint16(buf[2:4], c.TotalLength)
	buf[4] = c.NumInterfaces
	buf[5] = c.Value
	buf[6] = c.StringIndex
	buf[7] = c.Attributes | AttrBusPowered
	buf[8] = c.MaxPower
	return ConfigurationSize
}

// ParseConfiguration parses a configuration descriptor from data into out.
// Returns an error if the data is too short or the descriptor type is
// wrong. Both configuration and other-speed-configuration descriptors are
// accepted; they share the same layout.
func ParseConfiguration(data []byte, out *Configuration) error {
	if len(data) < ConfigurationSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeConfiguration && data[1] != TypeOtherSpeedConfiguration {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.TotalLength = binary.LittleEndian.Uint16(data[2:4])
	out.NumInterfaces = data[4]
	out.Value = data[5]
	out.StringIndex = data[6]
	out.Attributes = data[7]
	out.MaxPower = data[8]
	return nil
}

// SelfPowered reports whether the self-powered attribute bit is set.
func (c *Configuration) SelfPowered() bool {
	return c.Attributes&AttrSelfPowered != 0
}

// RemoteWakeup reports whether the remote wakeup attribute bit is set.
func (c *Configuration) RemoteWakeup() bool {
	return c.Attributes&AttrRemoteWakeup != 0
}

// MaxPowerMilliamps returns the maximum power consumption in mA.
func (c *Configuration) MaxPowerMilliamps() int {
	return int(c.MaxPower) * 2
}
