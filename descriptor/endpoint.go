package descriptor

import (
	"encoding/binary"
	"fmt"

	"github.com/japaric/usb2/pkg"
)

// TransferType is the transfer type of an endpoint, from bits 0-1 of
// bmAttributes (USB 2.0 Spec Table 9-13).
type TransferType uint8

// Endpoint transfer types.
const (
	TransferControl     TransferType = 0b00
	TransferIsochronous TransferType = 0b01
	TransferBulk        TransferType = 0b10
	TransferInterrupt   TransferType = 0b11
)

// String returns a human-readable transfer type name.
func (t TransferType) String() string {
	switch t {
	case TransferControl:
		return "Control"
	case TransferIsochronous:
		return "Isochronous"
	case TransferBulk:
		return "Bulk"
	case TransferInterrupt:
		return "Interrupt"
	default:
		return fmt.Sprintf("Unknown Transfer Type (%d)", uint8(t))
	}
}

// SynchronizationType is the isochronous synchronization type, from bits
// 2-3 of bmAttributes.
type SynchronizationType uint8

// Isochronous synchronization types.
const (
	SyncNone         SynchronizationType = 0b00
	SyncAsynchronous SynchronizationType = 0b01
	SyncAdaptive     SynchronizationType = 0b10
	SyncSynchronous  SynchronizationType = 0b11
)

// UsageType is the isochronous usage type, from bits 4-5 of bmAttributes.
type UsageType uint8

// Isochronous usage types.
const (
	UsageData             UsageType = 0b00
	UsageFeedback         UsageType = 0b01
	UsageImplicitFeedback UsageType = 0b10
)

// Endpoint represents a USB endpoint descriptor (7 bytes).
type Endpoint struct {
	Address       uint8  // Endpoint address (number in bits 0-3, direction in bit 7)
	Attributes    uint8  // Transfer, synchronization, and usage type bits
	MaxPacketSize uint16 // Max packet size (bits 0-10) and additional transactions (bits 11-12)
	Interval      uint8  // Polling interval (interrupt/isochronous)
}

// EndpointSize is the size of an endpoint descriptor in bytes.
const EndpointSize = 7

// MarshalTo serializes the endpoint descriptor to buf.
// Returns the number of bytes written (always 7 if buf is large enough).
func (e *Endpoint) MarshalTo(buf []byte) int {
	if len(buf) < EndpointSize {
		return 0
	}
	buf[0] = EndpointSize
	buf[1] = TypeEndpoint
	buf[2] = e.Address
	buf[3] = e.Attributes
	binary.LittleEndian.PutUint16(buf[4:6], e.MaxPacketSize)
	buf[6] = e.Interval
	return EndpointSize
}

// ParseEndpoint parses an endpoint descriptor from data into out.
// Returns an error if the data is too short or the descriptor type is wrong.
func ParseEndpoint(data []byte, out *Endpoint) error {
	if len(data) < EndpointSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeEndpoint {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.Address = data[2]
	out.Attributes = data[3]
	out.MaxPacketSize = binary.LittleEndian.Uint16(data[4:6])
	out.Interval = data[6]
	return nil
}

// Number returns the endpoint number from the address field.
func (e *Endpoint) Number() uint8 {
	return e.Address & 0x0F
}

// IsIn reports whether this is an IN (device-to-host) endpoint.
func (e *Endpoint) IsIn() bool {
	return e.Address&0x80 != 0
}

// TransferType returns the transfer type from the attributes field.
func (e *Endpoint) TransferType() TransferType {
	return TransferType(e.Attributes & 0x03)
}

// SynchronizationType returns the isochronous synchronization type from
// the attributes field. Meaningful only for isochronous endpoints.
func (e *Endpoint) SynchronizationType() SynchronizationType {
	return SynchronizationType(e.Attributes >> 2 & 0x03)
}

// UsageType returns the isochronous usage type from the attributes
// field. Meaningful only for isochronous endpoints.
func (e *Endpoint) UsageType() UsageType {
	return UsageType(e.Attributes >> 4 & 0x03)
}

// PacketSize returns the maximum packet size in bytes, without the
// additional-transactions bits.
func (e *Endpoint) PacketSize() uint16 {
	return e.MaxPacketSize & 0x07FF
}

// AdditionalTransactions returns the number of additional transactions
// per microframe (0-2) encoded in bits 11-12 of wMaxPacketSize, used by
// high-speed high-bandwidth interrupt and isochronous endpoints.
func (e *Endpoint) AdditionalTransactions() uint8 {
	return uint8(e.MaxPacketSize >> 11 & 0x03)
}
