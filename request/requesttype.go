package request

import (
	"fmt"

	"github.com/japaric/usb2/pkg"
)

// bmRequestType bit layout (USB 2.0 Spec Table 9-2).
const (
	directionMask = 0x80 // Direction bit
	typeMask      = 0x60 // Type bits
	typeShift     = 5
	recipientMask = 0x1F // Recipient bits
)

// Direction is the transfer direction of a control request, from the
// point of view of the host.
type Direction uint8

// Request directions.
const (
	DirectionOut Direction = 0 // Host to device
	DirectionIn  Direction = 1 // Device to host
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case DirectionOut:
		return "Host-to-Device"
	case DirectionIn:
		return "Device-to-Host"
	default:
		return fmt.Sprintf("Unknown Direction (%d)", uint8(d))
	}
}

// Type is the request type of a control request.
type Type uint8

// Request types. The value 3 is reserved by the specification.
const (
	TypeStandard Type = 0 // Standard request
	TypeClass    Type = 1 // Class-specific request
	TypeVendor   Type = 2 // Vendor-specific request
)

// String returns a human-readable type name.
func (t Type) String() string {
	switch t {
	case TypeStandard:
		return "Standard"
	case TypeClass:
		return "Class"
	case TypeVendor:
		return "Vendor"
	default:
		return fmt.Sprintf("Unknown Type (%d)", uint8(t))
	}
}

// Recipient is the recipient of a control request.
type Recipient uint8

// Request recipients. Values 4-31 are reserved by the specification.
const (
	RecipientDevice    Recipient = 0 // Device recipient
	RecipientInterface Recipient = 1 // Interface recipient
	RecipientEndpoint  Recipient = 2 // Endpoint recipient
	RecipientOther     Recipient = 3 // Other recipient
)

// String returns a human-readable recipient name.
func (r Recipient) String() string {
	switch r {
	case RecipientDevice:
		return "Device"
	case RecipientInterface:
		return "Interface"
	case RecipientEndpoint:
		return "Endpoint"
	case RecipientOther:
		return "Other"
	default:
		return fmt.Sprintf("Unknown Recipient (%d)", uint8(r))
	}
}

// RequestType is the decomposed bmRequestType byte of a control request.
type RequestType struct {
	Direction Direction
	Type      Type
	Recipient Recipient
}

// ParseRequestType decomposes a bmRequestType byte. Returns
// [pkg.ErrInvalidRequest] if the type or recipient field holds a reserved
// value.
func ParseRequestType(b uint8) (RequestType, error) {
	t := RequestType{
		Direction: Direction(b >> 7),
		Type:      Type(b & typeMask >> typeShift),
		Recipient: Recipient(b & recipientMask),
	}
	if t.Type > TypeVendor || t.Recipient > RecipientOther {
		return RequestType{}, pkg.ErrInvalidRequest
	}
	return t, nil
}

// Byte returns the wire representation of the request type.
func (t RequestType) Byte() uint8 {
	return uint8(t.Direction)<<7 | uint8(t.Type)<<typeShift | uint8(t.Recipient)
}

// EndpointAddress is an endpoint address as carried in the wIndex field
// of endpoint-recipient requests (USB 2.0 Spec Section 9.3.4).
type EndpointAddress struct {
	Direction Direction // Transfer direction (In for IN endpoints)
	Number    uint8     // Endpoint number (0-15)
}

// ParseEndpointAddress parses the wIndex field of an endpoint-recipient
// request. Bits 4-6 and 8-15 are reserved and must be zero.
func ParseEndpointAddress(windex uint16) (EndpointAddress, error) {
	if windex&^uint16(0x008F) != 0 {
		return EndpointAddress{}, pkg.ErrInvalidEndpoint
	}
	return EndpointAddress{
		Direction: Direction(windex >> 7 & 1),
		Number:    uint8(windex & 0x0F),
	}, nil
}

// Byte returns the endpoint address byte: the direction bit in bit 7 and
// the endpoint number in the low nibble.
func (e EndpointAddress) Byte() uint8 {
	return uint8(e.Direction)<<7 | e.Number&0x0F
}
