package descriptor

import "github.com/japaric/usb2/pkg"

// Interface represents a USB interface descriptor (9 bytes).
type Interface struct {
	Number           uint8 // Interface number
	AlternateSetting uint8 // Alternate setting number
	NumEndpoints     uint8 // Number of endpoints (excluding EP0)
	Class            uint8 // Class code
	SubClass         uint8 // Subclass code
	Protocol         uint8 // Protocol code
	StringIndex      uint8 // Index of string descriptor (0 = none)
}

// InterfaceSize is the size of an interface descriptor in bytes.
const InterfaceSize = 9

// MarshalTo serializes the interface descriptor to buf.
// Returns the number of bytes written (always 9 if buf is large enough).
func (i *Interface) MarshalTo(buf []byte) int {
	if len(buf) < InterfaceSize {
		return 0
	}
	buf[0] = InterfaceSize
	buf[1] = TypeInterface
	buf[2] = i.Number
	buf[3] = i.AlternateSetting
	buf[4] = i.NumEndpoints
	buf[5] = i.Class
	buf[6] = i.SubClass
	buf[7] = i.Protocol
	buf[8] = i.StringIndex
	return InterfaceSize
}

// ParseInterface parses an interface descriptor from data into out.
// Returns an error if the data is too short or the descriptor type is wrong.
func ParseInterface(data []byte, out *Interface) error {
	if len(data) < InterfaceSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeInterface {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.Number = data[2]
	out.AlternateSetting = data[3]
	out.NumEndpoints = data[4]
	out.Class = data[5]
	out.SubClass = data[6]
	out.Protocol = data[7]
	out.StringIndex = data[8]
	return nil
}

// InterfaceAssociation represents an interface association descriptor
// (8 bytes), grouping contiguous interfaces into one function in
// composite devices such as CDC-ACM.
type InterfaceAssociation struct {
	FirstInterface   uint8 // Interface number of the first associated interface
	InterfaceCount   uint8 // Number of contiguous associated interfaces
	FunctionClass    uint8 // Class code of the function
	FunctionSubClass uint8 // Subclass code of the function
	FunctionProtocol uint8 // Protocol code of the function
	StringIndex      uint8 // Index of string descriptor (0 = none)
}

// InterfaceAssociationSize is the size of an interface association
// descriptor in bytes.
const InterfaceAssociationSize = 8

// MarshalTo serializes the interface association descriptor to buf.
// Returns the number of bytes written (always 8 if buf is large enough).
func (i *InterfaceAssociation) MarshalTo(buf []byte) int {
	if len(buf) < InterfaceAssociationSize {
		return 0
	}
	buf[0] = InterfaceAssociationSize
	buf[1] = TypeInterfaceAssociation
	buf[2] = i.FirstInterface
	buf[3] = i.InterfaceCount
	buf[4] = i.FunctionClass
	buf[5] = i.FunctionSubClass
	buf[6] = i.FunctionProtocol
	buf[7] = i.StringIndex
	return InterfaceAssociationSize
}

// ParseInterfaceAssociation parses an interface association descriptor
// from data into out. Returns an error if the data is too short or the
// descriptor type is wrong.
func ParseInterfaceAssociation(data []byte, out *InterfaceAssociation) error {
	if len(data) < InterfaceAssociationSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != TypeInterfaceAssociation {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.FirstInterface = data[2]
	out.InterfaceCount = data[3]
	out.FunctionClass = data[4]
	out.FunctionSubClass = data[5]
	out.FunctionProtocol = data[6]
	out.StringIndex = data[7]
	return nil
}
