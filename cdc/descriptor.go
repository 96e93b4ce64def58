package cdc

import (
	"encoding/binary"

	"github.com/japaric/usb2/pkg"
)

// HeaderDescriptor represents the CDC header functional descriptor
// (5 bytes), which marks the beginning of the concatenated set of
// functional descriptors (CDC 1.2 Spec Section 5.2.3.1).
type HeaderDescriptor struct {
	CDCVersion uint16 // bcdCDC release number, binary-coded decimal
}

// HeaderDescriptorSize is the size of a header functional descriptor in
// bytes.
const HeaderDescriptorSize = 5

// MarshalTo serializes the header functional descriptor to buf.
// Returns the number of bytes written (always 5 if buf is large enough).
func (h *HeaderDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < HeaderDescriptorSize {
		return 0
	}
	buf[0] = HeaderDescriptorSize
	buf[1] = DescriptorTypeCSInterface
	buf[2] = SubtypeHeader
	binary.LittleEndian.PutUint16(buf[3:5], h.CDCVersion)
	return HeaderDescriptorSize
}

// ParseHeaderDescriptor parses a header functional descriptor from data
// into out. Returns an error if the data is too short or the descriptor
// type or subtype is wrong.
func ParseHeaderDescriptor(data []byte, out *HeaderDescriptor) error {
	if len(data) < HeaderDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeCSInterface || data[2] != SubtypeHeader {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.CDCVersion = binary.LittleEndian.Uint16(data[3:5])
	return nil
}

// CallManagementDescriptor represents the call management functional
// descriptor (5 bytes).
type CallManagementDescriptor struct {
	Capabilities  uint8 // Call management capability bits
	DataInterface uint8 // Interface number of the data class interface
}

// CallManagementDescriptorSize is the size of a call management
// functional descriptor in bytes.
const CallManagementDescriptorSize = 5

// MarshalTo serializes the call management functional descriptor to buf.
// Returns the number of bytes written (always 5 if buf is large enough).
func (c *CallManagementDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < CallManagementDescriptorSize {
		return 0
	}
	buf[0] = CallManagementDescriptorSize
	buf[1] = DescriptorTypeCSInterface
	buf[2] = SubtypeCallManagement
	buf[3] = c.Capabilities
	buf[4] = c.DataInterface
	return CallManagementDescriptorSize
}

// ParseCallManagementDescriptor parses a call management functional
// descriptor from data into out. Returns an error if the data is too
// short or the descriptor type or subtype is wrong.
func ParseCallManagementDescriptor(data []byte, out *CallManagementDescriptor) error {
	if len(data) < CallManagementDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeCSInterface || data[2] != SubtypeCallManagement {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.Capabilities = data[3]
	out.DataInterface = data[4]
	return nil
}

// ACMDescriptor represents the abstract control management functional
// descriptor (4 bytes).
type ACMDescriptor struct {
	Capabilities uint8 // ACM capability bits
}

// ACMDescriptorSize is the size of an ACM functional descriptor in bytes.
const ACMDescriptorSize = 4

// MarshalTo serializes the ACM functional descriptor to buf.
// Returns the number of bytes written (always 4 if buf is large enough).
func (a *ACMDescriptor) MarshalTo(buf []byte) int {
	if len(buf) < ACMDescriptorSize {
		return 0
	}
	buf[0] = ACMDescriptorSize
	buf[1] = DescriptorTypeCSInterface
	buf[2] = SubtypeACM
	buf[3] = a.Capabilities
	return ACMDescriptorSize
}

// ParseACMDescriptor parses an ACM functional descriptor from data into
// out. Returns an error if the data is too short or the descriptor type
// or subtype is wrong.
func ParseACMDescriptor(data []byte, out *ACMDescriptor) error {
	if len(data) < ACMDescriptorSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeCSInterface || data[2] != SubtypeACM {
		return pkg.ErrDescriptorTypeMismatch
	}
	out.Capabilities = data[3]
	return nil
}

// UnionDescriptor represents the union functional descriptor, which
// groups the control interface with its subordinate interfaces
// (CDC 1.2 Spec Section 5.2.3.2).
type UnionDescriptor struct {
	ControlInterface      uint8   // Interface number of the control interface
	SubordinateInterfaces []uint8 // Interface numbers of the subordinate interfaces
}

// unionDescriptorBaseSize is the size of a union functional descriptor
// with no subordinate interfaces.
const unionDescriptorBaseSize = 4

// Size returns the wire size of the union descriptor in bytes.
func (u *UnionDescriptor) Size() int {
	return unionDescriptorBaseSize + len(u.SubordinateInterfaces)
}

// MarshalTo serializes the union functional descriptor to buf.
// Returns the number of bytes written, or 0 if buf is too small.
func (u *UnionDescriptor) MarshalTo(buf []byte) int {
	size := u.Size()
	if len(buf) < size || size > 255 {
		return 0
	}
	buf[0] = uint8(size)
	buf[1] = DescriptorTypeCSInterface
	buf[2] = SubtypeUnion
	buf[3] = u.ControlInterface
	copy(buf[4:], u.SubordinateInterfaces)
	return size
}

// ParseUnionDescriptor parses a union functional descriptor from data
// into out. Returns an error if the data is shorter than the descriptor
// header claims or the descriptor type or subtype is wrong.
func ParseUnionDescriptor(data []byte, out *UnionDescriptor) error {
	if len(data) < unionDescriptorBaseSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[1] != DescriptorTypeCSInterface || data[2] != SubtypeUnion {
		return pkg.ErrDescriptorTypeMismatch
	}
	size := int(data[0])
	if size < unionDescriptorBaseSize || size > len(data) {
		return pkg.ErrDescriptorTooShort
	}
	out.ControlInterface = data[3]
	out.SubordinateInterfaces = append(out.SubordinateInterfaces[:0], data[4:size]...)
	return nil
}
