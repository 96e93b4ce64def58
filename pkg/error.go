package pkg

import "errors"

// Packet decode errors.
var (
	// ErrPacketTooShort indicates fewer bytes than the minimum required
	// for the recognized packet kind.
	ErrPacketTooShort = errors.New("packet too short")

	// ErrInvalidPID indicates the PID check bits do not complement the
	// PID type bits, or a reserved PID value.
	ErrInvalidPID = errors.New("invalid PID")

	// ErrCRC indicates a CRC error.
	ErrCRC = errors.New("CRC error")

	// ErrFieldOutOfRange indicates a bit-field extraction beyond the end
	// of the buffer.
	ErrFieldOutOfRange = errors.New("field out of range")

	// ErrTrailingBytes indicates extra bytes after a wire-exact packet.
	ErrTrailingBytes = errors.New("trailing bytes")
)

// USB protocol errors.
var (
	// ErrInvalidEndpoint indicates an invalid endpoint address.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrInvalidRequest indicates an invalid or unsupported request.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrBufferTooSmall indicates the provided buffer is too small.
	ErrBufferTooSmall = errors.New("buffer too small")

	// ErrDescriptorTooShort indicates the descriptor data is too short.
	ErrDescriptorTooShort = errors.New("descriptor too short")

	// ErrDescriptorTypeMismatch indicates the descriptor type does not match expected.
	ErrDescriptorTypeMismatch = errors.New("descriptor type mismatch")

	// ErrSetupPacketTooShort indicates the setup packet data is too short.
	ErrSetupPacketTooShort = errors.New("setup packet too short")
)
