package cdc

import (
	"encoding/binary"

	"github.com/japaric/usb2/pkg"
)

// SerialState represents the SERIAL_STATE notification sent by the
// device over the notification endpoint (PSTN 1.2 Spec Section 6.5.4).
type SerialState struct {
	Interface  uint8 // Interface number of the control interface
	OverRun    bool  // Received data discarded due to overrun
	Parity     bool  // Parity error occurred
	Framing    bool  // Framing error occurred
	RingSignal bool  // Ring signal detected
	Break      bool  // Break detected
	TxCarrier  bool  // DSR state
	RxCarrier  bool  // DCD state
}

// SerialStateSize is the wire size of the notification in bytes: an
// 8-byte class-specific request header followed by a 2-byte bitmap.
const SerialStateSize = 10

// serialStateRequestType is the bmRequestType of the notification
// header: device-to-host, class, interface.
const serialStateRequestType = 0xA1

// Bitmap returns the UART state bitmap carried in the notification data.
func (s *SerialState) Bitmap() uint16 {
	var bitmap uint16
	if s.OverRun {
		bitmap |= SerialStateOverrun
	}
	if s.Parity {
		bitmap |= SerialStateParity
	}
	if s.Framing {
		bitmap |= SerialStateFraming
	}
	if s.RingSignal {
		bitmap |= SerialStateRingSignal
	}
	if s.Break {
		bitmap |= SerialStateBreak
	}
	if s.TxCarrier {
		bitmap |= SerialStateTxCarrier
	}
	if s.RxCarrier {
		bitmap |= SerialStateRxCarrier
	}
	return bitmap
}

// MarshalTo serializes the notification to buf, header included.
// Returns the number of bytes written (always 10 if buf is large
// enough).
func (s *SerialState) MarshalTo(buf []byte) int {
	if len(buf) < SerialStateSize {
		return 0
	}
	buf[0] = serialStateRequestType
	buf[1] = NotificationSerialState
	binary.LittleEndian.PutUint16(buf[2:4], 0) // wValue
	binary.LittleEndian.PutUint16(buf[4:6], uint16(s.Interface))
	binary.LittleEndian.PutUint16(buf[6:8], 2) // wLength
	binary.LittleEndian.PutUint16(buf[8:10], s.Bitmap())
	return SerialStateSize
}

// ParseSerialState parses a SERIAL_STATE notification, header included,
// from data into out. Returns an error if the data is too short or the
// header does not describe a SERIAL_STATE notification.
func ParseSerialState(data []byte, out *SerialState) error {
	if len(data) < SerialStateSize {
		return pkg.ErrDescriptorTooShort
	}
	if data[0] != serialStateRequestType || data[1] != NotificationSerialState {
		return pkg.ErrInvalidRequest
	}
	if binary.LittleEndian.Uint16(data[6:8]) != 2 {
		return pkg.ErrInvalidRequest
	}
	bitmap := binary.LittleEndian.Uint16(data[8:10])
	out.Interface = uint8(binary.LittleEndian.Uint16(data[4:6]))
	out.OverRun = bitmap&SerialStateOverrun != 0
	out.Parity = bitmap&SerialStateParity != 0
	out.Framing = bitmap&SerialStateFraming != 0
	out.RingSignal = bitmap&SerialStateRingSignal != 0
	out.Break = bitmap&SerialStateBreak != 0
	out.TxCarrier = bitmap&SerialStateTxCarrier != 0
	out.RxCarrier = bitmap&SerialStateRxCarrier != 0
	return nil
}
