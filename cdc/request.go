package cdc

import (
	"github.com/japaric/usb2/pkg"
	"github.com/japaric/usb2/request"
)

// Request is a validated ACM class request. The concrete type is one of
// [SetLineCoding], [GetLineCoding], [SetControlLineState], or
// [SendBreak].
type Request interface {
	isACMRequest()
}

// SetLineCoding is the SET_LINE_CODING request. The new line coding
// structure follows in the data stage.
type SetLineCoding struct {
	Interface uint8 // Target interface number
}

// GetLineCoding is the GET_LINE_CODING request. The device returns the
// current line coding structure in the data stage.
type GetLineCoding struct {
	Interface uint8 // Target interface number
}

// SetControlLineState is the SET_CONTROL_LINE_STATE request.
type SetControlLineState struct {
	Interface uint8 // Target interface number
	DTR       bool  // Data Terminal Ready
	RTS       bool  // Request To Send
}

// SendBreak is the SEND_BREAK request.
type SendBreak struct {
	Interface uint8  // Target interface number
	Duration  uint16 // Break duration in milliseconds; 0xFFFF holds until cleared
}

func (SetLineCoding) isACMRequest()       {}
func (GetLineCoding) isACMRequest()       {}
func (SetControlLineState) isACMRequest() {}
func (SendBreak) isACMRequest()           {}

// Classify validates a SETUP packet against the ACM class request set
// and returns the corresponding typed request. Returns
// [pkg.ErrInvalidRequest] if the packet is not a well-formed ACM
// request.
func Classify(s *request.SetupPacket) (Request, error) {
	t, err := s.Type()
	if err != nil {
		return nil, err
	}
	if t.Type != request.TypeClass || t.Recipient != request.RecipientInterface {
		return nil, pkg.ErrInvalidRequest
	}

	switch s.Request {
	case RequestSetLineCoding:
		if t.Direction != request.DirectionOut || s.Value != 0 || s.Length != LineCodingSize {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return SetLineCoding{Interface: iface}, nil

	case RequestGetLineCoding:
		if t.Direction != request.DirectionIn || s.Value != 0 || s.Length != LineCodingSize {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return GetLineCoding{Interface: iface}, nil

	case RequestSetControlLineState:
		if t.Direction != request.DirectionOut || s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		if s.Value&^uint16(ControlLineDTR|ControlLineRTS) != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return SetControlLineState{
			Interface: iface,
			DTR:       s.Value&ControlLineDTR != 0,
			RTS:       s.Value&ControlLineRTS != 0,
		}, nil

	case RequestSendBreak:
		if t.Direction != request.DirectionOut || s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return SendBreak{Interface: iface, Duration: s.Value}, nil
	}
	return nil, pkg.ErrInvalidRequest
}

// interfaceIndex narrows a wIndex interface number to its 8-bit range.
func interfaceIndex(v uint16) (uint8, error) {
	if v > 0xFF {
		return 0, pkg.ErrInvalidRequest
	}
	return uint8(v), nil
}
