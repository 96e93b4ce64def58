package hid

import (
	"github.com/japaric/usb2/pkg"
	"github.com/japaric/usb2/request"
)

// Request is a validated HID request. The concrete type is one of
// [GetReport], [SetReport], [GetIdle], [SetIdle], [GetProtocol],
// [SetProtocol], or [GetReportDescriptor].
type Request interface {
	isHIDRequest()
}

// GetReport is the GET_REPORT class request. The device returns the
// named report in the data stage.
type GetReport struct {
	Interface  uint8  // Target interface number
	ReportType uint8  // Input, output, or feature
	ReportID   uint8  // Report ID; 0 if report IDs are not used
	Length     uint16 // Number of bytes the host will accept
}

// SetReport is the SET_REPORT class request. The report follows in the
// data stage.
type SetReport struct {
	Interface  uint8  // Target interface number
	ReportType uint8  // Input, output, or feature
	ReportID   uint8  // Report ID; 0 if report IDs are not used
	Length     uint16 // Number of bytes in the data stage
}

// GetIdle is the GET_IDLE class request. The device returns the current
// idle duration for the named report.
type GetIdle struct {
	Interface uint8 // Target interface number
	ReportID  uint8 // Report to query; 0 means all reports
}

// GetProtocol is the GET_PROTOCOL class request for boot interfaces.
type GetProtocol struct {
	Interface uint8 // Target interface number
}

// SetProtocol is the SET_PROTOCOL class request for boot interfaces.
type SetProtocol struct {
	Interface uint8 // Target interface number
	Protocol  uint8 // ProtocolBoot or ProtocolReport
}

// SetIdle is the SET_IDLE class request, which silences a report until
// the idle duration elapses or its value changes.
type SetIdle struct {
	Interface uint8 // Target interface number
	Duration  uint8 // Idle duration in 4 ms units; 0 means indefinite
	ReportID  uint8 // Report to silence; 0 means all reports
}

// GetReportDescriptor is the standard GET_DESCRIPTOR request for a
// report descriptor, addressed to a HID interface.
type GetReportDescriptor struct {
	Interface uint8  // Target interface number
	Index     uint8  // Report descriptor index
	Length    uint16 // Number of bytes the host will accept
}

func (GetReport) isHIDRequest()           {}
func (SetReport) isHIDRequest()           {}
func (GetIdle) isHIDRequest()             {}
func (SetIdle) isHIDRequest()             {}
func (GetProtocol) isHIDRequest()         {}
func (SetProtocol) isHIDRequest()         {}
func (GetReportDescriptor) isHIDRequest() {}

// Classify validates a SETUP packet against the HID request set and
// returns the corresponding typed request. Returns
// [pkg.ErrInvalidRequest] if the packet is not a well-formed HID
// request.
func Classify(s *request.SetupPacket) (Request, error) {
	t, err := s.Type()
	if err != nil {
		return nil, err
	}
	if t.Recipient != request.RecipientInterface {
		return nil, pkg.ErrInvalidRequest
	}

	switch {
	case s.Request == RequestGetReport && t.Type == request.TypeClass:
		if t.Direction != request.DirectionIn {
			return nil, pkg.ErrInvalidRequest
		}
		reportType := uint8(s.Value >> 8)
		if reportType < ReportTypeInput || reportType > ReportTypeFeature {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return GetReport{
			Interface:  iface,
			ReportType: reportType,
			ReportID:   uint8(s.Value),
			Length:     s.Length,
		}, nil

	case s.Request == RequestSetReport && t.Type == request.TypeClass:
		if t.Direction != request.DirectionOut {
			return nil, pkg.ErrInvalidRequest
		}
		reportType := uint8(s.Value >> 8)
		if reportType < ReportTypeInput || reportType > ReportTypeFeature {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return SetReport{
			Interface:  iface,
			ReportType: reportType,
			ReportID:   uint8(s.Value),
			Length:     s.Length,
		}, nil

	case s.Request == RequestGetIdle && t.Type == request.TypeClass:
		if t.Direction != request.DirectionIn || s.Value>>8 != 0 || s.Length != 1 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return GetIdle{Interface: iface, ReportID: uint8(s.Value)}, nil

	case s.Request == RequestGetProtocol && t.Type == request.TypeClass:
		if t.Direction != request.DirectionIn || s.Value != 0 || s.Length != 1 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return GetProtocol{Interface: iface}, nil

	case s.Request == RequestSetProtocol && t.Type == request.TypeClass:
		if t.Direction != request.DirectionOut || s.Value > ProtocolReport || s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return SetProtocol{Interface: iface, Protocol: uint8(s.Value)}, nil

	case s.Request == RequestSetIdle && t.Type == request.TypeClass:
		if t.Direction != request.DirectionOut || s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return SetIdle{
			Interface: iface,
			Duration:  uint8(s.Value >> 8),
			ReportID:  uint8(s.Value),
		}, nil

	case s.Request == request.CodeGetDescriptor && t.Type == request.TypeStandard:
		if t.Direction != request.DirectionIn {
			return nil, pkg.ErrInvalidRequest
		}
		if uint8(s.Value>>8) != DescriptorTypeReport {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return GetReportDescriptor{
			Interface: iface,
			Index:     uint8(s.Value),
			Length:    s.Length,
		}, nil
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
