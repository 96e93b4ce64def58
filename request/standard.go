package request

import (
	"fmt"

	"github.com/japaric/usb2/pkg"
)

// Request is a classified standard device request (USB 2.0 Spec Section
// 9.4). The concrete types form a closed set; callers dispatch by type
// switch. Produced by [Classify].
type Request interface {
	isRequest()
}

// DescriptorKind identifies the descriptor named by a GET_DESCRIPTOR or
// SET_DESCRIPTOR request.
type DescriptorKind uint8

// Descriptor kinds valid in GET_DESCRIPTOR and SET_DESCRIPTOR requests.
// Interface and endpoint descriptors are only reachable through a
// configuration descriptor and never appear here.
const (
	DescriptorDevice                  DescriptorKind = 1
	DescriptorConfiguration           DescriptorKind = 2
	DescriptorString                  DescriptorKind = 3
	DescriptorDeviceQualifier         DescriptorKind = 6
	DescriptorOtherSpeedConfiguration DescriptorKind = 7
)

// String returns a human-readable descriptor kind name.
func (k DescriptorKind) String() string {
	switch k {
	case DescriptorDevice:
		return "Device"
	case DescriptorConfiguration:
		return "Configuration"
	case DescriptorString:
		return "String"
	case DescriptorDeviceQualifier:
		return "Device Qualifier"
	case DescriptorOtherSpeedConfiguration:
		return "Other Speed Configuration"
	default:
		return fmt.Sprintf("Unknown Descriptor Kind (%d)", uint8(k))
	}
}

// TestSelector is the test mode selector of a SET_FEATURE TEST_MODE
// request (USB 2.0 Spec Table 9-7).
type TestSelector uint8

// Test mode selectors.
const (
	TestJ           TestSelector = 0x01 // Test_J
	TestK           TestSelector = 0x02 // Test_K
	TestSE0NAK      TestSelector = 0x03 // Test_SE0_NAK
	TestPacket      TestSelector = 0x04 // Test_Packet
	TestForceEnable TestSelector = 0x05 // Test_Force_Enable
)

// GetStatus requests the status of the device, an interface, or an
// endpoint. Exactly one of Endpoint or Interface is meaningful, selected
// by Recipient.
type GetStatus struct {
	Recipient Recipient       // RecipientDevice, RecipientInterface, or RecipientEndpoint
	Endpoint  EndpointAddress // Target endpoint (endpoint recipient only)
	Interface uint8           // Target interface (interface recipient only)
}

// ClearFeature clears a device remote wakeup or endpoint halt feature.
type ClearFeature struct {
	Feature  uint8           // FeatureDeviceRemoteWakeup or FeatureEndpointHalt
	Endpoint EndpointAddress // Target endpoint (FeatureEndpointHalt only)
}

// SetFeature sets a device remote wakeup, endpoint halt, or test mode
// feature.
type SetFeature struct {
	Feature  uint8           // FeatureDeviceRemoteWakeup, FeatureEndpointHalt, or FeatureTestMode
	Endpoint EndpointAddress // Target endpoint (FeatureEndpointHalt only)
	Test     TestSelector    // Test selector (FeatureTestMode only)
}

// SetAddress assigns the device address. Address 0 returns the device to
// the default state.
type SetAddress struct {
	Address uint8 // New device address (0-127)
}

// GetDescriptor requests a descriptor from the device.
type GetDescriptor struct {
	Kind   DescriptorKind
	Index  uint8  // Descriptor index (configuration and string descriptors)
	LangID uint16 // Language ID (string descriptors only)
	Length uint16 // Number of bytes to return
}

// SetDescriptor updates or adds a descriptor. Optional; most devices
// reject it.
type SetDescriptor struct {
	Kind   DescriptorKind // DescriptorDevice, DescriptorConfiguration, or DescriptorString
	Index  uint8
	LangID uint16
	Length uint16
}

// GetConfiguration requests the current configuration value.
type GetConfiguration struct{}

// SetConfiguration selects a device configuration. Value 0 returns the
// device to the address state.
type SetConfiguration struct {
	Value uint8 // Configuration value from a configuration descriptor, or 0
}

// GetInterface requests the current alternate setting of an interface.
type GetInterface struct {
	Interface uint8
}

// SetInterface selects an alternate setting of an interface.
type SetInterface struct {
	Interface uint8
	Alternate uint8
}

// SynchFrame requests the synchronization frame of an isochronous
// endpoint.
type SynchFrame struct {
	Endpoint EndpointAddress
}

func (GetStatus) isRequest()        {}
func (ClearFeature) isRequest()     {}
func (SetFeature) isRequest()       {}
func (SetAddress) isRequest()       {}
func (GetDescriptor) isRequest()    {}
func (SetDescriptor) isRequest()    {}
func (GetConfiguration) isRequest() {}
func (SetConfiguration) isRequest() {}
func (GetInterface) isRequest()     {}
func (SetInterface) isRequest()     {}
func (SynchFrame) isRequest()       {}

// Classify validates a setup packet against the standard request
// definitions of USB 2.0 Section 9.4 and returns the typed request.
//
// Classification is strict: class- and vendor-specific requests, reserved
// bmRequestType values, and standard request codes whose wValue, wIndex,
// or wLength violate their definition all fail with
// [pkg.ErrInvalidRequest] (or [pkg.ErrInvalidEndpoint] for a malformed
// endpoint address in wIndex).
func Classify(s *SetupPacket) (Request, error) {
	t, err := ParseRequestType(s.RequestType)
	if err != nil {
		return nil, err
	}
	if t.Type != TypeStandard {
		return nil, pkg.ErrInvalidRequest
	}

	switch {
	// See USB 2.0 Spec Section 9.4.1.
	case s.Request == CodeClearFeature && t.Direction == DirectionOut:
		if t.Recipient == RecipientOther || s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		switch {
		case s.Value == FeatureDeviceRemoteWakeup && t.Recipient == RecipientDevice && s.Index == 0:
			return ClearFeature{Feature: FeatureDeviceRemoteWakeup}, nil
		case s.Value == FeatureEndpointHalt && t.Recipient == RecipientEndpoint:
			ep, err := ParseEndpointAddress(s.Index)
			if err != nil {
				return nil, err
			}
			return ClearFeature{Feature: FeatureEndpointHalt, Endpoint: ep}, nil
		}
		return nil, pkg.ErrInvalidRequest

	// See USB 2.0 Spec Section 9.4.2.
	case s.Request == CodeGetConfiguration && t.Direction == DirectionIn:
		if t.Recipient != RecipientDevice || s.Value != 0 || s.Index != 0 || s.Length != 1 {
			return nil, pkg.ErrInvalidRequest
		}
		return GetConfiguration{}, nil

	// See USB 2.0 Spec Section 9.4.3.
	case s.Request == CodeGetDescriptor && t.Direction == DirectionIn:
		if t.Recipient != RecipientDevice {
			return nil, pkg.ErrInvalidRequest
		}
		kind := DescriptorKind(s.Value >> 8)
		index := uint8(s.Value)
		switch kind {
		case DescriptorDevice, DescriptorDeviceQualifier:
			if index != 0 || s.Index != 0 {
				return nil, pkg.ErrInvalidRequest
			}
			return GetDescriptor{Kind: kind, Length: s.Length}, nil
		case DescriptorConfiguration, DescriptorOtherSpeedConfiguration:
			if s.Index != 0 {
				return nil, pkg.ErrInvalidRequest
			}
			return GetDescriptor{Kind: kind, Index: index, Length: s.Length}, nil
		case DescriptorString:
			return GetDescriptor{Kind: kind, Index: index, LangID: s.Index, Length: s.Length}, nil
		}
		return nil, pkg.ErrInvalidRequest

	// See USB 2.0 Spec Section 9.4.4.
	case s.Request == CodeGetInterface && t.Direction == DirectionIn:
		if t.Recipient != RecipientInterface || s.Value != 0 || s.Length != 1 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		return GetInterface{Interface: iface}, nil

	// See USB 2.0 Spec Section 9.4.5.
	case s.Request == CodeGetStatus && t.Direction == DirectionIn:
		if s.Value != 0 || s.Length != 2 {
			return nil, pkg.ErrInvalidRequest
		}
		switch t.Recipient {
		case RecipientDevice:
			if s.Index != 0 {
				return nil, pkg.ErrInvalidRequest
			}
			return GetStatus{Recipient: RecipientDevice}, nil
		case RecipientEndpoint:
			ep, err := ParseEndpointAddress(s.Index)
			if err != nil {
				return nil, err
			}
			return GetStatus{Recipient: RecipientEndpoint, Endpoint: ep}, nil
		case RecipientInterface:
			iface, err := interfaceIndex(s.Index)
			if err != nil {
				return nil, err
			}
			return GetStatus{Recipient: RecipientInterface, Interface: iface}, nil
		}
		return nil, pkg.ErrInvalidRequest

	// See USB 2.0 Spec Section 9.4.6.
	case s.Request == CodeSetAddress && t.Direction == DirectionOut:
		if t.Recipient != RecipientDevice || s.Index != 0 || s.Length != 0 || s.Value > MaxAddress {
			return nil, pkg.ErrInvalidRequest
		}
		return SetAddress{Address: uint8(s.Value)}, nil

	// See USB 2.0 Spec Section 9.4.7.
	case s.Request == CodeSetConfiguration && t.Direction == DirectionOut:
		if t.Recipient != RecipientDevice || s.Index != 0 || s.Length != 0 || s.Value>>8 != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		return SetConfiguration{Value: uint8(s.Value)}, nil

	// See USB 2.0 Spec Section 9.4.8.
	case s.Request == CodeSetDescriptor && t.Direction == DirectionOut:
		if t.Recipient != RecipientDevice {
			return nil, pkg.ErrInvalidRequest
		}
		kind := DescriptorKind(s.Value >> 8)
		index := uint8(s.Value)
		switch kind {
		case DescriptorDevice:
			if index != 0 || s.Index != 0 {
				return nil, pkg.ErrInvalidRequest
			}
			return SetDescriptor{Kind: kind, Length: s.Length}, nil
		case DescriptorConfiguration:
			if s.Index != 0 {
				return nil, pkg.ErrInvalidRequest
			}
			return SetDescriptor{Kind: kind, Index: index, Length: s.Length}, nil
		case DescriptorString:
			return SetDescriptor{Kind: kind, Index: index, LangID: s.Index, Length: s.Length}, nil
		}
		return nil, pkg.ErrInvalidRequest

	// See USB 2.0 Spec Section 9.4.9.
	case s.Request == CodeSetFeature && t.Direction == DirectionOut:
		if s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		switch {
		case s.Value == FeatureDeviceRemoteWakeup && t.Recipient == RecipientDevice && s.Index == 0:
			return SetFeature{Feature: FeatureDeviceRemoteWakeup}, nil
		case s.Value == FeatureTestMode && t.Recipient == RecipientDevice && uint8(s.Index) == 0:
			test := TestSelector(s.Index >> 8)
			if test < TestJ || test > TestForceEnable {
				return nil, pkg.ErrInvalidRequest
			}
			return SetFeature{Feature: FeatureTestMode, Test: test}, nil
		case s.Value == FeatureEndpointHalt && t.Recipient == RecipientEndpoint:
			ep, err := ParseEndpointAddress(s.Index)
			if err != nil {
				return nil, err
			}
			return SetFeature{Feature: FeatureEndpointHalt, Endpoint: ep}, nil
		}
		return nil, pkg.ErrInvalidRequest

	// See USB 2.0 Spec Section 9.4.10.
	case s.Request == CodeSetInterface && t.Direction == DirectionOut:
		if t.Recipient != RecipientInterface || s.Length != 0 {
			return nil, pkg.ErrInvalidRequest
		}
		iface, err := interfaceIndex(s.Index)
		if err != nil {
			return nil, err
		}
		alt, err := interfaceIndex(s.Value)
		if err != nil {
			return nil, err
		}
		return SetInterface{Interface: iface, Alternate: alt}, nil

	// See USB 2.0 Spec Section 9.4.11.
	case s.Request == CodeSynchFrame && t.Direction == DirectionIn:
		if t.Recipient != RecipientEndpoint || s.Value != 0 || s.Length != 2 {
			return nil, pkg.ErrInvalidRequest
		}
		ep, err := ParseEndpointAddress(s.Index)
		if err != nil {
			return nil, err
		}
		return SynchFrame{Endpoint: ep}, nil
	}

	return nil, pkg.ErrInvalidRequest
}

// interfaceIndex validates a wIndex or wValue field holding an interface
// or alternate setting number: the high byte must be zero.
func interfaceIndex(v uint16) (uint8, error) {
	if v>>8 != 0 {
		return 0, pkg.ErrInvalidRequest
	}
	return uint8(v), nil
}
