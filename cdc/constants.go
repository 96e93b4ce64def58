package cdc

// Class codes (CDC 1.2 Spec Section 4.1).
const (
	ClassCDC     = 0x02 // Communications Device Class
	ClassCDCData = 0x0A // CDC Data Class
)

// Subclass codes (CDC 1.2 Spec Table 4).
const (
	SubclassNone = 0x00 // No subclass
	SubclassACM  = 0x02 // Abstract Control Model
)

// Protocol codes (CDC 1.2 Spec Table 5).
const (
	ProtocolNone   = 0x00 // No protocol
	ProtocolAT     = 0x01 // AT Commands: V.250
	ProtocolVendor = 0xFF // Vendor-specific
)

// Class-specific descriptor types (CDC 1.2 Spec Table 12).
const (
	DescriptorTypeCSInterface = 0x24 // Class-specific Interface
	DescriptorTypeCSEndpoint  = 0x25 // Class-specific Endpoint
)

// Functional descriptor subtypes (CDC 1.2 Spec Table 13).
const (
	SubtypeHeader         = 0x00 // Header Functional Descriptor
	SubtypeCallManagement = 0x01 // Call Management Functional Descriptor
	SubtypeACM            = 0x02 // Abstract Control Model Functional Descriptor
	SubtypeUnion          = 0x06 // Union Functional Descriptor
)

// Class-specific request codes (PSTN 1.2 Spec Table 13).
const (
	RequestSetLineCoding       = 0x20
	RequestGetLineCoding       = 0x21
	RequestSetControlLineState = 0x22
	RequestSendBreak           = 0x23
)

// Notification codes (CDC 1.2 Spec Table 20).
const (
	NotificationNetworkConnection = 0x00
	NotificationResponseAvailable = 0x01
	NotificationSerialState       = 0x20
)

// CDCVersion1_1 is the bcdCDC release number carried by the header
// functional descriptor.
const CDCVersion1_1 = 0x0110

// Control line state bits (for SET_CONTROL_LINE_STATE).
const (
	ControlLineDTR = 1 << 0 // Data Terminal Ready
	ControlLineRTS = 1 << 1 // Request To Send
)

// Serial state bits (for the SERIAL_STATE notification).
const (
	SerialStateRxCarrier  = 1 << 0 // DCD (Data Carrier Detect)
	SerialStateTxCarrier  = 1 << 1 // DSR (Data Set Ready)
	SerialStateBreak      = 1 << 2 // Break detected
	SerialStateRingSignal = 1 << 3 // Ring signal detected
	SerialStateFraming    = 1 << 4 // Framing error
	SerialStateParity     = 1 << 5 // Parity error
	SerialStateOverrun    = 1 << 6 // Overrun error
)

// ACM capability bits (PSTN 1.2 Spec Table 4).
const (
	CapCommFeatures      = 1 << 0 // Set/Clear/Get_Comm_Feature
	CapLineSerial        = 1 << 1 // Line coding, control line state, serial state
	CapSendBreak         = 1 << 2 // Send_Break
	CapNetworkConnection = 1 << 3 // Network_Connection notification
)

// Call management capability bits (PSTN 1.2 Spec Table 3).
const (
	CapCallManagement   = 1 << 0 // Device handles call management itself
	CapCallOverDataPath = 1 << 1 // Call management over the data interface
)
