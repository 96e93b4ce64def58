package hid

// HID class codes.
const (
	ClassHID = 0x03 // Human Interface Device Class
)

// HID subclass codes.
const (
	SubclassNone = 0x00 // No subclass
	SubclassBoot = 0x01 // Boot Interface Subclass
)

// HID protocol codes (for boot interfaces).
const (
	ProtocolNone     = 0x00 // No protocol
	ProtocolKeyboard = 0x01 // Keyboard boot protocol
	ProtocolMouse    = 0x02 // Mouse boot protocol
)

// HID class descriptor types (HID 1.11 Spec Section 7.1).
const (
	DescriptorTypeHID      = 0x21 // HID descriptor
	DescriptorTypeReport   = 0x22 // Report descriptor
	DescriptorTypePhysical = 0x23 // Physical descriptor
)

// HID class request codes (HID 1.11 Spec Section 7.2).
const (
	RequestGetReport   = 0x01
	RequestGetIdle     = 0x02
	RequestGetProtocol = 0x03
	RequestSetReport   = 0x09
	RequestSetIdle     = 0x0A
	RequestSetProtocol = 0x0B
)

// Report types (high byte of wValue in GET_REPORT and SET_REPORT).
const (
	ReportTypeInput   = 0x01
	ReportTypeOutput  = 0x02
	ReportTypeFeature = 0x03
)

// Protocol values for GET_PROTOCOL and SET_PROTOCOL.
const (
	ProtocolBoot   = 0x00 // Boot protocol
	ProtocolReport = 0x01 // Report protocol
)

// HIDVersion1_11 is the bcdHID release number for HID 1.11.
const HIDVersion1_11 = 0x0111

// Country codes for localized hardware (HID 1.11 Spec Section 6.2.1).
const (
	CountryNotSupported      = 0
	CountryArabic            = 1
	CountryBelgian           = 2
	CountryCanadianBilingual = 3
	CountryCanadianFrench    = 4
	CountryCzech             = 5
	CountryDanish            = 6
	CountryFinnish           = 7
	CountryFrench            = 8
	CountryGerman            = 9
	CountryGreek             = 10
	CountryHebrew            = 11
	CountryHungarian         = 12
	CountryISO               = 13
	CountryItalian           = 14
	CountryJapanKatakana     = 15
	CountryKorean            = 16
	CountryLatinAmerican     = 17
	CountryDutch             = 18
	CountryNorwegian         = 19
	CountryPersian           = 20
	CountryPolish            = 21
	CountryPortuguese        = 22
	CountryRussian           = 23
	CountrySlovak            = 24
	CountrySpanish           = 25
	CountrySwedish           = 26
	CountrySwissFrench       = 27
	CountrySwissGerman       = 28
	CountrySwiss             = 29
	CountryTaiwan            = 30
	CountryTurkishQ          = 31
	CountryUK                = 32
	CountryUS                = 33
	CountryYugoslav          = 34
	CountryTurkishF          = 35
)
