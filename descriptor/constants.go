package descriptor

// USB descriptor types (USB 2.0 Spec Table 9-5).
const (
	TypeDevice                  = 0x01
	TypeConfiguration           = 0x02
	TypeString                  = 0x03
	TypeInterface               = 0x04
	TypeEndpoint                = 0x05
	TypeDeviceQualifier         = 0x06
	TypeOtherSpeedConfiguration = 0x07
	TypeInterfacePower          = 0x08
	TypeOTG                     = 0x09
	TypeDebug                   = 0x0A
	TypeInterfaceAssociation    = 0x0B
)

// USB class codes.
const (
	ClassPerInterface = 0x00 // Class defined at interface level
	ClassAudio        = 0x01 // Audio class
	ClassCDC          = 0x02 // Communications Device Class
	ClassHID          = 0x03 // Human Interface Device
	ClassMassStorage  = 0x08 // Mass Storage
	ClassHub          = 0x09 // Hub
	ClassCDCData      = 0x0A // CDC-Data
	ClassMisc         = 0xEF // Miscellaneous (IAD composite devices)
	ClassAppSpecific  = 0xFE // Application Specific
	ClassVendor       = 0xFF // Vendor Specific
)

// USBVersion2 is the bcdUSB value for USB 2.0.
const USBVersion2 = 0x0200

// LangIDUSEnglish is the language ID for US English.
const LangIDUSEnglish = 0x0409
