package descriptor

import (
	"bytes"
	"errors"
	"testing"

	"github.com/japaric/usb2/pkg"
)

func TestDeviceRoundTrip(t *testing.T) {
	d := Device{
		USBVersion:        USBVersion2,
		MaxPacketSize0:    64,
		VendorID:          0xCAFE,
		ProductID:         0xBABE,
		DeviceVersion:     0x0101,
		ManufacturerIndex: 1,
		ProductIndex:      2,
		SerialNumberIndex: 3,
		NumConfigurations: 1,
	}

	buf := make([]byte, DeviceSize)
	if n := d.MarshalTo(buf); n != DeviceSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, DeviceSize)
	}
	if buf[0] != DeviceSize || buf[1] != TypeDevice {
		t.Errorf("header = % X, want 12 01", buf[:2])
	}

	var got Device
	if err := ParseDevice(buf, &got); err != nil {
		t.Fatalf("ParseDevice() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}

func TestParseDeviceKnownBytes(t *testing.T) {
	// Device descriptor of a full-speed CDC-ACM device.
	data := []byte{
		0x12, 0x01, 0x00, 0x02, 0x02, 0x00, 0x00, 0x40,
		0x83, 0x04, 0x40, 0x57, 0x00, 0x01, 0x01, 0x02,
		0x03, 0x01,
	}

	var d Device
	if err := ParseDevice(data, &d); err != nil {
		t.Fatalf("ParseDevice() error = %v", err)
	}
	if d.USBVersion != 0x0200 {
		t.Errorf("USBVersion = 0x%04X, want 0x0200", d.USBVersion)
	}
	if d.Class != ClassCDC {
		t.Errorf("Class = 0x%02X, want 0x%02X", d.Class, ClassCDC)
	}
	if d.VendorID != 0x0483 || d.ProductID != 0x5740 {
		t.Errorf("VID:PID = %04X:%04X, want 0483:5740", d.VendorID, d.ProductID)
	}
	if d.MaxPacketSize0 != 64 || d.NumConfigurations != 1 {
		t.Errorf("MaxPacketSize0 = %d NumConfigurations = %d", d.MaxPacketSize0, d.NumConfigurations)
	}
}

func TestParseDeviceErrors(t *testing.T) {
	var d Device
	if err := ParseDevice(make([]byte, 17), &d); !errors.Is(err, pkg.ErrDescriptorTooShort) {
		t.Errorf("short data error = %v, want %v", err, pkg.ErrDescriptorTooShort)
	}
	bad := make([]byte, DeviceSize)
	bad[0] = DeviceSize
	bad[1] = TypeConfiguration
	if err := ParseDevice(bad, &d); !errors.Is(err, pkg.ErrDescriptorTypeMismatch) {
		t.Errorf("wrong type error = %v, want %v", err, pkg.ErrDescriptorTypeMismatch)
	}
}

func TestDeviceQualifierRoundTrip(t *testing.T) {
	d := DeviceQualifier{
		USBVersion:        USBVersion2,
		MaxPacketSize0:    64,
		NumConfigurations: 1,
	}

	buf := make([]byte, DeviceQualifierSize)
	if n := d.MarshalTo(buf); n != DeviceQualifierSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, DeviceQualifierSize)
	}
	var got DeviceQualifier
	if err := ParseDeviceQualifier(buf, &got); err != nil {
		t.Fatalf("ParseDeviceQualifier() error = %v", err)
	}
	if got != d {
		t.Errorf("round trip = %+v, want %+v", got, d)
	}
}

func TestConfigurationRoundTrip(t *testing.T) {
	c := Configuration{
		TotalLength:   67,
		NumInterfaces: 2,
		Value:         1,
		Attributes:    AttrSelfPowered | AttrRemoteWakeup,
		MaxPower:      50,
	}

	buf := make([]byte, ConfigurationSize)
	if n := c.MarshalTo(buf); n != ConfigurationSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, ConfigurationSize)
	}
	if buf[7]&AttrBusPowered == 0 {
		t.Errorf("bus-powered bit not set in attributes 0x%02X", buf[7])
	}

	var got Configuration
	if err := ParseConfiguration(buf, &got); err != nil {
		t.Fatalf("ParseConfiguration() error = %v", err)
	}
	if !got.SelfPowered() || !got.RemoteWakeup() {
		t.Errorf("attribute helpers = %v %v, want true true", got.SelfPowered(), got.RemoteWakeup())
	}
	if got.MaxPowerMilliamps() != 100 {
		t.Errorf("MaxPowerMilliamps() = %d, want 100", got.MaxPowerMilliamps())
	}
}

func TestParseConfigurationOtherSpeed(t *testing.T) {
	data := []byte{0x09, TypeOtherSpeedConfiguration, 0x09, 0x00, 0x01, 0x01, 0x00, 0x80, 0x32}
	var c Configuration
	if err := ParseConfiguration(data, &c); err != nil {
		t.Fatalf("ParseConfiguration() error = %v", err)
	}
	if c.NumInterfaces != 1 || c.Value != 1 {
		t.Errorf("ParseConfiguration() = %+v", c)
	}
}

func TestInterfaceRoundTrip(t *testing.T) {
	i := Interface{
		Number:       1,
		NumEndpoints: 2,
		Class:        ClassCDCData,
	}

	buf := make([]byte, InterfaceSize)
	if n := i.MarshalTo(buf); n != InterfaceSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, InterfaceSize)
	}
	var got Interface
	if err := ParseInterface(buf, &got); err != nil {
		t.Fatalf("ParseInterface() error = %v", err)
	}
	if got != i {
		t.Errorf("round trip = %+v, want %+v", got, i)
	}
}

func TestInterfaceAssociationRoundTrip(t *testing.T) {
	ia := InterfaceAssociation{
		FirstInterface:   0,
		InterfaceCount:   2,
		FunctionClass:    ClassCDC,
		FunctionSubClass: 0x02,
		FunctionProtocol: 0x01,
	}

	buf := make([]byte, InterfaceAssociationSize)
	if n := ia.MarshalTo(buf); n != InterfaceAssociationSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, InterfaceAssociationSize)
	}
	var got InterfaceAssociation
	if err := ParseInterfaceAssociation(buf, &got); err != nil {
		t.Fatalf("ParseInterfaceAssociation() error = %v", err)
	}
	if got != ia {
		t.Errorf("round trip = %+v, want %+v", got, ia)
	}
}

func TestEndpointHelpers(t *testing.T) {
	// Bulk IN endpoint 1, 512 bytes.
	data := []byte{0x07, 0x05, 0x81, 0x02, 0x00, 0x02, 0x00}

	var e Endpoint
	if err := ParseEndpoint(data, &e); err != nil {
		t.Fatalf("ParseEndpoint() error = %v", err)
	}
	if e.Number() != 1 || !e.IsIn() {
		t.Errorf("address helpers = %d %v, want 1 true", e.Number(), e.IsIn())
	}
	if e.TransferType() != TransferBulk {
		t.Errorf("TransferType() = %v, want %v", e.TransferType(), TransferBulk)
	}
	if e.PacketSize() != 512 {
		t.Errorf("PacketSize() = %d, want 512", e.PacketSize())
	}
	if e.AdditionalTransactions() != 0 {
		t.Errorf("AdditionalTransactions() = %d, want 0", e.AdditionalTransactions())
	}
}

func TestEndpointHighBandwidth(t *testing.T) {
	// Isochronous IN endpoint, asynchronous data, 1024 bytes plus two
	// additional transactions per microframe.
	e := Endpoint{
		Address:       0x82,
		Attributes:    uint8(TransferIsochronous) | uint8(SyncAsynchronous)<<2,
		MaxPacketSize: 1024 | 2<<11,
		Interval:      1,
	}

	buf := make([]byte, EndpointSize)
	if n := e.MarshalTo(buf); n != EndpointSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, EndpointSize)
	}
	var got Endpoint
	if err := ParseEndpoint(buf, &got); err != nil {
		t.Fatalf("ParseEndpoint() error = %v", err)
	}
	if got.TransferType() != TransferIsochronous {
		t.Errorf("TransferType() = %v", got.TransferType())
	}
	if got.SynchronizationType() != SyncAsynchronous {
		t.Errorf("SynchronizationType() = %v", got.SynchronizationType())
	}
	if got.UsageType() != UsageData {
		t.Errorf("UsageType() = %v", got.UsageType())
	}
	if got.PacketSize() != 1024 || got.AdditionalTransactions() != 2 {
		t.Errorf("PacketSize/AdditionalTransactions = %d/%d, want 1024/2",
			got.PacketSize(), got.AdditionalTransactions())
	}
}

func TestStringDescriptor(t *testing.T) {
	buf := make([]byte, 64)
	n := StringDescriptorTo(buf, "usb2")
	if n != 2+4*2 {
		t.Fatalf("StringDescriptorTo() = %d, want %d", n, 2+4*2)
	}
	want := []byte{0x0A, 0x03, 'u', 0x00, 's', 0x00, 'b', 0x00, '2', 0x00}
	if !bytes.Equal(buf[:n], want) {
		t.Errorf("StringDescriptorTo() bytes = % X, want % X", buf[:n], want)
	}

	s, err := ParseString(buf[:n])
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if s != "usb2" {
		t.Errorf("ParseString() = %q, want %q", s, "usb2")
	}
}

func TestStringDescriptorNonASCII(t *testing.T) {
	buf := make([]byte, 64)
	n := StringDescriptorTo(buf, "héllo")
	if n == 0 {
		t.Fatal("StringDescriptorTo() = 0")
	}
	s, err := ParseString(buf[:n])
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}
	if s != "héllo" {
		t.Errorf("ParseString() = %q, want %q", s, "héllo")
	}
}

func TestLanguageDescriptor(t *testing.T) {
	buf := make([]byte, 8)
	n := LanguageDescriptorTo(buf, LangIDUSEnglish)
	if n != 4 {
		t.Fatalf("LanguageDescriptorTo() = %d, want 4", n)
	}
	ids, err := ParseLanguageDescriptor(buf[:n])
	if err != nil {
		t.Fatalf("ParseLanguageDescriptor() error = %v", err)
	}
	if len(ids) != 1 || ids[0] != LangIDUSEnglish {
		t.Errorf("ParseLanguageDescriptor() = %v, want [0x0409]", ids)
	}
}

func TestParseStringErrors(t *testing.T) {
	if _, err := ParseString([]byte{0x04}); !errors.Is(err, pkg.ErrDescriptorTooShort) {
		t.Errorf("short data error = %v, want %v", err, pkg.ErrDescriptorTooShort)
	}
	if _, err := ParseString([]byte{0x04, 0x01, 0x00, 0x00}); !errors.Is(err, pkg.ErrDescriptorTypeMismatch) {
		t.Errorf("wrong type error = %v, want %v", err, pkg.ErrDescriptorTypeMismatch)
	}
	// Header claims more bytes than supplied.
	if _, err := ParseString([]byte{0x08, 0x03, 'a', 0x00}); !errors.Is(err, pkg.ErrDescriptorTooShort) {
		t.Errorf("truncated data error = %v, want %v", err, pkg.ErrDescriptorTooShort)
	}
}
