package cdc

import (
	"bytes"
	"errors"
	"testing"

	"github.com/japaric/usb2/pkg"
)

func TestLineCodingMarshal(t *testing.T) {
	buf := make([]byte, LineCodingSize)
	if n := DefaultLineCoding.MarshalTo(buf); n != LineCodingSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, LineCodingSize)
	}
	// 115200 = 0x0001C200, little-endian, then 8N1.
	want := []byte{0x00, 0xC2, 0x01, 0x00, 0x00, 0x00, 0x08}
	if !bytes.Equal(buf, want) {
		t.Errorf("MarshalTo() bytes = % X, want % X", buf, want)
	}
}

func TestLineCodingRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		lc   LineCoding
	}{
		{"115200 8N1", DefaultLineCoding},
		{"9600 7E1", LineCoding{DTERate: 9600, CharFormat: StopBits1, ParityType: ParityEven, DataBits: 7}},
		{"31250 8N2", LineCoding{DTERate: 31250, CharFormat: StopBits2, ParityType: ParityNone, DataBits: 8}},
		{"16 data bits", LineCoding{DTERate: 1000000, CharFormat: StopBits1_5, ParityType: ParityMark, DataBits: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, LineCodingSize)
			if n := tt.lc.MarshalTo(buf); n != LineCodingSize {
				t.Fatalf("MarshalTo() = %d, want %d", n, LineCodingSize)
			}
			var got LineCoding
			if err := ParseLineCoding(buf, &got); err != nil {
				t.Fatalf("ParseLineCoding() error = %v", err)
			}
			if got != tt.lc {
				t.Errorf("round trip = %+v, want %+v", got, tt.lc)
			}
		})
	}
}

func TestParseLineCodingErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"too short", []byte{0x00, 0xC2, 0x01, 0x00, 0x00, 0x00}, pkg.ErrDescriptorTooShort},
		{"bad stop bits", []byte{0x00, 0xC2, 0x01, 0x00, 0x03, 0x00, 0x08}, pkg.ErrInvalidParameter},
		{"bad parity", []byte{0x00, 0xC2, 0x01, 0x00, 0x00, 0x05, 0x08}, pkg.ErrInvalidParameter},
		{"bad data bits", []byte{0x00, 0xC2, 0x01, 0x00, 0x00, 0x00, 0x09}, pkg.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lc LineCoding
			if err := ParseLineCoding(tt.data, &lc); !errors.Is(err, tt.want) {
				t.Errorf("ParseLineCoding() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSerialStateWire(t *testing.T) {
	s := SerialState{
		Interface: 1,
		TxCarrier: true,
		RxCarrier: true,
	}

	buf := make([]byte, SerialStateSize)
	if n := s.MarshalTo(buf); n != SerialStateSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, SerialStateSize)
	}
	want := []byte{0xA1, 0x20, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	if !bytes.Equal(buf, want) {
		t.Errorf("MarshalTo() bytes = % X, want % X", buf, want)
	}

	var got SerialState
	if err := ParseSerialState(buf, &got); err != nil {
		t.Fatalf("ParseSerialState() error = %v", err)
	}
	if got != s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestSerialStateBitmap(t *testing.T) {
	s := SerialState{
		OverRun:    true,
		Parity:     true,
		Framing:    true,
		RingSignal: true,
		Break:      true,
		TxCarrier:  true,
		RxCarrier:  true,
	}
	if got := s.Bitmap(); got != 0x7F {
		t.Errorf("Bitmap() = 0x%02X, want 0x7F", got)
	}
}

func TestParseSerialStateErrors(t *testing.T) {
	var s SerialState
	if err := ParseSerialState(make([]byte, 9), &s); !errors.Is(err, pkg.ErrDescriptorTooShort) {
		t.Errorf("short data error = %v, want %v", err, pkg.ErrDescriptorTooShort)
	}
	bad := []byte{0xA1, 0x01, 0x00, 0x00, 0x01, 0x00, 0x02, 0x00, 0x03, 0x00}
	if err := ParseSerialState(bad, &s); !errors.Is(err, pkg.ErrInvalidRequest) {
		t.Errorf("wrong notification error = %v, want %v", err, pkg.ErrInvalidRequest)
	}
}
