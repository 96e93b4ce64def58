package packet

import (
	"errors"
	"testing"

	"github.com/japaric/usb2/pkg"
)

func TestParseHandshake(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want PID
	}{
		{"ACK", []byte{0xD2}, PIDACK},
		{"NAK", []byte{0x5A}, PIDNAK},
		{"STALL", []byte{0x1E}, PIDStall},
		{"NYET", []byte{0x96}, PIDNYET},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got HandshakePacket
			if err := ParseHandshake(tt.data, &got); err != nil {
				t.Fatalf("ParseHandshake() error = %v", err)
			}
			if got.PID != tt.want {
				t.Errorf("PID = %v, want %v", got.PID, tt.want)
			}
		})
	}
}

func TestParseHandshakeErrors(t *testing.T) {
	var out HandshakePacket

	// Handshake packets are wire-exact: one byte and nothing more.
	if err := ParseHandshake([]byte{0xD2, 0x00}, &out); !errors.Is(err, pkg.ErrTrailingBytes) {
		t.Errorf("trailing byte error = %v, want %v", err, pkg.ErrTrailingBytes)
	}
	if out.PID != PIDACK {
		t.Errorf("PID after trailing bytes = %v, want %v", out.PID, PIDACK)
	}

	if err := ParseHandshake(nil, &out); !errors.Is(err, pkg.ErrPacketTooShort) {
		t.Errorf("empty buffer error = %v, want %v", err, pkg.ErrPacketTooShort)
	}
	if err := ParseHandshake([]byte{0xD3}, &out); !errors.Is(err, pkg.ErrInvalidPID) {
		t.Errorf("corrupt PID error = %v, want %v", err, pkg.ErrInvalidPID)
	}
	if err := ParseHandshake([]byte{0x69}, &out); !errors.Is(err, pkg.ErrInvalidRequest) {
		t.Errorf("non-handshake PID error = %v, want %v", err, pkg.ErrInvalidRequest)
	}
}

func TestHandshakeMarshalTo(t *testing.T) {
	buf := make([]byte, HandshakePacketSize)
	p := HandshakePacket{PID: PIDNAK}
	if n := p.MarshalTo(buf); n != HandshakePacketSize {
		t.Fatalf("MarshalTo() = %d, want %d", n, HandshakePacketSize)
	}
	if buf[0] != 0x5A {
		t.Errorf("MarshalTo() byte = 0x%02X, want 0x5A", buf[0])
	}
	if n := p.MarshalTo(nil); n != 0 {
		t.Errorf("MarshalTo(nil) = %d, want 0", n)
	}
}
