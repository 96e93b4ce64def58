package packet

import "testing"

func TestDecodePIDExhaustive(t *testing.T) {
	// Every one of the 256 possible PID bytes must decode to the kind in
	// its low nibble, with the complement check flagged correctly.
	for b := 0; b < 256; b++ {
		pid, ok := DecodePID(byte(b))
		if got, want := pid, PID(b&0x0F); got != want {
			t.Errorf("DecodePID(0x%02X) kind = %v, want %v", b, got, want)
		}
		wantOK := (b^(b>>4))&0x0F == 0x0F
		if ok != wantOK {
			t.Errorf("DecodePID(0x%02X) valid = %v, want %v", b, ok, wantOK)
		}
	}
}

func TestPIDByteRoundTrip(t *testing.T) {
	for code := 0; code < 16; code++ {
		pid := PID(code)
		got, ok := DecodePID(pid.Byte())
		if !ok {
			t.Errorf("DecodePID(%v.Byte()) valid = false, want true", pid)
		}
		if got != pid {
			t.Errorf("DecodePID(%v.Byte()) = %v, want %v", pid, got, pid)
		}
	}
}

func TestPIDByte(t *testing.T) {
	tests := []struct {
		pid  PID
		want byte
	}{
		{PIDOut, 0xE1},
		{PIDIn, 0x69},
		{PIDSOF, 0xA5},
		{PIDSetup, 0x2D},
		{PIDData0, 0xC3},
		{PIDData1, 0x4B},
		{PIDData2, 0x87},
		{PIDMData, 0x0F},
		{PIDACK, 0xD2},
		{PIDNAK, 0x5A},
		{PIDStall, 0x1E},
		{PIDNYET, 0x96},
		{PIDPre, 0x3C},
		{PIDSplit, 0x78},
		{PIDPing, 0xB4},
		{PIDReserved, 0xF0},
	}

	for _, tt := range tests {
		t.Run(tt.pid.String(), func(t *testing.T) {
			if got := tt.pid.Byte(); got != tt.want {
				t.Errorf("%v.Byte() = 0x%02X, want 0x%02X", tt.pid, got, tt.want)
			}
		})
	}
}

func TestPIDGroup(t *testing.T) {
	tests := []struct {
		pid  PID
		want Group
	}{
		{PIDOut, GroupToken},
		{PIDIn, GroupToken},
		{PIDSOF, GroupToken},
		{PIDSetup, GroupToken},
		{PIDData0, GroupData},
		{PIDData1, GroupData},
		{PIDData2, GroupData},
		{PIDMData, GroupData},
		{PIDACK, GroupHandshake},
		{PIDNAK, GroupHandshake},
		{PIDStall, GroupHandshake},
		{PIDNYET, GroupHandshake},
		{PIDPre, GroupSpecial},
		{PIDSplit, GroupSpecial},
		{PIDPing, GroupSpecial},
		{PIDReserved, GroupSpecial},
	}

	for _, tt := range tests {
		t.Run(tt.pid.String(), func(t *testing.T) {
			if got := tt.pid.Group(); got != tt.want {
				t.Errorf("%v.Group() = %v, want %v", tt.pid, got, tt.want)
			}
			if tt.pid.IsToken() != (tt.want == GroupToken) {
				t.Errorf("%v.IsToken() = %v", tt.pid, tt.pid.IsToken())
			}
			if tt.pid.IsData() != (tt.want == GroupData) {
				t.Errorf("%v.IsData() = %v", tt.pid, tt.pid.IsData())
			}
			if tt.pid.IsHandshake() != (tt.want == GroupHandshake) {
				t.Errorf("%v.IsHandshake() = %v", tt.pid, tt.pid.IsHandshake())
			}
			if tt.pid.IsSpecial() != (tt.want == GroupSpecial) {
				t.Errorf("%v.IsSpecial() = %v", tt.pid, tt.pid.IsSpecial())
			}
		})
	}
}

func TestPIDString(t *testing.T) {
	tests := []struct {
		pid  PID
		want string
	}{
		{PIDOut, "OUT"},
		{PIDIn, "IN"},
		{PIDSOF, "SOF"},
		{PIDSetup, "SETUP"},
		{PIDACK, "ACK"},
		{PIDStall, "STALL"},
		{PIDSplit, "SPLIT"},
		{PIDReserved, "Reserved"},
		{PID(0x1F), "Unknown PID (0x1F)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.pid.String(); got != tt.want {
				t.Errorf("PID.String() = %v, want %v", got, tt.want)
			}
		})
	}
}
