package midi

import (
	"bytes"
	"errors"
	"testing"
)

func TestCreateSysexFraming(t *testing.T) {
	msg := CreateSysex(BoardOctave2, CmdChangeKeyNote, 0x01, 0x02)
	want := []byte{0x00, 0x21, 0x50, 0x02, 0x00, 0x01, 0x02}
	if !bytes.Equal(msg, want) {
		t.Fatalf("CreateSysex = % x, want % x", msg, want)
	}
}

func TestCreateSysexToggle(t *testing.T) {
	on := CreateSysexToggle(BoardServer, CmdSaveProgram, true)
	if on[len(on)-1] != 1 {
		t.Errorf("toggle on payload = % x", on)
	}
	off := CreateSysexToggle(BoardServer, CmdSaveProgram, false)
	if off[len(off)-1] != 0 {
		t.Errorf("toggle off payload = % x", off)
	}
}

func TestIsLumatoneMessage(t *testing.T) {
	if !IsLumatoneMessage(CreateSysex(BoardServer, CmdLumaPing)) {
		t.Error("our own messages should carry the manufacturer id")
	}
	if IsLumatoneMessage([]byte{0x00, 0x20, 0x29, 0x02}) {
		t.Error("another manufacturer's message should be rejected")
	}
	if IsLumatoneMessage([]byte{0x00}) {
		t.Error("short data should be rejected")
	}
}

func TestSetKeyLightParametersEncodesNibbles(t *testing.T) {
	msg := SetKeyLightParameters(BoardOctave1, 7, 0xff, 0x00, 0x80)
	// manufacturer(3) + board + cmd + key + 6 nibble bytes
	if len(msg) != 12 {
		t.Fatalf("message length = %d: % x", len(msg), msg)
	}
	payload := msg[5:]
	if payload[0] != 7 {
		t.Errorf("key index = %d", payload[0])
	}
	wantRGB := []byte{0x0f, 0x0f, 0x00, 0x00, 0x08, 0x00}
	if !bytes.Equal(payload[1:], wantRGB) {
		t.Errorf("rgb nibbles = % x, want % x", payload[1:], wantRGB)
	}
	for _, b := range msg {
		if b >= 0x80 {
			t.Fatalf("sysex data byte out of range: %#x", b)
		}
	}
}

func TestSetKeyFunctionParameters(t *testing.T) {
	msg := SetKeyFunctionParameters(BoardOctave3, 10, 60, 1, 1, false)
	payload := msg[5:]
	if payload[0] != 10 || payload[1] != 60 {
		t.Errorf("key/note = %d/%d", payload[0], payload[1])
	}
	// Channel is 1-based at the API and 0-based on the wire.
	if payload[2] != 0 {
		t.Errorf("channel byte = %d, want 0", payload[2])
	}
	if payload[3] != 1 {
		t.Errorf("type byte = %d, want 1", payload[3])
	}

	msg = SetKeyFunctionParameters(BoardOctave3, 10, 20, 2, 3, true)
	payload = msg[5:]
	if payload[2] != 1 {
		t.Errorf("channel byte = %d, want 1", payload[2])
	}
	if payload[3] != (1<<4)|3 {
		t.Errorf("type byte = %d, want fader-up LumaTouch", payload[3])
	}
}

func TestSaveProgram(t *testing.T) {
	msg, err := SaveProgram(9)
	if err != nil {
		t.Fatalf("SaveProgram(9): %v", err)
	}
	if msg[3] != byte(BoardServer) || msg[4] != byte(CmdSaveProgram) {
		t.Errorf("frame = % x", msg)
	}
	if _, err := SaveProgram(10); err == nil {
		t.Error("preset 10 should be rejected")
	}
}

func TestPingRoundTrip(t *testing.T) {
	for _, value := range []uint32{0, 1, 0xabcde, 0x1fffff} {
		msg := Ping(value)
		// echo flag plus three 7-bit value bytes
		if len(msg) != 9 {
			t.Fatalf("ping length = %d: % x", len(msg), msg)
		}
		got, err := DecodePing(msg)
		if err != nil {
			t.Fatalf("DecodePing(%#x): %v", value, err)
		}
		if got != value {
			t.Errorf("round trip %#x -> %#x", value, got)
		}
		for _, b := range msg {
			if b >= 0x80 {
				t.Fatalf("ping data byte out of range: %#x", b)
			}
		}
	}
}

func TestPingTruncatesTo21Bits(t *testing.T) {
	got, err := DecodePing(Ping(0xffffffff))
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x1fffff {
		t.Errorf("value = %#x, want %#x", got, 0x1fffff)
	}
}

func TestDecodePingRejectsForeignData(t *testing.T) {
	if _, err := DecodePing([]byte{0x00, 0x20, 0x29, 0x00, 0x33, 0x7f, 0, 0, 0, 0}); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("err = %v, want ErrBadResponse", err)
	}
	if _, err := DecodePing(CreateSysex(BoardServer, CmdSaveProgram, 1, 2, 3, 4, 5)); !errors.Is(err, ErrBadResponse) {
		t.Fatalf("wrong command: err = %v, want ErrBadResponse", err)
	}
}
