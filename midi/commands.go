package midi

import (
	"errors"
	"fmt"
)

// ErrBadResponse is returned when a device response doesn't parse.
var ErrBadResponse = errors.New("bad device response")

// faderUpFlag marks key functions whose fader rests at null.
const faderUpFlag uint8 = 1 << 4

// SetKeyFunctionParameters builds CMD 0x00: one key's functional
// configuration. midiChannel is 1-based as on the wire.
func SetKeyFunctionParameters(board BoardIndex, keyIndex, noteOrCC, midiChannel, keyType uint8, faderUpIsNull bool) EncodedSysex {
	channel := (midiChannel - 1) & 0xf
	typeByte := keyType
	if faderUpIsNull {
		typeByte |= faderUpFlag
	}
	return CreateSysex(board, CmdChangeKeyNote, keyIndex, noteOrCC, channel, typeByte)
}

// SetKeyLightParameters builds CMD 0x01: one key's LED channel
// intensities.
func SetKeyLightParameters(board BoardIndex, keyIndex, red, green, blue uint8) EncodedSysex {
	return createExtendedKeyColorSysex(board, CmdSetKeyColour, keyIndex, red, green, blue)
}

// SaveProgram builds CMD 0x02: save the current configuration to a preset
// button. Preset numbers run 0 through 9.
func SaveProgram(presetNumber uint8) (EncodedSysex, error) {
	if presetNumber > 9 {
		return nil, fmt.Errorf("invalid input: max preset number is 9, got %d", presetNumber)
	}
	return CreateSysex(BoardServer, CmdSaveProgram, presetNumber), nil
}

// Ping builds a LumaPing echo request. The payload carries the value's
// low 21 bits split into 7-bit bytes after the echo flag.
func Ping(value uint32) EncodedSysex {
	v := value & 0xfffffff
	return CreateSysex(BoardServer, CmdLumaPing,
		testEcho,
		byte(v>>14)&0x7f,
		byte(v>>7)&0x7f,
		byte(v)&0x7f,
	)
}

// DecodePing extracts the echoed value from a LumaPing response body.
func DecodePing(data []byte) (uint32, error) {
	if !IsLumatoneMessage(data) {
		return 0, fmt.Errorf("%w: not a lumatone message", ErrBadResponse)
	}
	if len(data) < 9 {
		return 0, fmt.Errorf("%w: ping response too short (%d bytes)", ErrBadResponse, len(data))
	}
	if CommandID(data[4]) != CmdLumaPing {
		return 0, fmt.Errorf("%w: unexpected command 0x%02x", ErrBadResponse, data[4])
	}
	payload := data[5:]
	if payload[0] != testEcho {
		return 0, fmt.Errorf("%w: missing echo flag", ErrBadResponse)
	}
	v := uint32(payload[1]&0x7f)<<14 |
		uint32(payload[2]&0x7f)<<7 |
		uint32(payload[3]&0x7f)
	return v, nil
}
