package midi

// EncodedSysex is the body of one Lumatone sysex message: manufacturer id,
// board index, command id, then the payload. The 0xF0/0xF7 framing bytes
// are added by the transport.
type EncodedSysex []byte

// CreateSysex assembles a sysex body for the given board and command.
func CreateSysex(board BoardIndex, cmd CommandID, payload ...byte) EncodedSysex {
	out := make(EncodedSysex, 0, len(ManufacturerID)+2+len(payload))
	out = append(out, ManufacturerID[:]...)
	out = append(out, byte(board), byte(cmd))
	out = append(out, payload...)
	return out
}

// CreateSysexToggle assembles a single-bool command body.
func CreateSysexToggle(board BoardIndex, cmd CommandID, state bool) EncodedSysex {
	s := byte(0)
	if state {
		s = 1
	}
	return CreateSysex(board, cmd, s)
}

func createExtendedKeyColorSysex(board BoardIndex, cmd CommandID, keyIndex, red, green, blue uint8) EncodedSysex {
	payload := append([]byte{keyIndex}, encodeRGB(red, green, blue)...)
	return CreateSysex(board, cmd, payload...)
}

// encodeRGB splits each channel into high and low nibbles, one per byte,
// keeping every byte under 0x80 as sysex data requires.
func encodeRGB(red, green, blue uint8) []byte {
	return []byte{
		red >> 4, red & 0xf,
		green >> 4, green & 0xf,
		blue >> 4, blue & 0xf,
	}
}

// IsLumatoneMessage reports whether the sysex body carries the Lumatone
// manufacturer id.
func IsLumatoneMessage(data []byte) bool {
	if len(data) < len(ManufacturerID) {
		return false
	}
	for i, b := range ManufacturerID {
		if data[i] != b {
			return false
		}
	}
	return true
}
