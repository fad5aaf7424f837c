// Package midi speaks the Lumatone's system-exclusive protocol: framing,
// command builders, and a driver that sends command sequences to the
// device. It consumes keymap data; the keymap and wheel packages never
// import it.
package midi

// ManufacturerID is the Lumatone Inc. sysex manufacturer id.
var ManufacturerID = [3]byte{0x00, 0x21, 0x50}

// BoardIndex addresses one of the five octave boards, or the server board
// for global operations (ping, macros, presets).
type BoardIndex uint8

const (
	BoardServer BoardIndex = iota
	BoardOctave1
	BoardOctave2
	BoardOctave3
	BoardOctave4
	BoardOctave5
)

// CommandID identifies a Lumatone command.
type CommandID uint8

const (
	CmdChangeKeyNote CommandID = 0x00
	CmdSetKeyColour  CommandID = 0x01
	CmdSaveProgram   CommandID = 0x02
	CmdLumaPing      CommandID = 0x33
)

// testEcho marks ping payloads; the device echoes it back unchanged.
const testEcho byte = 0x7f
