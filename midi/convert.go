package midi

import (
	"tonewheel/keymap"
	"tonewheel/theme"
)

// KeymapCommands converts a harmonic keymap into the ordered sequence of
// device commands that realize it: for every key, a function command then
// a light command, board by board in ascending key order. Scale tones get
// their pitch class's primary color; non-scale tones honor the keymap's
// behaviors (midi-off disables the key, light-dim darkens its light).
func KeymapCommands(km *keymap.Harmonic, pal *theme.WheelPalette) []EncodedSysex {
	assignments := km.KeyAssignments()
	out := make([]EncodedSysex, 0, 2*len(assignments))

	for _, a := range assignments {
		board := BoardIndex(a.Board)

		keyType := keymap.KeyTypeNoteOnOff
		if a.Disabled {
			keyType = keymap.KeyTypeDisabled
		}
		out = append(out, SetKeyFunctionParameters(board, a.Key, a.Note, a.Channel+1, keyType, false))

		color := pal.Primary(int(a.Pitch))
		if a.Dim {
			color = pal.Dimmed(int(a.Pitch))
		}
		r, g, b := color.RGB255()
		out = append(out, SetKeyLightParameters(board, a.Key, r, g, b))
	}
	return out
}
