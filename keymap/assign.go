package keymap

import (
	"tonewheel/harmony"
)

// Lumatone physical layout: five octave boards of 56 keys each.
const (
	NumBoards    = 5
	KeysPerBoard = 56
)

// KeyAssignment is the resolved function of one physical key: which pitch
// class it plays, whether it is a scale tone, and which inactive-key
// behaviors apply to it. The device layer turns these into commands.
type KeyAssignment struct {
	Board   int // 1-based board index
	Key     uint8
	Pitch   harmony.PitchClass
	Note    uint8 // MIDI note number
	Channel uint8 // 0-based MIDI channel
	InScale bool

	// Disabled and Dim reflect the keymap's ordered non-scale-tone
	// behaviors; both are false for scale tones.
	Disabled bool
	Dim      bool
}

// KeyAssignments lays the keymap out across the full keyboard in a linear
// chromatic mapping: consecutive keys step through the tuning's pitch
// classes in order, one MIDI channel per board. Output order is board
// by board, ascending key index.
func (h *Harmonic) KeyAssignments() []KeyAssignment {
	divisions := h.tuning.Divisions()
	out := make([]KeyAssignment, 0, NumBoards*KeysPerBoard)

	for board := 1; board <= NumBoards; board++ {
		for key := 0; key < KeysPerBoard; key++ {
			step := (board-1)*KeysPerBoard + key
			pc := harmony.PitchClass(step % divisions)
			inScale := h.scale.Contains(pc)

			a := KeyAssignment{
				Board:   board,
				Key:     uint8(key),
				Pitch:   pc,
				Note:    uint8(step % 128),
				Channel: uint8(board - 1),
				InScale: inScale,
			}
			if !inScale {
				for _, b := range h.behaviors {
					switch b {
					case BehaviorMidiOff:
						a.Disabled = true
					case BehaviorLightDim:
						a.Dim = true
					}
				}
			}
			out = append(out, a)
		}
	}
	return out
}
