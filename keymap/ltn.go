package keymap

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/ini.v1"

	"tonewheel/theme"
)

// Lumatone key function type codes, as stored in the KTyp_n field of a
// .ltn preset.
const (
	KeyTypeNoteOnOff            uint8 = 1
	KeyTypeContinuousController uint8 = 2
	KeyTypeLumaTouch            uint8 = 3
	KeyTypeDisabled             uint8 = 4
)

// faderUpFlag marks CC/LumaTouch keys whose fader rests at null.
const faderUpFlag uint8 = 1 << 4

// KeyDefinition is one key's entry in a .ltn preset.
type KeyDefinition struct {
	NoteOrCC      uint8
	Channel       uint8 // 0-based
	KeyType       uint8
	FaderUpIsNull bool
	Color         string // six hex digits, no leading '#'
}

func (d KeyDefinition) typeCode() uint8 {
	code := d.KeyType
	if d.FaderUpIsNull && (code == KeyTypeContinuousController || code == KeyTypeLumaTouch) {
		code |= faderUpFlag
	}
	return code
}

// GeneralOptions are the preset-wide settings of a .ltn file.
type GeneralOptions struct {
	AfterTouchActive     bool
	LightOnKeyStrokes    bool
	InvertFootController bool
	InvertSustain        bool
	ExprCtrlSensitivity  uint8
}

type presetKey struct {
	board int
	key   uint8
}

// Preset accumulates key definitions for export in the .ltn preset format
// understood by the official Lumatone editor.
type Preset struct {
	keys    map[presetKey]KeyDefinition
	general GeneralOptions
}

// NewPreset returns an empty preset with default general options.
func NewPreset() *Preset {
	return &Preset{keys: make(map[presetKey]KeyDefinition)}
}

// SetKey records the definition for one key.
func (p *Preset) SetKey(board int, key uint8, def KeyDefinition) error {
	if board < 1 || board > NumBoards {
		return fmt.Errorf("board index %d not in [1, %d]", board, NumBoards)
	}
	if int(key) >= KeysPerBoard {
		return fmt.Errorf("key index %d not in [0, %d)", key, KeysPerBoard)
	}
	p.keys[presetKey{board: board, key: key}] = def
	return nil
}

// SetGeneralOptions replaces the preset-wide settings.
func (p *Preset) SetGeneralOptions(opts GeneralOptions) {
	p.general = opts
}

// WriteINI writes the preset in .ltn INI form: general options in the
// default section, then one BoardN section per board with Key_n, Chan_n,
// Col_n and (for non-note keys) KTyp_n entries.
func (p *Preset) WriteINI(w io.Writer) error {
	boolStr := func(b bool) string {
		if b {
			return "1"
		}
		return "0"
	}

	f := ini.Empty()
	general := f.Section("")
	general.Key("AfterTouchActive").SetValue(boolStr(p.general.AfterTouchActive))
	general.Key("LightOnKeyStrokes").SetValue(boolStr(p.general.LightOnKeyStrokes))
	general.Key("InvertFootController").SetValue(boolStr(p.general.InvertFootController))
	general.Key("InvertSustain").SetValue(boolStr(p.general.InvertSustain))
	general.Key("ExprCtrlSensivity").SetValue(fmt.Sprintf("%d", p.general.ExprCtrlSensitivity))

	for board := 1; board <= NumBoards; board++ {
		for key := 0; key < KeysPerBoard; key++ {
			def, ok := p.keys[presetKey{board: board, key: uint8(key)}]
			if !ok {
				continue
			}
			sec := f.Section(fmt.Sprintf("Board%d", board))
			sec.Key(fmt.Sprintf("Key_%d", key)).SetValue(fmt.Sprintf("%d", def.NoteOrCC))
			sec.Key(fmt.Sprintf("Chan_%d", key)).SetValue(fmt.Sprintf("%d", def.Channel))
			sec.Key(fmt.Sprintf("Col_%d", key)).SetValue(def.Color)
			if code := def.typeCode(); code != KeyTypeNoteOnOff {
				sec.Key(fmt.Sprintf("KTyp_%d", key)).SetValue(fmt.Sprintf("%d", code))
			}
		}
	}

	_, err := f.WriteTo(w)
	return err
}

// PresetFromHarmonic lays the harmonic keymap out across the keyboard and
// colors each key with the palette: scale tones get their pitch class's
// primary color, non-scale tones are dimmed or disabled per the keymap's
// behaviors.
func PresetFromHarmonic(h *Harmonic, pal *theme.WheelPalette) (*Preset, error) {
	p := NewPreset()
	for _, a := range h.KeyAssignments() {
		def := KeyDefinition{
			NoteOrCC: a.Note,
			Channel:  a.Channel,
			KeyType:  KeyTypeNoteOnOff,
		}
		color := pal.Primary(int(a.Pitch))
		if a.Dim {
			color = pal.Dimmed(int(a.Pitch))
		}
		if a.Disabled {
			def.KeyType = KeyTypeDisabled
		}
		def.Color = strings.TrimPrefix(color.Hex(), "#")

		if err := p.SetKey(a.Board, a.Key, def); err != nil {
			return nil, err
		}
	}
	return p, nil
}
