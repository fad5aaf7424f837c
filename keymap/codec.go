package keymap

import (
	"bytes"
	"encoding/json"
	"fmt"

	"tonewheel/harmony"
)

const (
	typeHarmonic = "harmonic"
	typeFreeform = "freeform"
)

// keymapJSON is the wire shape shared by both variants, discriminated by
// the Type field.
type keymapJSON struct {
	Type                  string                `json:"type"`
	ID                    string                `json:"id"`
	Name                  string                `json:"name"`
	Divisions             int                   `json:"divisions,omitempty"`
	ScalePitches          []int                 `json:"scalePitches,omitempty"`
	NonScaleToneBehaviors []InactiveKeyBehavior `json:"nonScaleToneBehaviors,omitempty"`
	Payload               json.RawMessage       `json:"payload,omitempty"`
}

// Encode serializes a keymap with its type tag. Freeform payloads pass
// through unescaped so decoding recovers their bytes exactly.
func Encode(k Keymap) ([]byte, error) {
	var dto keymapJSON
	switch km := k.(type) {
	case *Harmonic:
		pitches := make([]int, 0, km.scale.Len())
		for _, pc := range km.scale.Pitches() {
			pitches = append(pitches, int(pc))
		}
		dto = keymapJSON{
			Type:                  typeHarmonic,
			ID:                    km.id,
			Name:                  km.name,
			Divisions:             km.tuning.Divisions(),
			ScalePitches:          pitches,
			NonScaleToneBehaviors: km.behaviors,
		}
	case *Freeform:
		dto = keymapJSON{
			Type:    typeFreeform,
			ID:      km.id,
			Name:    km.name,
			Payload: km.payload,
		}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownType, k)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dto); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses a keymap, dispatching on its type tag. The decoded value
// passes through the same validation as direct construction.
func Decode(data []byte) (Keymap, error) {
	var dto keymapJSON
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, err
	}

	switch dto.Type {
	case typeHarmonic:
		opts := []HarmonicOption{WithScalePitches(dto.ScalePitches...)}
		if dto.Divisions != 0 {
			t, err := harmony.NewTuning(dto.Divisions)
			if err != nil {
				return nil, err
			}
			opts = append(opts, WithTuning(t))
		}
		if dto.NonScaleToneBehaviors != nil {
			opts = append(opts, WithBehaviors(dto.NonScaleToneBehaviors...))
		}
		return NewHarmonic(dto.ID, dto.Name, opts...)
	case typeFreeform:
		return NewFreeform(dto.ID, dto.Name, dto.Payload)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, dto.Type)
	}
}
