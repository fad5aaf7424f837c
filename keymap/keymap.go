// Package keymap models named key mappings for a Lumatone-style isomorphic
// keyboard. A keymap is either harmonic (generated from a tuning and a
// scale) or freeform (per-key assignment defined elsewhere).
package keymap

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"tonewheel/harmony"
)

var (
	// ErrInvalidScaleDefinition is returned when a harmonic keymap's
	// scale contains a pitch class outside its tuning.
	ErrInvalidScaleDefinition = errors.New("invalid scale definition")

	// ErrUnknownType is returned when decoding a keymap with an
	// unrecognized type tag.
	ErrUnknownType = errors.New("unknown keymap type")
)

// InactiveKeyBehavior describes how a key outside the active scale should
// appear or behave.
type InactiveKeyBehavior string

const (
	// BehaviorMidiOff disables the key's MIDI function entirely.
	BehaviorMidiOff InactiveKeyBehavior = "midi-off"

	// BehaviorLightDim keeps the key playable but dims its light.
	BehaviorLightDim InactiveKeyBehavior = "light-dim"
)

func (b InactiveKeyBehavior) valid() bool {
	return b == BehaviorMidiOff || b == BehaviorLightDim
}

// Keymap is the tagged union of keymap variants. The only implementations
// are Harmonic and Freeform; consumers switch over the concrete types.
type Keymap interface {
	ID() string
	Name() string

	// variant seals the interface to the two types defined here.
	variant() string
}

// Harmonic is a keymap generated from a tuning and a set of scale pitches.
type Harmonic struct {
	id        string
	name      string
	tuning    harmony.Tuning
	scale     harmony.Scale
	behaviors []InactiveKeyBehavior
}

// HarmonicOption configures NewHarmonic.
type HarmonicOption func(*harmonicConfig)

type harmonicConfig struct {
	tuning    harmony.Tuning
	pitches   []int
	behaviors []InactiveKeyBehavior
}

// WithTuning sets the keymap's tuning. Without it the keymap defaults to
// 12-EDO.
func WithTuning(t harmony.Tuning) HarmonicOption {
	return func(c *harmonicConfig) { c.tuning = t }
}

// WithScalePitches sets the active pitch class indices. Duplicates collapse
// into one scale tone.
func WithScalePitches(indices ...int) HarmonicOption {
	return func(c *harmonicConfig) { c.pitches = indices }
}

// WithBehaviors sets the ordered behaviors applied to keys outside the
// scale. Without it the keymap defaults to light-dim only.
func WithBehaviors(behaviors ...InactiveKeyBehavior) HarmonicOption {
	return func(c *harmonicConfig) { c.behaviors = behaviors }
}

// NewHarmonic builds a harmonic keymap. Scale pitches are validated against
// the tuning at construction; an out-of-range pitch fails with
// ErrInvalidScaleDefinition rather than being clamped.
func NewHarmonic(id, name string, opts ...HarmonicOption) (*Harmonic, error) {
	if id == "" {
		return nil, fmt.Errorf("keymap id must not be empty")
	}

	cfg := harmonicConfig{tuning: harmony.EDO12()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.tuning.IsZero() {
		cfg.tuning = harmony.EDO12()
	}
	if cfg.behaviors == nil {
		cfg.behaviors = []InactiveKeyBehavior{BehaviorLightDim}
	}
	for _, b := range cfg.behaviors {
		if !b.valid() {
			return nil, fmt.Errorf("unknown inactive key behavior %q", b)
		}
	}

	scale, err := harmony.NewScale(cfg.tuning, cfg.pitches...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScaleDefinition, err)
	}

	return &Harmonic{
		id:        id,
		name:      name,
		tuning:    cfg.tuning,
		scale:     scale,
		behaviors: cfg.behaviors,
	}, nil
}

func (h *Harmonic) ID() string   { return h.id }
func (h *Harmonic) Name() string { return h.name }

// Tuning returns the keymap's tuning.
func (h *Harmonic) Tuning() harmony.Tuning { return h.tuning }

// Scale returns the set of active pitch classes.
func (h *Harmonic) Scale() harmony.Scale { return h.scale }

// Behaviors returns the ordered behaviors for keys outside the scale.
func (h *Harmonic) Behaviors() []InactiveKeyBehavior {
	out := make([]InactiveKeyBehavior, len(h.behaviors))
	copy(out, h.behaviors)
	return out
}

// InScale reports whether the pitch class is an active scale tone.
func (h *Harmonic) InScale(pc harmony.PitchClass) bool {
	return h.scale.Contains(pc)
}

func (h *Harmonic) variant() string { return typeHarmonic }

// Freeform is a keymap whose per-key assignment is not derived from a
// tuning or scale. Its payload is opaque JSON; the structure is an
// extension point that the model does not interpret.
type Freeform struct {
	id      string
	name    string
	payload json.RawMessage
}

// NewFreeform builds a freeform keymap around an opaque payload. The
// payload is held in compact form so it survives encoding byte for byte;
// non-empty payloads must be valid JSON.
func NewFreeform(id, name string, payload json.RawMessage) (*Freeform, error) {
	if id == "" {
		return nil, fmt.Errorf("keymap id must not be empty")
	}
	var compacted json.RawMessage
	if len(payload) > 0 {
		var buf bytes.Buffer
		if err := json.Compact(&buf, payload); err != nil {
			return nil, fmt.Errorf("freeform payload: %w", err)
		}
		compacted = buf.Bytes()
	}
	return &Freeform{id: id, name: name, payload: compacted}, nil
}

func (f *Freeform) ID() string   { return f.id }
func (f *Freeform) Name() string { return f.name }

// Payload returns the opaque per-key data, if any.
func (f *Freeform) Payload() json.RawMessage { return f.payload }

func (f *Freeform) variant() string { return typeFreeform }
