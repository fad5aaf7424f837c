// Package harmony defines the value types describing an equal division of
// the octave and positions within it.
package harmony

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrInvalidTuning is returned when a tuning would have fewer than
	// one division per octave.
	ErrInvalidTuning = errors.New("invalid tuning")

	// ErrPitchClassOutOfRange is returned when a pitch class index falls
	// outside [0, divisions) for its tuning.
	ErrPitchClassOutOfRange = errors.New("pitch class out of range")
)

// Tuning describes an N-way equal division of the octave.
type Tuning struct {
	divisions int
}

// NewTuning creates a tuning with the given number of equal steps per
// octave. Fails with ErrInvalidTuning when divisions < 1.
func NewTuning(divisions int) (Tuning, error) {
	if divisions < 1 {
		return Tuning{}, fmt.Errorf("%w: %d divisions", ErrInvalidTuning, divisions)
	}
	return Tuning{divisions: divisions}, nil
}

// EDO12 returns the standard 12-tone equal temperament tuning.
func EDO12() Tuning {
	return Tuning{divisions: 12}
}

// Divisions returns the number of equal steps per octave.
func (t Tuning) Divisions() int {
	return t.divisions
}

// IsZero reports whether t is the zero value (no tuning set).
func (t Tuning) IsZero() bool {
	return t.divisions == 0
}

// PitchClass is one of the equal-step positions within a tuning. It is only
// meaningful relative to the Tuning it was validated against.
type PitchClass int

// NewPitchClass validates index against the tuning. Fails with
// ErrPitchClassOutOfRange for indices outside [0, divisions).
func NewPitchClass(index int, t Tuning) (PitchClass, error) {
	if index < 0 || index >= t.divisions {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrPitchClassOutOfRange, index, t.divisions)
	}
	return PitchClass(index), nil
}

// Scale is a set of pitch classes within one tuning. Membership is
// order-irrelevant; Pitches returns them sorted for deterministic output.
type Scale struct {
	tuning Tuning
	tones  map[PitchClass]struct{}
}

// NewScale builds a scale from the given pitch class indices, validating
// each against the tuning. Duplicate indices collapse into one member.
func NewScale(t Tuning, indices ...int) (Scale, error) {
	tones := make(map[PitchClass]struct{}, len(indices))
	for _, idx := range indices {
		pc, err := NewPitchClass(idx, t)
		if err != nil {
			return Scale{}, err
		}
		tones[pc] = struct{}{}
	}
	return Scale{tuning: t, tones: tones}, nil
}

// Tuning returns the tuning the scale was validated against.
func (s Scale) Tuning() Tuning {
	return s.tuning
}

// Contains reports whether pc is a scale tone.
func (s Scale) Contains(pc PitchClass) bool {
	_, ok := s.tones[pc]
	return ok
}

// Len returns the number of scale tones.
func (s Scale) Len() int {
	return len(s.tones)
}

// Pitches returns the scale tones in ascending order.
func (s Scale) Pitches() []PitchClass {
	out := make([]PitchClass, 0, len(s.tones))
	for pc := range s.tones {
		out = append(out, pc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
