package harmony

import (
	"errors"
	"testing"
)

func TestNewTuning(t *testing.T) {
	tests := []struct {
		divisions int
		wantErr   bool
	}{
		{1, false},
		{12, false},
		{31, false},
		{0, true},
		{-5, true},
	}
	for _, tt := range tests {
		tuning, err := NewTuning(tt.divisions)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidTuning) {
				t.Errorf("NewTuning(%d): err = %v, want ErrInvalidTuning", tt.divisions, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("NewTuning(%d): unexpected error %v", tt.divisions, err)
			continue
		}
		if tuning.Divisions() != tt.divisions {
			t.Errorf("NewTuning(%d).Divisions() = %d", tt.divisions, tuning.Divisions())
		}
	}
}

func TestEDO12(t *testing.T) {
	if got := EDO12().Divisions(); got != 12 {
		t.Fatalf("EDO12().Divisions() = %d, want 12", got)
	}
	if EDO12().IsZero() {
		t.Fatal("EDO12() should not be the zero tuning")
	}
}

func TestNewPitchClass(t *testing.T) {
	tuning := EDO12()

	for _, idx := range []int{0, 5, 11} {
		pc, err := NewPitchClass(idx, tuning)
		if err != nil {
			t.Errorf("NewPitchClass(%d): unexpected error %v", idx, err)
		}
		if int(pc) != idx {
			t.Errorf("NewPitchClass(%d) = %d", idx, pc)
		}
	}

	for _, idx := range []int{-1, 12, 100} {
		if _, err := NewPitchClass(idx, tuning); !errors.Is(err, ErrPitchClassOutOfRange) {
			t.Errorf("NewPitchClass(%d): err = %v, want ErrPitchClassOutOfRange", idx, err)
		}
	}
}

func TestNewScale(t *testing.T) {
	tuning := EDO12()

	scale, err := NewScale(tuning, 0, 2, 4, 5, 7, 9, 11)
	if err != nil {
		t.Fatalf("NewScale: %v", err)
	}
	if scale.Len() != 7 {
		t.Fatalf("Len() = %d, want 7", scale.Len())
	}
	if !scale.Contains(4) {
		t.Error("major scale should contain pitch class 4")
	}
	if scale.Contains(1) {
		t.Error("major scale should not contain pitch class 1")
	}
	if scale.Tuning() != tuning {
		t.Error("scale should keep its tuning")
	}
}

func TestNewScaleRejectsOutOfRange(t *testing.T) {
	if _, err := NewScale(EDO12(), 0, 12); !errors.Is(err, ErrPitchClassOutOfRange) {
		t.Fatalf("err = %v, want ErrPitchClassOutOfRange", err)
	}
}

func TestScaleDuplicatesCollapse(t *testing.T) {
	scale, err := NewScale(EDO12(), 3, 3, 3, 7)
	if err != nil {
		t.Fatalf("NewScale: %v", err)
	}
	if scale.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", scale.Len())
	}
}

func TestScalePitchesSorted(t *testing.T) {
	scale, err := NewScale(EDO12(), 11, 0, 7, 4)
	if err != nil {
		t.Fatalf("NewScale: %v", err)
	}
	got := scale.Pitches()
	want := []PitchClass{0, 4, 7, 11}
	if len(got) != len(want) {
		t.Fatalf("Pitches() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pitches() = %v, want %v", got, want)
		}
	}
}
