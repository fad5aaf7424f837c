package theme

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"tonewheel/harmony"
)

// Fixed saturation and lightness for the hue wheel. Every wedge color is a
// pure function of (index, divisions) at these values.
const (
	wheelSaturation = 0.7
	wheelLightness  = 0.5

	// dimFactor scales lightness for keys outside the active scale.
	dimFactor = 0.35
)

// WheelPalette assigns a deterministic color to each pitch class of an
// N-division tuning by spacing hues evenly around the HSL color circle.
type WheelPalette struct {
	divisions int
}

// NewWheelPalette creates a palette over the given division count. Fails
// with harmony.ErrInvalidTuning when divisions < 1.
func NewWheelPalette(divisions int) (*WheelPalette, error) {
	if _, err := harmony.NewTuning(divisions); err != nil {
		return nil, err
	}
	return &WheelPalette{divisions: divisions}, nil
}

// Divisions returns the division count the palette spans.
func (p *WheelPalette) Divisions() int {
	return p.divisions
}

// Primary returns the color for the given pitch class index: hue
// (index mod divisions) / divisions * 360, at the wheel's fixed saturation
// and lightness.
func (p *WheelPalette) Primary(index int) colorful.Color {
	return colorful.Hsl(p.hue(index), wheelSaturation, wheelLightness)
}

// Complementary returns the color opposite Primary(index) on the hue
// circle, with lightness shifted by lightnessDelta and clamped to [0, 1].
func (p *WheelPalette) Complementary(index int, lightnessDelta float64) colorful.Color {
	hue := math.Mod(p.hue(index)+180, 360)
	return colorful.Hsl(hue, wheelSaturation, clamp01(wheelLightness+lightnessDelta))
}

// Dimmed returns a low-lightness variant of Primary(index), used for keys
// outside the active scale when their behavior is light-dim.
func (p *WheelPalette) Dimmed(index int) colorful.Color {
	return colorful.Hsl(p.hue(index), wheelSaturation, wheelLightness*dimFactor)
}

func (p *WheelPalette) hue(index int) float64 {
	i := index % p.divisions
	if i < 0 {
		i += p.divisions
	}
	return float64(i) / float64(p.divisions) * 360
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
