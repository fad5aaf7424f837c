package wheel

import (
	"github.com/lucasb-eyer/go-colorful"

	"tonewheel/drawing"
	"tonewheel/harmony"
)

const (
	constellationStroke  = 0.25
	constellationOpacity = 0.6
)

// PitchLine is one spoke of the pitch constellation: a line from the wheel
// center toward a scale tone's wedge, drawn inside the rim hole.
type PitchLine struct {
	From        drawing.Point
	To          drawing.Point
	Color       colorful.Color
	StrokeWidth float64
	Opacity     float64
}

// Constellation returns one line per scale tone, pointing at that pitch
// class's wedge and sharing its primary color. The scale's tuning should
// have the same division count as the wheel; tones outside the wheel's
// range are skipped by the membership test.
func (w *Wheel) Constellation(scale harmony.Scale) []PitchLine {
	center := w.Center()
	inner := w.radius * w.holeRatio
	strokeWidth := inner * constellationStroke
	arc := 360 / float64(w.divisions)

	var lines []PitchLine
	for i := 0; i < w.divisions; i++ {
		if !scale.Contains(harmony.PitchClass(i)) {
			continue
		}
		angle := arc*float64(i) + w.rotationOffset
		lines = append(lines, PitchLine{
			From:        center,
			To:          drawing.PolarToCartesian(center, inner, angle),
			Color:       w.pal.Primary(i),
			StrokeWidth: strokeWidth,
			Opacity:     constellationOpacity,
		})
	}
	return lines
}
