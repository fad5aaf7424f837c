// Package wheel renders a tuning as a circular diagram of colored wedges,
// one per pitch class, with an annular mask exposing only the outer rim.
package wheel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"tonewheel/drawing"
	"tonewheel/harmony"
	"tonewheel/theme"
)

const defaultHoleRatio = 0.8

// Wedge is one pie-slice sector of the wheel. The path is described in the
// wedge's local frame, centered on angle zero; RotationDegrees orients it
// around the wheel center.
type Wedge struct {
	Index           int
	RotationDegrees float64
	ArcDegrees      float64
	FillColor       colorful.Color
	StrokeColor     colorful.Color
	TextColor       colorful.Color
	Label           string
	PathString      string
}

// RimMask is the annular cutout applied to the wheel: a disc of OuterRadius
// with a subtracted disc of InnerRadius, both centered at Center.
type RimMask struct {
	Center      drawing.Point
	OuterRadius float64
	InnerRadius float64
}

// Option configures a Wheel.
type Option func(*Wheel)

// WithHoleRatio sets the inner hole's radius as a fraction of the wheel
// radius. Defaults to 0.8.
func WithHoleRatio(ratio float64) Option {
	return func(w *Wheel) { w.holeRatio = ratio }
}

// WithRotationOffset rotates every wedge by the given degrees. Aligning a
// chosen tonic to angle zero is the caller's concern; the wheel applies
// whatever offset it is handed.
func WithRotationOffset(degrees float64) Option {
	return func(w *Wheel) { w.rotationOffset = degrees }
}

// Wheel lays out one render pass's worth of wedges. It holds no state
// between renders; every accessor recomputes from the inputs.
type Wheel struct {
	radius         float64
	divisions      int
	pal            *theme.WheelPalette
	holeRatio      float64
	rotationOffset float64
}

// New creates a wheel of the given radius over divisions pitch classes.
// Fails with harmony.ErrInvalidTuning when divisions < 1.
func New(radius float64, divisions int, pal *theme.WheelPalette, opts ...Option) (*Wheel, error) {
	if _, err := harmony.NewTuning(divisions); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return nil, fmt.Errorf("radius must be positive, got %v", radius)
	}

	w := &Wheel{
		radius:    radius,
		divisions: divisions,
		pal:       pal,
		holeRatio: defaultHoleRatio,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.holeRatio <= 0 || w.holeRatio >= 1 {
		return nil, fmt.Errorf("hole ratio must be in (0, 1), got %v", w.holeRatio)
	}
	return w, nil
}

// Center returns the wheel's center point. The wheel occupies the square
// from (0,0) to (2r,2r).
func (w *Wheel) Center() drawing.Point {
	return drawing.Pt(w.radius, w.radius)
}

// Radius returns the outer radius.
func (w *Wheel) Radius() float64 {
	return w.radius
}

// Divisions returns the number of wedges.
func (w *Wheel) Divisions() int {
	return w.divisions
}

// boundary returns the angle of the i-th wedge boundary. Computed from the
// index, not by repeated addition, so boundary(divisions) is exactly 360
// and the per-wedge arcs tile the circle without drift.
func (w *Wheel) boundary(i int) float64 {
	return 360 * float64(i) / float64(w.divisions)
}

// Wedges returns the wheel's wedges ordered by ascending index. Wedge i is
// centered on angle arcDegrees*i plus the rotation offset; its fill is the
// palette's primary color and its text color the darkened complement.
func (w *Wheel) Wedges() []Wedge {
	center := w.Center()
	arc := 360 / float64(w.divisions)

	wedges := make([]Wedge, 0, w.divisions)
	for i := 0; i < w.divisions; i++ {
		arcI := w.boundary(i+1) - w.boundary(i)
		half := arcI / 2

		outline := strings.Join([]string{
			drawing.DescribeArc(center, w.radius, -half, half),
			drawing.LineTo(center),
			drawing.LineTo(drawing.PolarToCartesian(center, w.radius, half)),
		}, " ")

		fill := w.pal.Primary(i)
		wedges = append(wedges, Wedge{
			Index:           i,
			RotationDegrees: arc*float64(i) + w.rotationOffset,
			ArcDegrees:      arcI,
			FillColor:       fill,
			StrokeColor:     fill,
			TextColor:       w.pal.Complementary(i, -0.8),
			Label:           strconv.Itoa(i),
			PathString:      outline,
		})
	}
	return wedges
}

// Mask returns the annular mask that exposes only the wedges' outer rim.
func (w *Wheel) Mask() RimMask {
	return RimMask{
		Center:      w.Center(),
		OuterRadius: w.radius,
		InnerRadius: w.radius * w.holeRatio,
	}
}
