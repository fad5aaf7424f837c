// Package drawing holds the coordinate and path math used to lay out the
// color wheel: polar to Cartesian conversion and SVG-style path fragments.
//
// Angle convention: 0 degrees points at (center.X + radius, center.Y) and
// angles grow clockwise, because y grows downward in screen space. Every
// function in this package uses that convention.
package drawing

import (
	"fmt"
	"math"
)

// Point is a planar coordinate. No unit system is implied.
type Point struct {
	X, Y float64
}

// Pt is a convenience constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PolarToCartesian converts (center, radius, angle in degrees) to an (x, y)
// coordinate.
func PolarToCartesian(center Point, radius, angleDegrees float64) Point {
	a := angleDegrees * math.Pi / 180
	return Point{
		X: center.X + radius*math.Cos(a),
		Y: center.Y + radius*math.Sin(a),
	}
}

// DescribeArc returns an SVG path fragment tracing the circumference of an
// imaginary circle with the given center and radius, between the start and
// end angles. Spans of 360 degrees or more are not supported; a full ring is
// assembled from multiple arcs by the caller.
func DescribeArc(center Point, radius, startDegrees, endDegrees float64) string {
	largeArc := "0"
	if endDegrees-startDegrees > 180 {
		largeArc = "1"
	}

	from := PolarToCartesian(center, radius, endDegrees)
	to := PolarToCartesian(center, radius, startDegrees)
	return fmt.Sprintf("M %v %v A %v %v 0 %s 0 %v %v",
		from.X, from.Y, radius, radius, largeArc, to.X, to.Y)
}

// LineTo returns an SVG path fragment for a straight segment from the
// current point to p. Concatenable with DescribeArc output to close an
// outline.
func LineTo(p Point) string {
	return fmt.Sprintf("L %v, %v", p.X, p.Y)
}
