package wheel

import (
	"fmt"
	"io"

	"tonewheel/drawing"
	"tonewheel/harmony"
)

// labelRadiusRatio places wedge labels just inside the outer edge.
const labelRadiusRatio = 0.9

// WriteSVG writes the wheel as a standalone SVG document: a masked ring of
// wedge paths with centered labels, and, when a scale is given, the pitch
// constellation inside the hole.
func (w *Wheel) WriteSVG(out io.Writer, scale *harmony.Scale) error {
	center := w.Center()
	mask := w.Mask()
	size := 2 * w.radius

	var err error
	p := func(format string, args ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(out, format, args...)
	}

	p("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%v\" height=\"%v\" viewBox=\"0 0 %v %v\">\n",
		size, size, size, size)

	// Clipping mask that cuts the hole out of the wheel. The white circle
	// is kept, the black one removed.
	p("  <defs>\n")
	p("    <mask id=\"rim-clip\">\n")
	p("      <circle cx=\"%v\" cy=\"%v\" r=\"%v\" fill=\"white\"/>\n", center.X, center.Y, mask.OuterRadius)
	p("      <circle cx=\"%v\" cy=\"%v\" r=\"%v\" fill=\"black\"/>\n", center.X, center.Y, mask.InnerRadius)
	p("    </mask>\n")
	p("  </defs>\n")

	p("  <g mask=\"url(#rim-clip)\">\n")
	labelAt := drawing.PolarToCartesian(center, w.radius*labelRadiusRatio, 0)
	for _, wd := range w.Wedges() {
		p("    <g transform=\"rotate(%v, %v, %v)\" fill=\"%s\" stroke=\"%s\">\n",
			wd.RotationDegrees, center.X, center.Y, wd.FillColor.Hex(), wd.StrokeColor.Hex())
		p("      <path d=\"%s\" stroke=\"none\" stroke-width=\"0\"/>\n", wd.PathString)
		p("      <text text-anchor=\"middle\" x=\"%v\" y=\"%v\" fill=\"%s\" stroke=\"%s\">%s</text>\n",
			labelAt.X, labelAt.Y, wd.TextColor.Hex(), wd.TextColor.Hex(), wd.Label)
		p("    </g>\n")
	}
	p("  </g>\n")

	if scale != nil {
		p("  <g>\n")
		for _, line := range w.Constellation(*scale) {
			p("    <line x1=\"%v\" y1=\"%v\" x2=\"%v\" y2=\"%v\" stroke=\"%s\" stroke-width=\"%v\" stroke-linecap=\"round\" opacity=\"%v\"/>\n",
				line.From.X, line.From.Y, line.To.X, line.To.Y,
				line.Color.Hex(), line.StrokeWidth, line.Opacity)
		}
		p("  </g>\n")
	}

	p("</svg>\n")
	return err
}
