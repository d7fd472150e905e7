package render

import "image/color"

// Canvas is a 2D surface in board units. Implementations may scale.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	StrokeDashedLine(x0, y0, x1, y1, width float64, dash []float64, c color.Color)
}
