package render

import "github.com/diegok/paddleball/internal/game"

// Center line dash pattern and stroke width, in board units.
var (
	LineDash  = []float64{15, 20}
	LineWidth = 5.0
)

// Scene draws one frame of g onto c.
func Scene(c Canvas, g *game.Game, p Palette) {
	b := g.Board
	c.FillRect(0, 0, b.Width, b.Height, p.Background)

	paddle(c, g.Computer, p)
	paddle(c, g.Player, p)

	c.FillCircle(g.Ball.X, g.Ball.Y, g.Ball.Radius, p.Ball)

	c.StrokeDashedLine(b.LineX(), 0, b.LineX(), b.Height, LineWidth, LineDash, p.Line)
}

func paddle(c Canvas, pd *game.Paddle, p Palette) {
	c.FillRect(pd.X, pd.Y, pd.Width, pd.Height, p.Paddle)
}

// DashSegments splits [0, length) into the "on" intervals of a dash pattern.
// An empty or non-positive pattern yields one solid segment.
func DashSegments(length float64, dash []float64) [][2]float64 {
	period := 0.0
	for _, d := range dash {
		if d < 0 {
			return [][2]float64{{0, length}}
		}
		period += d
	}
	if period <= 0 {
		return [][2]float64{{0, length}}
	}

	var segs [][2]float64
	pos := 0.0
	for i := 0; pos < length; i++ {
		d := dash[i%len(dash)]
		if i%2 == 0 && d > 0 {
			end := pos + d
			if end > length {
				end = length
			}
			segs = append(segs, [2]float64{pos, end})
		}
		pos += d
	}
	return segs
}
