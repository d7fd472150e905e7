package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/paddleball/internal/game"
	"github.com/diegok/paddleball/internal/render"
)

const (
	BallChar  = '\u2B24' // ⬤
	BlockChar = '\u2588' // █
)

// Renderer draws the court scaled to the terminal, with a status bar on
// the last row. It implements render.Canvas in board units.
type Renderer struct {
	screen *Screen
	board  game.Board

	scaleX, scaleY float64
	rows           int // Rows available to the court
	cols           int
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, board game.Board) *Renderer {
	return &Renderer{screen: screen, board: board}
}

// RenderGame displays one frame of the game
func (r *Renderer) RenderGame(g *game.Game, muted bool) {
	r.screen.Clear()
	r.resize()

	render.Scene(r, g, render.DefaultPalette)

	// Status bar at bottom
	statusY := r.rows
	statusStyle := tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)
	for x := 0; x < r.cols; x++ {
		r.screen.SetCell(x, statusY, statusStyle, ' ')
	}
	sound := "on"
	if muted {
		sound = "off"
	}
	statusText := fmt.Sprintf(" Player %d - %d Computer | Frame %d | m: sound %s | q: quit",
		g.PlayerScore, g.ComputerScore, g.Frame, sound)
	r.screen.DrawText(0, statusY, statusText, statusStyle)

	r.screen.Show()
}

func (r *Renderer) resize() {
	w, h := r.screen.Size()
	r.cols = w
	r.rows = h - 1 // -1 for status bar
	if r.rows < 1 {
		r.rows = 1
	}
	r.scaleX = float64(r.cols) / r.board.Width
	r.scaleY = float64(r.rows) / r.board.Height
}

// cellSpan maps [from, from+size) in board units to a half-open cell range,
// at least one cell wide, clipped to [0, limit).
func cellSpan(from, size, scale float64, limit int) (int, int) {
	start := int(math.Floor(from * scale))
	end := int(math.Ceil((from + size) * scale))
	if end <= start {
		end = start + 1
	}
	if start < 0 {
		start = 0
	}
	if end > limit {
		end = limit
	}
	if end < start {
		end = start
	}
	return start, end
}

func (r *Renderer) FillRect(x, y, w, h float64, c color.Color) {
	x0, x1 := cellSpan(x, w, r.scaleX, r.cols)
	y0, y1 := cellSpan(y, h, r.scaleY, r.rows)
	style := tcell.StyleDefault.Background(tcellColor(c))
	if x1 > x0 && y1 > y0 {
		r.screen.FillRect(x0, y0, x1-x0, y1-y0, style, ' ')
	}
}

// FillCircle fills every cell whose centre lies inside the circle, or draws
// a single ball glyph when the circle is smaller than a cell.
func (r *Renderer) FillCircle(cx, cy, rad float64, c color.Color) {
	fg := tcellColor(c)
	filled := false

	x0, x1 := cellSpan(cx-rad, 2*rad, r.scaleX, r.cols)
	y0, y1 := cellSpan(cy-rad, 2*rad, r.scaleY, r.rows)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			bx := (float64(x) + 0.5) / r.scaleX
			by := (float64(y) + 0.5) / r.scaleY
			if math.Hypot(bx-cx, by-cy) <= rad {
				r.screen.SetCell(x, y, r.screen.StyleAt(x, y).Foreground(fg), BlockChar)
				filled = true
			}
		}
	}
	if filled {
		return
	}

	x, y := int(cx*r.scaleX), int(cy*r.scaleY)
	if x >= 0 && x < r.cols && y >= 0 && y < r.rows {
		r.screen.SetCell(x, y, r.screen.StyleAt(x, y).Foreground(fg), BallChar)
	}
}

// StrokeDashedLine draws the dashed line one cell thick; width is ignored.
func (r *Renderer) StrokeDashedLine(x0, y0, x1, y1, _ float64, dash []float64, c color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	glyph := '─'
	if math.Abs(dy) > math.Abs(dx) {
		glyph = '│'
	}
	fg := tcellColor(c)

	// Sample at least twice per cell along the line.
	step := 0.5 / math.Max(r.scaleX, r.scaleY)
	for _, seg := range render.DashSegments(length, dash) {
		for d := seg[0]; d < seg[1]; d += step {
			t := d / length
			x := int((x0 + dx*t) * r.scaleX)
			y := int((y0 + dy*t) * r.scaleY)
			if x < 0 || x >= r.cols || y < 0 || y >= r.rows {
				continue
			}
			r.screen.SetCell(x, y, r.screen.StyleAt(x, y).Foreground(fg), glyph)
		}
	}
}

func tcellColor(c color.Color) tcell.Color {
	red, green, blue := render.RGB255(c)
	return tcell.NewRGBColor(int32(red), int32(green), int32(blue))
}
