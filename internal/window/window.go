// Package window runs the game in a desktop window driven by ebiten.
package window

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/diegok/paddleball/internal/game"
	"github.com/diegok/paddleball/internal/render"
)

const title = "Paddleball"

// Host is what the window needs from the running application.
type Host interface {
	Game() *game.Game
	Step(in game.InputState) game.Events
	Done() bool
	Quit() <-chan struct{}
	ToggleMute() bool
	Muted() bool
}

// Options controls the window.
type Options struct {
	Scale float64
	Debug bool
}

type runner struct {
	host  Host
	opts  Options
	board game.Board
}

// Run opens the window and blocks until it is closed or the host stops.
// Ebiten calls Update at 60 ticks per second.
func Run(h Host, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	board := h.Game().Board

	ebiten.SetWindowSize(int(board.Width*opts.Scale), int(board.Height*opts.Scale))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(game.TickRate)

	r := &runner{host: h, opts: opts, board: board}
	if err := ebiten.RunGame(r); err != nil {
		return errors.Wrap(err, "window")
	}
	return nil
}

// Update reads the held keys and advances the game one frame.
func (r *runner) Update() error {
	select {
	case <-r.host.Quit():
		return ebiten.Termination
	default:
	}
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		r.host.ToggleMute()
	}

	r.host.Step(heldKeys())

	if r.host.Done() {
		return ebiten.Termination
	}
	return nil
}

func heldKeys() game.InputState {
	var in game.InputState
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		in.Press(game.DirUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		in.Press(game.DirDown)
	}
	return in
}

func (r *runner) Draw(screen *ebiten.Image) {
	g := r.host.Game()
	render.Scene(imageCanvas{screen}, g, render.DefaultPalette)

	score := fmt.Sprintf("%d   %d", g.PlayerScore, g.ComputerScore)
	text.Draw(screen, score, basicfont.Face7x13, int(r.board.LineX())-14, 20, color.White)
	if r.host.Muted() {
		text.Draw(screen, "muted", basicfont.Face7x13, 8, int(r.board.Height)-8, color.White)
	}
	if r.opts.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.1f FPS %.1f frame %d",
			ebiten.ActualTPS(), ebiten.ActualFPS(), g.Frame), 8, 8)
	}
}

// Layout keeps the logical surface at board size; ebiten scales it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return int(r.board.Width), int(r.board.Height)
}

// imageCanvas draws scene primitives onto an ebiten image in board units.
type imageCanvas struct {
	dst *ebiten.Image
}

func (c imageCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c imageCanvas) FillCircle(cx, cy, r float64, col color.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c imageCanvas) StrokeDashedLine(x0, y0, x1, y1, width float64, dash []float64, col color.Color) {
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	ux, uy := dx/length, dy/length
	// The stroke covers [x0, x0+width) across a vertical line.
	ox, oy := uy*width/2, -ux*width/2
	for _, seg := range render.DashSegments(length, dash) {
		vector.StrokeLine(c.dst,
			float32(x0+ux*seg[0]+ox), float32(y0+uy*seg[0]+oy),
			float32(x0+ux*seg[1]+ox), float32(y0+uy*seg[1]+oy),
			float32(width), col, false)
	}
}
