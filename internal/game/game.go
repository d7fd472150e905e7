package game

import (
	"math"
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// TickRate is the frame rate the speeds are expressed against.
const TickRate = 60

// Game owns the board, both paddles and the ball.
type Game struct {
	Board    Board
	Ball     *Ball
	Player   *Paddle // Left side
	Computer *Paddle // Right side

	PlayerScore   int
	ComputerScore int
	Frame         int

	playerCtl   Controller
	computerCtl Controller
	rng         *rand.Rand
}

// Option customises a Game at construction.
type Option func(*Game)

// WithRand sets the source used for serve directions.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithPlayerController replaces the human controller on the left paddle.
func WithPlayerController(c Controller) Option {
	return func(g *Game) {
		g.playerCtl = c
	}
}

// New creates a game on the given board. It fails if the board cannot hold
// the fixed paddle and ball geometry.
func New(board Board, opts ...Option) (*Game, error) {
	if err := board.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid board")
	}

	g := &Game{
		Board:       board,
		playerCtl:   HumanControlled{},
		computerCtl: ScriptedController{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Short boards start the paddles against the bottom wall.
	startY := math.Min(PaddleStartY, board.Height-PaddleHeight)
	g.Player = NewPaddle(PaddleMargin, startY, board.Height)
	g.Computer = NewPaddle(board.Width-PaddleMargin-PaddleWidth, startY, board.Height)
	g.Ball = NewBall(board.CenterX()+ServeOffset, board.CenterY(), board, g.rng)

	return g, nil
}

// Step runs one frame. The ball moves against last frame's paddles, then
// the paddles react, so paddle motion reaches the ball one frame late.
func (g *Game) Step(in InputState) Events {
	g.Frame++

	ev := g.Ball.UpdatePosition(g.Player, g.Computer)
	g.playerCtl.Advance(g.Player, in, g.Ball)
	g.computerCtl.Advance(g.Computer, in, g.Ball)

	if ev.Has(EventPlayerScored) {
		g.PlayerScore++
	}
	if ev.Has(EventComputerScored) {
		g.ComputerScore++
	}
	return ev
}
