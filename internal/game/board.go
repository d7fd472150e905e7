package game

import (
	"math"

	"github.com/pkg/errors"
)

// Fixed geometry and speeds of the simulation.
const (
	DefaultWidth  = 700.0
	DefaultHeight = 600.0

	PaddleWidth  = 20.0
	PaddleHeight = 100.0
	PaddleMargin = 20.0 // Gap between a paddle and its side wall
	PaddleStartY = 100.0
	PaddleStep   = 5.0 // Human paddle movement per frame

	MaxAISpeed  = 3.0 // Scripted paddle speed cap
	AIDeadband  = 4.0 // Offsets within this range are followed exactly
	BallRadius  = 10.0
	ServeSpeed  = 5.0 // Horizontal speed after a score and after a paddle hit
	ServeSpin   = 3.0 // Vertical speed magnitude after a score
	ServeOffset = 10.0
	OpeningSpin = 1.0
)

// Board is the playing surface in surface units (pixels).
type Board struct {
	Width  float64
	Height float64
}

// DefaultBoard returns the board the game was tuned for.
func DefaultBoard() Board {
	return Board{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate reports whether the board can host both paddles and the ball
func (b Board) Validate() error {
	if !isFinite(b.Width) || !isFinite(b.Height) {
		return errors.Errorf("board dimensions must be finite, got %vx%v", b.Width, b.Height)
	}
	if b.Height < PaddleHeight || b.Height <= 2*BallRadius {
		return errors.Errorf("board height must be at least %v, got %v", PaddleHeight, b.Height)
	}
	// Both serve points must leave the ball clear of the paddles.
	if minW := 2 * (PaddleMargin + PaddleWidth + ServeOffset + BallRadius); b.Width <= minW {
		return errors.Errorf("board width must be greater than %v, got %v", minW, b.Width)
	}
	return nil
}

// CenterX is the horizontal midpoint used for serves and side selection.
func (b Board) CenterX() float64 {
	return b.Width / 2
}

// CenterY is the vertical midpoint.
func (b Board) CenterY() float64 {
	return b.Height / 2
}

// LineX is where the dashed center line is drawn.
func (b Board) LineX() float64 {
	return (b.Width - 5) / 2
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
