package game

import (
	"math/rand"
	"time"
)

type Ball struct {
	X, Y           float64
	Radius         float64
	XSpeed, YSpeed float64

	court Board
	rng   *rand.Rand
}

// NewBall places a ball at (x, y) heading toward a random side. A nil rng
// is replaced by a time-seeded source.
func NewBall(x, y float64, court Board, rng *rand.Rand) *Ball {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	b := &Ball{
		X:      x,
		Y:      y,
		Radius: BallRadius,
		YSpeed: OpeningSpin,
		court:  court,
		rng:    rng,
	}
	b.XSpeed = ServeSpeed * b.randomDirection()
	return b
}

// randomDirection returns -1 or 1 with equal probability
func (b *Ball) randomDirection() float64 {
	if b.rng.Float64() > 0.5 {
		return -1
	}
	return 1
}

func (b *Ball) Top() float64    { return b.Y - b.Radius }
func (b *Ball) Bottom() float64 { return b.Y + b.Radius }
func (b *Ball) Left() float64   { return b.X - b.Radius }
func (b *Ball) Right() float64  { return b.X + b.Radius }

// UpdatePosition advances the ball one frame against the two paddles.
//
// The edges used for the paddle test are taken right after integration,
// before the wall snap and any serve reset, so a frame that scores still
// tests against the paddle on the side the ball left from.
func (b *Ball) UpdatePosition(left, right *Paddle) Events {
	var ev Events

	b.X += b.XSpeed
	b.Y += b.YSpeed

	top, rightX, bottom, leftX := b.Top(), b.Right(), b.Bottom(), b.Left()

	if b.Y-b.Radius < 0 {
		b.Y = b.Radius
		b.YSpeed = -b.YSpeed
		ev |= EventWallBounce
	} else if b.Y+b.Radius > b.court.Height {
		b.Y = b.court.Height - b.Radius
		b.YSpeed = -b.YSpeed
		ev |= EventWallBounce
	}

	if b.X < 0 {
		b.serve(ServeSpeed, b.court.CenterX()+ServeOffset)
		ev |= EventComputerScored
	} else if b.X > b.court.Width {
		b.serve(-ServeSpeed, b.court.CenterX()-ServeOffset)
		ev |= EventPlayerScored
	}

	if rightX < b.court.CenterX() {
		if overlaps(leftX, top, rightX, bottom, left) {
			b.bounce(ServeSpeed, left)
			ev |= EventPaddleHit
		}
	} else {
		if overlaps(leftX, top, rightX, bottom, right) {
			b.bounce(-ServeSpeed, right)
			ev |= EventPaddleHit
		}
	}

	return ev
}

// serve re-launches the ball from (x, center Y) after a score.
func (b *Ball) serve(xSpeed, x float64) {
	b.XSpeed = xSpeed
	b.YSpeed = ServeSpin * b.randomDirection()
	b.X = x
	b.Y = b.court.CenterY()
}

// bounce sends the ball away from p and nudges it once more along X so it
// clears the paddle before the next frame's test.
func (b *Ball) bounce(xSpeed float64, p *Paddle) {
	b.XSpeed = xSpeed
	b.YSpeed += p.YSpeed / 2
	b.X += b.XSpeed
}

func overlaps(left, top, right, bottom float64, p *Paddle) bool {
	return right > p.X && left < p.Right() &&
		top < p.Bottom() && bottom > p.Y
}
