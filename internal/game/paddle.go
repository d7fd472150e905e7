package game

// Paddle is a vertical bar that can only move along Y.
// YSpeed is never driven by movement; it only feeds spin into the ball
// and is zeroed whenever the paddle is stopped by a wall.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	YSpeed        float64
	CourtHeight   float64
}

func NewPaddle(x, y float64, courtHeight float64) *Paddle {
	return &Paddle{
		X:           x,
		Y:           y,
		Width:       PaddleWidth,
		Height:      PaddleHeight,
		CourtHeight: courtHeight,
	}
}

// Move translates the paddle and stops it dead at the top or bottom wall
func (p *Paddle) Move(dx, dy float64) {
	p.X += dx
	p.Y += dy

	if p.Y < 0 {
		p.Y = 0
		p.YSpeed = 0
	} else if p.Y+p.Height > p.CourtHeight {
		p.Y = p.CourtHeight - p.Height
		p.YSpeed = 0
	}
}

// UpdateFromInput moves the paddle one step toward the held key.
// Up is checked first, so it wins when both are held.
func (p *Paddle) UpdateFromInput(in InputState) {
	if in.Held(DirUp) {
		p.Move(0, -PaddleStep)
	} else if in.Held(DirDown) {
		p.Move(0, PaddleStep)
	}
}

// UpdateFromTarget tracks the ball's Y with the scripted policy: exact
// offset inside the deadband, capped at MaxAISpeed outside it.
func (p *Paddle) UpdateFromTarget(ball *Ball) {
	diff := ball.Y - p.CenterY()
	if diff < -AIDeadband {
		diff = -MaxAISpeed
	} else if diff > AIDeadband {
		diff = MaxAISpeed
	}

	p.Move(0, diff)

	// Move already clamps; this second bound check is kept as-is.
	if p.Y < 0 {
		p.Y = 0
	} else if p.Y+p.Height > p.CourtHeight {
		p.Y = p.CourtHeight - p.Height
	}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Right() float64 {
	return p.X + p.Width
}

func (p *Paddle) Bottom() float64 {
	return p.Y + p.Height
}
