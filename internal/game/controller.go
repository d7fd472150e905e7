package game

// Controller advances one paddle per frame.
type Controller interface {
	Advance(p *Paddle, in InputState, ball *Ball)
}

// HumanControlled follows the held keys.
type HumanControlled struct{}

func (HumanControlled) Advance(p *Paddle, in InputState, _ *Ball) {
	p.UpdateFromInput(in)
}

// ScriptedController chases the ball.
type ScriptedController struct{}

func (ScriptedController) Advance(p *Paddle, _ InputState, ball *Ball) {
	p.UpdateFromTarget(ball)
}
