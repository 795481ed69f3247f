package game

const (
	paddleWidth  = 10
	paddleHeight = 64
	paddleStep   = 8
	// paddles start centred on a 60-unit span
	paddleStartOffset = 60
)

// Direction is a vertical paddle move.
type Direction int

const (
	Up Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Paddle is one of the two vertical bats.
type Paddle struct {
	Rect Rect

	fieldHeight int
}

// NewPaddle creates a paddle with its left edge at x, vertically centred in a
// playfield of the given height.
func NewPaddle(x, fieldHeight int) *Paddle {
	return &Paddle{
		Rect:        Rect{X: x, Y: (fieldHeight - paddleStartOffset) / 2, W: paddleWidth, H: paddleHeight},
		fieldHeight: fieldHeight,
	}
}

// Move shifts the paddle one step in dir. A step that would leave any part of
// the paddle outside [0, fieldHeight] is refused.
func (p *Paddle) Move(dir Direction) {
	dy := paddleStep
	if dir == Up {
		dy = -paddleStep
	}
	next := p.Rect.Translate(0, dy)
	if next.Top() < 0 || next.Bottom() > p.fieldHeight {
		return
	}
	p.Rect = next
}
