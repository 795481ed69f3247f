package game

// trackBall is the computer paddle policy for the right paddle. The paddle
// only reacts while the ball travels toward it (vx > 0) and then chases the
// ball's centre. No prediction.
func trackBall(paddle, ball Rect, vx int) (Direction, bool) {
	if vx <= 0 {
		return 0, false
	}
	return chase(paddle, ball)
}

func chase(paddle, ball Rect) (Direction, bool) {
	switch {
	case paddle.CenterY() < ball.CenterY():
		return Down, true
	case paddle.CenterY() > ball.CenterY():
		return Up, true
	default:
		return 0, false
	}
}

// Bot plays the left paddle through ordinary Input, reacting to the ball as
// it was lag ticks ago. It mirrors the right paddle's policy: it only tracks
// while the ball heads left. A lag of zero makes it as sharp as the computer
// opponent.
type Bot struct {
	lag     int
	history []Rect
}

// NewBot creates a bot with the given reaction lag in ticks.
func NewBot(lag int) *Bot {
	if lag < 0 {
		lag = 0
	}
	return &Bot{lag: lag, history: make([]Rect, 0, lag+2)}
}

// Input observes f and returns the keys the bot holds this tick.
func (b *Bot) Input(f Frame) Input {
	b.history = append(b.history, f.Ball)
	if len(b.history) > b.lag+2 {
		b.history = b.history[1:]
	}
	if len(b.history) < b.lag+2 {
		return Input{}
	}
	older, seen := b.history[0], b.history[1]
	if seen.X >= older.X {
		return Input{}
	}
	dir, ok := chase(f.Left, seen)
	if !ok {
		return Input{}
	}
	return Input{Up: dir == Up, Down: dir == Down}
}
