package game

import "math/rand"

const (
	ballSize  = 20
	ballSpeed = 5
)

// Ball moves diagonally at a fixed speed. Only the signs of VX and VY ever
// change; the magnitude stays ballSpeed for the life of the ball.
type Ball struct {
	Rect   Rect
	VX, VY int

	fieldWidth  int
	fieldHeight int
	rng         *rand.Rand
}

// NewBall creates a ball centred in the playfield with a random direction.
func NewBall(fieldWidth, fieldHeight int, rng *rand.Rand) *Ball {
	b := &Ball{
		Rect:        Rect{W: ballSize, H: ballSize},
		VX:          ballSpeed,
		VY:          ballSpeed,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
		rng:         rng,
	}
	b.Reset()
	return b
}

// Move advances the ball one tick and bounces it off the top and bottom walls.
func (b *Ball) Move() {
	b.Rect = b.Rect.Translate(b.VX, b.VY)
	if b.Rect.Top() <= 0 || b.Rect.Bottom() >= b.fieldHeight {
		b.VY = -b.VY
	}
}

// BounceX reverses horizontal travel. Used on paddle contact.
func (b *Ball) BounceX() {
	b.VX = -b.VX
}

// Reset puts the ball back at the centre of the playfield and picks a new
// sign for each velocity component independently.
func (b *Ball) Reset() {
	b.Rect = b.Rect.CenteredAt(b.fieldWidth/2, b.fieldHeight/2)
	b.VX *= b.randomSign()
	b.VY *= b.randomSign()
}

func (b *Ball) randomSign() int {
	if b.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
