package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

// pollInput samples the keyboard once per tick. Movement keys are level
// triggered; menu keys are edge triggered so a held key fires once.
func (g *Game) pollInput() game.Input {
	currentKeys := map[ebiten.Key]bool{}
	held := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if g.keyPressed(k) {
				return true
			}
		}
		return false
	}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = g.keyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	enter := pressed(ebiten.KeyEnter)
	numpadEnter := pressed(ebiten.KeyNumpadEnter)
	escape := pressed(ebiten.KeyEscape)

	in := game.Input{
		Up:          held(ebiten.KeyW, ebiten.KeyArrowUp),
		Down:        held(ebiten.KeyS, ebiten.KeyArrowDown),
		Confirm:     enter || numpadEnter,
		Continue:    pressed(ebiten.KeyC),
		Quit:        pressed(ebiten.KeyQ),
		Close:       escape || g.closing(),
		CopySummary: pressed(ebiten.KeyY),
	}

	g.prevKeys = currentKeys
	return in
}
