package game

import "errors"

// InputSource is polled once per tick.
type InputSource interface {
	Poll() Input
}

// Renderer draws one frame.
type Renderer interface {
	Render(Frame)
}

// Run drives m until the player quits: poll, step, render, wait. pace blocks
// until the next tick is due and may be nil for an unpaced run. Frontends
// that own their own loop (ebiten) call Step directly instead.
func Run(m *Match, in InputSource, r Renderer, pace func()) error {
	for {
		if err := m.Step(in.Poll()); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			return err
		}
		r.Render(m.Frame())
		if pace != nil {
			pace()
		}
	}
}
