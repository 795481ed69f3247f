package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

// textScale is the integer upscale applied to the 7x13 bitmap font so labels
// read at roughly the size of a 36px UI font.
const textScale = 2

var (
	colorBackground = color.RGBA{A: 255}
	colorPaddle     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorBall       = color.RGBA{G: 255, A: 255}
	colorNet        = color.RGBA{R: 255, G: 255, A: 255}
	colorScore      = color.RGBA{G: 255, A: 255}
	colorLabel      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorPrompt     = color.RGBA{R: 255, G: 255, A: 255}
	colorHint       = color.RGBA{R: 140, G: 140, B: 140, A: 255}
)

func drawFrame(screen *ebiten.Image, f game.Frame, face text.Face, copied bool) {
	screen.Fill(colorBackground)

	if f.State != game.StatePlaying {
		drawPrompt(screen, f, face, copied)
		return
	}

	fillRect(screen, f.Left, colorPaddle)
	fillRect(screen, f.Right, colorPaddle)

	// The ball is the ellipse inscribed in its rect; the rect is square.
	r := float32(min(f.Ball.W, f.Ball.H)) / 2
	vector.FillCircle(screen, float32(f.Ball.X)+float32(f.Ball.W)/2, float32(f.Ball.Y)+float32(f.Ball.H)/2, r, colorBall, true)

	for _, d := range f.CenterLine() {
		fillRect(screen, d, colorNet)
	}

	measure := func(s string) int { return measureText(s, face) }
	for _, l := range f.Labels(measure) {
		c := colorLabel
		if l.Score {
			c = colorScore
		}
		drawText(screen, l.Text, face, l.X, l.Y, c)
	}
}

func drawPrompt(screen *ebiten.Image, f game.Frame, face text.Face, copied bool) {
	msg := f.State.Prompt()
	x, y := f.PromptOrigin(measureText(msg, face), lineHeight(face))
	drawText(screen, msg, face, x, y, colorPrompt)

	if f.State != game.StateContinueMenu {
		return
	}
	hint := "Press Y to copy the match summary"
	if copied {
		hint = "Match summary copied"
	}
	hx, _ := f.PromptOrigin(measureText(hint, face), 0)
	drawText(screen, hint, face, hx, y+2*lineHeight(face), colorHint)
}

func fillRect(screen *ebiten.Image, r game.Rect, c color.Color) {
	vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y int, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func measureText(s string, face text.Face) int {
	return int(text.Advance(s, face) * textScale)
}

func lineHeight(face text.Face) int {
	m := face.Metrics()
	return int((m.HAscent + m.HDescent) * textScale)
}
