// Package window runs a Match inside an Ebiten window.
package window

import (
	"errors"
	"log/slog"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

// Game adapts a Match to ebiten.Game. Ebiten calls Update at 60 TPS, which
// is the match tick rate.
type Game struct {
	match  *game.Match
	logger *slog.Logger

	face *text.GoXFace

	// Input sources; replaced in tests.
	keyPressed func(ebiten.Key) bool
	closing    func() bool
	copyText   func(string) error

	prevKeys map[ebiten.Key]bool
	copied   bool // summary copied during this continue menu
}

// New wraps m. Callers should enable ebiten.SetWindowClosingHandled so a
// window close reaches the match as a close input.
func New(m *game.Match, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.Default()
	}
	return &Game{
		match:      m,
		logger:     logger,
		face:       text.NewGoXFace(basicfont.Face7x13),
		keyPressed: ebiten.IsKeyPressed,
		closing:    ebiten.IsWindowBeingClosed,
		copyText:   clipboard.WriteAll,
		prevKeys:   make(map[ebiten.Key]bool),
	}
}

func (g *Game) Update() error {
	in := g.pollInput()

	if g.match.State() != game.StateContinueMenu {
		g.copied = false
	} else if in.CopySummary && !g.copied {
		g.copySummary()
	}

	if err := g.match.Step(in); err != nil {
		if errors.Is(err, game.ErrQuit) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (g *Game) copySummary() {
	summary := g.match.Summary().String()
	if err := g.copyText(summary); err != nil {
		g.logger.Warn("copy summary to clipboard", "err", err)
		return
	}
	g.copied = true
	g.logger.Info("match summary copied", "summary", summary)
}

func (g *Game) Draw(screen *ebiten.Image) {
	drawFrame(screen, g.match.Frame(), g.face, g.copied)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return game.FieldWidth, game.FieldHeight
}
