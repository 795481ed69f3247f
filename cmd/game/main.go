package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Ping-Pong/internal/app"
	"github.com/Garsondee/Ping-Pong/internal/game"
	"github.com/Garsondee/Ping-Pong/internal/logger"
	"github.com/Garsondee/Ping-Pong/internal/window"
)

func main() {
	a, err := app.New("ping-pong", os.Args[1:])
	if err != nil {
		logger.Fatal("startup failed", "err", err)
	}
	defer a.Close()

	scale := a.Config.Window.Scale
	ebiten.SetWindowTitle(a.Config.Window.Title)
	ebiten.SetWindowSize(int(game.FieldWidth*scale), int(game.FieldHeight*scale))
	ebiten.SetTPS(game.TicksPerSecond)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(window.New(a.Match, a.Logger)); err != nil {
		a.Close()
		logger.Fatal("game exited", "err", err)
	}
	a.Logger.Info("bye", "summary", a.Match.Summary().String())
}
