// Command terminal plays Ping Pong in a text terminal.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Ping-Pong/internal/app"
	"github.com/Garsondee/Ping-Pong/internal/logger"
	"github.com/Garsondee/Ping-Pong/internal/terminal"
)

func main() {
	a, err := app.New("ping-pong-term", os.Args[1:])
	if err != nil {
		logger.Fatal("startup failed", "err", err)
	}
	if err := run(a); err != nil {
		a.Close()
		logger.Fatal("game exited", "err", err)
	}
	a.Logger.Info("bye", "summary", a.Match.Summary().String())
	a.Close()
}

func run(a *app.App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	term := terminal.New(screen, a.Logger)
	if err := term.Start(); err != nil {
		return err
	}
	defer term.Close()
	return term.Run(a.Match)
}
