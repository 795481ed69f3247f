package terminal

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return New(screen, nil), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func cell(screen tcell.SimulationScreen, x, y int) rune {
	r, _, _, _ := screen.GetContent(x, y)
	return r
}

func TestPoll_PressKeysFireOnce(t *testing.T) {
	term, _ := newSimTerminal(t, 90, 30)
	term.handleEvent(key(tcell.KeyEnter))
	term.handleEvent(runeKey('c'))
	term.handleEvent(runeKey('Q'))

	in := term.Poll()
	if !in.Confirm || !in.Continue || !in.Quit {
		t.Fatalf("expected confirm, continue and quit, got %+v", in)
	}
	if in = term.Poll(); in.Confirm || in.Continue || in.Quit {
		t.Fatalf("press keys repeated on the next tick: %+v", in)
	}
}

func TestPoll_MovementHeldForHoldTicks(t *testing.T) {
	term, _ := newSimTerminal(t, 90, 30)
	term.handleEvent(runeKey('w'))
	for i := 0; i < holdTicks; i++ {
		if in := term.Poll(); !in.Up || in.Down {
			t.Fatalf("tick %d: expected up held, got %+v", i, in)
		}
	}
	if in := term.Poll(); in.Up {
		t.Fatal("up still held after the hold window")
	}
}

func TestPoll_OppositeKeyReleasesHeld(t *testing.T) {
	term, _ := newSimTerminal(t, 90, 30)
	term.handleEvent(key(tcell.KeyUp))
	term.Poll()
	term.handleEvent(key(tcell.KeyDown))
	if in := term.Poll(); in.Up || !in.Down {
		t.Fatalf("expected only down, got %+v", in)
	}
}

func TestPoll_EscapeAndCtrlCClose(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyEscape, tcell.KeyCtrlC} {
		term, _ := newSimTerminal(t, 90, 30)
		term.handleEvent(key(k))
		if in := term.Poll(); !in.Close {
			t.Fatalf("key %v: expected close", k)
		}
	}
}

func TestStart_PumpsEvents(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	term := New(screen, nil)
	if err := term.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer term.Close()

	if err := screen.PostEvent(key(tcell.KeyEnter)); err != nil {
		t.Fatalf("post event: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if term.Poll().Confirm {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Enter never reached Poll")
}

func TestRender_StartMenuPrompt(t *testing.T) {
	term, screen := newSimTerminal(t, 90, 30)
	tm := game.NewTestMatch()
	term.Render(tm.Match.Frame())

	// 29 runes at 10px per cell centre on column 30; y=300 is row 15.
	want := "Press Enter to start the game"
	for i, r := range want {
		if got := cell(screen, 30+i, 15); got != r {
			t.Fatalf("column %d: expected %q, got %q", 30+i, r, got)
		}
	}
}

func TestRender_PlayfieldScaled(t *testing.T) {
	term, screen := newSimTerminal(t, 90, 30)
	tm := game.NewTestMatch(game.WithState(game.StatePlaying), game.WithScore(3, 4))
	term.Render(tm.Match.Frame())

	// Paddles start at y=270..333 which covers rows 13 to 16.
	for row := 13; row <= 16; row++ {
		if cell(screen, 0, row) != runePaddle {
			t.Fatalf("left paddle missing at row %d", row)
		}
		if cell(screen, 89, row) != runePaddle {
			t.Fatalf("right paddle missing at row %d", row)
		}
	}
	if cell(screen, 0, 12) == runePaddle {
		t.Fatal("left paddle drawn above its rect")
	}

	// The ball sits centred at (440,290)-(460,310).
	if cell(screen, 44, 14) != runeBall || cell(screen, 45, 15) != runeBall {
		t.Fatal("ball not drawn at the centre")
	}

	// Labels sit on row 1.
	if cell(screen, 42, 1) != '3' || cell(screen, 47, 1) != '4' {
		t.Fatalf("scores misplaced: %q %q", cell(screen, 42, 1), cell(screen, 47, 1))
	}
	if cell(screen, 32, 1) != 'Y' || cell(screen, 52, 1) != 'O' {
		t.Fatal("side labels misplaced")
	}
}

func TestRender_ZeroSizeScreen(t *testing.T) {
	term, _ := newSimTerminal(t, 0, 0)
	term.Render(game.NewTestMatch().Match.Frame())
}

func TestRun_QuitFromContinueMenu(t *testing.T) {
	term, _ := newSimTerminal(t, 90, 30)
	tm := game.NewTestMatch(game.WithState(game.StateContinueMenu))
	term.events <- runeKey('q')

	done := make(chan error, 1)
	go func() { done <- term.Run(tm.Match) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean quit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}
