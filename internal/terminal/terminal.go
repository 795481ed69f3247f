// Package terminal runs a Match in a text terminal through tcell.
package terminal

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held for this many ticks after its last event.
const holdTicks = 8

const eventBuffer = 64

// Terminal is both the input source and the renderer of a terminal match.
type Terminal struct {
	screen tcell.Screen
	logger *slog.Logger

	events chan tcell.Event
	stop   chan struct{}
	done   chan struct{}

	upTicks   int
	downTicks int
	pending   game.Input
}

func New(screen tcell.Screen, logger *slog.Logger) *Terminal {
	if logger == nil {
		logger = slog.Default()
	}
	return &Terminal{
		screen: screen,
		logger: logger,
		events: make(chan tcell.Event, eventBuffer),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Start initialises the screen and begins pumping its events.
func (t *Terminal) Start() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	go t.pump()
	return nil
}

// Close restores the terminal and stops the event pump.
func (t *Terminal) Close() {
	close(t.stop)
	t.screen.Fini()
	<-t.done
}

func (t *Terminal) pump() {
	defer close(t.done)
	for {
		// PollEvent returns nil once the screen is finalised.
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.events <- ev:
		case <-t.stop:
			return
		}
	}
}

// Run plays m at the match tick rate until the player quits.
func (t *Terminal) Run(m *game.Match) error {
	ticker := time.NewTicker(time.Second / game.TicksPerSecond)
	defer ticker.Stop()
	return game.Run(m, t, t, func() { <-ticker.C })
}

// Poll drains pending terminal events into one tick of input.
func (t *Terminal) Poll() game.Input {
drain:
	for {
		select {
		case ev := <-t.events:
			t.handleEvent(ev)
		default:
			break drain
		}
	}

	in := t.pending
	t.pending = game.Input{}
	if t.upTicks > 0 {
		in.Up = true
		t.upTicks--
	}
	if t.downTicks > 0 {
		in.Down = true
		t.downTicks--
	}
	return in
}

func (t *Terminal) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.logger.Debug("terminal resized", "cols", cols, "rows", rows)
		t.screen.Sync()
	case *tcell.EventKey:
		t.handleKey(ev)
	}
}

func (t *Terminal) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		t.holdUp()
	case tcell.KeyDown:
		t.holdDown()
	case tcell.KeyEnter:
		t.pending.Confirm = true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		t.pending.Close = true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			t.holdUp()
		case 's', 'S':
			t.holdDown()
		case 'c', 'C':
			t.pending.Continue = true
		case 'q', 'Q':
			t.pending.Quit = true
		}
	}
}

// A fresh press in one direction releases the other.
func (t *Terminal) holdUp() {
	t.upTicks, t.downTicks = holdTicks, 0
}

func (t *Terminal) holdDown() {
	t.upTicks, t.downTicks = 0, holdTicks
}
