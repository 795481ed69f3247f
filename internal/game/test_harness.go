package game

import (
	"math/rand"

	"github.com/Garsondee/Ping-Pong/internal/audio"
)

// TestMatch is a headless match harness used by tests and the headless
// report. It wires a Match to an audio Recorder and a private MatchLog and
// supports deterministic seeding.
type TestMatch struct {
	Match  *Match
	Sounds *audio.Recorder
	Log    *MatchLog

	// Bot, when set, supplies the left paddle's input in RunTicks.
	Bot *Bot

	seed int64
}

// matchOptionKind controls the pass in which an option is applied.
type matchOptionKind int

const (
	matchOptInfra matchOptionKind = iota // seed and bot, applied before the match exists
	matchOptSetup                        // applied to the built match
)

// MatchOption is a builder function applied to a TestMatch during construction.
type MatchOption struct {
	kind matchOptionKind
	fn   func(*TestMatch)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.seed = seed
	}}
}

// WithBot lets a Bot with the given reaction lag play the left paddle.
func WithBot(lag int) MatchOption {
	return MatchOption{matchOptInfra, func(tm *TestMatch) {
		tm.Bot = NewBot(lag)
	}}
}

// WithState forces the starting state.
func WithState(s State) MatchOption {
	return MatchOption{matchOptSetup, func(tm *TestMatch) {
		tm.Match.state = s
	}}
}

// WithScore sets the starting score.
func WithScore(left, right int) MatchOption {
	return MatchOption{matchOptSetup, func(tm *TestMatch) {
		tm.Match.Score = Score{Left: left, Right: right}
	}}
}

// WithBall places the ball's top-left corner at (x, y).
func WithBall(x, y int) MatchOption {
	return MatchOption{matchOptSetup, func(tm *TestMatch) {
		tm.Match.Ball.Rect.X = x
		tm.Match.Ball.Rect.Y = y
	}}
}

// WithBallVelocity sets the ball velocity.
func WithBallVelocity(vx, vy int) MatchOption {
	return MatchOption{matchOptSetup, func(tm *TestMatch) {
		tm.Match.Ball.VX = vx
		tm.Match.Ball.VY = vy
	}}
}

// WithPaddleY sets the top edge of the left and right paddles.
func WithPaddleY(left, right int) MatchOption {
	return MatchOption{matchOptSetup, func(tm *TestMatch) {
		tm.Match.Left.Rect.Y = left
		tm.Match.Right.Rect.Y = right
	}}
}

// NewTestMatch constructs a TestMatch from the given options in two passes:
//  1. Infrastructure (seed, bot)
//  2. Build the match, then apply setup options
func NewTestMatch(opts ...MatchOption) *TestMatch {
	tm := &TestMatch{
		Sounds: &audio.Recorder{},
		Log:    NewMatchLog(),
		seed:   1,
	}
	for _, o := range opts {
		if o.kind == matchOptInfra {
			o.fn(tm)
		}
	}
	tm.Match = NewMatch(
		WithRand(rand.New(rand.NewSource(tm.seed))), // #nosec G404 -- test harness
		WithSounds(tm.Sounds),
		WithMatchLog(tm.Log),
	)
	for _, o := range opts {
		if o.kind == matchOptSetup {
			o.fn(tm)
		}
	}
	return tm
}

// Step advances one tick with the given input.
func (tm *TestMatch) Step(in Input) error {
	return tm.Match.Step(in)
}

// RunTicks advances n ticks with no player input (or the bot's, if set),
// stopping early if the match leaves the playing state. It returns the
// number of ticks run.
func (tm *TestMatch) RunTicks(n int) int {
	for i := 0; i < n; i++ {
		var in Input
		if tm.Bot != nil {
			in = tm.Bot.Input(tm.Match.Frame())
		}
		if err := tm.Match.Step(in); err != nil {
			return i + 1
		}
		if tm.Match.State() != StatePlaying {
			return i + 1
		}
	}
	return n
}

// RunToEnd confirms the start menu and plays until one side wins or
// maxTicks elapse. It reports whether the match finished.
func (tm *TestMatch) RunToEnd(maxTicks int) bool {
	if tm.Match.State() == StateStartMenu {
		_ = tm.Match.Step(Input{Confirm: true})
	}
	tm.RunTicks(maxTicks)
	return tm.Match.State() == StateContinueMenu
}
