package game

import (
	"errors"
	"testing"

	"github.com/Garsondee/Ping-Pong/internal/audio"
)

func TestMatch_StartsInStartMenu(t *testing.T) {
	tm := NewTestMatch()
	if tm.Match.State() != StateStartMenu {
		t.Fatalf("expected start menu, got %s", tm.Match.State())
	}
	if tm.Match.Score != (Score{}) {
		t.Fatalf("expected 0-0, got %+v", tm.Match.Score)
	}
}

func TestMatch_StartMenuIgnoresEverythingButConfirm(t *testing.T) {
	tm := NewTestMatch()
	ball := tm.Match.Ball.Rect
	left := tm.Match.Left.Rect
	for _, in := range []Input{
		{},
		{Up: true},
		{Down: true},
		{Continue: true},
		{Quit: true},
		{CopySummary: true},
	} {
		if err := tm.Step(in); err != nil {
			t.Fatalf("input %+v: unexpected error %v", in, err)
		}
		if tm.Match.State() != StateStartMenu {
			t.Fatalf("input %+v moved the match to %s", in, tm.Match.State())
		}
	}
	if tm.Match.Ball.Rect != ball || tm.Match.Left.Rect != left {
		t.Fatal("simulation advanced while in the start menu")
	}
	if n := tm.Sounds.Count(audio.CueGameStart); n != 0 {
		t.Fatalf("expected no game start cue, got %d", n)
	}
	if n := tm.Sounds.Count(audio.CueWaiting); n != 6 {
		t.Fatalf("expected the waiting cue on every menu tick, got %d", n)
	}
}

func TestMatch_ConfirmStartsPlaying(t *testing.T) {
	tm := NewTestMatch()
	_ = tm.Step(Input{})
	if err := tm.Step(Input{Confirm: true}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tm.Match.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", tm.Match.State())
	}
	if n := tm.Sounds.Count(audio.CueGameStart); n != 1 {
		t.Fatalf("expected exactly one game start cue, got %d", n)
	}
	if len(tm.Sounds.Stopped) != 1 || tm.Sounds.Stopped[0] != audio.CueWaiting {
		t.Fatalf("expected the waiting cue to be stopped, got %v", tm.Sounds.Stopped)
	}
	if !tm.Log.HasEntry("state", "transition", "start_menu -> playing") {
		t.Fatalf("transition not logged:\n%s", tm.Log.Format())
	}
}

func TestMatch_CloseQuitsFromEveryState(t *testing.T) {
	for _, s := range []State{StateStartMenu, StatePlaying, StateContinueMenu} {
		tm := NewTestMatch(WithState(s))
		err := tm.Step(Input{Close: true, Confirm: true, Continue: true})
		if !errors.Is(err, ErrQuit) {
			t.Fatalf("state %s: expected ErrQuit, got %v", s, err)
		}
		if tm.Match.State() != s {
			t.Fatalf("state %s: close must not transition, got %s", s, tm.Match.State())
		}
	}
}

func TestMatch_PlayerMovesLeftPaddle(t *testing.T) {
	tm := NewTestMatch(WithState(StatePlaying), WithBallVelocity(-5, 5))
	start := tm.Match.Left.Rect.Y
	_ = tm.Step(Input{Up: true})
	if tm.Match.Left.Rect.Y != start-8 {
		t.Fatalf("expected left paddle at %d, got %d", start-8, tm.Match.Left.Rect.Y)
	}
	_ = tm.Step(Input{Down: true})
	_ = tm.Step(Input{Down: true})
	if tm.Match.Left.Rect.Y != start+8 {
		t.Fatalf("expected left paddle at %d, got %d", start+8, tm.Match.Left.Rect.Y)
	}
	_ = tm.Step(Input{Up: true, Down: true})
	if tm.Match.Left.Rect.Y != start+8 {
		t.Fatalf("holding both keys should cancel out, got %d", tm.Match.Left.Rect.Y)
	}
}

func TestMatch_AITracksOnlyIncomingBall(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(270, 100),
		WithBall(400, 400),
		WithBallVelocity(-5, 5),
	)
	_ = tm.Step(Input{})
	if tm.Match.Right.Rect.Y != 100 {
		t.Fatalf("AI moved while the ball was heading away: y=%d", tm.Match.Right.Rect.Y)
	}

	tm = NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(270, 100),
		WithBall(400, 400),
		WithBallVelocity(5, 5),
	)
	_ = tm.Step(Input{})
	if tm.Match.Right.Rect.Y != 108 {
		t.Fatalf("expected AI to chase the ball down to y=108, got %d", tm.Match.Right.Rect.Y)
	}

	tm = NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(270, 400),
		WithBall(400, 100),
		WithBallVelocity(5, 5),
	)
	_ = tm.Step(Input{})
	if tm.Match.Right.Rect.Y != 392 {
		t.Fatalf("expected AI to chase the ball up to y=392, got %d", tm.Match.Right.Rect.Y)
	}
}

func TestMatch_AIHoldsWhenCentred(t *testing.T) {
	// Paddle centre 300 (268+32) equals ball centre 300 (290+10).
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(0, 268),
		WithBall(400, 290),
		WithBallVelocity(5, 5),
	)
	_ = tm.Step(Input{})
	if tm.Match.Right.Rect.Y != 268 {
		t.Fatalf("AI should hold when centred, got y=%d", tm.Match.Right.Rect.Y)
	}
}

func TestMatch_RightScoresWhenBallPassesLeftEdge(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithScore(1, 2),
		WithPaddleY(0, 268),
		WithBall(3, 300),
		WithBallVelocity(-5, 5),
	)
	if err := tm.Step(Input{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tm.Match.Score != (Score{Left: 1, Right: 3}) {
		t.Fatalf("expected 1-3, got %+v", tm.Match.Score)
	}
	if tm.Match.Ball.Rect.CenterX() != 450 || tm.Match.Ball.Rect.CenterY() != 300 {
		t.Fatalf("ball not re-served from centre: %+v", tm.Match.Ball.Rect)
	}
	if n := tm.Sounds.Count(audio.CueScore); n != 1 {
		t.Fatalf("expected one score cue, got %d", n)
	}
	if tm.Match.State() != StatePlaying {
		t.Fatalf("expected to keep playing, got %s", tm.Match.State())
	}
}

func TestMatch_LeftScoresWhenBallPassesRightEdge(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(0, 500),
		WithBall(876, 100),
		WithBallVelocity(5, 5),
	)
	_ = tm.Step(Input{})
	if tm.Match.Score != (Score{Left: 1, Right: 0}) {
		t.Fatalf("expected 1-0, got %+v", tm.Match.Score)
	}
	if n := tm.Sounds.Count(audio.CueScore); n != 1 {
		t.Fatalf("expected one score cue, got %d", n)
	}
}

func TestMatch_WinningPointIsSilentAndOpensContinueMenu(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithScore(4, 0),
		WithPaddleY(0, 500),
		WithBall(876, 100),
		WithBallVelocity(5, 5),
	)
	if err := tm.Step(Input{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tm.Match.Score != (Score{Left: 5, Right: 0}) {
		t.Fatalf("expected 5-0, got %+v", tm.Match.Score)
	}
	if n := tm.Sounds.Count(audio.CueScore); n != 0 {
		t.Fatalf("winning point must not play the score cue, got %d", n)
	}
	if tm.Match.State() != StateContinueMenu {
		t.Fatalf("expected continue menu, got %s", tm.Match.State())
	}
	if tm.Match.Ball.Rect.CenterX() != 450 || tm.Match.Ball.Rect.CenterY() != 300 {
		t.Fatalf("ball must still reset on the winning point: %+v", tm.Match.Ball.Rect)
	}
	if got := tm.Match.Summary().Winner(); got != "left" {
		t.Fatalf("expected left to win, got %q", got)
	}
}

func TestMatch_PaddleCollisionReversesBall(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(0, 268),
		WithBall(868, 290),
		WithBallVelocity(5, 5),
	)
	if err := tm.Step(Input{}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tm.Match.Ball.VX != -5 {
		t.Fatalf("expected vx=-5 after hitting the right paddle, got %d", tm.Match.Ball.VX)
	}
	if n := tm.Sounds.Count(audio.CueCollision); n != 1 {
		t.Fatalf("expected exactly one collision cue, got %d", n)
	}
	if tm.Match.Score != (Score{}) {
		t.Fatalf("collision must not score, got %+v", tm.Match.Score)
	}
	// No push-out: the ball keeps the position it moved to.
	if tm.Match.Ball.Rect.X != 873 {
		t.Fatalf("expected ball to stay at x=873, got %d", tm.Match.Ball.Rect.X)
	}

	_ = tm.Step(Input{})
	if n := tm.Sounds.Count(audio.CueCollision); n != 1 {
		t.Fatalf("ball should have left the paddle after one tick, collisions=%d", n)
	}
}

func TestMatch_LeftPaddleCollision(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(268, 0),
		WithBall(12, 290),
		WithBallVelocity(-5, 5),
	)
	_ = tm.Step(Input{})
	if tm.Match.Ball.VX != 5 {
		t.Fatalf("expected vx=5 after hitting the left paddle, got %d", tm.Match.Ball.VX)
	}
	if tm.Match.Score != (Score{}) {
		t.Fatalf("collision must not score, got %+v", tm.Match.Score)
	}
}

func TestMatch_ContinueMenuWaits(t *testing.T) {
	tm := NewTestMatch(WithState(StateContinueMenu), WithScore(5, 3))
	for _, in := range []Input{{}, {Up: true}, {Confirm: true}} {
		if err := tm.Step(in); err != nil {
			t.Fatalf("input %+v: unexpected error %v", in, err)
		}
		if tm.Match.State() != StateContinueMenu {
			t.Fatalf("input %+v left the continue menu", in)
		}
	}
	if tm.Match.Score != (Score{Left: 5, Right: 3}) {
		t.Fatalf("score changed in the continue menu: %+v", tm.Match.Score)
	}
}

func TestMatch_ContinueRestartsMatch(t *testing.T) {
	tm := NewTestMatch(WithState(StateContinueMenu), WithScore(2, 5), WithBall(10, 10))
	if err := tm.Step(Input{Continue: true}); err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if tm.Match.State() != StatePlaying {
		t.Fatalf("expected playing, got %s", tm.Match.State())
	}
	if tm.Match.Score != (Score{}) {
		t.Fatalf("expected scores reset, got %+v", tm.Match.Score)
	}
	if tm.Match.Ball.Rect.X != 440 || tm.Match.Ball.Rect.Y != 290 {
		t.Fatalf("expected ball reset, got %+v", tm.Match.Ball.Rect)
	}
	if n := tm.Sounds.Count(audio.CueGameStart); n != 1 {
		t.Fatalf("expected one game start cue, got %d", n)
	}
}

func TestMatch_QuitFromContinueMenu(t *testing.T) {
	tm := NewTestMatch(WithState(StateContinueMenu))
	if err := tm.Step(Input{Quit: true}); !errors.Is(err, ErrQuit) {
		t.Fatalf("expected ErrQuit, got %v", err)
	}
}

func TestMatch_QuitIgnoredWhilePlaying(t *testing.T) {
	tm := NewTestMatch(WithState(StatePlaying))
	if err := tm.Step(Input{Quit: true}); err != nil {
		t.Fatalf("quit should only act in the continue menu, got %v", err)
	}
}

func TestMatch_SummaryCountsRallies(t *testing.T) {
	tm := NewTestMatch(
		WithState(StatePlaying),
		WithPaddleY(0, 268),
		WithBall(868, 290),
		WithBallVelocity(5, 5),
	)
	_ = tm.Step(Input{})
	s := tm.Match.Summary()
	if s.Collisions != 1 || s.LongestRally != 1 || s.Ticks != 1 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if s.Winner() != "" {
		t.Fatalf("no one has won yet, got %q", s.Winner())
	}
}

func TestMatch_BotMatchFinishes(t *testing.T) {
	tm := NewTestMatch(WithSeed(3), WithBot(15))
	if !tm.RunToEnd(60 * 60 * 30) {
		t.Fatalf("expected a lagging bot to lose eventually; score %+v\n%s",
			tm.Match.Score, tm.Log.Format())
	}
	s := tm.Match.Summary()
	if s.Winner() == "" {
		t.Fatalf("finished match has no winner: %+v", s)
	}
	if got := tm.Log.Count("score", ""); got != s.Points {
		t.Fatalf("log has %d score entries, summary says %d points", got, s.Points)
	}
}
