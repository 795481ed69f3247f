package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Garsondee/Ping-Pong/internal/audio"
)

const (
	// FieldWidth and FieldHeight are the fixed playfield size.
	FieldWidth  = 900
	FieldHeight = 600

	// TicksPerSecond is the target simulation rate.
	TicksPerSecond = 60

	// WinningScore ends a match.
	WinningScore = 5
)

// ErrQuit is returned by Step when the player quits or closes the game.
// It is a normal termination, not a failure.
var ErrQuit = errors.New("quit")

// Sounds receives audio cue requests.
type Sounds interface {
	Play(audio.Cue)
	Stop(audio.Cue)
}

// Match is the whole game: both paddles, the ball, the score and the menu
// state. A single Match owns every entity and is only mutated through Step.
type Match struct {
	Left  *Paddle
	Right *Paddle
	Ball  *Ball
	Score Score

	state State
	tick  int

	sounds  Sounds
	log     *MatchLog
	logger  *slog.Logger
	waiting bool // waiting cue requested since entering the start menu

	// Rally statistics for the summary.
	playTicks    int
	collisions   int
	rally        int
	longestRally int
	points       int
}

// Option configures a Match at construction.
type Option func(*matchConfig)

type matchConfig struct {
	rng    *rand.Rand
	sounds Sounds
	log    *MatchLog
	logger *slog.Logger
}

// WithRand sets the random source for ball direction.
func WithRand(rng *rand.Rand) Option {
	return func(c *matchConfig) { c.rng = rng }
}

// WithSounds routes cue requests to s.
func WithSounds(s Sounds) Option {
	return func(c *matchConfig) { c.sounds = s }
}

// WithMatchLog records events into ml.
func WithMatchLog(ml *MatchLog) Option {
	return func(c *matchConfig) { c.log = ml }
}

// WithLogger sets the structured logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(c *matchConfig) { c.logger = l }
}

// NewMatch creates a match sitting in the start menu.
func NewMatch(opts ...Option) *Match {
	cfg := matchConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	if cfg.sounds == nil {
		cfg.sounds = audio.Nop{}
	}
	if cfg.log == nil {
		cfg.log = NewMatchLog()
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return &Match{
		Left:   NewPaddle(0, FieldHeight),
		Right:  NewPaddle(FieldWidth-paddleWidth, FieldHeight),
		Ball:   NewBall(FieldWidth, FieldHeight, cfg.rng),
		state:  StateStartMenu,
		sounds: cfg.sounds,
		log:    cfg.log,
		logger: cfg.logger,
	}
}

// State returns the current mode.
func (m *Match) State() State { return m.state }

// Tick returns the number of Step calls so far.
func (m *Match) Tick() int { return m.tick }

// Log returns the match event log.
func (m *Match) Log() *MatchLog { return m.log }

// Step advances the match by one tick using in. It returns ErrQuit once the
// player closes the game or quits from the continue menu; the match must not
// be stepped or drawn after that.
func (m *Match) Step(in Input) error {
	m.tick++

	if in.Close {
		m.log.Add(m.tick, "state", "close", m.state.String(), 0)
		return ErrQuit
	}

	switch m.state {
	case StateStartMenu:
		if in.Confirm {
			m.sounds.Stop(audio.CueWaiting)
			m.waiting = false
			m.play(audio.CueGameStart)
			m.setState(StatePlaying)
			return nil
		}
		m.sounds.Play(audio.CueWaiting)
		if !m.waiting {
			m.waiting = true
			m.log.Add(m.tick, "cue", audio.CueWaiting.String(), "", 0)
		}

	case StatePlaying:
		m.update(in)
		if m.Score.Left >= WinningScore || m.Score.Right >= WinningScore {
			m.setState(StateContinueMenu)
		}

	case StateContinueMenu:
		if in.Quit {
			m.log.Add(m.tick, "state", "quit", m.state.String(), 0)
			return ErrQuit
		}
		if in.Continue {
			m.play(audio.CueGameStart)
			m.restart()
			m.setState(StatePlaying)
		}
	}
	return nil
}

// update runs one simulation tick. Order matters: paddles, ball, collisions,
// scoring.
func (m *Match) update(in Input) {
	m.playTicks++

	if in.Up {
		m.Left.Move(Up)
	}
	if in.Down {
		m.Left.Move(Down)
	}

	if dir, ok := trackBall(m.Right.Rect, m.Ball.Rect, m.Ball.VX); ok {
		m.Right.Move(dir)
	}

	m.Ball.Move()

	if m.Ball.Rect.Intersects(m.Left.Rect) || m.Ball.Rect.Intersects(m.Right.Rect) {
		m.Ball.BounceX()
		m.collisions++
		m.rally++
		if m.rally > m.longestRally {
			m.longestRally = m.rally
		}
		m.log.Add(m.tick, "collision", "paddle", fmt.Sprintf("vx=%d", m.Ball.VX), m.Ball.VX)
		m.play(audio.CueCollision)
	}

	switch {
	case m.Ball.Rect.Left() <= 0:
		m.scorePoint(&m.Score.Right, "right")
	case m.Ball.Rect.Right() >= FieldWidth:
		m.scorePoint(&m.Score.Left, "left")
	}
}

// scorePoint credits a point and re-serves. The point that wins the match
// is silent; only the transition to the continue menu marks it.
func (m *Match) scorePoint(side *int, name string) {
	*side++
	m.points++
	m.rally = 0
	m.log.Add(m.tick, "score", name, fmt.Sprintf("%d-%d", m.Score.Left, m.Score.Right), *side)
	m.logger.Debug("point scored", "side", name, "left", m.Score.Left, "right", m.Score.Right)
	m.resetBall()
	if *side != WinningScore {
		m.play(audio.CueScore)
	}
}

func (m *Match) restart() {
	m.Score = Score{}
	m.playTicks = 0
	m.collisions = 0
	m.rally = 0
	m.longestRally = 0
	m.points = 0
	m.resetBall()
}

func (m *Match) resetBall() {
	m.Ball.Reset()
	m.log.Add(m.tick, "ball", "reset", fmt.Sprintf("vx=%d vy=%d", m.Ball.VX, m.Ball.VY), 0)
}

func (m *Match) setState(s State) {
	if s == m.state {
		return
	}
	m.log.Add(m.tick, "state", "transition", m.state.String()+" -> "+s.String(), int(s))
	m.logger.Debug("state change", "from", m.state.String(), "to", s.String(), "tick", m.tick)
	m.state = s
}

func (m *Match) play(c audio.Cue) {
	m.sounds.Play(c)
	m.log.Add(m.tick, "cue", c.String(), "", 0)
}

// Frame returns a snapshot of everything a renderer needs for this tick.
func (m *Match) Frame() Frame {
	return Frame{
		State:  m.state,
		Left:   m.Left.Rect,
		Right:  m.Right.Rect,
		Ball:   m.Ball.Rect,
		Score:  m.Score,
		Width:  FieldWidth,
		Height: FieldHeight,
	}
}

// Summary describes the current (or just finished) match.
type Summary struct {
	Score        Score
	Ticks        int
	Points       int
	Collisions   int
	LongestRally int
}

// Summary returns rally statistics since the last restart.
func (m *Match) Summary() Summary {
	return Summary{
		Score:        m.Score,
		Ticks:        m.playTicks,
		Points:       m.points,
		Collisions:   m.collisions,
		LongestRally: m.longestRally,
	}
}

// Winner returns "left", "right", or "" while no side has won.
func (s Summary) Winner() string {
	switch {
	case s.Score.Left >= WinningScore:
		return "left"
	case s.Score.Right >= WinningScore:
		return "right"
	default:
		return ""
	}
}

func (s Summary) String() string {
	secs := float64(s.Ticks) / TicksPerSecond
	return fmt.Sprintf("Ping Pong: You %d - %d Opponent | %d points in %.1fs | %d paddle hits, longest rally %d",
		s.Score.Left, s.Score.Right, s.Points, secs, s.Collisions, s.LongestRally)
}
