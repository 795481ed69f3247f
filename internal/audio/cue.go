package audio

// Cue is a one-shot sound the game can request.
type Cue int

const (
	CueWaiting Cue = iota // loops while the start menu waits for confirm
	CueGameStart
	CueCollision
	CueScore

	cueCount
)

// Cues lists every cue in declaration order.
func Cues() []Cue {
	return []Cue{CueWaiting, CueGameStart, CueCollision, CueScore}
}

func (c Cue) String() string {
	switch c {
	case CueWaiting:
		return "waiting"
	case CueGameStart:
		return "game_start"
	case CueCollision:
		return "collision"
	case CueScore:
		return "score"
	default:
		return "unknown"
	}
}

// FileName is the WAV asset name looked up in a sound directory.
func (c Cue) FileName() string {
	switch c {
	case CueWaiting:
		return "waiting_to_start.wav"
	case CueGameStart:
		return "game_start.wav"
	case CueCollision:
		return "ball_hit.wav"
	case CueScore:
		return "score_sound.wav"
	default:
		return ""
	}
}

// Nop discards every request. Used when audio is disabled and by the headless
// report.
type Nop struct{}

func (Nop) Play(Cue) {}
func (Nop) Stop(Cue) {}

// Recorder remembers every request in order. Tests use it to assert which
// cues a tick produced.
type Recorder struct {
	Played  []Cue
	Stopped []Cue
}

func (r *Recorder) Play(c Cue) { r.Played = append(r.Played, c) }
func (r *Recorder) Stop(c Cue) { r.Stopped = append(r.Stopped, c) }

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, p := range r.Played {
		if p == c {
			n++
		}
	}
	return n
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.Played = nil
	r.Stopped = nil
}
