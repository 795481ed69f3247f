package game

// State is the top-level mode of a match.
type State int

const (
	StateStartMenu State = iota
	StatePlaying
	StateContinueMenu
)

func (s State) String() string {
	switch s {
	case StateStartMenu:
		return "start_menu"
	case StatePlaying:
		return "playing"
	case StateContinueMenu:
		return "continue_menu"
	default:
		return "unknown"
	}
}

// Prompt is the centred message shown while the state waits for a key.
// Playing has no prompt.
func (s State) Prompt() string {
	switch s {
	case StateStartMenu:
		return "Press Enter to start the game"
	case StateContinueMenu:
		return "Press C to continue or Q to quit"
	default:
		return ""
	}
}

// Input is one tick's worth of player intent. Up and Down are held keys;
// the rest are press events that fire once per key press.
type Input struct {
	Up       bool
	Down     bool
	Confirm  bool
	Continue bool
	Quit     bool
	Close    bool

	// CopySummary asks the frontend to copy the match summary. The match
	// itself ignores it.
	CopySummary bool
}

// Score is the points tally for both sides.
type Score struct {
	Left  int
	Right int
}
