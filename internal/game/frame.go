package game

import "strconv"

// Frame is an immutable snapshot of the match handed to renderers.
type Frame struct {
	State  State
	Left   Rect
	Right  Rect
	Ball   Rect
	Score  Score
	Width  int
	Height int
}

// Centre line dash geometry.
const (
	dashWidth   = 3
	dashHeight  = 10
	dashSpacing = 20
)

// LabelY is the baseline row of the score and side labels.
const LabelY = 20

const (
	youLabel      = "You"
	opponentLabel = "Opponent"
)

// CenterLine returns the dashes of the net, top to bottom.
func (f Frame) CenterLine() []Rect {
	dashes := make([]Rect, 0, f.Height/dashSpacing+1)
	x := f.Width/2 - dashWidth/2
	for y := 0; y < f.Height; y += dashSpacing {
		dashes = append(dashes, Rect{X: x, Y: y, W: dashWidth, H: dashHeight})
	}
	return dashes
}

// Label is a piece of text placed at a playfield position.
type Label struct {
	Text  string
	X, Y  int
	Score bool // score digits are drawn in the score colour
}

// Labels lays out the two scores and the two side names. measure returns the
// rendered width of a string in playfield units; scores are offset from the
// centre by multiples of their own width.
func (f Frame) Labels(measure func(string) int) []Label {
	left := strconv.Itoa(f.Score.Left)
	right := strconv.Itoa(f.Score.Right)
	return []Label{
		{Text: left, X: f.Width/2 - measure(left)*3, Y: LabelY, Score: true},
		{Text: right, X: f.Width/2 + measure(right)*2, Y: LabelY, Score: true},
		{Text: youLabel, X: int(float64(f.Width) / 2.8), Y: LabelY},
		{Text: opponentLabel, X: int(float64(f.Width) / 1.7), Y: LabelY},
	}
}

// PromptOrigin returns where to draw text of the given size so that it is
// centred on the playfield.
func (f Frame) PromptOrigin(textW, textH int) (x, y int) {
	return (f.Width - textW) / 2, (f.Height - textH) / 2
}
