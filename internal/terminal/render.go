package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Ping-Pong/internal/game"
)

var (
	stylePaddle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleBall   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleNet    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleScore  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	stylePrompt = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

const (
	runePaddle = '█'
	runeBall   = '●'
	runeNet    = '¦'
)

// grid maps playfield pixels onto terminal cells.
type grid struct {
	cols, rows int
	w, h       int
}

func (g grid) col(x int) int { return clamp(x*g.cols/g.w, 0, g.cols-1) }
func (g grid) row(y int) int { return clamp(y*g.rows/g.h, 0, g.rows-1) }

// textWidth is the playfield width covered by s when drawn one rune per cell.
func (g grid) textWidth(s string) int {
	return len([]rune(s)) * g.w / g.cols
}

// Render draws f scaled to the current terminal size.
func (t *Terminal) Render(f game.Frame) {
	t.screen.Clear()
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	g := grid{cols: cols, rows: rows, w: f.Width, h: f.Height}

	if f.State != game.StatePlaying {
		msg := f.State.Prompt()
		x, y := f.PromptOrigin(g.textWidth(msg), 0)
		t.drawText(g.col(x), g.row(y), msg, stylePrompt)
		t.screen.Show()
		return
	}

	for _, d := range f.CenterLine() {
		t.fill(g, d, runeNet, styleNet)
	}
	t.fill(g, f.Left, runePaddle, stylePaddle)
	t.fill(g, f.Right, runePaddle, stylePaddle)
	t.fill(g, f.Ball, runeBall, styleBall)

	for _, l := range f.Labels(g.textWidth) {
		style := styleLabel
		if l.Score {
			style = styleScore
		}
		t.drawText(g.col(l.X), g.row(l.Y), l.Text, style)
	}
	t.screen.Show()
}

// fill paints every cell the rect touches; a rect always covers at least
// one cell.
func (t *Terminal) fill(g grid, r game.Rect, ch rune, style tcell.Style) {
	x0, x1 := g.col(r.Left()), g.col(r.Right()-1)
	y0, y1 := g.row(r.Top()), g.row(r.Bottom()-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			t.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (t *Terminal) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
