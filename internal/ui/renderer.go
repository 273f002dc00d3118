package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

const (
	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

// Renderer draws game snapshots onto the terminal
type Renderer struct {
	screen  *Screen
	palette Palette
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen, palette Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Viewport maps court pixels onto the terminal rows between the scoreboard
// and the status bar.
type Viewport struct {
	ScreenW, ScreenH int
	CourtW, CourtH   int
}

// ToCell converts a court position to a terminal cell
func (v Viewport) ToCell(x, y float64) (int, int) {
	rows := v.ScreenH - 2
	if v.CourtW <= 0 || v.CourtH <= 0 || rows <= 0 {
		return 0, 1
	}
	cx := int(x * float64(v.ScreenW) / float64(v.CourtW))
	cy := int(y*float64(rows)/float64(v.CourtH)) + 1 // +1 for the scoreboard row
	return cx, cy
}

// Rows converts a court height to a number of terminal rows, at least one
func (v Viewport) Rows(h float64) int {
	rows := v.ScreenH - 2
	if v.CourtH <= 0 {
		return 1
	}
	n := int(h * float64(rows) / float64(v.CourtH))
	if n < 1 {
		n = 1
	}
	return n
}

// InCourt reports whether a cell lies inside the drawable court
func (v Viewport) InCourt(x, y int) bool {
	return x >= 0 && x < v.ScreenW && y >= 1 && y < v.ScreenH-1
}

// RenderGame displays one frame of the match
func (r *Renderer) RenderGame(state protocol.GameState, status string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()
	vp := Viewport{ScreenW: screenW, ScreenH: screenH, CourtW: state.CourtWidth, CourtH: state.CourtHeight}

	courtStyle := tcell.StyleDefault.Background(r.palette.Court)
	r.screen.FillRect(0, 1, screenW, screenH-2, courtStyle, ' ')

	// Dashed net
	centerX := screenW / 2
	lineStyle := courtStyle.Foreground(r.palette.CenterLine)
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, '|')
	}

	r.renderScoreboard(state, screenW)

	for _, paddle := range state.Paddles {
		color := r.palette.Player
		if paddle.AI {
			color = r.palette.AI
		}
		style := courtStyle.Foreground(color)

		x, top := vp.ToCell(paddle.Left, paddle.Top)
		if paddle.Side == protocol.SideRight {
			x = screenW - 1
		}
		for dy := 0; dy < vp.Rows(paddle.Height); dy++ {
			if vp.InCourt(x, top+dy) {
				r.screen.SetCell(x, top+dy, style, PaddleChar)
			}
		}
	}

	bx, by := vp.ToCell(state.Ball.X, state.Ball.Y)
	if vp.InCourt(bx, by) {
		r.screen.SetCell(bx, by, courtStyle.Foreground(r.palette.Ball), BallChar)
	}

	if !state.Playing {
		r.renderPointOverlay(state, screenW, screenH)
	}

	statusY := screenH - 1
	statusStyle := tcell.StyleDefault.Background(r.palette.StatusBar).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, screenW, 1, statusStyle, ' ')
	r.screen.DrawText(0, statusY, fmt.Sprintf(" Tick: %d | %s", state.Tick, status), statusStyle)

	r.screen.Show()
}

// renderScoreboard draws "[ YOU 3 : 2 AI ]" at the top center
func (r *Renderer) renderScoreboard(state protocol.GameState, screenW int) {
	base := tcell.StyleDefault.Background(r.palette.StatusBar).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.FillRect(0, 0, screenW, 1, base, ' ')

	score := fmt.Sprintf(" %d : %d ", state.UserScore, state.AIScore)
	text := "[ YOU" + score + "AI ]"
	x := (screenW - len(text)) / 2

	r.screen.DrawText(x, 0, "[ ", base)
	r.screen.DrawText(x+2, 0, "YOU", base.Foreground(r.palette.Player))
	r.screen.DrawText(x+5, 0, score, base)
	r.screen.DrawText(x+5+len(score), 0, "AI", base.Foreground(r.palette.AI))
	r.screen.DrawText(x+7+len(score), 0, " ]", base)
}

// renderPointOverlay shows who took the point while the next serve is pending
func (r *Renderer) renderPointOverlay(state protocol.GameState, screenW, screenH int) {
	boxW := 30
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2

	fill := tcell.StyleDefault.Background(r.palette.Overlay)
	r.screen.FillRect(boxX+1, boxY+1, boxW-2, boxH-2, fill, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, fill.Foreground(tcell.ColorWhite))

	msg, color := "GET READY", r.palette.Ball
	switch state.LastWinner {
	case lifecycle.WinUser.String():
		msg, color = "YOUR POINT!", r.palette.Player
	case lifecycle.WinAI.String():
		msg, color = "AI SCORES", r.palette.AI
	}
	r.screen.DrawCentered(boxY+2, msg, fill.Foreground(color).Bold(true))
}

// RenderReplayEnd displays the end of a recorded match
func (r *Renderer) RenderReplayEnd(state protocol.GameState) {
	r.screen.Clear()
	_, screenH := r.screen.Size()

	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	r.screen.DrawCentered(screenH/2-2, "=== END OF REPLAY ===", titleStyle)

	scoreText := fmt.Sprintf("Final Score: %d - %d", state.UserScore, state.AIScore)
	r.screen.DrawCentered(screenH/2, scoreText, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	r.screen.DrawCentered(screenH/2+3, "Press any key to exit", tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// RenderError displays an error screen
func (r *Renderer) RenderError(err string) {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "ERROR"
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorRed)
	r.screen.DrawCentered(screenH/2-2, title, titleStyle)

	// Truncate if too long
	maxErrLen := screenW - 4
	errMsg := err
	if maxErrLen > 3 && len(errMsg) > maxErrLen {
		errMsg = errMsg[:maxErrLen-3] + "..."
	}
	r.screen.DrawCentered(screenH/2, errMsg, tcell.StyleDefault.Foreground(tcell.ColorWhite))

	hintText := "Press any key to continue"
	r.screen.DrawCentered(screenH/2+3, hintText, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}
