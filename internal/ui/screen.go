package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the colours the renderer draws with
type Palette struct {
	Court      tcell.Color
	CenterLine tcell.Color
	Player     tcell.Color
	AI         tcell.Color
	Ball       tcell.Color
	StatusBar  tcell.Color
	Overlay    tcell.Color
}

// DefaultPalette is the retro green-on-black court
var DefaultPalette = NewPalette("#000000", "#2ecc71", "#e74c3c", "#ffffff")

// NewPalette derives the full palette from a court colour, the two paddle
// colours and the ball colour. Secondary tones are blends of those.
func NewPalette(court, player, ai, ball string) Palette {
	c := mustHex(court)
	b := mustHex(ball)
	return Palette{
		Court:      toTcell(c),
		CenterLine: toTcell(c.BlendLab(b, 0.35)),
		Player:     toTcell(mustHex(player)),
		AI:         toTcell(mustHex(ai)),
		Ball:       toTcell(b),
		StatusBar:  toTcell(c.BlendLab(b, 0.2)),
		Overlay:    toTcell(c.BlendLab(b, 0.12)),
	}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}
	}
	return c
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

type Screen struct {
	screen tcell.Screen
}

func NewScreen(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

func InitScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.HideCursor()
	return NewScreen(s), nil
}

func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

func (s *Screen) Show() {
	s.screen.Show()
}

func (s *Screen) Fini() {
	s.screen.Fini()
}

func (s *Screen) SetCell(x, y int, style tcell.Style, r rune) {
	s.screen.SetContent(x, y, r, nil, style)
}

func (s *Screen) DrawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}

// DrawCentered draws text horizontally centered on row y
func (s *Screen) DrawCentered(y int, text string, style tcell.Style) {
	w, _ := s.Size()
	s.DrawText((w-len([]rune(text)))/2, y, text, style)
}

func (s *Screen) DrawBox(x, y, w, h int, style tcell.Style) {
	const (
		topLeft     = '┌'
		topRight    = '┐'
		bottomLeft  = '└'
		bottomRight = '┘'
		horizontal  = '─'
		vertical    = '│'
	)

	s.screen.SetContent(x, y, topLeft, nil, style)
	s.screen.SetContent(x+w-1, y, topRight, nil, style)
	s.screen.SetContent(x, y+h-1, bottomLeft, nil, style)
	s.screen.SetContent(x+w-1, y+h-1, bottomRight, nil, style)

	for i := x + 1; i < x+w-1; i++ {
		s.screen.SetContent(i, y, horizontal, nil, style)
		s.screen.SetContent(i, y+h-1, horizontal, nil, style)
	}

	for j := y + 1; j < y+h-1; j++ {
		s.screen.SetContent(x, j, vertical, nil, style)
		s.screen.SetContent(x+w-1, j, vertical, nil, style)
	}
}

func (s *Screen) FillRect(x, y, w, h int, style tcell.Style, r rune) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			s.screen.SetContent(x+dx, y+dy, r, nil, style)
		}
	}
}

func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}
