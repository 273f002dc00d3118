package game

import (
	"testing"
	"time"

	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

func TestNewMatch_Defaults(t *testing.T) {
	m, _ := newTestMatch(t)

	if m.Machine.State() != lifecycle.GameOver {
		t.Errorf("expected %v before start, got %v", lifecycle.GameOver, m.Machine.State())
	}
	if m.Ball.Speed() != DefaultBallSpeed {
		t.Errorf("expected ball speed %f, got %f", DefaultBallSpeed, m.Ball.Speed())
	}
	if m.AI.Speed() != DefaultAISpeed {
		t.Errorf("expected AI speed %f, got %f", DefaultAISpeed, m.AI.Speed())
	}
	for _, e := range lifecycle.Events() {
		// ball and both paddles, plus the scoreboard on wins
		want := 3
		if e != lifecycle.StartNewGame {
			want = 4
		}
		if got := m.Machine.SubscriberCount(e); got != want {
			t.Errorf("event %v: expected %d subscribers, got %d", e, want, got)
		}
	}
}

func TestNewMatch_RejectsNegativeSpeed(t *testing.T) {
	if _, err := NewMatch(Options{AISpeed: -1}); err == nil {
		t.Error("expected error for negative AI speed")
	}
	if _, err := NewMatch(Options{BallSpeed: -1}); err == nil {
		t.Error("expected error for negative ball speed")
	}
}

func TestMatch_Start(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Start()

	if !m.Playing() {
		t.Fatal("expected match to be playing after start")
	}
	if m.Ball.X() != CourtWidth/2 || m.Ball.Y() != CourtHeight/2 {
		t.Errorf("expected ball at center, got (%f,%f)", m.Ball.X(), m.Ball.Y())
	}
	dx, dy := m.Ball.Direction()
	if dx == 0 && dy == 0 {
		t.Error("expected served ball to have a direction")
	}
}

func TestMatch_StartWhilePlayingResets(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Start()
	for i := 0; i < 5; i++ {
		m.HandleCommand(protocol.DirUp)
		m.Step()
	}

	m.Machine.Post(lifecycle.StartNewGame)

	if !m.Playing() {
		t.Errorf("expected %v, got %v", lifecycle.Playing, m.Machine.State())
	}
	if m.Player.Y() != PaddleStartY || m.AI.Y() != PaddleStartY {
		t.Errorf("expected paddles reset to %d, got %f and %f", PaddleStartY, m.Player.Y(), m.AI.Y())
	}
	if m.Ball.X() != CourtWidth/2 || m.Ball.Y() != CourtHeight/2 {
		t.Errorf("expected ball reset to center, got (%f,%f)", m.Ball.X(), m.Ball.Y())
	}
}

func TestMatch_PointAndAutoRestart(t *testing.T) {
	m, clock := newTestMatch(t)
	m.Start()
	m.AI.setY(0)
	m.Ball.place(CourtWidth-5, 500)
	m.Ball.setDirection(1, 0)

	m.Step() // ball crosses the line
	m.Step() // point is called

	if m.Playing() {
		t.Fatal("expected point to end play")
	}
	if m.Scoreboard.UserScore() != 1 {
		t.Errorf("expected user score 1, got %d", m.Scoreboard.UserScore())
	}

	// Ticks keep running between points but nothing restarts early
	for i := 0; i < 10; i++ {
		clock.Advance(16 * time.Millisecond)
		m.Step()
	}
	if m.Playing() {
		t.Fatal("expected restart to wait for the delay")
	}

	clock.Advance(lifecycle.RestartDelay)
	m.Step()

	if !m.Playing() {
		t.Error("expected play to resume after the restart delay")
	}
	if m.Scoreboard.String() != "1 : 0" {
		t.Errorf("expected score '1 : 0', got '%s'", m.Scoreboard.String())
	}
}

func TestMatch_Snapshot(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Start()
	m.Step()

	s := m.Snapshot()
	if s.Tick != 1 {
		t.Errorf("expected tick 1, got %d", s.Tick)
	}
	if !s.Playing {
		t.Error("expected snapshot to report play")
	}
	if s.CourtWidth != CourtWidth || s.CourtHeight != CourtHeight {
		t.Errorf("unexpected court %dx%d", s.CourtWidth, s.CourtHeight)
	}
	if len(s.Paddles) != 2 {
		t.Fatalf("expected 2 paddles, got %d", len(s.Paddles))
	}
	if s.Paddles[0].AI || s.Paddles[0].Side != protocol.SideLeft {
		t.Errorf("expected player paddle first on the left, got %+v", s.Paddles[0])
	}
	if !s.Paddles[1].AI || s.Paddles[1].Left != CourtWidth-PaddleWidth {
		t.Errorf("expected AI paddle on the right, got %+v", s.Paddles[1])
	}
	if s.Ball.X != m.Ball.X() || s.Ball.Size != BallSize {
		t.Errorf("unexpected ball state %+v", s.Ball)
	}
	if s.LastWinner != "" {
		t.Errorf("expected no winner yet, got %s", s.LastWinner)
	}
}
