package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/diegok/solopong/internal/lifecycle"
)

// place moves the ball without touching its direction
func (b *Ball) place(x, y float64) {
	b.x, b.y = x, y
	b.publish()
}

func (b *Ball) setDirection(dx, dy float64) {
	b.dx, b.dy = dx, dy
}

func (p *Paddle) setY(y float64) {
	p.y = y
	p.publish()
}

func newTestMatch(t *testing.T) (*Match, *lifecycle.ManualClock) {
	t.Helper()
	clock := lifecycle.NewManualClock(time.Unix(0, 0))
	m, err := NewMatch(Options{Seed: 1, Clock: clock})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m, clock
}

func newTestBall(seed int64) (*Ball, *lifecycle.Machine) {
	m := lifecycle.NewMachine(lifecycle.NewScheduler(lifecycle.NewManualClock(time.Unix(0, 0))))
	b := NewBall(DefaultBallSpeed, rand.New(rand.NewSource(seed)), m, NewPositionTable())
	return b, m
}
