package audio

import (
	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

// Cues are the sounds implied by the change between two frames
type Cues struct {
	PaddleHit  bool
	WallBounce bool
}

// DetectCues compares consecutive frames. A horizontal direction flip
// inside the court is a paddle hit; a vertical flip is a wall bounce.
func DetectCues(prev, cur protocol.GameState) Cues {
	var c Cues

	// Skip if no previous frame or a serve happened in between
	if prev.Tick == 0 || !prev.Playing || !cur.Playing {
		return c
	}

	if cur.Ball.X > 0 && cur.Ball.X < float64(cur.CourtWidth) {
		if (prev.Ball.DX > 0 && cur.Ball.DX < 0) || (prev.Ball.DX < 0 && cur.Ball.DX > 0) {
			c.PaddleHit = true
		}
	}

	if (prev.Ball.DY > 0 && cur.Ball.DY < 0) || (prev.Ball.DY < 0 && cur.Ball.DY > 0) {
		// A paddle strike also rewrites DY; only count flips with no hit
		c.WallBounce = !c.PaddleHit
	}

	return c
}

// Play emits the sounds for c
func (c Cues) Play() {
	if c.PaddleHit {
		PlayPaddleHit()
	}
	if c.WallBounce {
		PlayWallBounce()
	}
}

// Listener plays lifecycle sounds
type Listener struct{}

// Attach subscribes a Listener to every lifecycle event of m
func Attach(m *lifecycle.Machine) *Listener {
	l := &Listener{}
	m.SubscribeAll(l)
	return l
}

func (l *Listener) OnLifecycleEvent(e lifecycle.Event) {
	switch e {
	case lifecycle.WinUser:
		PlayPointWon()
	case lifecycle.WinAI:
		PlayPointLost()
	case lifecycle.StartNewGame:
		PlayServe()
	}
}
