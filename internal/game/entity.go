package game

import (
	"github.com/diegok/solopong/internal/geom"
	"github.com/diegok/solopong/internal/lifecycle"
)

// Kind tags the entity variants
type Kind int

const (
	KindBall Kind = iota
	KindPlayer
	KindAI
)

var kindName = map[Kind]string{
	KindBall:   "ball",
	KindPlayer: "player",
	KindAI:     "ai",
}

func (k Kind) String() string {
	return kindName[k]
}

// Entity is anything the loop advances each tick
type Entity interface {
	lifecycle.Subscriber

	ID() string
	Kind() Kind
	// Advance moves the entity by one tick
	Advance()
	// Bounds returns the entity's current box, read back from the position store
	Bounds() geom.Rect
}

// playState mirrors the match phase so an entity can gate itself without
// asking the machine every tick.
type playState struct {
	state lifecycle.State
}

func newPlayState() playState {
	return playState{state: lifecycle.Playing}
}

func (p *playState) apply(e lifecycle.Event) {
	p.state = lifecycle.Next(p.state, e)
}

// Playing reports whether the entity's local state allows motion
func (p *playState) Playing() bool {
	return p.state == lifecycle.Playing
}

// LocalState returns the entity's mirror of the match phase
func (p *playState) LocalState() lifecycle.State {
	return p.state
}
