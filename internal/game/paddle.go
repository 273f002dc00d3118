package game

import (
	"math"

	"github.com/diegok/solopong/internal/geom"
	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

// Paddle is the movement shared by the player and AI paddles.
// Y is the paddle's top edge and always stays within [0, PaddleTravel].
type Paddle struct {
	playState
	id        string
	kind      Kind
	side      protocol.Side
	y         float64
	positions Positions
}

func newPaddle(id string, kind Kind, side protocol.Side, m *lifecycle.Machine, positions Positions) *Paddle {
	p := &Paddle{
		playState: newPlayState(),
		id:        id,
		kind:      kind,
		side:      side,
		positions: positions,
	}
	m.SubscribeAll(p)
	p.ResetPosition()
	return p
}

func (p *Paddle) ID() string {
	return p.id
}

func (p *Paddle) Kind() Kind {
	return p.kind
}

// Side returns the rail the paddle was configured on
func (p *Paddle) Side() protocol.Side {
	return p.side
}

// Y returns the top edge of the paddle
func (p *Paddle) Y() float64 {
	return p.y
}

// Move shifts the paddle by offset. A move that would cross a rail snaps
// the paddle onto that rail instead.
func (p *Paddle) Move(offset float64) {
	target := p.y + offset
	switch {
	case offset < 0 && target <= 0:
		p.y = 0
	case offset > 0 && target >= PaddleTravel:
		p.y = PaddleTravel
	default:
		p.y = target
	}
	p.publish()
}

// ResetPosition returns the paddle to the middle of its rail
func (p *Paddle) ResetPosition() {
	p.y = PaddleStartY
	p.publish()
}

// Advance is a no-op; only the AI paddle moves on its own
func (p *Paddle) Advance() {}

// Bounds reads the paddle's top back from the position store. A missing or
// out-of-range value falls back to the paddle's own rail position.
func (p *Paddle) Bounds() geom.Rect {
	top, _, ok := p.positions.Position(p.id)
	if !ok || math.IsNaN(top) || top < 0 || top > PaddleTravel {
		top = p.y
	}
	return geom.NewRect(top, p.left(), PaddleWidth, PaddleHeight)
}

func (p *Paddle) OnLifecycleEvent(e lifecycle.Event) {
	p.apply(e)
	if e == lifecycle.StartNewGame {
		p.ResetPosition()
	}
}

func (p *Paddle) left() float64 {
	if p.side == protocol.SideRight {
		return CourtWidth - PaddleWidth
	}
	return 0
}

func (p *Paddle) publish() {
	p.positions.SetPosition(p.id, p.y, p.left())
}

// PlayerPaddle is moved by discrete commands from the input source
type PlayerPaddle struct {
	*Paddle
}

// NewPlayerPaddle creates the human paddle on the given side
func NewPlayerPaddle(side protocol.Side, m *lifecycle.Machine, positions Positions) *PlayerPaddle {
	return &PlayerPaddle{Paddle: newPaddle(PlayerPaddleID, KindPlayer, side, m, positions)}
}

// HandleCommand applies one input command and reports whether the paddle
// accepted it. Commands are ignored between points and unknown directions
// are dropped.
func (p *PlayerPaddle) HandleCommand(dir protocol.Direction) bool {
	if !p.Playing() {
		return false
	}
	switch dir {
	case protocol.DirUp:
		p.Move(-PlayerStep)
	case protocol.DirDown:
		p.Move(PlayerStep)
	default:
		return false
	}
	return true
}

// AIPaddle follows the ball at its own speed
type AIPaddle struct {
	*Paddle
	ball  *Ball
	speed float64
}

// NewAIPaddle creates the computer paddle tracking ball
func NewAIPaddle(side protocol.Side, ball *Ball, speed float64, m *lifecycle.Machine, positions Positions) *AIPaddle {
	return &AIPaddle{
		Paddle: newPaddle(AIPaddleID, KindAI, side, m, positions),
		ball:   ball,
		speed:  speed,
	}
}

// Speed returns how far the AI paddle moves per tick
func (a *AIPaddle) Speed() float64 {
	return a.speed
}

// Advance steps toward the ball unless the paddle's center is already
// within AIJitter of it.
func (a *AIPaddle) Advance() {
	target := a.ball.Y()
	current := a.y + PaddleHeight/2
	if math.Abs(current-target) <= AIJitter {
		return
	}
	if current >= target {
		a.Move(-a.speed)
	} else {
		a.Move(a.speed)
	}
}
