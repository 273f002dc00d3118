package game

import (
	"math"
	"math/rand"

	"github.com/diegok/solopong/internal/geom"
	"github.com/diegok/solopong/internal/lifecycle"
)

const (
	ServeAngleRange = 70.0 // Serve leaves at most this many degrees off horizontal
)

// Outgoing angles in degrees after a paddle strike
const (
	CenterAngle = 0.0
	MiddleAngle = 30.0
	EdgeAngle   = 45.0
)

// strikeZones split a paddle's face top to bottom. A strike fraction below
// upTo uses the zone's angle; negative angles leave upward.
var strikeZones = []struct {
	upTo  float64
	angle float64
}{
	{0.2, -EdgeAngle},
	{0.4, -MiddleAngle},
	{0.6, CenterAngle},
	{0.8, MiddleAngle},
	{math.Inf(1), EdgeAngle},
}

// StrikeAngle maps where the ball hit a paddle (0 top, 1 bottom) to the
// outgoing angle in degrees. Fractions outside [0, 1] land in the edge zones.
func StrikeAngle(fraction float64) float64 {
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	for _, z := range strikeZones {
		if fraction < z.upTo {
			return z.angle
		}
	}
	return EdgeAngle
}

// Ball moves in a straight line at a fixed speed, bouncing off the top and
// bottom walls. Crossing the left or right goal line ends the point.
type Ball struct {
	playState
	machine   *lifecycle.Machine
	positions Positions
	rng       *rand.Rand

	x, y   float64
	dx, dy float64
	speed  float64
}

// NewBall creates a ball at center court. It does not move until served.
func NewBall(speed float64, rng *rand.Rand, m *lifecycle.Machine, positions Positions) *Ball {
	b := &Ball{
		playState: newPlayState(),
		machine:   m,
		positions: positions,
		rng:       rng,
		speed:     speed,
	}
	m.SubscribeAll(b)
	b.center()
	return b
}

func (b *Ball) ID() string {
	return BallID
}

func (b *Ball) Kind() Kind {
	return KindBall
}

// X returns the ball's left edge
func (b *Ball) X() float64 {
	return b.x
}

// Y returns the ball's top edge
func (b *Ball) Y() float64 {
	return b.y
}

// Direction returns the unit direction the ball travels in
func (b *Ball) Direction() (dx, dy float64) {
	return b.dx, b.dy
}

// Speed returns the distance covered per tick
func (b *Ball) Speed() float64 {
	return b.speed
}

// Advance moves the ball one tick. A ball left past a goal line by the
// previous tick ends the point here instead of moving; the lifecycle
// fan-out of that post freezes the ball until the next serve.
func (b *Ball) Advance() {
	if !b.Playing() {
		return
	}

	b.checkForPoint()
	if !b.Playing() {
		return
	}

	b.x += b.dx * b.speed

	switch {
	case b.y < 0:
		b.dy = -b.dy
		b.y = 0
	case b.y > CourtHeight:
		b.dy = -b.dy
		b.y = CourtHeight
	default:
		b.y += b.dy * b.speed
	}

	b.publish()
}

func (b *Ball) checkForPoint() {
	switch {
	case b.x < 0:
		b.machine.Post(lifecycle.WinAI)
	case b.x > CourtWidth:
		b.machine.Post(lifecycle.WinUser)
	}
}

// Serve puts the ball at center court with a random direction no more than
// ServeAngleRange degrees off horizontal, toward either side.
func (b *Ball) Serve() {
	b.center()

	angle := b.rng.Float64()*ServeAngleRange*2 - ServeAngleRange
	b.dx, b.dy = cosSin(angle)
	if b.rng.Float64() > 0.5 {
		b.dx = -b.dx
	}
}

// OnCollision sets the ball's direction from where it struck paddle.
// The incoming direction is discarded.
func (b *Ball) OnCollision(paddle Entity, fraction float64) {
	b.dx, b.dy = cosSin(StrikeAngle(fraction))
	if paddle.Kind() == KindAI {
		b.dx = -b.dx
	}
}

// Bounds reads the ball's corner back from the position store
func (b *Ball) Bounds() geom.Rect {
	top, left, ok := b.positions.Position(BallID)
	if !ok || math.IsNaN(top) || math.IsNaN(left) {
		top, left = b.y, b.x
	}
	return geom.NewRect(top, left, BallSize, BallSize)
}

func (b *Ball) OnLifecycleEvent(e lifecycle.Event) {
	b.apply(e)
	if e == lifecycle.StartNewGame {
		b.Serve()
	}
}

func (b *Ball) center() {
	b.x = CourtWidth / 2
	b.y = CourtHeight / 2
	b.publish()
}

func (b *Ball) publish() {
	b.positions.SetPosition(BallID, b.y, b.x)
}

func cosSin(deg float64) (float64, float64) {
	rad := math.Pi * deg / 180
	return math.Cos(rad), math.Sin(rad)
}
