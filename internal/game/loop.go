package game

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/diegok/solopong/internal/geom"
)

// Loop advances every entity once per tick and then resolves ball/paddle
// contacts against the post-move positions.
type Loop struct {
	ball     *Ball
	paddles  []Entity
	entities []Entity
	ticks    int
	hits     int
	log      *zap.Logger
}

// NewLoop wires the ball and both paddles. Missing entities are a
// construction error so a broken match never reaches the first tick.
func NewLoop(ball *Ball, player *PlayerPaddle, ai *AIPaddle, log *zap.Logger) (*Loop, error) {
	if ball == nil {
		return nil, errors.New("loop requires a ball")
	}
	if player == nil || player.Paddle == nil {
		return nil, errors.New("loop requires a player paddle")
	}
	if ai == nil || ai.Paddle == nil {
		return nil, errors.New("loop requires an AI paddle")
	}
	if log == nil {
		log = zap.NewNop()
	}

	paddles := []Entity{player, ai}
	return &Loop{
		ball:     ball,
		paddles:  paddles,
		entities: append([]Entity{ball}, paddles...),
		log:      log,
	}, nil
}

// Tick runs one simulation step
func (l *Loop) Tick() {
	l.ticks++

	for _, e := range l.entities {
		e.Advance()
	}

	for _, p := range l.paddles {
		fraction, ok := geom.Intersects(l.ball.Bounds(), p.Bounds())
		if !ok {
			continue
		}
		l.ball.OnCollision(p, fraction)
		l.hits++
		l.log.Debug("paddle hit",
			zap.Int("tick", l.ticks),
			zap.String("paddle", p.ID()),
			zap.Float64("fraction", fraction),
		)
	}
}

// Ticks returns how many ticks have run
func (l *Loop) Ticks() int {
	return l.ticks
}

// Hits returns how many ball/paddle contacts have been resolved
func (l *Loop) Hits() int {
	return l.hits
}

// Entities returns the entities in advance order
func (l *Loop) Entities() []Entity {
	return l.entities
}
