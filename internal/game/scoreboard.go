package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/diegok/solopong/internal/lifecycle"
)

// Scoreboard counts points for display. It listens to wins only.
type Scoreboard struct {
	user       int
	ai         int
	lastWinner lifecycle.Event
	scored     bool
	log        *zap.Logger
}

// NewScoreboard creates a scoreboard subscribed to both win events
func NewScoreboard(m *lifecycle.Machine, log *zap.Logger) *Scoreboard {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Scoreboard{log: log}
	m.Subscribe(lifecycle.WinUser, s)
	m.Subscribe(lifecycle.WinAI, s)
	return s
}

func (s *Scoreboard) OnLifecycleEvent(e lifecycle.Event) {
	switch e {
	case lifecycle.WinUser:
		s.user++
	case lifecycle.WinAI:
		s.ai++
	default:
		return
	}
	s.lastWinner = e
	s.scored = true
	s.log.Info("point scored",
		zap.Stringer("winner", e),
		zap.Int("user", s.user),
		zap.Int("ai", s.ai),
	)
}

// UserScore returns points won by the player
func (s *Scoreboard) UserScore() int {
	return s.user
}

// AIScore returns points won by the AI
func (s *Scoreboard) AIScore() int {
	return s.ai
}

// LastWinner returns the event of the most recent point, if any
func (s *Scoreboard) LastWinner() (lifecycle.Event, bool) {
	return s.lastWinner, s.scored
}

func (s *Scoreboard) String() string {
	return fmt.Sprintf("%d : %d", s.user, s.ai)
}
