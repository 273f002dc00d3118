package game

import (
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/diegok/solopong/internal/lifecycle"
	"github.com/diegok/solopong/internal/protocol"
)

// Options configures a Match. Zero values fall back to the defaults.
type Options struct {
	BallSpeed float64
	AISpeed   float64
	Seed      int64
	Clock     lifecycle.Clock
	Positions Positions
	Logger    *zap.Logger
}

// Match owns everything one game needs: the lifecycle machine, its restart
// scheduler, the entities and the loop that drives them.
type Match struct {
	Machine    *lifecycle.Machine
	Scheduler  *lifecycle.Scheduler
	Positions  Positions
	Ball       *Ball
	Player     *PlayerPaddle
	AI         *AIPaddle
	Scoreboard *Scoreboard
	Loop       *Loop
	log        *zap.Logger
}

// NewMatch builds a match in the GameOver state. Call Start to serve.
func NewMatch(opts Options) (*Match, error) {
	if opts.BallSpeed == 0 {
		opts.BallSpeed = DefaultBallSpeed
	}
	if opts.AISpeed == 0 {
		opts.AISpeed = DefaultAISpeed
	}
	if opts.BallSpeed < 0 {
		return nil, errors.Errorf("ball speed must be positive, got %g", opts.BallSpeed)
	}
	if opts.AISpeed < 0 {
		return nil, errors.Errorf("AI speed must be positive, got %g", opts.AISpeed)
	}
	if opts.Positions == nil {
		opts.Positions = NewPositionTable()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	sched := lifecycle.NewScheduler(opts.Clock)
	machine := lifecycle.NewMachine(sched, lifecycle.WithLogger(log.Named("lifecycle")))

	rng := rand.New(rand.NewSource(opts.Seed))
	ball := NewBall(opts.BallSpeed, rng, machine, opts.Positions)
	player := NewPlayerPaddle(protocol.SideLeft, machine, opts.Positions)
	ai := NewAIPaddle(protocol.SideRight, ball, opts.AISpeed, machine, opts.Positions)
	score := NewScoreboard(machine, log.Named("score"))

	loop, err := NewLoop(ball, player, ai, log.Named("loop"))
	if err != nil {
		return nil, errors.Wrap(err, "build loop")
	}

	return &Match{
		Machine:    machine,
		Scheduler:  sched,
		Positions:  opts.Positions,
		Ball:       ball,
		Player:     player,
		AI:         ai,
		Scoreboard: score,
		Loop:       loop,
		log:        log,
	}, nil
}

// Start serves the first ball
func (m *Match) Start() {
	m.log.Info("match started")
	m.Machine.Post(lifecycle.StartNewGame)
}

// Step fires any due restart timers and then runs one loop tick, so timers
// and ticks share the caller's goroutine.
func (m *Match) Step() {
	m.Scheduler.RunDue()
	m.Loop.Tick()
}

// HandleCommand forwards an input command to the player paddle
func (m *Match) HandleCommand(dir protocol.Direction) bool {
	return m.Player.HandleCommand(dir)
}

// Playing reports whether a point is in progress
func (m *Match) Playing() bool {
	return m.Machine.State() == lifecycle.Playing
}

// Snapshot captures the current frame for rendering and recording
func (m *Match) Snapshot() protocol.GameState {
	dx, dy := m.Ball.Direction()
	state := protocol.GameState{
		Tick:    m.Loop.Ticks(),
		Playing: m.Playing(),
		Ball: protocol.BallState{
			X:    m.Ball.X(),
			Y:    m.Ball.Y(),
			DX:   dx,
			DY:   dy,
			Size: BallSize,
		},
		UserScore:   m.Scoreboard.UserScore(),
		AIScore:     m.Scoreboard.AIScore(),
		CourtWidth:  CourtWidth,
		CourtHeight: CourtHeight,
	}
	if winner, ok := m.Scoreboard.LastWinner(); ok {
		state.LastWinner = winner.String()
	}

	for _, p := range []*Paddle{m.Player.Paddle, m.AI.Paddle} {
		b := p.Bounds()
		state.Paddles = append(state.Paddles, protocol.PaddleState{
			ID:     p.ID(),
			Side:   p.Side(),
			AI:     p.Kind() == KindAI,
			Top:    b.Top,
			Left:   b.Left,
			Width:  b.Width(),
			Height: b.Height(),
		})
	}
	return state
}
